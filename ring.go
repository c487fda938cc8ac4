// seehuhn.de/go/shapemesh - triangulated meshes for 2D vector shapes
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package shapemesh

import (
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// OutlineRing returns copies of the points which belong to the boundary
// ring, ordered by outline index.  Points with equal indices keep their
// relative order.
func OutlineRing(points []Point) []Point {
	ring := make([]Point, 0, len(points))
	for _, p := range points {
		if p.OnOutline() {
			ring = append(ring, p)
		}
	}
	slices.SortStableFunc(ring, func(a, b Point) int {
		return cmp.Compare(a.OutlineIndex, b.OutlineIndex)
	})
	return ring
}

// Renumber sets the outline index of every point to its position in the
// slice.
func Renumber(ring []Point) {
	for i := range ring {
		ring[i].OutlineIndex = i
	}
}

// SignedArea returns the shoelace area of the ring.  The result is
// negative for clockwise rings in a y-up coordinate system, which is the
// orientation produced by the shape generators.
func SignedArea(ring []Point) float64 {
	n := len(ring)
	if n < 3 {
		return 0
	}
	var sum float64
	for i := range n {
		a := ring[i].Pos
		b := ring[(i+1)%n].Pos
		sum += a.X*b.Y - b.X*a.Y
	}
	return sum / 2
}

// RingPath returns the ring as a closed path.
func RingPath(ring []Point) *path.Data {
	p := &path.Data{}
	if len(ring) == 0 {
		return p
	}
	p.MoveTo(ring[0].Pos)
	for _, pt := range ring[1:] {
		p.LineTo(pt.Pos)
	}
	return p.Close()
}

// neighbours returns the positions adjacent to ring[i], wrapping around.
func neighbours(ring []Point, i int) (prev, next vec.Vec2) {
	n := len(ring)
	return ring[(i+n-1)%n].Pos, ring[(i+1)%n].Pos
}

func cross(a, b vec.Vec2) float64 {
	return a.X*b.Y - a.Y*b.X
}

// unit returns v scaled to length one, or the zero vector if v is too
// short to have a direction.
func unit(v vec.Vec2) vec.Vec2 {
	l := v.Length()
	if l < zeroLengthThreshold {
		return vec.Vec2{}
	}
	return v.Mul(1 / l)
}

// rotate turns v counter-clockwise by the given angle in radians.
func rotate(v vec.Vec2, angle float64) vec.Vec2 {
	sin, cos := math.Sincos(angle)
	return vec.Vec2{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}
