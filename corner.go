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
	"math"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// corner identifies one of the four corners of a rectangle, in the
// clockwise order used for all generated rings.
type corner int

const (
	cornerBottomLeft corner = iota
	cornerTopLeft
	cornerTopRight
	cornerBottomRight
)

// position returns the location of the corner on b.
func (c corner) position(b rect.Rect) vec.Vec2 {
	switch c {
	case cornerTopLeft:
		return vec.Vec2{X: b.LLx, Y: b.URy}
	case cornerTopRight:
		return vec.Vec2{X: b.URx, Y: b.URy}
	case cornerBottomRight:
		return vec.Vec2{X: b.URx, Y: b.LLy}
	default:
		return vec.Vec2{X: b.LLx, Y: b.LLy}
	}
}

// inward returns the signs of the direction from the corner towards the
// inside of the rectangle.
func (c corner) inward() (sx, sy float64) {
	switch c {
	case cornerTopLeft:
		return 1, -1
	case cornerTopRight:
		return -1, -1
	case cornerBottomRight:
		return -1, 1
	default:
		return 1, 1
	}
}

// startAngle is the direction, in quarter turns, from the arc centre to
// the first arc sample.  The arc then sweeps a quarter turn clockwise.
// Bottom-left starts at the bottom edge, top-left at the left edge, and
// so on, so that consecutive corners join up into a clockwise ring.
func (c corner) startAngle() int {
	return -1 - int(c)
}

// seamHalfDimension returns the half size of b along the edge on which
// the last sample of the corner arc lies.  If the radius reaches this
// value, the last sample coincides with the first sample of the next
// corner.
func (c corner) seamHalfDimension(b rect.Rect) float64 {
	switch c {
	case cornerBottomLeft, cornerTopRight:
		return (b.URy - b.LLy) / 2
	default:
		return (b.URx - b.LLx) / 2
	}
}

// arc returns smoothness samples on the elliptic quarter arc with radii
// rx and ry which rounds corner c of b.  The samples run clockwise.
// Callers must ensure smoothness >= 2.
func (c corner) arc(b rect.Rect, rx, ry float64, smoothness int) []vec.Vec2 {
	sx, sy := c.inward()
	p := c.position(b)
	center := vec.Vec2{X: p.X + sx*rx, Y: p.Y + sy*ry}

	start := float64(c.startAngle())
	res := make([]vec.Vec2, smoothness)
	for i := range smoothness {
		quarter := start - float64(i)/float64(smoothness-1)
		dir := quarterDirection(quarter)
		res[i] = vec.Vec2{X: center.X + dir.X*rx, Y: center.Y + dir.Y*ry}
	}
	return res
}

// quarterDirection returns the unit vector at the given angle, measured in
// quarter turns counter-clockwise from the positive x-axis.  Whole quarter
// turns give exact axis directions, so that arc end points land exactly
// on the rectangle edges.
func quarterDirection(quarter float64) vec.Vec2 {
	if quarter == math.Trunc(quarter) {
		switch ((int(quarter) % 4) + 4) % 4 {
		case 0:
			return vec.Vec2{X: 1, Y: 0}
		case 1:
			return vec.Vec2{X: 0, Y: 1}
		case 2:
			return vec.Vec2{X: -1, Y: 0}
		default:
			return vec.Vec2{X: 0, Y: -1}
		}
	}
	sin, cos := math.Sincos(quarter * math.Pi / 2)
	return vec.Vec2{X: cos, Y: sin}
}
