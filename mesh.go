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
	"fmt"
	"math"
	"slices"

	"seehuhn.de/go/geom/vec"
)

// Triangle holds three indices into a point buffer.
// The indices are only meaningful for the buffer the triangle was built
// for; any operation which inserts points in front of existing ones must
// rebase the triangles.
type Triangle struct {
	A, B, C int
}

// Shift returns the triangle with all three indices increased by n.
func (t Triangle) Shift(n int) Triangle {
	return Triangle{A: t.A + n, B: t.B + n, C: t.C + n}
}

// Vertices returns the positions of the triangle corners.
func (t Triangle) Vertices(points []Point) (a, b, c vec.Vec2) {
	return points[t.A].Pos, points[t.B].Pos, points[t.C].Pos
}

// Area returns the unsigned area of the triangle.
func (t Triangle) Area(points []Point) float64 {
	a, b, c := t.Vertices(points)
	return math.Abs(cross(b.Sub(a), c.Sub(a))) / 2
}

// Rebase adds n to every index of every triangle in tris.
func Rebase(tris []Triangle, n int) {
	if n == 0 {
		return
	}
	for i := range tris {
		tris[i] = tris[i].Shift(n)
	}
}

// Mesh is a triangulated point buffer together with per-point texture
// coordinates.
//
// A mesh produced by this package satisfies len(UVs) == len(Points) and
// every triangle index lies in [0, len(Points)).
type Mesh struct {
	Points    []Point
	Triangles []Triangle
	UVs       []vec.Vec2
}

// Clone returns a deep copy of m.
func (m Mesh) Clone() Mesh {
	return Mesh{
		Points:    slices.Clone(m.Points),
		Triangles: slices.Clone(m.Triangles),
		UVs:       slices.Clone(m.UVs),
	}
}

// Reset empties all buffers, preserving capacity.
func (m *Mesh) Reset() {
	m.Points = m.Points[:0]
	m.Triangles = m.Triangles[:0]
	m.UVs = m.UVs[:0]
}

// IsEmpty reports whether the mesh has no triangles.
func (m Mesh) IsEmpty() bool {
	return len(m.Triangles) == 0
}

// Prepend inserts points, uvs and triangles in front of the existing
// buffers.  The existing triangles are rebased by len(points); the new
// triangles must already refer to the new points, starting at index 0.
func (m *Mesh) Prepend(points []Point, uvs []vec.Vec2, tris []Triangle) {
	Rebase(m.Triangles, len(points))
	m.Points = slices.Insert(m.Points, 0, points...)
	m.UVs = slices.Insert(m.UVs, 0, uvs...)
	m.Triangles = slices.Insert(m.Triangles, 0, tris...)
}

// Append adds the contents of other after the existing buffers.  The
// triangles of other are rebased to refer to their new positions.
func (m *Mesh) Append(other Mesh) {
	base := len(m.Points)
	m.Points = append(m.Points, other.Points...)
	m.UVs = append(m.UVs, other.UVs...)
	for _, t := range other.Triangles {
		m.Triangles = append(m.Triangles, t.Shift(base))
	}
}

// Area returns the sum of all triangle areas.
func (m Mesh) Area() float64 {
	var total float64
	for _, t := range m.Triangles {
		total += t.Area(m.Points)
	}
	return total
}

// Validate checks the invariants a mesh consumer relies on.
func (m Mesh) Validate() error {
	if len(m.UVs) != len(m.Points) {
		return fmt.Errorf("%d UVs for %d points", len(m.UVs), len(m.Points))
	}
	n := len(m.Points)
	for i, t := range m.Triangles {
		for _, idx := range [3]int{t.A, t.B, t.C} {
			if idx < 0 || idx >= n {
				return fmt.Errorf("triangle %d: index %d out of range [0, %d)", i, idx, n)
			}
		}
	}
	return nil
}
