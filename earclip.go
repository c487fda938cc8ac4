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
	"slices"

	"seehuhn.de/go/geom/vec"
)

// Triangulate splits the area enclosed by a ring into triangles, using
// ear clipping.  The triangle indices refer to positions in ring.
//
// The ring must be clockwise in a y-up coordinate system, as produced by
// the shape generators.  A simple ring of N points gives N-2 triangles.
// Rings with fewer than three points give no triangles.
//
// If at some stage no ear can be found, which happens for self-intersecting
// or numerically degenerate rings, clipping stops and the first three
// remaining points are emitted as a final triangle.  The result is then
// structurally valid but does not cover the ring correctly.
func Triangulate(ring []Point) []Triangle {
	n := len(ring)
	if n < 3 {
		return nil
	}

	tris := make([]Triangle, 0, n-2)
	work := make([]int, n)
	for i := range work {
		work[i] = i
	}

	for len(work) > 3 {
		ear := findEar(ring, work)
		if ear < 0 {
			Logger().Warn("ear clipping found no ear",
				"points", n, "remaining", len(work))
			break
		}
		m := len(work)
		a, b, c := work[ear], work[(ear+1)%m], work[(ear+2)%m]
		tris = append(tris, Triangle{a, b, c})
		k := (ear + 1) % m
		work = slices.Delete(work, k, k+1)
	}

	tris = append(tris, Triangle{work[0], work[1], work[2]})
	return tris
}

// findEar returns the position in work of the first vertex a of an ear
// (a, b, c), or -1 if there is none.
func findEar(ring []Point, work []int) int {
	m := len(work)
	for i := range m {
		ia, ib, ic := work[i], work[(i+1)%m], work[(i+2)%m]
		a, b, c := ring[ia].Pos, ring[ib].Pos, ring[ic].Pos

		// For a clockwise ring, convex corners turn right.
		if cross(c.Sub(b), a.Sub(b)) > 0 {
			continue
		}
		if anyPointInTriangle(ring, work, ia, ib, ic) {
			continue
		}
		return i
	}
	return -1
}

// anyPointInTriangle reports whether a point of work other than the three
// corners lies inside or on the boundary of the triangle.  Points which
// were already clipped away are not considered.
func anyPointInTriangle(ring []Point, work []int, ia, ib, ic int) bool {
	a, b, c := ring[ia].Pos, ring[ib].Pos, ring[ic].Pos
	for _, i := range work {
		if i == ia || i == ib || i == ic {
			continue
		}
		if insideClosed(ring[i].Pos, a, b, c) {
			return true
		}
	}
	return false
}

// insideClosed is an exact sign test: p lies in the closed triangle abc
// if it is on the same side of all three edges.  Zero-area triangles
// contain nothing.
func insideClosed(p, a, b, c vec.Vec2) bool {
	if cross(b.Sub(a), c.Sub(a)) == 0 {
		return false
	}
	d1 := cross(b.Sub(a), p.Sub(a))
	d2 := cross(c.Sub(b), p.Sub(b))
	d3 := cross(a.Sub(c), p.Sub(c))
	hasNeg := d1 < 0 || d2 < 0 || d3 < 0
	hasPos := d1 > 0 || d2 > 0 || d3 > 0
	return !(hasNeg && hasPos)
}
