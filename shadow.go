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

import "seehuhn.de/go/geom/vec"

// ShadowBand builds the band of an inner shadow for the shape src.
//
// Every boundary point of src is moved by offset.  Points whose moved
// position still lies inside src are kept, together with their moved
// copy (the shadow point, coloured black).  The result interleaves the
// kept points and their shadows, and connects every pair to the next
// pair by two triangles, provided the two points were neighbours on the
// boundary ring of src.
//
// Where the moved ring leaves the shape, the kept points no longer form
// a closed loop.  The outline indices of the result are assigned so that
// the loop is cut at the first such gap: the shadow points come first, in
// reverse order, followed by the original points, starting after the gap.
// This lets the result be passed through Compose like any other base mesh.
//
// If fewer than two boundary points are kept, the result is empty.
func ShadowBand(src Mesh, offset vec.Vec2) Mesh {
	ring := OutlineRing(src.Points)
	if len(ring) < 2 {
		return Mesh{}
	}

	var m Mesh
	for _, p := range ring {
		pos := p.Pos.Add(offset)
		if !ContainsPoint(src, pos) {
			continue
		}
		shadow := p
		shadow.Pos = pos
		shadow.Color = Black
		m.Points = append(m.Points, p, shadow)
	}
	n := len(m.Points) / 2
	if n < 2 {
		return Mesh{}
	}

	// Pairs are at positions 2k (original) and 2k+1 (shadow).  The loop
	// is cut after the first pair which is not followed by its ring
	// neighbour.
	rot := 0
	for k := range n {
		i := 2 * k
		j := (i + 2) % len(m.Points)
		cur := m.Points[i].OutlineIndex
		next := m.Points[j].OutlineIndex
		if next == cur+1 || next == 0 {
			m.Triangles = append(m.Triangles,
				Triangle{i, j, i + 1},
				Triangle{i + 1, j, j + 1})
		} else if rot == 0 {
			rot = k + 1
		}
	}

	for k := range n {
		var s int
		if k < rot {
			s = rot - 1 - k
		} else {
			s = rot + n - 1 - k
		}
		m.Points[2*k+1].OutlineIndex = s
		m.Points[2*k].OutlineIndex = n + (k-rot+n)%n
	}

	m.UVs = UVs(m.Points, Bounds(src.Points))
	return m
}
