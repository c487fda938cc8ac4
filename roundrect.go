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
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// RoundedRectangle is a rectangle filling the bounds, with all four
// corners rounded by the same radius.
type RoundedRectangle struct {
	Radius float64 `yaml:"radius" json:"radius"`

	// Smoothness is the number of samples on each corner arc.  Values
	// of 1 or less give sharp corners.
	Smoothness int `yaml:"smoothness" json:"smoothness"`
}

// Generate implements the Shape interface.
//
// With sharp corners the mesh is the four corners of b, split along one
// diagonal.  Otherwise the first point is the centre of b (not part of the
// outline), followed by the corner arcs, and the triangles form a fan
// around the centre.
func (rr *RoundedRectangle) Generate(b rect.Rect) Mesh {
	w := b.URx - b.LLx
	h := b.URy - b.LLy
	r := min(rr.Radius, w/2, h/2)

	var m Mesh
	if rr.Smoothness <= 1 || r <= 0 {
		for c := cornerBottomLeft; c <= cornerBottomRight; c++ {
			m.Points = append(m.Points, NewPoint(c.position(b), int(c)))
		}
		m.Triangles = []Triangle{{0, 1, 2}, {0, 2, 3}}
		m.UVs = UVs(m.Points, Bounds(m.Points))
		return m
	}

	center := vec.Vec2{X: b.LLx + w/2, Y: b.LLy + h/2}
	m.Points = append(m.Points, NewPoint(center, NoOutline))

	for c := cornerBottomLeft; c <= cornerBottomRight; c++ {
		arc := c.arc(b, r, r, rr.Smoothness)
		if r == c.seamHalfDimension(b) {
			// the last sample would coincide with the first sample
			// of the next corner
			arc = arc[:len(arc)-1]
		}

		first := len(m.Points)
		for i, pos := range arc {
			m.Points = append(m.Points, NewPoint(pos, len(m.Points)-1))
			if i > 0 {
				m.Triangles = append(m.Triangles, Triangle{0, first + i - 1, first + i})
			}
		}

		// span to the first sample of the next corner
		next := len(m.Points)
		if c == cornerBottomRight {
			next = 1
		}
		m.Triangles = append(m.Triangles, Triangle{0, len(m.Points) - 1, next})
	}

	m.UVs = UVs(m.Points, Bounds(m.Points))
	return m
}
