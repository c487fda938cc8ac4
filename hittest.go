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

	"seehuhn.de/go/geom/vec"
)

// HitMargin is the distance by which every triangle corner is pushed away
// from the triangle centroid before a hit test.  Neighbouring triangles
// overlap slightly, so points on shared edges never fall through a seam.
const HitMargin = 0.01

// PointInTriangle reports whether p lies inside the triangle abc after
// growing the triangle by margin.  Degenerate triangles contain no points.
func PointInTriangle(p, a, b, c vec.Vec2, margin float64) bool {
	if margin != 0 {
		center := a.Add(b).Add(c).Mul(1.0 / 3)
		a = a.Add(unit(a.Sub(center)).Mul(margin))
		b = b.Add(unit(b.Sub(center)).Mul(margin))
		c = c.Add(unit(c.Sub(center)).Mul(margin))
	}

	// barycentric coordinates
	v0 := c.Sub(a)
	v1 := b.Sub(a)
	v2 := p.Sub(a)

	dot00 := v0.Dot(v0)
	dot01 := v0.Dot(v1)
	dot02 := v0.Dot(v2)
	dot11 := v1.Dot(v1)
	dot12 := v1.Dot(v2)

	denom := dot00*dot11 - dot01*dot01
	if math.Abs(denom) < approachingZero {
		return false
	}
	u := (dot11*dot02 - dot01*dot12) / denom
	v := (dot00*dot12 - dot01*dot02) / denom
	return u >= 0 && v >= 0 && u+v <= 1
}

// ContainsPoint reports whether p lies inside any triangle of m,
// using HitMargin.
func ContainsPoint(m Mesh, p vec.Vec2) bool {
	for _, t := range m.Triangles {
		a, b, c := t.Vertices(m.Points)
		if PointInTriangle(p, a, b, c, HitMargin) {
			return true
		}
	}
	return false
}

// approachingZero is the determinant below which a triangle is treated
// as degenerate.
const approachingZero = 1e-13
