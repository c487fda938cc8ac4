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

// Bounds returns the axis-aligned bounding box of the points.
// The zero rectangle is returned if there are no points.
func Bounds(points []Point) rect.Rect {
	if len(points) == 0 {
		return rect.Rect{}
	}
	b := rect.Rect{
		LLx: points[0].Pos.X, LLy: points[0].Pos.Y,
		URx: points[0].Pos.X, URy: points[0].Pos.Y,
	}
	for _, p := range points[1:] {
		b.LLx = min(b.LLx, p.Pos.X)
		b.LLy = min(b.LLy, p.Pos.Y)
		b.URx = max(b.URx, p.Pos.X)
		b.URy = max(b.URy, p.Pos.Y)
	}
	return b
}

// UV maps pos to texture coordinates relative to b.  The lower left
// corner of b maps to (0, 0) and the upper right corner to (1, 1);
// positions outside b are clamped.
func UV(pos vec.Vec2, b rect.Rect) vec.Vec2 {
	return vec.Vec2{
		X: inverseLerp(b.LLx, b.URx, pos.X),
		Y: inverseLerp(b.LLy, b.URy, pos.Y),
	}
}

// UVs maps every point to texture coordinates relative to b.
func UVs(points []Point, b rect.Rect) []vec.Vec2 {
	uvs := make([]vec.Vec2, len(points))
	for i, p := range points {
		uvs[i] = UV(p.Pos, b)
	}
	return uvs
}

func inverseLerp(a, b, x float64) float64 {
	if a == b {
		return 0
	}
	t := (x - a) / (b - a)
	return min(max(t, 0), 1)
}

func isDegenerate(b rect.Rect) bool {
	return b.URx-b.LLx == 0 || b.URy-b.LLy == 0
}
