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

package testcases

import (
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/shapemesh"
)

var complexCases = []TestCase{
	{
		Name:   "l_shape",
		Shape:  lShape(),
		Bounds: box(64, 8),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "comb",
		Shape:  comb(4),
		Bounds: box(64, 6),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "arrow",
		Shape:  relative(pt(0, 0.35), pt(0, 0.65), pt(0.6, 0.65), pt(0.6, 0.9), pt(1, 0.5), pt(0.6, 0.1), pt(0.6, 0.35)),
		Bounds: box(64, 6),
		Width:  64,
		Height: 64,
	},
	{
		Name: "notched_rounded",
		Shape: &shapemesh.Polygon{Points: []shapemesh.PolygonPoint{
			{Alignment: shapemesh.RoundedBottomLeft, Radius: 8, Smoothness: 5},
			{Alignment: shapemesh.RoundedTopLeft, Radius: 8, Smoothness: 5},
			{Point: pt(0.4, 1)},
			{Point: pt(0.5, 0.7)},
			{Point: pt(0.6, 1)},
			{Alignment: shapemesh.RoundedTopRight, Radius: 8, Smoothness: 5},
			{Alignment: shapemesh.RoundedBottomRight, Radius: 8, Smoothness: 5},
		}},
		Bounds: box(64, 6),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "comb_outline",
		Shape:  comb(3),
		Bounds: box(64, 8),
		Width:  64,
		Height: 64,
		Visual: &shapemesh.VisualSettings{Color: shapemesh.White, Outline: true, OutlineWidth: 1},
	},
	{
		Name:   "comb_glow",
		Shape:  comb(3),
		Bounds: box(64, 12),
		Width:  64,
		Height: 64,
		Visual: &shapemesh.VisualSettings{Color: shapemesh.White, Glow: true, OutlineWidth: 4, DetailLevel: 2},
	},
}

// lShape is an L with the upper right quadrant removed.
func lShape() *shapemesh.Polygon {
	return relative(pt(0, 0), pt(0, 1), pt(0.5, 1), pt(0.5, 0.5), pt(1, 0.5), pt(1, 0))
}

// comb builds a comb with n teeth pointing up.
func comb(n int) *shapemesh.Polygon {
	pts := []vec.Vec2{pt(0, 0)}
	w := 1 / float64(2*n-1)
	for i := range n {
		x := float64(2*i) * w
		pts = append(pts, pt(x, 1), pt(x+w, 1))
		if i < n-1 {
			pts = append(pts, pt(x+w, 0.3), pt(x+2*w, 0.3))
		}
	}
	pts = append(pts, pt(1, 0))
	return relative(pts...)
}
