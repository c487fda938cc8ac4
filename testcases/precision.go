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
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/shapemesh"
)

// precisionCases contains degenerate and numerically difficult input.
var precisionCases = []TestCase{
	{
		Name:   "zero_width",
		Shape:  shapemesh.DefaultPolygon(),
		Bounds: rect.Rect{LLx: 32, LLy: 10, URx: 32, URy: 54},
		Width:  64,
		Height: 64,
	},
	{
		Name:   "zero_height",
		Shape:  &shapemesh.RoundedRectangle{Radius: 4, Smoothness: 4},
		Bounds: rect.Rect{LLx: 10, LLy: 32, URx: 54, URy: 32},
		Width:  64,
		Height: 64,
	},
	{
		Name:   "thin_rectangle",
		Shape:  shapemesh.DefaultPolygon(),
		Bounds: rect.Rect{LLx: 10, LLy: 32, URx: 54, URy: 32.01},
		Width:  64,
		Height: 64,
		Visual: &shapemesh.VisualSettings{Color: shapemesh.White, Antialiasing: true},
	},
	{
		Name:   "collinear_points",
		Shape:  relative(pt(0, 0), pt(0, 0.5), pt(0, 1), pt(0.5, 1), pt(1, 1), pt(1, 0)),
		Bounds: box(64, 10),
		Width:  64,
		Height: 64,
		Visual: &shapemesh.VisualSettings{Color: shapemesh.White, Outline: true, OutlineWidth: 2, Antialiasing: true},
	},
	{
		Name:   "duplicate_points",
		Shape:  relative(pt(0, 0), pt(0, 0), pt(0, 1), pt(1, 1), pt(1, 1), pt(1, 0), pt(1, 0)),
		Bounds: box(64, 10),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "two_points",
		Shape:  relative(pt(0, 0), pt(1, 1)),
		Bounds: box(64, 10),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "spike",
		Shape:  relative(pt(0, 0), pt(0.5, 1), pt(0.52, 0), pt(1, 0.02)),
		Bounds: box(64, 6),
		Width:  64,
		Height: 64,
		Visual: &shapemesh.VisualSettings{Color: shapemesh.White, Outline: true, OutlineWidth: -1},

		SelfIntersecting: true,
	},
	{
		Name:   "self_intersecting",
		Shape:  relative(pt(0, 0), pt(1, 1), pt(1, 0), pt(0, 1)),
		Bounds: box(64, 10),
		Width:  64,
		Height: 64,

		SelfIntersecting: true,
	},
	{
		Name:   "tiny",
		Shape:  shapemesh.RoundedPolygon(3),
		Bounds: rect.Rect{LLx: 31, LLy: 31, URx: 31.5, URy: 31.5},
		Width:  64,
		Height: 64,
	},
}
