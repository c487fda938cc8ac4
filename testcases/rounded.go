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

var roundedCases = []TestCase{
	{
		Name:   "rounded_polygon",
		Shape:  shapemesh.RoundedPolygon(8),
		Bounds: box(64, 10),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "stretched_polygon",
		Shape:  shapemesh.StretchedPolygon(pt(16, 6), 8),
		Bounds: box(64, 10),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "rounded_polygon_clamped",
		Shape:  &shapemesh.Polygon{Points: shapemesh.RoundedPolygon(40).Points, ClampCorners: true},
		Bounds: box(64, 10),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "rounded_polygon_circle",
		Shape:  shapemesh.RoundedPolygon(40),
		Bounds: box(64, 10),
		Width:  64,
		Height: 64,
	},
	{
		Name: "single_rounded_corner",
		Shape: &shapemesh.Polygon{Points: []shapemesh.PolygonPoint{
			{Alignment: shapemesh.BottomLeft},
			{Alignment: shapemesh.TopLeft},
			{Alignment: shapemesh.RoundedTopRight, Radius: 20, Smoothness: 10},
			{Alignment: shapemesh.BottomRight},
		}},
		Bounds: box(64, 10),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "rounded_rectangle_pill",
		Shape:  &shapemesh.RoundedRectangle{Radius: 100, Smoothness: 8},
		Bounds: rect.Rect{LLx: 4, LLy: 22, URx: 60, URy: 42},
		Width:  64,
		Height: 64,
	},
	{
		Name:   "rounded_rectangle_circle",
		Shape:  &shapemesh.RoundedRectangle{Radius: 100, Smoothness: 12},
		Bounds: box(64, 10),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "rounded_rectangle_small_radius",
		Shape:  &shapemesh.RoundedRectangle{Radius: 2, Smoothness: 4},
		Bounds: box(64, 10),
		Width:  64,
		Height: 64,
	},
}
