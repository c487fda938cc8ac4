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

import "seehuhn.de/go/shapemesh"

var outlineCases = []TestCase{
	{
		Name:   "outline_rectangle",
		Shape:  shapemesh.DefaultPolygon(),
		Bounds: box(64, 12),
		Width:  64,
		Height: 64,
		Visual: &shapemesh.VisualSettings{Color: shapemesh.White, Outline: true, OutlineWidth: 4},
	},
	{
		Name:   "outline_outside",
		Shape:  shapemesh.DefaultPolygon(),
		Bounds: box(64, 12),
		Width:  64,
		Height: 64,
		Visual: &shapemesh.VisualSettings{Color: shapemesh.White, Outline: true, OutlineWidth: -4},
	},
	{
		Name:   "outline_star",
		Shape:  star(5, 0.5, 0.25),
		Bounds: box(64, 7),
		Width:  64,
		Height: 64,
		Visual: &shapemesh.VisualSettings{Color: color(1, 0, 0), Outline: true, OutlineWidth: 1.5},
	},
	{
		Name:   "outline_rounded_rectangle",
		Shape:  &shapemesh.RoundedRectangle{Radius: 10, Smoothness: 6},
		Bounds: box(64, 10),
		Width:  64,
		Height: 64,
		Visual: &shapemesh.VisualSettings{Color: shapemesh.White, Outline: true, OutlineWidth: 3},
	},
	{
		Name:   "outline_antialiased",
		Shape:  shapemesh.RoundedPolygon(10),
		Bounds: box(64, 10),
		Width:  64,
		Height: 64,
		Visual: &shapemesh.VisualSettings{
			Color:        shapemesh.White,
			Outline:      true,
			OutlineWidth: 3,
			Antialiasing: true,
		},
	},
	{
		Name:   "outline_width_clamped",
		Shape:  shapemesh.DefaultPolygon(),
		Bounds: box(64, 30),
		Width:  64,
		Height: 64,
		Visual: &shapemesh.VisualSettings{Color: shapemesh.White, Outline: true, OutlineWidth: 1000},
	},
	{
		Name:   "outline_and_glow",
		Shape:  shapemesh.DefaultPolygon(),
		Bounds: box(64, 12),
		Width:  64,
		Height: 64,
		Visual: &shapemesh.VisualSettings{
			Color:        shapemesh.White,
			Outline:      true,
			Glow:         true,
			OutlineWidth: 4,
		},
	},
}

var glowCases = []TestCase{
	{
		Name:   "glow_rectangle",
		Shape:  shapemesh.DefaultPolygon(),
		Bounds: box(64, 16),
		Width:  64,
		Height: 64,
		Visual: &shapemesh.VisualSettings{Color: color(0, 1, 1), Glow: true, OutlineWidth: 8, DetailLevel: 3},
	},
	{
		Name:   "glow_no_detail",
		Shape:  shapemesh.DefaultPolygon(),
		Bounds: box(64, 16),
		Width:  64,
		Height: 64,
		Visual: &shapemesh.VisualSettings{Color: color(0, 1, 1), Glow: true, OutlineWidth: 8},
	},
	{
		Name:   "glow_max_detail",
		Shape:  shapemesh.DefaultPolygon(),
		Bounds: box(64, 16),
		Width:  64,
		Height: 64,
		Visual: &shapemesh.VisualSettings{Color: color(0, 1, 1), Glow: true, OutlineWidth: 8, DetailLevel: 10},
	},
	{
		Name:   "glow_star",
		Shape:  star(5, 0.5, 0.25),
		Bounds: box(64, 14),
		Width:  64,
		Height: 64,
		Visual: &shapemesh.VisualSettings{Color: color(1, 1, 0), Glow: true, OutlineWidth: 6, DetailLevel: 4},
	},
	{
		Name:   "glow_translucent",
		Shape:  &shapemesh.RoundedRectangle{Radius: 6, Smoothness: 4},
		Bounds: box(64, 16),
		Width:  64,
		Height: 64,
		Visual: &shapemesh.VisualSettings{
			Color:        shapemesh.Color{R: 1, G: 0.5, B: 0, A: 0.5},
			Glow:         true,
			OutlineWidth: 8,
			DetailLevel:  2,
			Antialiasing: true,
		},
	},
}
