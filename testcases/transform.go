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

var transformCases = []TestCase{
	{
		Name:      "grow",
		Shape:     shapemesh.DefaultPolygon(),
		Bounds:    box(64, 20),
		Width:     64,
		Height:    64,
		Transform: &shapemesh.TransformSettings{SizeOffset: 8},
	},
	{
		Name:      "shrink",
		Shape:     shapemesh.DefaultPolygon(),
		Bounds:    box(64, 10),
		Width:     64,
		Height:    64,
		Transform: &shapemesh.TransformSettings{SizeOffset: -8},
	},
	{
		Name:      "shrink_rounded_rectangle",
		Shape:     &shapemesh.RoundedRectangle{Radius: 12, Smoothness: 6},
		Bounds:    box(64, 10),
		Width:     64,
		Height:    64,
		Transform: &shapemesh.TransformSettings{SizeOffset: -4},
	},
	{
		Name:      "move",
		Shape:     star(5, 0.5, 0.2),
		Bounds:    box(64, 12),
		Width:     64,
		Height:    64,
		Transform: &shapemesh.TransformSettings{PositionOffset: pt(6, -6)},
	},
	{
		Name:      "grow_and_move_outline",
		Shape:     shapemesh.RoundedPolygon(6),
		Bounds:    box(64, 16),
		Width:     64,
		Height:    64,
		Visual:    &shapemesh.VisualSettings{Color: shapemesh.White, Outline: true, OutlineWidth: 2},
		Transform: &shapemesh.TransformSettings{SizeOffset: 4, PositionOffset: pt(-3, 3)},
	},
	{
		Name:      "size_offset_clamped",
		Shape:     shapemesh.DefaultPolygon(),
		Bounds:    box(64, 31),
		Width:     64,
		Height:    64,
		Transform: &shapemesh.TransformSettings{SizeOffset: 1e6},
	},
}
