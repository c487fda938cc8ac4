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

var (
	shadowColor = shapemesh.Color{A: 0.5}
	dropShadow  = shapemesh.CopySettings{
		Visual:    &shapemesh.VisualSettings{Color: shadowColor},
		Transform: &shapemesh.TransformSettings{PositionOffset: pt(3, -3)},
	}
)

func innerShadow(dx, dy float64) shapemesh.CopySettings {
	return shapemesh.CopySettings{
		Visual:    &shapemesh.VisualSettings{Color: shadowColor, InnerShadow: true},
		Transform: &shapemesh.TransformSettings{PositionOffset: pt(dx, dy)},
		Overlay:   true,
	}
}

var shadowCases = []TestCase{
	{
		Name:   "drop_shadow",
		Shape:  shapemesh.DefaultPolygon(),
		Bounds: box(64, 12),
		Width:  64,
		Height: 64,
		Copies: []shapemesh.CopySettings{dropShadow},
	},
	{
		Name:   "drop_shadow_rounded",
		Shape:  &shapemesh.RoundedRectangle{Radius: 10, Smoothness: 6},
		Bounds: box(64, 12),
		Width:  64,
		Height: 64,
		Copies: []shapemesh.CopySettings{dropShadow},
	},
	{
		Name:   "inner_shadow_square",
		Shape:  shapemesh.DefaultPolygon(),
		Bounds: box(64, 12),
		Width:  64,
		Height: 64,
		Copies: []shapemesh.CopySettings{innerShadow(0.001, 0.001)},
	},
	{
		Name:   "inner_shadow_offset",
		Shape:  shapemesh.DefaultPolygon(),
		Bounds: box(64, 12),
		Width:  64,
		Height: 64,
		Copies: []shapemesh.CopySettings{innerShadow(4, -4)},
	},
	{
		Name:   "inner_shadow_rounded",
		Shape:  shapemesh.RoundedPolygon(10),
		Bounds: box(64, 12),
		Width:  64,
		Height: 64,
		Copies: []shapemesh.CopySettings{innerShadow(3, -3)},
	},
	{
		Name:   "inner_shadow_concave",
		Shape:  lShape(),
		Bounds: box(64, 8),
		Width:  64,
		Height: 64,
		Copies: []shapemesh.CopySettings{innerShadow(4, 4)},
	},
	{
		Name:   "shadow_and_overlay",
		Shape:  star(5, 0.5, 0.2),
		Bounds: box(64, 8),
		Width:  64,
		Height: 64,
		Copies: []shapemesh.CopySettings{
			dropShadow,
			{
				Visual: &shapemesh.VisualSettings{
					Color:        shapemesh.Color{R: 1, A: 1},
					Outline:      true,
					OutlineWidth: 1,
				},
				Overlay: true,
			},
		},
	},
}
