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
	"math"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/shapemesh"
)

var fillCases = []TestCase{
	{
		Name:   "default_rectangle",
		Shape:  shapemesh.DefaultPolygon(),
		Bounds: box(64, 10),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "corner_rectangle",
		Shape:  shapemesh.CornerPolygon(),
		Bounds: box(64, 10),
		Width:  64,
		Height: 64,
	},
	{
		Name: "inset_corners",
		Shape: &shapemesh.Polygon{Points: []shapemesh.PolygonPoint{
			{Point: pt(4, 0), Alignment: shapemesh.BottomLeft},
			{Point: pt(0, 4), Alignment: shapemesh.BottomLeft},
			{Point: pt(0, 4), Alignment: shapemesh.TopLeft},
			{Point: pt(4, 0), Alignment: shapemesh.TopLeft},
			{Point: pt(4, 0), Alignment: shapemesh.TopRight},
			{Point: pt(0, 4), Alignment: shapemesh.TopRight},
			{Point: pt(0, 4), Alignment: shapemesh.BottomRight},
			{Point: pt(4, 0), Alignment: shapemesh.BottomRight},
		}},
		Bounds: box(64, 10),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "triangle",
		Shape:  relative(pt(0, 0), pt(0.5, 1), pt(1, 0)),
		Bounds: box(64, 10),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "star",
		Shape:  star(5, 0.5, 0.2),
		Bounds: box(64, 7),
		Width:  64,
		Height: 64,
		Visual: &shapemesh.VisualSettings{Color: color(1, 0.8, 0)},
	},
	{
		Name:   "rectangle_wide",
		Shape:  shapemesh.DefaultPolygon(),
		Bounds: rect.Rect{LLx: 2, LLy: 20, URx: 62, URy: 44},
		Width:  64,
		Height: 64,
	},
	{
		Name:   "rounded_rectangle_sharp",
		Shape:  &shapemesh.RoundedRectangle{Radius: 8, Smoothness: 1},
		Bounds: box(64, 10),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "rounded_rectangle",
		Shape:  &shapemesh.RoundedRectangle{Radius: 8, Smoothness: 6},
		Bounds: box(64, 10),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "antialiased",
		Shape:  star(5, 0.5, 0.2),
		Bounds: box(64, 7),
		Width:  64,
		Height: 64,
		Visual: &shapemesh.VisualSettings{Color: shapemesh.White, Antialiasing: true},
	},
	{
		Name:   "antialiased_rounded",
		Shape:  &shapemesh.RoundedRectangle{Radius: 12, Smoothness: 8},
		Bounds: box(64, 10),
		Width:  64,
		Height: 64,
		Visual: &shapemesh.VisualSettings{Color: color(0.2, 0.4, 1), Antialiasing: true},
	},
}

// star builds a star polygon with the given number of spikes, centred
// in the unit square.  The points run clockwise, starting at the top.
func star(spikes int, outer, inner float64) *shapemesh.Polygon {
	n := 2 * spikes
	pts := make([]vec.Vec2, n)
	for i := range n {
		angle := math.Pi/2 - float64(i)*math.Pi/float64(spikes)
		r := outer
		if i%2 == 1 {
			r = inner
		}
		pts[i] = pt(0.5+r*math.Cos(angle), 0.5+r*math.Sin(angle))
	}
	return relative(pts...)
}
