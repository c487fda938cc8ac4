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

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/shapemesh"
)

// largeCases contains shapes with many points on large canvases.
var largeCases = []TestCase{
	{
		Name:   "circle_256",
		Shape:  regular(256),
		Bounds: box(512, 50),
		Width:  512,
		Height: 512,
	},
	{
		Name:   "star_64",
		Shape:  star(64, 0.5, 0.4),
		Bounds: box(512, 20),
		Width:  512,
		Height: 512,
		Visual: &shapemesh.VisualSettings{Color: shapemesh.White, Antialiasing: true},
	},
	{
		Name:   "glow_circle",
		Shape:  regular(96),
		Bounds: box(512, 80),
		Width:  512,
		Height: 512,
		Visual: &shapemesh.VisualSettings{Color: color(0.5, 0.5, 1), Glow: true, OutlineWidth: 40, DetailLevel: 10},
	},
	{
		Name:   "rounded_rectangle_smooth",
		Shape:  &shapemesh.RoundedRectangle{Radius: 120, Smoothness: 64},
		Bounds: box(512, 30),
		Width:  512,
		Height: 512,
	},
}

// regular builds a regular polygon with n corners inscribed in the unit
// square, in clockwise order.
func regular(n int) *shapemesh.Polygon {
	pts := make([]vec.Vec2, n)
	for i := range n {
		angle := -2 * math.Pi * float64(i) / float64(n)
		pts[i] = pt(0.5+0.5*math.Cos(angle), 0.5+0.5*math.Sin(angle))
	}
	return relative(pts...)
}
