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
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/shapemesh"
)

// TestCase defines a single shape scenario.
type TestCase struct {
	Name   string          // lowercase a-z, 0-9 and _ only
	Shape  shapemesh.Shape // *shapemesh.Polygon or *shapemesh.RoundedRectangle
	Bounds rect.Rect       // layout rectangle, in canvas coordinates (y up)
	Width  int             // canvas width in pixels
	Height int             // canvas height in pixels

	Visual    *shapemesh.VisualSettings    // nil means default settings
	Transform *shapemesh.TransformSettings // nil means default settings
	Copies    []shapemesh.CopySettings     // shadow and overlay copies

	// SelfIntersecting marks shapes whose boundary crosses itself.
	// Their triangles need not cover the area enclosed by the ring.
	SelfIntersecting bool
}

// Document returns the test case as a shape document.
func (tc TestCase) Document() *shapemesh.Document {
	d := &shapemesh.Document{
		Bounds:    tc.Bounds,
		Visual:    tc.Visual,
		Transform: tc.Transform,
		Copies:    tc.Copies,
	}
	switch s := tc.Shape.(type) {
	case *shapemesh.Polygon:
		d.Polygon = s
	case *shapemesh.RoundedRectangle:
		d.RoundedRectangle = s
	}
	return d
}

// Build returns the combined geometry of the test case.
func (tc TestCase) Build() shapemesh.Mesh {
	m, err := tc.Document().Build()
	if err != nil {
		panic(tc.Name + ": " + err.Error())
	}
	return m
}

// box returns bounds with a margin on all four sides of a size×size canvas.
func box(size, margin float64) rect.Rect {
	return rect.Rect{LLx: margin, LLy: margin, URx: size - margin, URy: size - margin}
}

// relative builds a polygon from points in the unit square.
func relative(pts ...vec.Vec2) *shapemesh.Polygon {
	poly := &shapemesh.Polygon{}
	for _, p := range pts {
		poly.Points = append(poly.Points, shapemesh.PolygonPoint{Point: p})
	}
	return poly
}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

// color returns an opaque colour.
func color(r, g, b float64) shapemesh.Color {
	return shapemesh.Color{R: r, G: g, B: b, A: 1}
}
