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

import "seehuhn.de/go/geom/vec"

// NoOutline is the outline index of points which are not part of a
// boundary ring, for example the centre point of a rounded rectangle.
const NoOutline = -1

// Point is a mesh vertex.
//
// Point is a value type: assigning a Point copies it, so modifying a copy
// never changes the original.
type Point struct {
	Pos vec.Vec2

	// OutlineIndex is the rank of the point in its boundary ring,
	// or NoOutline if the point is not on the ring.
	OutlineIndex int

	Color Color
}

// NewPoint returns an opaque white point.
func NewPoint(pos vec.Vec2, outlineIndex int) Point {
	return Point{Pos: pos, OutlineIndex: outlineIndex, Color: White}
}

// Moved returns a copy of p translated by v.
func (p Point) Moved(v vec.Vec2) Point {
	p.Pos = p.Pos.Add(v)
	return p
}

// OnOutline reports whether p belongs to a boundary ring.
func (p Point) OnOutline() bool {
	return p.OutlineIndex >= 0
}

// Color is a non-premultiplied RGBA colour with components in [0, 1].
type Color struct {
	R float64 `yaml:"r" json:"r"`
	G float64 `yaml:"g" json:"g"`
	B float64 `yaml:"b" json:"b"`
	A float64 `yaml:"a" json:"a"`
}

// Predefined colours.
var (
	White       = Color{R: 1, G: 1, B: 1, A: 1}
	Black       = Color{A: 1}
	Transparent = Color{}
)

// Scale returns c with its alpha multiplied by alpha.
func (c Color) Scale(alpha float64) Color {
	c.A *= alpha
	return c
}

// Tint returns the colour with the RGB components of tint and the
// product of both alpha values.  This is how glow points are coloured:
// the halo fades out wherever c is transparent.
func (c Color) Tint(tint Color) Color {
	return Color{R: tint.R, G: tint.G, B: tint.B, A: c.A * tint.A}
}
