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

import (
	"fmt"

	"gopkg.in/yaml.v3"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Alignment specifies how a PolygonPoint is placed inside the bounds.
type Alignment int

const (
	// Relative places the point by bilinear interpolation: (0, 0) is the
	// lower left and (1, 1) the upper right corner of the bounds.
	Relative Alignment = iota

	// BottomLeft, TopLeft, TopRight and BottomRight place the point at an
	// absolute offset from the named corner, measured towards the inside
	// of the bounds.
	BottomLeft
	TopLeft
	TopRight
	BottomRight

	// The Rounded alignments replace the named corner by a circular arc.
	RoundedBottomLeft
	RoundedTopLeft
	RoundedTopRight
	RoundedBottomRight

	// The RoundedStretched alignments replace the named corner by an
	// elliptic arc with independent horizontal and vertical radii.
	RoundedStretchedBottomLeft
	RoundedStretchedTopLeft
	RoundedStretchedTopRight
	RoundedStretchedBottomRight
)

var alignmentNames = [...]string{
	Relative:                    "relative",
	BottomLeft:                  "bottomLeft",
	TopLeft:                     "topLeft",
	TopRight:                    "topRight",
	BottomRight:                 "bottomRight",
	RoundedBottomLeft:           "roundedBottomLeft",
	RoundedTopLeft:              "roundedTopLeft",
	RoundedTopRight:             "roundedTopRight",
	RoundedBottomRight:          "roundedBottomRight",
	RoundedStretchedBottomLeft:  "roundedStretchedBottomLeft",
	RoundedStretchedTopLeft:     "roundedStretchedTopLeft",
	RoundedStretchedTopRight:    "roundedStretchedTopRight",
	RoundedStretchedBottomRight: "roundedStretchedBottomRight",
}

// String returns the name used when serializing the alignment.
func (a Alignment) String() string {
	if a >= 0 && int(a) < len(alignmentNames) {
		return alignmentNames[a]
	}
	return fmt.Sprintf("Alignment(%d)", int(a))
}

// ParseAlignment converts an alignment name to an Alignment.
// The name "absolute", used by older documents for the zero value, is
// accepted as an alias for Relative.
func ParseAlignment(s string) (Alignment, error) {
	if s == "" || s == "absolute" {
		return Relative, nil
	}
	for i, name := range alignmentNames {
		if name == s {
			return Alignment(i), nil
		}
	}
	return 0, fmt.Errorf("unknown alignment %q", s)
}

// MarshalText implements the encoding.TextMarshaler interface.
func (a Alignment) MarshalText() ([]byte, error) {
	if a < 0 || int(a) >= len(alignmentNames) {
		return nil, fmt.Errorf("invalid alignment %d", int(a))
	}
	return []byte(a.String()), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (a *Alignment) UnmarshalText(text []byte) error {
	v, err := ParseAlignment(string(text))
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// MarshalYAML implements the yaml.Marshaler interface.
func (a Alignment) MarshalYAML() (any, error) {
	text, err := a.MarshalText()
	if err != nil {
		return nil, err
	}
	return string(text), nil
}

// UnmarshalYAML implements the yaml.Unmarshaler interface.
func (a *Alignment) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: alignment must be a string", value.Line)
	}
	return a.UnmarshalText([]byte(value.Value))
}

// corner returns the rectangle corner for the Rounded and RoundedStretched
// alignments.
func (a Alignment) corner() (c corner, stretched, ok bool) {
	switch {
	case a >= RoundedBottomLeft && a <= RoundedBottomRight:
		return corner(a - RoundedBottomLeft), false, true
	case a >= RoundedStretchedBottomLeft && a <= RoundedStretchedBottomRight:
		return corner(a - RoundedStretchedBottomLeft), true, true
	default:
		return 0, false, false
	}
}

// PolygonPoint is one entry of a polygon description.  Depending on the
// alignment, it contributes one or more points to the polygon ring.
type PolygonPoint struct {
	Point     vec.Vec2  `yaml:"point" json:"point"`
	Alignment Alignment `yaml:"alignment" json:"alignment"`

	// Smoothness is the number of samples on a rounded corner.
	Smoothness int `yaml:"smoothness,omitempty" json:"smoothness,omitempty"`

	// Radius is the corner radius for the Rounded alignments.
	Radius float64 `yaml:"radius,omitempty" json:"radius,omitempty"`

	// RadiusVector holds the horizontal and vertical corner radii for the
	// RoundedStretched alignments.
	RadiusVector vec.Vec2 `yaml:"radiusVector,omitempty" json:"radiusVector,omitempty"`
}

// Polygon is a shape whose boundary is given by a list of points.
type Polygon struct {
	Points []PolygonPoint `yaml:"points" json:"points"`

	// ClampCorners keeps rounded corners slightly smaller than half the
	// bounds, so that no zero-length edges appear between opposite corners.
	ClampCorners bool `yaml:"clampCorners,omitempty" json:"clampCorners,omitempty"`
}

// clampMargin is subtracted from the bounds size when ClampCorners is set.
const clampMargin = 0.01

// DefaultPolygon returns the unit rectangle polygon.
func DefaultPolygon() *Polygon {
	return &Polygon{Points: []PolygonPoint{
		{Point: vec.Vec2{X: 0, Y: 0}},
		{Point: vec.Vec2{X: 0, Y: 1}},
		{Point: vec.Vec2{X: 1, Y: 1}},
		{Point: vec.Vec2{X: 1, Y: 0}},
	}}
}

// CornerPolygon returns the rectangle polygon anchored at the four
// corners of the bounds.
func CornerPolygon() *Polygon {
	return &Polygon{Points: []PolygonPoint{
		{Alignment: BottomLeft},
		{Alignment: TopLeft},
		{Alignment: TopRight},
		{Alignment: BottomRight},
	}}
}

// RoundedPolygon returns a rectangle polygon with all four corners
// rounded.  The radius doubles as the number of samples per corner.
func RoundedPolygon(radius int) *Polygon {
	res := &Polygon{}
	for a := RoundedBottomLeft; a <= RoundedBottomRight; a++ {
		res.Points = append(res.Points, PolygonPoint{
			Alignment:  a,
			Radius:     float64(radius),
			Smoothness: radius,
		})
	}
	return res
}

// StretchedPolygon returns a rectangle polygon with all four corners
// rounded by elliptic arcs.
func StretchedPolygon(radius vec.Vec2, smoothness int) *Polygon {
	res := &Polygon{}
	for a := RoundedStretchedBottomLeft; a <= RoundedStretchedBottomRight; a++ {
		res.Points = append(res.Points, PolygonPoint{
			Alignment:    a,
			RadiusVector: radius,
			Smoothness:   smoothness,
		})
	}
	return res
}

// Ring returns the boundary ring of the polygon for the given bounds.
// Consecutive points at the same position are merged and the outline
// indices run from 0 to N-1.  The ring may have fewer than three points,
// in which case it describes no area.
func (poly *Polygon) Ring(b rect.Rect) []Point {
	var ring []Point
	for _, pp := range poly.Points {
		for _, pos := range poly.place(b, pp) {
			ring = append(ring, NewPoint(pos, NoOutline))
		}
	}

	for i := len(ring) - 2; i >= 0; i-- {
		if ring[i+1].Pos == ring[i].Pos {
			ring = append(ring[:i+1], ring[i+2:]...)
		}
	}

	Renumber(ring)
	return ring
}

// Generate implements the Shape interface.
func (poly *Polygon) Generate(b rect.Rect) Mesh {
	ring := poly.Ring(b)
	m := Mesh{
		Points: ring,
		UVs:    UVs(ring, Bounds(ring)),
	}
	if len(ring) >= 3 {
		m.Triangles = Triangulate(ring)
	}
	return m
}

// place converts a single polygon entry into positions.
func (poly *Polygon) place(b rect.Rect, pp PolygonPoint) []vec.Vec2 {
	p := pp.Point
	switch pp.Alignment {
	case BottomLeft:
		return []vec.Vec2{{X: b.LLx + p.X, Y: b.LLy + p.Y}}
	case TopLeft:
		return []vec.Vec2{{X: b.LLx + p.X, Y: b.URy - p.Y}}
	case TopRight:
		return []vec.Vec2{{X: b.URx - p.X, Y: b.URy - p.Y}}
	case BottomRight:
		return []vec.Vec2{{X: b.URx - p.X, Y: b.LLy + p.Y}}
	}

	if c, stretched, ok := pp.Alignment.corner(); ok {
		rx, ry := poly.cornerRadii(b, pp, stretched)
		if pp.Smoothness <= 1 || rx <= 0 || ry <= 0 {
			return []vec.Vec2{c.position(b)}
		}
		return c.arc(b, rx, ry, pp.Smoothness)
	}

	return []vec.Vec2{{
		X: b.LLx + (b.URx-b.LLx)*p.X,
		Y: b.LLy + (b.URy-b.LLy)*p.Y,
	}}
}

// cornerRadii returns the clamped corner radii for a rounded entry.
func (poly *Polygon) cornerRadii(b rect.Rect, pp PolygonPoint, stretched bool) (rx, ry float64) {
	w := b.URx - b.LLx
	h := b.URy - b.LLy
	if poly.ClampCorners {
		w -= clampMargin
		h -= clampMargin
	}

	if stretched {
		rx = min(pp.RadiusVector.X, w/2)
		ry = min(pp.RadiusVector.Y, h/2)
		return rx, ry
	}
	r := min(pp.Radius, w/2, h/2)
	return r, r
}
