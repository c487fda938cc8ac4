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
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

var square10 = rect.Rect{LLx: 0, LLy: 0, URx: 10, URy: 10}

func positions(ring []Point) []vec.Vec2 {
	res := make([]vec.Vec2, len(ring))
	for i, p := range ring {
		res[i] = p.Pos
	}
	return res
}

func TestDefaultPolygon(t *testing.T) {
	b := rect.Rect{LLx: 2, LLy: 4, URx: 12, URy: 24}
	m := DefaultPolygon().Generate(b)

	require.NoError(t, m.Validate())
	assert.Equal(t, []vec.Vec2{
		{X: 2, Y: 4}, {X: 2, Y: 24}, {X: 12, Y: 24}, {X: 12, Y: 4},
	}, positions(m.Points))
	for i, p := range m.Points {
		assert.Equal(t, i, p.OutlineIndex)
		assert.Equal(t, White, p.Color)
	}
	assert.Len(t, m.Triangles, 2)
	assert.InDelta(t, 200.0, m.Area(), 1e-9)
	assert.Equal(t, []vec.Vec2{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 0}}, m.UVs)
}

func TestCornerAlignments(t *testing.T) {
	poly := &Polygon{Points: []PolygonPoint{
		{Point: vec.Vec2{X: 1, Y: 2}, Alignment: BottomLeft},
		{Point: vec.Vec2{X: 1, Y: 2}, Alignment: TopLeft},
		{Point: vec.Vec2{X: 1, Y: 2}, Alignment: TopRight},
		{Point: vec.Vec2{X: 1, Y: 2}, Alignment: BottomRight},
		{Point: vec.Vec2{X: 0.5, Y: 0.25}, Alignment: Relative},
	}}
	ring := poly.Ring(square10)
	assert.Equal(t, []vec.Vec2{
		{X: 1, Y: 2}, {X: 1, Y: 8}, {X: 9, Y: 8}, {X: 9, Y: 2}, {X: 5, Y: 2.5},
	}, positions(ring))
}

func TestCornerPolygon(t *testing.T) {
	b := rect.Rect{LLx: -5, LLy: 1, URx: 5, URy: 3}
	assert.Equal(t, positions(DefaultPolygon().Ring(b)), positions(CornerPolygon().Ring(b)))
}

func TestPolygonDuplicates(t *testing.T) {
	poly := &Polygon{}
	for _, p := range []vec.Vec2{{X: 0, Y: 0}, {X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 0}} {
		poly.Points = append(poly.Points, PolygonPoint{Point: p})
	}
	ring := poly.Ring(square10)
	assert.Equal(t, []vec.Vec2{
		{X: 0, Y: 0}, {X: 0, Y: 10}, {X: 10, Y: 10}, {X: 10, Y: 0},
	}, positions(ring))
	for i, p := range ring {
		assert.Equal(t, i, p.OutlineIndex)
	}
}

func TestPolygonTooFewPoints(t *testing.T) {
	poly := &Polygon{Points: []PolygonPoint{
		{Point: vec.Vec2{X: 0, Y: 0}},
		{Point: vec.Vec2{X: 1, Y: 1}},
		{Point: vec.Vec2{X: 1, Y: 1}},
	}}
	m := poly.Generate(square10)
	assert.Len(t, m.Points, 2)
	assert.Empty(t, m.Triangles)
	assert.NoError(t, m.Validate())
}

func TestRoundedPolygon(t *testing.T) {
	ring := RoundedPolygon(4).Ring(square10)
	require.Len(t, ring, 16)

	// bottom left arc, from the bottom edge to the left edge
	assert.Equal(t, vec.Vec2{X: 4, Y: 0}, ring[0].Pos)
	assert.Equal(t, vec.Vec2{X: 0, Y: 4}, ring[3].Pos)
	// top left arc, from the left edge to the top edge
	assert.Equal(t, vec.Vec2{X: 0, Y: 6}, ring[4].Pos)
	assert.Equal(t, vec.Vec2{X: 4, Y: 10}, ring[7].Pos)

	center := vec.Vec2{X: 4, Y: 4}
	for _, p := range ring[:4] {
		assert.InDelta(t, 4.0, p.Pos.Sub(center).Length(), 1e-12)
	}
	assert.Negative(t, SignedArea(ring))
}

func TestRoundedPolygonSeams(t *testing.T) {
	// With a radius of half the size, the end of each arc coincides with
	// the start of the next one.  Consecutive duplicates are merged, only
	// the duplicate across the end of the ring remains.
	ring := RoundedPolygon(5).Ring(square10)
	assert.Len(t, ring, 4*5-3)

	clamped := &Polygon{Points: RoundedPolygon(5).Points, ClampCorners: true}
	ring = clamped.Ring(square10)
	assert.Len(t, ring, 4*5)
	for i := range ring {
		j := (i + 1) % len(ring)
		assert.NotEqual(t, ring[i].Pos, ring[j].Pos)
	}
}

func TestRoundedCornerCollapse(t *testing.T) {
	for _, pp := range []PolygonPoint{
		{Alignment: RoundedTopRight, Radius: 3, Smoothness: 1},
		{Alignment: RoundedTopRight, Radius: 0, Smoothness: 5},
		{Alignment: RoundedStretchedTopRight, RadiusVector: vec.Vec2{X: 3, Y: 0}, Smoothness: 5},
	} {
		poly := &Polygon{Points: []PolygonPoint{pp}}
		assert.Equal(t, []vec.Vec2{{X: 10, Y: 10}}, positions(poly.Ring(square10)))
	}
}

func TestStretchedPolygon(t *testing.T) {
	b := rect.Rect{LLx: 0, LLy: 0, URx: 20, URy: 10}
	ring := StretchedPolygon(vec.Vec2{X: 8, Y: 3}, 5).Ring(b)
	require.Len(t, ring, 20)

	// bottom left arc
	assert.Equal(t, vec.Vec2{X: 8, Y: 0}, ring[0].Pos)
	assert.Equal(t, vec.Vec2{X: 0, Y: 3}, ring[4].Pos)
	center := vec.Vec2{X: 8, Y: 3}
	for _, p := range ring[:5] {
		d := p.Pos.Sub(center)
		assert.InDelta(t, 1.0, d.X*d.X/64+d.Y*d.Y/9, 1e-12)
	}

	// radii are clamped per axis
	ring = StretchedPolygon(vec.Vec2{X: 100, Y: 100}, 3).Ring(b)
	assert.Equal(t, vec.Vec2{X: 10, Y: 0}, ring[0].Pos)
	assert.Equal(t, vec.Vec2{X: 0, Y: 5}, ring[2].Pos)
}

func TestRoundedRadiusClamp(t *testing.T) {
	b := rect.Rect{LLx: 0, LLy: 0, URx: 20, URy: 10}
	poly := &Polygon{Points: []PolygonPoint{
		{Alignment: RoundedBottomLeft, Radius: 100, Smoothness: 3},
	}}
	ring := poly.Ring(b)
	require.Len(t, ring, 3)
	assert.Equal(t, vec.Vec2{X: 5, Y: 0}, ring[0].Pos)
	assert.Equal(t, vec.Vec2{X: 0, Y: 5}, ring[2].Pos)
	assert.InDelta(t, 5-5*math.Sqrt2/2, ring[1].Pos.X, 1e-12)
}

func TestPolygonTriangulation(t *testing.T) {
	for _, poly := range []*Polygon{
		DefaultPolygon(),
		RoundedPolygon(3),
		StretchedPolygon(vec.Vec2{X: 4, Y: 2}, 6),
	} {
		m := poly.Generate(square10)
		require.NoError(t, m.Validate())
		assert.Len(t, m.Triangles, len(m.Points)-2)
		assert.InDelta(t, -SignedArea(m.Points), m.Area(), 1e-9)
	}
}

func TestAlignmentText(t *testing.T) {
	for a := Relative; a <= RoundedStretchedBottomRight; a++ {
		text, err := a.MarshalText()
		require.NoError(t, err)

		var b Alignment
		require.NoError(t, b.UnmarshalText(text))
		assert.Equal(t, a, b)
	}

	var a Alignment = TopLeft
	require.NoError(t, a.UnmarshalText([]byte("absolute")))
	assert.Equal(t, Relative, a)

	assert.Error(t, a.UnmarshalText([]byte("middle")))
	_, err := Alignment(99).MarshalText()
	assert.Error(t, err)
	assert.Equal(t, "Alignment(99)", Alignment(99).String())
}
