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

func TestRoundedRectangleCollapse(t *testing.T) {
	for _, rr := range []RoundedRectangle{
		{Radius: 0, Smoothness: 8},
		{Radius: 3, Smoothness: 1},
		{Radius: 3, Smoothness: 0},
		{Radius: -2, Smoothness: 8},
	} {
		m := rr.Generate(square10)
		require.NoError(t, m.Validate())
		assert.Equal(t, []vec.Vec2{
			{X: 0, Y: 0}, {X: 0, Y: 10}, {X: 10, Y: 10}, {X: 10, Y: 0},
		}, positions(m.Points))
		assert.Equal(t, []Triangle{{0, 1, 2}, {0, 2, 3}}, m.Triangles)
		assert.InDelta(t, 100.0, m.Area(), 1e-9)
	}
}

func TestRoundedRectangleScenario(t *testing.T) {
	rr := &RoundedRectangle{Radius: 2, Smoothness: 4}
	m := rr.Generate(square10)

	require.NoError(t, m.Validate())
	assert.Len(t, m.Points, 17)
	assert.Len(t, m.Triangles, 4*4)

	assert.Equal(t, vec.Vec2{X: 5, Y: 5}, m.Points[0].Pos)
	assert.Equal(t, NoOutline, m.Points[0].OutlineIndex)
	for i, p := range m.Points[1:] {
		assert.Equal(t, i, p.OutlineIndex)
	}

	// the fan covers the rounded rectangle without overlap
	want := 100 - 4*(4-quarterPolygonArea(2, 4))
	assert.InDelta(t, want, m.Area(), 1e-9)
	assert.InDelta(t, -SignedArea(OutlineRing(m.Points)), m.Area(), 1e-9)
}

// quarterPolygonArea returns the area between the centre and the samples of
// a quarter arc of radius r with n samples.
func quarterPolygonArea(r float64, n int) float64 {
	angle := math.Pi / 2 / float64(n-1)
	return float64(n-1) * r * r * math.Sin(angle) / 2
}

func TestRoundedRectangleSeam(t *testing.T) {
	// Radius equal to half the size: the corners meet, and the last
	// sample of each arc is dropped.
	rr := &RoundedRectangle{Radius: 5, Smoothness: 4}
	m := rr.Generate(square10)

	require.NoError(t, m.Validate())
	assert.Len(t, m.Points, 1+4*3)
	assert.Len(t, m.Triangles, 4*4-4)
	ring := OutlineRing(m.Points)
	for i := range ring {
		j := (i + 1) % len(ring)
		assert.NotEqual(t, ring[i].Pos, ring[j].Pos)
	}
	for _, tri := range m.Triangles {
		assert.Greater(t, tri.Area(m.Points), 1e-9)
	}

	// a regular 12-gon with circumradius 5
	assert.InDelta(t, 75.0, m.Area(), 1e-9)
}

func TestRoundedRectangleSeamOneSide(t *testing.T) {
	// Only the short side is fully rounded.  The arcs ending on the
	// left and right edges drop their last sample.
	b := rect.Rect{LLx: 0, LLy: 0, URx: 20, URy: 10}
	rr := &RoundedRectangle{Radius: 50, Smoothness: 3}
	m := rr.Generate(b)

	require.NoError(t, m.Validate())
	assert.Len(t, m.Points, 1+2*2+2*3)
	assert.InDelta(t, -SignedArea(OutlineRing(m.Points)), m.Area(), 1e-9)
}
