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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"seehuhn.de/go/geom/vec"
)

func pts(coords ...float64) []Point {
	res := make([]Point, 0, len(coords)/2)
	for i := 0; i+1 < len(coords); i += 2 {
		res = append(res, NewPoint(vec.Vec2{X: coords[i], Y: coords[i+1]}, len(res)))
	}
	return res
}

func TestRebase(t *testing.T) {
	tris := []Triangle{{0, 1, 2}, {2, 3, 0}}
	Rebase(tris, 5)
	assert.Equal(t, []Triangle{{5, 6, 7}, {7, 8, 5}}, tris)

	Rebase(tris, 0)
	assert.Equal(t, []Triangle{{5, 6, 7}, {7, 8, 5}}, tris)

	Rebase(tris, -5)
	assert.Equal(t, []Triangle{{0, 1, 2}, {2, 3, 0}}, tris)
}

func TestPrepend(t *testing.T) {
	m := Mesh{
		Points:    pts(0, 0, 0, 1, 1, 0),
		Triangles: []Triangle{{0, 1, 2}},
		UVs:       []vec.Vec2{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 0}},
	}
	front := pts(5, 5, 5, 6, 6, 5, 6, 6)
	m.Prepend(front, make([]vec.Vec2, 4), []Triangle{{0, 1, 2}, {1, 3, 2}})

	require.NoError(t, m.Validate())
	assert.Len(t, m.Points, 7)
	assert.Equal(t, []Triangle{{0, 1, 2}, {1, 3, 2}, {4, 5, 6}}, m.Triangles)
	assert.Equal(t, vec.Vec2{X: 0, Y: 0}, m.Points[4].Pos)
	assert.Equal(t, vec.Vec2{X: 0, Y: 1}, m.UVs[5])
}

func TestAppend(t *testing.T) {
	var m Mesh
	part := Mesh{
		Points:    pts(0, 0, 0, 1, 1, 0),
		Triangles: []Triangle{{0, 1, 2}},
		UVs:       make([]vec.Vec2, 3),
	}
	m.Append(part)
	m.Append(part)

	require.NoError(t, m.Validate())
	assert.Equal(t, []Triangle{{0, 1, 2}, {3, 4, 5}}, m.Triangles)
	assert.Equal(t, []Triangle{{0, 1, 2}}, part.Triangles)
}

func TestCloneIsDeep(t *testing.T) {
	m := Mesh{
		Points:    pts(0, 0, 0, 1, 1, 0),
		Triangles: []Triangle{{0, 1, 2}},
		UVs:       make([]vec.Vec2, 3),
	}
	c := m.Clone()
	c.Points[0].Pos.X = 7
	c.Triangles[0].A = 2
	c.UVs[0].Y = 1

	assert.Equal(t, 0.0, m.Points[0].Pos.X)
	assert.Equal(t, 0, m.Triangles[0].A)
	assert.Equal(t, 0.0, m.UVs[0].Y)
}

func TestReset(t *testing.T) {
	m := Mesh{
		Points:    pts(0, 0, 0, 1, 1, 0),
		Triangles: []Triangle{{0, 1, 2}},
		UVs:       make([]vec.Vec2, 3),
	}
	m.Reset()
	assert.True(t, m.IsEmpty())
	assert.Empty(t, m.Points)
	assert.Empty(t, m.UVs)
}

func TestValidate(t *testing.T) {
	good := Mesh{
		Points:    pts(0, 0, 0, 1, 1, 0),
		Triangles: []Triangle{{0, 1, 2}},
		UVs:       make([]vec.Vec2, 3),
	}
	assert.NoError(t, good.Validate())
	assert.NoError(t, Mesh{}.Validate())

	missingUV := good.Clone()
	missingUV.UVs = missingUV.UVs[:2]
	assert.Error(t, missingUV.Validate())

	tooLarge := good.Clone()
	tooLarge.Triangles = append(tooLarge.Triangles, Triangle{0, 1, 3})
	assert.Error(t, tooLarge.Validate())

	negative := good.Clone()
	negative.Triangles[0].B = -1
	assert.Error(t, negative.Validate())
}

func TestMeshArea(t *testing.T) {
	m := Mesh{
		Points:    pts(0, 0, 0, 2, 3, 2, 3, 0),
		Triangles: []Triangle{{0, 1, 2}, {0, 2, 3}},
	}
	assert.InDelta(t, 6.0, m.Area(), 1e-12)
}

func TestPointIsValue(t *testing.T) {
	p := NewPoint(vec.Vec2{X: 1, Y: 2}, 3)
	q := p.Moved(vec.Vec2{X: 1, Y: 1})
	q.Color = Black

	assert.Equal(t, vec.Vec2{X: 1, Y: 2}, p.Pos)
	assert.Equal(t, White, p.Color)
	assert.Equal(t, vec.Vec2{X: 2, Y: 3}, q.Pos)
	assert.Equal(t, 3, q.OutlineIndex)
}

func TestColor(t *testing.T) {
	c := Color{R: 0.2, G: 0.4, B: 0.6, A: 0.5}
	assert.Equal(t, Color{R: 0.2, G: 0.4, B: 0.6, A: 0.25}, c.Scale(0.5))

	tint := Color{R: 1, G: 0, B: 0, A: 0.5}
	assert.Equal(t, Color{R: 1, G: 0, B: 0, A: 0.25}, c.Tint(tint))
	assert.Equal(t, 0.0, Transparent.Tint(tint).A)
}
