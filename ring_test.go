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
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

func TestOutlineRing(t *testing.T) {
	points := []Point{
		NewPoint(vec.Vec2{X: 5, Y: 5}, NoOutline),
		NewPoint(vec.Vec2{X: 0, Y: 10}, 1),
		NewPoint(vec.Vec2{X: 10, Y: 0}, 3),
		NewPoint(vec.Vec2{X: 0, Y: 0}, 0),
		NewPoint(vec.Vec2{X: 10, Y: 10}, 2),
	}
	ring := OutlineRing(points)

	assert.Len(t, ring, 4)
	for i, p := range ring {
		assert.Equal(t, i, p.OutlineIndex)
	}
	assert.Equal(t, vec.Vec2{X: 0, Y: 0}, ring[0].Pos)
	assert.Equal(t, vec.Vec2{X: 10, Y: 0}, ring[3].Pos)

	// the input is unchanged
	assert.Equal(t, NoOutline, points[0].OutlineIndex)
	assert.Equal(t, 1, points[1].OutlineIndex)
}

func TestOutlineRingStable(t *testing.T) {
	points := []Point{
		NewPoint(vec.Vec2{X: 1}, 1),
		NewPoint(vec.Vec2{X: 2}, 0),
		NewPoint(vec.Vec2{X: 3}, 1),
	}
	ring := OutlineRing(points)
	assert.Equal(t, 2.0, ring[0].Pos.X)
	assert.Equal(t, 1.0, ring[1].Pos.X)
	assert.Equal(t, 3.0, ring[2].Pos.X)
}

func TestRenumber(t *testing.T) {
	ring := []Point{
		NewPoint(vec.Vec2{}, 7),
		NewPoint(vec.Vec2{}, NoOutline),
		NewPoint(vec.Vec2{}, 3),
	}
	Renumber(ring)
	for i, p := range ring {
		assert.Equal(t, i, p.OutlineIndex)
	}
}

func TestSignedArea(t *testing.T) {
	cw := pts(0, 0, 0, 1, 1, 1, 1, 0)
	assert.InDelta(t, -1.0, SignedArea(cw), 1e-12)

	ccw := pts(0, 0, 1, 0, 1, 1, 0, 1)
	assert.InDelta(t, 1.0, SignedArea(ccw), 1e-12)

	assert.Equal(t, 0.0, SignedArea(pts(0, 0, 1, 1)))
}

func TestRingPath(t *testing.T) {
	ring := pts(0, 0, 0, 1, 1, 1, 1, 0)

	var cmds []path.Command
	var last vec.Vec2
	for cmd, pp := range RingPath(ring).Iter() {
		cmds = append(cmds, cmd)
		if len(pp) > 0 {
			last = pp[0]
		}
	}
	assert.Equal(t, []path.Command{
		path.CmdMoveTo, path.CmdLineTo, path.CmdLineTo, path.CmdLineTo, path.CmdClose,
	}, cmds)
	assert.Equal(t, vec.Vec2{X: 1, Y: 0}, last)

	for range RingPath(nil).Iter() {
		t.Error("empty ring gave a non-empty path")
	}
}
