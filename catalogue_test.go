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

package shapemesh_test

import (
	"bytes"
	"image"
	"image/png"
	"maps"
	"math"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/shapemesh"
	"seehuhn.de/go/shapemesh/testcases"
)

func TestCatalogue(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			t.Run(name, func(t *testing.T) {
				m := tc.Build()
				defer func() {
					if t.Failed() {
						writeDebugImage(name, m, tc.Width, tc.Height)
					}
				}()

				require.NoError(t, m.Validate())
				for i, p := range m.Points {
					if !finite(p.Pos.X) || !finite(p.Pos.Y) {
						t.Errorf("point %d: non-finite position %v", i, p.Pos)
					}
				}
				for i, uv := range m.UVs {
					if uv.X < 0 || uv.X > 1 || uv.Y < 0 || uv.Y > 1 {
						t.Errorf("uv %d out of range: %v", i, uv)
					}
				}

				w := tc.Bounds.URx - tc.Bounds.LLx
				h := tc.Bounds.URy - tc.Bounds.LLy
				if w == 0 || h == 0 {
					assert.True(t, m.IsEmpty())
				}

				assert.Equal(t, m, tc.Build(), "build is not deterministic")
			})
		}
	}
}

// TestCatalogueArea checks that the base triangles of every simple shape
// cover exactly the area enclosed by its boundary ring.
func TestCatalogueArea(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			if tc.SelfIntersecting {
				continue
			}
			t.Run(category+"_"+tc.Name, func(t *testing.T) {
				base := shapemesh.Refresh(tc.Shape, tc.Bounds, nil, nil).Base
				ring := shapemesh.OutlineRing(base.Points)

				want := -shapemesh.SignedArea(ring)
				assert.GreaterOrEqual(t, want, 0.0, "ring is not clockwise")
				assert.InDelta(t, want, base.Area(), 1e-9*max(1, want))
				if len(ring) >= 3 && want > 0 {
					assert.NotEmpty(t, base.Triangles)
				}
			})
		}
	}
}

func TestCatalogueDocuments(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			t.Run(category+"_"+tc.Name, func(t *testing.T) {
				buf := &bytes.Buffer{}
				require.NoError(t, tc.Document().WriteDocument(buf))

				d, err := shapemesh.ReadDocument(buf)
				require.NoError(t, err)
				m, err := d.Build()
				require.NoError(t, err)
				assert.Equal(t, tc.Build(), m)
			})
		}
	}
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// writeDebugImage draws the mesh of a failing test case to the debug
// directory.
func writeDebugImage(name string, m shapemesh.Mesh, w, h int) {
	os.MkdirAll("debug", 0755)

	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	shapemesh.Preview(img, m, matrix.Matrix{1, 0, 0, -1, 0, float64(h)})

	f, err := os.Create(filepath.Join("debug", name+".png"))
	if err != nil {
		return
	}
	defer f.Close()
	png.Encode(f, img)
}
