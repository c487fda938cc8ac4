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

// Command export writes the generated mesh and the shape document of every
// test case to testdata, for use by external mesh viewers.
// Run from the shapemesh module root directory.
package main

import (
	"encoding/json"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/shapemesh"
	"seehuhn.de/go/shapemesh/testcases"
)

const docDir = "testdata/documents"

func main() {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	if err := os.MkdirAll(docDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			out.TestCases = append(out.TestCases, toJSON(name, tc))

			if err := writeDocument(tc, filepath.Join(docDir, name+".yaml")); err != nil {
				panic(err)
			}
		}
	}

	f, err := os.Create("testdata/meshes.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonTestCase struct {
	Name      string      `json:"name"`
	Width     int         `json:"width"`
	Height    int         `json:"height"`
	Points    []jsonPoint `json:"points"`
	Triangles [][3]int    `json:"triangles"`
}

type jsonPoint struct {
	Pos     [2]float64      `json:"pos"`
	UV      [2]float64      `json:"uv"`
	Outline int             `json:"outline"`
	Color   shapemesh.Color `json:"color"`
}

func toJSON(name string, tc testcases.TestCase) jsonTestCase {
	m := tc.Build()
	jtc := jsonTestCase{
		Name:      name,
		Width:     tc.Width,
		Height:    tc.Height,
		Points:    make([]jsonPoint, len(m.Points)),
		Triangles: make([][3]int, len(m.Triangles)),
	}
	for i, p := range m.Points {
		jtc.Points[i] = jsonPoint{
			Pos:     [2]float64{p.Pos.X, p.Pos.Y},
			UV:      [2]float64{m.UVs[i].X, m.UVs[i].Y},
			Outline: p.OutlineIndex,
			Color:   p.Color,
		}
	}
	for i, t := range m.Triangles {
		jtc.Triangles[i] = [3]int{t.A, t.B, t.C}
	}
	return jtc
}

func writeDocument(tc testcases.TestCase, fname string) error {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	if err := tc.Document().WriteDocument(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
