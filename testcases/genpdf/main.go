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

// Command genpdf draws every test case into a PDF page and a PNG preview,
// for visual inspection of the generated meshes.
// Run from the shapemesh module root directory.
package main

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/shapemesh"
	"seehuhn.de/go/shapemesh/testcases"
)

const outDir = "testdata/preview"

func main() {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			pdfPath := filepath.Join(outDir, name+".pdf")
			pngPath := filepath.Join(outDir, name+".png")

			res, err := tc.Document().Refresh()
			if err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
			m := tc.Build()

			if err := generatePDF(tc, res.Outline(), m, pdfPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
			if err := generatePNG(tc, m, pngPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

// generatePDF draws the triangles of m in shades of grey, on a black
// background.  The grey level is the luminance of the triangle colour,
// multiplied by its alpha.  The boundary ring of the base shape is
// stroked on top.
func generatePDF(tc testcases.TestCase, ring []shapemesh.Point, m shapemesh.Mesh, pdfPath string) error {
	// Page size in points (1 point = 1 pixel at 72 DPI)
	paper := &pdf.Rectangle{
		URx: float64(tc.Width),
		URy: float64(tc.Height),
	}

	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	page.SetFillColor(color.DeviceGray(0))
	page.Rectangle(0, 0, float64(tc.Width), float64(tc.Height))
	page.Fill()

	// Mesh coordinates are y-up, like PDF user space.
	for _, t := range m.Triangles {
		a, b, c := t.Vertices(m.Points)
		page.SetFillColor(color.DeviceGray(grey(m, t)))
		page.MoveTo(a.X, a.Y)
		page.LineTo(b.X, b.Y)
		page.LineTo(c.X, c.Y)
		page.ClosePath()
		page.Fill()
	}

	if len(ring) > 2 {
		page.SetStrokeColor(color.DeviceGray(0.5))
		page.SetLineWidth(0.25)
		for cmd, pts := range shapemesh.RingPath(ring).Iter() {
			switch cmd {
			case path.CmdMoveTo:
				page.MoveTo(pts[0].X, pts[0].Y)
			case path.CmdLineTo:
				page.LineTo(pts[0].X, pts[0].Y)
			case path.CmdClose:
				page.ClosePath()
			}
		}
		page.Stroke()
	}

	return page.Close()
}

// generatePNG renders m with the package preview rasterizer.
func generatePNG(tc testcases.TestCase, m shapemesh.Mesh, pngPath string) error {
	img := image.NewNRGBA(image.Rect(0, 0, tc.Width, tc.Height))
	draw.Draw(img, img.Bounds(), image.Black, image.Point{}, draw.Src)

	// PNG rows run top to bottom.
	shapemesh.Preview(img, m, matrix.Matrix{1, 0, 0, -1, 0, float64(tc.Height)})

	f, err := os.Create(pngPath)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func grey(m shapemesh.Mesh, t shapemesh.Triangle) float64 {
	var sum float64
	for _, i := range [3]int{t.A, t.B, t.C} {
		c := m.Points[i].Color
		sum += (0.299*c.R + 0.587*c.G + 0.114*c.B) * c.A
	}
	return sum / 3
}
