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

// Command shapemesh reads a YAML shape document and writes the generated
// mesh as a PNG preview, a PDF page or JSON.
package main

import (
	"encoding/json"
	"flag"
	"image"
	"image/draw"
	"image/png"
	"log"
	"log/slog"
	"os"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/shapemesh"
)

func main() {
	var (
		width   = flag.Int("width", 256, "canvas width")
		height  = flag.Int("height", 256, "canvas height")
		scale   = flag.Float64("scale", 1, "pixels per shape unit")
		pngOut  = flag.String("png", "", "write a PNG preview to this file")
		pdfOut  = flag.String("pdf", "", "write a PDF page to this file")
		jsonOut = flag.String("json", "", "write the mesh as JSON to this file")
		verbose = flag.Bool("v", false, "log debug messages")
	)
	flag.Parse()

	if flag.NArg() != 1 {
		log.Fatal("usage: shapemesh [flags] shape.yaml")
	}
	if *verbose {
		shapemesh.SetLogger(slog.New(slog.NewTextHandler(os.Stderr,
			&slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	doc, err := shapemesh.LoadDocument(flag.Arg(0))
	if err != nil {
		log.Fatal(err)
	}
	m, err := doc.Build()
	if err != nil {
		log.Fatalf("%s: %v", flag.Arg(0), err)
	}
	if err := m.Validate(); err != nil {
		log.Fatalf("%s: invalid mesh: %v", flag.Arg(0), err)
	}

	if *pngOut != "" {
		if err := writePNG(*pngOut, m, *scale, *width, *height); err != nil {
			log.Fatalf("Failed to write PNG: %v", err)
		}
	}
	if *pdfOut != "" {
		if err := writePDF(*pdfOut, m, *scale, *width, *height); err != nil {
			log.Fatalf("Failed to write PDF: %v", err)
		}
	}
	if *jsonOut != "" {
		if err := writeJSON(*jsonOut, m); err != nil {
			log.Fatalf("Failed to write JSON: %v", err)
		}
	}

	log.Printf("%s: %d points, %d triangles\n", flag.Arg(0), len(m.Points), len(m.Triangles))
}

func writePNG(fname string, m shapemesh.Mesh, scale float64, w, h int) error {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.Transparent, image.Point{}, draw.Src)

	// flip, since image rows run top to bottom
	shapemesh.Preview(img, m, matrix.Matrix{scale, 0, 0, -scale, 0, float64(h)})

	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func writePDF(fname string, m shapemesh.Mesh, scale float64, w, h int) error {
	paper := &pdf.Rectangle{URx: float64(w), URy: float64(h)}
	page, err := document.CreateSinglePage(fname, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	page.Transform(matrix.Scale(scale, scale))
	for _, t := range m.Triangles {
		a, b, c := t.Vertices(m.Points)
		col := m.Points[t.A].Color
		page.SetFillColor(color.DeviceGray((0.299*col.R + 0.587*col.G + 0.114*col.B) * col.A))
		page.MoveTo(a.X, a.Y)
		page.LineTo(b.X, b.Y)
		page.LineTo(c.X, c.Y)
		page.ClosePath()
		page.Fill()
	}
	return page.Close()
}

func writeJSON(fname string, m shapemesh.Mesh) error {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(m); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
