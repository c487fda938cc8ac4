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
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// Preview draws the triangles of m onto dst.
//
// The matrix M maps mesh coordinates to pixel coordinates, relative to
// the top left corner of dst.  Every triangle is filled with the average
// colour of its three points and composited with the Porter-Duff "over"
// operator, in the order of m.Triangles.
func Preview(dst draw.Image, m Mesh, M matrix.Matrix) {
	bounds := dst.Bounds()
	r := vector.NewRasterizer(0, 0)

	for _, t := range m.Triangles {
		a, b, c := t.Vertices(m.Points)
		a = transform(M, a)
		b = transform(M, b)
		c = transform(M, c)

		box := image.Rect(
			int(math.Floor(min(a.X, b.X, c.X))),
			int(math.Floor(min(a.Y, b.Y, c.Y))),
			int(math.Ceil(max(a.X, b.X, c.X))),
			int(math.Ceil(max(a.Y, b.Y, c.Y))),
		).Add(bounds.Min).Intersect(bounds)
		if box.Empty() {
			continue
		}

		origin := vec.Vec2{
			X: float64(box.Min.X - bounds.Min.X),
			Y: float64(box.Min.Y - bounds.Min.Y),
		}
		r.Reset(box.Dx(), box.Dy())
		r.MoveTo(point32(a.Sub(origin)))
		r.LineTo(point32(b.Sub(origin)))
		r.LineTo(point32(c.Sub(origin)))
		r.ClosePath()

		col := averageColor(m.Points[t.A].Color, m.Points[t.B].Color, m.Points[t.C].Color)
		r.Draw(dst, box, image.NewUniform(col), image.Point{})
	}
}

// transform applies the affine map M to v.
func transform(M matrix.Matrix, v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: M[0]*v.X + M[2]*v.Y + M[4],
		Y: M[1]*v.X + M[3]*v.Y + M[5],
	}
}

func point32(v vec.Vec2) (float32, float32) {
	return float32(v.X), float32(v.Y)
}

func averageColor(cols ...Color) color.NRGBA64 {
	var sum Color
	for _, c := range cols {
		sum.R += c.R
		sum.G += c.G
		sum.B += c.B
		sum.A += c.A
	}
	n := float64(len(cols))
	return color.NRGBA64{
		R: channel16(sum.R / n),
		G: channel16(sum.G / n),
		B: channel16(sum.B / n),
		A: channel16(sum.A / n),
	}
}

func channel16(x float64) uint16 {
	return uint16(math.Round(clamp(x, 0, 1) * 0xffff))
}
