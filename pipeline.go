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
	"slices"

	"seehuhn.de/go/geom/rect"
)

// Antialiasing fringe bands, applied from the narrowest to the widest.
// Each band runs from the rendered boundary by its width and scales the
// point alpha by its alpha value.
var fringeBands = []struct {
	Width, Alpha float64
}{
	{0.225, 0.25},
	{0.45, 0.5},
}

// Compose turns the base geometry of a shape into the geometry which is
// drawn, according to the visual and transform settings.
//
// The boundary ring of base is first resized by the size offset and, unless
// an inner shadow is drawn, moved by the position offset.  Then the ring
// is replaced by an outline band or a glow halo, or kept as a plain fill.
// Finally antialiasing fringes are added, and all triangle indices are
// increased by indexModifier so that the result can be placed behind
// other geometry in a shared buffer.
//
// UVs are relative to the bounding box of the points of base.
func Compose(base Mesh, vs VisualSettings, ts TransformSettings, indexModifier int) Mesh {
	uvBounds := Bounds(base.Points)

	points := OffsetOutline(base.Points, -ts.SizeOffset)
	if !vs.InnerShadow {
		for i := range points {
			points[i] = points[i].Moved(ts.PositionOffset)
		}
	}

	var m Mesh
	switch vs.mode() {
	case modeOutline:
		m = outlineBand(points, vs.OutlineWidth, uvBounds)
		for i := range m.Points {
			m.Points[i].Color = vs.Color
		}
	case modeGlow:
		m = glowBand(points, vs.OutlineWidth, vs.DetailLevel, uvBounds)
		for i := range m.Points {
			m.Points[i].Color = m.Points[i].Color.Tint(vs.Color)
		}
	default:
		m.Points = points
		m.UVs = UVs(points, uvBounds)
		m.Triangles = append([]Triangle(nil), base.Triangles...)
		for i := range m.Points {
			m.Points[i].Color = vs.Color
		}
	}

	if vs.Antialiasing && !vs.Glow {
		if vs.Outline {
			var outer, inner []Point
			for i, p := range m.Points {
				if i%2 == 0 {
					outer = append(outer, p)
				} else {
					inner = append(inner, p)
				}
			}
			slices.Reverse(inner)
			for _, fb := range fringeBands {
				addFringe(&m, outer, fb.Width, fb.Alpha, uvBounds)
				addFringe(&m, inner, fb.Width, fb.Alpha, uvBounds)
			}
		} else {
			ring := OutlineRing(m.Points)
			for _, fb := range fringeBands {
				addFringe(&m, ring, fb.Width, fb.Alpha, uvBounds)
			}
		}
	}

	Rebase(m.Triangles, indexModifier)
	return m
}

// outlineBand builds a band between the boundary ring in points and its
// miter offset by width.  The band points alternate between ring and
// offset points.
func outlineBand(points []Point, width float64, uvBounds rect.Rect) Mesh {
	ring := OutlineRing(points)
	if len(ring) <= 2 {
		return Mesh{}
	}
	return band(ring, OffsetRing(ring, width), uvBounds)
}

// band interleaves two rings of equal length and connects consecutive
// pairs by two triangles each, closing the loop.
func band(ring, offset []Point, uvBounds rect.Rect) Mesh {
	var m Mesh
	m.Points = make([]Point, 0, 2*len(ring))
	for i := range ring {
		m.Points = append(m.Points, ring[i], offset[i])
	}
	m.UVs = UVs(m.Points, uvBounds)
	m.Triangles = bandTriangles(len(m.Points))
	return m
}

// bandTriangles returns the triangles of a closed band over n interleaved
// points: for each pair (i, i+1) and the following pair (j, j+1), the
// triangles (i, j, i+1) and (i+1, j, j+1).
func bandTriangles(n int) []Triangle {
	tris := make([]Triangle, 0, n)
	for i := 0; i+1 < n; i += 2 {
		j := (i + 2) % n
		tris = append(tris,
			Triangle{i, j, i + 1},
			Triangle{i + 1, j, j + 1})
	}
	return tris
}

// glowBand builds a halo around the boundary ring in points.  The ring
// points are opaque white and the rounded offset fans are transparent,
// so that the halo fades out.  Each ring point is followed by its fan.
func glowBand(points []Point, width float64, detail int, uvBounds rect.Rect) Mesh {
	ring := OutlineRing(points)
	if len(ring) <= 2 {
		return Mesh{}
	}
	for i := range ring {
		ring[i].Color = White
	}
	fans := RoundOffsetRing(ring, -width, detail)

	var m Mesh
	start := make([]int, len(ring))
	for i := range ring {
		start[i] = len(m.Points)
		m.Points = append(m.Points, ring[i])
		for _, p := range fans[i] {
			p.Color = Transparent
			m.Points = append(m.Points, p)
		}
	}
	m.UVs = UVs(m.Points, uvBounds)

	for i := range ring {
		apex := start[i]
		fan := len(fans[i])
		for k := 1; k < fan; k++ {
			m.Triangles = append(m.Triangles, Triangle{apex, apex + k, apex + k + 1})
		}

		next := start[(i+1)%len(ring)]
		last := apex + fan
		m.Triangles = append(m.Triangles,
			Triangle{apex, last, next},
			Triangle{last, next + 1, next})
	}
	return m
}

// addFringe adds an antialiasing band between the ring and its miter
// offset by -width.  The ring is taken in slice order.  The band points
// are the ring points and their offsets, both with alpha scaled by alpha;
// they are placed in front of the existing points.
func addFringe(m *Mesh, ring []Point, width, alpha float64, uvBounds rect.Rect) {
	if len(ring) <= 2 || width <= 0 {
		return
	}

	inner := make([]Point, len(ring))
	outer := OffsetRing(ring, -width)
	for i, p := range ring {
		p.Color = p.Color.Scale(alpha)
		inner[i] = p
		outer[i].Color = p.Color
	}

	f := band(inner, outer, uvBounds)
	m.Prepend(f.Points, f.UVs, f.Triangles)
}
