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
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Shape is implemented by the shape descriptions of this package.
//
// Generate returns the base mesh of the shape for the given bounds.  The
// boundary points of the mesh carry the outline indices 0, ..., N-1 in
// clockwise order; other points use NoOutline.  Generate must be a pure
// function of the receiver and b.
type Shape interface {
	Generate(b rect.Rect) Mesh
}

var (
	_ Shape = (*Polygon)(nil)
	_ Shape = (*RoundedRectangle)(nil)
)

// Result is the geometry of a shape after a refresh.
type Result struct {
	// Base is the mesh produced by the shape generator.  Hit tests and
	// shadow copies use this mesh.
	Base Mesh

	// Mesh is the geometry to draw.
	Mesh Mesh
}

// Refresh computes the geometry of a shape inside the bounds b.
//
// A nil vs or ts selects the default settings.  Bounds of zero width or
// height give an empty result.  Refresh has no side effects; calling it
// twice with the same arguments gives identical results.
func Refresh(shape Shape, b rect.Rect, vs *VisualSettings, ts *TransformSettings) *Result {
	if isDegenerate(b) {
		Logger().Warn("degenerate bounds", "bounds", b)
		return &Result{}
	}

	base := shape.Generate(b)
	res := &Result{
		Base: base,
		Mesh: Compose(base, vs.Effective(), ts.Effective(), 0),
	}
	Logger().Debug("refresh",
		"points", len(res.Mesh.Points),
		"triangles", len(res.Mesh.Triangles))
	return res
}

// Contains reports whether p lies inside the base mesh.  Outline bands,
// glow halos and fringes do not count.
func (r *Result) Contains(p vec.Vec2) bool {
	return ContainsPoint(r.Base, p)
}

// Outline returns the boundary ring of the base mesh.
func (r *Result) Outline() []Point {
	return OutlineRing(r.Base.Points)
}

// Copy computes the geometry of an additional copy of src, drawn with
// its own settings.  This is used for drop shadows and overlays.
//
// The points of src are recoloured with the colour of vs.  If vs
// requests an inner shadow, the copy is reduced to the shadow band for
// the position offset of ts; otherwise it has the full shape.  The result
// is then composed like the geometry of a regular shape.
func Copy(src *Result, vs *VisualSettings, ts *TransformSettings) *Result {
	v := vs.Effective()
	t := ts.Effective()

	var base Mesh
	if v.InnerShadow {
		base = ShadowBand(src.Base, t.PositionOffset)
	} else {
		base = src.Base.Clone()
	}
	for i := range base.Points {
		if !v.InnerShadow || i%2 == 0 {
			base.Points[i].Color = v.Color
		}
	}

	return &Result{
		Base: base,
		Mesh: Compose(base, v, t, 0),
	}
}
