// Package shapemesh turns declarative descriptions of 2D shapes into
// triangle meshes.
//
// A shape is either a [Polygon], whose points are placed relative to a
// bounding rectangle and may have rounded corners, or a
// [RoundedRectangle].  [Refresh] generates the base mesh of a shape and
// derives the geometry to draw from it, according to [VisualSettings]
// and [TransformSettings]: an outline band, a glow halo which fades to
// transparent, and antialiasing fringes.  [Copy] derives additional
// geometry for drop shadows and inner shadows.
//
// All coordinates are y-up.  Boundary rings run clockwise, and the
// boundary points of a mesh carry their rank in the ring as outline
// index.
package shapemesh

//go:generate go run ./testcases/export
