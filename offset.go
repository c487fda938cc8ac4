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
	"math"
	"slices"

	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// Offsetting moves every point of a ring by a signed distance d,
// perpendicular to the adjacent edges.  For the clockwise rings produced
// by the shape generators, positive d moves the ring inward and negative
// d moves it outward.
//
// At each point, the unit vectors to the previous and next neighbour are
// called the incoming and outgoing edge directions.

// corner geometry of a ring point
type ringCorner struct {
	P    vec.Vec2 // the point itself
	Prev vec.Vec2 // unit vector towards the previous point
	Next vec.Vec2 // unit vector towards the next point
}

func newRingCorner(ring []Point, i int) ringCorner {
	prev, next := neighbours(ring, i)
	p := ring[i].Pos
	return ringCorner{
		P:    p,
		Prev: unit(prev.Sub(p)),
		Next: unit(next.Sub(p)),
	}
}

// miter returns the sharp-corner offset of the point.
//
// The point moves along Prev+Next, scaled by d/sin(θ) where θ is the
// signed angle from Prev to Next.  For unit vectors, sin(θ) is the cross
// product.  As the edges approach a straight line, sin(θ) goes to zero;
// below collinearityThreshold the point moves along the edge normal
// instead, which is the limit of the miter for a straight continuation.
func (c ringCorner) miter(d float64) vec.Vec2 {
	sinTheta := cross(c.Prev, c.Next)
	if math.Abs(sinTheta) < collinearityThreshold {
		return c.P.Add(c.inNormal().Mul(d))
	}
	return c.P.Add(c.Prev.Add(c.Next).Mul(d / sinTheta))
}

// inNormal is the normal of the incoming edge which points to the
// inside of a clockwise ring.
func (c ringCorner) inNormal() vec.Vec2 {
	return vec.Vec2{X: -c.Prev.Y, Y: c.Prev.X}
}

// outNormal is the normal of the outgoing edge which points to the
// inside of a clockwise ring.
func (c ringCorner) outNormal() vec.Vec2 {
	return vec.Vec2{X: c.Next.Y, Y: -c.Next.X}
}

// OffsetRing returns the miter offset of a ring.  The ring order is the
// order of the slice; outline indices are ignored and copied to the
// result.
func OffsetRing(ring []Point, d float64) []Point {
	res := make([]Point, len(ring))
	if len(ring) == 0 {
		return res
	}
	for i, p := range ring {
		p.Pos = newRingCorner(ring, i).miter(d)
		res[i] = p
	}
	return res
}

// OffsetOutline returns the miter offset of the boundary ring contained
// in points.  The ring order is given by the outline indices; points with
// index NoOutline are copied unchanged.  The result has the same order as
// points.
func OffsetOutline(points []Point, d float64) []Point {
	order := make([]int, 0, len(points))
	for i, p := range points {
		if p.OnOutline() {
			order = append(order, i)
		}
	}
	slices.SortStableFunc(order, func(i, j int) int {
		return points[i].OutlineIndex - points[j].OutlineIndex
	})

	ring := make([]Point, len(order))
	for k, i := range order {
		ring[k] = points[i]
	}
	moved := OffsetRing(ring, d)

	res := slices.Clone(points)
	for k, i := range order {
		res[i] = moved[k]
	}
	return res
}

// RoundOffsetRing returns the offset of a ring with rounded convex corners.
//
// For each point of the ring the result holds a fan of points.  At
// concave corners the fan is the single miter point.  At convex corners
// the fan starts with the offset along the incoming edge normal, sweeps
// through the corner with detail intermediate points on either side of the
// bisector, and ends with the offset along the outgoing edge normal, for
// 2*detail+3 points in total.  All fan points carry the outline index of
// their ring point.
func RoundOffsetRing(ring []Point, d float64, detail int) [][]Point {
	detail = max(detail, 0)
	res := make([][]Point, len(ring))
	for i, src := range ring {
		c := newRingCorner(ring, i)
		n1 := c.inNormal()
		n2 := c.outNormal()

		emit := func(pos vec.Vec2) {
			p := src
			p.Pos = pos
			res[i] = append(res[i], p)
		}

		if cross(n1, n2) >= 0 {
			// concave, or the edges are parallel
			if math.Abs(cross(c.Prev, c.Next)) < collinearityThreshold {
				emit(c.P.Add(n1.Mul(d)))
			} else {
				emit(c.miter(d))
			}
			continue
		}

		bisector := unit(c.Prev.Add(c.Next))
		half := math.Atan2(cross(n1, bisector), n1.Dot(bisector))
		step := half / float64(detail+1)

		res[i] = make([]Point, 0, 2*detail+3)
		emit(c.P.Add(n1.Mul(d)))
		for j := range detail {
			emit(c.P.Add(rotate(n1, step*float64(j+1)).Mul(d)))
		}
		emit(c.P.Add(bisector.Mul(d)))
		for j := range detail {
			emit(c.P.Add(rotate(bisector, step*float64(j+1)).Mul(d)))
		}
		emit(c.P.Add(n2.Mul(d)))
	}
	return res
}

// Offset returns the offset of a ring using the given join style.
// Miter joins give one point per ring point.  Round joins give the fans
// of RoundOffsetRing, flattened.  Bevel joins are round joins without
// intermediate samples.
func Offset(ring []Point, d float64, join graphics.LineJoinStyle, detail int) []Point {
	switch join {
	case graphics.LineJoinRound:
	case graphics.LineJoinBevel:
		detail = 0
	default:
		return OffsetRing(ring, d)
	}

	var res []Point
	for _, fan := range RoundOffsetRing(ring, d, detail) {
		res = append(res, fan...)
	}
	return res
}

// Numerical tolerances for offsetting.
const (
	// zeroLengthThreshold is the minimum length of an edge.  Shorter
	// edges have no direction.
	zeroLengthThreshold = 1e-10

	// collinearityThreshold is the value of sin(θ) below which two edges
	// are treated as collinear and the miter formula is not used.
	collinearityThreshold = 1e-6
)
