// seehuhn.de/go/boxgeom - triangle strip geometry for rounded boxes
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

package raster

import "seehuhn.de/go/geom/vec"

// FillTriangle computes the coverage of the triangle abc.  Triangles with
// (almost) zero area produce no output.
func (r *Rasterizer) FillTriangle(a, b, c vec.Vec2, emit Emitter) {
	r.beginEdges()
	r.addTriangle(a, b, c)
	r.fill(fillNonZero, emit)
}

// FillStrip computes the coverage of the union of all triangles in a
// triangle strip: the triangles are formed by pts[i], pts[i+1], pts[i+2].
//
// The triangles are oriented consistently before they are rasterized, so
// that edges shared by neighbouring triangles cancel exactly.  Degenerate
// triangles, as used to join separate strips, are skipped.
func (r *Rasterizer) FillStrip(pts []vec.Vec2, emit Emitter) {
	r.beginEdges()
	for i := 0; i+2 < len(pts); i++ {
		r.addTriangle(pts[i], pts[i+1], pts[i+2])
	}
	r.fill(fillNonZero, emit)
}

// addTriangle adds the edges of a triangle, in counter-clockwise order
// with respect to the y-down user space.
func (r *Rasterizer) addTriangle(a, b, c vec.Vec2) {
	area := TriangleArea(a, b, c)
	switch {
	case area > zeroAreaThreshold:
		r.addEdge(a, b)
		r.addEdge(b, c)
		r.addEdge(c, a)
	case area < -zeroAreaThreshold:
		r.addEdge(a, c)
		r.addEdge(c, b)
		r.addEdge(b, a)
	}
}

// TriangleArea returns twice the signed area of the triangle abc.
func TriangleArea(a, b, c vec.Vec2) float64 {
	u := b.Sub(a)
	v := c.Sub(a)
	return u.X*v.Y - u.Y*v.X
}

// zeroAreaThreshold is the minimal doubled area of a triangle which
// contributes to the coverage.
const zeroAreaThreshold = 1e-12
