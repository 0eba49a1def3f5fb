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

package testcases

import (
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/boxgeom"
)

// arcK is the length of the control vectors, relative to the radius, for
// the cubic Bézier approximation of a quarter ellipse.
const arcK = 0.5522847498

// Outline returns the exact outer contour of the box, using cubic Bézier
// curves for the corners.  The contour runs counter-clockwise on screen.
func Outline(m *boxgeom.Metrics) *path.Data {
	p := &path.Data{}
	addContour(p, m, false, false)
	return p
}

// InnerOutline returns the exact contour of the inside of the box, that is
// the area not covered by the border.  The result is empty if the border
// covers the whole box.
func InnerOutline(m *boxgeom.Metrics) *path.Data {
	p := &path.Data{}
	if !m.IsInnerEmpty() {
		addContour(p, m, true, false)
	}
	return p
}

// BorderOutline returns the exact contour of the border: the outer contour,
// followed by the inner contour in the opposite direction.
func BorderOutline(m *boxgeom.Metrics) *path.Data {
	p := &path.Data{}
	addContour(p, m, false, false)
	if !m.IsInnerEmpty() {
		addContour(p, m, true, true)
	}
	return p
}

// corner order for a counter-clockwise contour, starting at the top of the
// top-left corner
var contourOrder = [4]struct {
	corner   int
	inverted bool
}{
	{boxgeom.TopLeft, true},
	{boxgeom.BottomLeft, false},
	{boxgeom.BottomRight, true},
	{boxgeom.TopRight, false},
}

func addContour(p *path.Data, m *boxgeom.Metrics, inner, reverse bool) {
	type arc struct {
		c        vec.Vec2
		rx, ry   float64
		sx, sy   float64
		inverted bool
	}
	var arcs [4]arc
	for i, o := range contourOrder {
		c := &m.Corners[o.corner]
		a := arc{
			c:        vec.Vec2{X: c.CenterX, Y: c.CenterY},
			rx:       c.RadiusX,
			ry:       c.RadiusY,
			sx:       c.Sx,
			sy:       c.Sy,
			inverted: o.inverted,
		}
		if inner {
			a.c = vec.Vec2{X: c.InnerCenterX, Y: c.InnerCenterY}
			a.rx, a.ry = c.RadiusInnerX, c.RadiusInnerY
		}
		arcs[i] = a
	}
	if reverse {
		for i := range 2 {
			arcs[i], arcs[3-i] = arcs[3-i], arcs[i]
		}
		for i := range arcs {
			arcs[i].inverted = !arcs[i].inverted
		}
	}

	// point returns the arc point at angle 0 (cos=1) or at angle pi/2.
	point := func(a *arc, atEnd bool) vec.Vec2 {
		if atEnd {
			return vec.Vec2{X: a.c.X, Y: a.c.Y + a.sy*a.ry}
		}
		return vec.Vec2{X: a.c.X + a.sx*a.rx, Y: a.c.Y}
	}

	for i := range arcs {
		a := &arcs[i]
		start := point(a, a.inverted)
		end := point(a, !a.inverted)
		if i == 0 {
			p.MoveTo(start)
		} else {
			p.LineTo(start)
		}
		if a.rx <= 0 || a.ry <= 0 {
			continue
		}

		// control vectors along the tangents at angle 0 and at pi/2
		t0 := vec.Vec2{Y: a.sy * a.ry * arcK}
		t1 := vec.Vec2{X: a.sx * a.rx * arcK}
		var c1, c2 vec.Vec2
		if a.inverted {
			c1, c2 = start.Add(t1), end.Add(t0)
		} else {
			c1, c2 = start.Add(t0), end.Add(t1)
		}
		p.Cmds = append(p.Cmds, path.CmdCubeTo)
		p.Coords = append(p.Coords, c1, c2, end)
	}
	p.Close()
}
