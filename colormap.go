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

package boxgeom

import (
	"image/color"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// projection maps points to their position along a gradient vector:
// the start point maps to 0, the end point to 1.
type projection struct {
	origin vec.Vec2
	dir    vec.Vec2 // gradient vector divided by its squared length
}

func newProjection(start, end vec.Vec2) projection {
	d := end.Sub(start)
	l2 := d.Dot(d)
	if l2 > 0 {
		d = d.Mul(1 / l2)
	}
	return projection{origin: start, dir: d}
}

func (p projection) value(pt vec.Vec2) float64 {
	return pt.Sub(p.origin).Dot(p.dir)
}

// ColorMap assigns colors to vertices, for gradients where the color is an
// affine function of the position inside the area to be filled.  Vertex
// colors are then interpolated exactly by the rasteriser.
type ColorMap struct {
	monochrome bool
	proj       projection
	p0, p1     float64
	c0, c1     color.RGBA
}

// NewColorMap returns the color map of g for a box with outer rectangle r.
// The gradient must satisfy [IsColorMapSupported].
func NewColorMap(g Gradient, r rect.Rect) ColorMap {
	cm := ColorMap{
		c0: g.StartColor(),
		c1: g.EndColor(),
	}
	if g.IsMonochrome() || len(g.Stops) < 2 {
		cm.monochrome = true
		return cm
	}

	start, end := g.Endpoints(r)
	cm.proj = newProjection(start, end)
	cm.p0 = g.Stops[0].Position
	cm.p1 = g.Stops[len(g.Stops)-1].Position
	if cm.p1 <= cm.p0 {
		cm.monochrome = true
		cm.c0 = cm.c1
	}
	return cm
}

// IsMonochrome reports whether the map assigns the same color everywhere.
func (cm *ColorMap) IsMonochrome() bool {
	return cm.monochrome
}

// ColorAt returns the color at the point p.
func (cm *ColorMap) ColorAt(p vec.Vec2) color.RGBA {
	if cm.monochrome {
		return cm.c0
	}
	t := (cm.proj.value(p) - cm.p0) / (cm.p1 - cm.p0)
	return mixColor(cm.c0, cm.c1, t)
}

// SetLine returns the line from p1 to p2 with colors from the map.
func (cm *ColorMap) SetLine(p1, p2 vec.Vec2) ColoredLine {
	return ColoredLine{P1: p1, P2: p2, C1: cm.ColorAt(p1), C2: cm.ColorAt(p2)}
}

// IsColorMapSupported reports whether filling the box rectangle r with g can
// be done with per-vertex colors.  This is the case for monochrome gradients,
// and for linear gradients with exactly two stops where all of r lies inside
// the stop range.  Otherwise the geometry has to be cut at the gradient stops
// and where the gradient starts padding.
func IsColorMapSupported(g Gradient, r rect.Rect) bool {
	return colorMapSupported(g, r, r)
}

// colorMapSupported is like IsColorMapSupported, but the gradient vector is
// resolved against box while the area to be filled is area.
func colorMapSupported(g Gradient, box, area rect.Rect) bool {
	if !g.IsValid() {
		return false
	}
	if g.IsMonochrome() {
		return true
	}
	if g.Type != LinearGradient || len(g.Stops) != 2 {
		return false
	}

	start, end := g.Endpoints(box)
	proj := newProjection(start, end)
	p0 := g.Stops[0].Position
	p1 := g.Stops[1].Position
	if p1 <= p0 {
		return false
	}

	left, top, right, bottom := rectEdges(area)
	for _, pt := range [4]vec.Vec2{
		{X: left, Y: top}, {X: right, Y: top},
		{X: left, Y: bottom}, {X: right, Y: bottom},
	} {
		v := proj.value(pt)
		if v < p0-valueEpsilon || v > p1+valueEpsilon {
			return false
		}
	}
	return true
}

// GradientIterator walks the stops of a gradient in order of position.
// The current stop is the next stop boundary which has not been passed yet.
type GradientIterator struct {
	stops []Stop
	pos   int
}

// NewGradientIterator returns an iterator positioned at the first stop.
// The stops must be ordered by position.
func NewGradientIterator(stops []Stop) GradientIterator {
	return GradientIterator{stops: stops}
}

// IsDone reports whether all stops have been passed.
func (it *GradientIterator) IsDone() bool {
	return it.pos >= len(it.stops)
}

// Advance passes the current stop.  It returns false once all stops have
// been passed.
func (it *GradientIterator) Advance() bool {
	if it.pos < len(it.stops) {
		it.pos++
	}
	return it.pos < len(it.stops)
}

// Position returns the position of the current stop.
func (it *GradientIterator) Position() float64 {
	return it.stops[it.pos].Position
}

// Color returns the color of the current stop.
func (it *GradientIterator) Color() color.RGBA {
	return it.stops[it.pos].Color
}

// ColorAt returns the color at pos, interpolated between the last stop
// passed and the current stop.  Before the first stop, and after the last
// one, the nearest stop color is used.
func (it *GradientIterator) ColorAt(pos float64) color.RGBA {
	switch {
	case len(it.stops) == 0:
		return color.RGBA{}
	case it.pos == 0:
		return it.stops[0].Color
	case it.pos >= len(it.stops):
		return it.stops[len(it.stops)-1].Color
	}

	s0, s1 := it.stops[it.pos-1], it.stops[it.pos]
	if s1.Position <= s0.Position {
		return s1.Color
	}
	return mixColor(s0.Color, s1.Color, (pos-s0.Position)/(s1.Position-s0.Position))
}
