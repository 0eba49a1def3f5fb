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
	"math"
	"sort"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// GradientType identifies the geometry of a gradient.
type GradientType int

const (
	LinearGradient GradientType = iota
	RadialGradient
	ConicGradient
)

// Spread describes how a gradient continues outside its stop range.
type Spread int

const (
	PadSpread Spread = iota
	ReflectSpread
	RepeatSpread
)

// Stop is a color at a position along the gradient vector.
// Colors are alpha-premultiplied.
type Stop struct {
	Position float64
	Color    color.RGBA
}

// LinearDirection is the gradient vector of a linear gradient, running from
// (X1, Y1) to (X2, Y2).
type LinearDirection struct {
	X1, Y1, X2, Y2 float64
}

// IsVertical reports whether the vector is parallel to the y-axis.
func (d LinearDirection) IsVertical() bool {
	return d.X1 == d.X2 && d.Y1 != d.Y2
}

// IsHorizontal reports whether the vector is parallel to the x-axis.
func (d LinearDirection) IsHorizontal() bool {
	return d.Y1 == d.Y2 && d.X1 != d.X2
}

// IsTilted reports whether the vector is neither horizontal nor vertical.
func (d LinearDirection) IsTilted() bool {
	return d.X1 != d.X2 && d.Y1 != d.Y2
}

// IsDegenerate reports whether start and end coincide.
func (d LinearDirection) IsDegenerate() bool {
	return d.X1 == d.X2 && d.Y1 == d.Y2
}

// Gradient describes the paint of a box fill or of a border edge.
//
// For a stretched gradient the direction is given in units of the box size,
// with (0, 0) at the top-left and (1, 1) at the bottom-right corner of the
// outer rectangle. Otherwise it is given in the coordinates of the box.
type Gradient struct {
	Type      GradientType
	Stops     []Stop
	Direction LinearDirection
	Spread    Spread
	Stretched bool
}

// SolidGradient returns a gradient which paints everything in c.
func SolidGradient(c color.RGBA) Gradient {
	return Gradient{
		Stops:     []Stop{{Position: 0, Color: c}, {Position: 1, Color: c}},
		Direction: LinearDirection{X1: 0, Y1: 0, X2: 0, Y2: 1},
		Stretched: true,
	}
}

// NewLinearGradient returns a stretched linear gradient.  The stops must be
// ordered by position.
func NewLinearGradient(x1, y1, x2, y2 float64, stops ...Stop) Gradient {
	return Gradient{
		Stops:     stops,
		Direction: LinearDirection{X1: x1, Y1: y1, X2: x2, Y2: y2},
		Stretched: true,
	}
}

// IsValid reports whether the gradient has stops in non-decreasing order,
// and a usable direction.
func (g Gradient) IsValid() bool {
	if len(g.Stops) == 0 {
		return false
	}
	for i := 1; i < len(g.Stops); i++ {
		if g.Stops[i].Position < g.Stops[i-1].Position {
			return false
		}
	}
	if g.Type == LinearGradient && g.Direction.IsDegenerate() && !g.IsMonochrome() {
		return false
	}
	return true
}

// IsMonochrome reports whether all stops have the same color.
func (g Gradient) IsMonochrome() bool {
	for i := 1; i < len(g.Stops); i++ {
		if g.Stops[i].Color != g.Stops[0].Color {
			return false
		}
	}
	return true
}

// IsVisible reports whether painting with g can change any pixel.
func (g Gradient) IsVisible() bool {
	if !g.IsValid() {
		return false
	}
	for _, s := range g.Stops {
		if s.Color.A > 0 {
			return true
		}
	}
	return false
}

// StepCount returns the number of color transitions between neighbouring
// stops.
func (g Gradient) StepCount() int {
	if g.IsMonochrome() {
		return 0
	}
	return len(g.Stops) - 1
}

// StartColor returns the color of the first stop.
func (g Gradient) StartColor() color.RGBA {
	if len(g.Stops) == 0 {
		return color.RGBA{}
	}
	return g.Stops[0].Color
}

// EndColor returns the color of the last stop.
func (g Gradient) EndColor() color.RGBA {
	if len(g.Stops) == 0 {
		return color.RGBA{}
	}
	return g.Stops[len(g.Stops)-1].Color
}

// ColorAt returns the color at a position along the gradient vector.
// At the position of a hard stop (two stops with equal positions) the color
// of the later stop is returned.
func (g Gradient) ColorAt(pos float64) color.RGBA {
	stops := g.Stops
	switch len(stops) {
	case 0:
		return color.RGBA{}
	case 1:
		return stops[0].Color
	}

	pos = applySpread(pos, g.Spread, stops[0].Position, stops[len(stops)-1].Position)

	idx := sort.Search(len(stops), func(i int) bool {
		return stops[i].Position > pos
	})
	if idx == 0 {
		return stops[0].Color
	}
	if idx == len(stops) {
		return stops[len(stops)-1].Color
	}

	s0, s1 := stops[idx-1], stops[idx]
	if s1.Position == s0.Position {
		return s1.Color
	}
	return mixColor(s0.Color, s1.Color, (pos-s0.Position)/(s1.Position-s0.Position))
}

// applySpread maps pos into the range [lo, hi] according to the spread mode.
func applySpread(pos float64, spread Spread, lo, hi float64) float64 {
	period := hi - lo
	if period <= 0 || (pos >= lo && pos <= hi) {
		return pos
	}

	switch spread {
	case RepeatSpread:
		t := (pos - lo) / period
		return lo + (t-math.Floor(t))*period
	case ReflectSpread:
		t := math.Abs(pos-lo) / period
		n := math.Floor(t)
		t -= n
		if int(n)%2 == 1 {
			t = 1 - t
		}
		return lo + t*period
	default:
		return pos
	}
}

// Endpoints returns the start and end point of the gradient vector for a box
// with outer rectangle r.
func (g Gradient) Endpoints(r rect.Rect) (start, end vec.Vec2) {
	d := g.Direction
	if !g.Stretched {
		return vec.Vec2{X: d.X1, Y: d.Y1}, vec.Vec2{X: d.X2, Y: d.Y2}
	}

	left, top, right, bottom := rectEdges(r)
	w, h := right-left, bottom-top
	start = vec.Vec2{X: left + d.X1*w, Y: top + d.Y1*h}
	end = vec.Vec2{X: left + d.X2*w, Y: top + d.Y2*h}
	return start, end
}

// BorderColors gives the gradients used for the four border edges.
// The left and right edges run from top to bottom, the top and bottom edges
// run from left to right.
type BorderColors struct {
	Left, Top, Right, Bottom Gradient
}

// UniformBorderColors returns border colors painting all edges in c.
func UniformBorderColors(c color.RGBA) BorderColors {
	g := SolidGradient(c)
	return BorderColors{Left: g, Top: g, Right: g, Bottom: g}
}

// IsMonochrome reports whether all four edges use one single color.
func (bc *BorderColors) IsMonochrome() bool {
	if !bc.Left.IsMonochrome() || !bc.Top.IsMonochrome() ||
		!bc.Right.IsMonochrome() || !bc.Bottom.IsMonochrome() {
		return false
	}
	c := bc.Left.StartColor()
	return bc.Top.StartColor() == c && bc.Right.StartColor() == c && bc.Bottom.StartColor() == c
}

// IsVisible reports whether any of the edges is visible.
func (bc *BorderColors) IsVisible() bool {
	return bc.Left.IsVisible() || bc.Top.IsVisible() || bc.Right.IsVisible() || bc.Bottom.IsVisible()
}

// mixColor interpolates linearly between two premultiplied colors.
func mixColor(c0, c1 color.RGBA, t float64) color.RGBA {
	if t <= 0 {
		return c0
	}
	if t >= 1 {
		return c1
	}
	mix := func(a, b uint8) uint8 {
		v := float64(a) + t*(float64(b)-float64(a))
		return uint8(max(0, min(255, math.Round(v))))
	}
	return color.RGBA{
		R: mix(c0.R, c1.R),
		G: mix(c0.G, c1.G),
		B: mix(c0.B, c1.B),
		A: mix(c0.A, c1.A),
	}
}
