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

// Package boxgeom generates triangle strips for boxes: rectangles with
// elliptic corners, borders of individual width and color on every edge,
// and linear gradient fills.
//
// The output is a slice of lines.  Taking the two end points of every line
// in order gives the vertices of a triangle strip, which can be passed to a
// rasteriser or to a GPU.  The callers allocate the line buffers, after
// querying the required size.
//
// Geometry uses a coordinate system where the y-axis points down.
package boxgeom

//go:generate go run ./testcases/export

import (
	"errors"
	"fmt"

	"seehuhn.de/go/geom/rect"
)

// ErrUnsupportedGradient is returned when a gradient cannot be rendered as
// box geometry.  Such gradients need a different rendering strategy, for
// example a shader.
var ErrUnsupportedGradient = errors.New("unsupported gradient")

// IsGradientSupported reports whether fills with g can be generated by this
// package.  This is the case for monochrome gradients, and for linear
// gradients which are padded outside their stop range.
func IsGradientSupported(g Gradient) bool {
	if !g.IsValid() {
		return false
	}
	if g.IsMonochrome() {
		return true
	}
	return g.Type == LinearGradient && g.Spread == PadSpread
}

// BorderLineCount returns the number of lines needed by SetBorderLines.
func BorderLineCount(r rect.Rect, shape Shape, border Border) int {
	m := NewMetrics(r, shape, border)
	return NewBasicStroker(&m).BorderCount()
}

// SetBorderLines writes the geometry of the box border to lines.
// The buffer must have room for BorderLineCount lines.
func SetBorderLines(r rect.Rect, shape Shape, border Border, lines []Line) int {
	m := NewMetrics(r, shape, border)
	return NewBasicStroker(&m).SetBorderLines(lines)
}

// FillLineCount returns the number of lines needed by SetFillLines.
func FillLineCount(r rect.Rect, shape Shape, border Border) int {
	m := NewMetrics(r, shape, border)
	return NewBasicStroker(&m).FillCount()
}

// SetFillLines writes the geometry of the inside of the box to lines.
// The buffer must have room for FillLineCount lines.
func SetFillLines(r rect.Rect, shape Shape, border Border, lines []Line) int {
	m := NewMetrics(r, shape, border)
	return NewBasicStroker(&m).SetFillLines(lines)
}

// ColoredBorderLineCount returns the number of lines needed by
// SetColoredBorderLines.
func ColoredBorderLineCount(r rect.Rect, shape Shape, border Border, bc BorderColors) int {
	m := NewMetrics(r, shape, border)
	return NewColoredBasicStroker(&m, bc, ColorMap{}).BorderCount()
}

// SetColoredBorderLines writes the box border, colored with bc, to lines.
// The buffer must have room for ColoredBorderLineCount lines.
func SetColoredBorderLines(r rect.Rect, shape Shape, border Border, bc BorderColors, lines []ColoredLine) int {
	m := NewMetrics(r, shape, border)
	return NewColoredBasicStroker(&m, bc, ColorMap{}).SetColoredBorderLines(lines)
}

// ColoredFillLineCount returns the number of lines needed by
// SetColoredFillLines.
func ColoredFillLineCount(r rect.Rect, shape Shape, border Border, g Gradient) (int, error) {
	if !IsGradientSupported(g) {
		return 0, fmt.Errorf("fill line count: %w", ErrUnsupportedGradient)
	}
	m := NewMetrics(r, shape, border)
	return newFiller(&m, BorderColors{}, g).fillCount(), nil
}

// SetColoredFillLines writes the inside of the box, filled with g, to lines.
// The buffer must have room for ColoredFillLineCount lines.
func SetColoredFillLines(r rect.Rect, shape Shape, border Border, g Gradient, lines []ColoredLine) (int, error) {
	if !IsGradientSupported(g) {
		return 0, fmt.Errorf("fill lines: %w", ErrUnsupportedGradient)
	}
	m := NewMetrics(r, shape, border)
	return newFiller(&m, BorderColors{}, g).setFill(lines), nil
}

// SetColoredBorderAndFillLines writes the border and the fill of a box in one
// call.  The buffers must have room for ColoredBorderLineCount and
// ColoredFillLineCount lines, respectively.
func SetColoredBorderAndFillLines(r rect.Rect, shape Shape, border Border,
	bc BorderColors, g Gradient, borderLines, fillLines []ColoredLine) error {
	if !IsGradientSupported(g) {
		return fmt.Errorf("box lines: %w", ErrUnsupportedGradient)
	}
	m := NewMetrics(r, shape, border)
	f := newFiller(&m, bc, g)
	if f.grad == nil {
		f.basic.SetBoxLines(borderLines, fillLines)
		return nil
	}
	f.basic.SetColoredBorderLines(borderLines)
	f.grad.SetLines(fillLines)
	return nil
}

// filler selects the stroker for the inside of a box.  Gradients which can
// be represented by a color map use the basic stroker, everything else
// uses the gradient stroker.
type filler struct {
	basic *BasicStroker
	grad  *GradientStroker
}

func newFiller(m *Metrics, bc BorderColors, g Gradient) filler {
	var f filler
	if colorMapSupported(g, m.OuterRect, m.InnerRect) {
		f.basic = NewColoredBasicStroker(m, bc, NewColorMap(g, m.OuterRect))
	} else {
		f.basic = NewColoredBasicStroker(m, bc, ColorMap{})
		f.grad = NewGradientStroker(m, g)
	}
	return f
}

func (f filler) fillCount() int {
	if f.grad != nil {
		return f.grad.LineCount()
	}
	return f.basic.FillCount()
}

func (f filler) setFill(lines []ColoredLine) int {
	if f.grad != nil {
		return f.grad.SetLines(lines)
	}
	return f.basic.SetColoredFillLines(lines)
}

// Box describes a complete box: the geometry, the border colors and the
// fill.  Parts which are invisible are omitted from the output.
type Box struct {
	Rect         rect.Rect
	Shape        Shape
	Border       Border
	BorderColors BorderColors
	Fill         Gradient
}

// boxPlan gives the number of lines for the parts of a box strip.
type boxPlan struct {
	m      Metrics
	f      filler
	nFill  int
	nBord  int
	bridge int
}

func (b *Box) plan() (*boxPlan, error) {
	if !IsGradientSupported(b.Fill) && b.Fill.IsVisible() {
		return nil, fmt.Errorf("box: %w", ErrUnsupportedGradient)
	}

	p := &boxPlan{m: NewMetrics(b.Rect, b.Shape, b.Border)}
	p.f = newFiller(&p.m, b.BorderColors, b.Fill)
	if b.Fill.IsVisible() {
		p.nFill = p.f.fillCount()
	}
	if b.BorderColors.IsVisible() {
		p.nBord = p.f.basic.BorderCount()
	}
	if p.nFill > 0 && p.nBord > 0 {
		p.bridge = 2
	}
	return p, nil
}

// LineCount returns the number of lines needed by SetLines.
func (b *Box) LineCount() (int, error) {
	p, err := b.plan()
	if err != nil {
		return 0, err
	}
	return p.nFill + p.bridge + p.nBord, nil
}

// SetLines writes the fill and the border of the box into a single triangle
// strip.  The fill comes first, followed by the border.  The two parts are
// joined by degenerate lines.  The buffer must have room for LineCount
// lines.  The return value is the number of lines used.
func (b *Box) SetLines(lines []ColoredLine) (int, error) {
	p, err := b.plan()
	if err != nil {
		return 0, err
	}
	total := p.nFill + p.bridge + p.nBord
	checkCapacity(coloredLines(lines), total)

	fill := lines[:p.nFill]
	border := lines[p.nFill+p.bridge : total]
	switch {
	case p.nFill > 0 && p.nBord > 0 && p.f.grad == nil:
		p.f.basic.SetBoxLines(border, fill)
	case p.nFill > 0:
		p.f.setFill(fill)
		if p.nBord > 0 {
			p.f.basic.SetColoredBorderLines(border)
		}
	case p.nBord > 0:
		p.f.basic.SetColoredBorderLines(border)
	}

	if p.bridge > 0 {
		last := lines[p.nFill-1]
		first := lines[p.nFill+p.bridge]
		lines[p.nFill] = ColoredLine{P1: last.P2, P2: last.P2, C1: last.C2, C2: last.C2}
		lines[p.nFill+1] = ColoredLine{P1: first.P1, P2: first.P1, C1: first.C1, C2: first.C1}
	}
	return total, nil
}
