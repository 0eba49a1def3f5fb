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
	"image/color"

	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/boxgeom"
)

// TestCase defines a single box to be rendered.
type TestCase struct {
	Name   string    // lowercase a-z, 0-9 and _ only
	Rect   rect.Rect // the outer rectangle, y-axis pointing down
	Shape  boxgeom.Shape
	Border boxgeom.Border

	// BorderColors and Fill default to opaque black if left empty.
	BorderColors *boxgeom.BorderColors
	Fill         *boxgeom.Gradient

	Width  int // canvas width in pixels
	Height int // canvas height in pixels
}

// Box returns the box described by the test case.
func (tc *TestCase) Box() boxgeom.Box {
	b := boxgeom.Box{
		Rect:         tc.Rect,
		Shape:        tc.Shape,
		Border:       tc.Border,
		BorderColors: boxgeom.UniformBorderColors(black),
		Fill:         boxgeom.SolidGradient(black),
	}
	if tc.BorderColors != nil {
		b.BorderColors = *tc.BorderColors
	}
	if tc.Fill != nil {
		b.Fill = *tc.Fill
	}
	return b
}

// Metrics returns the box geometry of the test case.
func (tc *TestCase) Metrics() boxgeom.Metrics {
	return boxgeom.NewMetrics(tc.Rect, tc.Shape, tc.Border)
}

var (
	black = color.RGBA{A: 255}
	red   = color.RGBA{R: 255, A: 255}
	green = color.RGBA{G: 255, A: 255}
	blue  = color.RGBA{B: 255, A: 255}
	white = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// box is a helper to create a rectangle from left, top, right and bottom.
func box(left, top, right, bottom float64) rect.Rect {
	return rect.Rect{LLx: left, LLy: top, URx: right, URy: bottom}
}

func linear(x1, y1, x2, y2 float64, stops ...boxgeom.Stop) *boxgeom.Gradient {
	g := boxgeom.NewLinearGradient(x1, y1, x2, y2, stops...)
	return &g
}

func stop(pos float64, c color.RGBA) boxgeom.Stop {
	return boxgeom.Stop{Position: pos, Color: c}
}
