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
	"testing"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

var (
	testRed   = color.RGBA{R: 255, A: 255}
	testGreen = color.RGBA{G: 255, A: 255}
	testBlue  = color.RGBA{B: 255, A: 255}
)

func TestGradientColorAt(t *testing.T) {
	g := NewLinearGradient(0, 0, 0, 1, Stop{0, testRed}, Stop{1, testBlue})

	cases := []struct {
		spread Spread
		pos    float64
		want   color.RGBA
	}{
		{PadSpread, 0, testRed},
		{PadSpread, 0.5, color.RGBA{R: 128, B: 128, A: 255}},
		{PadSpread, 1, testBlue},
		{PadSpread, -1, testRed},
		{PadSpread, 1.25, testBlue},
		{RepeatSpread, 1.25, color.RGBA{R: 191, B: 64, A: 255}},
		{RepeatSpread, -0.75, color.RGBA{R: 191, B: 64, A: 255}},
		{ReflectSpread, 1.25, color.RGBA{R: 64, B: 191, A: 255}},
		{ReflectSpread, -0.25, color.RGBA{R: 191, B: 64, A: 255}},
	}
	for _, c := range cases {
		g.Spread = c.spread
		if got := g.ColorAt(c.pos); got != c.want {
			t.Errorf("spread %d, pos %g: got %v, want %v", c.spread, c.pos, got, c.want)
		}
	}
}

func TestGradientHardStop(t *testing.T) {
	g := NewLinearGradient(0, 0, 0, 1,
		Stop{0, testRed}, Stop{0.5, testRed}, Stop{0.5, testBlue}, Stop{1, testBlue})

	if got := g.ColorAt(0.49); got != testRed {
		t.Errorf("before the hard stop: %v", got)
	}
	if got := g.ColorAt(0.5); got != testBlue {
		t.Errorf("at the hard stop: %v", got)
	}
	if got := g.StepCount(); got != 3 {
		t.Errorf("StepCount() = %d", got)
	}
}

func TestGradientPredicates(t *testing.T) {
	transparent := color.RGBA{}
	cases := []struct {
		name       string
		g          Gradient
		valid      bool
		monochrome bool
		visible    bool
	}{
		{"solid", SolidGradient(testRed), true, true, true},
		{"linear", NewLinearGradient(0, 0, 1, 1, Stop{0, testRed}, Stop{1, testBlue}), true, false, true},
		{"empty", Gradient{}, false, true, false},
		{"unordered", NewLinearGradient(0, 0, 1, 0, Stop{0.8, testRed}, Stop{0.2, testBlue}), false, false, false},
		{"degenerate", NewLinearGradient(0.5, 0.5, 0.5, 0.5, Stop{0, testRed}, Stop{1, testBlue}), false, false, false},
		{"degenerate_solid", NewLinearGradient(0.5, 0.5, 0.5, 0.5, Stop{0, testRed}, Stop{1, testRed}), true, true, true},
		{"transparent", SolidGradient(transparent), true, true, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.g.IsValid(); got != c.valid {
				t.Errorf("IsValid() = %t", got)
			}
			if got := c.g.IsMonochrome(); got != c.monochrome {
				t.Errorf("IsMonochrome() = %t", got)
			}
			if got := c.g.IsVisible(); got != c.visible {
				t.Errorf("IsVisible() = %t", got)
			}
		})
	}
}

func TestGradientEndpoints(t *testing.T) {
	r := rect.Rect{LLx: 10, LLy: 20, URx: 110, URy: 70}

	g := NewLinearGradient(0, 0, 1, 1, Stop{0, testRed}, Stop{1, testBlue})
	start, end := g.Endpoints(r)
	if start != (vec.Vec2{X: 10, Y: 20}) || end != (vec.Vec2{X: 110, Y: 70}) {
		t.Errorf("stretched: %v -> %v", start, end)
	}

	g.Stretched = false
	start, end = g.Endpoints(r)
	if start != (vec.Vec2{X: 0, Y: 0}) || end != (vec.Vec2{X: 1, Y: 1}) {
		t.Errorf("absolute: %v -> %v", start, end)
	}
}

func TestLinearDirection(t *testing.T) {
	cases := []struct {
		d                                       LinearDirection
		vertical, horizontal, tilted, degenerate bool
	}{
		{LinearDirection{0, 0, 0, 1}, true, false, false, false},
		{LinearDirection{0, 1, 0, 0}, true, false, false, false},
		{LinearDirection{0, 0, 1, 0}, false, true, false, false},
		{LinearDirection{0, 0, 1, 1}, false, false, true, false},
		{LinearDirection{1, 1, 1, 1}, false, false, false, true},
	}
	for _, c := range cases {
		if c.d.IsVertical() != c.vertical || c.d.IsHorizontal() != c.horizontal ||
			c.d.IsTilted() != c.tilted || c.d.IsDegenerate() != c.degenerate {
			t.Errorf("%v: wrong classification", c.d)
		}
	}
}

func TestBorderColors(t *testing.T) {
	bc := UniformBorderColors(testRed)
	if !bc.IsMonochrome() || !bc.IsVisible() {
		t.Error("uniform border colors")
	}
	bc.Top = SolidGradient(testBlue)
	if bc.IsMonochrome() {
		t.Error("border with a blue top edge is monochrome")
	}
	bc = BorderColors{}
	if bc.IsVisible() {
		t.Error("zero border colors are visible")
	}
}
