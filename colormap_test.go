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

func TestIsColorMapSupported(t *testing.T) {
	r := rect.Rect{LLx: 0, LLy: 0, URx: 100, URy: 50}

	radial := NewLinearGradient(0, 0, 0, 1, Stop{0, testRed}, Stop{1, testBlue})
	radial.Type = RadialGradient

	cases := []struct {
		name string
		g    Gradient
		want bool
	}{
		{"solid", SolidGradient(testRed), true},
		{"vertical", NewLinearGradient(0, 0, 0, 1, Stop{0, testRed}, Stop{1, testBlue}), true},
		{"diagonal", NewLinearGradient(0, 0, 1, 1, Stop{0, testRed}, Stop{1, testBlue}), true},
		{"reversed", NewLinearGradient(1, 0, 0, 0, Stop{0, testRed}, Stop{1, testBlue}), true},
		{"partial", NewLinearGradient(0, 0.25, 0, 0.75, Stop{0, testRed}, Stop{1, testBlue}), false},
		{"inner_stops", NewLinearGradient(0, 0, 0, 1, Stop{0.2, testRed}, Stop{0.8, testBlue}), false},
		{"three_stops", NewLinearGradient(0, 0, 0, 1, Stop{0, testRed}, Stop{0.5, testGreen}, Stop{1, testBlue}), false},
		{"hard_stop", NewLinearGradient(0, 0, 0, 1, Stop{0.5, testRed}, Stop{0.5, testBlue}), false},
		{"radial", radial, false},
		{"invalid", Gradient{}, false},
	}
	for _, c := range cases {
		if got := IsColorMapSupported(c.g, r); got != c.want {
			t.Errorf("%s: got %t, want %t", c.name, got, c.want)
		}
	}
}

func TestColorMapSupportedInnerArea(t *testing.T) {
	outer := rect.Rect{LLx: 0, LLy: 0, URx: 100, URy: 100}
	inner := rect.Rect{LLx: 10, LLy: 30, URx: 90, URy: 70}
	g := NewLinearGradient(0, 0.25, 0, 0.75, Stop{0, testRed}, Stop{1, testBlue})

	if colorMapSupported(g, outer, outer) {
		t.Error("gradient does not cover the outer rect")
	}
	if !colorMapSupported(g, outer, inner) {
		t.Error("gradient covers the inner rect")
	}
}

func TestColorMap(t *testing.T) {
	r := rect.Rect{LLx: 0, LLy: 0, URx: 100, URy: 100}
	cm := NewColorMap(NewLinearGradient(0, 0, 0, 1, Stop{0, testRed}, Stop{1, testBlue}), r)
	if cm.IsMonochrome() {
		t.Fatal("two color gradient is monochrome")
	}

	cases := []struct {
		p    vec.Vec2
		want color.RGBA
	}{
		{vec.Vec2{X: 50, Y: 0}, testRed},
		{vec.Vec2{X: 0, Y: 100}, testBlue},
		{vec.Vec2{X: 30, Y: 50}, color.RGBA{R: 128, B: 128, A: 255}},
		{vec.Vec2{X: 30, Y: -10}, testRed},
	}
	for _, c := range cases {
		if got := cm.ColorAt(c.p); got != c.want {
			t.Errorf("ColorAt(%v) = %v, want %v", c.p, got, c.want)
		}
	}

	l := cm.SetLine(vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 100, Y: 100})
	if l.C1 != testRed || l.C2 != testBlue {
		t.Errorf("SetLine colors %v, %v", l.C1, l.C2)
	}

	solid := NewColorMap(SolidGradient(testGreen), r)
	if !solid.IsMonochrome() || solid.ColorAt(vec.Vec2{X: 1, Y: 2}) != testGreen {
		t.Error("solid color map")
	}
}

func TestGradientIterator(t *testing.T) {
	stops := []Stop{{0, testRed}, {0.5, testGreen}, {1, testBlue}}
	it := NewGradientIterator(stops)

	if it.IsDone() || it.Position() != 0 || it.Color() != testRed {
		t.Fatal("iterator not positioned at the first stop")
	}
	if got := it.ColorAt(-1); got != testRed {
		t.Errorf("before the first stop: %v", got)
	}

	if !it.Advance() || it.Position() != 0.5 {
		t.Fatalf("second stop at %g", it.Position())
	}
	if got, want := it.ColorAt(0.25), (color.RGBA{R: 128, G: 128, A: 255}); got != want {
		t.Errorf("ColorAt(0.25) = %v, want %v", got, want)
	}

	if !it.Advance() || it.Color() != testBlue {
		t.Fatal("third stop")
	}
	if got, want := it.ColorAt(0.75), (color.RGBA{G: 128, B: 128, A: 255}); got != want {
		t.Errorf("ColorAt(0.75) = %v, want %v", got, want)
	}

	if it.Advance() || !it.IsDone() {
		t.Fatal("iterator not done after the last stop")
	}
	if got := it.ColorAt(2); got != testBlue {
		t.Errorf("after the last stop: %v", got)
	}
	if it.Advance() {
		t.Error("Advance past the end")
	}
}
