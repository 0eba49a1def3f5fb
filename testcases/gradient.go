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

import "seehuhn.de/go/boxgeom"

var gradientCases = []TestCase{
	{
		Name:   "vertical_two_stops",
		Rect:   box(4, 4, 92, 60),
		Shape:  boxgeom.UniformShape(12),
		Fill:   linear(0, 0, 0, 1, stop(0, red), stop(1, blue)),
		Width:  96,
		Height: 64,
	},
	{
		Name:   "vertical_partial",
		Rect:   box(4, 4, 92, 60),
		Shape:  boxgeom.UniformShape(12),
		Fill:   linear(0, 0.25, 0, 0.75, stop(0, red), stop(1, blue)),
		Width:  96,
		Height: 64,
	},
	{
		Name:   "horizontal_multi",
		Rect:   box(4, 4, 92, 60),
		Shape:  boxgeom.UniformShape(20),
		Fill:   linear(0, 0, 1, 0, stop(0, red), stop(0.3, green), stop(0.6, white), stop(1, blue)),
		Width:  96,
		Height: 64,
	},
	{
		Name:   "upwards",
		Rect:   box(4, 4, 92, 60),
		Shape:  boxgeom.UniformShape(16),
		Border: boxgeom.UniformBorder(2),
		Fill:   linear(0, 1, 0, 0, stop(0, red), stop(0.5, green), stop(1, blue)),
		Width:  96,
		Height: 64,
	},
	{
		Name:   "tilted",
		Rect:   box(4, 4, 92, 60),
		Shape:  boxgeom.UniformShape(16),
		Fill:   linear(0, 0, 1, 1, stop(0, red), stop(0.5, green), stop(1, blue)),
		Width:  96,
		Height: 64,
	},
	{
		Name: "tilted_asymmetric",
		Rect: box(4, 4, 92, 60),
		Shape: boxgeom.Shape{
			TopLeft:     boxgeom.Radius{X: 24, Y: 24},
			TopRight:    boxgeom.Radius{X: 4, Y: 4},
			BottomLeft:  boxgeom.Radius{},
			BottomRight: boxgeom.Radius{X: 12, Y: 20},
		},
		Border: boxgeom.Border{Left: 4, Top: 2, Right: 6, Bottom: 3},
		Fill:   linear(0.1, 0.9, 0.8, 0.2, stop(0, red), stop(0.4, green), stop(0.4, white), stop(1, blue)),
		Width:  96,
		Height: 64,
	},
	{
		Name:   "hard_stop",
		Rect:   box(4, 4, 92, 60),
		Shape:  boxgeom.UniformShape(12),
		Fill:   linear(0, 0, 0, 1, stop(0, red), stop(0.5, red), stop(0.5, blue), stop(1, blue)),
		Width:  96,
		Height: 64,
	},
	{
		Name:   "rect_tilted",
		Rect:   box(8, 8, 56, 40),
		Fill:   linear(0, 0, 1, 1, stop(0, red), stop(0.5, green), stop(1, blue)),
		Width:  64,
		Height: 64,
	},
}

var colorCases = []TestCase{
	{
		Name:   "edges",
		Rect:   box(4, 4, 92, 60),
		Shape:  boxgeom.UniformShape(12),
		Border: boxgeom.UniformBorder(6),
		BorderColors: &boxgeom.BorderColors{
			Left:   boxgeom.SolidGradient(red),
			Top:    boxgeom.SolidGradient(green),
			Right:  boxgeom.SolidGradient(blue),
			Bottom: boxgeom.SolidGradient(white),
		},
		Fill:   linear(0, 0, 0, 1, stop(0, white), stop(1, black)),
		Width:  96,
		Height: 64,
	},
	{
		Name:   "edge_gradients",
		Rect:   box(8, 8, 56, 56),
		Border: boxgeom.Border{Left: 6, Top: 4, Right: 8, Bottom: 4},
		BorderColors: &boxgeom.BorderColors{
			Left:   *linear(0, 0, 0, 1, stop(0, red), stop(0.5, green), stop(1, blue)),
			Top:    *linear(0, 0, 1, 0, stop(0, red), stop(0.25, white), stop(1, blue)),
			Right:  *linear(0, 0, 0, 1, stop(0, blue), stop(0.75, white), stop(1, green)),
			Bottom: boxgeom.SolidGradient(black),
		},
		Width:  64,
		Height: 64,
	},
}

var largeCases = []TestCase{
	{
		Name:   "large_rounded",
		Rect:   box(16, 16, 496, 400),
		Shape:  boxgeom.UniformShape(80),
		Border: boxgeom.UniformBorder(12),
		Fill:   linear(0, 0, 1, 1, stop(0, red), stop(0.5, green), stop(1, blue)),
		Width:  512,
		Height: 416,
	},
}
