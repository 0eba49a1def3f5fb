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

var rectCases = []TestCase{
	{
		Name:   "plain",
		Rect:   box(10, 10, 54, 44),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "subpixel",
		Rect:   box(10.25, 10.5, 53.75, 44.3),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "inverted_rect",
		Rect:   box(54, 44, 10, 10),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "thin",
		Rect:   box(4, 30, 60, 31.5),
		Width:  64,
		Height: 64,
	},
}

var roundedCases = []TestCase{
	{
		Name:   "uniform",
		Rect:   box(0, 0, 100, 60),
		Shape:  boxgeom.UniformShape(20),
		Width:  100,
		Height: 60,
	},
	{
		Name:   "small_radius",
		Rect:   box(8, 8, 56, 56),
		Shape:  boxgeom.UniformShape(3),
		Width:  64,
		Height: 64,
	},
	{
		Name: "per_corner",
		Rect: box(4, 4, 92, 60),
		Shape: boxgeom.Shape{
			TopLeft:     boxgeom.Radius{X: 24, Y: 24},
			TopRight:    boxgeom.Radius{X: 4, Y: 4},
			BottomLeft:  boxgeom.Radius{},
			BottomRight: boxgeom.Radius{X: 12, Y: 12},
		},
		Width:  96,
		Height: 64,
	},
	{
		Name: "elliptic",
		Rect: box(4, 4, 92, 60),
		Shape: boxgeom.Shape{
			TopLeft:     boxgeom.Radius{X: 30, Y: 12},
			TopRight:    boxgeom.Radius{X: 30, Y: 12},
			BottomLeft:  boxgeom.Radius{X: 10, Y: 20},
			BottomRight: boxgeom.Radius{X: 10, Y: 20},
		},
		Width:  96,
		Height: 64,
	},
	{
		Name:   "clamped",
		Rect:   box(8, 16, 56, 48),
		Shape:  boxgeom.UniformShape(100),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "circle",
		Rect:   box(8, 8, 56, 56),
		Shape:  boxgeom.UniformShape(24),
		Width:  64,
		Height: 64,
	},
}

var borderCases = []TestCase{
	{
		Name:   "rect_uniform",
		Rect:   box(8, 8, 56, 56),
		Border: boxgeom.UniformBorder(4),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "rect_uneven",
		Rect:   box(8, 8, 56, 56),
		Border: boxgeom.Border{Left: 2, Top: 6, Right: 10, Bottom: 0},
		Width:  64,
		Height: 64,
	},
	{
		Name:   "rounded_uniform",
		Rect:   box(4, 4, 92, 60),
		Shape:  boxgeom.UniformShape(16),
		Border: boxgeom.UniformBorder(3),
		Width:  96,
		Height: 64,
	},
	{
		Name:   "rounded_thick",
		Rect:   box(4, 4, 92, 60),
		Shape:  boxgeom.UniformShape(10),
		Border: boxgeom.UniformBorder(14),
		Width:  96,
		Height: 64,
	},
	{
		Name: "rounded_uneven",
		Rect: box(4, 4, 92, 60),
		Shape: boxgeom.Shape{
			TopLeft:     boxgeom.Radius{X: 20, Y: 20},
			TopRight:    boxgeom.Radius{X: 8, Y: 8},
			BottomLeft:  boxgeom.Radius{X: 8, Y: 16},
			BottomRight: boxgeom.Radius{X: 20, Y: 20},
		},
		Border: boxgeom.Border{Left: 6, Top: 2, Right: 3, Bottom: 9},
		Width:  96,
		Height: 64,
	},
	{
		Name:   "full_bleed",
		Rect:   box(8, 8, 56, 40),
		Shape:  boxgeom.UniformShape(8),
		Border: boxgeom.UniformBorder(20),
		Width:  64,
		Height: 64,
	},
}
