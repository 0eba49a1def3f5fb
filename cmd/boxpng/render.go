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


package main

import (
	"image"
	"image/color"
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/boxgeom"
	"seehuhn.de/go/boxgeom/raster"
)

// renderBox draws the box into a new w×h image.  Box coordinates are
// multiplied by scale to get pixel coordinates.
//
// The coverage of every pixel is computed from the whole triangle strip.
// The color of a pixel is interpolated from the vertex colors of the
// triangle which covers most of the pixel.
func renderBox(b boxgeom.Box, w, h int, scale float64) (*image.RGBA, error) {
	n, err := b.LineCount()
	if err != nil {
		return nil, err
	}
	lines := make([]boxgeom.ColoredLine, n)
	if _, err := b.SetLines(lines); err != nil {
		return nil, err
	}
	pts, cols := boxgeom.ColoredStripPoints(nil, nil, lines)

	clip := rect.Rect{URx: float64(w), URy: float64(h)}
	r := raster.NewRasterizer(clip)
	r.CTM = matrix.Scale(scale, scale)

	coverage := make([]float32, w*h)
	r.FillStrip(pts, func(y, xMin int, cov []float32) {
		copy(coverage[y*w+xMin:], cov)
	})

	best := make([]float32, w*h)
	shade := make([]color.RGBA, w*h)
	for i := 0; i+2 < len(pts); i++ {
		p0, p1, p2 := pts[i], pts[i+1], pts[i+2]
		area := raster.TriangleArea(p0, p1, p2)
		if math.Abs(area) < minShadeArea {
			continue
		}
		c0, c1, c2 := cols[i], cols[i+1], cols[i+2]

		r.FillTriangle(p0, p1, p2, func(y, xMin int, cov []float32) {
			for k, v := range cov {
				idx := y*w + xMin + k
				if v <= best[idx] {
					continue
				}
				best[idx] = v
				p := vec.Vec2{
					X: (float64(xMin+k) + 0.5) / scale,
					Y: (float64(y) + 0.5) / scale,
				}
				shade[idx] = gouraud(p0, p1, p2, c0, c1, c2, area, p)
			}
		})
	}

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for idx, v := range coverage {
		if v <= 0 {
			continue
		}
		v = min(v, 1)
		c := shade[idx]
		pix := img.Pix[4*idx : 4*idx+4]
		pix[0] = uint8(float32(c.R)*v + 0.5)
		pix[1] = uint8(float32(c.G)*v + 0.5)
		pix[2] = uint8(float32(c.B)*v + 0.5)
		pix[3] = uint8(float32(c.A)*v + 0.5)
	}
	return img, nil
}

// gouraud interpolates the vertex colors of the triangle p0 p1 p2 at p.
// Points outside the triangle get the color of the nearest point on its
// boundary, approximately.
func gouraud(p0, p1, p2 vec.Vec2, c0, c1, c2 color.RGBA, area float64, p vec.Vec2) color.RGBA {
	l0 := max(0, raster.TriangleArea(p, p1, p2)/area)
	l1 := max(0, raster.TriangleArea(p0, p, p2)/area)
	l2 := max(0, raster.TriangleArea(p0, p1, p)/area)
	s := l0 + l1 + l2
	if s <= 0 {
		return c0
	}
	l0, l1, l2 = l0/s, l1/s, l2/s

	mix := func(x, y, z uint8) uint8 {
		v := l0*float64(x) + l1*float64(y) + l2*float64(z)
		return uint8(max(0, min(255, math.Round(v))))
	}
	return color.RGBA{
		R: mix(c0.R, c1.R, c2.R),
		G: mix(c0.G, c1.G, c2.G),
		B: mix(c0.B, c1.B, c2.B),
		A: mix(c0.A, c1.A, c2.A),
	}
}

// minShadeArea is the minimal doubled area of a triangle which is used
// for shading.
const minShadeArea = 1e-12
