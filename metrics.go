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
	"math"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Radius gives the two semi-axes of an elliptic corner.
type Radius struct {
	X, Y float64
}

// Shape gives the corner radii of a box.
type Shape struct {
	TopLeft, TopRight, BottomLeft, BottomRight Radius
}

// UniformShape returns a shape with circular corners of radius r.
func UniformShape(r float64) Shape {
	c := Radius{X: r, Y: r}
	return Shape{TopLeft: c, TopRight: c, BottomLeft: c, BottomRight: c}
}

// IsRectangle reports whether none of the corners is rounded.
func (s Shape) IsRectangle() bool {
	for _, r := range s.radii() {
		if r.X > 0 && r.Y > 0 {
			return false
		}
	}
	return true
}

func (s Shape) radii() [4]Radius {
	return [4]Radius{s.TopLeft, s.TopRight, s.BottomLeft, s.BottomRight}
}

// Border gives the border widths of the four box edges.
type Border struct {
	Left, Top, Right, Bottom float64
}

// UniformBorder returns a border with width w on all edges.
func UniformBorder(w float64) Border {
	return Border{Left: w, Top: w, Right: w, Bottom: w}
}

// IsEmpty reports whether all border widths are zero (or negative).
func (b Border) IsEmpty() bool {
	return b.Left <= 0 && b.Top <= 0 && b.Right <= 0 && b.Bottom <= 0
}

// Corner indices, used for [Metrics.Corners].
const (
	TopLeft = iota
	TopRight
	BottomLeft
	BottomRight
)

// Orientation is the direction of a sweep over the box.
type Orientation int

const (
	// Vertical sweeps from top to bottom, using horizontal lines.
	Vertical Orientation = iota

	// Horizontal sweeps from left to right, using vertical lines.
	Horizontal
)

// Symmetries is a set of orientations.
type Symmetries uint8

const (
	// VerticalSymmetry means that both corners at the top have the same
	// radii, and so do both corners at the bottom.  A vertical sweep can
	// then use the same step count on the left and on the right.
	VerticalSymmetry Symmetries = 1 << iota

	// HorizontalSymmetry means that both corners on the left have the same
	// radii, and so do both corners on the right.
	HorizontalSymmetry
)

// Corner holds the derived geometry of one box corner.
type Corner struct {
	// CenterX, CenterY is the center of the outer arc.
	CenterX, CenterY float64

	// RadiusX, RadiusY are the semi-axes of the outer arc.
	RadiusX, RadiusY float64

	// InnerCenterX, InnerCenterY is the center of the inner arc.  For a
	// corner which is not rounded on the inside this is the corner of the
	// inner rectangle.
	InnerCenterX, InnerCenterY float64

	// RadiusInnerX, RadiusInnerY are the semi-axes of the inner arc.
	// Both are zero if the inside of the corner is not rounded.
	RadiusInnerX, RadiusInnerY float64

	// Sx, Sy are -1 or +1 and give the quadrant of the corner.
	Sx, Sy float64

	// StepCount is the number of arc steps used for the corner, or zero
	// for a square corner.
	StepCount int

	// InnerStepCount is StepCount if the inside of the corner is rounded,
	// zero otherwise.
	InnerStepCount int
}

// Outer returns the point on the outer arc for the given arc sample.
func (c *Corner) Outer(cos, sin float64) vec.Vec2 {
	return vec.Vec2{
		X: c.CenterX + c.Sx*c.RadiusX*cos,
		Y: c.CenterY + c.Sy*c.RadiusY*sin,
	}
}

// Inner returns the point on the inner arc for the given arc sample.
func (c *Corner) Inner(cos, sin float64) vec.Vec2 {
	return vec.Vec2{
		X: c.InnerCenterX + c.Sx*c.RadiusInnerX*cos,
		Y: c.InnerCenterY + c.Sy*c.RadiusInnerY*sin,
	}
}

// IsInsideRounded reports whether the inner contour of the corner is an arc.
func (c *Corner) IsInsideRounded() bool {
	return c.InnerStepCount > 0
}

// Metrics holds the geometry derived from a box rectangle, its shape and
// its border.  All coordinates use a y-axis which points down.
type Metrics struct {
	// OuterRect is the box rectangle, with LLx/LLy the left/top and
	// URx/URy the right/bottom coordinate.
	OuterRect rect.Rect

	// InnerRect is OuterRect shrunk by the border widths.  It is never
	// inverted, but may have zero width or height.
	InnerRect rect.Rect

	Corners [4]Corner

	IsOutsideRounded   bool
	IsInsideRounded    bool
	IsOutsideSymmetric bool
	IsBorderRegular    bool

	StepSymmetries       Symmetries
	PreferredOrientation Orientation

	border Border
}

// NewMetrics computes the geometry of a box.  Radii are clamped to half the
// box size, border widths to non-negative values.  The rectangle may be
// given with its corners in any order.
func NewMetrics(outer rect.Rect, shape Shape, border Border) Metrics {
	left, top, right, bottom := rectEdges(outer)
	w, h := right-left, bottom-top

	var m Metrics
	m.OuterRect = rect.Rect{LLx: left, LLy: top, URx: right, URy: bottom}

	bl, bt := max(border.Left, 0), max(border.Top, 0)
	br, bb := max(border.Right, 0), max(border.Bottom, 0)
	m.border = Border{Left: bl, Top: bt, Right: br, Bottom: bb}
	m.IsBorderRegular = bl == bt && bl == br && bl == bb

	innerL, innerR := shrink(left, right, bl, br)
	innerT, innerB := shrink(top, bottom, bt, bb)
	m.InnerRect = rect.Rect{LLx: innerL, LLy: innerT, URx: innerR, URy: innerB}

	radii := shape.radii()
	for i := range m.Corners {
		c := &m.Corners[i]

		rx := max(0, min(radii[i].X, w/2))
		ry := max(0, min(radii[i].Y, h/2))
		if rx <= 0 || ry <= 0 {
			rx, ry = 0, 0
		}
		c.RadiusX, c.RadiusY = rx, ry

		var innerEdgeX, innerEdgeY float64
		if i == TopLeft || i == BottomLeft {
			c.Sx = -1
			c.CenterX = left + rx
			innerEdgeX = innerL
		} else {
			c.Sx = 1
			c.CenterX = right - rx
			innerEdgeX = innerR
		}
		if i == TopLeft || i == TopRight {
			c.Sy = -1
			c.CenterY = top + ry
			innerEdgeY = innerT
		} else {
			c.Sy = 1
			c.CenterY = bottom - ry
			innerEdgeY = innerB
		}

		if rx > 0 {
			c.StepCount = SegmentHint(max(rx, ry))
		}

		// The inner arc shares the center with the outer arc, but the center
		// must not leave the inner rectangle.  Otherwise arcs of neighbouring
		// corners could cross.
		icx := max(innerL, min(c.CenterX, innerR))
		icy := max(innerT, min(c.CenterY, innerB))
		rix := math.Abs(icx - innerEdgeX)
		riy := math.Abs(icy - innerEdgeY)
		if rx <= 0 || rix <= 0 || riy <= 0 {
			c.InnerCenterX, c.InnerCenterY = innerEdgeX, innerEdgeY
			c.RadiusInnerX, c.RadiusInnerY = 0, 0
		} else {
			c.InnerCenterX, c.InnerCenterY = icx, icy
			c.RadiusInnerX, c.RadiusInnerY = rix, riy
			c.InnerStepCount = c.StepCount
			m.IsInsideRounded = true
		}
	}

	c := &m.Corners
	clamped := Shape{
		TopLeft:     Radius{X: c[TopLeft].RadiusX, Y: c[TopLeft].RadiusY},
		TopRight:    Radius{X: c[TopRight].RadiusX, Y: c[TopRight].RadiusY},
		BottomLeft:  Radius{X: c[BottomLeft].RadiusX, Y: c[BottomLeft].RadiusY},
		BottomRight: Radius{X: c[BottomRight].RadiusX, Y: c[BottomRight].RadiusY},
	}
	m.IsOutsideRounded = !clamped.IsRectangle()

	tl, tr := &m.Corners[TopLeft], &m.Corners[TopRight]
	bl2, br2 := &m.Corners[BottomLeft], &m.Corners[BottomRight]

	m.IsOutsideSymmetric = sameRadius(tl, tr) && sameRadius(tl, bl2) && sameRadius(tl, br2)
	if sameRadius(tl, tr) && sameRadius(bl2, br2) {
		m.StepSymmetries |= VerticalSymmetry
	}
	if sameRadius(tl, bl2) && sameRadius(tr, br2) {
		m.StepSymmetries |= HorizontalSymmetry
	}

	stepsV := max(tl.InnerStepCount, tr.InnerStepCount) + max(bl2.InnerStepCount, br2.InnerStepCount)
	stepsH := max(tl.InnerStepCount, bl2.InnerStepCount) + max(tr.InnerStepCount, br2.InnerStepCount)
	if stepsH < stepsV {
		m.PreferredOrientation = Horizontal
	} else {
		m.PreferredOrientation = Vertical
	}

	return m
}

// Border returns the clamped border widths.
func (m *Metrics) Border() Border {
	return m.border
}

// HasBorder reports whether any border edge has a positive width.
func (m *Metrics) HasBorder() bool {
	return !m.border.IsEmpty()
}

// IsInnerEmpty reports whether the border covers the whole box.
func (m *Metrics) IsInnerEmpty() bool {
	return m.InnerRect.URx <= m.InnerRect.LLx || m.InnerRect.URy <= m.InnerRect.LLy
}

// allInsideRounded reports whether the inside of every corner is an arc.
func (m *Metrics) allInsideRounded() bool {
	for i := range m.Corners {
		if !m.Corners[i].IsInsideRounded() {
			return false
		}
	}
	return true
}

// innerContourCount returns the number of points on the inner contour.
func (m *Metrics) innerContourCount() int {
	n := 0
	for i := range m.Corners {
		n += m.Corners[i].InnerStepCount + 1
	}
	return n
}

func sameRadius(a, b *Corner) bool {
	return a.RadiusX == b.RadiusX && a.RadiusY == b.RadiusY
}

// shrink moves lo and hi towards each other by dlo and dhi.  If the two
// would cross, both end up at the midpoint of the shrunk interval, clamped
// to [lo, hi].
func shrink(lo, hi, dlo, dhi float64) (float64, float64) {
	a, b := lo+dlo, hi-dhi
	if a > b {
		mid := max(lo, min((a+b)/2, hi))
		return mid, mid
	}
	return a, b
}

// rectEdges returns the left, top, right and bottom coordinate of r.
func rectEdges(r rect.Rect) (left, top, right, bottom float64) {
	return min(r.LLx, r.URx), min(r.LLy, r.URy), max(r.LLx, r.URx), max(r.LLy, r.URy)
}
