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

	"seehuhn.de/go/geom/vec"
)

// BasicStroker generates the border and fill lines of a box, for the case
// where colors can be assigned per vertex.
//
// The border is a closed loop running counter-clockwise on screen, starting
// at the top of the top-left corner: top-left, bottom-left, bottom-right and
// top-right corner.  Every line goes from the inner to the outer contour.
// The last line repeats the first one.
//
// The fill is a sweep over the inner contour in the preferred orientation of
// the metrics.  For a vertical sweep the lines run from left to right, for a
// horizontal sweep from top to bottom.
type BasicStroker struct {
	m *Metrics

	colored bool
	bc      BorderColors
	cm      ColorMap
}

// NewBasicStroker returns a stroker which generates geometry only.
func NewBasicStroker(m *Metrics) *BasicStroker {
	return &BasicStroker{m: m}
}

// NewColoredBasicStroker returns a stroker which colors the border using bc
// and the fill using cm.
func NewColoredBasicStroker(m *Metrics, bc BorderColors, cm ColorMap) *BasicStroker {
	return &BasicStroker{m: m, colored: true, bc: bc, cm: cm}
}

// borderRuns lists the corners in border order, together with the
// direction in which their arc is walked.
var borderRuns = [4]struct {
	corner   int
	inverted bool
}{
	{TopLeft, true},
	{BottomLeft, false},
	{BottomRight, true},
	{TopRight, false},
}

// BorderCount returns the number of border lines.  This is zero if the
// border is empty.
func (s *BasicStroker) BorderCount() int {
	m := s.m
	if !m.HasBorder() {
		return 0
	}

	n := 1 // closing line
	for i, run := range borderRuns {
		c := &m.Corners[run.corner]
		n += c.StepCount + 1
		if s.colored {
			if c.StepCount == 0 {
				cIn, cOut := s.cornerColors(run.corner)
				if cIn != cOut {
					n++
				}
			}
			n += len(s.edgeStops(i))
		}
	}
	return n
}

// FillCount returns the number of fill lines.  This is zero if the border
// covers the whole box, and two if the inner contour is a rectangle.
func (s *BasicStroker) FillCount() int {
	return fillCount(s.m, s.m.PreferredOrientation)
}

// SetBorderLines writes the border geometry to lines, which must have room
// for at least BorderCount lines.  The number of lines written is returned.
func (s *BasicStroker) SetBorderLines(lines []Line) int {
	n := s.BorderCount()
	checkCapacity(plainLines(lines), n)
	return s.writeBorder(plainLines(lines[:n]))
}

// SetColoredBorderLines is like SetBorderLines, but also sets the vertex
// colors from the border colors of the stroker.
func (s *BasicStroker) SetColoredBorderLines(lines []ColoredLine) int {
	n := s.BorderCount()
	checkCapacity(coloredLines(lines), n)
	return s.writeBorder(coloredLines(lines[:n]))
}

// SetFillLines writes the fill geometry to lines, which must have room for
// at least FillCount lines.  The number of lines written is returned.
func (s *BasicStroker) SetFillLines(lines []Line) int {
	n := s.FillCount()
	checkCapacity(plainLines(lines), n)
	return s.writeFill(plainLines(lines[:n]))
}

// SetColoredFillLines is like SetFillLines, but also sets the vertex colors
// from the color map of the stroker.
func (s *BasicStroker) SetColoredFillLines(lines []ColoredLine) int {
	n := s.FillCount()
	checkCapacity(coloredLines(lines), n)
	return s.writeFill(coloredLines(lines[:n]))
}

// SetBoxLines writes the colored border and fill lines in one go.  For a box
// with equal corners, a regular border in a single color and a rounded inner
// contour, all four corners are walked with one shared arc iterator.
func (s *BasicStroker) SetBoxLines(border, fill []ColoredLine) (int, int) {
	nb, nf := s.BorderCount(), s.FillCount()
	checkCapacity(coloredLines(border), nb)
	checkCapacity(coloredLines(fill), nf)

	if s.isLockStep() {
		s.writeLockStep(border[:nb], fill[:nf])
		return nb, nf
	}
	return s.writeBorder(coloredLines(border[:nb])), s.writeFill(coloredLines(fill[:nf]))
}

func (s *BasicStroker) isLockStep() bool {
	m := s.m
	return m.HasBorder() && !m.IsInnerEmpty() &&
		m.IsOutsideSymmetric && m.IsBorderRegular && m.allInsideRounded() &&
		m.PreferredOrientation == Vertical &&
		(!s.colored || s.bc.IsMonochrome())
}

func (s *BasicStroker) writeBorder(w lineWriter) int {
	if w.size() == 0 {
		return 0
	}
	m := s.m
	a := lineAppender{w: w}

	var first ColoredLine
	for i, run := range borderRuns {
		c := &m.Corners[run.corner]
		cIn, cOut := s.cornerColors(run.corner)

		it := NewArcIterator(c.StepCount, run.inverted)
		for ; !it.IsDone(); it.Increment() {
			p1 := c.Inner(it.Cos(), it.Sin())
			p2 := c.Outer(it.Cos(), it.Sin())
			if a.n == 0 {
				first = ColoredLine{P1: p1, P2: p2, C1: cIn, C2: cIn}
			}

			if c.StepCount == 0 {
				a.add(p1, p2, cIn, cIn)
				if s.colored && cIn != cOut {
					a.add(p1, p2, cOut, cOut)
				}
				continue
			}
			col := cIn
			if s.colored {
				col = mixColor(cIn, cOut, float64(it.Step())/float64(c.StepCount))
			}
			a.add(p1, p2, col, col)
		}

		stops := s.edgeStops(i)
		if len(stops) == 0 {
			continue
		}
		from := arcEnd(c, run.inverted)
		next := borderRuns[(i+1)%4]
		to := arcStart(&m.Corners[next.corner], next.inverted)
		for _, st := range stops {
			a.add(lerp(from.P1, to.P1, st.Position), lerp(from.P2, to.P2, st.Position), st.Color, st.Color)
		}
	}
	a.add(first.P1, first.P2, first.C1, first.C2)

	return a.pad()
}

func (s *BasicStroker) writeFill(w lineWriter) int {
	if w.size() == 0 {
		return 0
	}
	a := lineAppender{w: w}
	fillChords(s.m, s.m.PreferredOrientation, func(p1, p2 vec.Vec2) {
		c1, c2 := s.fillColors(p1, p2)
		a.add(p1, p2, c1, c2)
	})
	return a.pad()
}

func (s *BasicStroker) writeLockStep(border, fill []ColoredLine) {
	m := s.m
	tl, tr := &m.Corners[TopLeft], &m.Corners[TopRight]
	bl, br := &m.Corners[BottomLeft], &m.Corners[BottomRight]

	n := tl.StepCount
	var bc color.RGBA
	if s.colored {
		bc = s.bc.Left.StartColor()
	}

	it := NewArcIterator(n, false)
	for ; !it.IsDone(); it.Increment() {
		k := it.Step()
		cos, sin := it.Cos(), it.Sin()

		pTL, pTR := tl.Inner(cos, sin), tr.Inner(cos, sin)
		pBL, pBR := bl.Inner(cos, sin), br.Inner(cos, sin)

		border[n-k] = ColoredLine{P1: pTL, P2: tl.Outer(cos, sin), C1: bc, C2: bc}
		border[(n+1)+k] = ColoredLine{P1: pBL, P2: bl.Outer(cos, sin), C1: bc, C2: bc}
		border[2*(n+1)+n-k] = ColoredLine{P1: pBR, P2: br.Outer(cos, sin), C1: bc, C2: bc}
		border[3*(n+1)+k] = ColoredLine{P1: pTR, P2: tr.Outer(cos, sin), C1: bc, C2: bc}

		c1, c2 := s.fillColors(pTL, pTR)
		fill[n-k] = ColoredLine{P1: pTL, P2: pTR, C1: c1, C2: c2}
		c1, c2 = s.fillColors(pBL, pBR)
		fill[(n+1)+k] = ColoredLine{P1: pBL, P2: pBR, C1: c1, C2: c2}
	}
	border[4*(n+1)] = border[0]
}

func (s *BasicStroker) fillColors(p1, p2 vec.Vec2) (color.RGBA, color.RGBA) {
	if !s.colored {
		return color.RGBA{}, color.RGBA{}
	}
	return s.cm.ColorAt(p1), s.cm.ColorAt(p2)
}

// cornerColors returns the border color at the start and at the end of the
// arc of corner i, in border order.
func (s *BasicStroker) cornerColors(i int) (color.RGBA, color.RGBA) {
	if !s.colored {
		return color.RGBA{}, color.RGBA{}
	}
	bc := &s.bc
	switch i {
	case TopLeft:
		return bc.Top.ColorAt(0), bc.Left.ColorAt(0)
	case BottomLeft:
		return bc.Left.ColorAt(1), bc.Bottom.ColorAt(0)
	case BottomRight:
		return bc.Bottom.ColorAt(1), bc.Right.ColorAt(1)
	default:
		return bc.Right.ColorAt(0), bc.Top.ColorAt(1)
	}
}

// edgeStops returns the gradient stops which cut the straight edge following
// border run i, in border order.  The positions are converted to the
// fraction of the way from the preceding corner to the next one.
func (s *BasicStroker) edgeStops(i int) []Stop {
	if !s.colored {
		return nil
	}

	var g Gradient
	reverse := false
	switch borderRuns[i].corner {
	case TopLeft:
		g = s.bc.Left
	case BottomLeft:
		g = s.bc.Bottom
	case BottomRight:
		g, reverse = s.bc.Right, true
	default:
		g, reverse = s.bc.Top, true
	}
	if g.IsMonochrome() {
		return nil
	}

	var res []Stop
	for j := range g.Stops {
		st := g.Stops[j]
		if reverse {
			st = g.Stops[len(g.Stops)-1-j]
			st.Position = 1 - st.Position
		}
		if st.Position > 0 && st.Position < 1 {
			res = append(res, st)
		}
	}
	return res
}

// arcStart returns the first border line of corner c.
func arcStart(c *Corner, inverted bool) Line {
	if inverted {
		return Line{P1: c.Inner(0, 1), P2: c.Outer(0, 1)}
	}
	return Line{P1: c.Inner(1, 0), P2: c.Outer(1, 0)}
}

// arcEnd returns the last border line of corner c.
func arcEnd(c *Corner, inverted bool) Line {
	return arcStart(c, !inverted)
}

// fillCount returns the number of lines produced by fillChords.
func fillCount(m *Metrics, o Orientation) int {
	if m.IsInnerEmpty() {
		return 0
	}
	if !m.IsInsideRounded {
		return 2
	}
	c := &m.Corners
	if o == Horizontal {
		return max(c[TopLeft].InnerStepCount, c[BottomLeft].InnerStepCount) + 1 +
			max(c[TopRight].InnerStepCount, c[BottomRight].InnerStepCount) + 1
	}
	return max(c[TopLeft].InnerStepCount, c[TopRight].InnerStepCount) + 1 +
		max(c[BottomLeft].InnerStepCount, c[BottomRight].InnerStepCount) + 1
}

// fillChords sweeps over the inner contour of the box, calling yield for
// every chord.  A vertical sweep runs from top to bottom, with chords from
// left to right.  A horizontal sweep runs from left to right, with chords
// from top to bottom.
func fillChords(m *Metrics, o Orientation, yield func(p1, p2 vec.Vec2)) {
	if m.IsInnerEmpty() {
		return
	}
	c := &m.Corners

	if !m.IsInsideRounded {
		left, top, right, bottom := rectEdges(m.InnerRect)
		if o == Horizontal {
			yield(vec.Vec2{X: left, Y: top}, vec.Vec2{X: left, Y: bottom})
			yield(vec.Vec2{X: right, Y: top}, vec.Vec2{X: right, Y: bottom})
		} else {
			yield(vec.Vec2{X: left, Y: top}, vec.Vec2{X: right, Y: top})
			yield(vec.Vec2{X: left, Y: bottom}, vec.Vec2{X: right, Y: bottom})
		}
		return
	}

	// Each half of the sweep pairs two facing corners, both sampled at the
	// angles of the corner with more steps.
	var halves [2]struct {
		c1, c2   *Corner
		inverted bool
	}
	if o == Horizontal {
		halves[0].c1, halves[0].c2 = &c[TopLeft], &c[BottomLeft]
		halves[1].c1, halves[1].c2, halves[1].inverted = &c[TopRight], &c[BottomRight], true
	} else {
		halves[0].c1, halves[0].c2, halves[0].inverted = &c[TopLeft], &c[TopRight], true
		halves[1].c1, halves[1].c2 = &c[BottomLeft], &c[BottomRight]
	}

	for _, h := range halves {
		n := max(h.c1.InnerStepCount, h.c2.InnerStepCount)
		it := NewArcIterator(n, h.inverted)
		for ; !it.IsDone(); it.Increment() {
			yield(h.c1.Inner(it.Cos(), it.Sin()), h.c2.Inner(it.Cos(), it.Sin()))
		}
	}
}

func lerp(a, b vec.Vec2, t float64) vec.Vec2 {
	return a.Add(b.Sub(a).Mul(t))
}
