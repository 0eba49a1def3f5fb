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

	"seehuhn.de/go/geom/vec"
)

// Filler identifies the algorithm used by a [GradientStroker].
type Filler int

const (
	// FillerD walks the rounded inner contour in the order of the gradient
	// values.  It works for every gradient direction.
	FillerD Filler = iota

	// FillerHV sweeps over the inner contour along the gradient axis.  It
	// is used for horizontal and vertical gradients, when the corners on
	// both sides of the sweep match.
	FillerHV

	// FillerRect cuts a rectangular inner contour.
	FillerRect
)

func (f Filler) String() string {
	switch f {
	case FillerD:
		return "FillerD"
	case FillerHV:
		return "FillerHV"
	case FillerRect:
		return "FillerRect"
	default:
		return "Filler(?)"
	}
}

// maxContour is the maximal number of points on the inner contour.
const maxContour = 4 * (maxArcSteps + 1)

// GradientStroker generates the fill lines of a box for gradients which
// cannot be represented by vertex colors of the contour alone.  The lines
// cut the inner contour perpendicular to the gradient vector.  They are
// emitted in order of non-decreasing gradient value, and an extra line is
// inserted at the position of every gradient stop.
//
// Only linear gradients are supported.  Outside the stop range the gradient
// is padded.
type GradientStroker struct {
	m      *Metrics
	stops  []Stop
	proj   projection
	dir    vec.Vec2
	filler Filler
	orient Orientation // sweep orientation for FillerHV
}

// NewGradientStroker returns a stroker for filling the inside of the box
// described by m with the linear gradient g.
func NewGradientStroker(m *Metrics, g Gradient) *GradientStroker {
	start, end := g.Endpoints(m.OuterRect)
	if start == end {
		// Only monochrome gradients can get here.  Any direction will do.
		end = start.Add(vec.Vec2{Y: 1})
	}

	s := &GradientStroker{
		m:     m,
		stops: g.Stops,
		proj:  newProjection(start, end),
		dir:   end.Sub(start),
	}

	d := LinearDirection{X1: start.X, Y1: start.Y, X2: end.X, Y2: end.Y}
	switch {
	case !m.IsInsideRounded:
		s.filler = FillerRect
	case d.IsVertical() && hvSymmetric(m, Vertical):
		s.filler, s.orient = FillerHV, Vertical
	case d.IsHorizontal() && hvSymmetric(m, Horizontal):
		s.filler, s.orient = FillerHV, Horizontal
	default:
		s.filler = FillerD
	}
	Logger().Debug("gradient stroker", "filler", s.filler, "stops", len(s.stops))

	return s
}

// hvSymmetric reports whether a sweep in orientation o produces chords
// which are perpendicular to the sweep direction.
func hvSymmetric(m *Metrics, o Orientation) bool {
	c := &m.Corners
	if o == Vertical {
		return sameInnerRow(&c[TopLeft], &c[TopRight]) && sameInnerRow(&c[BottomLeft], &c[BottomRight])
	}
	return sameInnerColumn(&c[TopLeft], &c[BottomLeft]) && sameInnerColumn(&c[TopRight], &c[BottomRight])
}

func sameInnerRow(a, b *Corner) bool {
	return a.InnerCenterY == b.InnerCenterY && a.RadiusInnerY == b.RadiusInnerY &&
		a.InnerStepCount == b.InnerStepCount
}

func sameInnerColumn(a, b *Corner) bool {
	return a.InnerCenterX == b.InnerCenterX && a.RadiusInnerX == b.RadiusInnerX &&
		a.InnerStepCount == b.InnerStepCount
}

// Filler returns the algorithm used by the stroker.
func (s *GradientStroker) Filler() Filler {
	return s.filler
}

// LineCount returns the size of the buffer needed by SetLines.  This is an
// upper bound: when gradient stops coincide with contour points, fewer
// lines are generated.
func (s *GradientStroker) LineCount() int {
	if s.m.IsInnerEmpty() {
		return 0
	}
	switch s.filler {
	case FillerRect:
		return 4 + 1 + len(s.stops)
	case FillerHV:
		return fillCount(s.m, s.orient) + len(s.stops)
	default:
		return s.m.innerContourCount() + 1 + len(s.stops)
	}
}

// SetLines writes the fill lines to lines, which must have room for at
// least LineCount lines.  If fewer lines are generated, the remaining
// slots up to LineCount are filled with copies of the last line.  The
// return value is the number of lines actually generated.
func (s *GradientStroker) SetLines(lines []ColoredLine) int {
	n := s.LineCount()
	checkCapacity(coloredLines(lines), n)
	if n == 0 {
		return 0
	}

	a := lineAppender{w: coloredLines(lines[:n])}
	switch s.filler {
	case FillerHV:
		s.setHVLines(&a)
	default:
		var c contour
		if s.filler == FillerRect {
			c.addRect(s.m)
		} else {
			c.addInner(s.m)
		}
		c.setValues(s.proj)
		s.setContourLines(&a, &c)
	}

	produced := a.pad()
	if produced < n {
		Logger().Debug("gradient stroker line count mismatch",
			"filler", s.filler, "expected", n, "effective", produced)
	}
	return produced
}

// setContourLines walks both halves of a convex contour, from the point of
// minimal gradient value to the point of maximal value.
func (s *GradientStroker) setContourLines(a *lineAppender, c *contour) {
	left, right, vmin, vmax := c.split()

	it := NewGradientIterator(s.stops)
	for !it.IsDone() && it.Position() <= vmin {
		it.Advance()
	}
	emit := func(v float64) {
		col := it.ColorAt(v)
		a.add(left.at(v), right.at(v), col, col)
	}
	emit(vmin)

	for !left.isDone() || !right.isDone() {
		vc := min(left.nextValue(), right.nextValue())

		for !it.IsDone() && it.Position() <= vc {
			pos := it.Position()
			if pos > vmin && pos < vmax {
				col := it.Color()
				a.add(left.at(pos), right.at(pos), col, col)
			}
			it.Advance()
		}

		left.skip(vc + valueEpsilon)
		right.skip(vc + valueEpsilon)
		emit(vc)
	}
}

// setHVLines uses the chords of a basic fill sweep along the gradient
// axis.  Since the gradient value is constant along each chord, only the
// gradient stop lines need to be added.
func (s *GradientStroker) setHVLines(a *lineAppender) {
	var chords [2 * (maxArcSteps + 1)]Line
	n := 0
	fillChords(s.m, s.orient, func(p1, p2 vec.Vec2) {
		chords[n] = s.orientLine(p1, p2)
		n++
	})
	if n == 0 {
		return
	}

	value := func(i int) float64 {
		return s.proj.value(chords[i].P1)
	}
	// The sweep runs from top to bottom or from left to right.  Gradients
	// pointing the other way need the chords in reverse order.
	idx := func(i int) int { return i }
	if value(n-1) < value(0) {
		idx = func(i int) int { return n - 1 - i }
	}

	vmin, vmax := value(idx(0)), value(idx(n-1))

	it := NewGradientIterator(s.stops)
	for !it.IsDone() && it.Position() <= vmin {
		it.Advance()
	}
	col := it.ColorAt(vmin)
	first := chords[idx(0)]
	a.add(first.P1, first.P2, col, col)

	for i := 1; i < n; i++ {
		prev, cur := chords[idx(i-1)], chords[idx(i)]
		v0, v1 := value(idx(i-1)), value(idx(i))

		for !it.IsDone() && it.Position() <= v1 {
			pos := it.Position()
			if pos > vmin && pos < vmax && v1 > v0 {
				t := (pos - v0) / (v1 - v0)
				col := it.Color()
				a.add(lerp(prev.P1, cur.P1, t), lerp(prev.P2, cur.P2, t), col, col)
			}
			it.Advance()
		}

		col := it.ColorAt(v1)
		a.add(cur.P1, cur.P2, col, col)
	}
}

// orientLine orders the end points of a chord the same way as the contour
// walk does: P1 lies to the left of the gradient vector, when looking in
// the direction of the vector on screen.
func (s *GradientStroker) orientLine(p1, p2 vec.Vec2) Line {
	d := p1.Sub(p2)
	if s.dir.X*d.Y-s.dir.Y*d.X < 0 {
		p1, p2 = p2, p1
	}
	return Line{P1: p1, P2: p2}
}

// contour is a closed convex polygon, given counter-clockwise on screen,
// together with the gradient value at every vertex.
type contour struct {
	pts  [maxContour]vec.Vec2
	vals [maxContour]float64
	n    int
}

func (c *contour) add(p vec.Vec2) {
	c.pts[c.n] = p
	c.n++
}

// addInner adds the inner contour of the box, starting at the top of the
// top-left corner.
func (c *contour) addInner(m *Metrics) {
	for _, run := range borderRuns {
		corner := &m.Corners[run.corner]
		it := NewArcIterator(corner.InnerStepCount, run.inverted)
		for ; !it.IsDone(); it.Increment() {
			c.add(corner.Inner(it.Cos(), it.Sin()))
		}
	}
}

// addRect adds the corners of the inner rectangle.
func (c *contour) addRect(m *Metrics) {
	left, top, right, bottom := rectEdges(m.InnerRect)
	c.add(vec.Vec2{X: left, Y: top})
	c.add(vec.Vec2{X: left, Y: bottom})
	c.add(vec.Vec2{X: right, Y: bottom})
	c.add(vec.Vec2{X: right, Y: top})
}

func (c *contour) setValues(p projection) {
	for i := range c.n {
		c.vals[i] = p.value(c.pts[i])
	}
}

// split divides the contour into two chains running from the minimal to
// the maximal gradient value.  The first chain runs forward along the
// contour, the second one backward.  Vertices at the start which share the
// minimal value are skipped, so that the first line of the walk spans the
// whole contour.
func (c *contour) split() (fwd, bwd chain, vmin, vmax float64) {
	n := c.n
	i0 := 0
	vmin, vmax = c.vals[0], c.vals[0]
	for i := 1; i < n; i++ {
		v := c.vals[i]
		if v < vmin {
			vmin, i0 = v, i
		}
		vmax = max(vmax, v)
	}

	next := func(i, step int) int {
		return (i + step + n) % n
	}
	aStart, bStart := i0, i0
	for k := 1; k < n && c.vals[next(aStart, 1)] <= vmin+valueEpsilon; k++ {
		aStart = next(aStart, 1)
	}
	for k := 1; k < n && c.vals[next(bStart, -1)] <= vmin+valueEpsilon; k++ {
		bStart = next(bStart, -1)
	}

	fwd = c.chain(aStart, 1, vmax)
	bwd = c.chain(bStart, -1, vmax)
	return fwd, bwd, vmin, vmax
}

// chain returns the vertices starting at index start, stepping in
// direction step until the first vertex with the maximal value.
func (c *contour) chain(start, step int, vmax float64) chain {
	ch := chain{c: c, start: start, step: step}
	i := start
	for k := 1; k < c.n && c.vals[i] < vmax-valueEpsilon; k++ {
		i = (i + step + c.n) % c.n
		ch.length++
	}
	return ch
}

// chain is one half of a contour, from the minimal to the maximal value.
// Along the chain the gradient values are non-decreasing.  The chain keeps a
// cursor, which is moved forward by queries for increasing values.
type chain struct {
	c      *contour
	start  int
	step   int
	length int // number of steps from the first to the last vertex
	pos    int // current vertex, as steps from the first vertex
}

func (ch *chain) index(k int) int {
	return (ch.start + k*ch.step + ch.c.n) % ch.c.n
}

func (ch *chain) isDone() bool {
	return ch.pos >= ch.length
}

// nextValue returns the value of the vertex after the current one.
func (ch *chain) nextValue() float64 {
	if ch.isDone() {
		return math.Inf(1)
	}
	return ch.c.vals[ch.index(ch.pos+1)]
}

// skip moves the cursor past all vertices with value at most v.
func (ch *chain) skip(v float64) {
	for !ch.isDone() && ch.nextValue() <= v {
		ch.pos++
	}
}

// at returns the point of the chain with value v.  Values outside the
// range of the chain are clamped to the end points.
func (ch *chain) at(v float64) vec.Vec2 {
	for !ch.isDone() && ch.nextValue() < v {
		ch.pos++
	}

	i := ch.index(ch.pos)
	p0, v0 := ch.c.pts[i], ch.c.vals[i]
	if ch.isDone() || v <= v0 {
		return p0
	}
	j := ch.index(ch.pos + 1)
	p1, v1 := ch.c.pts[j], ch.c.vals[j]
	if v1 <= v0 {
		return p1
	}
	return lerp(p0, p1, (v-v0)/(v1-v0))
}

// valueEpsilon is the tolerance used when comparing gradient values.
const valueEpsilon = 1e-9
