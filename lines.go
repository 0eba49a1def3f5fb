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
	"fmt"
	"image/color"

	"seehuhn.de/go/geom/vec"
)

// Line is a pair of vertices.  A slice of lines describes a triangle strip
// with vertices P1, P2 of the first line, then P1, P2 of the second line, and
// so on.
type Line struct {
	P1, P2 vec.Vec2
}

// ColoredLine is a Line with a color for each vertex.
type ColoredLine struct {
	P1, P2 vec.Vec2
	C1, C2 color.RGBA
}

// Line returns the geometry of l.
func (l ColoredLine) Line() Line {
	return Line{P1: l.P1, P2: l.P2}
}

// StripPoints appends the vertices of a triangle strip to dst.
func StripPoints(dst []vec.Vec2, lines []Line) []vec.Vec2 {
	for _, l := range lines {
		dst = append(dst, l.P1, l.P2)
	}
	return dst
}

// ColoredStripPoints appends the vertices and vertex colors of a triangle
// strip to pts and cols.
func ColoredStripPoints(pts []vec.Vec2, cols []color.RGBA, lines []ColoredLine) ([]vec.Vec2, []color.RGBA) {
	for _, l := range lines {
		pts = append(pts, l.P1, l.P2)
		cols = append(cols, l.C1, l.C2)
	}
	return pts, cols
}

// lineWriter abstracts over []Line and []ColoredLine, so that the strokers
// can use one traversal for both plain and colored output.
type lineWriter interface {
	setLine(i int, p1, p2 vec.Vec2, c1, c2 color.RGBA)
	copyLine(dst, src int)
	size() int
}

type plainLines []Line

func (b plainLines) setLine(i int, p1, p2 vec.Vec2, _, _ color.RGBA) {
	b[i] = Line{P1: p1, P2: p2}
}

func (b plainLines) copyLine(dst, src int) { b[dst] = b[src] }

func (b plainLines) size() int { return len(b) }

type coloredLines []ColoredLine

func (b coloredLines) setLine(i int, p1, p2 vec.Vec2, c1, c2 color.RGBA) {
	b[i] = ColoredLine{P1: p1, P2: p2, C1: c1, C2: c2}
}

func (b coloredLines) copyLine(dst, src int) { b[dst] = b[src] }

func (b coloredLines) size() int { return len(b) }

// lineAppender fills a line buffer front to back.
type lineAppender struct {
	w lineWriter
	n int
}

func (a *lineAppender) add(p1, p2 vec.Vec2, c1, c2 color.RGBA) {
	if a.n >= a.w.size() {
		panic(fmt.Sprintf("boxgeom: line buffer overflow (capacity %d)", a.w.size()))
	}
	a.w.setLine(a.n, p1, p2, c1, c2)
	a.n++
}

// pad fills the unused tail of the buffer with copies of the last line
// written and returns the number of lines which were actually produced.
func (a *lineAppender) pad() int {
	n := a.n
	if n == 0 {
		return 0
	}
	for i := n; i < a.w.size(); i++ {
		a.w.copyLine(i, n-1)
	}
	return n
}

// checkCapacity panics if a buffer cannot hold the required number of lines.
func checkCapacity(w lineWriter, need int) {
	if w.size() < need {
		panic(fmt.Sprintf("boxgeom: line buffer too small (have %d, need %d)", w.size(), need))
	}
}
