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

import "math"

// ArcIterator walks a quarter circle in equal angular steps, starting at
// (cos, sin) = (1, 0) and ending at (0, 1).  An inverted iterator walks the
// same points in the opposite order.
//
// The sample points are obtained by repeated rotation, so that no
// trigonometric functions are evaluated after Reset.  The final sample is
// set to the exact end point.
type ArcIterator struct {
	cos, sin         float64
	cosStep, sinStep float64
	stepIndex        int
	stepCount        int
	inverted         bool
}

// NewArcIterator returns an iterator which is positioned at its first sample.
func NewArcIterator(stepCount int, inverted bool) ArcIterator {
	var it ArcIterator
	it.Reset(stepCount, inverted)
	return it
}

// Reset positions the iterator at the first of stepCount+1 samples.
// A step count of zero gives a single sample.
func (it *ArcIterator) Reset(stepCount int, inverted bool) {
	it.inverted = inverted
	it.stepIndex = 0
	it.stepCount = max(stepCount, 0)

	if inverted {
		it.cos, it.sin = 0, 1
	} else {
		it.cos, it.sin = 1, 0
	}

	if it.stepCount > 0 {
		angleStep := math.Pi / 2 / float64(it.stepCount)
		it.cosStep = math.Cos(angleStep)
		it.sinStep = math.Sin(angleStep)
	} else {
		it.cosStep, it.sinStep = 1, 0
	}
}

// Cos returns the cosine of the current sample.
func (it *ArcIterator) Cos() float64 { return it.cos }

// Sin returns the sine of the current sample.
func (it *ArcIterator) Sin() float64 { return it.sin }

// Step returns the index of the current sample.
func (it *ArcIterator) Step() int { return it.stepIndex }

// StepCount returns the number of steps between the first and last sample.
func (it *ArcIterator) StepCount() int { return it.stepCount }

// IsInverted reports whether the iterator runs from (0, 1) to (1, 0).
func (it *ArcIterator) IsInverted() bool { return it.inverted }

// IsDone reports whether the iterator has moved past the last sample.
func (it *ArcIterator) IsDone() bool { return it.stepIndex > it.stepCount }

// Increment moves to the next sample.
func (it *ArcIterator) Increment() {
	it.stepIndex++
	if it.stepIndex > it.stepCount {
		return
	}
	if it.stepIndex == it.stepCount {
		if it.inverted {
			it.cos, it.sin = 1, 0
		} else {
			it.cos, it.sin = 0, 1
		}
		return
	}

	c, s := it.cos, it.sin
	if it.inverted {
		it.cos = c*it.cosStep + s*it.sinStep
		it.sin = s*it.cosStep - c*it.sinStep
	} else {
		it.cos = c*it.cosStep - s*it.sinStep
		it.sin = s*it.cosStep + c*it.sinStep
	}
}

// Decrement moves to the previous sample.
func (it *ArcIterator) Decrement() {
	it.Revert()
	it.Increment()
	it.Revert()
}

// Revert changes the direction of iteration, keeping the current sample.
func (it *ArcIterator) Revert() {
	it.inverted = !it.inverted
	it.stepIndex = it.stepCount - it.stepIndex
}

// Reverted returns a copy of the iterator running in the opposite direction.
func (it ArcIterator) Reverted() ArcIterator {
	it.Revert()
	return it
}

// Limits for the number of steps used to approximate a quarter circle.
const (
	minArcSteps = 3
	maxArcSteps = 18

	// arcSegmentLength is the approximate arc length of one step, in
	// device pixels.
	arcSegmentLength = 3.0
)

// SegmentHint returns the number of steps used for a corner with the given
// radius: about one step for every three pixels of arc length.
func SegmentHint(radius float64) int {
	arcLength := radius * math.Pi / 2
	n := int(math.Ceil(arcLength / arcSegmentLength))
	return max(minArcSteps, min(n, maxArcSteps))
}
