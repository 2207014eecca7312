// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package rasteredit

import "math"

// minSpacing is the smallest distance between interpolated samples.
const minSpacing = 0.5

// spacingFactor scales the tool size into the sample spacing.
const spacingFactor = 0.15

// Interpolator fills the gap between consecutive pointer samples so fast
// strokes stay continuous.
//
// The zero value is ready to use.
type Interpolator struct {
	last    Point
	started bool
}

// Next returns the points to stamp when the pointer moves to p.
//
// The first call after creation or Reset returns [p]. Later calls return
// steps points evenly spaced from the previous sample (exclusive) to p
// (inclusive), where
//
//	spacing = max(0.5, size*0.15)
//	steps   = max(1, ceil(distance/spacing))
func (it *Interpolator) Next(p Point, size float64) []Point {
	return it.AppendNext(nil, p, size)
}

// AppendNext is like Next but appends the points to dst.
func (it *Interpolator) AppendNext(dst []Point, p Point, size float64) []Point {
	if !it.started {
		it.started = true
		it.last = p
		return append(dst, p)
	}

	spacing := size * spacingFactor
	if !(spacing >= minSpacing) {
		spacing = minSpacing
	}

	steps := 1
	if n := math.Ceil(it.last.Distance(p) / spacing); n > 1 && !math.IsInf(n, 1) {
		steps = int(n)
	}

	from := it.last
	for i := 1; i <= steps; i++ {
		dst = append(dst, from.Lerp(p, float64(i)/float64(steps)))
	}
	it.last = p
	return dst
}

// Reset forgets the previous sample; the next call starts a new stroke.
func (it *Interpolator) Reset() {
	it.last = Point{}
	it.started = false
}

// Last returns the previous sample and whether there is one.
func (it *Interpolator) Last() (Point, bool) {
	return it.last, it.started
}
