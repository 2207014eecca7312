// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package stamp precomputes the bitmaps that brush and pencil tools blend
// onto a pixel buffer at every stroke sample.
//
// A Brush stamp has a three-zone radial falloff; a Pencil stamp is a flat
// square. Stamps are immutable once produced and are shared through a
// Cache keyed by the exact (kind, size, color) tuple.
package stamp

import (
	"image"
	"math"

	"github.com/gogpu/rasteredit/pixel"
)

// Kind identifies how a stamp was generated.
type Kind uint8

const (
	// KindBrush is a soft round stamp with radial falloff.
	KindBrush Kind = iota
	// KindPencil is a hard, flat square stamp.
	KindPencil
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindBrush:
		return "brush"
	case KindPencil:
		return "pencil"
	default:
		return "unknown"
	}
}

// Brush falloff zone boundaries as fractions of the radius.
const (
	innerZone = 0.3 // full alpha inside
	midZone   = 0.7 // 100% -> 50% between innerZone and midZone, 50% -> 0% beyond
)

// Stamp is a square RGBA bitmap (straight alpha) of Size x Size pixels.
// Stamps are read-only; never modify Pix.
type Stamp struct {
	Kind Kind
	Size int
	Pix  []uint8

	// Opaque is the smallest rectangle, in stamp coordinates, holding every
	// pixel with non-zero alpha. Empty when the stamp is fully transparent.
	Opaque image.Rectangle
}

// Side returns the stamp side length in pixels for a tool size.
// Sizes round to the nearest pixel with a minimum of one.
func Side(size float64) int {
	if !(size >= 1) {
		return 1
	}
	return int(math.Round(size))
}

// At returns the stamp color at (x, y) in stamp coordinates.
func (s *Stamp) At(x, y int) pixel.Color {
	if x < 0 || y < 0 || x >= s.Size || y >= s.Size {
		return pixel.Transparent
	}
	i := (y*s.Size + x) * 4
	return pixel.Color{R: s.Pix[i], G: s.Pix[i+1], B: s.Pix[i+2], A: s.Pix[i+3]}
}

// NewBrush computes a soft round stamp of the given size and color.
//
// With r = side/2 and d the distance from a pixel centre to the stamp
// centre, the alpha is:
//
//	d <= 0.3r         a
//	0.3r < d <= 0.7r  a * (1 - 0.5*(d-0.3r)/(0.4r))   100% -> 50%
//	0.7r < d < r      a * 0.5 * (1 - (d-0.7r)/(0.3r))  50% -> 0%
//	d >= r            0
func NewBrush(size float64, c pixel.Color) *Stamp {
	n := Side(size)
	s := &Stamp{Kind: KindBrush, Size: n, Pix: make([]uint8, n*n*4)}

	r := float64(n) / 2
	minX, minY, maxX, maxY := n, n, -1, -1
	for y := 0; y < n; y++ {
		dy := float64(y) + 0.5 - r
		for x := 0; x < n; x++ {
			dx := float64(x) + 0.5 - r
			f := Falloff(math.Sqrt(dx*dx+dy*dy), r)
			a := uint8(math.Round(float64(c.A) * f))
			if a == 0 {
				continue
			}
			i := (y*n + x) * 4
			s.Pix[i+0] = c.R
			s.Pix[i+1] = c.G
			s.Pix[i+2] = c.B
			s.Pix[i+3] = a

			minX, minY = min(minX, x), min(minY, y)
			maxX, maxY = max(maxX, x), max(maxY, y)
		}
	}
	if maxX >= 0 {
		s.Opaque = image.Rect(minX, minY, maxX+1, maxY+1)
	}
	return s
}

// Falloff returns the brush alpha multiplier at distance d from the centre
// of a stamp with radius r.
func Falloff(d, r float64) float64 {
	if r <= 0 || d >= r {
		return 0
	}
	switch {
	case d <= innerZone*r:
		return 1
	case d <= midZone*r:
		return 1 - 0.5*(d-innerZone*r)/((midZone-innerZone)*r)
	default:
		return 0.5 * (1 - (d-midZone*r)/((1-midZone)*r))
	}
}

// NewPencil computes a flat square stamp where every pixel is c.
func NewPencil(size float64, c pixel.Color) *Stamp {
	n := Side(size)
	s := &Stamp{Kind: KindPencil, Size: n, Pix: make([]uint8, n*n*4)}
	for i := 0; i < len(s.Pix); i += 4 {
		s.Pix[i+0] = c.R
		s.Pix[i+1] = c.G
		s.Pix[i+2] = c.B
		s.Pix[i+3] = c.A
	}
	if c.A != 0 {
		s.Opaque = image.Rect(0, 0, n, n)
	}
	return s
}
