// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package stamp

import (
	"image"
	"math"
	"testing"

	"github.com/gogpu/rasteredit/pixel"
)

func TestFalloffZones(t *testing.T) {
	const r = 10.0
	tests := []struct {
		d    float64
		want float64
	}{
		{0, 1},
		{3, 1},      // edge of the inner zone
		{5, 0.75},   // halfway through 100% -> 50%
		{7, 0.5},    // edge of the middle zone
		{8.5, 0.25}, // halfway through 50% -> 0%
		{10, 0},
		{12, 0},
	}
	for _, tt := range tests {
		if got := Falloff(tt.d, r); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Falloff(%v, %v) = %v, want %v", tt.d, r, got, tt.want)
		}
	}
	if got := Falloff(0, 0); got != 0 {
		t.Errorf("Falloff(0, 0) = %v, want 0", got)
	}
}

func TestFalloffMonotonic(t *testing.T) {
	prev := 1.0
	for d := 0.0; d <= 20; d += 0.01 {
		f := Falloff(d, 20)
		if f > prev+1e-12 {
			t.Fatalf("Falloff increases at d=%v: %v > %v", d, f, prev)
		}
		prev = f
	}
}

func TestNewBrush(t *testing.T) {
	c := pixel.RGBA(10, 20, 30, 200)
	s := NewBrush(20, c)

	if s.Size != 20 || len(s.Pix) != 20*20*4 {
		t.Fatalf("NewBrush(20) size = %d, len %d", s.Size, len(s.Pix))
	}

	// Centre pixels are within 30% of the radius: full alpha.
	if got := s.At(10, 10); got != c {
		t.Errorf("centre = %v, want %v", got, c)
	}
	// Corners are outside the radius.
	if got := s.At(0, 0); got.A != 0 {
		t.Errorf("corner alpha = %d, want 0", got.A)
	}

	// Every pixel follows the falloff curve.
	for y := 0; y < s.Size; y++ {
		for x := 0; x < s.Size; x++ {
			d := math.Hypot(float64(x)+0.5-10, float64(y)+0.5-10)
			want := uint8(math.Round(200 * Falloff(d, 10)))
			if got := s.At(x, y).A; got != want {
				t.Fatalf("At(%d, %d).A = %d, want %d", x, y, got, want)
			}
		}
	}
}

func TestNewBrush_OpaqueBounds(t *testing.T) {
	s := NewBrush(5, pixel.Red)
	if want := image.Rect(0, 0, 5, 5); s.Opaque != want {
		t.Errorf("Opaque = %v, want %v", s.Opaque, want)
	}
	for y := 0; y < s.Size; y++ {
		for x := 0; x < s.Size; x++ {
			if s.At(x, y).A != 0 && !image.Pt(x, y).In(s.Opaque) {
				t.Errorf("pixel (%d, %d) is visible but outside Opaque", x, y)
			}
		}
	}

	if got := NewBrush(8, pixel.Transparent).Opaque; !got.Empty() {
		t.Errorf("transparent brush Opaque = %v, want empty", got)
	}
}

func TestNewPencil(t *testing.T) {
	c := pixel.RGBA(1, 2, 3, 128)
	s := NewPencil(4.4, c)
	if s.Size != 4 {
		t.Fatalf("Size = %d, want 4", s.Size)
	}
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if got := s.At(x, y); got != c {
				t.Errorf("At(%d, %d) = %v, want %v", x, y, got, c)
			}
		}
	}
	if s.Opaque != image.Rect(0, 0, 4, 4) {
		t.Errorf("Opaque = %v, want full square", s.Opaque)
	}
}

func TestSide(t *testing.T) {
	tests := []struct {
		size float64
		want int
	}{
		{0, 1}, {-3, 1}, {math.NaN(), 1}, {0.7, 1}, {1, 1}, {2.4, 2}, {2.5, 3}, {5, 5}, {32, 32},
	}
	for _, tt := range tests {
		if got := Side(tt.size); got != tt.want {
			t.Errorf("Side(%v) = %d, want %d", tt.size, got, tt.want)
		}
	}
}
