// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package pixel

import "testing"

func TestBlendPixel_ZeroCoverageIsNoop(t *testing.T) {
	dsts := []Color{Transparent, Red, RGBA(10, 20, 30, 40), White}
	srcs := []Color{Black, Blue, RGBA(255, 255, 255, 1), RGBA(7, 8, 9, 255)}

	b, _ := New(1, 1)
	for _, d := range dsts {
		for _, s := range srcs {
			b.SetPixel(0, 0, d)
			b.BlendPixel(0, 0, s, 0)
			if got := b.GetPixel(0, 0); got != d {
				t.Errorf("BlendPixel(%v over %v, 0) = %v, want unchanged", s, d, got)
			}
		}
	}
}

func TestBlendPixel_OpaqueFullCoverageOverwrites(t *testing.T) {
	dsts := []Color{Transparent, Red, RGBA(10, 20, 30, 40), White}
	srcs := []Color{Black, Blue, RGBA(1, 2, 3, 255), RGBA(254, 127, 128, 255)}

	b, _ := New(1, 1)
	for _, d := range dsts {
		for _, s := range srcs {
			b.SetPixel(0, 0, d)
			b.BlendPixel(0, 0, s, 1)
			if got := b.GetPixel(0, 0); got != s {
				t.Errorf("BlendPixel(%v over %v, 1) = %v, want %v", s, d, got, s)
			}
		}
	}
}

func TestBlendPixel_SourceOver(t *testing.T) {
	tests := []struct {
		name     string
		dst, src Color
		coverage float64
		want     Color
	}{
		// 50% red over transparent: color stays red, alpha 0.5
		{"half over transparent", Transparent, Red, 0.5, RGBA(255, 0, 0, 128)},
		// 50% red over opaque blue: purple, opaque
		{"half over opaque", Blue, Red, 0.5, RGBA(128, 0, 128, 255)},
		// semi-transparent source at full coverage
		{"alpha source", Blue, RGBA(255, 0, 0, 128), 1, RGBA(128, 0, 127, 255)},
		// coverage above 1 is clamped
		{"clamped coverage", Blue, Red, 3, Red},
		// transparent source changes nothing
		{"transparent source", Blue, Transparent, 1, Blue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, _ := New(1, 1)
			b.SetPixel(0, 0, tt.dst)
			b.BlendPixel(0, 0, tt.src, tt.coverage)
			got := b.GetPixel(0, 0)
			if !near(got, tt.want, 1) {
				t.Errorf("BlendPixel() = %v, want %v (±1)", got, tt.want)
			}
		})
	}
}

func TestBlendPixel_TransparentDestinationKeepsSourceColor(t *testing.T) {
	// Straight alpha: blending onto a fully transparent pixel must not darken
	// the color towards the (meaningless) destination RGB.
	b, _ := New(1, 1)
	b.SetPixel(0, 0, RGBA(0, 0, 0, 0))
	b.BlendPixel(0, 0, RGBA(200, 100, 50, 255), 0.25)
	got := b.GetPixel(0, 0)
	if got.R != 200 || got.G != 100 || got.B != 50 {
		t.Errorf("color = %v, want RGB (200, 100, 50)", got)
	}
	if got.A != 64 {
		t.Errorf("alpha = %d, want 64", got.A)
	}
}

func TestQuantizeRounds(t *testing.T) {
	tests := []struct {
		in   float64
		want uint8
	}{
		{0, 0},
		{1, 255},
		{0.5, 128},
		{-0.2, 0},
		{1.7, 255},
		{0.501 / 255, 1},
		{0.499 / 255, 0},
	}
	for _, tt := range tests {
		if got := quantize(tt.in); got != tt.want {
			t.Errorf("quantize(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func near(a, b Color, tol int) bool {
	d := func(x, y uint8) int {
		if x > y {
			return int(x - y)
		}
		return int(y - x)
	}
	return d(a.R, b.R) <= tol && d(a.G, b.G) <= tol && d(a.B, b.B) <= tol && d(a.A, b.A) <= tol
}

func BenchmarkBlendPixel(b *testing.B) {
	buf, _ := New(256, 256)
	buf.Fill(Blue)
	c := RGBA(255, 0, 0, 200)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf.BlendPixel(i&255, (i>>8)&255, c, 0.5)
	}
}
