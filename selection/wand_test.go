// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package selection

import (
	"math/rand"
	"testing"

	"github.com/gogpu/rasteredit/pixel"
)

func newBuffer(t testing.TB, w, h int) *pixel.Buffer {
	t.Helper()
	b, err := pixel.New(w, h)
	if err != nil {
		t.Fatalf("pixel.New(%d, %d) error = %v", w, h, err)
	}
	return b
}

func TestMagicWand_Regions(t *testing.T) {
	b := newBuffer(t, 8, 4)
	for y := 0; y < 4; y++ {
		for x := 0; x < 8; x++ {
			if x < 3 {
				b.SetPixel(x, y, pixel.Red)
			} else {
				b.SetPixel(x, y, pixel.Blue)
			}
		}
	}

	m := MagicWand(b, 1, 1, DefaultTolerance)
	if got := m.Count(); got != 12 {
		t.Errorf("Count() = %d, want 12", got)
	}
	for y := 0; y < 4; y++ {
		for x := 0; x < 8; x++ {
			if want := x < 3; m.IsSelected(x, y) != want {
				t.Errorf("IsSelected(%d, %d) = %v, want %v", x, y, !want, want)
			}
		}
	}
}

func TestMagicWand_ToleranceIsPerChannel(t *testing.T) {
	b := newBuffer(t, 10, 1)
	for x := 0; x < 10; x++ {
		b.SetPixel(x, 0, pixel.RGBA(uint8(x*10), 0, 0, 255))
	}

	m := MagicWand(b, 0, 0, 30)
	if got := m.Count(); got != 4 {
		t.Errorf("Count() = %d, want 4 (R = 0, 10, 20, 30)", got)
	}

	// A pixel differing by 25 in each of three channels is still within a
	// per-channel tolerance of 30, although its Euclidean distance is ~43.
	c := newBuffer(t, 2, 1)
	c.SetPixel(0, 0, pixel.RGBA(100, 100, 100, 255))
	c.SetPixel(1, 0, pixel.RGBA(125, 125, 125, 255))
	if got := MagicWand(c, 0, 0, 30).Count(); got != 2 {
		t.Errorf("Count() = %d, want 2", got)
	}

	// Alpha participates like any other channel.
	c.SetPixel(1, 0, pixel.RGBA(100, 100, 100, 200))
	if got := MagicWand(c, 0, 0, 30).Count(); got != 1 {
		t.Errorf("Count() with alpha difference = %d, want 1", got)
	}
}

func TestMagicWand_ConnectivityNotDiagonal(t *testing.T) {
	b := newBuffer(t, 3, 3)
	b.Fill(pixel.White)
	b.SetPixel(0, 0, pixel.Black)
	b.SetPixel(1, 1, pixel.Black) // diagonal only
	b.SetPixel(2, 2, pixel.Black)

	m := MagicWand(b, 0, 0, 0)
	if got := m.Count(); got != 1 {
		t.Errorf("Count() = %d, want 1 (diagonal neighbors are not connected)", got)
	}
}

func TestMagicWand_SeedOutOfBounds(t *testing.T) {
	b := newBuffer(t, 4, 4)
	for _, p := range []struct{ x, y int }{{-1, 0}, {0, -1}, {4, 0}, {0, 4}} {
		m := MagicWand(b, p.x, p.y, DefaultTolerance)
		if !m.Empty() {
			t.Errorf("MagicWand(%d, %d) selected %d cells, want 0", p.x, p.y, m.Count())
		}
		if m.Width() != 4 || m.Height() != 4 {
			t.Errorf("MagicWand mask size = %dx%d, want 4x4", m.Width(), m.Height())
		}
	}
}

func TestMagicWand_RandomProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for iter := 0; iter < 20; iter++ {
		w, h := 1+rng.Intn(40), 1+rng.Intn(40)
		b := newBuffer(t, w, h)
		data := b.Data()
		for i := range data {
			// Few distinct values so regions actually grow.
			data[i] = uint8(rng.Intn(4) * 20)
		}
		sx, sy := rng.Intn(w), rng.Intn(h)
		tol := rng.Intn(60)

		m := MagicWand(b, sx, sy, tol)
		if !m.IsSelected(sx, sy) {
			t.Fatalf("iter %d: seed (%d, %d) not selected", iter, sx, sy)
		}
		seed := b.GetPixel(sx, sy)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				if !m.IsSelected(x, y) {
					continue
				}
				c := b.GetPixel(x, y)
				if absInt(int(c.R)-int(seed.R)) > tol || absInt(int(c.G)-int(seed.G)) > tol ||
					absInt(int(c.B)-int(seed.B)) > tol || absInt(int(c.A)-int(seed.A)) > tol {
					t.Fatalf("iter %d: (%d, %d) = %v selected, seed %v, tolerance %d", iter, x, y, c, seed, tol)
				}
			}
		}
	}
}

func TestMagicWand_UniformLargeImage(t *testing.T) {
	b := newBuffer(t, 300, 200)
	b.Fill(pixel.Green)
	m := MagicWand(b, 150, 100, 0)
	if got := m.Count(); got != 300*200 {
		t.Errorf("Count() = %d, want %d", got, 300*200)
	}
}

func BenchmarkMagicWand(b *testing.B) {
	buf := newBuffer(b, 512, 512)
	buf.Fill(pixel.Green)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = MagicWand(buf, 256, 256, DefaultTolerance)
	}
}
