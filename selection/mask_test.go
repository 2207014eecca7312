// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package selection

import (
	"image"
	"testing"
)

func TestNilMaskSelectsEverything(t *testing.T) {
	var m *Mask
	for _, p := range []struct{ x, y int }{{0, 0}, {5, 9}, {-1, -1}, {1000, 1000}} {
		if !m.IsSelected(p.x, p.y) {
			t.Errorf("nil mask IsSelected(%d, %d) = false, want true", p.x, p.y)
		}
	}
	if !m.Matches(3, 7) {
		t.Error("nil mask Matches() = false, want true")
	}
}

func TestMaskSetAndBounds(t *testing.T) {
	m := NewMask(10, 8)
	if !m.Empty() {
		t.Fatal("new mask should be empty")
	}
	if got := m.Bounds(); !got.Empty() {
		t.Errorf("empty mask Bounds() = %v, want empty", got)
	}

	m.Set(2, 3, true)
	m.Set(7, 5, true)
	m.Set(-1, 0, true) // ignored
	m.Set(10, 0, true) // ignored

	if got := m.Count(); got != 2 {
		t.Errorf("Count() = %d, want 2", got)
	}
	if want := image.Rect(2, 3, 8, 6); m.Bounds() != want {
		t.Errorf("Bounds() = %v, want %v", m.Bounds(), want)
	}
	if m.IsSelected(10, 0) || m.IsSelected(-1, 0) {
		t.Error("out-of-range cells must not be selected")
	}

	m.Set(2, 3, false)
	if m.IsSelected(2, 3) {
		t.Error("Set(false) did not clear the cell")
	}
}

func TestMaskInvertAndClone(t *testing.T) {
	m := Rect(4, 4, 0, 0, 1, 1)
	c := m.Clone()
	m.Invert()

	if got := m.Count(); got != 12 {
		t.Errorf("inverted Count() = %d, want 12", got)
	}
	if got := c.Count(); got != 4 {
		t.Errorf("clone Count() = %d, want 4 (clone must not share memory)", got)
	}

	m.SelectAll()
	if got := m.Count(); got != 16 {
		t.Errorf("SelectAll Count() = %d, want 16", got)
	}
}

func TestRect(t *testing.T) {
	tests := []struct {
		name           string
		x0, y0, x1, y1 int
		want           image.Rectangle
	}{
		{"inside", 2, 2, 5, 5, image.Rect(2, 2, 6, 6)},
		{"reversed corners", 5, 5, 2, 2, image.Rect(2, 2, 6, 6)},
		{"single cell", 3, 4, 3, 4, image.Rect(3, 4, 4, 5)},
		{"clamped", -5, -5, 50, 3, image.Rect(0, 0, 10, 4)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Rect(10, 10, tt.x0, tt.y0, tt.x1, tt.y1)
			if got := m.Bounds(); got != tt.want {
				t.Errorf("Rect().Bounds() = %v, want %v", got, tt.want)
			}
			if got, want := m.Count(), tt.want.Dx()*tt.want.Dy(); got != want {
				t.Errorf("Rect().Count() = %d, want %d", got, want)
			}
		})
	}
}

func TestNewMask_InvalidDimensions(t *testing.T) {
	m := NewMask(0, 5)
	if m.Width() != 0 || m.Height() != 0 || m.Count() != 0 {
		t.Errorf("NewMask(0, 5) = %dx%d, want 0x0", m.Width(), m.Height())
	}
	if m.IsSelected(0, 0) {
		t.Error("empty mask must not select cells")
	}
	r := Rect(0, 0, 0, 0, 1, 1)
	if r.Count() != 0 {
		t.Error("Rect on empty grid should select nothing")
	}
}
