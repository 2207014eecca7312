// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package rasteredit

import (
	"image"
	"testing"
)

func TestDirtyRegion(t *testing.T) {
	var d DirtyRegion
	if !d.Empty() {
		t.Fatal("zero DirtyRegion not empty")
	}
	if got := d.Rect(); !got.Empty() {
		t.Errorf("Rect() = %v, want empty", got)
	}

	d.Add(3, 4, 3, 4)
	if got, want := d.Rect(), image.Rect(3, 4, 4, 5); got != want {
		t.Errorf("Rect() = %v, want %v", got, want)
	}

	d.Add(1, 6, 2, 9)
	if d.MinX != 1 || d.MinY != 4 || d.MaxX != 3 || d.MaxY != 9 {
		t.Errorf("DirtyRegion = %+v, want inclusive box 1,4..3,9", d)
	}

	// Inverted boxes and empty rectangles are ignored.
	d.Add(5, 5, 4, 4)
	d.Union(image.Rectangle{})
	if got, want := d.Rect(), image.Rect(1, 4, 4, 10); got != want {
		t.Errorf("Rect() = %v, want %v", got, want)
	}

	d.Union(image.Rect(-2, 0, 0, 1))
	if got, want := d.Rect(), image.Rect(-2, 0, 4, 10); got != want {
		t.Errorf("Rect() after Union = %v, want %v", got, want)
	}

	d.Clamp(image.Rect(0, 0, 3, 3))
	if got, want := d.Rect(), image.Rect(0, 0, 3, 3); got != want {
		t.Errorf("Rect() after Clamp = %v, want %v", got, want)
	}

	if e := (&Engine{dirty: d}); e.Dirty().Empty() || e.Dirty().Rect() != d.Rect() {
		t.Errorf("Dirty() = %v, want %v", e.Dirty().Rect(), d.Rect())
	}

	d.Clamp(image.Rect(10, 10, 20, 20))
	if !d.Empty() {
		t.Errorf("Clamp to a disjoint rect left %v", d.Rect())
	}

	d.Add(0, 0, 1, 1)
	d.Reset()
	if !d.Empty() {
		t.Error("Reset() left the region non-empty")
	}
}
