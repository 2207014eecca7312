// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package rasteredit

import "image"

// DirtyRegion is the inclusive bounding box of pixels modified since the
// last blit. The zero value is empty.
type DirtyRegion struct {
	MinX, MinY int
	MaxX, MaxY int // inclusive

	set bool
}

// Empty reports whether no pixel has been marked.
func (d DirtyRegion) Empty() bool {
	return !d.set
}

// Add marks the inclusive box (x0, y0)-(x1, y1).
// Boxes with x1 < x0 or y1 < y0 are ignored.
func (d *DirtyRegion) Add(x0, y0, x1, y1 int) {
	if x1 < x0 || y1 < y0 {
		return
	}
	if !d.set {
		d.MinX, d.MinY, d.MaxX, d.MaxY = x0, y0, x1, y1
		d.set = true
		return
	}
	d.MinX = min(d.MinX, x0)
	d.MinY = min(d.MinY, y0)
	d.MaxX = max(d.MaxX, x1)
	d.MaxY = max(d.MaxY, y1)
}

// Union marks every pixel of r. Empty rectangles are ignored.
func (d *DirtyRegion) Union(r image.Rectangle) {
	if r.Empty() {
		return
	}
	d.Add(r.Min.X, r.Min.Y, r.Max.X-1, r.Max.Y-1)
}

// Rect returns the region as a half-open image.Rectangle.
func (d DirtyRegion) Rect() image.Rectangle {
	if !d.set {
		return image.Rectangle{}
	}
	return image.Rect(d.MinX, d.MinY, d.MaxX+1, d.MaxY+1)
}

// Clamp restricts the region to r. The region becomes empty when it does
// not overlap r.
func (d *DirtyRegion) Clamp(r image.Rectangle) {
	if !d.set {
		return
	}
	c := d.Rect().Intersect(r)
	d.Reset()
	d.Union(c)
}

// Reset empties the region.
func (d *DirtyRegion) Reset() {
	*d = DirtyRegion{}
}
