// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package selection

import (
	"image"

	"github.com/gogpu/rasteredit/pixel"
)

// Delete zeroes the alpha of every selected pixel, leaving color channels
// untouched. A nil mask deletes the whole buffer. Returns the rectangle of
// cells visited, which is empty when nothing was selected or the mask does
// not match the buffer.
func Delete(buf *pixel.Buffer, m *Mask) image.Rectangle {
	return apply(buf, m, func(p []uint8) {
		p[3] = 0
	})
}

// Fill overwrites all four channels of every selected pixel with c.
// A nil mask fills the whole buffer.
func Fill(buf *pixel.Buffer, m *Mask, c pixel.Color) image.Rectangle {
	return apply(buf, m, func(p []uint8) {
		p[0], p[1], p[2], p[3] = c.R, c.G, c.B, c.A
	})
}

// apply runs fn on every selected pixel, iterating only over the mask's
// bounding box.
func apply(buf *pixel.Buffer, m *Mask, fn func(p []uint8)) image.Rectangle {
	if buf.Empty() || !m.Matches(buf.Width(), buf.Height()) {
		return image.Rectangle{}
	}

	r := buf.Bounds()
	if m != nil {
		r = m.Bounds()
	}
	if r.Empty() {
		return r
	}

	data := buf.Data()
	w := buf.Width()
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if m != nil && m.bits[y*w+x] == 0 {
				continue
			}
			i := (y*w + x) * 4
			fn(data[i : i+4 : i+4])
		}
	}
	return r
}
