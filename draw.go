// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package rasteredit

import (
	"image"

	"github.com/gogpu/rasteredit/pixel"
	"github.com/gogpu/rasteredit/selection"
	"github.com/gogpu/rasteredit/stamp"
)

// drawStamp composites s centred on the op position, skipping unselected
// pixels. Returns the stamp's opaque box in buffer coordinates, clamped to
// the buffer.
func (e *Engine) drawStamp(op DrawOp, s *stamp.Stamp, mask *selection.Mask) image.Rectangle {
	box := footprint(op.X, op.Y, s.Size)
	r := s.Opaque.Add(box.Min).Intersect(e.buf.Bounds())
	if r.Empty() {
		return image.Rectangle{}
	}

	w := e.buf.Width()
	for y := r.Min.Y; y < r.Max.Y; y++ {
		sy := y - box.Min.Y
		for x := r.Min.X; x < r.Max.X; x++ {
			if !mask.IsSelected(x, y) {
				continue
			}
			si := (sy*s.Size + x - box.Min.X) * 4
			if s.Pix[si+3] == 0 {
				continue
			}
			c := pixel.Color{R: s.Pix[si], G: s.Pix[si+1], B: s.Pix[si+2], A: s.Pix[si+3]}
			e.buf.BlendAt((y*w+x)*4, c, 1)
		}
	}
	return r
}

// erase zeroes the alpha of every selected pixel in the op's square.
func (e *Engine) erase(op DrawOp, mask *selection.Mask) image.Rectangle {
	r := footprint(op.X, op.Y, stamp.Side(op.Size)).Intersect(e.buf.Bounds())
	if r.Empty() {
		return image.Rectangle{}
	}

	data := e.buf.Data()
	w := e.buf.Width()
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if mask.IsSelected(x, y) {
				data[(y*w+x)*4+3] = 0
			}
		}
	}
	return r
}
