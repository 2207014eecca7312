// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"errors"
	"image"
)

// Errors.
var (
	// ErrUnsupportedFormat is returned when a texture format has no 8-bit
	// RGBA or BGRA layout.
	ErrUnsupportedFormat = errors.New("surface: unsupported texture format")

	// ErrClosed is returned by Blit after Close.
	ErrClosed = errors.New("surface: closed")
)

// Surface is a blit target for straight-alpha RGBA pixels.
//
// Surfaces are NOT thread-safe. Each surface should be used from a single
// goroutine, or external synchronization must be used.
type Surface interface {
	// Width returns the surface width in pixels.
	Width() int

	// Height returns the surface height in pixels.
	Height() int

	// Blit copies the sub-rectangle r of src into the surface at the same
	// position. src holds RGBA rows of stride bytes. r is clamped to both
	// the source and the surface; an empty result is a no-op.
	Blit(src []byte, stride int, r image.Rectangle) error
}

// Closer is implemented by surfaces that hold resources.
type Closer interface {
	Close() error
}

// sourceBounds returns the rectangle covered by a buffer of stride-byte rows.
func sourceBounds(src []byte, stride int) image.Rectangle {
	if stride < 4 {
		return image.Rectangle{}
	}
	return image.Rect(0, 0, stride/4, len(src)/stride)
}

// clip clamps r to the source buffer and to a w x h surface.
func clip(r image.Rectangle, src []byte, stride, w, h int) image.Rectangle {
	return r.Canon().
		Intersect(sourceBounds(src, stride)).
		Intersect(image.Rect(0, 0, w, h))
}
