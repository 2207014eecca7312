// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"image"

	"golang.org/x/image/draw"
)

// ImageSurface is a CPU surface that mirrors blitted pixels into an
// *image.RGBA.
//
// Blits convert from straight to premultiplied alpha through
// golang.org/x/image/draw with the Src operator, so every copied pixel
// replaces the destination.
//
// Example:
//
//	s := surface.NewImageSurface(64, 64)
//	defer s.Close()
//
//	eng, _ := rasteredit.New(buf, rasteredit.WithSurface(s))
//	...
//	img := s.Snapshot()
type ImageSurface struct {
	width  int
	height int
	img    *image.RGBA

	// closed tracks if Close has been called
	closed bool
}

// NewImageSurface creates a transparent surface with the given dimensions.
// Non-positive dimensions are raised to 1.
func NewImageSurface(width, height int) *ImageSurface {
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 1
	}
	return &ImageSurface{
		width:  width,
		height: height,
		img:    image.NewRGBA(image.Rect(0, 0, width, height)),
	}
}

// NewImageSurfaceFromImage creates a surface backed by an existing image.
// Blits write into the provided image directly.
func NewImageSurfaceFromImage(img *image.RGBA) *ImageSurface {
	b := img.Bounds()
	return &ImageSurface{
		width:  b.Dx(),
		height: b.Dy(),
		img:    img,
	}
}

// Width returns the surface width.
func (s *ImageSurface) Width() int {
	return s.width
}

// Height returns the surface height.
func (s *ImageSurface) Height() int {
	return s.height
}

// Blit implements Surface.
func (s *ImageSurface) Blit(src []byte, stride int, r image.Rectangle) error {
	if s.closed {
		return ErrClosed
	}
	r = clip(r, src, stride, s.width, s.height)
	if r.Empty() {
		return nil
	}

	view := &image.NRGBA{Pix: src, Stride: stride, Rect: sourceBounds(src, stride)}
	dst := r.Add(s.img.Rect.Min)
	draw.Draw(s.img, dst, view, r.Min, draw.Src)
	return nil
}

// Image returns the backing image. It is modified by later blits.
func (s *ImageSurface) Image() *image.RGBA {
	return s.img
}

// Snapshot returns a copy of the surface contents.
func (s *ImageSurface) Snapshot() *image.RGBA {
	b := s.img.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(out, out.Rect, s.img, b.Min, draw.Src)
	return out
}

// Close releases the surface. Later blits return ErrClosed.
// Close is idempotent.
func (s *ImageSurface) Close() error {
	s.closed = true
	return nil
}
