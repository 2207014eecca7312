// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"errors"
	"fmt"
	"image"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
)

// TextureSurface uploads blitted rectangles into a GPU texture.
//
// Each Blit packs the rectangle into a reusable scratch buffer in the
// texture's channel order and hands it to UpdateRegion, so only dirty
// pixels cross to the GPU.
type TextureSurface struct {
	updater gpucontext.TextureRegionUpdater
	width   int
	height  int
	format  gputypes.TextureFormat
	pack    PackOptions
	scratch []byte
	closed  bool
}

// TextureOption configures a TextureSurface.
type TextureOption func(*TextureSurface)

// WithFormat sets the texture format. The default is RGBA8Unorm.
func WithFormat(f gputypes.TextureFormat) TextureOption {
	return func(s *TextureSurface) {
		s.format = f
	}
}

// WithPremultiply uploads premultiplied alpha, as most compositors expect.
func WithPremultiply(on bool) TextureOption {
	return func(s *TextureSurface) {
		s.pack.Premultiply = on
	}
}

// NewTextureSurface creates a surface for a width x height texture.
// Returns ErrUnsupportedFormat when the format is not 8-bit RGBA or BGRA.
func NewTextureSurface(u gpucontext.TextureRegionUpdater, width, height int, opts ...TextureOption) (*TextureSurface, error) {
	if u == nil {
		return nil, errors.New("surface: texture updater cannot be nil")
	}
	s := &TextureSurface{
		updater: u,
		width:   width,
		height:  height,
		format:  gputypes.TextureFormatRGBA8Unorm,
	}
	for _, opt := range opts {
		opt(s)
	}

	order, err := OrderFor(s.format)
	if err != nil {
		return nil, err
	}
	s.pack.Order = order
	return s, nil
}

// Width returns the texture width.
func (s *TextureSurface) Width() int {
	return s.width
}

// Height returns the texture height.
func (s *TextureSurface) Height() int {
	return s.height
}

// Format returns the texture format.
func (s *TextureSurface) Format() gputypes.TextureFormat {
	return s.format
}

// Blit implements Surface.
func (s *TextureSurface) Blit(src []byte, stride int, r image.Rectangle) error {
	if s.closed {
		return ErrClosed
	}
	r = clip(r, src, stride, s.width, s.height)
	if r.Empty() {
		return nil
	}

	s.scratch = Pack(s.scratch, src, stride, r, s.pack)
	if err := s.updater.UpdateRegion(r.Min.X, r.Min.Y, r.Dx(), r.Dy(), s.scratch); err != nil {
		return fmt.Errorf("surface: update region %v: %w", r, err)
	}
	return nil
}

// Close releases the scratch buffer. Later blits return ErrClosed.
// The texture itself belongs to the caller.
func (s *TextureSurface) Close() error {
	s.closed = true
	s.scratch = nil
	return nil
}
