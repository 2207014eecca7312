// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package pixel implements the raster surface edited by rasteredit: a flat,
// row-major RGBA buffer with straight alpha and 8 bits per channel.
//
// Buffer is not safe for concurrent use. The drawing engine owns its buffer
// exclusively; ownership may move between engines but is never shared.
package pixel

import (
	"errors"
	"image"
)

// Buffer errors.
var (
	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = errors.New("pixel: invalid dimensions")

	// ErrDataSize is returned when a byte slice does not hold width*height*4 bytes.
	ErrDataSize = errors.New("pixel: data size does not match dimensions")
)

// Buffer is a rectangular RGBA pixel buffer.
// len(data) == width*height*4 at all times.
type Buffer struct {
	width  int
	height int
	data   []uint8 // RGBA, straight alpha, 4 bytes per pixel
}

// New creates a transparent buffer with the given dimensions.
func New(width, height int) (*Buffer, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	return &Buffer{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}, nil
}

// FromBytes wraps data as a buffer without copying.
// The caller gives up ownership of data.
func FromBytes(width, height int, data []uint8) (*Buffer, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if len(data) != width*height*4 {
		return nil, ErrDataSize
	}
	return &Buffer{width: width, height: height, data: data}, nil
}

// Width returns the width of the buffer.
func (b *Buffer) Width() int {
	return b.width
}

// Height returns the height of the buffer.
func (b *Buffer) Height() int {
	return b.height
}

// Stride returns the number of bytes per row.
func (b *Buffer) Stride() int {
	return b.width * 4
}

// Data returns the raw pixel data (RGBA format).
func (b *Buffer) Data() []uint8 {
	return b.data
}

// Bounds returns the buffer rectangle, anchored at the origin.
func (b *Buffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.width, b.height)
}

// Empty reports whether the buffer is nil or has no pixels.
func (b *Buffer) Empty() bool {
	return b == nil || b.width <= 0 || b.height <= 0 || len(b.data) == 0
}

// Offset returns the byte offset of pixel (x, y), or -1 when out of range.
func (b *Buffer) Offset(x, y int) int {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return -1
	}
	return (y*b.width + x) * 4
}

// GetPixel returns the color of a single pixel.
// Out-of-range coordinates return Transparent.
func (b *Buffer) GetPixel(x, y int) Color {
	i := b.Offset(x, y)
	if i < 0 {
		return Transparent
	}
	return Color{R: b.data[i], G: b.data[i+1], B: b.data[i+2], A: b.data[i+3]}
}

// SetPixel sets the color of a single pixel.
// Out-of-range coordinates are ignored.
func (b *Buffer) SetPixel(x, y int, c Color) {
	i := b.Offset(x, y)
	if i < 0 {
		return
	}
	b.data[i+0] = c.R
	b.data[i+1] = c.G
	b.data[i+2] = c.B
	b.data[i+3] = c.A
}

// BlendPixel composites c over the pixel at (x, y) using source-over with
// the source alpha scaled by coverage (clamped to [0, 1]).
// Out-of-range coordinates are ignored and zero coverage is a no-op.
func (b *Buffer) BlendPixel(x, y int, c Color, coverage float64) {
	i := b.Offset(x, y)
	if i < 0 {
		return
	}
	blendSourceOver(b.data[i:i+4:i+4], c, clampUnit(coverage))
}

// BlendAt composites c over the pixel at byte offset i.
// The caller guarantees i is a valid pixel offset.
func (b *Buffer) BlendAt(i int, c Color, coverage float64) {
	blendSourceOver(b.data[i:i+4:i+4], c, clampUnit(coverage))
}

// Fill fills the entire buffer with a color.
func (b *Buffer) Fill(c Color) {
	for i := 0; i < len(b.data); i += 4 {
		b.data[i+0] = c.R
		b.data[i+1] = c.G
		b.data[i+2] = c.B
		b.data[i+3] = c.A
	}
}

// Clone creates a deep copy of the buffer.
func (b *Buffer) Clone() *Buffer {
	data := make([]uint8, len(b.data))
	copy(data, b.data)
	return &Buffer{width: b.width, height: b.height, data: data}
}

// CopyFrom overwrites the buffer contents with src.
// Returns ErrDataSize if src does not hold exactly width*height*4 bytes.
func (b *Buffer) CopyFrom(src []uint8) error {
	if len(src) != len(b.data) {
		return ErrDataSize
	}
	copy(b.data, src)
	return nil
}

// Resize returns a new transparent buffer with the given dimensions.
// Buffers never change size in place; callers must drop any state
// (masks, history) tied to the old dimensions.
func (b *Buffer) Resize(width, height int) (*Buffer, error) {
	return New(width, height)
}
