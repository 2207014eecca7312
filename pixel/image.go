// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package pixel

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// ToNRGBA copies the buffer into a new *image.NRGBA.
func (b *Buffer) ToNRGBA() *image.NRGBA {
	img := image.NewNRGBA(b.Bounds())
	copy(img.Pix, b.data)
	return img
}

// NRGBAView returns an *image.NRGBA sharing the buffer memory.
// Writes through the view modify the buffer.
func (b *Buffer) NRGBAView() *image.NRGBA {
	return &image.NRGBA{Pix: b.data, Stride: b.Stride(), Rect: b.Bounds()}
}

// FromImage creates a buffer from any image, converting to straight alpha.
// The result is anchored at the origin regardless of img.Bounds().Min.
func FromImage(img image.Image) (*Buffer, error) {
	bounds := img.Bounds()
	buf, err := New(bounds.Dx(), bounds.Dy())
	if err != nil {
		return nil, err
	}

	if n, ok := img.(*image.NRGBA); ok {
		for y := 0; y < buf.height; y++ {
			src := n.Pix[n.PixOffset(bounds.Min.X, bounds.Min.Y+y):]
			copy(buf.data[y*buf.Stride():(y+1)*buf.Stride()], src[:buf.Stride()])
		}
		return buf, nil
	}

	draw.Draw(buf.NRGBAView(), buf.Bounds(), img, bounds.Min, draw.Src)
	return buf, nil
}

// At implements the image.Image interface.
func (b *Buffer) At(x, y int) color.Color {
	return b.GetPixel(x, y).NRGBA()
}

// ColorModel implements the image.Image interface.
func (b *Buffer) ColorModel() color.Model {
	return color.NRGBAModel
}
