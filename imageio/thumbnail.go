// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package imageio

import (
	"image"

	"golang.org/x/image/draw"

	"github.com/gogpu/rasteredit/pixel"
)

// Thumbnail scales buf to fit in a maxSize square, keeping its aspect
// ratio. Images that already fit are returned as a copy. Strong reductions
// (scale below 0.5) use Catmull-Rom; milder ones use bilinear filtering.
func Thumbnail(buf *pixel.Buffer, maxSize int) (*pixel.Buffer, error) {
	w, h := buf.Width(), buf.Height()
	if maxSize <= 0 || (w <= maxSize && h <= maxSize) {
		return buf.Clone(), nil
	}

	scale := float64(maxSize) / float64(max(w, h))
	tw := max(1, int(float64(w)*scale))
	th := max(1, int(float64(h)*scale))

	var scaler draw.Scaler = draw.ApproxBiLinear
	if scale < 0.5 {
		scaler = draw.CatmullRom
	}

	dst := image.NewNRGBA(image.Rect(0, 0, tw, th))
	scaler.Scale(dst, dst.Rect, buf.NRGBAView(), buf.Bounds(), draw.Src, nil)
	return pixel.FromBytes(tw, th, dst.Pix)
}

// ThumbnailFile loads the image at path and returns its thumbnail as a
// base64 PNG data URL.
func ThumbnailFile(path string, maxSize int) (string, error) {
	buf, err := Load(path)
	if err != nil {
		return "", err
	}
	thumb, err := Thumbnail(buf, maxSize)
	if err != nil {
		return "", err
	}
	return EncodeDataURL(thumb)
}
