// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"fmt"
	"image"

	"github.com/gogpu/gputypes"
)

// ChannelOrder is the byte order of a packed pixel.
type ChannelOrder uint8

const (
	// OrderRGBA keeps the source byte order.
	OrderRGBA ChannelOrder = iota

	// OrderBGRA swaps the red and blue bytes.
	OrderBGRA
)

// PackOptions controls how Pack converts pixels.
type PackOptions struct {
	// Order is the destination channel order.
	Order ChannelOrder

	// Premultiply multiplies color channels by alpha.
	Premultiply bool
}

// OrderFor returns the channel order used by an 8-bit texture format.
// Returns ErrUnsupportedFormat for any other format.
func OrderFor(format gputypes.TextureFormat) (ChannelOrder, error) {
	switch format {
	case gputypes.TextureFormatRGBA8Unorm, gputypes.TextureFormatRGBA8UnormSrgb:
		return OrderRGBA, nil
	case gputypes.TextureFormatBGRA8Unorm, gputypes.TextureFormatBGRA8UnormSrgb:
		return OrderBGRA, nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
}

// Pack copies the sub-rectangle r of src (straight-alpha RGBA rows of
// stride bytes) into densely packed rows, converting as opts requires.
// dst is reused when it has enough capacity. r must lie inside src.
func Pack(dst, src []byte, stride int, r image.Rectangle, opts PackOptions) []byte {
	rowBytes := r.Dx() * 4
	n := rowBytes * r.Dy()
	if cap(dst) < n {
		dst = make([]byte, n)
	}
	dst = dst[:n]
	if n == 0 {
		return dst
	}

	for y := r.Min.Y; y < r.Max.Y; y++ {
		row := src[y*stride+r.Min.X*4 : y*stride+r.Max.X*4]
		out := dst[(y-r.Min.Y)*rowBytes:][:rowBytes]
		if opts.Order == OrderRGBA && !opts.Premultiply {
			copy(out, row)
			continue
		}
		for i := 0; i < rowBytes; i += 4 {
			cr, cg, cb, ca := row[i], row[i+1], row[i+2], row[i+3]
			if opts.Premultiply {
				cr, cg, cb = premul(cr, ca), premul(cg, ca), premul(cb, ca)
			}
			if opts.Order == OrderBGRA {
				cr, cb = cb, cr
			}
			out[i], out[i+1], out[i+2], out[i+3] = cr, cg, cb, ca
		}
	}
	return dst
}

// premul scales c by a/255 with rounding.
func premul(c, a uint8) uint8 {
	//nolint:gosec // G115: result is at most 255
	return uint8((uint32(c)*uint32(a) + 127) / 255)
}
