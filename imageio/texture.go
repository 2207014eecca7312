// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package imageio

import (
	"errors"
	"fmt"

	"github.com/gogpu/rasteredit/pixel"
)

// MaxTextureSize is the largest side accepted by NewTransparent.
const MaxTextureSize = 8192

// ErrInvalidTextureSize is returned when dimensions are not usable for a
// texture.
var ErrInvalidTextureSize = errors.New("imageio: invalid texture size")

// IsPowerOfTwo reports whether n is a positive power of two.
func IsPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// ValidateTextureSize reports whether width x height is a valid texture
// size: both sides powers of two, or both sides multiples of 16.
func ValidateTextureSize(width, height int) bool {
	mul16 := func(n int) bool { return n > 0 && n%16 == 0 }
	return (IsPowerOfTwo(width) && IsPowerOfTwo(height)) ||
		(mul16(width) && mul16(height))
}

// NewTransparent creates a fully transparent canvas. Both sides must be
// powers of two no larger than MaxTextureSize.
func NewTransparent(width, height int) (*pixel.Buffer, error) {
	if !IsPowerOfTwo(width) || !IsPowerOfTwo(height) {
		return nil, fmt.Errorf("%w: %dx%d: sides must be powers of two", ErrInvalidTextureSize, width, height)
	}
	if width > MaxTextureSize || height > MaxTextureSize {
		return nil, fmt.Errorf("%w: %dx%d: maximum is %d", ErrInvalidTextureSize, width, height, MaxTextureSize)
	}
	return pixel.New(width, height)
}

// CreateTransparent writes a transparent PNG of the given size to path.
func CreateTransparent(path string, width, height int) error {
	buf, err := NewTransparent(width, height)
	if err != nil {
		return err
	}
	return Save(path, buf)
}
