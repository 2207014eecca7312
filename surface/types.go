// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
)

// Options configures surface creation through Open.
type Options struct {
	// Width is the surface width in pixels.
	Width int

	// Height is the surface height in pixels.
	Height int

	// Format is the texture format for GPU backends.
	// Default: RGBA8Unorm
	Format gputypes.TextureFormat

	// Premultiply uploads premultiplied alpha on GPU backends.
	Premultiply bool

	// Updater is the texture that GPU backends upload into.
	Updater gpucontext.TextureRegionUpdater
}

// DefaultOptions returns Options with default values.
func DefaultOptions(width, height int) Options {
	return Options{
		Width:  width,
		Height: height,
		Format: gputypes.TextureFormatRGBA8Unorm,
	}
}
