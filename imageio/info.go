// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package imageio

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
)

// Info describes an image file without decoding its pixels.
type Info struct {
	Width        int
	Height       int
	Format       string // decoder name: "png", "jpeg", "bmp", ...
	Size         int64  // file size in bytes
	ValidTexture bool
}

// Stat reads the header of the image at path.
func Stat(path string) (Info, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return Info{}, fmt.Errorf("imageio: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	fi, err := f.Stat()
	if err != nil {
		return Info{}, fmt.Errorf("imageio: stat: %w", err)
	}
	cfg, format, err := image.DecodeConfig(f)
	if err != nil {
		return Info{}, fmt.Errorf("imageio: decode config: %w", err)
	}
	return Info{
		Width:        cfg.Width,
		Height:       cfg.Height,
		Format:       format,
		Size:         fi.Size(),
		ValidTexture: ValidateTextureSize(cfg.Width, cfg.Height),
	}, nil
}
