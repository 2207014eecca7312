// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package imageio loads and saves pixel buffers and implements the image
// utilities of the texture editor: texture size validation, transparent
// canvases, thumbnails and data URLs.
//
// Decoding accepts PNG, JPEG and GIF (standard library) plus BMP, TIFF and
// WebP (golang.org/x/image). Encoding writes PNG, BMP or TIFF chosen by
// file extension.
package imageio

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif" // register GIF decoder
	_ "image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp" // register WebP decoder

	"github.com/gogpu/rasteredit/pixel"
)

// I/O errors.
var (
	// ErrUnsupportedFormat is returned when the image format is not supported.
	ErrUnsupportedFormat = errors.New("imageio: unsupported format")

	// ErrEmptyData is returned when image data is empty.
	ErrEmptyData = errors.New("imageio: empty data")
)

// Format is an encodable image format.
type Format string

// Encodable formats.
const (
	FormatPNG  Format = "png"
	FormatBMP  Format = "bmp"
	FormatTIFF Format = "tiff"
)

// FormatFromPath returns the encodable format for a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return FormatPNG, nil
	case ".bmp":
		return FormatBMP, nil
	case ".tif", ".tiff":
		return FormatTIFF, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// Decode decodes an image from r, auto-detecting the format.
// Returns the buffer and the format name reported by the decoder.
func Decode(r io.Reader) (*pixel.Buffer, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		if errors.Is(err, image.ErrFormat) {
			return nil, "", fmt.Errorf("imageio: decode: %w", ErrUnsupportedFormat)
		}
		return nil, "", fmt.Errorf("imageio: decode: %w", err)
	}
	buf, err := pixel.FromImage(img)
	if err != nil {
		return nil, "", fmt.Errorf("imageio: decode: %w", err)
	}
	return buf, format, nil
}

// DecodeBytes decodes an image held in memory.
func DecodeBytes(data []byte) (*pixel.Buffer, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}
	buf, _, err := Decode(bytes.NewReader(data))
	return buf, err
}

// Load reads the image file at path.
func Load(path string) (*pixel.Buffer, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("imageio: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	buf, _, err := Decode(f)
	return buf, err
}

// Encode writes buf to w in the given format.
func Encode(w io.Writer, buf *pixel.Buffer, format Format) error {
	img := buf.NRGBAView()
	var err error
	switch format {
	case FormatPNG:
		err = png.Encode(w, img)
	case FormatBMP:
		err = bmp.Encode(w, img)
	case FormatTIFF:
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return fmt.Errorf("imageio: encode %s: %w", format, err)
	}
	return nil
}

// EncodePNG returns the PNG encoding of buf.
func EncodePNG(buf *pixel.Buffer) ([]byte, error) {
	var b bytes.Buffer
	if err := Encode(&b, buf, FormatPNG); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

// Save writes buf to path in the format named by its extension.
// The file is written to a temporary sibling and renamed into place, so a
// failed save never truncates an existing image. Missing parent
// directories are created.
func Save(path string, buf *pixel.Buffer) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("imageio: create directory: %w", err)
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("imageio: create file: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if err := Encode(tmp, buf, format); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("imageio: close file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("imageio: rename: %w", err)
	}
	return nil
}
