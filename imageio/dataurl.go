// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package imageio

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/gogpu/rasteredit/pixel"
)

const dataURLPrefix = "data:image/png;base64,"

// EncodeDataURL returns buf as a base64 PNG data URL.
func EncodeDataURL(buf *pixel.Buffer) (string, error) {
	data, err := EncodePNG(buf)
	if err != nil {
		return "", err
	}
	return dataURLPrefix + base64.StdEncoding.EncodeToString(data), nil
}

// DecodeDataURL decodes a base64 image data URL. A bare base64 payload
// without the "data:" header is accepted as well.
func DecodeDataURL(s string) (*pixel.Buffer, error) {
	payload := s
	if strings.HasPrefix(s, "data:") {
		header, body, ok := strings.Cut(s, ",")
		if !ok || !strings.HasSuffix(header, ";base64") {
			return nil, fmt.Errorf("imageio: data url: %w", ErrUnsupportedFormat)
		}
		payload = body
	}
	if payload == "" {
		return nil, ErrEmptyData
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("imageio: data url: %w", err)
	}
	return DecodeBytes(data)
}
