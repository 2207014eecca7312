// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package pixel

import "image/color"

// Color is an 8-bit per channel color with straight (non-premultiplied) alpha.
type Color struct {
	R, G, B, A uint8
}

// RGBA creates a color from 8-bit components.
func RGBA(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// RGB creates an opaque color from 8-bit components.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// NRGBA converts the color to the standard library's straight-alpha type.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

// WithAlpha returns c with its alpha channel replaced.
func (c Color) WithAlpha(a uint8) Color {
	c.A = a
	return c
}

// FromColor converts any color.Color to a straight-alpha Color.
func FromColor(c color.Color) Color {
	n, ok := c.(color.NRGBA)
	if !ok {
		n = color.NRGBAModel.Convert(c).(color.NRGBA)
	}
	return Color{R: n.R, G: n.G, B: n.B, A: n.A}
}

// ParseHex creates a color from a hex string.
// Supports formats: "RGB", "RGBA", "RRGGBB", "RRGGBBAA", with optional '#' prefix.
// The second return value is false if the string is not a valid hex color.
func ParseHex(hex string) (Color, bool) {
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}

	var r, g, b, a uint32
	a = 255
	ok := true

	switch len(hex) {
	case 3: // RGB
		ok = parseHex(hex[0:1], &r) && parseHex(hex[1:2], &g) && parseHex(hex[2:3], &b)
		r, g, b = r*17, g*17, b*17
	case 4: // RGBA
		ok = parseHex(hex[0:1], &r) && parseHex(hex[1:2], &g) &&
			parseHex(hex[2:3], &b) && parseHex(hex[3:4], &a)
		r, g, b, a = r*17, g*17, b*17, a*17
	case 6: // RRGGBB
		ok = parseHex(hex[0:2], &r) && parseHex(hex[2:4], &g) && parseHex(hex[4:6], &b)
	case 8: // RRGGBBAA
		ok = parseHex(hex[0:2], &r) && parseHex(hex[2:4], &g) &&
			parseHex(hex[4:6], &b) && parseHex(hex[6:8], &a)
	default:
		return Color{}, false
	}
	if !ok {
		return Color{}, false
	}

	// #nosec G115 -- each component is at most 0xFF
	return Color{R: uint8(r), G: uint8(g), B: uint8(b), A: uint8(a)}, true
}

// parseHex is a helper for hex parsing
func parseHex(s string, val *uint32) bool {
	*val = 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		*val *= 16
		switch {
		case '0' <= c && c <= '9':
			*val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			*val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			*val += uint32(c - 'A' + 10)
		default:
			return false
		}
	}
	return true
}

// Common colors
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(255, 255, 255)
	Red         = RGB(255, 0, 0)
	Green       = RGB(0, 255, 0)
	Blue        = RGB(0, 0, 255)
	Transparent = Color{}
)
