// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package selection builds boolean selection masks over a pixel buffer.
//
// A Mask stores one byte per cell in row-major order. Builders produce masks
// from a rectangle, a flood fill ("magic wand") or a polygon; the drawing
// engine consults IsSelected before every pixel write.
//
// A nil *Mask means "no restriction": every cell is selected.
package selection

import "image"

// Mask is a dense boolean grid with the same dimensions as a pixel buffer.
// A cell is selected when its byte is non-zero.
type Mask struct {
	width  int
	height int
	bits   []uint8
}

// NewMask creates a new empty mask with the given dimensions.
// Non-positive dimensions produce an empty 0x0 mask.
func NewMask(width, height int) *Mask {
	if width <= 0 || height <= 0 {
		return &Mask{}
	}
	return &Mask{
		width:  width,
		height: height,
		bits:   make([]uint8, width*height),
	}
}

// Width returns the mask width.
func (m *Mask) Width() int { return m.width }

// Height returns the mask height.
func (m *Mask) Height() int { return m.height }

// Matches reports whether the mask covers a width x height grid.
// A nil mask matches any size.
func (m *Mask) Matches(width, height int) bool {
	return m == nil || (m.width == width && m.height == height)
}

// IsSelected reports whether (x, y) is selected.
// A nil mask selects everything; out-of-range cells are never selected.
func (m *Mask) IsSelected(x, y int) bool {
	if m == nil {
		return true
	}
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return false
	}
	return m.bits[y*m.width+x] != 0
}

// Set marks (x, y) as selected or not.
// Coordinates outside the mask bounds are ignored.
func (m *Mask) Set(x, y int, selected bool) {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return
	}
	var v uint8
	if selected {
		v = 1
	}
	m.bits[y*m.width+x] = v
}

// Count returns the number of selected cells.
func (m *Mask) Count() int {
	n := 0
	for _, v := range m.bits {
		if v != 0 {
			n++
		}
	}
	return n
}

// Empty reports whether no cell is selected.
func (m *Mask) Empty() bool {
	for _, v := range m.bits {
		if v != 0 {
			return false
		}
	}
	return true
}

// Bounds returns the smallest rectangle containing every selected cell.
// Returns the zero rectangle when nothing is selected.
func (m *Mask) Bounds() image.Rectangle {
	minX, minY := m.width, m.height
	maxX, maxY := -1, -1
	for y := 0; y < m.height; y++ {
		row := m.bits[y*m.width : (y+1)*m.width]
		for x, v := range row {
			if v == 0 {
				continue
			}
			if x < minX {
				minX = x
			}
			if x > maxX {
				maxX = x
			}
			if y < minY {
				minY = y
			}
			maxY = y
		}
	}
	if maxX < 0 {
		return image.Rectangle{}
	}
	return image.Rect(minX, minY, maxX+1, maxY+1)
}

// SelectAll marks every cell as selected.
func (m *Mask) SelectAll() {
	for i := range m.bits {
		m.bits[i] = 1
	}
}

// Invert toggles every cell.
func (m *Mask) Invert() {
	for i, v := range m.bits {
		if v != 0 {
			m.bits[i] = 0
		} else {
			m.bits[i] = 1
		}
	}
}

// Clone creates a copy of the mask.
func (m *Mask) Clone() *Mask {
	clone := NewMask(m.width, m.height)
	copy(clone.bits, m.bits)
	return clone
}

// Bits returns the underlying row-major cell slice.
func (m *Mask) Bits() []uint8 {
	return m.bits
}
