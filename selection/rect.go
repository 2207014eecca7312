// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package selection

// Rect builds a mask selecting the inclusive box spanned by (x0, y0) and
// (x1, y1). Corners may be given in any order and are clamped into the
// width x height grid first. O(area).
func Rect(width, height, x0, y0, x1, y1 int) *Mask {
	m := NewMask(width, height)
	if m.width == 0 {
		return m
	}

	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	x0, x1 = clampInt(x0, 0, width-1), clampInt(x1, 0, width-1)
	y0, y1 = clampInt(y0, 0, height-1), clampInt(y1, 0, height-1)

	for y := y0; y <= y1; y++ {
		row := m.bits[y*width+x0 : y*width+x1+1]
		for i := range row {
			row[i] = 1
		}
	}
	return m
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
