// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package selection

import "github.com/gogpu/rasteredit/pixel"

// DefaultTolerance is the per-channel tolerance used by the magic wand.
const DefaultTolerance = 30

// MagicWand selects every pixel 4-connected to the seed (x, y) whose R, G,
// B and A channels each differ from the seed's by at most tolerance. The
// channels are compared independently (a Chebyshev-style test, not a
// combined distance), so the selection boundary matches per-channel
// thresholds exactly.
//
// Each cell is enqueued at most once, so the fill terminates in
// O(width*height) for any image and tolerance. A seed outside the buffer
// yields an empty mask; a negative tolerance is treated as zero.
func MagicWand(buf *pixel.Buffer, x, y, tolerance int) *Mask {
	if buf.Empty() {
		return NewMask(0, 0)
	}
	w, h := buf.Width(), buf.Height()
	m := NewMask(w, h)
	if x < 0 || x >= w || y < 0 || y >= h {
		return m
	}
	if tolerance < 0 {
		tolerance = 0
	}

	data := buf.Data()
	seed := buf.Offset(x, y)
	sr, sg, sb, sa := int(data[seed]), int(data[seed+1]), int(data[seed+2]), int(data[seed+3])

	similar := func(i int) bool {
		p := i * 4
		return absInt(int(data[p])-sr) <= tolerance &&
			absInt(int(data[p+1])-sg) <= tolerance &&
			absInt(int(data[p+2])-sb) <= tolerance &&
			absInt(int(data[p+3])-sa) <= tolerance
	}

	visited := make([]bool, w*h)
	queue := make([]int, 0, 64)

	start := y*w + x
	visited[start] = true
	queue = append(queue, start)

	for head := 0; head < len(queue); head++ {
		i := queue[head]
		m.bits[i] = 1
		cx, cy := i%w, i/w

		// 4-connected neighbors: left, right, up, down.
		if cx > 0 && !visited[i-1] {
			visited[i-1] = true
			if similar(i - 1) {
				queue = append(queue, i-1)
			}
		}
		if cx < w-1 && !visited[i+1] {
			visited[i+1] = true
			if similar(i + 1) {
				queue = append(queue, i+1)
			}
		}
		if cy > 0 && !visited[i-w] {
			visited[i-w] = true
			if similar(i - w) {
				queue = append(queue, i-w)
			}
		}
		if cy < h-1 && !visited[i+w] {
			visited[i+w] = true
			if similar(i + w) {
				queue = append(queue, i+w)
			}
		}
	}

	return m
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
