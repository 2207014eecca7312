// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package selection

import "math"

// Point is a polygon vertex in buffer coordinates.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Polygon builds a mask selecting every cell whose centre (x+0.5, y+0.5)
// lies inside the polygon under the even-odd rule. Only cells inside the
// polygon's bounding box (clamped to the grid) are tested.
//
// Edges use the half-open convention (yi > py) != (yj > py), so a vertex
// shared by two edges is counted exactly once. The polygon is implicitly
// closed. Fewer than three vertices select nothing.
func Polygon(width, height int, pts []Point) *Mask {
	m := NewMask(width, height)
	if m.width == 0 || len(pts) < 3 {
		return m
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range pts {
		if math.IsNaN(p.X) || math.IsNaN(p.Y) {
			return m
		}
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}

	x0 := clampInt(int(math.Floor(minX)), 0, width-1)
	x1 := clampInt(int(math.Ceil(maxX)), 0, width-1)
	y0 := clampInt(int(math.Floor(minY)), 0, height-1)
	y1 := clampInt(int(math.Ceil(maxY)), 0, height-1)

	for y := y0; y <= y1; y++ {
		py := float64(y) + 0.5
		for x := x0; x <= x1; x++ {
			if Contains(pts, float64(x)+0.5, py) {
				m.bits[y*width+x] = 1
			}
		}
	}
	return m
}

// Contains reports whether (px, py) is inside the polygon using even-odd
// ray casting towards +X.
func Contains(pts []Point, px, py float64) bool {
	inside := false
	j := len(pts) - 1
	for i := 0; i < len(pts); i++ {
		pi, pj := pts[i], pts[j]
		if (pi.Y > py) != (pj.Y > py) {
			xCross := (pj.X-pi.X)*(py-pi.Y)/(pj.Y-pi.Y) + pi.X
			if px < xCross {
				inside = !inside
			}
		}
		j = i
	}
	return inside
}
