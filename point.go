// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package rasteredit

import "math"

// Point represents a position in buffer coordinates.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Distance returns the distance between two points.
func (p Point) Distance(q Point) float64 {
	return math.Hypot(q.X-p.X, q.Y-p.Y)
}

// Lerp returns the point a fraction t of the way from p to q.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
	}
}

// Pixel returns the integer pixel containing p.
func (p Point) Pixel() (x, y int) {
	return int(math.Floor(p.X)), int(math.Floor(p.Y))
}
