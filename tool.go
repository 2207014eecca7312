// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package rasteredit

import "github.com/gogpu/rasteredit/pixel"

// Tool selects how a DrawOp modifies pixels.
// This is a sealed interface - only Brush, Pencil and Eraser implement it.
//
// The engine dispatches on the concrete type:
//   - Brush: soft round stamp composited with source-over
//   - Pencil: hard square stamp composited with source-over
//   - Eraser: hard square that sets alpha to zero
type Tool interface {
	// toolMarker is an unexported method that seals this interface.
	toolMarker()

	// Name returns the tool's lowercase name.
	Name() string
}

// Brush paints a soft round stamp with radial falloff.
type Brush struct{}

// Pencil paints a hard-edged square stamp.
type Pencil struct{}

// Eraser clears the alpha channel in a hard-edged square.
// Color channels are left untouched.
type Eraser struct{}

func (Brush) toolMarker()  {}
func (Pencil) toolMarker() {}
func (Eraser) toolMarker() {}

// Name implements Tool.
func (Brush) Name() string { return "brush" }

// Name implements Tool.
func (Pencil) Name() string { return "pencil" }

// Name implements Tool.
func (Eraser) Name() string { return "eraser" }

// ToolByName returns the tool with the given name.
func ToolByName(name string) (Tool, bool) {
	switch name {
	case "brush":
		return Brush{}, true
	case "pencil":
		return Pencil{}, true
	case "eraser":
		return Eraser{}, true
	default:
		return nil, false
	}
}

// DrawOp is a single queued drawing operation centred at (X, Y).
// Ops are built per pointer sample and consumed once by a flush.
type DrawOp struct {
	X, Y  float64
	Tool  Tool
	Color pixel.Color
	Size  float64
}
