// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package main

import (
	"github.com/gogpu/gpucontext"
	"github.com/hajimehoshi/ebiten/v2"
)

// keyMap translates the ebiten keys the input controller binds.
var keyMap = map[ebiten.Key]gpucontext.Key{
	ebiten.KeyEscape:    gpucontext.KeyEscape,
	ebiten.KeyDelete:    gpucontext.KeyDelete,
	ebiten.KeyBackspace: gpucontext.KeyBackspace,
	ebiten.KeyEnter:     gpucontext.KeyEnter,
	ebiten.KeyA:         gpucontext.KeyA,
	ebiten.KeyB:         gpucontext.KeyB,
	ebiten.KeyE:         gpucontext.KeyE,
	ebiten.KeyI:         gpucontext.KeyI,
	ebiten.KeyL:         gpucontext.KeyL,
	ebiten.KeyP:         gpucontext.KeyP,
	ebiten.KeyR:         gpucontext.KeyR,
	ebiten.KeyW:         gpucontext.KeyW,
	ebiten.KeyY:         gpucontext.KeyY,
	ebiten.KeyZ:         gpucontext.KeyZ,
}

// modifiers returns the modifier keys currently held.
func modifiers() gpucontext.Modifiers {
	var m gpucontext.Modifiers
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		m |= gpucontext.ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) {
		m |= gpucontext.ModControl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) {
		m |= gpucontext.ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) {
		m |= gpucontext.ModSuper
	}
	return m
}
