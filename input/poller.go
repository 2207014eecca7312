// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package input

import (
	"image"
	"time"

	"github.com/gogpu/gpucontext"
)

// Poller turns per-frame input state into gpucontext events.
//
// Game loops that poll the cursor and buttons once per frame report that
// state to Pointer and Key; the Poller emits the down, move, up, enter and
// leave events a callback-driven windowing layer would have delivered.
// A Poller is both a gpucontext.PointerEventSource and a
// gpucontext.EventSource, so Controller.Bind accepts it directly.
type Poller struct {
	gpucontext.NullEventSource

	bounds  image.Rectangle
	start   time.Time
	pointer []func(gpucontext.PointerEvent)
	keys    []func(gpucontext.Key, gpucontext.Modifiers)

	seen    bool
	inside  bool
	pressed bool
	x, y    float64
}

var (
	_ gpucontext.PointerEventSource = (*Poller)(nil)
	_ gpucontext.EventSource        = (*Poller)(nil)
)

// pollerPointerID identifies the single pointer a Poller reports.
const pollerPointerID = 1

// NewPoller creates a poller whose pointer is inside while it lies in bounds.
func NewPoller(bounds image.Rectangle) *Poller {
	return &Poller{bounds: bounds.Canon(), start: time.Now()}
}

// SetBounds changes the area the pointer is considered inside of.
func (p *Poller) SetBounds(r image.Rectangle) {
	p.bounds = r.Canon()
}

// OnPointer registers a callback for pointer events.
func (p *Poller) OnPointer(fn func(gpucontext.PointerEvent)) {
	p.pointer = append(p.pointer, fn)
}

// OnKeyPress registers a callback for key presses.
func (p *Poller) OnKeyPress(fn func(gpucontext.Key, gpucontext.Modifiers)) {
	p.keys = append(p.keys, fn)
}

// Key reports one key press.
func (p *Poller) Key(key gpucontext.Key, mods gpucontext.Modifiers) {
	for _, fn := range p.keys {
		fn(key, mods)
	}
}

// Pointer reports the cursor position and primary button state for one
// frame.
func (p *Poller) Pointer(x, y float64, pressed bool, mods gpucontext.Modifiers) {
	in := x >= float64(p.bounds.Min.X) && x < float64(p.bounds.Max.X) &&
		y >= float64(p.bounds.Min.Y) && y < float64(p.bounds.Max.Y)
	moved := !p.seen || x != p.x || y != p.y

	wasInside, wasPressed := p.inside, p.pressed
	p.seen = true
	p.inside, p.pressed = in, pressed
	p.x, p.y = x, y

	buttons := gpucontext.ButtonsNone
	if pressed {
		buttons = gpucontext.ButtonsLeft
	}

	switch {
	case in && !wasInside:
		p.emit(gpucontext.PointerEnter, gpucontext.ButtonNone, buttons, mods)
	case !in && wasInside:
		p.emit(gpucontext.PointerLeave, gpucontext.ButtonNone, buttons, mods)
	}
	if in && moved {
		p.emit(gpucontext.PointerMove, gpucontext.ButtonNone, buttons, mods)
	}
	switch {
	case in && pressed && !wasPressed:
		p.emit(gpucontext.PointerDown, gpucontext.ButtonLeft, buttons, mods)
	case !pressed && wasPressed:
		p.emit(gpucontext.PointerUp, gpucontext.ButtonLeft, buttons, mods)
	}
}

func (p *Poller) emit(typ gpucontext.PointerEventType, button gpucontext.Button, buttons gpucontext.Buttons, mods gpucontext.Modifiers) {
	var pressure float32
	if buttons != gpucontext.ButtonsNone {
		pressure = 0.5
	}
	ev := gpucontext.PointerEvent{
		Type:        typ,
		PointerID:   pollerPointerID,
		X:           p.x,
		Y:           p.y,
		Pressure:    pressure,
		PointerType: gpucontext.PointerTypeMouse,
		IsPrimary:   true,
		Button:      button,
		Buttons:     buttons,
		Modifiers:   mods,
		Timestamp:   time.Since(p.start),
	}
	for _, fn := range p.pointer {
		fn(ev)
	}
}
