// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package input turns pointer and keyboard events into editor commands.
//
// A Controller consumes gpucontext events whose coordinates are already in
// buffer space. Hosts either feed events by hand (HandlePointer, HandleKey)
// or subscribe the controller to their event sources with Bind.
package input

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/gogpu/gpucontext"

	"github.com/gogpu/rasteredit"
	"github.com/gogpu/rasteredit/pixel"
	"github.com/gogpu/rasteredit/selection"
)

// Mode is the active tool of a Controller.
type Mode int

const (
	// ModeBrush paints soft round stamps.
	ModeBrush Mode = iota

	// ModePencil paints hard square stamps.
	ModePencil

	// ModeEraser clears alpha under a square footprint.
	ModeEraser

	// ModeRect selects the box spanned by a drag.
	ModeRect

	// ModeWand selects the similar-colored region under a click.
	ModeWand

	// ModePolygon adds a vertex per click; Enter closes the polygon.
	ModePolygon
)

var modeNames = [...]string{
	ModeBrush:   "brush",
	ModePencil:  "pencil",
	ModeEraser:  "eraser",
	ModeRect:    "rect",
	ModeWand:    "wand",
	ModePolygon: "polygon",
}

// String returns the mode name.
func (m Mode) String() string {
	if m >= 0 && int(m) < len(modeNames) {
		return modeNames[m]
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode returns the mode with the given name.
func ParseMode(name string) (Mode, bool) {
	for i, n := range modeNames {
		if n == name {
			return Mode(i), true
		}
	}
	return 0, false
}

// stroking reports whether the mode paints.
func (m Mode) stroking() bool {
	return m == ModeBrush || m == ModePencil || m == ModeEraser
}

// Editor is the set of engine commands a Controller drives.
// *rasteredit.Engine implements it.
type Editor interface {
	BeginStroke(tool rasteredit.Tool, c pixel.Color, size float64) error
	StrokeTo(x, y float64) error
	EndStroke()

	SelectRect(x0, y0, x1, y1 int) error
	SelectMagicWand(x, y int) error
	SelectPolygon(pts []selection.Point) error
	SelectAll() error
	InvertSelection()
	ClearSelection()
	DeleteSelection() error

	Undo() bool
	Redo() bool
}

// DefaultSize is the tool size of a new Controller.
const DefaultSize = 5

// Option configures a Controller.
type Option func(*Controller)

// WithMode sets the initial mode.
func WithMode(m Mode) Option {
	return func(c *Controller) {
		c.mode = m
	}
}

// WithColor sets the paint color.
func WithColor(col pixel.Color) Option {
	return func(c *Controller) {
		c.color = col
	}
}

// WithSize sets the tool size. Values <= 0 are ignored.
func WithSize(size float64) Option {
	return func(c *Controller) {
		if size > 0 {
			c.size = size
		}
	}
}

// WithLogger sets the logger for errors raised by bound event sources.
// By default the controller logs through rasteredit.Logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) {
		c.log = l
	}
}

// Controller maps pointer and key events to Editor commands.
//
// Controller is not safe for concurrent use; deliver events on the
// goroutine that owns the engine.
type Controller struct {
	ed    Editor
	mode  Mode
	color pixel.Color
	size  float64
	log   *slog.Logger

	down    bool
	pointer int
	anchorX int
	anchorY int

	polygon []selection.Point
}

// New creates a controller driving ed.
func New(ed Editor, opts ...Option) *Controller {
	c := &Controller{
		ed:    ed,
		mode:  ModeBrush,
		color: pixel.Black,
		size:  DefaultSize,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Mode returns the active mode.
func (c *Controller) Mode() Mode { return c.mode }

// SetMode switches tools. A stroke or drag in progress is finished first and
// an unfinished polygon is discarded.
func (c *Controller) SetMode(m Mode) {
	if m == c.mode {
		return
	}
	c.release()
	c.polygon = c.polygon[:0]
	c.mode = m
}

// Color returns the paint color.
func (c *Controller) Color() pixel.Color { return c.color }

// SetColor sets the paint color used by the next stroke.
func (c *Controller) SetColor(col pixel.Color) { c.color = col }

// Size returns the tool size.
func (c *Controller) Size() float64 { return c.size }

// SetSize sets the tool size used by the next stroke. Values <= 0 are
// ignored.
func (c *Controller) SetSize(size float64) {
	if size > 0 {
		c.size = size
	}
}

// Dragging reports whether a pointer is held down.
func (c *Controller) Dragging() bool { return c.down }

// PolygonPoints returns the vertices of the polygon being built.
func (c *Controller) PolygonPoints() []selection.Point { return c.polygon }

// HandlePointer applies one pointer event.
//
// Only the left button and the pen eraser start an interaction; while one is
// active, events from other pointers are ignored.
func (c *Controller) HandlePointer(ev gpucontext.PointerEvent) error {
	switch ev.Type {
	case gpucontext.PointerDown:
		return c.pointerDown(ev)
	case gpucontext.PointerMove:
		if !c.tracking(ev) {
			return nil
		}
		return c.drag(ev.X, ev.Y)
	case gpucontext.PointerUp:
		if !c.tracking(ev) {
			return nil
		}
		err := c.drag(ev.X, ev.Y)
		c.release()
		return err
	case gpucontext.PointerLeave, gpucontext.PointerCancel:
		if c.tracking(ev) {
			c.release()
		}
		return nil
	}
	return nil
}

func (c *Controller) tracking(ev gpucontext.PointerEvent) bool {
	return c.down && ev.PointerID == c.pointer
}

func (c *Controller) pointerDown(ev gpucontext.PointerEvent) error {
	if c.down {
		return nil
	}
	if ev.Button != gpucontext.ButtonLeft && ev.Button != gpucontext.ButtonEraser {
		return nil
	}
	x, y := cell(ev.X), cell(ev.Y)

	switch {
	case c.mode.stroking():
		tool := c.tool()
		if ev.Button == gpucontext.ButtonEraser {
			tool = rasteredit.Eraser{}
		}
		if err := c.ed.BeginStroke(tool, c.color, c.size); err != nil {
			return err
		}
		c.grab(ev, x, y)
		return c.ed.StrokeTo(ev.X, ev.Y)

	case c.mode == ModeRect:
		if err := c.ed.SelectRect(x, y, x, y); err != nil {
			return err
		}
		c.grab(ev, x, y)
		return nil

	case c.mode == ModeWand:
		return c.ed.SelectMagicWand(x, y)

	case c.mode == ModePolygon:
		c.polygon = append(c.polygon, selection.Pt(ev.X, ev.Y))
		return nil
	}
	return nil
}

func (c *Controller) grab(ev gpucontext.PointerEvent, x, y int) {
	c.down = true
	c.pointer = ev.PointerID
	c.anchorX, c.anchorY = x, y
}

func (c *Controller) drag(fx, fy float64) error {
	switch {
	case c.mode.stroking():
		return c.ed.StrokeTo(fx, fy)
	case c.mode == ModeRect:
		return c.ed.SelectRect(c.anchorX, c.anchorY, cell(fx), cell(fy))
	}
	return nil
}

// release ends the interaction in progress.
func (c *Controller) release() {
	if !c.down {
		return
	}
	c.down = false
	if c.mode.stroking() {
		c.ed.EndStroke()
	}
}

func (c *Controller) tool() rasteredit.Tool {
	switch c.mode {
	case ModePencil:
		return rasteredit.Pencil{}
	case ModeEraser:
		return rasteredit.Eraser{}
	default:
		return rasteredit.Brush{}
	}
}

// HandleKey applies one key press.
//
// Bindings:
//
//	Escape              clear the selection and drop an unfinished polygon
//	Delete, Backspace   delete the selected pixels
//	Enter               close the polygon being built
//	Ctrl+Z              undo
//	Ctrl+Shift+Z, Ctrl+Y redo
//	Ctrl+A              select all
//	Ctrl+I              invert the selection
//	B P E R W L         brush, pencil, eraser, rect, wand, polygon
func (c *Controller) HandleKey(key gpucontext.Key, mods gpucontext.Modifiers) error {
	if mods.HasControl() || mods.HasSuper() {
		switch key {
		case gpucontext.KeyZ:
			c.release()
			if mods.HasShift() {
				c.ed.Redo()
			} else {
				c.ed.Undo()
			}
		case gpucontext.KeyY:
			c.release()
			c.ed.Redo()
		case gpucontext.KeyA:
			return c.ed.SelectAll()
		case gpucontext.KeyI:
			c.ed.InvertSelection()
		}
		return nil
	}

	switch key {
	case gpucontext.KeyEscape:
		c.polygon = c.polygon[:0]
		c.ed.ClearSelection()
	case gpucontext.KeyDelete, gpucontext.KeyBackspace:
		c.release()
		return c.ed.DeleteSelection()
	case gpucontext.KeyEnter:
		return c.closePolygon()
	case gpucontext.KeyB:
		c.SetMode(ModeBrush)
	case gpucontext.KeyP:
		c.SetMode(ModePencil)
	case gpucontext.KeyE:
		c.SetMode(ModeEraser)
	case gpucontext.KeyR:
		c.SetMode(ModeRect)
	case gpucontext.KeyW:
		c.SetMode(ModeWand)
	case gpucontext.KeyL:
		c.SetMode(ModePolygon)
	}
	return nil
}

// closePolygon selects the polygon being built. Fewer than three vertices
// are discarded.
func (c *Controller) closePolygon() error {
	if c.mode != ModePolygon {
		return nil
	}
	pts := c.polygon
	c.polygon = nil
	if len(pts) < 3 {
		return nil
	}
	return c.ed.SelectPolygon(pts)
}

// Bind subscribes the controller to pointer and key events.
// Either source may be nil. Errors are logged, since event callbacks cannot
// return them.
func (c *Controller) Bind(pointers gpucontext.PointerEventSource, events gpucontext.EventSource) {
	if pointers != nil {
		pointers.OnPointer(func(ev gpucontext.PointerEvent) {
			if err := c.HandlePointer(ev); err != nil {
				c.logger().Warn("input: pointer event failed", "type", ev.Type, "err", err)
			}
		})
	}
	if events != nil {
		events.OnKeyPress(func(key gpucontext.Key, mods gpucontext.Modifiers) {
			if err := c.HandleKey(key, mods); err != nil {
				c.logger().Warn("input: key event failed", "key", key, "err", err)
			}
		})
	}
}

func (c *Controller) logger() *slog.Logger {
	if c.log != nil {
		return c.log
	}
	return rasteredit.Logger()
}

// cell returns the pixel containing buffer coordinate v.
func cell(v float64) int {
	return int(math.Floor(v))
}
