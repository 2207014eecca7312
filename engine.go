// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package rasteredit

import (
	"image"
	"math"

	"github.com/gogpu/rasteredit/history"
	"github.com/gogpu/rasteredit/pixel"
	"github.com/gogpu/rasteredit/selection"
	"github.com/gogpu/rasteredit/stamp"
	"github.com/gogpu/rasteredit/surface"
)

// State is the engine's position in its queue/flush cycle.
type State int

const (
	// StateIdle means no ops are pending.
	StateIdle State = iota

	// StateQueuing means ops are pending and a flush has been requested.
	StateQueuing

	// StateFlushing means a flush is running.
	StateFlushing
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateQueuing:
		return "queuing"
	case StateFlushing:
		return "flushing"
	default:
		return "unknown"
	}
}

// Engine applies queued drawing operations to a pixel buffer.
//
// Input handlers call QueueOperation (or the stroke helpers) as pointer
// samples arrive. The engine requests one frame from its FrameScheduler and
// applies every pending op in that frame's flush, then blits the dirty
// rectangle to its surface.
//
// Engine is not safe for concurrent use.
type Engine struct {
	buf       *pixel.Buffer
	mask      *selection.Mask
	stamps    *stamp.Cache
	history   *history.Stack
	surface   surface.Surface
	scheduler FrameScheduler
	pixels    PixelStore
	snapshots SnapshotStore

	viewport  image.Rectangle
	tolerance int
	path      string

	pending   []DrawOp
	spare     []DrawOp
	requested bool // a frame callback is outstanding
	state     State
	dirty     DirtyRegion

	stroke stroke
}

// New creates an engine that edits buf.
//
// buf may be nil; the engine then reports ErrNotReady until Open or Resize
// provides a buffer. A non-nil buffer with zero size is rejected.
func New(buf *pixel.Buffer, opts ...Option) (*Engine, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if buf != nil && buf.Empty() {
		return nil, pixel.ErrInvalidDimensions
	}
	if o.stamps == nil {
		o.stamps = stamp.NewCache(stamp.DefaultCapacity)
	}

	return &Engine{
		buf:       buf,
		stamps:    o.stamps,
		history:   history.NewStack(o.historyDepth),
		surface:   o.surface,
		scheduler: o.scheduler,
		pixels:    o.pixels,
		snapshots: o.snapshots,
		viewport:  o.viewport,
		tolerance: o.tolerance,
		path:      o.path,
	}, nil
}

// Buffer returns the buffer being edited, or nil.
func (e *Engine) Buffer() *pixel.Buffer {
	return e.buf
}

// State returns the current queue/flush state.
func (e *Engine) State() State {
	return e.state
}

// Dirty returns the region modified since the last blit.
func (e *Engine) Dirty() DirtyRegion {
	return e.dirty
}

// Pending returns the number of queued ops.
func (e *Engine) Pending() int {
	return len(e.pending)
}

// Path returns the image path the buffer is associated with.
func (e *Engine) Path() string {
	return e.path
}

// History returns the undo stack.
func (e *Engine) History() *history.Stack {
	return e.history
}

// SetSurface replaces the blit target. A nil surface disables blits.
func (e *Engine) SetSurface(s surface.Surface) {
	e.surface = s
}

// SetViewport sets the visible part of the buffer used for culling.
// An empty rectangle means the whole buffer.
func (e *Engine) SetViewport(r image.Rectangle) {
	e.viewport = r.Canon()
}

// Viewport returns the culling rectangle in buffer coordinates.
func (e *Engine) Viewport() image.Rectangle {
	if e.viewport.Empty() && e.buf != nil {
		return e.buf.Bounds()
	}
	return e.viewport
}

// ready reports whether the engine has a buffer to draw into.
func (e *Engine) ready() bool {
	return !e.buf.Empty()
}

// QueueOperation appends op to the pending list and requests a flush if
// none is scheduled.
//
// Returns ErrNotReady, dropping the op, when the engine has no buffer.
// Ops whose centre lies outside the viewport by more than Size/2 are
// dropped without error.
func (e *Engine) QueueOperation(op DrawOp) error {
	if !e.ready() {
		Logger().Warn("rasteredit: op dropped", "reason", "not ready")
		return ErrNotReady
	}
	if op.Tool == nil {
		return nil
	}
	if e.culled(op) {
		return nil
	}

	e.pending = append(e.pending, op)
	if e.state == StateFlushing {
		// The running flush reschedules on exit.
		return nil
	}
	e.state = StateQueuing
	e.requestFlush()
	return nil
}

// culled reports whether op is too far outside the viewport to matter.
func (e *Engine) culled(op DrawOp) bool {
	if math.IsNaN(op.X) || math.IsNaN(op.Y) {
		return true
	}
	vp := e.Viewport()
	half := op.Size / 2
	if !(half >= 0) {
		half = 0
	}
	return op.X < float64(vp.Min.X)-half ||
		op.X > float64(vp.Max.X)+half ||
		op.Y < float64(vp.Min.Y)-half ||
		op.Y > float64(vp.Max.Y)+half
}

func (e *Engine) requestFlush() {
	if e.requested {
		return
	}
	e.requested = true
	e.scheduler.RequestFrame(e.onFrame)
}

// onFrame is the callback handed to the scheduler.
func (e *Engine) onFrame() {
	e.requested = false
	e.ProcessQueue()
}

// ProcessQueue is the flush: it applies every pending op, blits the dirty
// rectangle and resets it. Hosts normally let the scheduler call it.
//
// Ops queued while the flush runs are left for the next frame.
func (e *Engine) ProcessQueue() {
	if e.state == StateFlushing {
		return
	}
	if len(e.pending) == 0 {
		e.state = StateIdle
		return
	}

	ops := e.pending
	e.pending = e.spare[:0]
	e.state = StateFlushing

	applied := 0
	if e.ready() {
		mask := e.activeMask()
		for _, op := range ops {
			if !mask.IsSelected(Pt(op.X, op.Y).Pixel()) {
				continue
			}
			e.dirty.Union(e.apply(op, mask))
			applied++
		}
	}
	Logger().Debug("rasteredit: flush",
		"ops", len(ops), "applied", applied, "dirty", e.dirty.Rect())

	clear(ops)
	e.spare = ops[:0]
	e.blitDirty()

	if len(e.pending) > 0 {
		e.state = StateQueuing
		e.requestFlush()
		return
	}
	e.state = StateIdle
}

// Flush applies pending ops immediately instead of waiting for the next
// frame. A frame callback requested earlier finds nothing to do.
func (e *Engine) Flush() {
	if len(e.pending) > 0 {
		e.ProcessQueue()
	}
}

// activeMask returns the mask gating pixel writes, or nil for none.
// A mask whose dimensions do not match the buffer is ignored.
func (e *Engine) activeMask() *selection.Mask {
	if e.mask == nil {
		return nil
	}
	if !e.mask.Matches(e.buf.Width(), e.buf.Height()) {
		Logger().Warn("rasteredit: selection ignored",
			"mask", image.Pt(e.mask.Width(), e.mask.Height()),
			"buffer", image.Pt(e.buf.Width(), e.buf.Height()))
		return nil
	}
	return e.mask
}

// apply dispatches op to its pixel writer and returns the footprint box.
func (e *Engine) apply(op DrawOp, mask *selection.Mask) image.Rectangle {
	switch op.Tool.(type) {
	case Brush:
		return e.drawStamp(op, e.stamps.Brush(op.Size, op.Color), mask)
	case Pencil:
		return e.drawStamp(op, e.stamps.Pencil(op.Size, op.Color), mask)
	case Eraser:
		return e.erase(op, mask)
	default:
		return image.Rectangle{}
	}
}

// footprint returns the n x n box of a tool of side n centred on (x, y).
func footprint(x, y float64, n int) image.Rectangle {
	x0 := int(math.Floor(x)) - (n-1)/2
	y0 := int(math.Floor(y)) - (n-1)/2
	return image.Rect(x0, y0, x0+n, y0+n)
}

// Redraw blits the whole buffer to the surface, for example after the
// surface has been replaced or its contents lost.
func (e *Engine) Redraw() {
	e.markAll()
	e.Flush()
	e.blitDirty()
}

// markAll marks the whole buffer dirty.
func (e *Engine) markAll() {
	if e.ready() {
		e.dirty.Union(e.buf.Bounds())
	}
}

// blitDirty sends the dirty rectangle to the surface and resets it.
func (e *Engine) blitDirty() {
	if e.dirty.Empty() {
		return
	}
	r := e.dirty.Rect()
	e.dirty.Reset()
	if e.surface == nil || !e.ready() {
		return
	}
	if err := e.surface.Blit(e.buf.Data(), e.buf.Stride(), r); err != nil {
		Logger().Warn("rasteredit: blit failed", "rect", r, "err", err)
	}
}
