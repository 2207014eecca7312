// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package rasteredit

import (
	"bytes"

	"github.com/gogpu/rasteredit/history"
	"github.com/gogpu/rasteredit/pixel"
	"github.com/gogpu/rasteredit/selection"
)

// stroke is the state of the stroke in progress.
type stroke struct {
	active bool
	tool   Tool
	color  pixel.Color
	size   float64
	interp Interpolator
	points []Point
}

// BeginStroke starts a stroke with the given tool, color and size.
// A stroke already in progress is ended first.
func (e *Engine) BeginStroke(tool Tool, c pixel.Color, size float64) error {
	if !e.ready() {
		return ErrNotReady
	}
	if e.stroke.active {
		e.EndStroke()
	}
	e.Flush()
	e.ensureBaseline()

	e.stroke.active = true
	e.stroke.tool = tool
	e.stroke.color = c
	e.stroke.size = size
	e.stroke.interp.Reset()
	return nil
}

// StrokeTo extends the stroke in progress to (x, y), queuing one op per
// interpolated sample. Without a stroke in progress it does nothing.
func (e *Engine) StrokeTo(x, y float64) error {
	if !e.stroke.active {
		return nil
	}
	s := &e.stroke
	s.points = s.interp.AppendNext(s.points[:0], Pt(x, y), s.size)
	for _, p := range s.points {
		err := e.QueueOperation(DrawOp{X: p.X, Y: p.Y, Tool: s.tool, Color: s.color, Size: s.size})
		if err != nil {
			return err
		}
	}
	return nil
}

// EndStroke flushes the ops still pending and records one history entry.
// Without a stroke in progress it does nothing.
func (e *Engine) EndStroke() {
	if !e.stroke.active {
		return
	}
	e.stroke.active = false
	e.stroke.interp.Reset()

	e.Flush()
	e.commit()
}

// Stroking reports whether a stroke is in progress.
func (e *Engine) Stroking() bool {
	return e.stroke.active
}

// ensureBaseline records the current pixels when history is empty, so the
// first edit can be undone.
func (e *Engine) ensureBaseline() {
	if e.history.Len() == 0 && e.ready() {
		e.history.Push(history.Capture(e.buf))
	}
}

// commit pushes the current pixels onto the undo stack unless they equal
// the entry at the cursor.
func (e *Engine) commit() {
	if !e.ready() {
		return
	}
	e.ensureBaseline()
	if cur, ok := e.history.Current(); ok && cur.Width == e.buf.Width() &&
		cur.Height == e.buf.Height() && bytes.Equal(cur.Pix, e.buf.Data()) {
		return
	}
	e.history.Push(history.Capture(e.buf))
}

// Selection returns the active mask, or nil when nothing restricts edits.
func (e *Engine) Selection() *selection.Mask {
	return e.mask
}

// SetSelection replaces the active mask. A nil mask removes the restriction.
func (e *Engine) SetSelection(m *selection.Mask) {
	e.mask = m
}

// SelectRect selects the inclusive box spanned by two corners.
// Corners may be given in any order and are clamped to the buffer.
func (e *Engine) SelectRect(x0, y0, x1, y1 int) error {
	if !e.ready() {
		return ErrNotReady
	}
	e.mask = selection.Rect(e.buf.Width(), e.buf.Height(), x0, y0, x1, y1)
	return nil
}

// SelectMagicWand selects the 4-connected region around (x, y) whose pixels
// are within the engine tolerance of the seed on every channel.
func (e *Engine) SelectMagicWand(x, y int) error {
	if !e.ready() {
		return ErrNotReady
	}
	e.Flush()
	e.mask = selection.MagicWand(e.buf, x, y, e.tolerance)
	return nil
}

// SelectPolygon selects the cells whose centres lie inside the polygon
// under the even-odd rule.
func (e *Engine) SelectPolygon(pts []selection.Point) error {
	if !e.ready() {
		return ErrNotReady
	}
	e.mask = selection.Polygon(e.buf.Width(), e.buf.Height(), pts)
	return nil
}

// SelectAll selects every pixel.
func (e *Engine) SelectAll() error {
	if !e.ready() {
		return ErrNotReady
	}
	m := selection.NewMask(e.buf.Width(), e.buf.Height())
	m.SelectAll()
	e.mask = m
	return nil
}

// InvertSelection inverts the active mask. Without a mask it does nothing.
func (e *Engine) InvertSelection() {
	if e.mask != nil {
		e.mask.Invert()
	}
}

// ClearSelection removes the active mask.
func (e *Engine) ClearSelection() {
	e.mask = nil
}

// Tolerance returns the magic wand tolerance.
func (e *Engine) Tolerance() int {
	return e.tolerance
}

// SetTolerance sets the magic wand tolerance. Negative values are ignored.
func (e *Engine) SetTolerance(t int) {
	if t >= 0 {
		e.tolerance = t
	}
}

// DeleteSelection clears the alpha of the selected pixels, or of the whole
// buffer when nothing is selected. The selection is cleared afterwards and
// one history entry is recorded.
func (e *Engine) DeleteSelection() error {
	return e.editSelection(func() {
		e.dirty.Union(selection.Delete(e.buf, e.mask))
	})
}

// FillSelection overwrites the selected pixels with c, or the whole buffer
// when nothing is selected. The selection is cleared afterwards and one
// history entry is recorded.
func (e *Engine) FillSelection(c pixel.Color) error {
	return e.editSelection(func() {
		e.dirty.Union(selection.Fill(e.buf, e.mask, c))
	})
}

func (e *Engine) editSelection(edit func()) error {
	if !e.ready() {
		return ErrNotReady
	}
	e.Flush()
	e.ensureBaseline()

	edit()
	e.blitDirty()
	e.mask = nil
	e.commit()
	return nil
}

// Undo restores the previous history entry and blits the whole buffer.
// Returns false when there is nothing to undo.
func (e *Engine) Undo() bool {
	return e.restore(e.history.Undo)
}

// Redo restores the next history entry and blits the whole buffer.
// Returns false when there is nothing to redo.
func (e *Engine) Redo() bool {
	return e.restore(e.history.Redo)
}

func (e *Engine) restore(step func() (history.Snapshot, bool)) bool {
	if !e.ready() {
		return false
	}
	if e.stroke.active {
		e.EndStroke()
	}
	e.Flush()

	snap, ok := step()
	if !ok {
		return false
	}
	if err := snap.Restore(e.buf); err != nil {
		Logger().Warn("rasteredit: restore failed", "err", err)
		return false
	}
	e.markAll()
	e.blitDirty()
	return true
}

// CanUndo reports whether Undo would change the buffer.
func (e *Engine) CanUndo() bool {
	return e.history.CanUndo()
}

// CanRedo reports whether Redo would change the buffer.
func (e *Engine) CanRedo() bool {
	return e.history.CanRedo()
}
