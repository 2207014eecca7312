// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package rasteredit

import (
	"context"
	"fmt"

	"github.com/gogpu/rasteredit/history"
	"github.com/gogpu/rasteredit/pixel"
)

// PixelStore loads and saves whole images.
// imageio.FileStore implements it over the local filesystem.
type PixelStore interface {
	LoadPixels(ctx context.Context, path string) (*pixel.Buffer, error)
	SavePixels(ctx context.Context, path string, buf *pixel.Buffer) error
}

// SnapshotStore persists history snapshots keyed by image path.
// store.Store implements it over SQLite.
type SnapshotStore interface {
	AppendSnapshot(ctx context.Context, key string, snap history.Snapshot) error
	ListSnapshots(ctx context.Context, key string) ([]history.Record, error)
}

// Open loads the image at path and makes it the edited buffer.
// The selection is cleared and history is reset to a single baseline entry.
func (e *Engine) Open(ctx context.Context, path string) error {
	if e.pixels == nil {
		return ErrNoStore
	}
	buf, err := e.pixels.LoadPixels(ctx, path)
	if err != nil {
		return fmt.Errorf("rasteredit: open %s: %w", path, err)
	}
	if buf.Empty() {
		return fmt.Errorf("rasteredit: open %s: %w", path, pixel.ErrInvalidDimensions)
	}

	e.replace(buf)
	e.path = path
	e.history.Push(history.Capture(buf))
	e.markAll()
	e.blitDirty()

	Logger().Info("rasteredit: opened", "path", path, "width", buf.Width(), "height", buf.Height())
	return nil
}

// Save writes the buffer to the path it was opened from.
func (e *Engine) Save(ctx context.Context) error {
	if e.path == "" {
		return ErrNoPath
	}
	return e.SaveAs(ctx, e.path)
}

// SaveAs writes the buffer to path and associates the engine with it.
// Pending ops are flushed first.
func (e *Engine) SaveAs(ctx context.Context, path string) error {
	if e.pixels == nil {
		return ErrNoStore
	}
	if !e.ready() {
		return ErrNotReady
	}
	if path == "" {
		return ErrNoPath
	}
	e.Flush()

	if err := e.pixels.SavePixels(ctx, path, e.buf); err != nil {
		return fmt.Errorf("rasteredit: save %s: %w", path, err)
	}
	if path != e.path {
		e.history.Reset()
		e.path = path
		Logger().Info("rasteredit: history reset", "path", path)
	}
	Logger().Info("rasteredit: saved", "path", path)
	return nil
}

// CommitHistory persists the current pixels to the snapshot store.
//
// The pixels are copied before CommitHistory returns; the write runs on its
// own goroutine. The returned channel yields exactly one result and is then
// closed. ErrBusy is delivered when called during a flush.
func (e *Engine) CommitHistory(ctx context.Context) <-chan error {
	result := make(chan error, 1)

	fail := func(err error) <-chan error {
		result <- err
		close(result)
		return result
	}
	switch {
	case e.state == StateFlushing:
		return fail(ErrBusy)
	case e.snapshots == nil:
		return fail(ErrNoStore)
	case !e.ready():
		return fail(ErrNotReady)
	case e.path == "":
		return fail(ErrNoPath)
	}

	key := e.path
	snap := history.Capture(e.buf)
	store := e.snapshots
	go func() {
		defer close(result)
		if err := store.AppendSnapshot(ctx, key, snap); err != nil {
			result <- fmt.Errorf("rasteredit: commit history %s: %w", key, err)
			return
		}
		result <- nil
	}()
	return result
}

// SavedHistory lists the snapshots persisted for the current image, oldest
// first.
func (e *Engine) SavedHistory(ctx context.Context) ([]history.Record, error) {
	if e.snapshots == nil {
		return nil, ErrNoStore
	}
	if e.path == "" {
		return nil, ErrNoPath
	}
	recs, err := e.snapshots.ListSnapshots(ctx, e.path)
	if err != nil {
		return nil, fmt.Errorf("rasteredit: list history %s: %w", e.path, err)
	}
	return recs, nil
}

// Resize replaces the buffer with a transparent one of the new size.
// The selection and history are dropped.
func (e *Engine) Resize(width, height int) error {
	buf, err := pixel.New(width, height)
	if err != nil {
		return fmt.Errorf("rasteredit: resize: %w", err)
	}
	e.replace(buf)
	e.markAll()
	e.blitDirty()
	return nil
}

// replace swaps in a new buffer and drops state tied to the old one.
func (e *Engine) replace(buf *pixel.Buffer) {
	e.stroke.active = false
	e.stroke.interp.Reset()
	clear(e.pending)
	e.pending = e.pending[:0]
	e.dirty.Reset()

	e.buf = buf
	e.mask = nil
	e.history.Reset()
	Logger().Info("rasteredit: history reset", "width", buf.Width(), "height", buf.Height())
}
