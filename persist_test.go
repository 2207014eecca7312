// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package rasteredit

import (
	"context"
	"errors"
	"image"
	"io/fs"
	"sync"
	"testing"
	"time"

	"github.com/gogpu/rasteredit/history"
	"github.com/gogpu/rasteredit/pixel"
	"github.com/gogpu/rasteredit/selection"
)

// memPixels is an in-memory PixelStore.
type memPixels struct {
	files   map[string]*pixel.Buffer
	saveErr error
}

func (m *memPixels) LoadPixels(_ context.Context, path string) (*pixel.Buffer, error) {
	buf, ok := m.files[path]
	if !ok {
		return nil, fs.ErrNotExist
	}
	return buf.Clone(), nil
}

func (m *memPixels) SavePixels(_ context.Context, path string, buf *pixel.Buffer) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	if m.files == nil {
		m.files = make(map[string]*pixel.Buffer)
	}
	m.files[path] = buf.Clone()
	return nil
}

// memSnapshots is an in-memory SnapshotStore.
type memSnapshots struct {
	mu   sync.Mutex
	recs map[string][]history.Record
	err  error
}

func (m *memSnapshots) AppendSnapshot(_ context.Context, key string, snap history.Snapshot) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	if m.recs == nil {
		m.recs = make(map[string][]history.Record)
	}
	m.recs[key] = append(m.recs[key], history.Record{Timestamp: snap.Taken, Snapshot: snap})
	return nil
}

func (m *memSnapshots) ListSnapshots(_ context.Context, key string) ([]history.Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.recs[key], nil
}

func wait(t *testing.T, ch <-chan error) error {
	t.Helper()
	select {
	case err, ok := <-ch:
		if !ok {
			t.Fatal("result channel closed without a value")
		}
		if _, open := <-ch; open {
			t.Error("result channel yielded a second value")
		}
		return err
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for CommitHistory")
		return nil
	}
}

func TestEngine_Open(t *testing.T) {
	src := newBuffer(t, 6, 4)
	src.Fill(pixel.Green)
	store := &memPixels{files: map[string]*pixel.Buffer{"a.png": src}}
	surf := &recordingSurface{w: 6, h: 4}

	e := newEngine(t, newBuffer(t, 2, 2), WithPixelStore(store), WithSurface(surf))
	_ = e.SelectAll()
	_ = e.FillSelection(pixel.Red)

	if err := e.Open(context.Background(), "a.png"); err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if e.Path() != "a.png" {
		t.Errorf("Path() = %q, want a.png", e.Path())
	}
	if got := e.Buffer().Bounds(); got != image.Rect(0, 0, 6, 4) {
		t.Errorf("Buffer().Bounds() = %v", got)
	}
	if got := e.Buffer().GetPixel(5, 3); got != pixel.Green {
		t.Errorf("GetPixel(5, 3) = %v, want green", got)
	}
	if e.Selection() != nil {
		t.Error("Selection() != nil after Open")
	}
	if got := e.History().Len(); got != 1 {
		t.Errorf("History().Len() = %d, want 1 baseline", got)
	}
	if e.Undo() {
		t.Error("Undo() = true right after Open")
	}
	if last := surf.rects[len(surf.rects)-1]; last != image.Rect(0, 0, 6, 4) {
		t.Errorf("last blit = %v, want full buffer", last)
	}
}

func TestEngine_OpenErrors(t *testing.T) {
	e := newEngine(t, nil)
	if err := e.Open(context.Background(), "a.png"); !errors.Is(err, ErrNoStore) {
		t.Errorf("Open() without store error = %v, want ErrNoStore", err)
	}

	e = newEngine(t, nil, WithPixelStore(&memPixels{}))
	err := e.Open(context.Background(), "missing.png")
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Open(missing) error = %v, want fs.ErrNotExist", err)
	}
	if e.Path() != "" || e.Buffer() != nil {
		t.Error("failed Open changed engine state")
	}
}

func TestEngine_Save(t *testing.T) {
	store := &memPixels{}
	sched := &ManualScheduler{}
	e := newEngine(t, newBuffer(t, 4, 4), WithPixelStore(store), WithScheduler(sched))

	if err := e.Save(context.Background()); !errors.Is(err, ErrNoPath) {
		t.Errorf("Save() without path error = %v, want ErrNoPath", err)
	}

	_ = e.QueueOperation(pencil(1, 1, 1))
	if err := e.SaveAs(context.Background(), "out.png"); err != nil {
		t.Fatalf("SaveAs() error = %v", err)
	}
	if got := store.files["out.png"].GetPixel(1, 1); got != pixel.Red {
		t.Errorf("saved pixel = %v, want red (pending ops flushed)", got)
	}
	if e.Path() != "out.png" {
		t.Errorf("Path() = %q, want out.png", e.Path())
	}

	store.saveErr = fs.ErrPermission
	if err := e.Save(context.Background()); !errors.Is(err, fs.ErrPermission) {
		t.Errorf("Save() error = %v, want fs.ErrPermission", err)
	}

	if err := newEngine(t, nil, WithPixelStore(store)).SaveAs(context.Background(), "x.png"); !errors.Is(err, ErrNotReady) {
		t.Errorf("SaveAs() without buffer error = %v, want ErrNotReady", err)
	}
	if err := newEngine(t, newBuffer(t, 1, 1)).SaveAs(context.Background(), "x.png"); !errors.Is(err, ErrNoStore) {
		t.Errorf("SaveAs() without store error = %v, want ErrNoStore", err)
	}
}

func TestEngine_SaveAsResetsHistoryOnNewPath(t *testing.T) {
	store := &memPixels{}
	buf := newBuffer(t, 4, 4)
	e := newEngine(t, buf, WithPixelStore(store), WithPath("a.png"))

	_ = e.BeginStroke(Pencil{}, pixel.Red, 1)
	_ = e.StrokeTo(1, 1)
	e.EndStroke()

	if err := e.SaveAs(context.Background(), "a.png"); err != nil {
		t.Fatalf("SaveAs(same path) error = %v", err)
	}
	if got := e.History().Len(); got != 2 {
		t.Errorf("History().Len() after saving in place = %d, want 2", got)
	}

	if err := e.SaveAs(context.Background(), "b.png"); err != nil {
		t.Fatalf("SaveAs(new path) error = %v", err)
	}
	if got := e.History().Len(); got != 0 {
		t.Errorf("History().Len() after SaveAs to a new path = %d, want 0", got)
	}
	if e.Undo() {
		t.Error("Undo() = true across a path change")
	}
	if got := buf.GetPixel(1, 1); got != pixel.Red {
		t.Errorf("GetPixel(1, 1) = %v, want red kept", got)
	}
}

func TestEngine_CommitHistory(t *testing.T) {
	snaps := &memSnapshots{}
	buf := newBuffer(t, 3, 3)
	e := newEngine(t, buf, WithSnapshotStore(snaps), WithPath("img.png"))

	buf.Fill(pixel.Blue)
	ch := e.CommitHistory(context.Background())
	// Pixels are copied before CommitHistory returns.
	buf.Fill(pixel.Red)
	if err := wait(t, ch); err != nil {
		t.Fatalf("CommitHistory() error = %v", err)
	}

	recs, err := e.SavedHistory(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 1 {
		t.Fatalf("SavedHistory() = %d records, want 1", len(recs))
	}
	got, err := recs[0].Snapshot.Buffer()
	if err != nil {
		t.Fatal(err)
	}
	if c := got.GetPixel(0, 0); c != pixel.Blue {
		t.Errorf("stored pixel = %v, want blue", c)
	}

	snaps.err = errors.New("disk full")
	if err := wait(t, e.CommitHistory(context.Background())); !errors.Is(err, snaps.err) {
		t.Errorf("CommitHistory() error = %v, want wrapped disk full", err)
	}
}

func TestEngine_CommitHistoryErrors(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name string
		e    *Engine
		want error
	}{
		{"no store", newEngine(t, newBuffer(t, 1, 1), WithPath("a")), ErrNoStore},
		{"no buffer", newEngine(t, nil, WithSnapshotStore(&memSnapshots{}), WithPath("a")), ErrNotReady},
		{"no path", newEngine(t, newBuffer(t, 1, 1), WithSnapshotStore(&memSnapshots{})), ErrNoPath},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := wait(t, tt.e.CommitHistory(ctx)); !errors.Is(err, tt.want) {
				t.Errorf("CommitHistory() error = %v, want %v", err, tt.want)
			}
		})
	}

	if _, err := newEngine(t, nil).SavedHistory(ctx); !errors.Is(err, ErrNoStore) {
		t.Errorf("SavedHistory() error = %v, want ErrNoStore", err)
	}
}

func TestEngine_CommitHistoryDuringFlush(t *testing.T) {
	surf := &recordingSurface{w: 4, h: 4}
	e := newEngine(t, newBuffer(t, 4, 4),
		WithSurface(surf), WithSnapshotStore(&memSnapshots{}), WithPath("a.png"))

	var got error
	surf.onBlit = func() {
		got = wait(t, e.CommitHistory(context.Background()))
	}
	_ = e.QueueOperation(pencil(1, 1, 1))
	if !errors.Is(got, ErrBusy) {
		t.Errorf("CommitHistory() during flush error = %v, want ErrBusy", got)
	}
}

func TestEngine_Resize(t *testing.T) {
	e := newEngine(t, newBuffer(t, 4, 4))
	_ = e.SelectRect(0, 0, 1, 1)
	_ = e.DeleteSelection()
	e.SetSelection(selection.NewMask(4, 4))

	if err := e.Resize(8, 2); err != nil {
		t.Fatalf("Resize() error = %v", err)
	}
	if got := e.Buffer().Bounds(); got != image.Rect(0, 0, 8, 2) {
		t.Errorf("Bounds() = %v, want 8x2", got)
	}
	if e.Selection() != nil || e.History().Len() != 0 {
		t.Errorf("Resize kept selection %v or history %d", e.Selection(), e.History().Len())
	}
	if err := e.Resize(0, 2); !errors.Is(err, pixel.ErrInvalidDimensions) {
		t.Errorf("Resize(0, 2) error = %v, want ErrInvalidDimensions", err)
	}
	if got := e.Buffer().Width(); got != 8 {
		t.Errorf("failed Resize changed width to %d", got)
	}
}
