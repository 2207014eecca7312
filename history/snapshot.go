// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package history

import (
	"time"

	"github.com/gogpu/rasteredit/pixel"
)

// Snapshot is an immutable full-resolution copy of a pixel buffer.
// The Pix slice is owned by the snapshot and must not be modified.
type Snapshot struct {
	Width  int
	Height int
	Pix    []uint8
	Taken  time.Time
}

// Capture copies the buffer's current bytes into a new snapshot.
func Capture(buf *pixel.Buffer) Snapshot {
	pix := make([]uint8, len(buf.Data()))
	copy(pix, buf.Data())
	return Snapshot{
		Width:  buf.Width(),
		Height: buf.Height(),
		Pix:    pix,
		Taken:  time.Now(),
	}
}

// Restore copies the snapshot bytes into buf.
// Returns pixel.ErrDataSize when the dimensions differ.
func (s Snapshot) Restore(buf *pixel.Buffer) error {
	if s.Width != buf.Width() || s.Height != buf.Height() {
		return pixel.ErrDataSize
	}
	return buf.CopyFrom(s.Pix)
}

// Buffer returns a new pixel buffer holding a copy of the snapshot.
func (s Snapshot) Buffer() (*pixel.Buffer, error) {
	pix := make([]uint8, len(s.Pix))
	copy(pix, s.Pix)
	return pixel.FromBytes(s.Width, s.Height, pix)
}

// Size returns the number of pixel bytes held by the snapshot.
func (s Snapshot) Size() int {
	return len(s.Pix)
}

// Record is a snapshot persisted by a history store.
type Record struct {
	Timestamp time.Time
	Snapshot  Snapshot
}
