// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package rasteredit

import "errors"

// Engine errors.
var (
	// ErrNotReady is returned when the engine has no buffer or the buffer
	// has zero size. The operation is dropped.
	ErrNotReady = errors.New("rasteredit: engine not ready")

	// ErrBusy is returned when history is committed while a flush is running.
	ErrBusy = errors.New("rasteredit: flush in progress")

	// ErrNoPath is returned by Save and CommitHistory when no image path is set.
	ErrNoPath = errors.New("rasteredit: no image path")

	// ErrNoStore is returned when a persistence operation has no store configured.
	ErrNoStore = errors.New("rasteredit: no store configured")
)
