// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package rasteredit

import "sync"

// FrameScheduler runs callbacks on the host's next rendering tick.
//
// RequestFrame may be called from the engine goroutine only; the callback
// must run on that same goroutine.
type FrameScheduler interface {
	RequestFrame(fn func())
}

// ManualScheduler records frame requests until Tick runs them.
// It drives headless hosts and tests; windowed hosts call Tick once per
// frame.
//
// ManualScheduler is safe for concurrent use.
type ManualScheduler struct {
	mu      sync.Mutex
	pending []func()
}

// RequestFrame implements FrameScheduler.
func (s *ManualScheduler) RequestFrame(fn func()) {
	s.mu.Lock()
	s.pending = append(s.pending, fn)
	s.mu.Unlock()
}

// Tick runs the callbacks requested before the call and returns how many
// ran. Callbacks requested while ticking wait for the next Tick.
func (s *ManualScheduler) Tick() int {
	s.mu.Lock()
	fns := s.pending
	s.pending = nil
	s.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
	return len(fns)
}

// Pending returns the number of callbacks waiting for the next Tick.
func (s *ManualScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

// ImmediateScheduler runs every callback synchronously inside RequestFrame.
type ImmediateScheduler struct{}

// RequestFrame implements FrameScheduler.
func (ImmediateScheduler) RequestFrame(fn func()) {
	fn()
}
