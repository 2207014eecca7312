// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package history implements the bounded undo/redo stack used by the
// drawing engine.
//
// Stack is a linear list of snapshots with a cursor. Pushing after an undo
// discards the redo branch. When the list exceeds its depth the oldest
// snapshot is dropped, so depth bounds memory rather than how far back the
// user perceives undo can go.
package history

// DefaultDepth is the default maximum number of snapshots retained.
const DefaultDepth = 50

// Stack is a bounded undo/redo history of snapshots.
// The zero value is not usable; create stacks with NewStack.
//
// Stack is not safe for concurrent use.
type Stack struct {
	entries []Snapshot
	cursor  int // index of the current state; -1 when empty
	depth   int
}

// NewStack creates an empty stack retaining at most depth snapshots.
// If depth <= 0, DefaultDepth is used.
func NewStack(depth int) *Stack {
	if depth <= 0 {
		depth = DefaultDepth
	}
	return &Stack{cursor: -1, depth: depth}
}

// Push records a snapshot as the new current state.
// Entries after the cursor are discarded. If the stack then exceeds its
// depth, the oldest entry is dropped and the cursor keeps pointing at the
// newest entry.
func (s *Stack) Push(snap Snapshot) {
	// Release references held by the discarded redo branch.
	for i := s.cursor + 1; i < len(s.entries); i++ {
		s.entries[i] = Snapshot{}
	}
	s.entries = append(s.entries[:s.cursor+1], snap)

	if len(s.entries) > s.depth {
		s.entries[0] = Snapshot{}
		s.entries = s.entries[1:]
	}
	s.cursor = len(s.entries) - 1
}

// Undo moves the cursor back by one and returns the snapshot to restore.
// Returns false, leaving the stack unchanged, at the oldest entry.
func (s *Stack) Undo() (Snapshot, bool) {
	if s.cursor <= 0 {
		return Snapshot{}, false
	}
	s.cursor--
	return s.entries[s.cursor], true
}

// Redo moves the cursor forward by one and returns the snapshot to restore.
// Returns false, leaving the stack unchanged, at the newest entry.
func (s *Stack) Redo() (Snapshot, bool) {
	if s.cursor >= len(s.entries)-1 {
		return Snapshot{}, false
	}
	s.cursor++
	return s.entries[s.cursor], true
}

// Current returns the snapshot at the cursor.
func (s *Stack) Current() (Snapshot, bool) {
	if s.cursor < 0 {
		return Snapshot{}, false
	}
	return s.entries[s.cursor], true
}

// CanUndo reports whether Undo would move the cursor.
func (s *Stack) CanUndo() bool {
	return s.cursor > 0
}

// CanRedo reports whether Redo would move the cursor.
func (s *Stack) CanRedo() bool {
	return s.cursor < len(s.entries)-1
}

// Len returns the number of retained snapshots.
func (s *Stack) Len() int {
	return len(s.entries)
}

// Cursor returns the index of the current state, or -1 when empty.
func (s *Stack) Cursor() int {
	return s.cursor
}

// Depth returns the maximum number of retained snapshots.
func (s *Stack) Depth() int {
	return s.depth
}

// Reset drops every snapshot.
func (s *Stack) Reset() {
	clear(s.entries)
	s.entries = s.entries[:0]
	s.cursor = -1
}
