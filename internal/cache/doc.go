// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package cache provides a generic, bounded, insertion-ordered cache.
//
// # FIFO[K, V]
//
// FIFO evicts the entry that was inserted first once capacity is exceeded.
// Hits do not refresh an entry's position: the first key ever inserted is
// the first key evicted, regardless of how recently it was read.
//
//	c := cache.NewFIFO[string, int](500)
//	c.Set("key", 42)
//	value, ok := c.Get("key")
//
// # Thread Safety
//
// FIFO is safe for concurrent use.
// It should not be copied after creation (it contains a mutex).
package cache
