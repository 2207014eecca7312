// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package cache

import "sync"

// FIFO is a generic thread-safe cache with insertion-order eviction.
// When the cache exceeds capacity, the oldest inserted entry is evicted.
//
// FIFO must not be copied after creation (has mutex).
type FIFO[K comparable, V any] struct {
	mu       sync.Mutex
	entries  map[K]V
	order    []K // insertion order; order[head] is the oldest live key
	head     int
	capacity int

	hits      uint64
	misses    uint64
	evictions uint64
}

// NewFIFO creates a new cache holding at most capacity entries.
// A capacity <= 0 means unlimited.
func NewFIFO[K comparable, V any](capacity int) *FIFO[K, V] {
	return &FIFO[K, V]{
		entries:  make(map[K]V),
		capacity: capacity,
	}
}

// Get retrieves a value from the cache.
// Returns (value, true) if found, (zero, false) otherwise.
// A hit does not change the entry's eviction order.
func (c *FIFO[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	v, ok := c.entries[key]
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return v, ok
}

// Set stores a value in the cache.
// Replacing an existing key keeps its original insertion position.
func (c *FIFO[K, V]) Set(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.insert(key, value)
}

// GetOrCreate returns the cached value or creates, stores and returns it.
// create is called under lock, so concurrent callers never build the same
// entry twice.
func (c *FIFO[K, V]) GetOrCreate(key K, create func() V) V {
	c.mu.Lock()
	defer c.mu.Unlock()

	if v, ok := c.entries[key]; ok {
		c.hits++
		return v
	}
	c.misses++

	v := create()
	c.insert(key, v)
	return v
}

// Contains reports whether key is cached without touching statistics.
func (c *FIFO[K, V]) Contains(key K) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	_, ok := c.entries[key]
	return ok
}

// Clear removes all entries from the cache. Statistics are kept.
func (c *FIFO[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[K]V)
	c.order = nil
	c.head = 0
}

// Len returns the number of entries in the cache.
func (c *FIFO[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.entries)
}

// Capacity returns the maximum number of entries.
func (c *FIFO[K, V]) Capacity() int {
	return c.capacity
}

// Stats returns cache statistics.
func (c *FIFO[K, V]) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := Stats{
		Len:       len(c.entries),
		Capacity:  c.capacity,
		Hits:      c.hits,
		Misses:    c.misses,
		Evictions: c.evictions,
	}
	if total := c.hits + c.misses; total > 0 {
		s.HitRate = float64(c.hits) / float64(total)
	}
	return s
}

// insert adds or replaces an entry and evicts while over capacity.
// Caller must hold c.mu.
func (c *FIFO[K, V]) insert(key K, value V) {
	if _, ok := c.entries[key]; ok {
		c.entries[key] = value
		return
	}

	c.entries[key] = value
	c.order = append(c.order, key)

	for c.capacity > 0 && len(c.entries) > c.capacity {
		oldest := c.order[c.head]
		var zero K
		c.order[c.head] = zero
		c.head++
		delete(c.entries, oldest)
		c.evictions++
	}

	// Compact the order slice once the dead prefix dominates.
	if c.head > 0 && c.head >= len(c.order)/2 {
		n := copy(c.order, c.order[c.head:])
		c.order = c.order[:n]
		c.head = 0
	}
}

// Stats holds cache statistics.
type Stats struct {
	// Len is the current number of entries.
	Len int
	// Capacity is the maximum number of entries (0 = unlimited).
	Capacity int
	// Hits is the number of lookups that found an entry.
	Hits uint64
	// Misses is the number of lookups that did not find an entry.
	Misses uint64
	// HitRate is the cache hit rate 0.0 to 1.0.
	HitRate float64
	// Evictions is the number of evicted entries.
	Evictions uint64
}
