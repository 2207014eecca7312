// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package stamp

import (
	"github.com/gogpu/rasteredit/internal/cache"
	"github.com/gogpu/rasteredit/pixel"
)

// DefaultCapacity is the default number of cached stamps.
const DefaultCapacity = 500

// Stats holds cache hit, miss and eviction counters.
type Stats = cache.Stats

// key identifies a stamp by its exact parameters.
type key struct {
	kind       Kind
	size       float64
	r, g, b, a uint8
}

// Cache holds precomputed stamps keyed by (kind, size, color).
//
// Eviction is by insertion order: once the cache is full the first stamp
// ever inserted is dropped, regardless of how recently it was used.
// Cache is safe for concurrent use; create one per application and inject
// it into every engine that should share it.
type Cache struct {
	entries *cache.FIFO[key, *Stamp]
}

// NewCache creates a stamp cache holding at most capacity stamps.
// If capacity <= 0, DefaultCapacity is used.
func NewCache(capacity int) *Cache {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Cache{entries: cache.NewFIFO[key, *Stamp](capacity)}
}

// Brush returns the soft round stamp for size and c, computing it on a miss.
func (c *Cache) Brush(size float64, col pixel.Color) *Stamp {
	k := key{kind: KindBrush, size: size, r: col.R, g: col.G, b: col.B, a: col.A}
	return c.entries.GetOrCreate(k, func() *Stamp { return NewBrush(size, col) })
}

// Pencil returns the flat square stamp for size and c, computing it on a miss.
func (c *Cache) Pencil(size float64, col pixel.Color) *Stamp {
	k := key{kind: KindPencil, size: size, r: col.R, g: col.G, b: col.B, a: col.A}
	return c.entries.GetOrCreate(k, func() *Stamp { return NewPencil(size, col) })
}

// Len returns the number of cached stamps.
func (c *Cache) Len() int {
	return c.entries.Len()
}

// Stats returns hit, miss and eviction counters.
func (c *Cache) Stats() Stats {
	return c.entries.Stats()
}

// Clear drops every cached stamp.
func (c *Cache) Clear() {
	c.entries.Clear()
}
