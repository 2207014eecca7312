// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package store

import (
	"context"
	"fmt"
	"slices"
	"time"
)

// KeyStats summarizes the snapshots stored for one key.
type KeyStats struct {
	Count        int
	LastModified time.Time
	Size         int64 // encoded bytes
}

// Stats summarizes the whole store.
type Stats struct {
	MaxPerKey int
	Keys      map[string]KeyStats
	TotalSize int64
}

// Stats returns per-key counts, newest timestamps and encoded sizes.
func (s *Store) Stats(ctx context.Context) (Stats, error) {
	if s.closed.Load() {
		return Stats{}, ErrClosed
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT key, COUNT(*), MAX(taken), SUM(LENGTH(png))
		FROM snapshots GROUP BY key ORDER BY key`)
	if err != nil {
		return Stats{}, fmt.Errorf("store: stats: %w", err)
	}
	defer func() { _ = rows.Close() }()

	st := Stats{MaxPerKey: s.maxPerKey, Keys: make(map[string]KeyStats)}
	for rows.Next() {
		var (
			key   string
			ks    KeyStats
			taken int64
		)
		if err := rows.Scan(&key, &ks.Count, &taken, &ks.Size); err != nil {
			return Stats{}, fmt.Errorf("store: stats: %w", err)
		}
		ks.LastModified = time.Unix(0, taken)
		st.Keys[key] = ks
		st.TotalSize += ks.Size
	}
	if err := rows.Err(); err != nil {
		return Stats{}, fmt.Errorf("store: stats: %w", err)
	}
	return st, nil
}

// Keys returns every key with stored snapshots, sorted.
func (s *Store) Keys(ctx context.Context) ([]string, error) {
	st, err := s.Stats(ctx)
	if err != nil {
		return nil, err
	}
	keys := make([]string, 0, len(st.Keys))
	for k := range st.Keys {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys, nil
}
