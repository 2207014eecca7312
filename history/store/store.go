// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package store persists editing history snapshots in SQLite.
//
// Snapshots are keyed by image path and stored PNG-encoded. Each key keeps
// at most MaxPerKey snapshots; appending beyond that trims the oldest.
// A snapshot identical to the newest one for its key (same size, same
// BLAKE2b digest of the pixels) is not stored twice.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"golang.org/x/crypto/blake2b"
	_ "modernc.org/sqlite"

	"github.com/gogpu/rasteredit"
	"github.com/gogpu/rasteredit/history"
	"github.com/gogpu/rasteredit/imageio"
)

// DefaultMaxPerKey is the default number of snapshots kept per key.
const DefaultMaxPerKey = 30

// ErrClosed is returned by every method after Close.
var ErrClosed = errors.New("store: closed")

// schemaVersion is bumped when the schema changes incompatibly.
const schemaVersion = 1

const schema = `
CREATE TABLE IF NOT EXISTS schema_version (
    version INTEGER PRIMARY KEY
);

CREATE TABLE IF NOT EXISTS snapshots (
    id     INTEGER PRIMARY KEY AUTOINCREMENT,
    key    TEXT    NOT NULL,           -- image path
    taken  INTEGER NOT NULL,           -- UnixNano
    width  INTEGER NOT NULL,
    height INTEGER NOT NULL,
    digest BLOB    NOT NULL,           -- BLAKE2b-256 of the RGBA bytes
    png    BLOB    NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_snapshots_key ON snapshots(key, id);
`

// Option configures a Store.
type Option func(*Store)

// WithMaxPerKey sets how many snapshots each key keeps.
// Values <= 0 select DefaultMaxPerKey.
func WithMaxPerKey(n int) Option {
	return func(s *Store) {
		if n <= 0 {
			n = DefaultMaxPerKey
		}
		s.maxPerKey = n
	}
}

// WithLogger sets the logger. By default the store logs through
// rasteredit.Logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) {
		s.log = l
	}
}

// Store is a SQLite-backed snapshot store.
// It implements rasteredit.SnapshotStore and is safe for concurrent use.
type Store struct {
	db        *sql.DB
	maxPerKey int
	log       *slog.Logger
	closed    atomic.Bool
}

// Open opens or creates the database at path.
func Open(path string, opts ...Option) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, fmt.Errorf("store: create directory: %w", err)
	}

	dsn := path +
		"?_pragma=journal_mode(WAL)" +
		"&_pragma=synchronous(NORMAL)" +
		"&_pragma=busy_timeout(5000)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("store: open database: %w", err)
	}
	// One connection serializes writers; snapshot commits are rare.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("store: connect: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("store: create schema: %w", err)
	}
	if _, err := db.Exec("INSERT OR IGNORE INTO schema_version (version) VALUES (?)", schemaVersion); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("store: record schema version: %w", err)
	}

	s := &Store{db: db, maxPerKey: DefaultMaxPerKey}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// MaxPerKey returns the number of snapshots kept per key.
func (s *Store) MaxPerKey() int {
	return s.maxPerKey
}

func (s *Store) logger() *slog.Logger {
	if s.log != nil {
		return s.log
	}
	return rasteredit.Logger()
}

// AppendSnapshot stores snap as the newest entry for key and trims the
// oldest entries beyond MaxPerKey.
func (s *Store) AppendSnapshot(ctx context.Context, key string, snap history.Snapshot) error {
	if s.closed.Load() {
		return ErrClosed
	}

	buf, err := snap.Buffer()
	if err != nil {
		return fmt.Errorf("store: append %s: %w", key, err)
	}
	digest := blake2b.Sum256(snap.Pix)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("store: begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var (
		lastDigest []byte
		lastW      int
		lastH      int
	)
	err = tx.QueryRowContext(ctx,
		"SELECT digest, width, height FROM snapshots WHERE key = ? ORDER BY id DESC LIMIT 1", key).
		Scan(&lastDigest, &lastW, &lastH)
	switch {
	case errors.Is(err, sql.ErrNoRows):
	case err != nil:
		return fmt.Errorf("store: query latest %s: %w", key, err)
	case lastW == snap.Width && lastH == snap.Height && string(lastDigest) == string(digest[:]):
		s.logger().Debug("store: snapshot unchanged", "key", key)
		return nil
	}

	png, err := imageio.EncodePNG(buf)
	if err != nil {
		return fmt.Errorf("store: append %s: %w", key, err)
	}
	taken := snap.Taken
	if taken.IsZero() {
		taken = time.Now()
	}

	if _, err := tx.ExecContext(ctx,
		"INSERT INTO snapshots (key, taken, width, height, digest, png) VALUES (?, ?, ?, ?, ?, ?)",
		key, taken.UnixNano(), snap.Width, snap.Height, digest[:], png); err != nil {
		return fmt.Errorf("store: insert %s: %w", key, err)
	}
	res, err := tx.ExecContext(ctx, `
		DELETE FROM snapshots WHERE key = ? AND id NOT IN (
			SELECT id FROM snapshots WHERE key = ? ORDER BY id DESC LIMIT ?
		)`, key, key, s.maxPerKey)
	if err != nil {
		return fmt.Errorf("store: trim %s: %w", key, err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("store: commit: %w", err)
	}

	trimmed, _ := res.RowsAffected()
	s.logger().Debug("store: snapshot appended", "key", key, "bytes", len(png), "trimmed", trimmed)
	return nil
}

// ListSnapshots returns the snapshots stored for key, oldest first.
func (s *Store) ListSnapshots(ctx context.Context, key string) ([]history.Record, error) {
	if s.closed.Load() {
		return nil, ErrClosed
	}

	rows, err := s.db.QueryContext(ctx,
		"SELECT taken, png FROM snapshots WHERE key = ? ORDER BY id ASC", key)
	if err != nil {
		return nil, fmt.Errorf("store: list %s: %w", key, err)
	}
	defer func() { _ = rows.Close() }()

	var recs []history.Record
	for rows.Next() {
		var (
			taken int64
			png   []byte
		)
		if err := rows.Scan(&taken, &png); err != nil {
			return nil, fmt.Errorf("store: scan %s: %w", key, err)
		}
		buf, err := imageio.DecodeBytes(png)
		if err != nil {
			return nil, fmt.Errorf("store: decode %s: %w", key, err)
		}
		ts := time.Unix(0, taken)
		recs = append(recs, history.Record{
			Timestamp: ts,
			Snapshot: history.Snapshot{
				Width:  buf.Width(),
				Height: buf.Height(),
				Pix:    buf.Data(),
				Taken:  ts,
			},
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("store: list %s: %w", key, err)
	}
	return recs, nil
}

// Latest returns the newest snapshot for key.
// The boolean is false when the key has no snapshots.
func (s *Store) Latest(ctx context.Context, key string) (history.Record, bool, error) {
	recs, err := s.ListSnapshots(ctx, key)
	if err != nil || len(recs) == 0 {
		return history.Record{}, false, err
	}
	return recs[len(recs)-1], true, nil
}

// Clear removes every snapshot stored for key.
func (s *Store) Clear(ctx context.Context, key string) error {
	if s.closed.Load() {
		return ErrClosed
	}
	if _, err := s.db.ExecContext(ctx, "DELETE FROM snapshots WHERE key = ?", key); err != nil {
		return fmt.Errorf("store: clear %s: %w", key, err)
	}
	s.logger().Info("store: history cleared", "key", key)
	return nil
}

// ClearAll removes every snapshot.
func (s *Store) ClearAll(ctx context.Context) error {
	if s.closed.Load() {
		return ErrClosed
	}
	if _, err := s.db.ExecContext(ctx, "DELETE FROM snapshots"); err != nil {
		return fmt.Errorf("store: clear all: %w", err)
	}
	s.logger().Info("store: all history cleared")
	return nil
}

// Close closes the database. Close is idempotent.
func (s *Store) Close() error {
	if s.closed.Swap(true) {
		return nil
	}
	return s.db.Close()
}
