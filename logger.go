// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package rasteredit

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
// The Enabled method returns false so the caller skips message formatting
// entirely, making disabled logging effectively zero-cost.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// NopLogger returns a logger that silently discards all output.
// Sub-packages use it as their default.
func NopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger can be called concurrently with logging from any goroutine.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(NopLogger())
}

// SetLogger configures the logger used by every Engine.
// By default, rasteredit produces no log output. Call SetLogger to enable
// logging.
//
// SetLogger is safe for concurrent use: it stores the new logger atomically.
// Pass nil to disable logging (restore default silent behavior).
//
// Log levels used by rasteredit:
//   - [slog.LevelDebug]: flush statistics (ops applied, dirty rectangle)
//   - [slog.LevelInfo]: lifecycle events (open, save, history reset)
//   - [slog.LevelWarn]: recoverable issues (blit failure, mismatched mask)
//
// Example:
//
//	rasteredit.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = NopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger used by rasteredit.
//
// Logger is safe for concurrent use.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
