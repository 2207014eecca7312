// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package cli holds the pieces shared by the rasteredit commands.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/term"
)

// ParseLevel parses a log level name: debug, info, warn or error.
func ParseLevel(name string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.ToUpper(name))); err != nil {
		return 0, fmt.Errorf("cli: log level %q: %w", name, err)
	}
	return l, nil
}

// NewLogger returns a logger writing to w at level.
//
// Output is text when w is a terminal and JSON otherwise, unless
// forceJSON is set.
func NewLogger(w io.Writer, level slog.Level, forceJSON bool) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	if !forceJSON && IsTerminal(w) {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

// IsTerminal reports whether w is a file attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
