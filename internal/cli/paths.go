// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package cli

import (
	"os"
	"path/filepath"
)

// HistoryFile is the name of the snapshot database inside the cache
// directory.
const HistoryFile = "history.db"

// DefaultHistoryPath returns the snapshot database shared by the commands:
// $XDG_CACHE_HOME/rasteredit/history.db or the platform equivalent.
// It falls back to the working directory when no cache directory is known.
func DefaultHistoryPath() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return HistoryFile
	}
	return filepath.Join(dir, "rasteredit", HistoryFile)
}
