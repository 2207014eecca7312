// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package imageio

import (
	"context"
	"path/filepath"

	"github.com/gogpu/rasteredit/pixel"
)

// FileStore loads and saves pixel buffers as image files.
// Relative paths are resolved against Root when it is set.
//
// FileStore is safe for concurrent use.
type FileStore struct {
	Root string
}

// NewFileStore creates a store rooted at root. An empty root uses paths
// as given.
func NewFileStore(root string) *FileStore {
	return &FileStore{Root: root}
}

// LoadPixels reads the image at path.
func (s *FileStore) LoadPixels(ctx context.Context, path string) (*pixel.Buffer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return Load(s.resolve(path))
}

// SavePixels writes buf to path in the format named by its extension.
func (s *FileStore) SavePixels(ctx context.Context, path string, buf *pixel.Buffer) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return Save(s.resolve(path), buf)
}

func (s *FileStore) resolve(path string) string {
	if s.Root == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(s.Root, path)
}
