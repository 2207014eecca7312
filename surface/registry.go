// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"cmp"
	"errors"
	"slices"
	"sync"

	"github.com/gogpu/gputypes"
)

// Backend describes one kind of surface a host can ask for by name.
type Backend struct {
	// Name is the unique identifier, e.g. "image" or "texture".
	Name string

	// Priority orders automatic selection (higher = preferred).
	Priority int

	// New creates a surface. It returns an error when opts lack something
	// the backend needs, letting automatic selection try the next one.
	New func(opts Options) (Surface, error)
}

// Registry maps backend names to factories. The zero value is empty and
// ready to use.
type Registry struct {
	mu       sync.RWMutex
	backends map[string]Backend
}

// Register adds b, replacing any backend of the same name.
func (r *Registry) Register(b Backend) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.backends == nil {
		r.backends = make(map[string]Backend)
	}
	r.backends[b.Name] = b
}

// Names returns the registered backend names, highest priority first.
// Equal priorities are ordered by name.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]Backend, 0, len(r.backends))
	for _, b := range r.backends {
		list = append(list, b)
	}
	slices.SortFunc(list, func(a, b Backend) int {
		if c := cmp.Compare(b.Priority, a.Priority); c != 0 {
			return c
		}
		return cmp.Compare(a.Name, b.Name)
	})

	names := make([]string, len(list))
	for i, b := range list {
		names[i] = b.Name
	}
	return names
}

// Open creates a surface with the named backend. An empty name tries
// every backend in priority order and returns the first that succeeds.
func (r *Registry) Open(name string, opts Options) (Surface, error) {
	if name != "" {
		r.mu.RLock()
		b, ok := r.backends[name]
		r.mu.RUnlock()
		if !ok {
			return nil, &UnknownBackendError{Name: name}
		}
		return b.New(opts)
	}

	var errs []error
	for _, n := range r.Names() {
		s, err := r.Open(n, opts)
		if err == nil {
			return s, nil
		}
		errs = append(errs, err)
	}
	if len(errs) == 0 {
		return nil, ErrNoBackend
	}
	return nil, errors.Join(errs...)
}

var defaultRegistry Registry

// Register adds b to the default registry.
func Register(b Backend) { defaultRegistry.Register(b) }

// Backends returns the default registry's backend names, highest
// priority first.
func Backends() []string { return defaultRegistry.Names() }

// Open creates a surface from the default registry.
// See Registry.Open.
func Open(name string, opts Options) (Surface, error) { return defaultRegistry.Open(name, opts) }

// ErrNoBackend is returned by Open when nothing is registered.
var ErrNoBackend = errors.New("surface: no backend registered")

// ErrNoUpdater is returned by the texture backend when Options.Updater is nil.
var ErrNoUpdater = errors.New("surface: texture backend needs an updater")

// UnknownBackendError reports a name that was never registered.
type UnknownBackendError struct {
	Name string
}

func (e *UnknownBackendError) Error() string {
	return "surface: unknown backend " + e.Name
}

func init() {
	Register(Backend{Name: "image", Priority: 10, New: func(opts Options) (Surface, error) {
		return NewImageSurface(opts.Width, opts.Height), nil
	}})
	Register(Backend{Name: "texture", Priority: 100, New: newTextureFromOptions})
}

func newTextureFromOptions(opts Options) (Surface, error) {
	if opts.Updater == nil {
		return nil, ErrNoUpdater
	}
	format := opts.Format
	if format == gputypes.TextureFormatUndefined {
		format = gputypes.TextureFormatRGBA8Unorm
	}
	return NewTextureSurface(opts.Updater, opts.Width, opts.Height,
		WithFormat(format), WithPremultiply(opts.Premultiply))
}
