// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package watch reports external modifications of the image being edited.
//
// The watcher observes the directory holding the file rather than the file
// itself, so editors and tools that save by writing a temporary file and
// renaming it over the original are detected too.
package watch

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/gogpu/rasteredit"
)

// DefaultDebounce is the default quiet period before a change is reported.
const DefaultDebounce = 250 * time.Millisecond

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce sets the quiet period. Values <= 0 select DefaultDebounce.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		if d <= 0 {
			d = DefaultDebounce
		}
		w.debounce = d
	}
}

// WithErrorHandler sets the callback for watch errors.
func WithErrorHandler(fn func(error)) Option {
	return func(w *Watcher) {
		w.onError = fn
	}
}

// WithLogger sets the logger. By default the watcher logs through
// rasteredit.Logger.
func WithLogger(l *slog.Logger) Option {
	return func(w *Watcher) {
		w.log = l
	}
}

// Watcher calls a function when one file changes on disk.
//
// The callback runs on the watcher's goroutine; hosts hand the event to
// their engine goroutine before touching the engine.
type Watcher struct {
	watcher   *fsnotify.Watcher
	path      string
	debounce  time.Duration
	onChange  func(path string)
	onError   func(error)
	log       *slog.Logger
	stopCh    chan struct{}
	stoppedCh chan struct{}

	mu          sync.Mutex
	running     bool
	stopped     bool
	ignoreUntil time.Time
}

// New creates a watcher for path. onChange is called with path once the
// file has been quiet for the debounce period after a write, create or
// rename.
func New(path string, onChange func(path string), opts ...Option) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("watch: resolve %s: %w", path, err)
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch: create watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		_ = fw.Close()
		return nil, fmt.Errorf("watch: add %s: %w", filepath.Dir(abs), err)
	}

	w := &Watcher{
		watcher:   fw,
		path:      abs,
		debounce:  DefaultDebounce,
		onChange:  onChange,
		stopCh:    make(chan struct{}),
		stoppedCh: make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string {
	return w.path
}

// Start begins watching in a goroutine. Start after Stop does nothing.
func (w *Watcher) Start() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.running || w.stopped {
		return
	}
	w.running = true
	go w.loop()
}

// Stop stops the watcher and waits for its goroutine to exit.
// Stop is idempotent.
func (w *Watcher) Stop() {
	w.mu.Lock()
	if w.stopped {
		w.mu.Unlock()
		return
	}
	w.stopped = true
	running := w.running
	w.mu.Unlock()

	close(w.stopCh)
	if running {
		<-w.stoppedCh
		return
	}
	_ = w.watcher.Close()
}

// Suppress ignores changes for the next d, plus the debounce period.
// Call it before saving the file yourself.
func (w *Watcher) Suppress(d time.Duration) {
	w.mu.Lock()
	w.ignoreUntil = time.Now().Add(d + w.debounce)
	w.mu.Unlock()
}

func (w *Watcher) logger() *slog.Logger {
	if w.log != nil {
		return w.log
	}
	return rasteredit.Logger()
}

func (w *Watcher) suppressed() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return time.Now().Before(w.ignoreUntil)
}

// loop is the event loop with debouncing.
func (w *Watcher) loop() {
	defer close(w.stoppedCh)
	defer func() { _ = w.watcher.Close() }()

	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-w.stopCh:
			if timer != nil {
				timer.Stop()
			}
			return

		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if abs, _ := filepath.Abs(ev.Name); abs != w.path {
				continue
			}
			// Write/create/rename covers in-place writes and atomic saves.
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}

			if timer != nil {
				timer.Stop()
			}
			timer = time.NewTimer(w.debounce)
			fire = timer.C

		case <-fire:
			timer, fire = nil, nil
			if w.suppressed() {
				w.logger().Debug("watch: change suppressed", "path", w.path)
				continue
			}
			w.logger().Info("watch: file changed", "path", w.path)
			if w.onChange != nil {
				w.onChange(w.path)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger().Warn("watch: error", "path", w.path, "err", err)
			if w.onError != nil {
				w.onError(err)
			}
		}
	}
}
