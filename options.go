// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package rasteredit

import (
	"image"

	"github.com/gogpu/rasteredit/history"
	"github.com/gogpu/rasteredit/selection"
	"github.com/gogpu/rasteredit/stamp"
	"github.com/gogpu/rasteredit/surface"
)

// Option configures an Engine during creation.
// Use functional options to customize Engine behavior.
//
// Example:
//
//	// Headless engine, flushes run synchronously
//	eng, err := rasteredit.New(buf)
//
//	// Windowed host: flush once per frame and blit to a texture
//	eng, err := rasteredit.New(buf,
//	    rasteredit.WithScheduler(sched),
//	    rasteredit.WithSurface(tex),
//	)
type Option func(*options)

// options holds optional configuration for Engine creation.
type options struct {
	scheduler    FrameScheduler
	surface      surface.Surface
	stamps       *stamp.Cache
	historyDepth int
	viewport     image.Rectangle
	pixels       PixelStore
	snapshots    SnapshotStore
	tolerance    int
	path         string
}

// defaultOptions returns the default engine options.
func defaultOptions() options {
	return options{
		scheduler:    ImmediateScheduler{},
		surface:      nil, // no blits
		stamps:       nil, // private cache created by New
		historyDepth: history.DefaultDepth,
		tolerance:    selection.DefaultTolerance,
	}
}

// WithScheduler sets the frame scheduler that runs flushes.
// The default ImmediateScheduler flushes synchronously on every queued op.
func WithScheduler(s FrameScheduler) Option {
	return func(o *options) {
		if s != nil {
			o.scheduler = s
		}
	}
}

// WithSurface sets the surface that receives dirty rectangles after each
// flush.
func WithSurface(s surface.Surface) Option {
	return func(o *options) {
		o.surface = s
	}
}

// WithStampCache shares a stamp cache between engines.
//
// Example:
//
//	stamps := stamp.NewCache(stamp.DefaultCapacity)
//	a, _ := rasteredit.New(bufA, rasteredit.WithStampCache(stamps))
//	b, _ := rasteredit.New(bufB, rasteredit.WithStampCache(stamps))
func WithStampCache(c *stamp.Cache) Option {
	return func(o *options) {
		o.stamps = c
	}
}

// WithHistoryDepth sets the maximum number of undo snapshots.
// Values <= 0 select history.DefaultDepth.
func WithHistoryDepth(depth int) Option {
	return func(o *options) {
		o.historyDepth = depth
	}
}

// WithViewport sets the visible part of the buffer. Ops farther than half
// their size outside it are dropped. An empty rectangle means the whole
// buffer.
func WithViewport(r image.Rectangle) Option {
	return func(o *options) {
		o.viewport = r.Canon()
	}
}

// WithPixelStore sets the store used by Open, Save and SaveAs.
func WithPixelStore(s PixelStore) Option {
	return func(o *options) {
		o.pixels = s
	}
}

// WithSnapshotStore sets the store used by CommitHistory.
func WithSnapshotStore(s SnapshotStore) Option {
	return func(o *options) {
		o.snapshots = s
	}
}

// WithTolerance sets the magic wand per-channel tolerance.
// Negative values select selection.DefaultTolerance.
func WithTolerance(t int) Option {
	return func(o *options) {
		if t < 0 {
			t = selection.DefaultTolerance
		}
		o.tolerance = t
	}
}

// WithPath associates the initial buffer with an image path, used as the
// key for Save and CommitHistory.
func WithPath(path string) Option {
	return func(o *options) {
		o.path = path
	}
}
