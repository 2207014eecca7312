// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package rasteredit is a CPU raster editing engine for resource-pack
// textures.
//
// # Overview
//
// An Engine owns one RGBA pixel buffer and lets a user paint, erase and
// select regions of it with live feedback. Pointer samples become DrawOps
// that are queued and coalesced into at most one flush per rendering tick.
// A flush composites every queued op, unions the touched pixels into a
// dirty region and blits only that rectangle to the attached surface.
//
// # Quick Start
//
//	buf, _ := pixel.New(16, 16)
//	sched := &rasteredit.ManualScheduler{}
//	eng, _ := rasteredit.New(buf,
//	    rasteredit.WithScheduler(sched),
//	    rasteredit.WithSurface(surface.NewImageSurface(16, 16)),
//	)
//
//	eng.BeginStroke(rasteredit.Pencil{}, pixel.Red, 3)
//	eng.StrokeTo(2, 8)
//	eng.StrokeTo(13, 8)
//	sched.Tick() // one flush for every queued op
//	eng.EndStroke()
//
//	eng.Undo()
//
// # Tools
//
// Tool is a closed set: Brush paints a soft round stamp, Pencil a hard
// square and Eraser clears alpha in a square. Stamps are computed once and
// shared through a stamp.Cache injected with WithStampCache.
//
// # Selection
//
// At most one selection.Mask is active. Every pixel write is gated by it;
// a nil mask means no restriction. Builders (SelectRect, SelectMagicWand,
// SelectPolygon) replace the mask as a whole.
//
// # History
//
// Each completed stroke or selection command pushes one snapshot onto a
// bounded undo stack. Opening an image resets the stack to a single
// baseline. CommitHistory persists the current state through a
// SnapshotStore without blocking the caller.
//
// # Coordinate System
//
// Buffer coordinates: origin (0,0) at the top-left pixel, X increases right,
// Y increases down. A DrawOp at (x, y) covers the pixel floor(x), floor(y).
//
// # Concurrency
//
// An Engine is owned by a single goroutine. Only CommitHistory leaves that
// goroutine, and it works on a private copy of the pixels.
//
// # Commands
//
// cmd/pixedit is an editor window built on ebiten; cmd/pixhist lists and
// exports the snapshots it records.
package rasteredit
