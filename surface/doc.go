// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package surface provides the blit targets that receive edited pixels.
//
// A Surface accepts sub-rectangles of a straight-alpha RGBA buffer. The
// drawing engine calls Blit once per flush with the dirty rectangle, so a
// surface only ever copies the pixels that changed.
//
// # Surface Types
//
//   - ImageSurface: copies into an *image.RGBA (premultiplied) using
//     golang.org/x/image/draw
//   - TextureSurface: uploads into a GPU texture through
//     gpucontext.TextureRegionUpdater, packing rows densely and converting
//     to the texture's channel order
//
// # Registry
//
// Hosts pick a backend by name, or let Open choose the highest-priority
// backend that accepts the options:
//
//	s, err := surface.Open("", surface.Options{
//	    Width: 64, Height: 64, Updater: tex,
//	})
//
// The built-in "texture" backend needs Options.Updater; without one,
// Open falls back to "image".
package surface
