// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package surface provides the drawing surfaces that canvas buffers are
// replayed onto.
//
// Backends are registered by name, following the database/sql driver
// pattern. Two are built in:
//
//   - "raster" draws into an RGBA image with gg
//   - "trace" records the operations it receives (see canvas.Trace)
//
// A Provider hands out surfaces by id for one backend, which is what the
// layer engine needs:
//
//	surfaces := surface.NewProvider("raster")
//	s, err := surfaces.Surface("p0", 200, 100)
//
// # Raster limitations
//
// gg has no blur filter, so shadows are drawn offset but unblurred. Only
// the "source-over" composite operation is supported. clearRect clears the
// bounding box of the transformed rectangle and ignores the clip.
//
// Text is drawn from glyph outlines, so it follows the transform and the
// clip, and strokeText strokes the outlines.
package surface
