// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package pipeline schedules repaint work.
//
// Elements are invalidated at a Level. Invalidations are batched: the
// first one arms a single flush on a cooperative tick Queue, and every
// invalidation before that flush runs only raises levels. A flush first
// re-measures every paintable element; if a resize changed what is
// pending it re-arms instead of painting, so nothing is painted against a
// stale measurement. Otherwise it visits each pending element once, in the
// order the elements were first invalidated, doing the work of its level
// and everything below it:
//
//	StyleInvalid   style processing, then paint
//	LayoutInvalid  paint
//	PaintInvalid   paint
//
// Microtasks is a Queue that runs tasks in FIFO order until it is empty,
// which models one turn of an event loop.
package pipeline
