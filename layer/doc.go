// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package layer owns the per-element paint layers of a paint pipeline.
//
// An element gets a layer for each surface kind (Background, Content) that
// a paint callback is registered for. A layer owns one canvas.Buffer and two
// drawing-surface ids: the lower surface is composited below the element's
// native rendering and the upper surface above it. The Engine measures
// elements, detects resizes and re-runs paint callbacks when asked to, but
// it never decides when to paint; that is the job of the invalidation
// scheduler in package pipeline.
package layer
