// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package compose flattens a painted document into one image, the way a
// browser stacks an element's paint surfaces around its own rendering.
//
// For each element, in document order, a Frame draws the element's lower
// surfaces, then its native box (the background-color, clipped by the
// clip path its background layer applied), then its upper surfaces.
// Elements with display: none are skipped together with their children.
// translate(), translateX() and translateY() transforms move an element
// and its children.
package compose
