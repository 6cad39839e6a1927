// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package htmldoc is a small document host for the paint pipeline: it
// parses an HTML document, cascades CSS onto its elements and keeps the
// surface nodes and clip-path resources that the layer engine asks for.
//
// Elements are absolutely positioned. left and top place an element
// relative to its parent's content box; width and height give its padding
// box, as clientWidth and clientHeight do; border-width and padding take
// one to four lengths. Lengths are plain numbers or px values.
//
// A Document implements layer.Host. Scaffold inserts one <canvas> node per
// surface into the element: lower surfaces before its children, upper
// surfaces after them. Render writes the document with those nodes.
package htmldoc
