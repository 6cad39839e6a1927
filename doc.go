// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package paintlet lets an element's background and content be produced by
// a small drawing program instead of native rendering.
//
// # Overview
//
// A paint callback records canvas-style drawing commands into a write-only
// [canvas.Buffer]. The buffer is replayed onto two physical drawing
// surfaces: everything recorded before the split marker (PaintSuper) lands
// on the lower surface, painted below the element's own rendering, and
// everything after it lands on the upper surface. A clip path recorded
// before the split is written back onto the element so its native content
// is clipped to the drawn shape.
//
// The pieces, leaf to root:
//
//   - canvas: command kinds, argument schemas, recording, replay and
//     clip-path derivation
//   - layer: per-element background/content layers, measurement and paint
//   - pipeline: level-based invalidation scheduler with settle-then-flush
//     batching inside one cooperative tick
//
// Collaborators (style resolution, DOM scaffolding, drawing surfaces) are
// interfaces; the style, htmldoc, surface and compose packages provide
// concrete implementations built on gg.
//
// # Quick Start
//
//	doc, _ := htmldoc.Parse(strings.NewReader(page))
//	surfaces := surface.NewProvider("raster")
//	engine := layer.New(doc, surfaces)
//	queue := pipeline.NewMicrotasks()
//	sched := pipeline.NewScheduler(engine, queue)
//	engine.SetInvalidator(sched)
//
//	engine.RegisterPaint(doc.ByID("card"), layer.Background, func(ctx *canvas.Buffer) {
//	    ctx.SetFillStyle("#336699")
//	    ctx.FillRect(0, 0, ctx.Width(), ctx.Height())
//	})
//	_ = queue.Drain()
//
// # Logging
//
// Nothing is logged by default. Use [SetLogger] to route diagnostics to a
// [log/slog] logger.
package paintlet
