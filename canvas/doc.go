// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package canvas records canvas-style drawing programs and replays them
// onto real drawing surfaces.
//
// # Recording
//
// A [Buffer] is a write-only rendering context. While writable it accepts
// commands through typed methods mirroring the HTML canvas API (MoveTo,
// Arc, SetFillStyle, ...) or through [Buffer.Record]. Every command is
// checked against a fixed argument schema when it is recorded, so a broken
// program fails at the call that broke it rather than during replay.
//
//	buf := canvas.NewBuffer()
//	buf.SetWritable(true)
//	buf.SetFillStyle("tomato")
//	buf.BeginPath()
//	buf.Arc(50, 50, 40, 0, 2*math.Pi, false)
//	buf.Clip()
//	buf.Fill()
//	buf.PaintSuper()
//	buf.SetStrokeStyle("black")
//	buf.StrokeRect(0, 0, 100, 100)
//	buf.SetWritable(false)
//	if err := buf.Err(); err != nil {
//	    // a typed call was invalid
//	}
//
// # Replay
//
// [Buffer.Replay] walks the program once. Commands before the split marker
// recorded by PaintSuper go to the lower surface, the rest to the upper
// surface. Drawing state (transforms, styles, save/restore) recorded before
// the split is applied to the upper surface again when replay switches.
//
// A clip recorded after beginPath is turned into SVG path data (see
// [PathData]) and handed to the [ClipTarget] as a reusable clip-path
// resource. The clip in effect at the split, following save/restore
// scoping, is written onto the target.
//
// # Command kinds
//
// Kinds fall into three groups with different replay behavior:
//
//   - state kinds (save/restore, transforms, line dash and all properties)
//   - property kinds, assigned to a named surface attribute
//   - structural kinds: beginPath, clip and the split marker
//
// Buffers are not safe for concurrent use.
package canvas
