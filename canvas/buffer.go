// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package canvas

import "fmt"

// Buffer is a write-only rendering context. A paint callback records
// commands into it while it is writable; the owner later replays them onto
// real surfaces.
//
// Typed methods such as MoveTo or SetLineWidth never return errors. The
// first failure is kept and reported by Err, and every later typed call is
// ignored until the buffer is made writable again. Record returns errors
// directly.
//
// A Buffer is not safe for concurrent use.
type Buffer struct {
	commands []Command
	writable bool
	split    bool
	err      error

	width, height float64
}

// NewBuffer returns an empty, non-writable buffer.
func NewBuffer() *Buffer {
	return &Buffer{commands: make([]Command, 0, 64)}
}

// SetWritable switches recording on or off. Entering writable mode clears
// all recorded commands, the split marker and any sticky error, so every
// paint re-records the program from scratch.
func (b *Buffer) SetWritable(w bool) {
	if w {
		clear(b.commands)
		b.commands = b.commands[:0]
		b.split = false
		b.err = nil
	}
	b.writable = w
}

// Writable reports whether commands may be recorded.
func (b *Buffer) Writable() bool {
	return b.writable
}

// SetDimensions sets the drawable size reported to the paint callback.
func (b *Buffer) SetDimensions(width, height float64) {
	b.width, b.height = width, height
}

// Width returns the drawable width.
func (b *Buffer) Width() float64 { return b.width }

// Height returns the drawable height.
func (b *Buffer) Height() float64 { return b.height }

// Len returns the number of recorded commands.
func (b *Buffer) Len() int { return len(b.commands) }

// Commands returns a copy of the recorded commands.
func (b *Buffer) Commands() []Command {
	out := make([]Command, len(b.commands))
	copy(out, b.commands)
	return out
}

// HasSplit reports whether PaintSuper was recorded.
func (b *Buffer) HasSplit() bool { return b.split }

// Err returns the first error raised by a typed recording method.
func (b *Buffer) Err() error { return b.err }

// Record validates args against the schema of k and appends the command.
func (b *Buffer) Record(k Kind, args ...any) error {
	if !b.writable {
		return fmt.Errorf("canvas: record %s on read-only buffer: %w", k, ErrInvalidState)
	}
	norm, err := validate(k, args)
	if err != nil {
		return err
	}
	if k == CmdPaintSuper {
		if b.split {
			return ErrDuplicateSplit
		}
		b.split = true
	}
	b.commands = append(b.commands, Command{Kind: k, Args: norm})
	return nil
}

func (b *Buffer) push(k Kind, args ...any) {
	if b.err != nil {
		return
	}
	if err := b.Record(k, args...); err != nil {
		b.err = err
	}
}

// Save pushes the drawing state.
func (b *Buffer) Save() { b.push(CmdSave) }

// Restore pops the drawing state.
func (b *Buffer) Restore() { b.push(CmdRestore) }

// Scale scales the current transform.
func (b *Buffer) Scale(x, y float64) { b.push(CmdScale, x, y) }

// Rotate rotates the current transform by angle radians, clockwise on screen.
func (b *Buffer) Rotate(angle float64) { b.push(CmdRotate, angle) }

// Translate moves the origin.
func (b *Buffer) Translate(x, y float64) { b.push(CmdTranslate, x, y) }

// Transform multiplies the current transform by
//
//	| a c e |
//	| b d f |
func (b *Buffer) Transform(a, bb, c, d, e, f float64) {
	b.push(CmdTransform, a, bb, c, d, e, f)
}

// SetTransform replaces the current transform.
func (b *Buffer) SetTransform(a, bb, c, d, e, f float64) {
	b.push(CmdSetTransform, a, bb, c, d, e, f)
}

// ResetTransform restores the identity transform.
func (b *Buffer) ResetTransform() { b.push(CmdResetTransform) }

func (b *Buffer) ClearRect(x, y, w, h float64)  { b.push(CmdClearRect, x, y, w, h) }
func (b *Buffer) FillRect(x, y, w, h float64)   { b.push(CmdFillRect, x, y, w, h) }
func (b *Buffer) StrokeRect(x, y, w, h float64) { b.push(CmdStrokeRect, x, y, w, h) }

func (b *Buffer) BeginPath()          { b.push(CmdBeginPath) }
func (b *Buffer) ClosePath()          { b.push(CmdClosePath) }
func (b *Buffer) MoveTo(x, y float64) { b.push(CmdMoveTo, x, y) }
func (b *Buffer) LineTo(x, y float64) { b.push(CmdLineTo, x, y) }

// Rect adds a closed rectangular subpath.
func (b *Buffer) Rect(x, y, w, h float64) { b.push(CmdRect, x, y, w, h) }

func (b *Buffer) QuadraticCurveTo(cpx, cpy, x, y float64) {
	b.push(CmdQuadraticCurveTo, cpx, cpy, x, y)
}

func (b *Buffer) BezierCurveTo(cp1x, cp1y, cp2x, cp2y, x, y float64) {
	b.push(CmdBezierCurveTo, cp1x, cp1y, cp2x, cp2y, x, y)
}

// ArcTo adds an arc tangent to the lines (current point, p1) and (p1, p2).
// It cannot appear inside a clip region.
func (b *Buffer) ArcTo(x1, y1, x2, y2, radius float64) {
	b.push(CmdArcTo, x1, y1, x2, y2, radius)
}

// Arc adds a circular arc centered at (x, y). Angles are in radians,
// measured clockwise on screen from the positive x axis.
func (b *Buffer) Arc(x, y, radius, startAngle, endAngle float64, anticlockwise bool) {
	b.push(CmdArc, x, y, radius, startAngle, endAngle, anticlockwise)
}

func (b *Buffer) Fill()   { b.push(CmdFill) }
func (b *Buffer) Stroke() { b.push(CmdStroke) }
func (b *Buffer) Clip()   { b.push(CmdClip) }

func (b *Buffer) FillText(text string, x, y float64)   { b.push(CmdFillText, text, x, y) }
func (b *Buffer) StrokeText(text string, x, y float64) { b.push(CmdStrokeText, text, x, y) }

// FillTextMax fills text, condensing it horizontally to fit maxWidth.
func (b *Buffer) FillTextMax(text string, x, y, maxWidth float64) {
	b.push(CmdFillText, text, x, y, maxWidth)
}

// StrokeTextMax strokes text, condensing it horizontally to fit maxWidth.
func (b *Buffer) StrokeTextMax(text string, x, y, maxWidth float64) {
	b.push(CmdStrokeText, text, x, y, maxWidth)
}

// SetLineDash sets the dash pattern. An empty pattern draws solid lines.
func (b *Buffer) SetLineDash(segments ...float64) {
	if segments == nil {
		segments = []float64{}
	}
	b.push(CmdLineDash, segments)
}

func (b *Buffer) SetGlobalAlpha(alpha float64)          { b.push(CmdAlpha, alpha) }
func (b *Buffer) SetGlobalCompositeOperation(op string) { b.push(CmdCompositeOperation, op) }
func (b *Buffer) SetShadowOffsetX(v float64)            { b.push(CmdShadowOffsetX, v) }
func (b *Buffer) SetShadowOffsetY(v float64)            { b.push(CmdShadowOffsetY, v) }
func (b *Buffer) SetShadowBlur(v float64)               { b.push(CmdShadowBlur, v) }
func (b *Buffer) SetShadowColor(color string)           { b.push(CmdShadowColor, color) }
func (b *Buffer) SetLineWidth(w float64)                { b.push(CmdLineWidth, w) }
func (b *Buffer) SetLineCap(lineCap string)             { b.push(CmdLineCap, lineCap) }
func (b *Buffer) SetLineJoin(join string)               { b.push(CmdLineJoin, join) }
func (b *Buffer) SetMiterLimit(limit float64)           { b.push(CmdMiterLimit, limit) }
func (b *Buffer) SetFont(font string)                   { b.push(CmdFont, font) }
func (b *Buffer) SetTextAlign(align string)             { b.push(CmdTextAlign, align) }
func (b *Buffer) SetTextBaseline(baseline string)       { b.push(CmdTextBaseline, baseline) }
func (b *Buffer) SetFillStyle(style string)             { b.push(CmdFillStyle, style) }
func (b *Buffer) SetStrokeStyle(style string)           { b.push(CmdStrokeStyle, style) }

// PaintSuper marks where the element's own rendering goes: commands before
// it are painted below the element, commands after it above. It may be
// called at most once per recording; a second call fails with
// ErrDuplicateSplit.
func (b *Buffer) PaintSuper() { b.push(CmdPaintSuper) }
