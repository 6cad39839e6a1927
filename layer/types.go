// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package layer

import "github.com/gogpu/paintlet/canvas"

// SurfaceKind selects which of an element's paint layers a callback draws.
type SurfaceKind uint8

const (
	// Background is painted first, behind the content layer.
	Background SurfaceKind = iota
	// Content is painted over the background layer.
	Content

	kindCount
)

var surfaceKindNames = [...]string{
	Background: "background",
	Content:    "content",
}

// String returns "background" or "content".
func (k SurfaceKind) String() string {
	if int(k) < len(surfaceKindNames) {
		return surfaceKindNames[k]
	}
	return "unknown"
}

// Insets are distances from the four edges of a box.
type Insets struct {
	Top, Right, Bottom, Left float64
}

// Zero reports whether all insets are zero.
func (in Insets) Zero() bool {
	return in == Insets{}
}

// Rect is an axis-aligned rectangle in document coordinates.
type Rect struct {
	X, Y, W, H float64
}

// Inset returns r grown by in on every side.
func (r Rect) Inset(in Insets) Rect {
	return Rect{
		X: r.X - in.Left,
		Y: r.Y - in.Top,
		W: r.W + in.Left + in.Right,
		H: r.H + in.Top + in.Bottom,
	}
}

// Element is a paintable element. Implementations must be comparable;
// the engine uses them as map keys.
type Element interface {
	// ContentBox returns the size used for dirty detection and for the
	// dimensions of the paint buffers.
	ContentBox() (w, h float64)
	// Border returns the element's border widths.
	Border() Insets
	// Bounds returns the element's border box.
	Bounds() Rect
}

// LayerGeometry describes where the host should place the two drawing
// surfaces of one layer.
type LayerGeometry struct {
	Kind    SurfaceKind
	Lower   string
	Upper   string
	Inflate Insets
	// Width and Height are the surface size including Inflate.
	Width, Height float64
}

// Geometry is handed to Host.Scaffold once per paint.
type Geometry struct {
	Box    Rect
	Border Insets
	Layers []LayerGeometry
}

// Host builds and positions the nodes that display an element's drawing
// surfaces, and receives the clip paths produced by replay.
type Host interface {
	// Scaffold makes sure the element has a host node per surface id, at
	// the right position and stacking order (lower below native rendering,
	// upper above it).
	Scaffold(el Element, g Geometry) error
	// ClipTarget returns where the clip path of the given layer is stored.
	// It may return nil.
	ClipTarget(el Element, kind SurfaceKind) canvas.ClipTarget
}

// SurfaceProvider hands out real drawing surfaces by id. Every call
// returns a surface cleared to transparent at the requested size.
type SurfaceProvider interface {
	Surface(id string, w, h int) (canvas.Surface, error)
}

// Invalidator receives paint invalidations raised by the engine.
type Invalidator interface {
	InvalidatePaint(el Element)
}

// PaintFunc is a user paint callback. It is called synchronously once per
// paint with a writable buffer sized to the layer.
type PaintFunc func(ctx *canvas.Buffer)
