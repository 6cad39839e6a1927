// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package layer

import (
	"fmt"
	"log/slog"
	"math"
	"strconv"

	"github.com/gogpu/paintlet"
	"github.com/gogpu/paintlet/canvas"
)

// Layer is one paintable surface of an element.
type Layer struct {
	owner   *Engine
	el      Element
	kind    SurfaceKind
	buf     *canvas.Buffer
	lower   string
	upper   string
	inflate Insets
	paint   PaintFunc
}

// Kind returns the surface kind this layer paints.
func (l *Layer) Kind() SurfaceKind { return l.kind }

// Buffer returns the layer's command buffer.
func (l *Layer) Buffer() *canvas.Buffer { return l.buf }

// Lower returns the id of the surface drawn below the element.
func (l *Layer) Lower() string { return l.lower }

// Upper returns the id of the surface drawn above the element.
func (l *Layer) Upper() string { return l.upper }

// AdditionalRect returns the layer's inflation.
func (l *Layer) AdditionalRect() Insets { return l.inflate }

// SetAdditionalRect grows the painted area by in on each side, for effects
// such as drop shadows that bleed outside the element. Changing it
// invalidates the element's paint.
func (l *Layer) SetAdditionalRect(in Insets) {
	if in == l.inflate {
		return
	}
	l.inflate = in
	l.owner.invalidate(l.el)
}

// size returns the layer's surface size for a content box of w x h.
func (l *Layer) size(w, h float64) (float64, float64) {
	return w + l.inflate.Left + l.inflate.Right, h + l.inflate.Top + l.inflate.Bottom
}

// record is the engine's side table entry for one element.
type record struct {
	layers   [kindCount]*Layer
	width    float64
	height   float64
	measured bool
}

// Engine tracks paintable elements and repaints them on request.
// It is not safe for concurrent use.
type Engine struct {
	host     Host
	surfaces SurfaceProvider
	inval    Invalidator
	log      *slog.Logger

	order   []Element
	records map[Element]*record
	nextID  int
}

// New creates an engine that scaffolds through host and draws onto surfaces
// handed out by surfaces.
func New(host Host, surfaces SurfaceProvider, opts ...Option) *Engine {
	e := &Engine{
		host:     host,
		surfaces: surfaces,
		log:      paintlet.Logger(),
		records:  make(map[Element]*record),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// SetInvalidator replaces the engine's invalidator. The scheduler usually
// needs the engine to be constructed first, so it is wired in afterwards.
func (e *Engine) SetInvalidator(inv Invalidator) {
	e.inval = inv
}

// RegisterPaint installs fn as the paint callback of el's kind layer and
// requests a paint for el. The first registration for an element and kind
// wins; later calls return the existing layer and change nothing.
func (e *Engine) RegisterPaint(el Element, kind SurfaceKind, fn PaintFunc) *Layer {
	if kind >= kindCount {
		panic("layer: invalid surface kind " + strconv.Itoa(int(kind)))
	}
	rec, ok := e.records[el]
	if !ok {
		rec = &record{}
		e.records[el] = rec
		e.order = append(e.order, el)
	}
	if l := rec.layers[kind]; l != nil {
		return l
	}

	l := &Layer{
		owner: e,
		el:    el,
		kind:  kind,
		buf:   canvas.NewBuffer(),
		lower: e.surfaceID(),
		upper: e.surfaceID(),
		paint: fn,
	}
	rec.layers[kind] = l
	e.log.Debug("layer: registered paint", "surface", kind, "lower", l.lower, "upper", l.upper)
	e.invalidate(el)
	return l
}

func (e *Engine) surfaceID() string {
	id := "p" + strconv.Itoa(e.nextID)
	e.nextID++
	return id
}

func (e *Engine) invalidate(el Element) {
	if e.inval != nil {
		e.inval.InvalidatePaint(el)
	}
}

// Elements returns every registered element in registration order.
func (e *Engine) Elements() []Element {
	return append([]Element(nil), e.order...)
}

// Layer returns el's layer of the given kind, or nil.
func (e *Engine) Layer(el Element, kind SurfaceKind) *Layer {
	rec, ok := e.records[el]
	if !ok || kind >= kindCount {
		return nil
	}
	return rec.layers[kind]
}

// Size returns the last measured content box of el. ok is false when el
// has not been measured yet.
func (e *Engine) Size(el Element) (w, h float64, ok bool) {
	rec, found := e.records[el]
	if !found || !rec.measured {
		return 0, 0, false
	}
	return rec.width, rec.height, true
}

// MeasureAndDetectResize compares el's content box with the cached
// measurement and reports whether it changed, updating the cache. The first
// measurement of an element always reports a change. Unregistered elements
// report false. The call has no other effects, so it can be repeated freely.
func (e *Engine) MeasureAndDetectResize(el Element) bool {
	rec, ok := e.records[el]
	if !ok {
		return false
	}
	w, h := el.ContentBox()
	if rec.measured && w == rec.width && h == rec.height {
		return false
	}
	rec.width, rec.height, rec.measured = w, h, true
	return true
}

// PaintElement re-runs el's paint callbacks and replays them onto fresh
// surfaces, background first. It is a no-op for unregistered elements.
// The first failure stops the paint and is returned.
func (e *Engine) PaintElement(el Element) error {
	rec, ok := e.records[el]
	if !ok {
		return nil
	}
	rec.width, rec.height = el.ContentBox()
	rec.measured = true

	g := Geometry{Box: el.Bounds(), Border: el.Border()}
	for _, l := range rec.layers {
		if l == nil {
			continue
		}
		w, h := l.size(rec.width, rec.height)
		g.Layers = append(g.Layers, LayerGeometry{
			Kind:    l.kind,
			Lower:   l.lower,
			Upper:   l.upper,
			Inflate: l.inflate,
			Width:   w,
			Height:  h,
		})
	}
	if err := e.host.Scaffold(el, g); err != nil {
		return fmt.Errorf("layer: scaffold: %w", err)
	}

	for _, l := range rec.layers {
		if l == nil {
			continue
		}
		if err := e.paintLayer(el, l, rec.width, rec.height); err != nil {
			return err
		}
	}
	return nil
}

func (e *Engine) paintLayer(el Element, l *Layer, width, height float64) error {
	w, h := l.size(width, height)
	pw, ph := pixels(w), pixels(h)

	lower, err := e.surfaces.Surface(l.lower, pw, ph)
	if err != nil {
		return fmt.Errorf("layer: surface %s: %w", l.lower, err)
	}
	upper, err := e.surfaces.Surface(l.upper, pw, ph)
	if err != nil {
		return fmt.Errorf("layer: surface %s: %w", l.upper, err)
	}

	if err := e.record(l, w, h); err != nil {
		return err
	}
	e.log.Debug("layer: replay", "surface", l.kind, "commands", l.buf.Len(), "split", l.buf.HasSplit())
	return l.buf.Replay(e.host.ClipTarget(el, l.kind), lower, upper)
}

// record runs the paint callback. The buffer is closed for writing even
// when the callback panics.
func (e *Engine) record(l *Layer, w, h float64) error {
	l.buf.SetWritable(true)
	defer l.buf.SetWritable(false)
	l.buf.SetDimensions(w, h)
	if l.paint != nil {
		l.paint(l.buf)
	}
	if err := l.buf.Err(); err != nil {
		return fmt.Errorf("layer: %s paint: %w", l.kind, err)
	}
	return nil
}

func pixels(v float64) int {
	if v <= 0 || math.IsNaN(v) {
		return 0
	}
	return int(math.Ceil(v))
}
