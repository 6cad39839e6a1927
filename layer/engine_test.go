// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package layer

import (
	"errors"
	"reflect"
	"testing"

	"github.com/gogpu/paintlet/canvas"
)

type box struct {
	w, h   float64
	border Insets
	at     Rect
}

func (b *box) ContentBox() (float64, float64) { return b.w, b.h }
func (b *box) Border() Insets                 { return b.border }
func (b *box) Bounds() Rect                   { return b.at }

type clipSink struct {
	refs []string
}

func (c *clipSink) DefineClipPath(canvas.ClipPath) string { return "url(#clip)" }
func (c *clipSink) SetClipPath(ref string)                { c.refs = append(c.refs, ref) }

type host struct {
	scaffolds []Geometry
	clips     map[SurfaceKind]*clipSink
	err       error
}

func newHost() *host {
	return &host{clips: map[SurfaceKind]*clipSink{Background: {}, Content: {}}}
}

func (h *host) Scaffold(_ Element, g Geometry) error {
	h.scaffolds = append(h.scaffolds, g)
	return h.err
}

func (h *host) ClipTarget(_ Element, kind SurfaceKind) canvas.ClipTarget {
	return h.clips[kind]
}

type request struct {
	id   string
	w, h int
}

type provider struct {
	traces   map[string]*canvas.Trace
	requests []request
	fail     string
}

func newProvider() *provider {
	return &provider{traces: make(map[string]*canvas.Trace)}
}

func (p *provider) Surface(id string, w, h int) (canvas.Surface, error) {
	if id == p.fail {
		return nil, errors.New("no such surface")
	}
	p.requests = append(p.requests, request{id, w, h})
	t := &canvas.Trace{}
	p.traces[id] = t
	return t, nil
}

type counter map[Element]int

func (c counter) InvalidatePaint(el Element) { c[el]++ }

func TestRegisterPaint(t *testing.T) {
	inv := counter{}
	e := New(newHost(), newProvider(), WithInvalidator(inv))
	el := &box{w: 10, h: 10}

	l := e.RegisterPaint(el, Background, func(*canvas.Buffer) {})
	if l == nil {
		t.Fatal("RegisterPaint returned nil")
	}
	if l.Lower() == l.Upper() {
		t.Errorf("lower and upper share id %q", l.Lower())
	}
	if inv[el] != 1 {
		t.Errorf("invalidations = %d, want 1", inv[el])
	}

	again := e.RegisterPaint(el, Background, func(*canvas.Buffer) { t.Error("second callback used") })
	if again != l {
		t.Error("second registration replaced the first")
	}
	if inv[el] != 1 {
		t.Errorf("second registration invalidated; count = %d", inv[el])
	}

	content := e.RegisterPaint(el, Content, func(*canvas.Buffer) {})
	ids := map[string]bool{l.Lower(): true, l.Upper(): true, content.Lower(): true, content.Upper(): true}
	if len(ids) != 4 {
		t.Errorf("surface ids not unique: %v", ids)
	}
	if got := e.Elements(); len(got) != 1 || got[0] != el {
		t.Errorf("Elements() = %v", got)
	}
	if e.Layer(el, Content) != content || e.Layer(&box{}, Content) != nil {
		t.Error("Layer lookup mismatch")
	}
}

func TestSurfaceIDs(t *testing.T) {
	e := New(newHost(), newProvider())
	a := e.RegisterPaint(&box{}, Background, nil)
	b := e.RegisterPaint(&box{}, Content, nil)
	got := []string{a.Lower(), a.Upper(), b.Lower(), b.Upper()}
	want := []string{"p0", "p1", "p2", "p3"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ids = %v, want %v", got, want)
	}
}

func TestElementsOrder(t *testing.T) {
	e := New(newHost(), newProvider())
	els := []*box{{}, {}, {}}
	for i := len(els) - 1; i >= 0; i-- {
		e.RegisterPaint(els[i], Content, nil)
	}
	got := e.Elements()
	for i, el := range got {
		if el != els[len(els)-1-i] {
			t.Fatalf("Elements()[%d] out of registration order", i)
		}
	}
}

func TestMeasureAndDetectResize(t *testing.T) {
	inv := counter{}
	e := New(newHost(), newProvider(), WithInvalidator(inv))
	el := &box{w: 20, h: 10}

	if e.MeasureAndDetectResize(el) {
		t.Error("unregistered element reported a resize")
	}
	e.RegisterPaint(el, Background, nil)

	steps := []struct {
		w, h float64
		want bool
	}{
		{20, 10, true}, // first measurement
		{20, 10, false},
		{25, 10, true},
		{25, 10, false},
		{25, 12, true},
	}
	for i, s := range steps {
		el.w, el.h = s.w, s.h
		if got := e.MeasureAndDetectResize(el); got != s.want {
			t.Errorf("step %d: MeasureAndDetectResize() = %v, want %v", i, got, s.want)
		}
	}
	if w, h, ok := e.Size(el); !ok || w != 25 || h != 12 {
		t.Errorf("Size() = %v, %v, %v", w, h, ok)
	}
	if inv[el] != 1 {
		t.Errorf("measuring touched invalidation state: %d", inv[el])
	}
}

func TestPaintElementUnregistered(t *testing.T) {
	h, p := newHost(), newProvider()
	e := New(h, p)
	if err := e.PaintElement(&box{}); err != nil {
		t.Fatal(err)
	}
	if len(h.scaffolds) != 0 || len(p.requests) != 0 {
		t.Error("unregistered element was painted")
	}
}

func TestPaintElement(t *testing.T) {
	h, p := newHost(), newProvider()
	e := New(h, p)
	el := &box{w: 40, h: 30, border: Insets{1, 1, 1, 1}, at: Rect{5, 6, 42, 32}}

	var order []SurfaceKind
	var dims [][2]float64
	content := e.RegisterPaint(el, Content, func(ctx *canvas.Buffer) {
		order = append(order, Content)
		dims = append(dims, [2]float64{ctx.Width(), ctx.Height()})
		ctx.FillRect(0, 0, ctx.Width(), ctx.Height())
	})
	bg := e.RegisterPaint(el, Background, func(ctx *canvas.Buffer) {
		order = append(order, Background)
		dims = append(dims, [2]float64{ctx.Width(), ctx.Height()})
		ctx.BeginPath()
		ctx.Rect(0, 0, 10, 10)
		ctx.Clip()
		ctx.PaintSuper()
		ctx.FillRect(0, 0, 5, 5)
	})
	bg.SetAdditionalRect(Insets{Top: 2, Right: 3, Bottom: 4, Left: 5.5})

	if err := e.PaintElement(el); err != nil {
		t.Fatal(err)
	}

	if !reflect.DeepEqual(order, []SurfaceKind{Background, Content}) {
		t.Errorf("paint order = %v", order)
	}
	if !reflect.DeepEqual(dims, [][2]float64{{48.5, 36}, {40, 30}}) {
		t.Errorf("buffer dimensions = %v", dims)
	}

	wantReq := []request{
		{bg.Lower(), 49, 36}, {bg.Upper(), 49, 36},
		{content.Lower(), 40, 30}, {content.Upper(), 40, 30},
	}
	if !reflect.DeepEqual(p.requests, wantReq) {
		t.Errorf("surface requests = %v, want %v", p.requests, wantReq)
	}

	if len(h.scaffolds) != 1 {
		t.Fatalf("scaffolded %d times, want 1", len(h.scaffolds))
	}
	g := h.scaffolds[0]
	if g.Box != el.at || g.Border != el.border || len(g.Layers) != 2 {
		t.Errorf("geometry = %+v", g)
	}
	if g.Layers[0].Kind != Background || g.Layers[0].Inflate != bg.AdditionalRect() || g.Layers[0].Width != 48.5 {
		t.Errorf("background geometry = %+v", g.Layers[0])
	}

	if n := len(p.traces[bg.Upper()].Ops()); n != 1 {
		t.Errorf("background upper received %d ops, want 1", n)
	}
	if got := h.clips[Background].refs; !reflect.DeepEqual(got, []string{"url(#clip)"}) {
		t.Errorf("background clip refs = %v", got)
	}
	if got := h.clips[Content].refs; !reflect.DeepEqual(got, []string{""}) {
		t.Errorf("content clip refs = %v", got)
	}
	if content.Buffer().Writable() {
		t.Error("buffer left writable")
	}
}

func TestPaintElementRerecords(t *testing.T) {
	e := New(newHost(), newProvider())
	el := &box{w: 1, h: 1}
	calls := 0
	l := e.RegisterPaint(el, Content, func(ctx *canvas.Buffer) {
		calls++
		ctx.Save()
		ctx.Restore()
	})
	for range 3 {
		if err := e.PaintElement(el); err != nil {
			t.Fatal(err)
		}
	}
	if calls != 3 || l.Buffer().Len() != 2 {
		t.Errorf("calls = %d, commands = %d", calls, l.Buffer().Len())
	}
}

func TestPaintElementErrors(t *testing.T) {
	scaffoldErr := errors.New("scaffold failed")

	tests := []struct {
		name  string
		setup func(h *host, p *provider)
		paint PaintFunc
		want  error
	}{
		{
			name: "duplicate split",
			paint: func(ctx *canvas.Buffer) {
				ctx.PaintSuper()
				ctx.PaintSuper()
			},
			want: canvas.ErrDuplicateSplit,
		},
		{
			name:  "invalid arguments",
			paint: func(ctx *canvas.Buffer) { ctx.SetLineDash(-1) },
			want:  canvas.ErrInvalidArguments,
		},
		{
			name:  "scaffold",
			setup: func(h *host, _ *provider) { h.err = scaffoldErr },
			paint: func(*canvas.Buffer) {},
			want:  scaffoldErr,
		},
		{
			name: "unsupported clip",
			paint: func(ctx *canvas.Buffer) {
				ctx.BeginPath()
				ctx.ArcTo(0, 0, 1, 1, 1)
				ctx.Clip()
			},
			want: canvas.ErrUnsupportedCommand,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, p := newHost(), newProvider()
			if tt.setup != nil {
				tt.setup(h, p)
			}
			e := New(h, p)
			el := &box{w: 5, h: 5}
			l := e.RegisterPaint(el, Content, tt.paint)
			if err := e.PaintElement(el); !errors.Is(err, tt.want) {
				t.Fatalf("PaintElement() = %v, want %v", err, tt.want)
			}
			if l.Buffer().Writable() {
				t.Error("buffer left writable")
			}
		})
	}
}

func TestPaintElementSurfaceFailure(t *testing.T) {
	h, p := newHost(), newProvider()
	e := New(h, p)
	el := &box{w: 5, h: 5}
	l := e.RegisterPaint(el, Content, func(*canvas.Buffer) { t.Error("callback ran without surfaces") })
	p.fail = l.Upper()
	if err := e.PaintElement(el); err == nil {
		t.Fatal("PaintElement() succeeded without a surface")
	}
}

func TestPaintElementPanicClosesBuffer(t *testing.T) {
	e := New(newHost(), newProvider())
	el := &box{w: 5, h: 5}
	l := e.RegisterPaint(el, Content, func(*canvas.Buffer) { panic("boom") })

	func() {
		defer func() {
			if recover() == nil {
				t.Error("panic was swallowed")
			}
		}()
		_ = e.PaintElement(el)
	}()
	if l.Buffer().Writable() {
		t.Error("buffer left writable after panic")
	}
}

func TestSetAdditionalRect(t *testing.T) {
	inv := counter{}
	e := New(newHost(), newProvider())
	el := &box{}
	l := e.RegisterPaint(el, Background, nil)
	e.SetInvalidator(inv)

	l.SetAdditionalRect(Insets{Top: 4})
	l.SetAdditionalRect(Insets{Top: 4})
	if inv[el] != 1 {
		t.Errorf("invalidations = %d, want 1", inv[el])
	}
}

func TestRectInset(t *testing.T) {
	r := Rect{10, 10, 20, 20}.Inset(Insets{Top: 1, Right: 2, Bottom: 3, Left: 4})
	if want := (Rect{6, 9, 26, 24}); r != want {
		t.Errorf("Inset() = %v, want %v", r, want)
	}
	if !(Insets{}).Zero() || (Insets{Left: 1}).Zero() {
		t.Error("Zero() mismatch")
	}
}

func TestSurfaceKindString(t *testing.T) {
	if Background.String() != "background" || Content.String() != "content" || SurfaceKind(9).String() != "unknown" {
		t.Error("unexpected SurfaceKind names")
	}
}
