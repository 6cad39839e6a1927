// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package htmldoc

import (
	"golang.org/x/net/html"

	"github.com/gogpu/paintlet/canvas"
	"github.com/gogpu/paintlet/layer"
	"github.com/gogpu/paintlet/style"
)

// Element is an element of a Document. It implements layer.Element and
// style.Styled.
type Element struct {
	doc      *Document
	node     *html.Node
	id       string
	parent   *Element
	children []*Element
	style    style.Style

	// inline holds the declarations of the style attribute.
	inline []declaration
	// cascaded holds the values the last cascade wrote. A style value
	// that no longer equals its cascaded value was set by other code.
	cascaded map[string]string
	// pinned properties were set through Resize or Move.
	pinned map[string]bool
	// clips holds the applied clip-path reference per surface kind.
	clips [2]string
	hosts []HostNode
}

var (
	_ layer.Element = (*Element)(nil)
	_ style.Styled  = (*Element)(nil)
)

// ID returns the element's id attribute, or a generated id when it has
// none.
func (e *Element) ID() string { return e.id }

// Tag returns the element's tag name.
func (e *Element) Tag() string { return e.node.Data }

// Attr returns the value of an attribute, or "".
func (e *Element) Attr(key string) string { return attr(e.node, key) }

// Node returns the underlying HTML node.
func (e *Element) Node() *html.Node { return e.node }

// Parent returns the parent element, or nil for the body.
func (e *Element) Parent() *Element { return e.parent }

// Children returns the element children.
func (e *Element) Children() []*Element { return e.children }

// Style returns the element's cascaded style.
func (e *Element) Style() *style.Style { return &e.style }

// StyledChildren implements style.Styled.
func (e *Element) StyledChildren() []style.Styled {
	out := make([]style.Styled, len(e.children))
	for i, c := range e.children {
		out[i] = c
	}
	return out
}

// Padding returns the padding widths.
func (e *Element) Padding() layer.Insets {
	return e.insets("padding")
}

// Border implements layer.Element.
func (e *Element) Border() layer.Insets {
	return e.insets("border")
}

// insets reads a box edge property: the shorthand, overridden by the
// per-side longhands.
func (e *Element) insets(prop string) layer.Insets {
	shorthand, suffix := prop, ""
	if prop == "border" {
		shorthand, suffix = "border-width", "-width"
	}
	in := parseInsets(e.style.Get(shorthand))
	for _, side := range [...]struct {
		name string
		v    *float64
	}{
		{"top", &in.Top},
		{"right", &in.Right},
		{"bottom", &in.Bottom},
		{"left", &in.Left},
	} {
		if v, ok := e.style.Lookup(prop + "-" + side.name + suffix); ok {
			*side.v = length(v)
		}
	}
	return in
}

// ContentBox implements layer.Element: the padding box less the padding.
func (e *Element) ContentBox() (w, h float64) {
	p := e.Padding()
	w = max(length(e.style.Get("width"))-p.Left-p.Right, 0)
	h = max(length(e.style.Get("height"))-p.Top-p.Bottom, 0)
	return w, h
}

// Bounds implements layer.Element: the border box in document coordinates.
func (e *Element) Bounds() layer.Rect {
	x, y := 0.0, 0.0
	if e.parent != nil {
		x, y = e.parent.contentOrigin()
	}
	b := e.Border()
	return layer.Rect{
		X: x + length(e.style.Get("left")),
		Y: y + length(e.style.Get("top")),
		W: length(e.style.Get("width")) + b.Left + b.Right,
		H: length(e.style.Get("height")) + b.Top + b.Bottom,
	}
}

// ContentRect returns the content box in document coordinates.
func (e *Element) ContentRect() layer.Rect {
	x, y := e.contentOrigin()
	w, h := e.ContentBox()
	return layer.Rect{X: x, Y: y, W: w, H: h}
}

func (e *Element) contentOrigin() (float64, float64) {
	r, b, p := e.Bounds(), e.Border(), e.Padding()
	return r.X + b.Left + p.Left, r.Y + b.Top + p.Top
}

// Resize sets the element's width and height and reports the layout
// change to the document's invalidator.
func (e *Element) Resize(w, h float64) {
	e.pin("width", px(w))
	e.pin("height", px(h))
	e.doc.invalidateLayout(e)
}

// Move sets the element's left and top.
func (e *Element) Move(x, y float64) {
	e.pin("left", px(x))
	e.pin("top", px(y))
	e.doc.invalidateLayout(e)
}

// pin sets a property that later stylesheets do not override.
func (e *Element) pin(prop, value string) {
	if e.pinned == nil {
		e.pinned = make(map[string]bool)
	}
	e.pinned[prop] = true
	e.style.Set(prop, value)
}

// owned reports whether prop was set outside the cascade.
func (e *Element) owned(prop string) bool {
	if e.pinned[prop] {
		return true
	}
	cur, ok := e.style.Lookup(prop)
	if !ok {
		return false
	}
	old, ok := e.cascaded[prop]
	return !ok || cur != old
}

// ClipPath returns the clip-path reference applied by the background
// layer, or "" when the native rendering is not clipped.
func (e *Element) ClipPath() string { return e.clips[layer.Background] }

// ClipPathFor returns the clip-path reference applied by the given layer.
func (e *Element) ClipPathFor(kind layer.SurfaceKind) string {
	if int(kind) >= len(e.clips) {
		return ""
	}
	return e.clips[kind]
}

func (e *Element) clipIDs() []string {
	return []string{e.clipID(layer.Background), e.clipID(layer.Content)}
}

func (e *Element) clipID(kind layer.SurfaceKind) string {
	if kind == layer.Background {
		return e.id + "-clip"
	}
	return e.id + "-" + kind.String() + "-clip"
}

// clipTarget receives the clip of one of an element's layers.
type clipTarget struct {
	el   *Element
	kind layer.SurfaceKind
}

var _ canvas.ClipTarget = clipTarget{}

func (t clipTarget) DefineClipPath(p canvas.ClipPath) string {
	id := t.el.clipID(t.kind)
	t.el.doc.clips[id] = p
	return "url(#" + id + ")"
}

func (t clipTarget) SetClipPath(ref string) {
	t.el.clips[t.kind] = ref
}
