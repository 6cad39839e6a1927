// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package htmldoc

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/gogpu/paintlet"
	"github.com/gogpu/paintlet/canvas"
)

// Document is a parsed HTML document. It is not safe for concurrent use.
type Document struct {
	root *html.Node
	body *Element

	elements []*Element
	byID     map[string]*Element

	rules []rule
	clips map[string]canvas.ClipPath

	inval Invalidator
	log   *slog.Logger
	anon  int
}

// Parse reads an HTML document. Inline style attributes and <style>
// elements are cascaded onto the elements before Parse returns.
func Parse(r io.Reader, opts ...Option) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("htmldoc: parse: %w", err)
	}
	d := &Document{
		root:  root,
		byID:  make(map[string]*Element),
		clips: make(map[string]canvas.ClipPath),
		log:   paintlet.Logger(),
	}
	for _, opt := range opts {
		opt(d)
	}

	body := findBody(root)
	if body == nil {
		return nil, ErrNoBody
	}
	d.body = d.newElement(body, nil)
	d.build(d.body)

	var sheets []string
	for n := range root.Descendants() {
		if n.Type == html.ElementNode && n.DataAtom == atom.Style && n.FirstChild != nil {
			sheets = append(sheets, n.FirstChild.Data)
		}
	}
	if err := d.ApplyCSS(strings.Join(sheets, "\n")); err != nil {
		return nil, err
	}
	return d, nil
}

func findBody(root *html.Node) *html.Node {
	for n := range root.Descendants() {
		if n.Type == html.ElementNode && n.DataAtom == atom.Body {
			return n
		}
	}
	return nil
}

// skipped elements carry no box.
var skipped = map[atom.Atom]bool{
	atom.Script:   true,
	atom.Style:    true,
	atom.Template: true,
}

// build wraps the element children of parent in document order.
func (d *Document) build(parent *Element) {
	for c := parent.node.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode || skipped[c.DataAtom] {
			continue
		}
		el := d.newElement(c, parent)
		parent.children = append(parent.children, el)
		d.elements = append(d.elements, el)
		d.build(el)
	}
}

func (d *Document) newElement(n *html.Node, parent *Element) *Element {
	el := &Element{doc: d, node: n, parent: parent}
	el.id = attr(n, "id")
	if el.id == "" {
		el.id = fmt.Sprintf("el%d", d.anon)
		d.anon++
	} else if _, dup := d.byID[el.id]; !dup {
		d.byID[el.id] = el
	}
	d.parseInline(el)
	return el
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// SetInvalidator replaces the document's invalidator.
func (d *Document) SetInvalidator(inv Invalidator) {
	d.inval = inv
}

// Body returns the body element.
func (d *Document) Body() *Element { return d.body }

// Elements returns the elements inside the body in document order.
func (d *Document) Elements() []*Element {
	return d.elements
}

// ByID returns the first element with the given id attribute, or nil.
func (d *Document) ByID(id string) *Element {
	return d.byID[id]
}

// ClipResource returns the clip-path resource a reference such as
// "url(#card-clip)" points to.
func (d *Document) ClipResource(ref string) (canvas.ClipPath, bool) {
	id, ok := strings.CutPrefix(ref, "url(#")
	if !ok {
		return canvas.ClipPath{}, false
	}
	p, ok := d.clips[strings.TrimSuffix(id, ")")]
	return p, ok
}

// Render writes the document as HTML, including surface nodes and
// clip-path resources.
func (d *Document) Render(w io.Writer) error {
	d.syncClipResources()
	return html.Render(w, d.root)
}

// syncClipResources mirrors the clip resources into an <svg> <defs> block
// at the end of the body.
func (d *Document) syncClipResources() {
	var defs *html.Node
	for c := d.body.node.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && attr(c, "data-paint-defs") != "" {
			defs = c
			break
		}
	}
	if defs == nil {
		defs = &html.Node{Type: html.ElementNode, Data: "svg", DataAtom: atom.Svg, Attr: []html.Attribute{
			{Key: "data-paint-defs", Val: "true"},
			{Key: "width", Val: "0"},
			{Key: "height", Val: "0"},
		}}
		d.body.node.AppendChild(defs)
	}
	for c := defs.FirstChild; c != nil; c = defs.FirstChild {
		defs.RemoveChild(c)
	}
	for _, el := range d.elements {
		for _, id := range el.clipIDs() {
			p, ok := d.clips[id]
			if !ok {
				continue
			}
			cp := &html.Node{Type: html.ElementNode, Data: "clipPath", Attr: []html.Attribute{{Key: "id", Val: id}}}
			cp.AppendChild(&html.Node{Type: html.ElementNode, Data: "path", Attr: []html.Attribute{{Key: "d", Val: p.Data}}})
			defs.AppendChild(cp)
		}
	}
}

func (d *Document) invalidateLayout(el *Element) {
	if d.inval != nil {
		d.inval.InvalidateLayout(el)
	}
}

func (d *Document) invalidateStyle(el *Element) {
	if d.inval != nil {
		d.inval.InvalidateStyle(el)
	}
}
