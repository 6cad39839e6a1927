// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package htmldoc

import (
	"fmt"
	"math"
	"slices"
	"strconv"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/gogpu/paintlet/canvas"
	"github.com/gogpu/paintlet/layer"
)

// HostNode is a node displaying one drawing surface of an element.
type HostNode struct {
	// Surface is the surface id the node displays.
	Surface string
	Kind    layer.SurfaceKind
	// Above reports whether the node stacks above the element's native
	// rendering.
	Above bool
	// Rect is the node's area in document coordinates.
	Rect layer.Rect
	// Z is the stacking index within the element, from the bottom.
	Z int
}

var _ layer.Host = (*Document)(nil)

// Scaffold implements layer.Host. It places a <canvas> node per surface
// so the content box origin of the element is the origin of every
// surface, less the layer's inflation. Nodes of surfaces that are no
// longer in g are dropped.
func (d *Document) Scaffold(el layer.Element, g layer.Geometry) error {
	e, err := d.own(el)
	if err != nil {
		return err
	}

	origin := e.ContentRect()
	var lower, upper []HostNode
	for _, lg := range g.Layers {
		rect := layer.Rect{
			X: origin.X - lg.Inflate.Left,
			Y: origin.Y - lg.Inflate.Top,
			W: lg.Width,
			H: lg.Height,
		}
		lower = append(lower, HostNode{Surface: lg.Lower, Kind: lg.Kind, Rect: rect})
		upper = append(upper, HostNode{Surface: lg.Upper, Kind: lg.Kind, Above: true, Rect: rect})
	}
	nodes := slices.Concat(lower, upper)
	for i := range nodes {
		nodes[i].Z = i
	}
	lower, upper = nodes[:len(lower)], nodes[len(lower):]

	old := e.detachCanvases()
	for i := len(lower) - 1; i >= 0; i-- {
		e.node.InsertBefore(canvasFor(old, lower[i]), e.node.FirstChild)
	}
	for _, n := range upper {
		e.node.AppendChild(canvasFor(old, n))
	}
	e.hosts = nodes

	d.log.Debug("htmldoc: scaffold", "element", e.id, "surfaces", len(nodes))
	return nil
}

// ClipTarget implements layer.Host.
func (d *Document) ClipTarget(el layer.Element, kind layer.SurfaceKind) canvas.ClipTarget {
	e, err := d.own(el)
	if err != nil {
		return nil
	}
	return clipTarget{el: e, kind: kind}
}

// HostNodes returns the surface nodes of el, bottom first.
func (d *Document) HostNodes(el *Element) []HostNode {
	return el.hosts
}

func (d *Document) own(el layer.Element) (*Element, error) {
	e, ok := el.(*Element)
	if !ok || e.doc != d {
		return nil, fmt.Errorf("%w: %T", ErrForeignElement, el)
	}
	return e, nil
}

const surfaceAttr = "data-paint-surface"

// detachCanvases removes the element's surface nodes and returns them by
// surface id.
func (e *Element) detachCanvases() map[string]*html.Node {
	old := make(map[string]*html.Node)
	for c := e.node.FirstChild; c != nil; {
		next := c.NextSibling
		if id := attr(c, surfaceAttr); c.Type == html.ElementNode && id != "" {
			e.node.RemoveChild(c)
			old[id] = c
		}
		c = next
	}
	return old
}

// canvasFor returns the node for n, reusing a detached one.
func canvasFor(old map[string]*html.Node, n HostNode) *html.Node {
	c, ok := old[n.Surface]
	if !ok {
		c = &html.Node{Type: html.ElementNode, Data: "canvas", DataAtom: atom.Canvas}
	}
	z := n.Z - 100
	if n.Above {
		z = n.Z + 1
	}
	c.Attr = []html.Attribute{
		{Key: surfaceAttr, Val: n.Surface},
		{Key: "data-paint-layer", Val: n.Kind.String()},
		{Key: "width", Val: strconv.Itoa(int(math.Ceil(n.Rect.W)))},
		{Key: "height", Val: strconv.Itoa(int(math.Ceil(n.Rect.H)))},
		{Key: "style", Val: fmt.Sprintf("position: absolute; left: %s; top: %s; z-index: %d",
			px(n.Rect.X), px(n.Rect.Y), z)},
	}
	return c
}
