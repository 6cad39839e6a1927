// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package compose

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"log/slog"
	"math"

	"github.com/gogpu/gg"

	"github.com/gogpu/paintlet"
	"github.com/gogpu/paintlet/canvas"
	"github.com/gogpu/paintlet/htmldoc"
	"github.com/gogpu/paintlet/layer"
	"github.com/gogpu/paintlet/surface"
)

// Source supplies the pixels of painted surfaces. *surface.Provider
// implements it.
type Source interface {
	Image(id string) (image.Image, bool)
}

// Frame is a CPU compositing target.
type Frame struct {
	base       *image.RGBA
	width      int
	height     int
	background color.Color
	log        *slog.Logger
}

// Option configures a Frame.
type Option func(*Frame)

// WithBackground sets the color the frame is cleared to before each
// composite. The default is transparent.
func WithBackground(c color.Color) Option {
	return func(f *Frame) { f.background = c }
}

// WithLogger sets the frame's logger.
func WithLogger(l *slog.Logger) Option {
	return func(f *Frame) {
		if l != nil {
			f.log = l
		}
	}
}

// NewFrame creates a transparent frame.
func NewFrame(width, height int, opts ...Option) *Frame {
	f := &Frame{
		base:       image.NewRGBA(image.Rect(0, 0, width, height)),
		width:      width,
		height:     height,
		background: color.Transparent,
		log:        paintlet.Logger(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Width returns the frame width in pixels.
func (f *Frame) Width() int { return f.width }

// Height returns the frame height in pixels.
func (f *Frame) Height() int { return f.height }

// Image returns the composited image.
func (f *Frame) Image() *image.RGBA { return f.base }

// Clear fills the frame with c.
func (f *Frame) Clear(c color.Color) {
	draw.Draw(f.base, f.base.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

// Composite redraws the frame from doc and the surfaces in src.
func (f *Frame) Composite(doc *htmldoc.Document, src Source) error {
	f.Clear(f.background)
	hidden := make(map[*htmldoc.Element]bool)
	for _, el := range doc.Elements() {
		if hidden[el.Parent()] || el.Style().Get("display") == "none" {
			hidden[el] = true
			continue
		}
		dx, dy := offset(el)
		nodes := doc.HostNodes(el)
		for _, n := range nodes {
			if !n.Above {
				f.drawSurface(src, n, dx, dy)
			}
		}
		if err := f.drawNative(doc, el, nodes, dx, dy); err != nil {
			return fmt.Errorf("compose: %s: %w", el.ID(), err)
		}
		for _, n := range nodes {
			if n.Above {
				f.drawSurface(src, n, dx, dy)
			}
		}
	}
	return nil
}

func (f *Frame) drawSurface(src Source, n htmldoc.HostNode, dx, dy float64) {
	img, ok := src.Image(n.Surface)
	if !ok {
		f.log.Debug("compose: surface has no pixels", "surface", n.Surface)
		return
	}
	at := image.Pt(round(n.Rect.X+dx), round(n.Rect.Y+dy))
	r := img.Bounds().Sub(img.Bounds().Min).Add(at)
	draw.Draw(f.base, r, img, img.Bounds().Min, draw.Over)
}

// drawNative paints the element's border box with its background color.
func (f *Frame) drawNative(doc *htmldoc.Document, el *htmldoc.Element, nodes []htmldoc.HostNode, dx, dy float64) error {
	bg := el.Style().Get("background-color")
	if bg == "" || bg == "transparent" {
		return nil
	}
	box := el.Bounds()
	if box.W <= 0 || box.H <= 0 {
		return nil
	}

	b := canvas.NewBuffer()
	b.SetWritable(true)
	if clip, ok := doc.ClipResource(el.ClipPath()); ok {
		origin := clipOrigin(nodes)
		b.Translate(origin.X-box.X, origin.Y-box.Y)
		b.BeginPath()
		for _, seg := range clip.Segments {
			if err := b.Record(seg.Kind, seg.Args...); err != nil {
				return err
			}
		}
		b.Clip()
		b.ResetTransform()
	}
	b.SetFillStyle(bg)
	b.FillRect(0, 0, box.W, box.H)
	b.SetWritable(false)
	if err := b.Err(); err != nil {
		return err
	}

	r := surface.NewRaster(int(math.Ceil(box.W)), int(math.Ceil(box.H)))
	if err := b.Replay(nil, r, nil); err != nil {
		return err
	}
	at := image.Pt(round(box.X+dx), round(box.Y+dy))
	img := r.Image()
	draw.Draw(f.base, img.Bounds().Add(at), img, image.Point{}, draw.Over)
	return nil
}

// clipOrigin returns where the background layer's coordinate space starts.
func clipOrigin(nodes []htmldoc.HostNode) layer.Rect {
	for _, n := range nodes {
		if n.Kind == layer.Background && !n.Above {
			return n.Rect
		}
	}
	return layer.Rect{}
}

// SavePNG writes the frame to a PNG file.
func (f *Frame) SavePNG(path string) error {
	return gg.FromImage(f.base).SavePNG(path)
}

func round(v float64) int { return int(math.Round(v)) }
