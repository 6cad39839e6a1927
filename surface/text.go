// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"fmt"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/text/unicode/bidi"
)

// text draws s with its anchor at (x, y) in user space. Glyph outlines go
// through the current transform, clip, shadow and stroke state like any
// other path.
func (r *Raster) text(s string, x, y, maxWidth float64, limited, stroke bool) error {
	if s == "" || (limited && maxWidth <= 0) {
		return nil
	}

	font := r.state.font
	face, err := font.Face()
	if err != nil {
		return err
	}
	width := face.Advance(s)
	if limited && width > maxWidth {
		face, err = font.WithSize(font.Size * maxWidth / width).Face()
		if err != nil {
			return err
		}
		width = face.Advance(s)
	}

	switch r.alignment(s) {
	case "right":
		x -= width
	case "center":
		x -= width / 2
	}

	m := face.Metrics()
	switch r.state.baseline {
	case "top":
		y += m.Ascent
	case "hanging":
		y += m.Ascent * 0.8
	case "middle":
		y += (m.Ascent - m.Descent) / 2
	case "ideographic", "bottom":
		y -= m.Descent
	}

	p, err := r.glyphPath(face, s, x, y)
	if err != nil || p == nil {
		return err
	}
	return r.paint(p, stroke)
}

// glyphPath returns the outlines of s as a device-space path with the
// baseline origin at (x, y) in user space. It returns nil when s has no
// visible glyphs.
func (r *Raster) glyphPath(face text.Face, s string, x, y float64) (*gg.Path, error) {
	src := face.Source()
	if src == nil {
		return nil, fmt.Errorf("%w: face has no source", ErrInvalidFont)
	}
	if r.outlines == nil {
		r.outlines = text.NewOutlineExtractor()
	}
	parsed := src.Parsed()

	p := gg.NewPath()
	open := false
	for _, g := range text.Shape(s, face) {
		o, err := r.outlines.ExtractOutline(parsed, g.GID, face.Size())
		if err != nil || o == nil || o.IsEmpty() {
			continue
		}
		gx := x + g.X
		pt := func(i int, seg text.OutlineSegment) gg.Point {
			return r.point(gx+float64(seg.Points[i].X), y+float64(seg.Points[i].Y))
		}
		for _, seg := range o.Segments {
			switch seg.Op {
			case text.OutlineOpMoveTo:
				if open {
					p.Close()
				}
				a := pt(0, seg)
				p.MoveTo(a.X, a.Y)
				open = true
			case text.OutlineOpLineTo:
				a := pt(0, seg)
				p.LineTo(a.X, a.Y)
			case text.OutlineOpQuadTo:
				c, a := pt(0, seg), pt(1, seg)
				p.QuadraticTo(c.X, c.Y, a.X, a.Y)
			case text.OutlineOpCubicTo:
				c1, c2, a := pt(0, seg), pt(1, seg), pt(2, seg)
				p.CubicTo(c1.X, c1.Y, c2.X, c2.Y, a.X, a.Y)
			}
		}
	}
	if !open {
		return nil, nil
	}
	p.Close()
	return p, nil
}

// alignment resolves textAlign to left, right or center. start and end
// follow the direction of the first run of s.
func (r *Raster) alignment(s string) string {
	switch r.state.align {
	case "left", "right", "center":
		return r.state.align
	case "end":
		if rightToLeft(s) {
			return "left"
		}
		return "right"
	default:
		if rightToLeft(s) {
			return "right"
		}
		return "left"
	}
}

func rightToLeft(s string) bool {
	p := bidi.Paragraph{}
	if _, err := p.SetString(s, bidi.DefaultDirection(bidi.Neutral)); err != nil {
		return false
	}
	ordering, err := p.Order()
	if err != nil {
		return false
	}
	for i := 0; i < ordering.NumRuns(); i++ {
		run := ordering.Run(i)
		if start, _ := run.Pos(); start == 0 {
			return run.Direction() == bidi.RightToLeft
		}
	}
	return false
}
