// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package main

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/gogpu/paintlet/canvas"
	"github.com/gogpu/paintlet/htmldoc"
	"github.com/gogpu/paintlet/layer"
	"github.com/gogpu/paintlet/style"
)

const defaultPage = `<!doctype html>
<html><head><style>
#card { left: 20px; top: 20px; width: 140px; height: 80px; padding: 10px; background-color: #fdf6e3; }
#viewport { left: 180px; top: 20px; width: 120px; height: 200px; background-color: #eee8d5; }
#list { left: 0; top: 0; width: 120px; height: 296px; }
.item { left: 8px; width: 104px; height: 40px; background-color: #268bd2; }
</style></head><body>
<div id="card"></div>
<div id="viewport"><div id="list">
  <div class="item" id="one" style="top: 8px"></div>
  <div class="item" id="two" style="top: 56px"></div>
  <div class="item" id="three" style="top: 104px"></div>
  <div class="item" id="four" style="top: 152px"></div>
  <div class="item" id="five" style="top: 200px"></div>
  <div class="item" id="six" style="top: 248px"></div>
</div></div>
</body></html>`

const (
	shadow = 6.0
	radius = 12.0
)

// install registers the demo's custom properties and paint callbacks.
func (a *app) install() error {
	a.styles.RegisterProperty("--accent", style.Property{Initial: "#d33682", Inherit: true})
	a.styles.RegisterProperty("--label", style.Property{Initial: "paintlet"})
	a.styles.RegisterProperty("--ring", style.Property{Initial: "1px", AnimateAs: style.Length})
	a.styles.RegisterListProperty("--bars", style.Property{
		Initial:   "6px, 3px",
		Inherit:   true,
		AnimateAs: style.Length,
	})

	if card := a.doc.ByID("card"); card != nil {
		p := card.Padding()
		bg := a.engine.RegisterPaint(card, layer.Background, paintCard(card))
		bg.SetAdditionalRect(layer.Insets{
			Top:    p.Top,
			Right:  p.Right + shadow,
			Bottom: p.Bottom + shadow,
			Left:   p.Left,
		})
		a.engine.RegisterPaint(card, layer.Content, paintLabel(card))
		a.sched.InvalidateStyle(card)
		err := a.styles.Animate(card, []style.Keyframe{
			{"--ring": "1px"}, {"--ring": "6px"}, {"--ring": "1px"},
		}, 600*time.Millisecond)
		if err != nil {
			return err
		}
	}

	if list := a.doc.ByID("list"); list != nil {
		a.styles.MarkScroller(list)
		for _, item := range list.Children() {
			a.engine.RegisterPaint(item, layer.Background, paintItem(item))
		}
		a.sched.InvalidateStyle(list)
		err := a.styles.Animate(list, []style.Keyframe{
			{"--bars": "6px, 3px"}, {"--bars": "18px, 9px"},
		}, 400*time.Millisecond)
		if err != nil {
			return err
		}
	}
	return nil
}

// paintCard draws a rounded card with a drop shadow below the native box,
// clips the native box to the card shape and strokes an accent ring above
// it.
func paintCard(card *htmldoc.Element) layer.PaintFunc {
	return func(ctx *canvas.Buffer) {
		w, h := ctx.Width()-shadow, ctx.Height()-shadow

		ctx.SetShadowColor("rgba(0, 0, 0, 0.35)")
		ctx.SetShadowOffsetX(shadow)
		ctx.SetShadowOffsetY(shadow)
		ctx.SetFillStyle("#fdf6e3")
		roundRect(ctx, 0, 0, w, h, radius)
		ctx.Fill()
		ctx.Clip()

		ctx.PaintSuper()
		ctx.SetShadowColor("transparent")
		ring := cssLength(card.Style().Get("--ring"), 1)
		ctx.SetLineWidth(ring)
		ctx.SetStrokeStyle(card.Style().Get("--accent"))
		roundRect(ctx, ring/2, ring/2, w-ring, h-ring, radius-ring/2)
		ctx.Stroke()
	}
}

func paintLabel(card *htmldoc.Element) layer.PaintFunc {
	return func(ctx *canvas.Buffer) {
		ctx.PaintSuper()
		ctx.SetFont("bold 16px sans-serif")
		ctx.SetFillStyle(card.Style().Get("--accent"))
		ctx.SetTextAlign("center")
		ctx.SetTextBaseline("middle")
		ctx.FillTextMax(card.Style().Get("--label"), ctx.Width()/2, ctx.Height()/2, ctx.Width())
	}
}

func paintItem(item *htmldoc.Element) layer.PaintFunc {
	return func(ctx *canvas.Buffer) {
		ctx.PaintSuper()
		ctx.SetFillStyle(item.Style().Get("--accent"))
		x := 0.0
		for _, bar := range strings.Split(item.Style().Get("--bars"), ",") {
			w := cssLength(bar, 0)
			ctx.FillRect(x, 0, w, ctx.Height())
			x += w + 2
		}
		ctx.SetFont("12px monospace")
		ctx.SetFillStyle("white")
		ctx.SetTextBaseline("middle")
		ctx.FillText(item.ID(), x+6, ctx.Height()/2)
	}
}

// cssLength parses a px or unitless length, falling back to def.
func cssLength(v string, def float64) float64 {
	f, err := strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(v), "px"), 64)
	if err != nil {
		return def
	}
	return f
}

// roundRect adds a rounded rectangle subpath. Corners use arc so the path
// can also serve as a clip.
func roundRect(ctx *canvas.Buffer, x, y, w, h, r float64) {
	r = min(r, w/2, h/2)
	ctx.BeginPath()
	ctx.MoveTo(x+r, y)
	ctx.LineTo(x+w-r, y)
	ctx.Arc(x+w-r, y+r, r, -math.Pi/2, 0, false)
	ctx.LineTo(x+w, y+h-r)
	ctx.Arc(x+w-r, y+h-r, r, 0, math.Pi/2, false)
	ctx.LineTo(x+r, y+h)
	ctx.Arc(x+r, y+h-r, r, math.Pi/2, math.Pi, false)
	ctx.LineTo(x, y+r)
	ctx.Arc(x+r, y+r, r, math.Pi, 3*math.Pi/2, false)
	ctx.ClosePath()
}
