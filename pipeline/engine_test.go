// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package pipeline_test

import (
	"testing"

	"github.com/gogpu/paintlet/canvas"
	"github.com/gogpu/paintlet/layer"
	"github.com/gogpu/paintlet/pipeline"
)

type card struct{ w, h float64 }

func (c *card) ContentBox() (float64, float64) { return c.w, c.h }
func (c *card) Border() layer.Insets           { return layer.Insets{} }
func (c *card) Bounds() layer.Rect             { return layer.Rect{W: c.w, H: c.h} }

type host struct{ scaffolds int }

func (h *host) Scaffold(layer.Element, layer.Geometry) error                  { h.scaffolds++; return nil }
func (h *host) ClipTarget(layer.Element, layer.SurfaceKind) canvas.ClipTarget { return nil }

type surfaces map[string]*canvas.Trace

func (s surfaces) Surface(id string, _, _ int) (canvas.Surface, error) {
	t := &canvas.Trace{}
	s[id] = t
	return t, nil
}

func TestEnginePaintCycle(t *testing.T) {
	h, surf := &host{}, surfaces{}
	engine := layer.New(h, surf)
	queue := pipeline.NewMicrotasks()
	sched := pipeline.NewScheduler(engine, queue)
	engine.SetInvalidator(sched)

	el := &card{w: 100, h: 50}
	var sizes [][2]float64
	l := engine.RegisterPaint(el, layer.Background, func(ctx *canvas.Buffer) {
		sizes = append(sizes, [2]float64{ctx.Width(), ctx.Height()})
		ctx.SetFillStyle("#336699")
		ctx.FillRect(0, 0, ctx.Width(), ctx.Height())
	})
	if queue.Len() != 1 {
		t.Fatalf("registration armed %d ticks, want 1", queue.Len())
	}
	if err := queue.Drain(); err != nil {
		t.Fatal(err)
	}
	if len(sizes) != 1 || h.scaffolds != 1 {
		t.Fatalf("painted %d times, scaffolded %d times", len(sizes), h.scaffolds)
	}
	if got := surf[l.Lower()].String(); got != "fillStyle = \"#336699\"\nfillRect(0, 0, 100, 50)\n" {
		t.Errorf("lower surface got:\n%s", got)
	}

	el.w = 120
	sched.Schedule()
	if err := queue.Drain(); err != nil {
		t.Fatal(err)
	}
	if len(sizes) != 2 || sizes[1] != [2]float64{120, 50} {
		t.Errorf("resize repaint sizes = %v", sizes)
	}

	sched.Schedule()
	if err := queue.Drain(); err != nil {
		t.Fatal(err)
	}
	if len(sizes) != 2 {
		t.Errorf("unchanged element repainted; sizes = %v", sizes)
	}
}
