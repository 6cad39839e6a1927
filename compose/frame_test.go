// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package compose

import (
	"image/color"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gogpu/paintlet/canvas"
	"github.com/gogpu/paintlet/htmldoc"
	"github.com/gogpu/paintlet/layer"
	"github.com/gogpu/paintlet/surface"
)

const page = `<body>
<div id="card" style="left: 10px; top: 10px; width: 20px; height: 20px; background-color: lime"></div>
</body>`

// setup parses src and returns it with an engine drawing to raster
// surfaces.
func setup(t *testing.T, src string) (*htmldoc.Document, *layer.Engine, *surface.Provider) {
	t.Helper()
	doc, err := htmldoc.Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	surfaces := surface.NewProvider("raster")
	return doc, layer.New(doc, surfaces), surfaces
}

func composite(t *testing.T, doc *htmldoc.Document, src Source) *Frame {
	t.Helper()
	f := NewFrame(40, 40)
	if err := f.Composite(doc, src); err != nil {
		t.Fatalf("Composite: %v", err)
	}
	return f
}

func pixel(f *Frame, x, y int) color.RGBA {
	return f.Image().RGBAAt(x, y)
}

var (
	red         = color.RGBA{255, 0, 0, 255}
	lime        = color.RGBA{0, 255, 0, 255}
	blue        = color.RGBA{0, 0, 255, 255}
	transparent = color.RGBA{}
)

func TestNewFrame(t *testing.T) {
	f := NewFrame(8, 6)
	if f.Width() != 8 || f.Height() != 6 {
		t.Errorf("size = %dx%d, want 8x6", f.Width(), f.Height())
	}
	if got := pixel(f, 3, 3); got != transparent {
		t.Errorf("pixel = %v, want transparent", got)
	}
	f.Clear(red)
	if got := pixel(f, 3, 3); got != red {
		t.Errorf("pixel after Clear = %v, want red", got)
	}
}

func TestCompositeStacking(t *testing.T) {
	doc, eng, surfaces := setup(t, page)
	card := doc.ByID("card")

	l := eng.RegisterPaint(card, layer.Background, func(ctx *canvas.Buffer) {
		ctx.SetFillStyle("red")
		ctx.FillRect(0, 0, 30, 30)
		ctx.PaintSuper()
		ctx.SetFillStyle("blue")
		ctx.FillRect(5, 5, 5, 5)
	})
	l.SetAdditionalRect(layer.Insets{Top: 5, Right: 5, Bottom: 5, Left: 5})
	if err := eng.PaintElement(card); err != nil {
		t.Fatalf("PaintElement: %v", err)
	}

	f := composite(t, doc, surfaces)
	tests := []struct {
		x, y int
		want color.RGBA
	}{
		{7, 7, red},
		{32, 32, red},
		{20, 20, lime},
		{12, 12, blue},
		{2, 2, transparent},
	}
	for _, tt := range tests {
		if got := pixel(f, tt.x, tt.y); got != tt.want {
			t.Errorf("pixel (%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestCompositeClipsNativeBox(t *testing.T) {
	doc, eng, surfaces := setup(t, page)
	card := doc.ByID("card")

	eng.RegisterPaint(card, layer.Background, func(ctx *canvas.Buffer) {
		ctx.BeginPath()
		ctx.Rect(0, 0, 10, 10)
		ctx.Clip()
		ctx.PaintSuper()
	})
	if err := eng.PaintElement(card); err != nil {
		t.Fatalf("PaintElement: %v", err)
	}

	f := composite(t, doc, surfaces)
	if got := pixel(f, 15, 15); got != lime {
		t.Errorf("inside clip = %v, want lime", got)
	}
	if got := pixel(f, 25, 25); got != transparent {
		t.Errorf("outside clip = %v, want transparent", got)
	}
}

func TestCompositeWithoutPaint(t *testing.T) {
	doc, _, surfaces := setup(t, page)
	f := composite(t, doc, surfaces)
	if got := pixel(f, 25, 25); got != lime {
		t.Errorf("native box = %v, want lime", got)
	}
}

func TestCompositeHonorsTransformAndDisplay(t *testing.T) {
	doc, _, surfaces := setup(t, `<body>
<div id="a" style="left: 0; top: 20px; width: 10px; height: 10px; background-color: blue; transform: translateY(-20px)"></div>
<div id="b" style="display: none; left: 20px; top: 20px; width: 10px; height: 10px; background-color: red">
  <div style="left: 0; top: 0; width: 5px; height: 5px; background-color: red"></div>
</div>
</body>`)

	f := composite(t, doc, surfaces)
	if got := pixel(f, 5, 5); got != blue {
		t.Errorf("translated box = %v, want blue", got)
	}
	if got := pixel(f, 5, 25); got != transparent {
		t.Errorf("original position = %v, want transparent", got)
	}
	if got := pixel(f, 22, 22); got != transparent {
		t.Errorf("hidden element = %v, want transparent", got)
	}
}

func TestCompositeBackground(t *testing.T) {
	doc, err := htmldoc.Parse(strings.NewReader(`<body></body>`))
	if err != nil {
		t.Fatal(err)
	}
	f := NewFrame(4, 4, WithBackground(red))
	if err := f.Composite(doc, surface.NewProvider("raster")); err != nil {
		t.Fatal(err)
	}
	if got := pixel(f, 1, 1); got != red {
		t.Errorf("background = %v, want red", got)
	}
}

func TestSavePNG(t *testing.T) {
	f := NewFrame(4, 4, WithBackground(blue))
	f.Clear(blue)
	if err := f.SavePNG(filepath.Join(t.TempDir(), "frame.png")); err != nil {
		t.Errorf("SavePNG: %v", err)
	}
}

func TestTranslation(t *testing.T) {
	tests := []struct {
		in     string
		dx, dy float64
	}{
		{"", 0, 0},
		{"translateY(-40px)", 0, -40},
		{"translateX(3px)", 3, 0},
		{"translate(2px, 3px) translateX(1px)", 3, 3},
		{"translate(4px)", 4, 0},
		{"rotate(45deg) translateY(2px)", 0, 2},
		{"none", 0, 0},
	}
	for _, tt := range tests {
		dx, dy := translation(tt.in)
		if dx != tt.dx || dy != tt.dy {
			t.Errorf("translation(%q) = (%v, %v), want (%v, %v)", tt.in, dx, dy, tt.dx, tt.dy)
		}
	}
}
