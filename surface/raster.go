// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"fmt"
	"image"
	"log/slog"
	"math"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"

	"github.com/gogpu/paintlet"
	"github.com/gogpu/paintlet/canvas"
)

// drawState is the part of the canvas drawing state that gg does not keep
// across Push/Pop. gg keeps the transform and the clip.
type drawState struct {
	fill, stroke gg.RGBA
	alpha        float64
	composite    string

	lineWidth  float64
	lineCap    gg.LineCap
	lineJoin   gg.LineJoin
	miterLimit float64
	dash       []float64

	font     Font
	align    string
	baseline string

	shadowX, shadowY float64
	shadowBlur       float64
	shadowColor      gg.RGBA
}

func defaultState() drawState {
	font, _ := ParseFont(DefaultFont)
	return drawState{
		fill:        gg.Black,
		stroke:      gg.Black,
		alpha:       1,
		composite:   "source-over",
		lineWidth:   1,
		lineCap:     gg.LineCapButt,
		lineJoin:    gg.LineJoinMiter,
		miterLimit:  10,
		font:        font,
		align:       "start",
		baseline:    "alphabetic",
		shadowColor: gg.Transparent,
	}
}

func (s *drawState) hasShadow() bool {
	return s.shadowColor.A > 0 && (s.shadowX != 0 || s.shadowY != 0 || s.shadowBlur > 0)
}

// Raster is a canvas.Surface that draws into an RGBA image with gg.
//
// The current path is kept in device coordinates, like a canvas path: each
// point is transformed when it is added, so later transform changes do not
// move it.
type Raster struct {
	ctx    *gg.Context
	width  int
	height int

	path  *gg.Path
	state drawState
	stack []drawState

	outlines *text.OutlineExtractor

	log    *slog.Logger
	warned map[string]bool
}

var (
	_ canvas.Surface = (*Raster)(nil)
	_ Imager         = (*Raster)(nil)
)

// NewRaster returns a transparent raster surface. Sizes below one pixel
// are rounded up to one.
func NewRaster(width, height int) *Raster {
	width, height = max(width, 1), max(height, 1)
	return &Raster{
		ctx:    gg.NewContext(width, height),
		width:  width,
		height: height,
		path:   gg.NewPath(),
		state:  defaultState(),
		log:    paintlet.Logger(),
		warned: make(map[string]bool),
	}
}

// Width returns the surface width in pixels.
func (r *Raster) Width() int { return r.width }

// Height returns the surface height in pixels.
func (r *Raster) Height() int { return r.height }

// Image returns the rendered pixels.
func (r *Raster) Image() image.Image { return r.ctx.Image() }

// Context returns the underlying gg context.
func (r *Raster) Context() *gg.Context { return r.ctx }

// SavePNG writes the surface to a PNG file.
func (r *Raster) SavePNG(path string) error {
	return r.ctx.SavePNG(path)
}

// warnOnce logs an unsupported feature the first time it is used.
func (r *Raster) warnOnce(feature string, args ...any) {
	if r.warned[feature] {
		return
	}
	r.warned[feature] = true
	r.log.Warn("surface: unsupported "+feature, args...)
}

// SetProperty implements canvas.Surface. Values that cannot be parsed are
// ignored, as a canvas ignores them.
func (r *Raster) SetProperty(k canvas.Kind, v any) error {
	st := &r.state
	switch k {
	case canvas.CmdAlpha:
		if a := v.(float64); a >= 0 && a <= 1 {
			st.alpha = a
		}
	case canvas.CmdCompositeOperation:
		st.composite = v.(string)
	case canvas.CmdShadowOffsetX:
		st.shadowX = v.(float64)
	case canvas.CmdShadowOffsetY:
		st.shadowY = v.(float64)
	case canvas.CmdShadowBlur:
		if b := v.(float64); b >= 0 {
			st.shadowBlur = b
		}
	case canvas.CmdShadowColor:
		r.color(&st.shadowColor, v.(string))
	case canvas.CmdLineWidth:
		if w := v.(float64); w > 0 {
			st.lineWidth = w
		}
	case canvas.CmdLineCap:
		if c, ok := lineCaps[v.(string)]; ok {
			st.lineCap = c
		}
	case canvas.CmdLineJoin:
		if j, ok := lineJoins[v.(string)]; ok {
			st.lineJoin = j
		}
	case canvas.CmdMiterLimit:
		if m := v.(float64); m > 0 {
			st.miterLimit = m
		}
	case canvas.CmdFont:
		f, err := ParseFont(v.(string))
		if err != nil {
			r.log.Debug("surface: ignoring font", "err", err)
			break
		}
		st.font = f
	case canvas.CmdTextAlign:
		st.align = v.(string)
	case canvas.CmdTextBaseline:
		st.baseline = v.(string)
	case canvas.CmdFillStyle:
		r.color(&st.fill, v.(string))
	case canvas.CmdStrokeStyle:
		r.color(&st.stroke, v.(string))
	default:
		return fmt.Errorf("%w: %s is not a property", canvas.ErrUnsupportedCommand, k)
	}
	return nil
}

func (r *Raster) color(dst *gg.RGBA, s string) {
	c, err := ParseColor(s)
	if err != nil {
		r.log.Debug("surface: ignoring color", "err", err)
		return
	}
	*dst = c
}

var lineCaps = map[string]gg.LineCap{
	"butt":   gg.LineCapButt,
	"round":  gg.LineCapRound,
	"square": gg.LineCapSquare,
}

var lineJoins = map[string]gg.LineJoin{
	"miter": gg.LineJoinMiter,
	"round": gg.LineJoinRound,
	"bevel": gg.LineJoinBevel,
}

// Invoke implements canvas.Surface.
func (r *Raster) Invoke(k canvas.Kind, args []any) error {
	cmd := canvas.Command{Kind: k, Args: args}
	switch k {
	case canvas.CmdSave:
		r.save()
	case canvas.CmdRestore:
		r.restore()
	case canvas.CmdScale:
		r.ctx.Scale(cmd.Number(0), cmd.Number(1))
	case canvas.CmdRotate:
		r.ctx.Rotate(cmd.Number(0))
	case canvas.CmdTranslate:
		r.ctx.Translate(cmd.Number(0), cmd.Number(1))
	case canvas.CmdTransform:
		r.ctx.Transform(matrix(cmd))
	case canvas.CmdSetTransform:
		r.ctx.SetTransform(matrix(cmd))
	case canvas.CmdResetTransform:
		r.ctx.Identity()
	case canvas.CmdLineDash:
		r.state.dash = append([]float64(nil), cmd.Numbers(0)...)
		if len(r.state.dash)%2 == 1 {
			r.state.dash = append(r.state.dash, r.state.dash...)
		}

	case canvas.CmdBeginPath:
		r.path.Clear()
	case canvas.CmdClosePath:
		if r.path.HasCurrentPoint() {
			r.path.Close()
		}
	case canvas.CmdMoveTo:
		r.moveTo(cmd.Number(0), cmd.Number(1))
	case canvas.CmdLineTo:
		r.lineTo(cmd.Number(0), cmd.Number(1))
	case canvas.CmdQuadraticCurveTo:
		r.ensurePoint(cmd.Number(0), cmd.Number(1))
		c := r.point(cmd.Number(0), cmd.Number(1))
		p := r.point(cmd.Number(2), cmd.Number(3))
		r.path.QuadraticTo(c.X, c.Y, p.X, p.Y)
	case canvas.CmdBezierCurveTo:
		r.ensurePoint(cmd.Number(0), cmd.Number(1))
		r.cubicTo(r.point(cmd.Number(0), cmd.Number(1)), r.point(cmd.Number(2), cmd.Number(3)), r.point(cmd.Number(4), cmd.Number(5)))
	case canvas.CmdArcTo:
		return r.arcTo(cmd.Number(0), cmd.Number(1), cmd.Number(2), cmd.Number(3), cmd.Number(4))
	case canvas.CmdRect:
		r.rect(r.path, cmd.Number(0), cmd.Number(1), cmd.Number(2), cmd.Number(3))
	case canvas.CmdArc:
		ccw := len(args) > 5 && cmd.Bool(5)
		return r.arc(cmd.Number(0), cmd.Number(1), cmd.Number(2), cmd.Number(3), cmd.Number(4), ccw)

	case canvas.CmdFill:
		return r.paint(r.path, false)
	case canvas.CmdStroke:
		return r.paint(r.path, true)
	case canvas.CmdClip:
		r.clip()
	case canvas.CmdFillRect, canvas.CmdStrokeRect:
		p := gg.NewPath()
		r.rect(p, cmd.Number(0), cmd.Number(1), cmd.Number(2), cmd.Number(3))
		return r.paint(p, k == canvas.CmdStrokeRect)
	case canvas.CmdClearRect:
		r.clearRect(cmd.Number(0), cmd.Number(1), cmd.Number(2), cmd.Number(3))
	case canvas.CmdFillText, canvas.CmdStrokeText:
		maxWidth, limited := cmd.OptNumber(3)
		return r.text(cmd.Text(0), cmd.Number(1), cmd.Number(2), maxWidth, limited, k == canvas.CmdStrokeText)

	default:
		return fmt.Errorf("%w: %s", canvas.ErrUnsupportedCommand, k)
	}
	return nil
}

// matrix converts canvas transform arguments (a, b, c, d, e, f) to gg's
// row-major layout.
func matrix(cmd canvas.Command) gg.Matrix {
	return gg.Matrix{
		A: cmd.Number(0), B: cmd.Number(2), C: cmd.Number(4),
		D: cmd.Number(1), E: cmd.Number(3), F: cmd.Number(5),
	}
}

func (r *Raster) save() {
	st := r.state
	st.dash = append([]float64(nil), r.state.dash...)
	r.stack = append(r.stack, st)
	r.ctx.Push()
}

func (r *Raster) restore() {
	if len(r.stack) == 0 {
		return
	}
	r.state = r.stack[len(r.stack)-1]
	r.stack = r.stack[:len(r.stack)-1]
	r.ctx.Pop()
}

func (r *Raster) point(x, y float64) gg.Point {
	return r.ctx.GetTransform().TransformPoint(gg.Pt(x, y))
}

func (r *Raster) moveTo(x, y float64) {
	p := r.point(x, y)
	r.path.MoveTo(p.X, p.Y)
}

func (r *Raster) lineTo(x, y float64) {
	if !r.path.HasCurrentPoint() {
		r.moveTo(x, y)
		return
	}
	p := r.point(x, y)
	r.path.LineTo(p.X, p.Y)
}

// ensurePoint starts a subpath at (x, y) when the path is empty, as
// canvas curves do.
func (r *Raster) ensurePoint(x, y float64) {
	if !r.path.HasCurrentPoint() {
		r.moveTo(x, y)
	}
}

func (r *Raster) cubicTo(c1, c2, p gg.Point) {
	r.path.CubicTo(c1.X, c1.Y, c2.X, c2.Y, p.X, p.Y)
}

// rect appends a closed rectangle subpath to p and moves back to its origin.
func (r *Raster) rect(p *gg.Path, x, y, w, h float64) {
	corners := [4]gg.Point{
		r.point(x, y), r.point(x+w, y), r.point(x+w, y+h), r.point(x, y+h),
	}
	p.MoveTo(corners[0].X, corners[0].Y)
	for _, c := range corners[1:] {
		p.LineTo(c.X, c.Y)
	}
	p.Close()
	p.MoveTo(corners[0].X, corners[0].Y)
}

// setPath loads p into the gg context. The caller must have reset the
// context transform, since p is already in device coordinates.
func (r *Raster) setPath(p *gg.Path) {
	r.ctx.SetPath(p)
}

// inDevice runs fn with the identity transform and restores the current
// transform afterwards.
func (r *Raster) inDevice(fn func() error) error {
	m := r.ctx.GetTransform()
	r.ctx.Identity()
	defer r.ctx.SetTransform(m)
	return fn()
}

// paint fills or strokes p with the current style, shadow first.
func (r *Raster) paint(p *gg.Path, stroke bool) error {
	if r.state.composite != "source-over" {
		r.warnOnce("composite operation", "op", r.state.composite)
	}
	if r.state.hasShadow() {
		if r.state.shadowBlur > 0 {
			r.warnOnce("shadow blur", "blur", r.state.shadowBlur)
		}
		shadow := p.Transform(gg.Translate(r.state.shadowX, r.state.shadowY))
		if err := r.draw(shadow, r.state.shadowColor, stroke); err != nil {
			return err
		}
	}
	col := r.state.fill
	if stroke {
		col = r.state.stroke
	}
	return r.draw(p, col, stroke)
}

func (r *Raster) draw(p *gg.Path, col gg.RGBA, stroke bool) error {
	col.A *= r.state.alpha
	if col.A == 0 {
		return nil
	}
	m := r.ctx.GetTransform()
	scale := math.Sqrt(math.Abs(m.A*m.E - m.B*m.D))
	return r.inDevice(func() error {
		r.setPath(p)
		r.ctx.SetFillBrush(gg.Solid(col))
		if !stroke {
			return r.ctx.Fill()
		}
		r.applyStroke(scale)
		return r.ctx.Stroke()
	})
}

// applyStroke configures gg's stroke. The path is drawn in device space,
// so widths are scaled by the transform.
func (r *Raster) applyStroke(scale float64) {
	st := &r.state
	r.ctx.SetLineWidth(st.lineWidth * scale)
	r.ctx.SetLineCap(st.lineCap)
	r.ctx.SetLineJoin(st.lineJoin)
	r.ctx.SetMiterLimit(st.miterLimit)
	if len(st.dash) == 0 {
		r.ctx.ClearDash()
		return
	}
	dash := make([]float64, len(st.dash))
	for i, d := range st.dash {
		dash[i] = d * scale
	}
	r.ctx.SetDash(dash...)
}

func (r *Raster) clip() {
	_ = r.inDevice(func() error {
		r.setPath(r.path)
		r.ctx.Clip()
		return nil
	})
}

// clearRect makes the device-space bounding box of the rectangle
// transparent.
func (r *Raster) clearRect(x, y, w, h float64) {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, c := range [4]gg.Point{r.point(x, y), r.point(x+w, y), r.point(x+w, y+h), r.point(x, y+h)} {
		minX, maxX = min(minX, c.X), max(maxX, c.X)
		minY, maxY = min(minY, c.Y), max(maxY, c.Y)
	}
	x0, y0 := max(int(math.Floor(minX)), 0), max(int(math.Floor(minY)), 0)
	x1, y1 := min(int(math.Ceil(maxX)), r.width), min(int(math.Ceil(maxY)), r.height)
	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			r.ctx.SetPixel(px, py, gg.Transparent)
		}
	}
}
