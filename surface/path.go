// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"fmt"
	"math"

	"github.com/gogpu/paintlet/canvas"
)

// arc appends a circular arc in user space, approximated by cubic Bezier
// segments of at most a quarter turn.
func (r *Raster) arc(cx, cy, radius, start, end float64, anticlockwise bool) error {
	if radius < 0 {
		return fmt.Errorf("%w: negative arc radius %g", canvas.ErrInvalidArguments, radius)
	}

	sweep := end - start
	switch {
	case !anticlockwise && sweep >= 2*math.Pi:
		sweep = 2 * math.Pi
	case anticlockwise && sweep <= -2*math.Pi:
		sweep = -2 * math.Pi
	default:
		sweep = math.Mod(sweep, 2*math.Pi)
		if !anticlockwise && sweep < 0 {
			sweep += 2 * math.Pi
		}
		if anticlockwise && sweep > 0 {
			sweep -= 2 * math.Pi
		}
	}

	x0, y0 := cx+radius*math.Cos(start), cy+radius*math.Sin(start)
	r.lineTo(x0, y0)
	if radius == 0 || sweep == 0 {
		return nil
	}

	n := int(math.Ceil(math.Abs(sweep) / (math.Pi / 2)))
	step := sweep / float64(n)
	k := 4.0 / 3.0 * math.Tan(step/4)
	a := start
	for range n {
		b := a + step
		cosA, sinA := math.Cos(a), math.Sin(a)
		cosB, sinB := math.Cos(b), math.Sin(b)
		r.cubicTo(
			r.point(cx+radius*(cosA-k*sinA), cy+radius*(sinA+k*cosA)),
			r.point(cx+radius*(cosB+k*sinB), cy+radius*(sinB-k*cosB)),
			r.point(cx+radius*cosB, cy+radius*sinB),
		)
		a = b
	}
	return nil
}

// arcTo appends an arc of the given radius tangent to the lines from the
// current point to (x1, y1) and from (x1, y1) to (x2, y2).
func (r *Raster) arcTo(x1, y1, x2, y2, radius float64) error {
	if radius < 0 {
		return fmt.Errorf("%w: negative arc radius %g", canvas.ErrInvalidArguments, radius)
	}
	if !r.path.HasCurrentPoint() {
		r.moveTo(x1, y1)
		return nil
	}

	p0 := r.ctx.GetTransform().Invert().TransformPoint(r.path.CurrentPoint())

	dx0, dy0 := p0.X-x1, p0.Y-y1
	dx2, dy2 := x2-x1, y2-y1
	len0, len2 := math.Hypot(dx0, dy0), math.Hypot(dx2, dy2)
	cross := dx0*dy2 - dy0*dx2
	if radius == 0 || len0 == 0 || len2 == 0 || math.Abs(cross) < 1e-9 {
		r.lineTo(x1, y1)
		return nil
	}

	// Half the angle between the two tangent lines.
	cos := (dx0*dx2 + dy0*dy2) / (len0 * len2)
	half := math.Acos(math.Max(-1, math.Min(1, cos))) / 2
	dist := radius / math.Tan(half)

	tx0, ty0 := x1+dx0/len0*dist, y1+dy0/len0*dist
	tx2, ty2 := x1+dx2/len2*dist, y1+dy2/len2*dist

	// The centre lies along the bisector, radius/sin(half) from the corner.
	bx, by := dx0/len0+dx2/len2, dy0/len0+dy2/len2
	blen := math.Hypot(bx, by)
	c := radius / math.Sin(half)
	cx, cy := x1+bx/blen*c, y1+by/blen*c

	start := math.Atan2(ty0-cy, tx0-cx)
	end := math.Atan2(ty2-cy, tx2-cx)
	return r.arc(cx, cy, radius, start, end, cross > 0)
}
