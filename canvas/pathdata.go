// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package canvas

import (
	"fmt"
	"math"
	"strings"
)

// PathData converts path construction commands into a path description in
// SVG path-data grammar, suitable for a CSS clip-path.
//
// The description always starts with "M 0 0". Rectangles expand into a
// move and four line segments; arcs become a line to the arc start followed
// by an elliptical arc with equal radii. ArcTo and any non-path command
// fail with ErrUnsupportedCommand.
func PathData(cmds []Command) (string, error) {
	parts := make([]string, 1, len(cmds)+1)
	parts[0] = "M 0 0"
	for _, c := range cmds {
		switch c.Kind {
		case CmdMoveTo:
			parts = append(parts, "M "+joinNumbers(c.Args))
		case CmdLineTo:
			parts = append(parts, "L "+joinNumbers(c.Args))
		case CmdQuadraticCurveTo:
			parts = append(parts, "Q "+joinNumbers(c.Args))
		case CmdBezierCurveTo:
			parts = append(parts, "C "+joinNumbers(c.Args))
		case CmdRect:
			parts = appendRect(parts, c.Number(0), c.Number(1), c.Number(2), c.Number(3))
		case CmdArc:
			parts = appendArc(parts, c.Number(0), c.Number(1), c.Number(2),
				c.Number(3), c.Number(4), c.Bool(5))
		case CmdClosePath:
			parts = append(parts, "Z")
		default:
			return "", fmt.Errorf("canvas: %s in clip path: %w", c.Kind, ErrUnsupportedCommand)
		}
	}
	return strings.Join(parts, " "), nil
}

func joinNumbers(args []any) string {
	s := make([]string, 0, len(args))
	for _, a := range args {
		if f, ok := a.(float64); ok {
			s = append(s, formatNumber(f))
		}
	}
	return strings.Join(s, " ")
}

func point(x, y float64) string {
	return formatNumber(x) + " " + formatNumber(y)
}

func appendRect(parts []string, x, y, w, h float64) []string {
	return append(parts,
		"M "+point(x, y),
		"L "+point(x+w, y),
		"L "+point(x+w, y+h),
		"L "+point(x, y+h),
		"L "+point(x, y),
	)
}

func appendArc(parts []string, x, y, r, start, end float64, anticlockwise bool) []string {
	sx, sy := x+r*math.Cos(start), y+r*math.Sin(start)
	ex, ey := x+r*math.Cos(end), y+r*math.Sin(end)

	// A full turn has coincident endpoints, which path data draws as
	// nothing. Emit two half circles and put the pen back at the end point.
	if math.Abs(end-start) >= 2*math.Pi {
		parts = appendArc(parts, x, y, r, 0, math.Pi, true)
		parts = appendArc(parts, x, y, r, math.Pi, 2*math.Pi, true)
		return append(parts, "M "+point(ex, ey))
	}

	parts = append(parts, "L "+point(sx, sy))

	delta := clampAngle(end - start)
	large := "1"
	if (delta < math.Pi && !anticlockwise) || (delta > math.Pi && anticlockwise) {
		large = "0"
	}
	// Positive sweep runs clockwise on screen.
	sweep := "1"
	if anticlockwise {
		sweep = "0"
	}
	rs := formatNumber(r)
	return append(parts, "A "+rs+" "+rs+" 0 "+large+" "+sweep+" "+point(ex, ey))
}

// clampAngle maps rad into (0, 2π].
func clampAngle(rad float64) float64 {
	const turn = 2 * math.Pi
	if rad > 0 {
		return rad - turn*math.Floor(rad/turn)
	}
	return rad + turn*(1+math.Ceil(rad/turn))
}
