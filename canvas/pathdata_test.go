// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package canvas

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"testing"
)

func cmd(k Kind, args ...any) Command {
	norm, err := validate(k, args)
	if err != nil {
		panic(err)
	}
	return Command{Kind: k, Args: norm}
}

func TestPathData(t *testing.T) {
	tests := []struct {
		name string
		cmds []Command
		want string
	}{
		{
			name: "empty",
			want: "M 0 0",
		},
		{
			name: "triangle",
			cmds: []Command{
				cmd(CmdMoveTo, 0, 0),
				cmd(CmdLineTo, 10, 0),
				cmd(CmdLineTo, 10, 10),
				cmd(CmdClosePath),
			},
			want: "M 0 0 M 0 0 L 10 0 L 10 10 Z",
		},
		{
			name: "curves",
			cmds: []Command{
				cmd(CmdQuadraticCurveTo, 1, 2, 3, 4),
				cmd(CmdBezierCurveTo, 1, 2, 3, 4, 5.5, 6),
			},
			want: "M 0 0 Q 1 2 3 4 C 1 2 3 4 5.5 6",
		},
		{
			name: "rect",
			cmds: []Command{cmd(CmdRect, 1, 2, 3, 4)},
			want: "M 0 0 M 1 2 L 4 2 L 4 6 L 1 6 L 1 2",
		},
		{
			name: "half circle clockwise",
			cmds: []Command{cmd(CmdArc, 0, 0, 10, 0, math.Pi, false)},
			want: "M 0 0 L 10 0 A 10 10 0 1 1 -10 " + formatNumber(10*math.Sin(math.Pi)),
		},
		{
			name: "small anticlockwise sweep is the long way round",
			cmds: []Command{cmd(CmdArc, 0, 0, 10, 0, math.Pi/2, true)},
			want: "M 0 0 L 10 0 A 10 10 0 1 0 " + formatNumber(10*math.Cos(math.Pi/2)) + " 10",
		},
		{
			name: "large anticlockwise delta is the short way round",
			cmds: []Command{cmd(CmdArc, 0, 0, 10, 0, 3*math.Pi/2, true)},
			want: "M 0 0 L 10 0 A 10 10 0 0 0 " +
				formatNumber(10*math.Cos(3*math.Pi/2)) + " -10",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := PathData(tt.cmds)
			if err != nil {
				t.Fatalf("PathData() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("PathData() =\n  %q\nwant\n  %q", got, tt.want)
			}
		})
	}
}

func TestPathDataUnsupported(t *testing.T) {
	for _, c := range []Command{
		cmd(CmdArcTo, 0, 0, 10, 10, 5),
		cmd(CmdFill),
		cmd(CmdFillRect, 0, 0, 1, 1),
	} {
		if _, err := PathData([]Command{c}); !errors.Is(err, ErrUnsupportedCommand) {
			t.Errorf("PathData(%s) error = %v, want ErrUnsupportedCommand", c, err)
		}
	}
}

// segment is one parsed path-data command.
type segment struct {
	op   string
	args []float64
}

func parsePathData(t *testing.T, d string) []segment {
	t.Helper()
	var segs []segment
	for _, f := range strings.Fields(d) {
		if v, err := strconv.ParseFloat(f, 64); err == nil {
			if len(segs) == 0 {
				t.Fatalf("number %q before any command", f)
			}
			segs[len(segs)-1].args = append(segs[len(segs)-1].args, v)
			continue
		}
		segs = append(segs, segment{op: f})
	}
	return segs
}

func near(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestPathDataFullCircle(t *testing.T) {
	d, err := PathData([]Command{cmd(CmdArc, 0, 0, 5, 0, 2*math.Pi, false)})
	if err != nil {
		t.Fatal(err)
	}
	segs := parsePathData(t, d)

	var arcs []segment
	var pen [2]float64
	for _, s := range segs {
		switch s.op {
		case "M", "L":
			pen = [2]float64{s.args[0], s.args[1]}
		case "A":
			if len(s.args) != 7 {
				t.Fatalf("arc %v has %d args", s.args, len(s.args))
			}
			end := [2]float64{s.args[5], s.args[6]}
			if near(end[0], pen[0]) && near(end[1], pen[1]) {
				t.Fatalf("zero-sweep arc in %q", d)
			}
			if s.args[0] != 5 || s.args[1] != 5 {
				t.Errorf("arc radii = %v,%v, want 5", s.args[0], s.args[1])
			}
			arcs = append(arcs, s)
			pen = end
		}
	}
	if len(arcs) != 2 {
		t.Fatalf("got %d arcs in %q, want 2", len(arcs), d)
	}

	ends := [][2]float64{{-5, 0}, {5, 0}}
	for i, a := range arcs {
		if !near(a.args[5], ends[i][0]) || !near(a.args[6], ends[i][1]) {
			t.Errorf("arc %d ends at (%v, %v), want %v", i, a.args[5], a.args[6], ends[i])
		}
	}

	last := segs[len(segs)-1]
	if last.op != "M" || !near(last.args[0], 5) || !near(last.args[1], 0) {
		t.Errorf("path must end with a move to the arc end, got %v", last)
	}
}

func TestPathDataNegativeFullTurn(t *testing.T) {
	d, err := PathData([]Command{cmd(CmdArc, 10, 10, 2, math.Pi, -math.Pi, true)})
	if err != nil {
		t.Fatal(err)
	}
	if n := strings.Count(d, "A "); n != 2 {
		t.Errorf("got %d arcs in %q, want 2", n, d)
	}
}

func TestClampAngle(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{math.Pi / 2, math.Pi / 2},
		{-math.Pi / 2, 3 * math.Pi / 2},
		{0, 2 * math.Pi},
		{3 * math.Pi, math.Pi},
	}
	for _, tt := range tests {
		if got := clampAngle(tt.in); !near(got, tt.want) {
			t.Errorf("clampAngle(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{math.Copysign(0, -1), "0"},
		{10, "10"},
		{-2.5, "-2.5"},
		{1e6, "1000000"},
	}
	for _, tt := range tests {
		if got := formatNumber(tt.in); got != tt.want {
			t.Errorf("formatNumber(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
