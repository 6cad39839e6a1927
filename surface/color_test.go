// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"errors"
	"math"
	"testing"

	"github.com/gogpu/gg"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want gg.RGBA
	}{
		{"#f00", gg.RGBA{R: 1, A: 1}},
		{"#00ff00", gg.RGBA{G: 1, A: 1}},
		{"#0000ff80", gg.RGBA{B: 1, A: 128.0 / 255}},
		{"  RED ", gg.RGBA{R: 1, A: 1}},
		{"transparent", gg.RGBA{}},
		{"rgb(255, 0, 0)", gg.RGBA{R: 1, A: 1}},
		{"rgba(0, 0, 255, 0.5)", gg.RGBA{B: 1, A: 0.5}},
		{"rgb(100%, 50%, 0%)", gg.RGBA{R: 1, G: 0.5, A: 1}},
		{"rgb(0 0 0 / 25%)", gg.RGBA{A: 0.25}},
		{"rgb(300, -5, 0)", gg.RGBA{R: 1, A: 1}},
		{"white", gg.RGBA{R: 1, G: 1, B: 1, A: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if err != nil {
				t.Fatalf("ParseColor(%q): %v", tt.in, err)
			}
			if !closeColor(got, tt.want) {
				t.Errorf("ParseColor(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseColorInvalid(t *testing.T) {
	for _, in := range []string{"", "#12", "#ggg", "rgb(1, 2)", "rgb(a, b, c)", "rgb(1, 2, 3", "notacolor"} {
		if _, err := ParseColor(in); !errors.Is(err, ErrInvalidColor) {
			t.Errorf("ParseColor(%q) error = %v, want ErrInvalidColor", in, err)
		}
	}
}

func closeColor(a, b gg.RGBA) bool {
	const eps = 1e-3
	return math.Abs(a.R-b.R) < eps && math.Abs(a.G-b.G) < eps &&
		math.Abs(a.B-b.B) < eps && math.Abs(a.A-b.A) < eps
}
