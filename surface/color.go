// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gogpu/gg"
	"golang.org/x/image/colornames"
)

// ParseColor parses a CSS color: #rgb, #rgba, #rrggbb, #rrggbbaa,
// rgb(), rgba(), "transparent" or a named color.
func ParseColor(s string) (gg.RGBA, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch {
	case s == "transparent":
		return gg.Transparent, nil
	case strings.HasPrefix(s, "#"):
		return parseHex(s)
	case strings.HasPrefix(s, "rgb(") || strings.HasPrefix(s, "rgba("):
		return parseFunc(s)
	}
	if c, ok := colornames.Map[s]; ok {
		return gg.FromColor(c), nil
	}
	return gg.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
}

func parseHex(s string) (gg.RGBA, error) {
	hex := s[1:]
	switch len(hex) {
	case 3, 4, 6, 8:
	default:
		return gg.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	if _, err := strconv.ParseUint(hex, 16, 64); err != nil {
		return gg.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	return gg.Hex(hex), nil
}

// parseFunc parses rgb(r, g, b) and rgba(r, g, b, a). Channels may be
// numbers in 0..255 or percentages; alpha is a number in 0..1 or a
// percentage.
func parseFunc(s string) (gg.RGBA, error) {
	open, end := strings.IndexByte(s, '('), strings.LastIndexByte(s, ')')
	if end < open {
		return gg.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	body := strings.ReplaceAll(s[open+1:end], "/", " ")
	fields := strings.FieldsFunc(body, func(r rune) bool { return r == ',' || r == ' ' })
	if len(fields) != 3 && len(fields) != 4 {
		return gg.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}

	var ch [4]float64
	ch[3] = 1
	for i, f := range fields {
		scale := 255.0
		if i == 3 {
			scale = 1
		}
		v, err := channel(f, scale)
		if err != nil {
			return gg.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
		}
		ch[i] = v
	}
	return gg.RGBA2(ch[0], ch[1], ch[2], ch[3]), nil
}

// channel returns f as a fraction of scale, clamped to [0, 1].
func channel(f string, scale float64) (float64, error) {
	var v float64
	var err error
	if p, ok := strings.CutSuffix(f, "%"); ok {
		v, err = strconv.ParseFloat(p, 64)
		v /= 100
	} else {
		v, err = strconv.ParseFloat(f, 64)
		v /= scale
	}
	if err != nil {
		return 0, err
	}
	return min(max(v, 0), 1), nil
}
