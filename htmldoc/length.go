// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package htmldoc

import (
	"strconv"
	"strings"

	"github.com/gogpu/paintlet/layer"
)

// length parses "12", "12px" or "12.5px". Anything else is 0.
func length(s string) float64 {
	s = strings.TrimSuffix(strings.TrimSpace(s), "px")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

func px(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "px"
}

// parseInsets parses a one to four value edge shorthand in CSS order:
// top, right, bottom, left.
func parseInsets(s string) layer.Insets {
	f := strings.Fields(s)
	v := make([]float64, len(f))
	for i, x := range f {
		v[i] = length(x)
	}
	switch len(v) {
	case 1:
		return layer.Insets{Top: v[0], Right: v[0], Bottom: v[0], Left: v[0]}
	case 2:
		return layer.Insets{Top: v[0], Right: v[1], Bottom: v[0], Left: v[1]}
	case 3:
		return layer.Insets{Top: v[0], Right: v[1], Bottom: v[2], Left: v[1]}
	case 4:
		return layer.Insets{Top: v[0], Right: v[1], Bottom: v[2], Left: v[3]}
	}
	return layer.Insets{}
}
