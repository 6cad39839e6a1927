// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package compose

import (
	"strconv"
	"strings"

	"github.com/gogpu/paintlet/htmldoc"
)

// offset returns the translation applied to el by its own transform and
// the transforms of its ancestors.
func offset(el *htmldoc.Element) (dx, dy float64) {
	for e := el; e != nil; e = e.Parent() {
		x, y := translation(e.Style().Get("transform"))
		dx += x
		dy += y
	}
	return dx, dy
}

// translation parses a list of translate functions, for example
// "translateY(-40px)" or "translate(2px, 3px) translateX(1px)". Other
// functions are ignored.
func translation(s string) (dx, dy float64) {
	for s = strings.TrimSpace(s); s != ""; s = strings.TrimSpace(s) {
		open := strings.IndexByte(s, '(')
		end := strings.IndexByte(s, ')')
		if open < 0 || end < open {
			break
		}
		name, args := strings.TrimSpace(s[:open]), strings.Split(s[open+1:end], ",")
		s = s[end+1:]

		switch name {
		case "translateX":
			dx += pixels(args[0])
		case "translateY":
			dy += pixels(args[0])
		case "translate":
			dx += pixels(args[0])
			if len(args) > 1 {
				dy += pixels(args[1])
			}
		}
	}
	return dx, dy
}

func pixels(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(s), "px"), 64)
	if err != nil {
		return 0
	}
	return v
}
