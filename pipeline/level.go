// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package pipeline

// Level is how much work an element needs before its next paint.
// Higher levels include the work of all lower ones.
type Level uint8

const (
	Valid Level = iota
	PaintInvalid
	LayoutInvalid
	StyleInvalid
)

var levelNames = [...]string{
	Valid:         "valid",
	PaintInvalid:  "paint-invalid",
	LayoutInvalid: "layout-invalid",
	StyleInvalid:  "style-invalid",
}

// String returns the level name.
func (l Level) String() string {
	if int(l) < len(levelNames) {
		return levelNames[l]
	}
	return "unknown"
}
