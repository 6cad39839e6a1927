// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package style

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStyleOrder(t *testing.T) {
	var s Style
	s.Set("width", "10px")
	s.Set("color", "red")
	s.Set("width", "20px")

	assert.Equal(t, []string{"width", "color"}, s.Keys())
	assert.Equal(t, "20px", s.Get("width"))
	assert.Equal(t, "width: 20px; color: red", s.String())
	assert.Equal(t, 2, s.Len())

	s.Delete("width")
	s.Delete("missing")
	assert.False(t, s.Has("width"))
	assert.Equal(t, "", s.Get("width"))
	assert.Equal(t, []string{"color"}, s.Keys())

	_, ok := s.Lookup("color")
	assert.True(t, ok)
}

func TestStyleInherit(t *testing.T) {
	var s Style
	assert.True(t, s.inherit("--tint", "red"))
	assert.False(t, s.inherit("--tint", "red"), "same value is not a change")
	assert.True(t, s.inherit("--tint", "blue"), "inherited values follow the parent")

	s.Set("--tint", "green")
	assert.False(t, s.inherit("--tint", "blue"), "own values win")
	assert.Equal(t, "green", s.Get("--tint"))
}
