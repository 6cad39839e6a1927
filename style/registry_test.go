// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package style

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/paintlet/layer"
)

type node struct {
	style Style
	kids  []*node
}

func (n *node) ContentBox() (float64, float64) { return 0, 0 }
func (n *node) Border() layer.Insets           { return layer.Insets{} }
func (n *node) Bounds() layer.Rect             { return layer.Rect{} }
func (n *node) Style() *Style                  { return &n.style }

func (n *node) StyledChildren() []Styled {
	out := make([]Styled, len(n.kids))
	for i, k := range n.kids {
		out[i] = k
	}
	return out
}

type plain struct{}

func (plain) ContentBox() (float64, float64) { return 0, 0 }
func (plain) Border() layer.Insets           { return layer.Insets{} }
func (plain) Bounds() layer.Rect             { return layer.Rect{} }

type invalidations []layer.Element

func (i *invalidations) InvalidateStyle(el layer.Element) { *i = append(*i, el) }

func TestRegistrySetInvalidates(t *testing.T) {
	var inv invalidations
	r := NewRegistry(WithInvalidator(&inv))
	r.RegisterProperty("--radius", Property{Initial: "4"})
	el := &node{}

	require.NoError(t, r.Set(el, "color", "red"))
	assert.Empty(t, inv, "plain properties do not invalidate")

	require.NoError(t, r.Set(el, "--radius", "8"))
	assert.Equal(t, invalidations{el}, inv)
	assert.Equal(t, "8", el.style.Get("--radius"))

	assert.ErrorIs(t, r.Set(plain{}, "--radius", "1"), ErrNotStyled)
}

func TestProcessStyleInitialAndApply(t *testing.T) {
	r := NewRegistry()
	r.RegisterProperty("--size", Property{
		Initial: "3",
		Apply: func(v string, computed *Style) map[string]string {
			return map[string]string{
				"width":  v + "px",
				"height": v + "px",
				"color":  Inherit,
			}
		},
	})
	r.RegisterProperty("--unset", Property{
		Apply: func(string, *Style) map[string]string {
			t.Error("handler ran for an unset property")
			return nil
		},
	})

	el := &node{}
	el.style.Set("color", "blue")
	require.NoError(t, r.ProcessStyle(el))

	assert.Equal(t, "3", el.style.Get("--size"))
	assert.Equal(t, "3px", el.style.Get("width"))
	assert.Equal(t, "3px", el.style.Get("height"))
	assert.Equal(t, "blue", el.style.Get("color"), "inherit leaves the value alone")

	el.style.Set("--size", "7")
	require.NoError(t, r.ProcessStyle(el))
	assert.Equal(t, "7px", el.style.Get("width"))
}

func TestProcessStyleHandlersRunInRegistrationOrder(t *testing.T) {
	r := NewRegistry()
	var order []string
	for _, name := range []string{"--b", "--a", "--c"} {
		r.RegisterProperty(name, Property{
			Initial: "x",
			Apply: func(string, *Style) map[string]string {
				order = append(order, name)
				return nil
			},
		})
	}
	require.NoError(t, r.ProcessStyle(&node{}))
	assert.Equal(t, []string{"--b", "--a", "--c"}, order)
}

func TestProcessStyleInheritance(t *testing.T) {
	var inv invalidations
	r := NewRegistry(WithInvalidator(&inv))
	r.RegisterProperty("--tint", Property{Inherit: true})
	r.RegisterProperty("--local", Property{})

	own := &node{}
	own.style.Set("--tint", "green")
	child := &node{}
	parent := &node{kids: []*node{child, own}}
	parent.style.Set("--tint", "red")
	parent.style.Set("--local", "1")

	require.NoError(t, r.ProcessStyle(parent))
	assert.Equal(t, "red", child.style.Get("--tint"))
	assert.Equal(t, "green", own.style.Get("--tint"))
	assert.False(t, child.style.Has("--local"))
	assert.Equal(t, invalidations{child}, inv)

	inv = nil
	require.NoError(t, r.ProcessStyle(parent))
	assert.Empty(t, inv, "unchanged inherited values do not invalidate")

	parent.style.Set("--tint", "blue")
	require.NoError(t, r.ProcessStyle(parent))
	assert.Equal(t, "blue", child.style.Get("--tint"))
	assert.Equal(t, invalidations{child}, inv)
}

func TestProcessStyleSkipsUnstyled(t *testing.T) {
	assert.NoError(t, NewRegistry().ProcessStyle(plain{}))
}

func TestScroller(t *testing.T) {
	var inv invalidations
	r := NewRegistry(WithInvalidator(&inv))
	el := &node{}

	assert.ErrorIs(t, r.AddScrollDelta(el, 10), ErrNotScroller)

	r.MarkScroller(el)
	r.MarkScroller(el)
	assert.True(t, r.IsScroller(el))
	assert.Len(t, inv, 1)

	require.NoError(t, r.AddScrollDelta(el, -30))
	require.NoError(t, r.AddScrollDelta(el, -20))
	require.NoError(t, r.ProcessStyle(el))

	assert.Equal(t, 50.0, r.ScrollOffset(el))
	assert.Equal(t, "-30,-20", el.style.Get(ScrollDeltas))
	assert.Equal(t, "0", el.style.Get(OldScrollOffset))
	assert.Equal(t, "50", el.style.Get(ComputedScrollDelta))
	assert.Equal(t, "50", el.style.Get(ScrollOffset))
	assert.Equal(t, "translateY(-50px)", el.style.Get(Transform))

	// Deltas are consumed by processing.
	require.NoError(t, r.ProcessStyle(el))
	assert.Equal(t, "", el.style.Get(ScrollDeltas))
	assert.Equal(t, "50", el.style.Get(OldScrollOffset))
	assert.Equal(t, "0", el.style.Get(ComputedScrollDelta))
}

func TestScrollerClamps(t *testing.T) {
	tests := []struct {
		name   string
		max    float64
		deltas []float64
		want   float64
	}{
		{"above top", DefaultMaxScroll, []float64{25}, 0},
		{"past bottom", DefaultMaxScroll, []float64{-1000, -1000}, 1600},
		{"custom limit", 300, []float64{-500}, 300},
		{"within range", DefaultMaxScroll, []float64{-100, 40}, 60},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRegistry(WithMaxScroll(tt.max))
			el := &node{}
			r.MarkScroller(el)
			for _, d := range tt.deltas {
				require.NoError(t, r.AddScrollDelta(el, d))
			}
			require.NoError(t, r.ProcessStyle(el))
			assert.Equal(t, tt.want, r.ScrollOffset(el))
		})
	}
}

func TestScrollerHandlerMovesPosition(t *testing.T) {
	r := NewRegistry()
	r.RegisterProperty(ScrollOffset, Property{
		Apply: func(v string, _ *Style) map[string]string {
			// Snap back to 100.
			if strings.HasPrefix(v, "1") {
				return map[string]string{ScrollOffset: "100"}
			}
			return nil
		},
	})
	el := &node{}
	r.MarkScroller(el)
	require.NoError(t, r.AddScrollDelta(el, -130))
	require.NoError(t, r.ProcessStyle(el))
	assert.Equal(t, 100.0, r.ScrollOffset(el))
	assert.Equal(t, "translateY(-100px)", el.style.Get(Transform))
}

func TestScrollerInvalidOffset(t *testing.T) {
	r := NewRegistry()
	r.RegisterProperty(ScrollOffset, Property{
		Apply: func(string, *Style) map[string]string {
			return map[string]string{ScrollOffset: "far"}
		},
	})
	el := &node{}
	r.MarkScroller(el)
	assert.ErrorIs(t, r.ProcessStyle(el), ErrInvalidValue)
}
