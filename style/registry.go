// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package style

import (
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/gogpu/paintlet"
	"github.com/gogpu/paintlet/layer"
)

// DefaultMaxScroll is the largest scroll offset a scroller reaches unless
// configured otherwise.
const DefaultMaxScroll = 1600

// Scroll-linked properties published on scrollers.
const (
	ScrollDeltas        = "scroll-deltas"
	OldScrollOffset     = "old-scroll-offset"
	ComputedScrollDelta = "computed-scroll-delta"
	ScrollOffset        = "scroll-offset"
	Transform           = "transform"
)

// Inherit is the value an Apply handler returns to leave a property alone.
const Inherit = "inherit"

// Styled is an element that carries a style map.
type Styled interface {
	Style() *Style
	StyledChildren() []Styled
}

// Invalidator is told when an element's style must be processed again.
type Invalidator interface {
	InvalidateStyle(el layer.Element)
}

// Property describes a custom property.
type Property struct {
	// Initial is assigned to elements that do not set the property.
	// Empty means no initial value.
	Initial string
	// Inherit copies the element's value to children that do not set it.
	Inherit bool
	// Apply derives other properties from the value. Returned entries are
	// written to the element's style, except those equal to Inherit.
	Apply func(value string, computed *Style) map[string]string
	// AnimateAs makes the property animatable by Animate. For list
	// properties it applies to each item.
	AnimateAs Interpolation
}

type scroller struct {
	deltas []float64
	pos    float64
}

// Registry holds custom property handlers and scroller state, and performs
// StyleInvalid work for the scheduler.
type Registry struct {
	props     map[string]Property
	order     []string
	lists     map[string]bool
	scrollers map[layer.Element]*scroller
	anims     []*animation
	maxScroll float64
	inval     Invalidator
	log       *slog.Logger
}

// Option configures a Registry.
type Option func(*Registry)

// WithInvalidator sets who is told about style invalidations.
func WithInvalidator(inv Invalidator) Option {
	return func(r *Registry) { r.inval = inv }
}

// WithMaxScroll sets the largest scroll offset.
func WithMaxScroll(limit float64) Option {
	return func(r *Registry) { r.maxScroll = limit }
}

// WithLogger sets the registry's logger.
func WithLogger(l *slog.Logger) Option {
	return func(r *Registry) {
		if l != nil {
			r.log = l
		}
	}
}

// NewRegistry returns an empty registry.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		props:     make(map[string]Property),
		lists:     make(map[string]bool),
		scrollers: make(map[layer.Element]*scroller),
		maxScroll: DefaultMaxScroll,
		log:       paintlet.Logger(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// SetInvalidator replaces the registry's invalidator.
func (r *Registry) SetInvalidator(inv Invalidator) {
	r.inval = inv
}

// RegisterProperty installs a handler for name, replacing any previous one.
// Handlers run in registration order.
func (r *Registry) RegisterProperty(name string, p Property) {
	if _, ok := r.props[name]; !ok {
		r.order = append(r.order, name)
	}
	r.props[name] = p
	delete(r.lists, name)
}

// RegisterListProperty installs a handler for a property whose value is a
// comma-separated list, such as "4px, 8px". Animation interpolates the
// items pairwise.
func (r *Registry) RegisterListProperty(name string, p Property) {
	r.RegisterProperty(name, p)
	r.lists[name] = true
}

// IsList reports whether name was registered as a list property.
func (r *Registry) IsList(name string) bool {
	return r.lists[name]
}

// IsRegistered reports whether name has a handler.
func (r *Registry) IsRegistered(name string) bool {
	_, ok := r.props[name]
	return ok
}

// Set assigns a property on el. Setting a registered property invalidates
// el's style.
func (r *Registry) Set(el layer.Element, name, value string) error {
	st, ok := el.(Styled)
	if !ok {
		return ErrNotStyled
	}
	st.Style().Set(name, value)
	if r.IsRegistered(name) {
		r.invalidate(el)
	}
	return nil
}

func (r *Registry) invalidate(el layer.Element) {
	if r.inval != nil {
		r.inval.InvalidateStyle(el)
	}
}

// MarkScroller makes el scroll-linked. Its scroll offset starts at zero.
func (r *Registry) MarkScroller(el layer.Element) {
	if _, ok := r.scrollers[el]; ok {
		return
	}
	r.scrollers[el] = &scroller{}
	r.invalidate(el)
}

// IsScroller reports whether el was marked as a scroller.
func (r *Registry) IsScroller(el layer.Element) bool {
	_, ok := r.scrollers[el]
	return ok
}

// AddScrollDelta queues a scroll movement of dy for el. Positive deltas
// scroll towards the top.
func (r *Registry) AddScrollDelta(el layer.Element, dy float64) error {
	sc, ok := r.scrollers[el]
	if !ok {
		return ErrNotScroller
	}
	sc.deltas = append(sc.deltas, dy)
	r.invalidate(el)
	return nil
}

// ScrollOffset returns el's current scroll offset.
func (r *Registry) ScrollOffset(el layer.Element) float64 {
	if sc, ok := r.scrollers[el]; ok {
		return sc.pos
	}
	return 0
}

// ProcessStyle re-derives el's style: scroll-linked properties for
// scrollers, initial values and apply handlers of custom properties, and
// inherited values of children. Elements without a style map are skipped.
func (r *Registry) ProcessStyle(el layer.Element) error {
	st, ok := el.(Styled)
	if !ok {
		return nil
	}
	if sc, ok := r.scrollers[el]; ok {
		if err := r.scroll(st.Style(), sc); err != nil {
			return err
		}
	} else {
		r.applyCustom(st.Style())
	}
	r.propagate(st)
	return nil
}

func (r *Registry) scroll(s *Style, sc *scroller) error {
	var sum float64
	for _, d := range sc.deltas {
		sum += d
	}
	old := sc.pos
	pos := min(max(0, sc.pos-sum), r.maxScroll)

	deltas := make([]string, len(sc.deltas))
	for i, d := range sc.deltas {
		deltas[i] = formatNumber(d)
	}
	s.Set(ScrollDeltas, strings.Join(deltas, ","))
	s.Set(OldScrollOffset, formatNumber(old))
	s.Set(ComputedScrollDelta, formatNumber(-sum))
	s.Set(ScrollOffset, formatNumber(pos))
	r.applyCustom(s)

	// Handlers may move the scroller.
	v := s.Get(ScrollOffset)
	pos, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fmt.Errorf("style: %s %q: %w", ScrollOffset, v, ErrInvalidValue)
	}
	sc.pos = pos
	sc.deltas = sc.deltas[:0]
	s.Set(Transform, "translateY("+formatNumber(-pos)+"px)")
	r.log.Debug("style: scrolled", "from", old, "to", pos)
	return nil
}

func (r *Registry) applyCustom(s *Style) {
	for _, name := range r.order {
		if p := r.props[name]; p.Initial != "" && !s.Has(name) {
			s.Set(name, p.Initial)
		}
	}
	for _, name := range r.order {
		p := r.props[name]
		v, ok := s.Lookup(name)
		if !ok || p.Apply == nil {
			continue
		}
		out := p.Apply(v, s)
		for _, k := range slices.Sorted(maps.Keys(out)) {
			if out[k] != Inherit {
				s.Set(k, out[k])
			}
		}
	}
}

// propagate copies inherited custom properties to el's children and
// invalidates the children whose style changed.
func (r *Registry) propagate(el Styled) {
	s := el.Style()
	for _, child := range el.StyledChildren() {
		changed := false
		for _, name := range r.order {
			v, ok := s.Lookup(name)
			if !ok || !r.props[name].Inherit {
				continue
			}
			if child.Style().inherit(name, v) {
				changed = true
			}
		}
		if !changed {
			continue
		}
		if c, ok := child.(layer.Element); ok {
			r.invalidate(c)
		}
	}
}

func formatNumber(v float64) string {
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
