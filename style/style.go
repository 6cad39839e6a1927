// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package style keeps per-element style maps and derives the style state
// that paint callbacks read: registered custom properties with initial
// values, apply handlers and inheritance, scroll-linked properties of
// scroller elements, and keyframe animation of custom properties.
package style

import (
	"slices"
	"strings"
)

// Style is an ordered map of CSS property names to values.
// The zero value is an empty style ready to use.
type Style struct {
	keys []string
	vals map[string]string
	// inherited marks values copied from the parent; they are replaced
	// when the parent's value changes, unlike values set on the element.
	inherited map[string]bool
}

// Get returns the value of name, or "" if it is not set.
func (s *Style) Get(name string) string {
	return s.vals[name]
}

// Lookup returns the value of name and whether it is set.
func (s *Style) Lookup(name string) (string, bool) {
	v, ok := s.vals[name]
	return v, ok
}

// Has reports whether name is set.
func (s *Style) Has(name string) bool {
	_, ok := s.vals[name]
	return ok
}

// Set assigns value to name. New names are appended to the key order.
func (s *Style) Set(name, value string) {
	s.set(name, value)
	delete(s.inherited, name)
}

func (s *Style) set(name, value string) {
	if s.vals == nil {
		s.vals = make(map[string]string)
	}
	if _, ok := s.vals[name]; !ok {
		s.keys = append(s.keys, name)
	}
	s.vals[name] = value
}

// inherit sets name to a value received from the parent. It reports
// whether the style changed. Values set on the element itself win.
func (s *Style) inherit(name, value string) bool {
	if s.Has(name) && !s.inherited[name] {
		return false
	}
	if v, ok := s.vals[name]; ok && v == value {
		return false
	}
	s.set(name, value)
	if s.inherited == nil {
		s.inherited = make(map[string]bool)
	}
	s.inherited[name] = true
	return true
}

// Delete removes name.
func (s *Style) Delete(name string) {
	if _, ok := s.vals[name]; !ok {
		return
	}
	delete(s.vals, name)
	delete(s.inherited, name)
	s.keys = slices.DeleteFunc(s.keys, func(k string) bool { return k == name })
}

// Keys returns the property names in the order they were first set.
func (s *Style) Keys() []string {
	return slices.Clone(s.keys)
}

// Len returns the number of properties.
func (s *Style) Len() int { return len(s.keys) }

// String renders the style as a declaration block body,
// e.g. "width: 10px; color: red".
func (s *Style) String() string {
	var sb strings.Builder
	for i, k := range s.keys {
		if i > 0 {
			sb.WriteString("; ")
		}
		sb.WriteString(k)
		sb.WriteString(": ")
		sb.WriteString(s.vals[k])
	}
	return sb.String()
}
