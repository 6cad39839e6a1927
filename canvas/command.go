// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package canvas

import (
	"strconv"
	"strings"
)

// Command is one recorded drawing operation. Args always match the schema
// of Kind: numbers are float64, number lists are []float64.
type Command struct {
	Kind Kind
	Args []any
}

// Number returns argument i as a number, or 0 when it is absent.
func (c Command) Number(i int) float64 {
	if i < len(c.Args) {
		if f, ok := c.Args[i].(float64); ok {
			return f
		}
	}
	return 0
}

// OptNumber returns argument i and whether it was recorded.
func (c Command) OptNumber(i int) (float64, bool) {
	if i < len(c.Args) {
		f, ok := c.Args[i].(float64)
		return f, ok
	}
	return 0, false
}

// Text returns argument i as a string.
func (c Command) Text(i int) string {
	if i < len(c.Args) {
		if s, ok := c.Args[i].(string); ok {
			return s
		}
	}
	return ""
}

// Bool returns argument i as a bool, false when absent.
func (c Command) Bool(i int) bool {
	if i < len(c.Args) {
		if b, ok := c.Args[i].(bool); ok {
			return b
		}
	}
	return false
}

// Numbers returns argument i as a number list.
func (c Command) Numbers(i int) []float64 {
	if i < len(c.Args) {
		if l, ok := c.Args[i].([]float64); ok {
			return l
		}
	}
	return nil
}

// String formats the command in call syntax, e.g. "moveTo(0, 10)".
func (c Command) String() string {
	var sb strings.Builder
	sb.WriteString(c.Kind.String())
	sb.WriteByte('(')
	for i, a := range c.Args {
		if i > 0 {
			sb.WriteString(", ")
		}
		writeArg(&sb, a)
	}
	sb.WriteByte(')')
	return sb.String()
}

func writeArg(sb *strings.Builder, a any) {
	switch v := a.(type) {
	case float64:
		sb.WriteString(formatNumber(v))
	case string:
		sb.WriteString(strconv.Quote(v))
	case bool:
		sb.WriteString(strconv.FormatBool(v))
	case []float64:
		sb.WriteByte('[')
		for i, f := range v {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(formatNumber(f))
		}
		sb.WriteByte(']')
	}
}

// formatNumber prints v in its shortest decimal form, never with an
// exponent, so the result is valid path data.
func formatNumber(v float64) string {
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
