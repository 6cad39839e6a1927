// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package htmldoc

import "cmp"

// specificity is a selector's (ids, classes, types) weight.
type specificity [3]int

func (s specificity) compare(o specificity) int {
	for i := range s {
		if c := cmp.Compare(s[i], o[i]); c != 0 {
			return c
		}
	}
	return 0
}

// parseSpecificity computes the specificity of a single complex selector.
// Ids count in the first column; classes, attributes and pseudo-classes
// in the second; type selectors and pseudo-elements in the third. The
// argument of :not() counts instead of :not itself.
func parseSpecificity(sel string) specificity {
	var s specificity
	for i := 0; i < len(sel); {
		switch c := sel[i]; {
		case c == '#':
			s[0]++
			i = skipIdent(sel, i+1)
		case c == '.':
			s[1]++
			i = skipIdent(sel, i+1)
		case c == '[':
			s[1]++
			i = skipPast(sel, i+1, '[', ']')
		case c == ':' && i+1 < len(sel) && sel[i+1] == ':':
			s[2]++
			i = skipIdent(sel, i+2)
		case c == ':':
			end := skipIdent(sel, i+1)
			name := sel[i+1 : end]
			i = end
			if i < len(sel) && sel[i] == '(' {
				end := skipPast(sel, i+1, '(', ')')
				if name == "not" || name == "is" {
					inner := parseSpecificity(sel[i+1 : end-1])
					for k := range s {
						s[k] += inner[k]
					}
					i = end
					continue
				}
				i = end
			}
			s[1]++
		case isIdentStart(c):
			s[2]++
			i = skipIdent(sel, i)
		default:
			i++
		}
	}
	return s
}

func isIdentStart(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c == '_' || c == '-' || c >= 0x80
}

func skipIdent(s string, i int) int {
	for i < len(s) && (isIdentStart(s[i]) || s[i] >= '0' && s[i] <= '9' || s[i] == '\\') {
		if s[i] == '\\' {
			i++
		}
		i++
	}
	return min(i, len(s))
}

// skipPast returns the index after the closing bracket that balances the
// opening one consumed before i.
func skipPast(s string, i int, left, right byte) int {
	depth := 1
	for ; i < len(s); i++ {
		switch s[i] {
		case left:
			depth++
		case right:
			depth--
			if depth == 0 {
				return i + 1
			}
		}
	}
	return len(s)
}
