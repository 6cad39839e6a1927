// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package htmldoc

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	selcss "github.com/ericchiang/css"
	"golang.org/x/net/html"
)

// declaration is one property: value pair.
type declaration struct {
	prop      string
	value     string
	important bool
}

// rule is one selector of a stylesheet rule, compiled.
type rule struct {
	sel   *selcss.Selector
	spec  specificity
	order int
	decls []declaration
}

// match is a declaration that applies to an element, with what the
// cascade sorts it by.
type match struct {
	declaration
	inline bool
	spec   specificity
	order  int
}

// ApplyCSS adds a stylesheet to the document and cascades every sheet
// added so far, together with the inline styles, onto the elements.
// Winning declarations are sorted by importance, then inline before
// sheet, then specificity, then source order. Elements whose style changed
// are reported to the invalidator.
//
// Rules with selectors that do not parse are skipped; at-rules are ignored.
func (d *Document) ApplyCSS(src string) error {
	if strings.TrimSpace(src) != "" {
		sheet, err := parser.Parse(src)
		if err != nil {
			return fmt.Errorf("htmldoc: stylesheet: %w", err)
		}
		d.addRules(sheet.Rules)
	}
	d.cascade()
	return nil
}

func (d *Document) addRules(rules []*css.Rule) {
	for _, r := range rules {
		if r.Kind == css.AtRule {
			d.log.Debug("htmldoc: at-rule ignored", "rule", r.Name)
			continue
		}
		decls := convert(r.Declarations)
		for _, text := range r.Selectors {
			sel, err := selcss.Parse(text)
			if err != nil {
				d.log.Warn("htmldoc: bad selector", "selector", text, "err", err)
				continue
			}
			d.rules = append(d.rules, rule{
				sel:   sel,
				spec:  parseSpecificity(text),
				order: len(d.rules),
				decls: decls,
			})
		}
	}
}

func convert(in []*css.Declaration) []declaration {
	out := make([]declaration, 0, len(in))
	for _, decl := range in {
		out = append(out, declaration{
			prop:      strings.ToLower(strings.TrimSpace(decl.Property)),
			value:     strings.TrimSpace(decl.Value),
			important: decl.Important,
		})
	}
	return out
}

// parseInline parses a style attribute. Invalid attributes are dropped.
func (d *Document) parseInline(el *Element) {
	s := strings.TrimSpace(attr(el.node, "style"))
	if s == "" {
		return
	}
	if !strings.HasSuffix(s, ";") {
		s += ";"
	}
	decls, err := parser.ParseDeclarations(s)
	if err != nil {
		d.log.Warn("htmldoc: bad style attribute", "element", el.id, "err", err)
		return
	}
	el.inline = convert(decls)
}

func (d *Document) cascade() {
	matches := make(map[*html.Node][]match)
	for _, r := range d.rules {
		for _, n := range r.sel.Select(d.root) {
			for _, decl := range r.decls {
				matches[n] = append(matches[n], match{declaration: decl, spec: r.spec, order: r.order})
			}
		}
	}

	for _, el := range d.all() {
		ms := matches[el.node]
		for _, decl := range el.inline {
			ms = append(ms, match{declaration: decl, inline: true})
		}
		slices.SortStableFunc(ms, compareMatches)

		var props []string
		winner := make(map[string]string, len(ms))
		for _, m := range ms {
			if _, seen := winner[m.prop]; !seen {
				props = append(props, m.prop)
			}
			winner[m.prop] = m.value
		}
		if el.applyCascade(props, winner) && el != d.body {
			d.invalidateStyle(el)
		}
	}
}

// applyCascade writes the cascade winners onto e and removes values of
// properties no rule sets any more. Values set outside the cascade, by
// Resize, Move or style handlers, are kept. It reports whether the style
// changed.
func (e *Element) applyCascade(props []string, winner map[string]string) bool {
	changed := false
	for p, old := range e.cascaded {
		if _, ok := winner[p]; ok {
			continue
		}
		if cur, ok := e.style.Lookup(p); ok && cur == old && !e.pinned[p] {
			e.style.Delete(p)
			changed = true
		}
		delete(e.cascaded, p)
	}
	for _, p := range props {
		if e.owned(p) {
			continue
		}
		v := winner[p]
		if cur, ok := e.style.Lookup(p); !ok || cur != v {
			e.style.Set(p, v)
			changed = true
		}
		if e.cascaded == nil {
			e.cascaded = make(map[string]string)
		}
		e.cascaded[p] = v
	}
	return changed
}

// all returns the body followed by the elements inside it.
func (d *Document) all() []*Element {
	return append([]*Element{d.body}, d.elements...)
}

func compareMatches(a, b match) int {
	if c := compareBool(a.important, b.important); c != 0 {
		return c
	}
	if c := compareBool(a.inline, b.inline); c != 0 {
		return c
	}
	if c := a.spec.compare(b.spec); c != 0 {
		return c
	}
	return cmp.Compare(a.order, b.order)
}

func compareBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case a:
		return 1
	}
	return -1
}
