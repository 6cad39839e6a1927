// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package pipeline

import (
	"cmp"
	"fmt"
	"log/slog"
	"slices"

	"github.com/gogpu/paintlet"
	"github.com/gogpu/paintlet/layer"
)

// Painter measures and paints elements. *layer.Engine implements it.
type Painter interface {
	Elements() []layer.Element
	MeasureAndDetectResize(el layer.Element) bool
	PaintElement(el layer.Element) error
}

// Styler re-derives an element's style. *style.Registry implements it.
type Styler interface {
	ProcessStyle(el layer.Element) error
}

// Stats counts scheduler activity.
type Stats struct {
	Flushes int // flush callbacks run
	Rearms  int // flushes that deferred because a resize changed pending work
	Visits  int // elements processed
	Styles  int // style passes
	Paints  int // paint passes
}

// invalidation is the scheduler's side table entry for one element.
type invalidation struct {
	id    uint64
	level Level
	// seq changes on every invalidation; a flush uses it to tell whether
	// an element was invalidated again while it was being processed.
	seq uint64
}

// Scheduler batches invalidations and runs them on a cooperative tick.
// It is not safe for concurrent use; call it from the goroutine that
// drains its queue.
type Scheduler struct {
	painter Painter
	styler  Styler
	queue   Queue
	log     *slog.Logger

	records map[layer.Element]*invalidation
	pending map[layer.Element]struct{}
	nextID  uint64
	armed   bool
	stats   Stats
}

var _ layer.Invalidator = (*Scheduler)(nil)

// NewScheduler returns a scheduler that paints through painter and defers
// flushes onto queue.
func NewScheduler(painter Painter, queue Queue, opts ...Option) *Scheduler {
	s := &Scheduler{
		painter: painter,
		queue:   queue,
		log:     paintlet.Logger(),
		records: make(map[layer.Element]*invalidation),
		pending: make(map[layer.Element]struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Invalidate raises el to at least level and makes sure a flush is armed.
// Invalidating below the pending level keeps the pending level.
func (s *Scheduler) Invalidate(el layer.Element, level Level) {
	s.raise(el, level)
	s.arm()
}

// InvalidatePaint is Invalidate(el, PaintInvalid).
func (s *Scheduler) InvalidatePaint(el layer.Element) { s.Invalidate(el, PaintInvalid) }

// InvalidateLayout is Invalidate(el, LayoutInvalid).
func (s *Scheduler) InvalidateLayout(el layer.Element) { s.Invalidate(el, LayoutInvalid) }

// InvalidateStyle is Invalidate(el, StyleInvalid).
func (s *Scheduler) InvalidateStyle(el layer.Element) { s.Invalidate(el, StyleInvalid) }

// Schedule arms a flush without invalidating anything, so that resizes
// are picked up. Call it once per frame.
func (s *Scheduler) Schedule() {
	s.arm()
}

// Level returns el's pending level; Valid when nothing is pending.
func (s *Scheduler) Level(el layer.Element) Level {
	if rec, ok := s.records[el]; ok {
		return rec.level
	}
	return Valid
}

// Pending returns the pending elements in processing order.
func (s *Scheduler) Pending() []layer.Element {
	out := make([]layer.Element, 0, len(s.pending))
	for el := range s.pending {
		out = append(out, el)
	}
	slices.SortFunc(out, func(a, b layer.Element) int {
		return cmp.Compare(s.records[a].id, s.records[b].id)
	})
	return out
}

// Armed reports whether a flush is queued.
func (s *Scheduler) Armed() bool { return s.armed }

// Stats returns activity counters.
func (s *Scheduler) Stats() Stats { return s.stats }

// raise reports whether it changed the pending set or a level.
func (s *Scheduler) raise(el layer.Element, level Level) bool {
	rec, ok := s.records[el]
	if !ok {
		rec = &invalidation{id: s.nextID}
		s.nextID++
		s.records[el] = rec
	}
	rec.seq++

	changed := false
	if level > rec.level {
		rec.level = level
		changed = true
	}
	if _, ok := s.pending[el]; !ok {
		s.pending[el] = struct{}{}
		changed = true
	}
	return changed
}

func (s *Scheduler) arm() {
	if s.armed {
		return
	}
	s.armed = true
	s.queue.Enqueue(s.flush)
}

func (s *Scheduler) flush() error {
	s.armed = false
	s.stats.Flushes++

	resized := false
	for _, el := range s.painter.Elements() {
		if s.painter.MeasureAndDetectResize(el) && s.raise(el, PaintInvalid) {
			resized = true
		}
	}
	if resized {
		s.stats.Rearms++
		s.log.Debug("pipeline: resize during flush, re-arming", "pending", len(s.pending))
		s.arm()
		return nil
	}

	batch := s.Pending()
	if len(batch) == 0 {
		return nil
	}
	s.log.Debug("pipeline: flush", "elements", len(batch))

	for _, el := range batch {
		rec := s.records[el]
		seq, level := rec.seq, rec.level
		s.stats.Visits++
		if err := s.process(el, level); err != nil {
			return fmt.Errorf("pipeline: %s element: %w", level, err)
		}
		if rec.seq == seq {
			rec.level = Valid
			delete(s.pending, el)
		}
	}
	return nil
}

func (s *Scheduler) process(el layer.Element, level Level) error {
	switch {
	case level >= StyleInvalid:
		if s.styler != nil {
			s.stats.Styles++
			if err := s.styler.ProcessStyle(el); err != nil {
				return err
			}
		}
		fallthrough
	case level >= PaintInvalid:
		s.stats.Paints++
		return s.painter.PaintElement(el)
	}
	return nil
}
