// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package pipeline

import (
	"errors"
	"log/slog"
	"sync"

	"github.com/gogpu/paintlet"
)

// Queue runs tasks on a later cooperative tick.
type Queue interface {
	Enqueue(task func() error)
}

// Microtasks is a FIFO task queue drained explicitly by its owner.
// Enqueue may be called from any goroutine; Drain must not be called
// concurrently with itself.
type Microtasks struct {
	mu    sync.Mutex
	tasks []func() error
	log   *slog.Logger
}

var _ Queue = (*Microtasks)(nil)

// NewMicrotasks returns an empty queue.
func NewMicrotasks(opts ...QueueOption) *Microtasks {
	m := &Microtasks{log: paintlet.Logger()}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Enqueue appends task to the queue.
func (m *Microtasks) Enqueue(task func() error) {
	m.mu.Lock()
	m.tasks = append(m.tasks, task)
	m.mu.Unlock()
}

// Len returns the number of queued tasks.
func (m *Microtasks) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.tasks)
}

// Drain runs queued tasks until the queue is empty, including tasks
// enqueued by the tasks themselves. A failing task does not stop the
// drain; its error is logged and all errors are returned joined.
func (m *Microtasks) Drain() error {
	var errs []error
	for {
		task, ok := m.pop()
		if !ok {
			return errors.Join(errs...)
		}
		if err := task(); err != nil {
			m.log.Error("pipeline: task failed", "err", err)
			errs = append(errs, err)
		}
	}
}

func (m *Microtasks) pop() (func() error, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.tasks) == 0 {
		return nil, false
	}
	task := m.tasks[0]
	m.tasks[0] = nil
	m.tasks = m.tasks[1:]
	return task, true
}
