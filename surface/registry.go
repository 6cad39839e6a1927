// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"fmt"
	"sort"
	"sync"

	"github.com/gogpu/paintlet/canvas"
)

// Factory creates a cleared surface of the given size.
type Factory func(width, height int) canvas.Surface

var (
	registryMu sync.RWMutex
	backends   = make(map[string]Factory)
)

func init() {
	Register("raster", func(w, h int) canvas.Surface { return NewRaster(w, h) })
	Register("trace", func(int, int) canvas.Surface { return &canvas.Trace{} })
}

// Register makes a backend available under name. It panics if factory is
// nil or name is already registered.
func Register(name string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if factory == nil {
		panic("surface: Register factory is nil")
	}
	if _, dup := backends[name]; dup {
		panic("surface: Register called twice for " + name)
	}
	backends[name] = factory
}

// Unregister removes a backend. It is mostly useful in tests.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(backends, name)
}

// NewBackend creates a surface from the named backend.
func NewBackend(name string, width, height int) (canvas.Surface, error) {
	f, err := lookup(name)
	if err != nil {
		return nil, err
	}
	return f(width, height), nil
}

func lookup(name string) (Factory, error) {
	registryMu.RLock()
	f, ok := backends[name]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownBackend, name)
	}
	return f, nil
}

// Backends returns the registered backend names, sorted.
func Backends() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsRegistered reports whether a backend with the given name exists.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := backends[name]
	return ok
}
