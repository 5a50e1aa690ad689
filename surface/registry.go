// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
)

// TargetFactory creates a new Target with the given pixel size. The size
// has already been checked to be positive.
type TargetFactory func(width, height int) (Target, error)

// Backend is a named way of creating targets.
type Backend struct {
	Name string

	// Priority orders backends for NewDefaultTarget, highest first.
	Priority int

	New TargetFactory
}

// Registry holds backends ordered by priority, ties broken by name.
type Registry struct {
	mu       sync.RWMutex
	backends []Backend
}

// NewRegistry creates a registry holding the given backends.
func NewRegistry(backends ...Backend) *Registry {
	r := &Registry{}
	for _, b := range backends {
		r.Register(b)
	}
	return r
}

// Register adds b, replacing any backend with the same name.
func (r *Registry) Register(b Backend) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.backends = slices.DeleteFunc(r.backends, func(e Backend) bool { return e.Name == b.Name })
	r.backends = append(r.backends, b)
	slices.SortStableFunc(r.backends, func(x, y Backend) int {
		if x.Priority != y.Priority {
			return y.Priority - x.Priority
		}
		return strings.Compare(x.Name, y.Name)
	})
}

// Names returns the backend names, preferred first.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, len(r.backends))
	for i, b := range r.backends {
		names[i] = b.Name
	}
	return names
}

// NewTarget creates a width x height target with the named backend.
func (r *Registry) NewTarget(name string, width, height int) (Target, error) {
	if width <= 0 || height <= 0 {
		return nil, &SizeError{Width: width, Height: height}
	}

	r.mu.RLock()
	i := slices.IndexFunc(r.backends, func(b Backend) bool { return b.Name == name })
	var b Backend
	if i >= 0 {
		b = r.backends[i]
	}
	r.mu.RUnlock()

	if i < 0 {
		return nil, &BackendNotFoundError{Name: name, Known: r.Names()}
	}
	return b.New(width, height)
}

// NewDefaultTarget creates a target with the first backend, in priority
// order, whose factory succeeds. If every factory fails the errors are
// joined.
func (r *Registry) NewDefaultTarget(width, height int) (Target, error) {
	if width <= 0 || height <= 0 {
		return nil, &SizeError{Width: width, Height: height}
	}

	r.mu.RLock()
	backends := slices.Clone(r.backends)
	r.mu.RUnlock()

	if len(backends) == 0 {
		return nil, ErrNoBackendAvailable
	}
	var errs []error
	for _, b := range backends {
		t, err := b.New(width, height)
		if err == nil {
			return t, nil
		}
		errs = append(errs, fmt.Errorf("%s: %w", b.Name, err))
	}
	return nil, errors.Join(errs...)
}

var defaultRegistry = NewRegistry(
	Backend{Name: "image", Priority: 10, New: func(width, height int) (Target, error) {
		return NewImageSurface(width, height), nil
	}},
	Backend{Name: "record", Priority: 0, New: func(width, height int) (Target, error) {
		return NewRecorder(width, height), nil
	}},
)

// Available returns the built-in backend names, preferred first:
// "image" rasterizes into an *image.RGBA, "record" only records calls.
func Available() []string { return defaultRegistry.Names() }

// NewTarget creates a target with the named built-in backend.
func NewTarget(name string, width, height int) (Target, error) {
	return defaultRegistry.NewTarget(name, width, height)
}

// NewDefaultTarget creates a target with the preferred built-in backend.
func NewDefaultTarget(width, height int) (Target, error) {
	return defaultRegistry.NewDefaultTarget(width, height)
}

// ErrNoBackendAvailable is returned by NewDefaultTarget on an empty registry.
var ErrNoBackendAvailable = errors.New("surface: no backend available")

// BackendNotFoundError reports an unknown backend name.
type BackendNotFoundError struct {
	Name  string
	Known []string
}

func (e *BackendNotFoundError) Error() string {
	return fmt.Sprintf("surface: unknown backend %q (available: %s)", e.Name, strings.Join(e.Known, ", "))
}

// SizeError reports a non-positive target size.
type SizeError struct {
	Width, Height int
}

func (e *SizeError) Error() string {
	return fmt.Sprintf("surface: invalid target size %dx%d", e.Width, e.Height)
}
