// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"errors"

	"github.com/gogpu/quadwarp"
)

// Target is a quadwarp.Canvas with a fixed pixel size and a lifetime.
type Target interface {
	quadwarp.Canvas

	// Width returns the target width in pixels.
	Width() int

	// Height returns the target height in pixels.
	Height() int

	// Close releases all resources associated with the target.
	// After Close, the target must not be used.
	// Close is idempotent; multiple calls are safe.
	Close() error
}

// Errors returned by targets.
var (
	// ErrClosed is returned when drawing on a closed target.
	ErrClosed = errors.New("surface: target is closed")

	// ErrNoFillPattern is returned by Fill when no pattern is active.
	ErrNoFillPattern = errors.New("surface: no fill pattern set")

	// ErrUnsupportedPattern is returned by Fill when the active pattern was
	// created by a different target type.
	ErrUnsupportedPattern = errors.New("surface: unsupported pattern")

	// ErrNilImage is returned by CreatePattern for a nil image.
	ErrNilImage = errors.New("surface: nil pattern image")
)
