// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	xdraw "golang.org/x/image/draw"
)

// Filter specifies the interpolation mode used when sampling patterns.
type Filter uint8

const (
	// FilterBilinear uses bilinear interpolation. This is the default.
	FilterBilinear Filter = iota

	// FilterNearest uses nearest-neighbor interpolation.
	FilterNearest

	// FilterCatmullRom uses the Catmull-Rom cubic kernel. Slowest, sharpest.
	FilterCatmullRom
)

// String returns the filter name.
func (f Filter) String() string {
	switch f {
	case FilterBilinear:
		return "bilinear"
	case FilterNearest:
		return "nearest"
	case FilterCatmullRom:
		return "catmull-rom"
	default:
		return "unknown"
	}
}

// transformer returns the x/image/draw implementation for f.
func (f Filter) transformer() xdraw.Transformer {
	switch f {
	case FilterNearest:
		return xdraw.NearestNeighbor
	case FilterCatmullRom:
		return xdraw.CatmullRom
	default:
		return xdraw.BiLinear
	}
}

// Option configures an ImageSurface.
type Option func(*options)

type options struct {
	filter Filter
}

func defaultOptions() options {
	return options{filter: FilterBilinear}
}

// WithFilter sets the interpolation mode for pattern fills.
func WithFilter(f Filter) Option {
	return func(o *options) {
		o.filter = f
	}
}
