// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"image"

	"github.com/gogpu/quadwarp"
)

// ImagePattern is a non-repeating image fill created by
// ImageSurface.CreatePattern. Pattern coordinate (0, 0) is the top-left
// pixel of the image, whatever its Bounds().Min.
type ImagePattern struct {
	img    image.Image
	filter Filter
}

// Bounds returns the pattern extent in pattern coordinates.
func (p *ImagePattern) Bounds() image.Rectangle {
	return image.Rectangle{Max: p.img.Bounds().Size()}
}

// Image returns the source image.
func (p *ImagePattern) Image() image.Image {
	return p.img
}

// Filter returns the interpolation mode used when sampling the pattern.
func (p *ImagePattern) Filter() Filter {
	return p.filter
}

var _ quadwarp.Pattern = (*ImagePattern)(nil)
