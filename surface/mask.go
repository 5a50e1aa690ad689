// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"image"
	"image/draw"

	"golang.org/x/image/vector"
)

// rasterizeMask renders the anti-aliased coverage of path restricted to
// bounds. The returned mask's Rect is bounds itself, so it can be indexed
// with device coordinates. clip, when non-nil, is multiplied in.
func rasterizeMask(z *vector.Rasterizer, path *Path, bounds image.Rectangle, clip *image.Alpha) *image.Alpha {
	if clip != nil {
		bounds = bounds.Intersect(clip.Rect)
	}
	if bounds.Empty() {
		return nil
	}

	w, h := bounds.Dx(), bounds.Dy()
	z.Reset(w, h)
	z.DrawOp = draw.Src
	path.addTo(z, bounds.Min)

	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	// Same stride and size: rebasing Rect moves the mask to device space.
	mask.Rect = bounds

	if clip != nil {
		intersectMask(mask, clip)
	}
	return mask
}

// intersectMask multiplies dst by clip over dst's rectangle. Pixels of dst
// outside clip become transparent.
func intersectMask(dst, clip *image.Alpha) {
	r := dst.Rect
	for y := r.Min.Y; y < r.Max.Y; y++ {
		row := dst.Pix[dst.PixOffset(r.Min.X, y):]
		for i := 0; i < r.Dx(); i++ {
			a := row[i]
			if a == 0 {
				continue
			}
			c := clip.AlphaAt(r.Min.X+i, y).A
			row[i] = uint8((uint32(a)*uint32(c) + 127) / 255)
		}
	}
}

// emptyMask returns a mask that excludes every pixel.
func emptyMask() *image.Alpha {
	return &image.Alpha{}
}
