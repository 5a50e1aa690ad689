// Package quadwarp draws a rectangular texture onto an arbitrary
// quadrilateral using only 2D drawing primitives.
//
// # Overview
//
// A 2D canvas can fill a path with a pattern under an affine transform, but
// an affine transform can only carry a triangle onto another triangle. A
// general quad-to-quad warp is therefore reduced to many small triangles:
// both the source and the destination quad are tessellated into a grid of
// cells, every cell is split into two triangles, and each matched pair of
// triangles is filled with its own affine transform.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/quadwarp"
//	    "github.com/gogpu/quadwarp/surface"
//	)
//
//	s := surface.NewImageSurface(640, 480)
//	src := quadwarp.RectQuad(100, 100)
//	dst := quadwarp.Quad{{10, 10}, {110, 20}, {100, 120}, {0, 110}}
//
//	err := quadwarp.DrawArbitraryQuadImage(s, texture, src, dst,
//	    quadwarp.WithMethod(quadwarp.Perspective))
//
// # Methods
//
// Two ways of locating grid points inside a quad are available:
//   - Bilinear: two nested linear interpolations across the quad edges.
//     Never fails, even for degenerate quads.
//   - Perspective: a homography from the unit square to the quad. Correct
//     foreshortening, but degenerate quads are rejected with ErrInvalidQuad.
//
// # Seams
//
// Adjacent triangles are rasterized independently, so rounding can leave
// hairline gaps between them. Every triangle is grown slightly beyond its
// cell (see Config.SeamOverlap) and the whole warp is clipped to the
// destination quad so the overlap never leaks outside it.
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//
// Quads are given as top-left, top-right, bottom-right, bottom-left; source
// and destination quads must list corresponding corners in the same order.
package quadwarp
