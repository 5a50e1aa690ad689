// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package surface provides drawing targets for quadwarp.
//
// Every target implements quadwarp.Canvas, the minimal canvas contract a
// quad warp needs: path construction, clipping, an affine transform stack
// and pattern fills. Two targets are built in:
//
//   - ImageSurface: CPU rendering into an *image.RGBA. Coverage masks come
//     from golang.org/x/image/vector and textured fills from
//     golang.org/x/image/draw.
//   - Recorder: keeps every canvas call as an Op without drawing. Useful
//     for tests and for tracing what a warp would do.
//
// # Registry
//
// Targets are registered by name so tools can pick a backend at runtime:
//
//	t, err := surface.NewTarget("image", 800, 600)
//	// or the highest-priority available backend:
//	t, err := surface.NewDefaultTarget(800, 600)
//
// # Usage
//
//	s := surface.NewImageSurface(800, 600)
//	defer s.Close()
//
//	s.Clear(color.White)
//	err := quadwarp.DrawArbitraryQuadImage(s, texture,
//	    quadwarp.RectQuad(256, 256),
//	    quadwarp.Quad{{100, 80}, {420, 40}, {460, 400}, {60, 360}})
//
//	img := s.Snapshot()
//
// ImageSurface is NOT thread-safe. It should be used from a single
// goroutine, or external synchronization must be used.
package surface
