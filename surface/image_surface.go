// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
	"golang.org/x/image/vector"

	"github.com/gogpu/quadwarp"
)

// ImageSurface is a CPU-based canvas that renders to an *image.RGBA.
//
// Paths are rasterized into anti-aliased coverage masks with
// golang.org/x/image/vector; pattern fills are composited through the
// current transform with golang.org/x/image/draw, using the coverage mask
// (already intersected with the clip) as destination mask.
//
// Example:
//
//	s := surface.NewImageSurface(800, 600)
//	defer s.Close()
//
//	s.Clear(color.White)
//	p, _ := s.CreatePattern(texture)
//	s.SetFillPattern(p)
//	s.MoveTo(100, 100)
//	s.LineTo(300, 120)
//	s.LineTo(200, 300)
//	s.ClosePath()
//	_ = s.Fill()
type ImageSurface struct {
	width  int
	height int
	img    *image.RGBA
	opts   options

	path   *Path
	state  drawState
	stack  []drawState
	raster *vector.Rasterizer

	// clipIsPath is set while state.clip was last built from the
	// unchanged current path.
	clipIsPath bool

	// closed tracks if Close has been called
	closed bool
}

// drawState is the part of the canvas state covered by Save/Restore.
// Clip masks are never mutated after creation, so copies share them.
type drawState struct {
	matrix quadwarp.Matrix
	clip   *image.Alpha // nil means unclipped
	fill   quadwarp.Pattern
}

// NewImageSurface creates a new CPU-based surface with the given dimensions.
func NewImageSurface(width, height int, opts ...Option) *ImageSurface {
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 1
	}
	return newImageSurface(image.NewRGBA(image.Rect(0, 0, width, height)), opts)
}

// NewImageSurfaceFromImage creates a surface backed by an existing image.
// The surface will render into the provided image directly.
func NewImageSurfaceFromImage(img *image.RGBA, opts ...Option) *ImageSurface {
	return newImageSurface(img, opts)
}

func newImageSurface(img *image.RGBA, opts []Option) *ImageSurface {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &ImageSurface{
		width:  img.Bounds().Dx(),
		height: img.Bounds().Dy(),
		img:    img,
		opts:   o,
		path:   NewPath(),
		state:  drawState{matrix: quadwarp.Identity()},
		stack:  make([]drawState, 0, 8),
		raster: vector.NewRasterizer(0, 0),
	}
}

// Width returns the surface width.
func (s *ImageSurface) Width() int {
	return s.width
}

// Height returns the surface height.
func (s *ImageSurface) Height() int {
	return s.height
}

// Clear fills the entire surface with the given color, ignoring the clip.
func (s *ImageSurface) Clear(c color.Color) {
	if s.closed {
		return
	}
	draw.Draw(s.img, s.img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

// BeginPath discards the current path.
func (s *ImageSurface) BeginPath() {
	s.clipIsPath = false
	s.path.Clear()
}

// MoveTo starts a new subpath at (x, y) in user space.
func (s *ImageSurface) MoveTo(x, y float64) {
	p := s.state.matrix.TransformPoint(quadwarp.Pt(x, y))
	s.clipIsPath = false
	s.path.MoveTo(p.X, p.Y)
}

// LineTo adds a line to (x, y) in user space.
func (s *ImageSurface) LineTo(x, y float64) {
	p := s.state.matrix.TransformPoint(quadwarp.Pt(x, y))
	s.clipIsPath = false
	s.path.LineTo(p.X, p.Y)
}

// ClosePath closes the current subpath.
func (s *ImageSurface) ClosePath() {
	s.clipIsPath = false
	s.path.Close()
}

// Clip intersects the clip region with the current path.
// Unlike gg.Context.Clip, the path is kept, as in HTML canvas.
func (s *ImageSurface) Clip() {
	if s.closed {
		return
	}
	mask := rasterizeMask(s.raster, s.path, s.pathBounds(), s.state.clip)
	if mask == nil {
		mask = emptyMask()
	}
	s.state.clip = mask
	s.clipIsPath = true
}

// CreatePattern returns a non-repeating pattern sampling img with the
// surface's filter.
func (s *ImageSurface) CreatePattern(img image.Image) (quadwarp.Pattern, error) {
	if img == nil {
		return nil, ErrNilImage
	}
	return &ImagePattern{img: img, filter: s.opts.filter}, nil
}

// SetFillPattern makes p the active fill style.
func (s *ImageSurface) SetFillPattern(p quadwarp.Pattern) {
	s.state.fill = p
}

// Transform multiplies the current transformation matrix by m.
func (s *ImageSurface) Transform(m quadwarp.Matrix) {
	s.state.matrix = s.state.matrix.Multiply(m)
}

// SetTransform replaces the current transformation matrix.
func (s *ImageSurface) SetTransform(m quadwarp.Matrix) {
	s.state.matrix = m
}

// CurrentTransform returns the current transformation matrix.
func (s *ImageSurface) CurrentTransform() quadwarp.Matrix {
	return s.state.matrix
}

// Fill fills the current path with the active pattern. The pattern is
// mapped to the device through the current transform; pixels whose
// pattern coordinate falls outside the image are left untouched.
func (s *ImageSurface) Fill() error {
	if s.closed {
		return ErrClosed
	}
	if s.state.fill == nil {
		return ErrNoFillPattern
	}
	p, ok := s.state.fill.(*ImagePattern)
	if !ok {
		return fmt.Errorf("%w: %T", ErrUnsupportedPattern, s.state.fill)
	}

	// A clip built from this same path already holds its coverage;
	// multiplying it in again would square the edge alpha.
	mask := s.state.clip
	if !s.clipIsPath {
		mask = rasterizeMask(s.raster, s.path, s.pathBounds(), s.state.clip)
	}
	if mask == nil || mask.Rect.Empty() {
		return nil
	}

	src := p.img
	sb := src.Bounds()
	m := s.state.matrix.Multiply(quadwarp.Translate(-float64(sb.Min.X), -float64(sb.Min.Y)))
	if _, ok := m.Invert(); !ok {
		return nil
	}
	s2d := f64.Aff3{m.A, m.B, m.C, m.D, m.E, m.F}

	// Drawing into the sub-image bounds the transformer's work to the
	// mask rectangle instead of the whole projected texture.
	dst, ok := s.img.SubImage(mask.Rect).(*image.RGBA)
	if !ok {
		return nil
	}
	p.filter.transformer().Transform(dst, s2d, src, sb, xdraw.Over, &xdraw.Options{DstMask: mask})
	return nil
}

// Save pushes transform, clip and fill pattern.
func (s *ImageSurface) Save() {
	s.stack = append(s.stack, s.state)
}

// Restore pops the last saved state. Restore without a matching Save is a
// no-op.
func (s *ImageSurface) Restore() {
	if len(s.stack) == 0 {
		quadwarp.Logger().Warn("surface: Restore without matching Save")
		return
	}
	s.state = s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
	s.clipIsPath = false
}

// Depth returns the number of saved states.
func (s *ImageSurface) Depth() int {
	return len(s.stack)
}

// Image returns the underlying image.RGBA.
// This is a direct reference, not a copy.
func (s *ImageSurface) Image() *image.RGBA {
	return s.img
}

// Snapshot returns a copy of the current surface contents.
func (s *ImageSurface) Snapshot() *image.RGBA {
	if s.closed {
		return nil
	}
	result := image.NewRGBA(s.img.Bounds())
	draw.Draw(result, result.Bounds(), s.img, s.img.Bounds().Min, draw.Src)
	return result
}

// Close releases resources associated with the surface.
func (s *ImageSurface) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	s.img = nil
	s.raster = nil
	s.stack = nil
	return nil
}

// pathBounds returns the current path's pixel bounds within the surface.
func (s *ImageSurface) pathBounds() image.Rectangle {
	return s.path.Bounds().Inset(-1).Intersect(s.img.Bounds())
}

// Verify ImageSurface implements Target.
var _ Target = (*ImageSurface)(nil)
