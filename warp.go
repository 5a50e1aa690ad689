package quadwarp

import (
	"fmt"
	"image"
	"log/slog"
)

// Warp is a prepared quad-to-quad texture mapping: both quads are already
// validated and tessellated, so drawing it cannot fail on input errors.
type Warp struct {
	cfg   Config
	src   Quad
	dst   Quad
	pairs []TrianglePair
}

// Stats summarizes a drawn warp.
type Stats struct {
	// Triangles is the number of triangles filled.
	Triangles int
	// Skipped is the number of zero-area triangles left out.
	Skipped int
}

// NewWarp validates the configuration and both quads and builds the
// triangle mesh. Errors are reported before any drawing happens: an
// *InvalidMethodError for an unknown method, a *ConfigError for
// out-of-range tessellation settings and an *InvalidQuadError when the
// Perspective method cannot map a quad.
func NewWarp(src, dst Quad, opts ...Option) (*Warp, error) {
	cfg := buildConfig(opts)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	srcMap, err := NewMapper(src, cfg.Method)
	if err != nil {
		return nil, err
	}
	dstMap, err := NewMapper(dst, cfg.Method)
	if err != nil {
		return nil, err
	}

	pairs, err := Mesh(srcMap, dstMap, cfg.Tiles, cfg.SeamOverlap)
	if err != nil {
		return nil, err
	}

	return &Warp{cfg: cfg, src: src, dst: dst, pairs: pairs}, nil
}

// Config returns the configuration the warp was built with.
func (w *Warp) Config() Config { return w.cfg }

// Source returns the texture-space quad.
func (w *Warp) Source() Quad { return w.src }

// Destination returns the surface-space quad.
func (w *Warp) Destination() Quad { return w.dst }

// Pairs returns the matched source/destination triangles in drawing order.
func (w *Warp) Pairs() []TrianglePair { return w.pairs }

// Draw fills every triangle pair of the warp on c with pattern.
//
// The whole operation runs inside one Save/Restore pair that also clips to
// the destination quad, so padding overdraw never leaks outside it and the
// caller's clip, transform and fill style are untouched afterwards, even
// when a Fill fails.
func (w *Warp) Draw(c Canvas, pattern Pattern) (Stats, error) {
	var st Stats
	err := scoped(c, func() error {
		c.SetFillPattern(pattern)
		tracePolygon(c, w.dst[:])
		c.Clip()

		for _, pair := range w.pairs {
			drawn, err := FillTriangle(c, pair.Src, pair.Dst)
			if err != nil {
				return fmt.Errorf("quadwarp: fill triangle: %w", err)
			}
			if drawn {
				st.Triangles++
			} else {
				st.Skipped++
			}
		}
		return nil
	})

	Logger().Debug("quadwarp: warp drawn",
		slog.String("method", w.cfg.Method.String()),
		slog.Int("tiles", w.cfg.Tiles),
		slog.Int("triangles", st.Triangles),
		slog.Int("skipped", st.Skipped))
	return st, err
}

// FillQuad draws pattern onto c, mapping the texture-space quad src onto
// the surface-space quad dst.
func FillQuad(c Canvas, pattern Pattern, src, dst Quad, cfg Config) error {
	w, err := NewWarp(src, dst, WithConfig(cfg))
	if err != nil {
		return err
	}
	_, err = w.Draw(c, pattern)
	return err
}

// DrawArbitraryQuadImage draws texture onto c so that the texture region
// src (in texture pixels) appears stretched over dst (in surface
// coordinates). Options default to DefaultConfig: 10 tiles, 0.1 seam
// overlap, Bilinear.
//
// Configuration and quad errors are returned before c is touched.
func DrawArbitraryQuadImage(c Canvas, texture image.Image, src, dst Quad, opts ...Option) error {
	w, err := NewWarp(src, dst, opts...)
	if err != nil {
		return err
	}
	if texture == nil {
		return ErrNilTexture
	}

	pattern, err := c.CreatePattern(texture)
	if err != nil {
		return fmt.Errorf("quadwarp: create pattern: %w", err)
	}

	_, err = w.Draw(c, pattern)
	return err
}
