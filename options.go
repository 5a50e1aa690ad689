package quadwarp

import "math"

const (
	// DefaultTiles is the default number of grid cells along each quad edge.
	DefaultTiles = 10

	// MaxTiles is the largest supported tile count.
	MaxTiles = 10

	// DefaultSeamOverlap is the default triangle overlap, in cells.
	DefaultSeamOverlap = 0.1

	// MaxSeamOverlap is the largest supported triangle overlap.
	MaxSeamOverlap = 0.1
)

// Config controls a single warp.
type Config struct {
	// Tiles is the grid density: the quad is split into Tiles×Tiles cells,
	// each drawn as two triangles. Range 1 to MaxTiles.
	Tiles int

	// SeamOverlap grows every triangle past its cell by this fraction of a
	// cell to hide rasterization seams. Range 0 to MaxSeamOverlap.
	SeamOverlap float64

	// Method selects bilinear or perspective mapping.
	Method Method
}

// DefaultConfig returns the default warp configuration.
func DefaultConfig() Config {
	return Config{
		Tiles:       DefaultTiles,
		SeamOverlap: DefaultSeamOverlap,
		Method:      Bilinear,
	}
}

// Validate checks the method first, then the tessellation ranges.
func (c Config) Validate() error {
	if !c.Method.Valid() {
		return &InvalidMethodError{Method: c.Method}
	}
	if c.Tiles < 1 || c.Tiles > MaxTiles {
		return &ConfigError{Field: "tiles", Value: c.Tiles}
	}
	if math.IsNaN(c.SeamOverlap) || c.SeamOverlap < 0 || c.SeamOverlap > MaxSeamOverlap {
		return &ConfigError{Field: "seam overlap", Value: c.SeamOverlap}
	}
	return nil
}

// Option configures a warp.
// Use functional options to override the defaults.
//
// Example:
//
//	err := quadwarp.DrawArbitraryQuadImage(c, tex, src, dst,
//	    quadwarp.WithMethod(quadwarp.Perspective),
//	    quadwarp.WithTiles(6))
type Option func(*Config)

// WithTiles sets the grid density.
func WithTiles(n int) Option {
	return func(c *Config) {
		c.Tiles = n
	}
}

// WithSeamOverlap sets the triangle overlap used to hide seams.
func WithSeamOverlap(pad float64) Option {
	return func(c *Config) {
		c.SeamOverlap = pad
	}
}

// WithMethod sets the mapping method.
func WithMethod(m Method) Option {
	return func(c *Config) {
		c.Method = m
	}
}

// WithConfig replaces the whole configuration.
func WithConfig(cfg Config) Option {
	return func(c *Config) {
		*c = cfg
	}
}

func buildConfig(opts []Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
