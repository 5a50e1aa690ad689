package quadwarp

import (
	"errors"
	"fmt"
)

// Sentinel errors for the quadwarp package.
var (
	// ErrInvalidMethod is returned when a fill method is not Bilinear or
	// Perspective.
	ErrInvalidMethod = errors.New("quadwarp: invalid fill method")

	// ErrInvalidQuad is returned when a quad cannot be mapped, for example
	// when three corners are colinear under the Perspective method.
	ErrInvalidQuad = errors.New("quadwarp: invalid quad")

	// ErrInvalidConfig is returned when tessellation settings are out of range.
	ErrInvalidConfig = errors.New("quadwarp: invalid configuration")
)

// InvalidMethodError is returned when a Method value is not recognized.
type InvalidMethodError struct {
	Method Method
	Name   string // set when the method came from ParseMethod
}

func (e *InvalidMethodError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("quadwarp: unknown fill method %q", e.Name)
	}
	return fmt.Sprintf("quadwarp: unknown fill method %d", uint8(e.Method))
}

// Unwrap returns ErrInvalidMethod.
func (e *InvalidMethodError) Unwrap() error { return ErrInvalidMethod }

const (
	reasonPointCount   = "quad needs exactly 4 points"
	reasonNonFinite    = "quad has non-finite coordinates"
	reasonColinear     = "homography denominator is zero"
	reasonSingular     = "homography is singular"
	reasonHomogeneousW = "homogeneous coordinate is zero"
)

// InvalidQuadError describes why a quad could not be mapped.
type InvalidQuadError struct {
	Quad   Quad
	Reason string
	Count  int // number of points supplied, for point-count failures
}

func (e *InvalidQuadError) Error() string {
	if e.Reason == reasonPointCount {
		return fmt.Sprintf("quadwarp: %s, got %d", e.Reason, e.Count)
	}
	return fmt.Sprintf("quadwarp: %s for quad %v", e.Reason, e.Quad)
}

// Unwrap returns ErrInvalidQuad.
func (e *InvalidQuadError) Unwrap() error { return ErrInvalidQuad }

// ConfigError reports an out-of-range tessellation setting.
type ConfigError struct {
	Field string
	Value any
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("quadwarp: %s out of range: %v", e.Field, e.Value)
}

// Unwrap returns ErrInvalidConfig.
func (e *ConfigError) Unwrap() error { return ErrInvalidConfig }

// ErrNilTexture is returned when DrawArbitraryQuadImage is given no texture.
var ErrNilTexture = errors.New("quadwarp: nil texture")
