// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"image"
	"math"

	"golang.org/x/image/vector"
)

// verb is a path construction command.
type verb uint8

const (
	verbMoveTo verb = iota
	verbLineTo
	verbClose
)

// Path is a polygonal path in device coordinates.
//
// Example:
//
//	p := surface.NewPath()
//	p.MoveTo(100, 100)
//	p.LineTo(200, 100)
//	p.LineTo(150, 200)
//	p.Close()
type Path struct {
	verbs  []verb
	points []float64
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{
		verbs:  make([]verb, 0, 8),
		points: make([]float64, 0, 16),
	}
}

// MoveTo starts a new subpath at the given point.
func (p *Path) MoveTo(x, y float64) {
	p.verbs = append(p.verbs, verbMoveTo)
	p.points = append(p.points, x, y)
}

// LineTo adds a line from the current point to (x, y).
// On an empty path it behaves like MoveTo.
func (p *Path) LineTo(x, y float64) {
	if len(p.verbs) == 0 || p.verbs[len(p.verbs)-1] == verbClose {
		p.MoveTo(x, y)
		return
	}
	p.verbs = append(p.verbs, verbLineTo)
	p.points = append(p.points, x, y)
}

// Close ends the current subpath.
func (p *Path) Close() {
	if len(p.verbs) == 0 {
		return
	}
	p.verbs = append(p.verbs, verbClose)
}

// Clear removes all elements from the path.
func (p *Path) Clear() {
	p.verbs = p.verbs[:0]
	p.points = p.points[:0]
}

// Bounds returns the integer pixel rectangle enclosing every point.
// Returns an empty rectangle if the path is empty.
func (p *Path) Bounds() image.Rectangle {
	if len(p.points) == 0 {
		return image.Rectangle{}
	}

	minX, minY := p.points[0], p.points[1]
	maxX, maxY := minX, minY
	for i := 2; i < len(p.points); i += 2 {
		x, y := p.points[i], p.points[i+1]
		minX = math.Min(minX, x)
		maxX = math.Max(maxX, x)
		minY = math.Min(minY, y)
		maxY = math.Max(maxY, y)
	}

	if math.IsNaN(minX) || math.IsNaN(minY) || math.IsNaN(maxX) || math.IsNaN(maxY) {
		return image.Rectangle{}
	}
	return image.Rect(
		clampInt(math.Floor(minX)), clampInt(math.Floor(minY)),
		clampInt(math.Ceil(maxX)), clampInt(math.Ceil(maxY)),
	)
}

// addTo feeds the path into z with every point shifted by -origin.
// Open subpaths are closed, as a fill requires.
func (p *Path) addTo(z *vector.Rasterizer, origin image.Point) {
	ox, oy := float64(origin.X), float64(origin.Y)
	open := false
	pi := 0
	for _, v := range p.verbs {
		switch v {
		case verbMoveTo:
			if open {
				z.ClosePath()
			}
			z.MoveTo(float32(p.points[pi]-ox), float32(p.points[pi+1]-oy))
			open = true
			pi += 2
		case verbLineTo:
			z.LineTo(float32(p.points[pi]-ox), float32(p.points[pi+1]-oy))
			pi += 2
		case verbClose:
			if open {
				z.ClosePath()
				open = false
			}
		}
	}
	if open {
		z.ClosePath()
	}
}

// clampInt converts v to int, saturating far outside any drawable range.
func clampInt(v float64) int {
	const limit = 1 << 24
	if v < -limit {
		return -limit
	}
	if v > limit {
		return limit
	}
	return int(v)
}
