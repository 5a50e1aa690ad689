package quadwarp

import "image"

// Canvas is the drawing surface a warp renders onto. Its semantics follow
// CanvasRenderingContext2D:
//
//   - Path points are transformed by the current transform when they are
//     added, so later Transform calls do not move an existing path.
//   - Clip intersects the clip region with the current path and keeps the
//     path.
//   - Fill rasterizes the current path; the fill pattern is sampled through
//     the transform current at Fill time, without tiling.
//   - Save pushes transform, clip and fill pattern; Restore pops them.
//     The path is not part of the saved state.
//
// Canvases are stateful and NOT safe for concurrent use; callers must
// serialize warps per canvas.
type Canvas interface {
	// BeginPath discards the current path.
	BeginPath()
	// MoveTo starts a new subpath at (x, y).
	MoveTo(x, y float64)
	// LineTo adds a line to (x, y), starting a subpath if none is open.
	LineTo(x, y float64)
	// ClosePath closes the current subpath.
	ClosePath()

	// Clip restricts subsequent drawing to the current path.
	Clip()

	// CreatePattern returns a non-repeating fill pattern for img.
	CreatePattern(img image.Image) (Pattern, error)
	// SetFillPattern makes p the active fill style.
	SetFillPattern(p Pattern)

	// Transform composes m onto the current transform (current * m).
	Transform(m Matrix)
	// Fill fills the current path with the active fill style.
	Fill() error

	// Save pushes the drawing state.
	Save()
	// Restore pops the most recently saved drawing state.
	Restore()
}

// Pattern is an opaque fill source created by a Canvas.
type Pattern interface {
	// Bounds returns the texture-space extent of the pattern.
	Bounds() image.Rectangle
}

// scoped runs fn between Save and Restore. Restore runs on every exit
// path, including errors and panics.
func scoped(c Canvas, fn func() error) error {
	c.Save()
	defer c.Restore()
	return fn()
}

// tracePolygon replaces the current path with the closed polygon pts.
func tracePolygon(c Canvas, pts []Point) {
	c.BeginPath()
	for i, p := range pts {
		if i == 0 {
			c.MoveTo(p.X, p.Y)
			continue
		}
		c.LineTo(p.X, p.Y)
	}
	c.ClosePath()
}
