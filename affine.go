package quadwarp

import "math"

// AffineFromTriangles returns the affine transform carrying src onto dst:
// TransformPoint(src[i]) == dst[i] for every vertex.
//
// Both triangles are translated so vertex 0 is the origin and the remaining
// 2x2 system is solved in closed form. ok is false when src has zero area,
// in which case no transform exists.
func AffineFromTriangles(src, dst Triangle) (m Matrix, ok bool) {
	x0, y0 := dst[0].X, dst[0].Y
	x1, y1 := dst[1].X-x0, dst[1].Y-y0
	x2, y2 := dst[2].X-x0, dst[2].Y-y0

	u0, v0 := src[0].X, src[0].Y
	u1, v1 := src[1].X-u0, src[1].Y-v0
	u2, v2 := src[2].X-u0, src[2].Y-v0

	det := Mat2{A: u1, B: u2, C: v1, D: v2}.Det()
	if det == 0 || math.IsNaN(det) || math.IsInf(det, 0) {
		return Identity(), false
	}
	idet := 1 / det

	m11 := (v2*x1 - v1*x2) * idet
	m12 := (v2*y1 - v1*y2) * idet
	m21 := (u1*x2 - u2*x1) * idet
	m22 := (u1*y2 - u2*y1) * idet
	dx := x0 - m11*u0 - m21*v0
	dy := y0 - m12*u0 - m22*v0

	return CanvasMatrix(m11, m12, m21, m22, dx, dy), true
}

// FillTriangle fills dst on c with the active fill pattern, mapped so that
// texture point src[i] lands on dst[i].
//
// The triangle is traced, clipped to and filled inside a Save/Restore pair,
// so neither the clip nor the transform outlives the call. A source
// triangle with zero area is skipped without touching c; drawn reports
// whether anything was filled.
func FillTriangle(c Canvas, src, dst Triangle) (drawn bool, err error) {
	m, ok := AffineFromTriangles(src, dst)
	if !ok {
		return false, nil
	}
	err = scoped(c, func() error {
		tracePolygon(c, dst[:])
		c.Clip()
		c.Transform(m)
		return c.Fill()
	})
	return err == nil, err
}
