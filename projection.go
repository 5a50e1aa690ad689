package quadwarp

import "math"

// degenerateEps is the relative tolerance below which a homography
// denominator or determinant is treated as zero.
const degenerateEps = 1e-12

// ForwardProjection returns the homography M that maps the unit square onto
// q: corner (0,0) to q[0], (1,0) to q[1], (1,1) to q[2] and (0,1) to q[3].
//
// Applying M to (u, v, 1) and dividing by the third component yields the
// point of q at parameters (u, v); see ProjectPoint.
//
// An *InvalidQuadError is returned when q has non-finite coordinates, when
// corners 1, 2 and 3 are colinear (the denominator vanishes) or when the
// resulting matrix is singular.
func ForwardProjection(q Quad) (Mat3, error) {
	if !q.IsFinite() {
		return Mat3{}, &InvalidQuadError{Quad: q, Reason: reasonNonFinite}
	}

	dx1 := q[1].X - q[2].X
	dx2 := q[3].X - q[2].X
	sx := q[0].X - q[1].X + q[2].X - q[3].X
	dy1 := q[1].Y - q[2].Y
	dy2 := q[3].Y - q[2].Y
	sy := q[0].Y - q[1].Y + q[2].Y - q[3].Y

	den := Mat2{A: dx1, B: dx2, C: dy1, D: dy2}.Det()
	scale := math.Abs(dx1*dy2) + math.Abs(dx2*dy1)
	if den == 0 || math.Abs(den) <= degenerateEps*scale {
		return Mat3{}, &InvalidQuadError{Quad: q, Reason: reasonColinear}
	}

	g := Mat2{A: sx, B: dx2, C: sy, D: dy2}.Det() / den
	h := Mat2{A: dx1, B: sx, C: dy1, D: sy}.Det() / den

	m := Mat3{
		{q[1].X - q[0].X + g*q[1].X, q[3].X - q[0].X + h*q[3].X, q[0].X},
		{q[1].Y - q[0].Y + g*q[1].Y, q[3].Y - q[0].Y + h*q[3].Y, q[0].Y},
		{g, h, 1},
	}

	if err := checkHomography(q, m); err != nil {
		return Mat3{}, err
	}
	return m, nil
}

// InverseProjection returns the homography that maps points of q back to
// unit-square parameters, the inverse of ForwardProjection.
func InverseProjection(q Quad) (Mat3, error) {
	m, err := ForwardProjection(q)
	if err != nil {
		return Mat3{}, err
	}
	// The adjugate is the inverse up to scale, which the perspective
	// divide in ProjectPoint cancels.
	return m.Adjugate(), nil
}

// ProjectPoint applies the homography m to p with a perspective divide.
// A zero homogeneous coordinate yields an *InvalidQuadError.
func ProjectPoint(m Mat3, p Point) (Point, error) {
	v := m.MulVec(Vec3{p.X, p.Y, 1})
	if v[2] == 0 {
		return Point{}, &InvalidQuadError{Reason: reasonHomogeneousW}
	}
	r := Point{X: v[0] / v[2], Y: v[1] / v[2]}
	if !r.IsFinite() {
		return Point{}, &InvalidQuadError{Reason: reasonHomogeneousW}
	}
	return r, nil
}

func checkHomography(q Quad, m Mat3) error {
	var scale float64
	for _, row := range m[:2] {
		for _, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return &InvalidQuadError{Quad: q, Reason: reasonNonFinite}
			}
			scale = math.Max(scale, math.Abs(v))
		}
	}
	if math.IsNaN(m[2][0]) || math.IsInf(m[2][0], 0) ||
		math.IsNaN(m[2][1]) || math.IsInf(m[2][1], 0) {
		return &InvalidQuadError{Quad: q, Reason: reasonNonFinite}
	}
	det := m.Det()
	if det == 0 || math.Abs(det) <= degenerateEps*scale*scale {
		return &InvalidQuadError{Quad: q, Reason: reasonSingular}
	}
	return nil
}

// ProjectiveMapper returns a Mapper that places points of q through its
// forward homography.
func ProjectiveMapper(q Quad) (Mapper, error) {
	m, err := ForwardProjection(q)
	if err != nil {
		return nil, err
	}
	return projectiveMapper{q: q, m: m}, nil
}

type projectiveMapper struct {
	q Quad
	m Mat3
}

func (pm projectiveMapper) Map(u, v float64) (Point, error) {
	p, err := ProjectPoint(pm.m, Point{X: u, Y: v})
	if err != nil {
		return Point{}, &InvalidQuadError{Quad: pm.q, Reason: reasonHomogeneousW}
	}
	return p, nil
}
