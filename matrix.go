package quadwarp

import "math"

// Mat2 is a 2x2 matrix in row-major order:
//
//	| a  b |
//	| c  d |
type Mat2 struct {
	A, B float64
	C, D float64
}

// Det returns the determinant ad - bc.
func (m Mat2) Det() float64 {
	return m.A*m.D - m.B*m.C
}

// Vec3 is a homogeneous 2D coordinate.
type Vec3 [3]float64

// Mat3 is a 3x3 matrix indexed as m[row][col].
type Mat3 [3][3]float64

// Identity3 returns the 3x3 identity matrix.
func Identity3() Mat3 {
	return Mat3{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
}

// Det returns the determinant (cofactor expansion along the first row).
func (m Mat3) Det() float64 {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}

// Mul returns the matrix product m * n.
func (m Mat3) Mul(n Mat3) Mat3 {
	var r Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[i][j] = m[i][0]*n[0][j] + m[i][1]*n[1][j] + m[i][2]*n[2][j]
		}
	}
	return r
}

// MulVec returns the product m * v.
func (m Mat3) MulVec(v Vec3) Vec3 {
	return Vec3{
		m[0][0]*v[0] + m[0][1]*v[1] + m[0][2]*v[2],
		m[1][0]*v[0] + m[1][1]*v[1] + m[1][2]*v[2],
		m[2][0]*v[0] + m[2][1]*v[1] + m[2][2]*v[2],
	}
}

// Adjugate returns the transposed cofactor matrix. For an invertible
// matrix it equals Det() times the inverse, which is all a homography
// needs since homographies are defined up to scale.
func (m Mat3) Adjugate() Mat3 {
	return Mat3{
		{
			m[1][1]*m[2][2] - m[1][2]*m[2][1],
			m[0][2]*m[2][1] - m[0][1]*m[2][2],
			m[0][1]*m[1][2] - m[0][2]*m[1][1],
		},
		{
			m[1][2]*m[2][0] - m[1][0]*m[2][2],
			m[0][0]*m[2][2] - m[0][2]*m[2][0],
			m[0][2]*m[1][0] - m[0][0]*m[1][2],
		},
		{
			m[1][0]*m[2][1] - m[1][1]*m[2][0],
			m[0][1]*m[2][0] - m[0][0]*m[2][1],
			m[0][0]*m[1][1] - m[0][1]*m[1][0],
		},
	}
}

// Inverse returns the inverse matrix and true, or the zero matrix and
// false when m is singular.
func (m Mat3) Inverse() (Mat3, bool) {
	det := m.Det()
	if det == 0 || math.IsNaN(det) || math.IsInf(det, 0) {
		return Mat3{}, false
	}
	adj := m.Adjugate()
	inv := 1 / det
	for i := range adj {
		for j := range adj[i] {
			adj[i][j] *= inv
		}
	}
	return adj, true
}

// Matrix represents a 2D affine transformation matrix.
// It uses a 2x3 matrix in row-major order:
//
//	| a  b  c |
//	| d  e  f |
//
// This represents the transformation:
//
//	x' = a*x + b*y + c
//	y' = d*x + e*y + f
type Matrix struct {
	A, B, C float64
	D, E, F float64
}

// Identity returns the identity transformation matrix.
func Identity() Matrix {
	return Matrix{
		A: 1, B: 0, C: 0,
		D: 0, E: 1, F: 0,
	}
}

// Translate creates a translation matrix.
func Translate(x, y float64) Matrix {
	return Matrix{
		A: 1, B: 0, C: x,
		D: 0, E: 1, F: y,
	}
}

// Scale creates a scaling matrix.
func Scale(x, y float64) Matrix {
	return Matrix{
		A: x, B: 0, C: 0,
		D: 0, E: y, F: 0,
	}
}

// CanvasMatrix builds a Matrix from arguments in the order used by
// CanvasRenderingContext2D.transform(m11, m12, m21, m22, dx, dy).
func CanvasMatrix(m11, m12, m21, m22, dx, dy float64) Matrix {
	return Matrix{
		A: m11, B: m21, C: dx,
		D: m12, E: m22, F: dy,
	}
}

// Multiply multiplies two matrices (m * other).
func (m Matrix) Multiply(other Matrix) Matrix {
	return Matrix{
		A: m.A*other.A + m.B*other.D,
		B: m.A*other.B + m.B*other.E,
		C: m.A*other.C + m.B*other.F + m.C,
		D: m.D*other.A + m.E*other.D,
		E: m.D*other.B + m.E*other.E,
		F: m.D*other.C + m.E*other.F + m.F,
	}
}

// TransformPoint applies the transformation to a point.
func (m Matrix) TransformPoint(p Point) Point {
	return Point{
		X: m.A*p.X + m.B*p.Y + m.C,
		Y: m.D*p.X + m.E*p.Y + m.F,
	}
}

// Det returns the determinant of the linear part.
func (m Matrix) Det() float64 {
	return Mat2{A: m.A, B: m.B, C: m.D, D: m.E}.Det()
}

// Invert returns the inverse matrix and true, or the identity and false
// when the matrix is not invertible.
func (m Matrix) Invert() (Matrix, bool) {
	det := m.Det()
	if math.Abs(det) < 1e-12 {
		return Identity(), false
	}

	invDet := 1.0 / det
	return Matrix{
		A: m.E * invDet,
		B: -m.B * invDet,
		C: (m.B*m.F - m.C*m.E) * invDet,
		D: -m.D * invDet,
		E: m.A * invDet,
		F: (m.C*m.D - m.A*m.F) * invDet,
	}, true
}

// IsIdentity returns true if the matrix is the identity matrix.
func (m Matrix) IsIdentity() bool {
	return m.A == 1 && m.B == 0 && m.C == 0 &&
		m.D == 0 && m.E == 1 && m.F == 0
}

// ApproxEqual reports whether every coefficient of m is within eps of n.
func (m Matrix) ApproxEqual(n Matrix, eps float64) bool {
	return math.Abs(m.A-n.A) <= eps && math.Abs(m.B-n.B) <= eps &&
		math.Abs(m.C-n.C) <= eps && math.Abs(m.D-n.D) <= eps &&
		math.Abs(m.E-n.E) <= eps && math.Abs(m.F-n.F) <= eps
}

// Canvas returns the coefficients in CanvasRenderingContext2D order
// (m11, m12, m21, m22, dx, dy).
func (m Matrix) Canvas() (m11, m12, m21, m22, dx, dy float64) {
	return m.A, m.D, m.B, m.E, m.C, m.F
}
