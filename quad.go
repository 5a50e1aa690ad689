package quadwarp

// Quad is an ordered 4-point polygon: top-left, top-right, bottom-right,
// bottom-left. The closing point is implicit and never repeated.
type Quad [4]Point

// Triangle is an ordered 3-point polygon. Source and destination
// triangles are always produced in pairs, with vertex i of one
// corresponding to vertex i of the other.
type Triangle [3]Point

// TrianglePair is a texture-space triangle and its surface-space image.
type TrianglePair struct {
	Src Triangle
	Dst Triangle
}

// QuadFromPoints builds a Quad from a point sequence.
// It returns an *InvalidQuadError unless exactly four points are given.
func QuadFromPoints(pts []Point) (Quad, error) {
	var q Quad
	if len(pts) != len(q) {
		return q, &InvalidQuadError{Reason: reasonPointCount, Count: len(pts)}
	}
	copy(q[:], pts)
	return q, nil
}

// RectQuad returns the quad covering a w×h texture anchored at the origin.
func RectQuad(w, h float64) Quad {
	return Quad{{0, 0}, {w, 0}, {w, h}, {0, h}}
}

// Points returns the corners as a slice.
func (q Quad) Points() []Point {
	return q[:]
}

// Area returns the signed area of the quad (shoelace formula).
// The result is positive for clockwise corners in a y-down coordinate
// system, which is the order RectQuad produces.
func (q Quad) Area() float64 {
	var sum float64
	for i := range q {
		sum += q[i].Cross(q[(i+1)%len(q)])
	}
	return sum / 2
}

// Center returns the centroid of the four corners.
func (q Quad) Center() Point {
	var c Point
	for _, p := range q {
		c = c.Add(p)
	}
	return c.Mul(0.25)
}

// IsFinite reports whether every corner has finite coordinates.
func (q Quad) IsFinite() bool {
	for _, p := range q {
		if !p.IsFinite() {
			return false
		}
	}
	return true
}

// Area returns the signed area of the triangle.
func (t Triangle) Area() float64 {
	return t[1].Sub(t[0]).Cross(t[2].Sub(t[0])) / 2
}
