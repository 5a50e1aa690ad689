package quadwarp

// LerpQuad returns a bilinear Mapper over q.
//
// Map(s, t) interpolates along the top edge (corner 0 to 1) and the bottom
// edge (corner 3 to 2) by s, then between those two points by t. Parameters
// outside [0, 1] extrapolate linearly; the tessellator relies on this for
// seam padding. The returned Mapper never fails.
func LerpQuad(q Quad) Mapper {
	return bilinearMapper{q: q}
}

type bilinearMapper struct {
	q Quad
}

func (m bilinearMapper) Map(s, t float64) (Point, error) {
	return m.at(s, t), nil
}

func (m bilinearMapper) at(s, t float64) Point {
	p01 := m.q[0].Lerp(m.q[1], s)
	p32 := m.q[3].Lerp(m.q[2], s)
	return p01.Lerp(p32, t)
}
