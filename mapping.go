package quadwarp

// Mapper locates points inside a quad from two parameters.
//
// Map(0,0), Map(1,0), Map(1,1) and Map(0,1) return the four corners; u runs
// along the top edge and v down the left edge. Parameters outside [0, 1]
// extrapolate past the quad.
type Mapper interface {
	Map(u, v float64) (Point, error)
}

// NewMapper selects the mapping strategy for q once, so the tessellator
// never branches on the method.
func NewMapper(q Quad, method Method) (Mapper, error) {
	switch method {
	case Bilinear:
		return LerpQuad(q), nil
	case Perspective:
		return ProjectiveMapper(q)
	default:
		return nil, &InvalidMethodError{Method: method}
	}
}
