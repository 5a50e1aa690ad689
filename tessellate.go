package quadwarp

// CellTriangles returns the two triangles covering grid cell (row, col) of a
// tiles×tiles grid, with vertices located by m.
//
// Without padding the top triangle is (row,col), (row,col+1),
// (row+1,col+1) and the bottom triangle is (row+1,col+1), (row+1,col),
// (row,col); together they tile the cell. pad grows both triangles past the
// cell by a fraction of a cell. The vertices touching the shared diagonal
// from the top triangle get twice the padding, since a single overlap does
// not hide cracks along the hypotenuse.
//
//	0-----1
//	 \    |
//	   \  |  top
//	     \|
//	      2
//
//	2
//	|\
//	|  \   bottom
//	|    \
//	1-----0
func CellTriangles(row, col int, m Mapper, tiles int, pad float64) (top, bottom Triangle, err error) {
	g := gridMapper{m: m, n: float64(tiles)}
	r, c := float64(row), float64(col)

	top = Triangle{
		g.at(r-pad, c-pad*2),
		g.at(r-pad, c+1+pad),
		g.at(r+1+pad*2, c+1+pad),
	}
	bottom = Triangle{
		g.at(r+1+pad, c+1+pad),
		g.at(r+1+pad, c-pad),
		g.at(r-pad, c-pad),
	}
	return top, bottom, g.err
}

// Mesh tessellates two quads in lockstep and returns the matched triangle
// pairs in row-major order, top triangle before bottom triangle for every
// cell. The result has 2*tiles*tiles entries.
func Mesh(src, dst Mapper, tiles int, pad float64) ([]TrianglePair, error) {
	pairs := make([]TrianglePair, 0, 2*tiles*tiles)
	for r := 0; r < tiles; r++ {
		for c := 0; c < tiles; c++ {
			srcTop, srcBot, err := CellTriangles(r, c, src, tiles, pad)
			if err != nil {
				return nil, err
			}
			dstTop, dstBot, err := CellTriangles(r, c, dst, tiles, pad)
			if err != nil {
				return nil, err
			}
			pairs = append(pairs,
				TrianglePair{Src: srcTop, Dst: dstTop},
				TrianglePair{Src: srcBot, Dst: dstBot},
			)
		}
	}
	return pairs, nil
}

// gridMapper converts grid coordinates to Mapper parameters and keeps the
// first mapping error.
type gridMapper struct {
	m   Mapper
	n   float64
	err error
}

func (g *gridMapper) at(row, col float64) Point {
	if g.err != nil {
		return Point{}
	}
	p, err := g.m.Map(col/g.n, row/g.n)
	if err != nil {
		g.err = err
	}
	return p
}
