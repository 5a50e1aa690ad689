package quadwarp

import (
	"errors"
	"math"
	"testing"
)

var (
	unitSquare = Quad{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	skewedQuad = Quad{{10, 10}, {110, 20}, {100, 120}, {0, 110}}
	keystone   = Quad{{30, 0}, {70, 0}, {100, 100}, {0, 100}}
)

func TestForwardProjectionCorners(t *testing.T) {
	corners := [4]Point{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	for _, q := range []Quad{unitSquare, RectQuad(640, 480), skewedQuad, keystone} {
		m, err := ForwardProjection(q)
		if err != nil {
			t.Fatalf("ForwardProjection(%v) = %v", q, err)
		}
		for i, c := range corners {
			got, err := ProjectPoint(m, c)
			if err != nil {
				t.Fatalf("ProjectPoint(%v) = %v", c, err)
			}
			if !got.ApproxEqual(q[i], 1e-9) {
				t.Errorf("quad %v: corner %d = %v, want %v", q, i, got, q[i])
			}
		}
	}
}

func TestForwardProjectionUnitSquareIsIdentity(t *testing.T) {
	m, err := ForwardProjection(unitSquare)
	if err != nil {
		t.Fatal(err)
	}
	id := Identity3()
	for i := range m {
		for j := range m[i] {
			if math.Abs(m[i][j]-id[i][j]) > 1e-12 {
				t.Errorf("m[%d][%d] = %v, want %v", i, j, m[i][j], id[i][j])
			}
		}
	}
}

func TestInverseProjectionRoundTrip(t *testing.T) {
	for _, q := range []Quad{skewedQuad, keystone} {
		fwd, err := ForwardProjection(q)
		if err != nil {
			t.Fatal(err)
		}
		inv, err := InverseProjection(q)
		if err != nil {
			t.Fatal(err)
		}
		for _, uv := range []Point{{0.5, 0.5}, {0.1, 0.9}, {0.75, 0.25}, {-0.1, 1.1}} {
			p, err := ProjectPoint(fwd, uv)
			if err != nil {
				t.Fatal(err)
			}
			back, err := ProjectPoint(inv, p)
			if err != nil {
				t.Fatal(err)
			}
			if !back.ApproxEqual(uv, 1e-9) {
				t.Errorf("quad %v: round trip %v -> %v -> %v", q, uv, p, back)
			}
		}
	}
}

func TestForwardProjectionInvalid(t *testing.T) {
	tests := []struct {
		name   string
		q      Quad
		reason string
	}{
		{"colinear 1-2-3", Quad{{0, 0}, {100, 0}, {100, 50}, {100, 100}}, reasonColinear},
		{"colinear 0-1-2", Quad{{0, 0}, {50, 0}, {100, 0}, {0, 100}}, reasonSingular},
		{"colinear 0-1-3", Quad{{0, 0}, {100, 0}, {100, 100}, {-50, 0}}, reasonSingular},
		{"colinear 0-2-3", Quad{{0, 0}, {100, 0}, {100, 100}, {50, 50}}, reasonSingular},
		{"colinear 0-2-3 offset", Quad{{10, 10}, {100, 0}, {50, 50}, {90, 90}}, reasonSingular},
		{"all same point", Quad{{5, 5}, {5, 5}, {5, 5}, {5, 5}}, reasonColinear},
		{"nan", Quad{{math.NaN(), 0}, {1, 0}, {1, 1}, {0, 1}}, reasonNonFinite},
		{"inf", Quad{{0, 0}, {math.Inf(1), 0}, {1, 1}, {0, 1}}, reasonNonFinite},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ForwardProjection(tt.q)
			if !errors.Is(err, ErrInvalidQuad) {
				t.Fatalf("ForwardProjection() = %v, want ErrInvalidQuad", err)
			}
			var qe *InvalidQuadError
			if !errors.As(err, &qe) {
				t.Fatalf("error %T is not *InvalidQuadError", err)
			}
			if qe.Reason != tt.reason {
				t.Errorf("Reason = %q, want %q", qe.Reason, tt.reason)
			}
			if _, err := InverseProjection(tt.q); !errors.Is(err, ErrInvalidQuad) {
				t.Errorf("InverseProjection() = %v, want ErrInvalidQuad", err)
			}
		})
	}
}

func TestColinearCornersBilinear(t *testing.T) {
	quads := []Quad{
		{{0, 0}, {100, 0}, {100, 50}, {100, 100}},
		{{0, 0}, {50, 0}, {100, 0}, {0, 100}},
		{{0, 0}, {100, 0}, {100, 100}, {-50, 0}},
		{{0, 0}, {100, 0}, {100, 100}, {50, 50}},
	}
	for _, q := range quads {
		if _, err := NewMapper(q, Perspective); !errors.Is(err, ErrInvalidQuad) {
			t.Errorf("NewMapper(%v, Perspective) = %v, want ErrInvalidQuad", q, err)
		}
		m, err := NewMapper(q, Bilinear)
		if err != nil {
			t.Errorf("NewMapper(%v, Bilinear) = %v", q, err)
			continue
		}
		if p, err := m.Map(1, 1); err != nil || !p.ApproxEqual(q[2], 1e-9) {
			t.Errorf("bilinear Map(1, 1) = %v, %v, want %v", p, err, q[2])
		}
	}
}

func TestProjectPointZeroW(t *testing.T) {
	m := Mat3{{1, 0, 0}, {0, 1, 0}, {1, 0, 0}}
	if _, err := ProjectPoint(m, Pt(0, 3)); !errors.Is(err, ErrInvalidQuad) {
		t.Errorf("ProjectPoint() = %v, want ErrInvalidQuad", err)
	}
}

func TestBilinearAndPerspectiveAgreeOnParallelogram(t *testing.T) {
	para := Quad{{0, 0}, {100, 20}, {130, 120}, {30, 100}}
	lin := LerpQuad(para)
	proj, err := ProjectiveMapper(para)
	if err != nil {
		t.Fatal(err)
	}
	for _, uv := range []Point{{0, 0}, {1, 0}, {1, 1}, {0, 1}, {0.5, 0.5}, {0.2, 0.7}} {
		a, _ := lin.Map(uv.X, uv.Y)
		b, err := proj.Map(uv.X, uv.Y)
		if err != nil {
			t.Fatal(err)
		}
		if !a.ApproxEqual(b, 1e-9) {
			t.Errorf("at %v: bilinear %v, perspective %v", uv, a, b)
		}
	}
}

func TestPerspectiveForeshortens(t *testing.T) {
	proj, err := ProjectiveMapper(keystone)
	if err != nil {
		t.Fatal(err)
	}
	mid, _ := proj.Map(0.5, 0.5)
	lin, _ := LerpQuad(keystone).Map(0.5, 0.5)
	// The narrow top edge is "far away": the perspective midpoint sits
	// above the bilinear one.
	if !(mid.Y < lin.Y) {
		t.Errorf("perspective mid %v should be above bilinear mid %v", mid, lin)
	}
	if math.Abs(mid.X-50) > 1e-9 {
		t.Errorf("symmetric quad midpoint X = %v, want 50", mid.X)
	}
}
