package quadwarp

import "strings"

// Method selects how grid points are located inside a quad.
type Method uint8

const (
	// Bilinear places grid points by two nested linear interpolations.
	// It is the default and never fails.
	Bilinear Method = iota

	// Perspective places grid points through a homography from the unit
	// square, giving correct foreshortening.
	Perspective
)

// String returns the lowercase method name.
func (m Method) String() string {
	switch m {
	case Bilinear:
		return "bilinear"
	case Perspective:
		return "perspective"
	default:
		return "unknown"
	}
}

// Valid reports whether m is a recognized method.
func (m Method) Valid() bool {
	return m == Bilinear || m == Perspective
}

// ParseMethod converts a method name (case-insensitive) to a Method.
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bilinear", "":
		return Bilinear, nil
	case "perspective", "projective":
		return Perspective, nil
	default:
		return 0, &InvalidMethodError{Name: s}
	}
}

// MarshalText implements encoding.TextMarshaler.
func (m Method) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, &InvalidMethodError{Method: m}
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Method) UnmarshalText(text []byte) error {
	v, err := ParseMethod(string(text))
	if err != nil {
		return err
	}
	*m = v
	return nil
}
