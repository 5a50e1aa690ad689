package imageio

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// ErrInvalidColor is returned by ParseColor for unrecognized input.
var ErrInvalidColor = errors.New("imageio: invalid color")

// ParseColor parses a color given as "#rgb", "#rrggbb", "#rrggbbaa" or an
// SVG 1.1 color name such as "cornflowerblue". "none" and "transparent"
// yield fully transparent black.
func ParseColor(s string) (color.RGBA, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "none", "transparent":
		return color.RGBA{}, nil
	}
	if c, ok := colornames.Map[s]; ok {
		return c, nil
	}
	if !strings.HasPrefix(s, "#") {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}

	// colorful.Hex handles #rgb and #rrggbb; an alpha byte is split off first.
	hex, alpha := s, uint64(0xff)
	if len(s) == 9 {
		a, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
		}
		hex, alpha = s[:7], a
	}
	if len(hex) != 4 && len(hex) != 7 {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}

	// Hex input is straight alpha; color.RGBA is premultiplied.
	r8, g8, b8 := c.RGB255()
	r, g, b, a := color.NRGBA{R: r8, G: g8, B: b8, A: uint8(alpha)}.RGBA()
	return color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}, nil
}
