package cardmaker

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// ParseHexColor parses "#RGB", "#RRGGBB", or "#RRGGBBAA" color values.
func ParseHexColor(s string) (color.NRGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	if hex == s {
		return color.NRGBA{}, fmt.Errorf("%w: %q missing # prefix", ErrInvalidColor, s)
	}

	parse := func(sub string) (uint8, error) {
		v, err := strconv.ParseUint(sub, 16, 8)
		return uint8(v), err
	}

	var c color.NRGBA
	var err error
	switch len(hex) {
	case 3:
		expand := func(b byte) string { return string([]byte{b, b}) }
		if c.R, err = parse(expand(hex[0])); err != nil {
			break
		}
		if c.G, err = parse(expand(hex[1])); err != nil {
			break
		}
		c.B, err = parse(expand(hex[2]))
		c.A = 0xFF
	case 6, 8:
		if c.R, err = parse(hex[0:2]); err != nil {
			break
		}
		if c.G, err = parse(hex[2:4]); err != nil {
			break
		}
		if c.B, err = parse(hex[4:6]); err != nil {
			break
		}
		c.A = 0xFF
		if len(hex) == 8 {
			c.A, err = parse(hex[6:8])
		}
	default:
		return color.NRGBA{}, fmt.Errorf("%w: %q has invalid length", ErrInvalidColor, s)
	}

	if err != nil {
		return color.NRGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	return c, nil
}
