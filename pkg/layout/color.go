package layout

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is an RGB color.
type Color struct {
	R, G, B uint8
}

// White and Black are common fixed colors.
var (
	White = Color{255, 255, 255}
	Black = Color{0, 0, 0}
)

// ParseHex parses "#rrggbb" or "rrggbb".
func ParseHex(s string) (Color, error) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return Color{}, fmt.Errorf("invalid hex color %q", s)
	}

	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}

	return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

// Hex is ParseHex for compile-time constants. It panics on malformed input.
func Hex(s string) Color {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// String returns the color as "#rrggbb".
func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
