// Package swatch formats picked colors for display and clipboard use.
package swatch

import (
	"fmt"
	"image/color"
	"strings"
)

// Hex renders a color as an uppercase "#RRGGBB" string.
func Hex(c color.Color) string {
	r, g, b := rgb8(c)
	return fmt.Sprintf("#%02X%02X%02X", r, g, b)
}

// RGB renders a color as "rgb(r, g, b)" with 8-bit channels.
func RGB(c color.Color) string {
	r, g, b := rgb8(c)
	return fmt.Sprintf("rgb(%d, %d, %d)", r, g, b)
}

// ParseHex parses "#RRGGBB" or "RRGGBB" (case-insensitive) into an opaque
// color.
func ParseHex(s string) (color.NRGBA, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return color.NRGBA{}, fmt.Errorf("hex color must have 6 digits, got %q", s)
	}
	var r, g, b uint8
	if _, err := fmt.Sscanf(s, "%02x%02x%02x", &r, &g, &b); err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return color.NRGBA{R: r, G: g, B: b, A: 0xFF}, nil
}

// rgb8 converts the 16-bit premultiplied channels to plain 8-bit values.
func rgb8(c color.Color) (uint8, uint8, uint8) {
	r, g, b, _ := c.RGBA()
	return uint8(r >> 8), uint8(g >> 8), uint8(b >> 8)
}
