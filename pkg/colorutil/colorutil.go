// Package colorutil provides shared color utilities for the crosshair overlay.
package colorutil

import (
	"fmt"
	"image/color"
	"strconv"
)

// Window backgrounds used throughout the application.
var (
	// TransparentKey is painted behind the overlay shapes. The window manager
	// is asked to treat this exact color as fully transparent.
	TransparentKey = color.NRGBA{R: 0, G: 0, B: 0, A: 255}

	PanelBackground   = color.NRGBA{R: 0x2b, G: 0x2b, B: 0x2b, A: 0xff}
	PreviewBackground = color.NRGBA{R: 0x1a, G: 0x1a, B: 0x1a, A: 0xff}
	Trough            = color.NRGBA{R: 0x40, G: 0x40, B: 0x40, A: 0xff}
	Accent            = color.NRGBA{R: 0x00, G: 0xbc, B: 0xd4, A: 0xff}
	White             = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
)

// HexToken formats r, g, b as a six digit lowercase hex color token, e.g. "ff0080".
// Alpha is not part of the token.
func HexToken(r, g, b uint8) string {
	return fmt.Sprintf("%02x%02x%02x", r, g, b)
}

// ParseHexToken converts a token produced by HexToken back into an opaque color.
// A leading '#' is accepted.
func ParseHexToken(token string) (color.NRGBA, error) {
	if len(token) == 7 && token[0] == '#' {
		token = token[1:]
	}
	if len(token) != 6 {
		return color.NRGBA{}, fmt.Errorf("invalid color token %q", token)
	}
	v, err := strconv.ParseUint(token, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid color token %q: %w", token, err)
	}
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
}
