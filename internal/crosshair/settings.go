// Package crosshair holds the crosshair settings record and the geometry that
// turns it into draw commands.
package crosshair

import (
	"errors"
	"fmt"
	"math"

	"crosshair-overlay/pkg/colorutil"
)

// ErrUnknownKey is returned when a setting key does not name a field.
var ErrUnknownKey = errors.New("unknown setting")

// Key identifies a single field of Settings.
type Key string

const (
	KeyLength         Key = "length"
	KeyThickness      Key = "thickness"
	KeyCenterGap      Key = "center_gap"
	KeyDotSize        Key = "dot_size"
	KeyCircleRadius   Key = "circle_radius"
	KeyOutlineOpacity Key = "outline_opacity"
	KeyRed            Key = "r"
	KeyGreen          Key = "g"
	KeyBlue           Key = "b"
	KeyAlpha          Key = "a"
)

// Color is an 8-bit RGBA color.
type Color struct {
	R, G, B, A uint8
}

// Token returns the color as a hex token without alpha, e.g. "ff0080".
func (c Color) Token() string {
	return colorutil.HexToken(c.R, c.G, c.B)
}

// Settings describes the crosshair shape. A single instance is shared by the
// overlay and the settings window.
type Settings struct {
	Length         float64 // Arm length in pixels
	Thickness      int     // Arm width in pixels
	CenterGap      float64 // Space between center and each arm
	DotSize        float64 // Center dot diameter
	CircleRadius   float64 // Ring radius, 0 hides the ring
	OutlineOpacity uint8   // Nonzero shows the ring outline
	Color          Color
}

// DefaultSettings returns the startup settings.
func DefaultSettings() Settings {
	return Settings{
		Length:         20,
		Thickness:      1,
		CenterGap:      0,
		DotSize:        3.78844,
		CircleRadius:   0,
		OutlineOpacity: 0,
		Color:          Color{R: 255, G: 255, B: 255, A: 255},
	}
}

// Set writes one field. Integer fields are truncated and byte fields
// saturate at 0 and 255; no other range checks are applied.
func (s *Settings) Set(key Key, value float64) error {
	switch key {
	case KeyLength:
		s.Length = value
	case KeyThickness:
		s.Thickness = int(value)
	case KeyCenterGap:
		s.CenterGap = value
	case KeyDotSize:
		s.DotSize = value
	case KeyCircleRadius:
		s.CircleRadius = value
	case KeyOutlineOpacity:
		s.OutlineOpacity = toByte(value)
	case KeyRed:
		s.Color.R = toByte(value)
	case KeyGreen:
		s.Color.G = toByte(value)
	case KeyBlue:
		s.Color.B = toByte(value)
	case KeyAlpha:
		s.Color.A = toByte(value)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownKey, string(key))
	}
	return nil
}

// Get reads one field as a float.
func (s Settings) Get(key Key) (float64, error) {
	switch key {
	case KeyLength:
		return s.Length, nil
	case KeyThickness:
		return float64(s.Thickness), nil
	case KeyCenterGap:
		return s.CenterGap, nil
	case KeyDotSize:
		return s.DotSize, nil
	case KeyCircleRadius:
		return s.CircleRadius, nil
	case KeyOutlineOpacity:
		return float64(s.OutlineOpacity), nil
	case KeyRed:
		return float64(s.Color.R), nil
	case KeyGreen:
		return float64(s.Color.G), nil
	case KeyBlue:
		return float64(s.Color.B), nil
	case KeyAlpha:
		return float64(s.Color.A), nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKey, string(key))
}

func toByte(v float64) uint8 {
	switch {
	case math.IsNaN(v) || v <= 0:
		return 0
	case v >= 255:
		return 255
	}
	return uint8(v)
}

// Group names a section of the settings window.
type Group int

const (
	GroupShape Group = iota
	GroupColor
)

// Field describes the slider bound to one setting.
type Field struct {
	Key     Key
	Label   string
	Min     float64
	Max     float64
	Integer bool // Slider values are truncated before being written
	Group   Group
}

// Convert maps a raw slider value to the value written into Settings.
func (f Field) Convert(v float64) float64 {
	if f.Integer {
		return math.Trunc(v)
	}
	return v
}

var fields = []Field{
	{Key: KeyLength, Label: "Length", Min: 0, Max: 50, Integer: true},
	{Key: KeyThickness, Label: "Thickness", Min: 1, Max: 10, Integer: true},
	{Key: KeyCenterGap, Label: "Center Gap", Min: 0, Max: 20, Integer: true},
	{Key: KeyDotSize, Label: "Dot Size", Min: 0, Max: 20},
	{Key: KeyCircleRadius, Label: "Circle Radius", Min: 0, Max: 50, Integer: true},
	{Key: KeyOutlineOpacity, Label: "Outline Opacity", Min: 0, Max: 255, Integer: true},
	{Key: KeyRed, Label: "R", Min: 0, Max: 255, Integer: true, Group: GroupColor},
	{Key: KeyGreen, Label: "G", Min: 0, Max: 255, Integer: true, Group: GroupColor},
	{Key: KeyBlue, Label: "B", Min: 0, Max: 255, Integer: true, Group: GroupColor},
	{Key: KeyAlpha, Label: "A", Min: 0, Max: 255, Integer: true, Group: GroupColor},
}

// Fields returns the slider descriptors in display order.
func Fields() []Field {
	out := make([]Field, len(fields))
	copy(out, fields)
	return out
}

// LookupField returns the descriptor for key.
func LookupField(key Key) (Field, bool) {
	for _, f := range fields {
		if f.Key == key {
			return f, true
		}
	}
	return Field{}, false
}
