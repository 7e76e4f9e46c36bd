package crosshair

import (
	"crosshair-overlay/pkg/geometry"
)

// SmallDotThreshold is the largest scaled dot diameter drawn as a square.
const SmallDotThreshold = 3.0

// RingOutlineWidth is the stroke width of the surrounding ring in pixels.
const RingOutlineWidth = 1.0

// Kind is the primitive used to draw a Shape.
type Kind int

const (
	KindRect Kind = iota
	KindOval
)

func (k Kind) String() string {
	switch k {
	case KindRect:
		return "rect"
	case KindOval:
		return "oval"
	}
	return "unknown"
}

// Part identifies which element of the crosshair a Shape draws.
type Part int

const (
	PartLeftArm Part = iota
	PartRightArm
	PartTopArm
	PartBottomArm
	PartDot
	PartRing
)

// IsArm reports whether p is one of the four arms.
func (p Part) IsArm() bool {
	return p <= PartBottomArm
}

// Shape is one draw command. Fill and Outline hold color tokens; an empty
// token means that part of the primitive is not painted.
type Shape struct {
	Part         Part
	Kind         Kind
	Bounds       geometry.Rect
	Fill         string
	Outline      string
	OutlineWidth float64
}

// Visible reports whether drawing the shape paints any pixels.
func (s Shape) Visible() bool {
	return s.Fill != "" || s.Outline != ""
}

// ComputeShapes returns the draw commands for settings around center, in
// paint order: arms, center dot, ring. Linear sizes are multiplied by scale;
// arm length, gap and thickness are truncated to whole pixels and thickness
// never drops below one.
func ComputeShapes(s Settings, center geometry.Point2D, scale float64) []Shape {
	color := s.Color.Token()
	cx, cy := center.X, center.Y

	length := float64(int(s.Length * scale))
	gap := float64(int(s.CenterGap * scale))
	thickness := int(float64(s.Thickness) * scale)
	if thickness < 1 {
		thickness = 1
	}
	half := float64(thickness / 2)

	shapes := make([]Shape, 0, 6)

	if length > 0 {
		arm := func(part Part, x0, y0, x1, y1 float64) Shape {
			return Shape{
				Part:    part,
				Kind:    KindRect,
				Bounds:  geometry.RectFromCorners(x0, y0, x1, y1),
				Fill:    color,
				Outline: color,
			}
		}
		shapes = append(shapes,
			arm(PartLeftArm, cx-length-gap, cy-half, cx-gap, cy+half+1),
			arm(PartRightArm, cx+gap, cy-half, cx+length+gap, cy+half+1),
			arm(PartTopArm, cx-half, cy-length-gap, cx+half+1, cy-gap),
			arm(PartBottomArm, cx-half, cy+gap, cx+half+1, cy+length+gap),
		)
	}

	if s.DotSize > 0 {
		dot := s.DotSize * scale
		r := dot / 2
		kind := KindOval
		if dot <= SmallDotThreshold {
			kind = KindRect
		}
		shapes = append(shapes, Shape{
			Part:    PartDot,
			Kind:    kind,
			Bounds:  geometry.RectFromCorners(cx-r, cy-r, cx+r, cy+r),
			Fill:    color,
			Outline: color,
		})
	}

	if s.CircleRadius > 0 {
		r := s.CircleRadius * scale
		ring := Shape{
			Part:         PartRing,
			Kind:         KindOval,
			Bounds:       geometry.RectFromCorners(cx-r, cy-r, cx+r, cy+r),
			OutlineWidth: RingOutlineWidth,
		}
		// Outline opacity only gates the outline; it is not blended.
		if s.OutlineOpacity > 0 {
			ring.Outline = color
		}
		shapes = append(shapes, ring)
	}

	return shapes
}
