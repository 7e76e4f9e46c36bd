// Package canvas provides the raster surface the crosshair is drawn on.
package canvas

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"crosshair-overlay/internal/crosshair"
	"crosshair-overlay/pkg/colorutil"
	"crosshair-overlay/pkg/geometry"

	"golang.org/x/image/vector"
)

// kappa places cubic bezier control points so four segments approximate a circle.
const kappa = 0.5522847498

// Render clears dst to bg and paints shapes in order.
func Render(dst *image.NRGBA, bg color.Color, shapes []crosshair.Shape) {
	draw.Draw(dst, dst.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	for _, s := range shapes {
		drawShape(dst, s)
	}
}

func drawShape(dst *image.NRGBA, s crosshair.Shape) {
	switch s.Kind {
	case crosshair.KindRect:
		if fill, ok := tokenColor(s.Fill); ok {
			fillRect(dst, s.Bounds, fill)
		} else if outline, ok := tokenColor(s.Outline); ok && s.OutlineWidth > 0 {
			strokeRect(dst, s.Bounds, outline, s.OutlineWidth)
		}
	case crosshair.KindOval:
		if fill, ok := tokenColor(s.Fill); ok {
			fillEllipse(dst, s.Bounds, fill)
		}
		if outline, ok := tokenColor(s.Outline); ok && s.OutlineWidth > 0 {
			strokeEllipse(dst, s.Bounds, outline, s.OutlineWidth)
		}
	}
}

func tokenColor(token string) (color.NRGBA, bool) {
	if token == "" {
		return color.NRGBA{}, false
	}
	c, err := colorutil.ParseHexToken(token)
	if err != nil {
		return color.NRGBA{}, false
	}
	return c, true
}

// pixelRect covers every pixel touched by r.
func pixelRect(r geometry.Rect) image.Rectangle {
	return image.Rect(
		int(math.Floor(r.X)), int(math.Floor(r.Y)),
		int(math.Ceil(r.Right())), int(math.Ceil(r.Bottom())),
	)
}

func fillRect(dst *image.NRGBA, r geometry.Rect, col color.NRGBA) {
	pr := pixelRect(r).Intersect(dst.Bounds())
	if pr.Empty() {
		return
	}
	draw.Draw(dst, pr, image.NewUniform(col), image.Point{}, draw.Src)
}

func strokeRect(dst *image.NRGBA, r geometry.Rect, col color.NRGBA, width float64) {
	w := math.Min(width, math.Min(r.Width, r.Height)/2)
	fillRect(dst, geometry.NewRect(r.X, r.Y, r.Width, w), col)
	fillRect(dst, geometry.NewRect(r.X, r.Bottom()-w, r.Width, w), col)
	fillRect(dst, geometry.NewRect(r.X, r.Y, w, r.Height), col)
	fillRect(dst, geometry.NewRect(r.Right()-w, r.Y, w, r.Height), col)
}

func fillEllipse(dst *image.NRGBA, r geometry.Rect, col color.NRGBA) {
	if r.Empty() {
		return
	}
	z := newRasterizer(dst)
	c := r.Center()
	ellipsePath(z, c, r.Width/2, r.Height/2, false)
	z.Draw(dst, dst.Bounds(), image.NewUniform(col), image.Point{})
}

// strokeEllipse paints an annulus of the given width centered on the ellipse edge.
// The inner contour is wound the other way so the rasterizer leaves it empty.
func strokeEllipse(dst *image.NRGBA, r geometry.Rect, col color.NRGBA, width float64) {
	c := r.Center()
	rx, ry := r.Width/2, r.Height/2
	half := width / 2

	z := newRasterizer(dst)
	ellipsePath(z, c, rx+half, ry+half, false)
	if rx-half > 0 && ry-half > 0 {
		ellipsePath(z, c, rx-half, ry-half, true)
	}
	z.Draw(dst, dst.Bounds(), image.NewUniform(col), image.Point{})
}

func newRasterizer(dst *image.NRGBA) *vector.Rasterizer {
	b := dst.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	z.DrawOp = draw.Over
	return z
}

func ellipsePath(z *vector.Rasterizer, c geometry.Point2D, rx, ry float64, reverse bool) {
	cx, cy := float32(c.X), float32(c.Y)
	ax, ay := float32(rx), float32(ry)
	kx, ky := float32(rx*kappa), float32(ry*kappa)

	z.MoveTo(cx+ax, cy)
	if !reverse {
		z.CubeTo(cx+ax, cy+ky, cx+kx, cy+ay, cx, cy+ay)
		z.CubeTo(cx-kx, cy+ay, cx-ax, cy+ky, cx-ax, cy)
		z.CubeTo(cx-ax, cy-ky, cx-kx, cy-ay, cx, cy-ay)
		z.CubeTo(cx+kx, cy-ay, cx+ax, cy-ky, cx+ax, cy)
	} else {
		z.CubeTo(cx+ax, cy-ky, cx+kx, cy-ay, cx, cy-ay)
		z.CubeTo(cx-kx, cy-ay, cx-ax, cy-ky, cx-ax, cy)
		z.CubeTo(cx-ax, cy+ky, cx-kx, cy+ay, cx, cy+ay)
		z.CubeTo(cx+kx, cy+ay, cx+ax, cy+ky, cx+ax, cy)
	}
	z.ClosePath()
}
