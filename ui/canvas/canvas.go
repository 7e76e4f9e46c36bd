package canvas

import (
	"image"
	"image/color"
	"sync"
	"time"

	"crosshair-overlay/internal/crosshair"
	"crosshair-overlay/pkg/colorutil"
	"crosshair-overlay/pkg/geometry"

	"fyne.io/fyne/v2"
	fynecanvas "fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
)

const defaultRetryDelay = 100 * time.Millisecond

// Source supplies the settings to draw.
type Source func() crosshair.Settings

// CrosshairCanvas draws the crosshair centered in its current size.
type CrosshairCanvas struct {
	widget.BaseWidget

	source     Source
	scale      float64
	background color.NRGBA
	retryDelay time.Duration

	raster *fynecanvas.Raster

	mu      sync.Mutex
	shapes  []crosshair.Shape // Last computed draw commands
	drawn   fyne.Size         // Size the shapes were computed for
	pending bool              // A deferred redraw is scheduled
}

// Option configures a CrosshairCanvas.
type Option func(*CrosshairCanvas)

// WithScale multiplies every shape dimension by scale.
func WithScale(scale float64) Option {
	return func(cc *CrosshairCanvas) { cc.scale = scale }
}

// WithBackground sets the color the surface is cleared to.
func WithBackground(bg color.NRGBA) Option {
	return func(cc *CrosshairCanvas) { cc.background = bg }
}

// WithRetryDelay sets how long Redraw waits when the canvas has no size yet.
func WithRetryDelay(d time.Duration) Option {
	return func(cc *CrosshairCanvas) { cc.retryDelay = d }
}

// WithMinSize fixes the minimum size requested from the layout.
func WithMinSize(size fyne.Size) Option {
	return func(cc *CrosshairCanvas) { cc.raster.SetMinSize(size) }
}

// NewCrosshairCanvas creates a canvas drawing settings from source.
func NewCrosshairCanvas(source Source, opts ...Option) *CrosshairCanvas {
	cc := &CrosshairCanvas{
		source:     source,
		scale:      1.0,
		background: colorutil.TransparentKey,
		retryDelay: defaultRetryDelay,
	}

	cc.raster = fynecanvas.NewRaster(cc.draw)
	cc.raster.ScaleMode = fynecanvas.ImageScalePixels

	for _, opt := range opts {
		opt(cc)
	}

	cc.ExtendBaseWidget(cc)
	return cc
}

// CreateRenderer implements fyne.Widget.
func (cc *CrosshairCanvas) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(cc.raster)
}

// Resize recomputes the shapes around the new center.
func (cc *CrosshairCanvas) Resize(size fyne.Size) {
	cc.BaseWidget.Resize(size)
	if ready(size) {
		cc.Redraw()
	}
}

// Redraw recomputes the shapes from the current settings and repaints.
// If the canvas has not been given a usable size yet, it schedules another
// attempt after the retry delay and returns false.
func (cc *CrosshairCanvas) Redraw() bool {
	size := cc.Size()
	if !ready(size) {
		cc.scheduleRetry()
		return false
	}

	center := geometry.NewPoint2D(float64(int(size.Width)/2), float64(int(size.Height)/2))
	shapes := crosshair.ComputeShapes(cc.source(), center, cc.scale)

	cc.mu.Lock()
	cc.shapes = shapes
	cc.drawn = size
	cc.mu.Unlock()

	cc.raster.Refresh()
	return true
}

func (cc *CrosshairCanvas) scheduleRetry() {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	if cc.pending {
		return
	}
	cc.pending = true
	time.AfterFunc(cc.retryDelay, func() {
		cc.mu.Lock()
		cc.pending = false
		cc.mu.Unlock()
		cc.Redraw()
	})
}

// RetryPending reports whether a deferred redraw is scheduled.
func (cc *CrosshairCanvas) RetryPending() bool {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.pending
}

// Shapes returns a copy of the last computed draw commands.
func (cc *CrosshairCanvas) Shapes() []crosshair.Shape {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	out := make([]crosshair.Shape, len(cc.shapes))
	copy(out, cc.shapes)
	return out
}

// Image renders the last computed shapes at the size they were computed for.
func (cc *CrosshairCanvas) Image() *image.NRGBA {
	cc.mu.Lock()
	shapes := cc.shapes
	size := cc.drawn
	cc.mu.Unlock()

	w, h := int(size.Width), int(size.Height)
	if w < 1 || h < 1 {
		w, h = 1, 1
	}
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	Render(img, cc.background, shapes)
	return img
}

// draw is the raster generator. The image is produced at logical size and
// scaled by the raster, which keeps single pixel arms crisp.
func (cc *CrosshairCanvas) draw(_, _ int) image.Image {
	return cc.Image()
}

func ready(size fyne.Size) bool {
	return size.Width > 1 && size.Height > 1
}
