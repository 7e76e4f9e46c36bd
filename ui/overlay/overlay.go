// Package overlay provides the borderless, always-on-top crosshair window.
package overlay

import (
	"errors"
	"log"
	"time"

	"crosshair-overlay/internal/app"
	"crosshair-overlay/internal/crosshair"
	"crosshair-overlay/pkg/colorutil"
	"crosshair-overlay/ui/canvas"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

const windowTitle = "Crosshair Overlay"

// Overlay owns the overlay window and renders the shared settings into it.
type Overlay struct {
	window fyne.Window
	state  *app.State
	chrome Chrome
	canvas *canvas.CrosshairCanvas
	cfg    app.Config
}

// New creates the overlay window. It is not shown until Show is called.
func New(fyneApp fyne.App, state *app.State, chrome Chrome, cfg app.Config) *Overlay {
	if chrome == nil {
		chrome = NopChrome{}
	}

	o := &Overlay{
		window: newBorderlessWindow(fyneApp),
		state:  state,
		chrome: chrome,
		cfg:    cfg,
	}

	size := fyne.NewSize(cfg.OverlaySize, cfg.OverlaySize)
	o.canvas = canvas.NewCrosshairCanvas(state.Snapshot,
		canvas.WithBackground(colorutil.TransparentKey),
		canvas.WithMinSize(size),
		canvas.WithRetryDelay(cfg.PreviewRetryDelay),
	)

	o.window.SetTitle(windowTitle)
	o.window.SetPadded(false)
	o.window.SetContent(o.canvas)
	o.window.Resize(size)
	o.window.SetFixedSize(true)
	o.window.CenterOnScreen()

	state.On(app.EventSettingsChanged, func(interface{}) { o.Render() })
	state.On(app.EventPresetApplied, func(interface{}) { o.Render() })

	o.Render()
	return o
}

// newBorderlessWindow uses a splash window on desktop drivers, which has no
// title bar or border.
func newBorderlessWindow(fyneApp fyne.App) fyne.Window {
	if drv, ok := fyneApp.Driver().(desktop.Driver); ok {
		return drv.CreateSplashWindow()
	}
	return fyneApp.NewWindow(windowTitle)
}

// Window returns the underlying window.
func (o *Overlay) Window() fyne.Window {
	return o.window
}

// Canvas returns the drawing surface.
func (o *Overlay) Canvas() *canvas.CrosshairCanvas {
	return o.canvas
}

// Show maps the window and makes it click-through once the window manager
// has had a moment to create it.
func (o *Overlay) Show() {
	o.window.Show()
	time.AfterFunc(o.cfg.ClickThroughDelay, o.SetClickThrough)
}

// Render clears the surface and redraws the crosshair from the current settings.
func (o *Overlay) Render() {
	o.canvas.Redraw()
}

// SetClickThrough asks the platform to pass input through the overlay.
// Failure leaves the overlay capturing input but otherwise working.
func (o *Overlay) SetClickThrough() {
	err := o.chrome.SetClickThrough(o.window)
	switch {
	case err == nil:
		log.Println("overlay: click-through enabled")
	case errors.Is(err, ErrUnsupported):
		log.Printf("overlay: %v", err)
	default:
		log.Printf("overlay: click-through unavailable: %v", err)
	}
}

// UpdateSetting writes one field of the shared settings and renders.
func (o *Overlay) UpdateSetting(key crosshair.Key, value float64) error {
	return o.state.Update(key, value)
}
