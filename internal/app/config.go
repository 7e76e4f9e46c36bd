package app

import "time"

// Config holds the compiled-in application parameters.
type Config struct {
	AppID string

	// Overlay window edge length in pixels. The crosshair is drawn around its center.
	OverlaySize float32

	// Preview surface size and the factor applied to the shape inside it.
	PreviewSize  float32
	PreviewScale float64

	SettingsWidth  float32
	SettingsHeight float32

	// PreviewRetryDelay is how long the preview waits before redrawing again
	// when it has not been laid out yet.
	PreviewRetryDelay time.Duration

	// ClickThroughDelay gives the window manager time to map the overlay
	// before its native styles are changed.
	ClickThroughDelay time.Duration
}

// DefaultConfig returns the parameters the application ships with.
func DefaultConfig() Config {
	return Config{
		AppID:             "io.github.crosshair-overlay",
		OverlaySize:       200,
		PreviewSize:       300,
		PreviewScale:      0.8,
		SettingsWidth:     800,
		SettingsHeight:    600,
		PreviewRetryDelay: 100 * time.Millisecond,
		ClickThroughDelay: 100 * time.Millisecond,
	}
}
