package overlay

import (
	"errors"

	"fyne.io/fyne/v2"
)

var (
	// ErrUnsupported is returned when the platform cannot make a window click-through.
	ErrUnsupported = errors.New("click-through not supported on this platform")

	// ErrNoNativeWindow is returned when the window does not expose a native handle.
	ErrNoNativeWindow = errors.New("window has no native handle")
)

// Chrome applies platform window styles the toolkit does not expose.
type Chrome interface {
	// SetClickThrough lets input over w reach the windows underneath and keeps
	// w above other windows. It may be called from any goroutine.
	SetClickThrough(w fyne.Window) error
}

// NewChrome returns the best-effort implementation for the running platform.
func NewChrome() Chrome {
	return newPlatformChrome()
}

// NopChrome leaves windows untouched.
type NopChrome struct{}

func (NopChrome) SetClickThrough(fyne.Window) error {
	return ErrUnsupported
}
