//go:build windows

package overlay

import (
	"fmt"

	"crosshair-overlay/pkg/colorutil"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver"
	"github.com/lxn/win"
	"golang.org/x/sys/windows"
)

const lwaColorKey = 0x00000001

var (
	user32                     = windows.NewLazySystemDLL("user32.dll")
	setLayeredWindowAttributes = user32.NewProc("SetLayeredWindowAttributes")
)

type win32Chrome struct{}

func newPlatformChrome() Chrome {
	return win32Chrome{}
}

// SetClickThrough marks the overlay layered and transparent to input, keys
// out the background color and raises it above normal windows.
func (win32Chrome) SetClickThrough(w fyne.Window) error {
	nw, ok := w.(driver.NativeWindow)
	if !ok {
		return ErrNoNativeWindow
	}

	var err error
	nw.RunNative(func(ctx any) {
		wc, ok := ctx.(driver.WindowsWindowContext)
		if !ok || wc.HWND == 0 {
			err = ErrNoNativeWindow
			return
		}
		hwnd := win.HWND(wc.HWND)

		style := win.GetWindowLongPtr(hwnd, win.GWL_EXSTYLE)
		style |= win.WS_EX_LAYERED | win.WS_EX_TRANSPARENT | win.WS_EX_TOPMOST
		win.SetWindowLongPtr(hwnd, win.GWL_EXSTYLE, style)

		key := colorutil.TransparentKey
		colorRef := uintptr(key.R) | uintptr(key.G)<<8 | uintptr(key.B)<<16
		if r, _, callErr := setLayeredWindowAttributes.Call(uintptr(hwnd), colorRef, 0, lwaColorKey); r == 0 {
			err = fmt.Errorf("set layered window attributes: %w", callErr)
			return
		}

		if !win.SetWindowPos(hwnd, win.HWND_TOPMOST, 0, 0, 0, 0,
			win.SWP_NOMOVE|win.SWP_NOSIZE|win.SWP_NOACTIVATE) {
			err = fmt.Errorf("raise overlay: error %d", win.GetLastError())
		}
	})
	return err
}
