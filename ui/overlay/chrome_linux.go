//go:build linux

package overlay

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver"
	"github.com/jezek/xgb"
	"github.com/jezek/xgb/shape"
	"github.com/jezek/xgb/xproto"
)

const netWMStateAdd = 1

type x11Chrome struct{}

func newPlatformChrome() Chrome {
	return x11Chrome{}
}

// SetClickThrough clears the overlay's input shape so the X server routes
// pointer events to the windows below, then asks the window manager to keep
// it above. Wayland sessions are not supported.
func (x11Chrome) SetClickThrough(w fyne.Window) error {
	nw, ok := w.(driver.NativeWindow)
	if !ok {
		return ErrNoNativeWindow
	}

	var handle uintptr
	nw.RunNative(func(ctx any) {
		if xc, ok := ctx.(driver.X11WindowContext); ok {
			handle = xc.WindowHandle
		}
	})
	if handle == 0 {
		return ErrUnsupported
	}

	conn, err := xgb.NewConn()
	if err != nil {
		return fmt.Errorf("connect to X server: %w", err)
	}
	defer conn.Close()

	win := xproto.Window(handle)
	if err := passInput(conn, win); err != nil {
		return err
	}
	return keepAbove(conn, win)
}

func passInput(conn *xgb.Conn, win xproto.Window) error {
	if err := shape.Init(conn); err != nil {
		return fmt.Errorf("shape extension: %w", err)
	}
	// An empty input region makes the window transparent to pointer events.
	err := shape.RectanglesChecked(conn, shape.SoSet, shape.SkInput,
		xproto.ClipOrderingUnsorted, win, 0, 0, nil).Check()
	if err != nil {
		return fmt.Errorf("clear input shape: %w", err)
	}
	return nil
}

func keepAbove(conn *xgb.Conn, win xproto.Window) error {
	state, err := internAtom(conn, "_NET_WM_STATE")
	if err != nil {
		return err
	}
	above, err := internAtom(conn, "_NET_WM_STATE_ABOVE")
	if err != nil {
		return err
	}

	root := xproto.Setup(conn).DefaultScreen(conn).Root
	ev := xproto.ClientMessageEvent{
		Format: 32,
		Window: win,
		Type:   state,
		Data:   xproto.ClientMessageDataUnionData32New([]uint32{netWMStateAdd, uint32(above), 0, 1, 0}),
	}
	mask := uint32(xproto.EventMaskSubstructureRedirect | xproto.EventMaskSubstructureNotify)
	if err := xproto.SendEventChecked(conn, false, root, mask, string(ev.Bytes())).Check(); err != nil {
		return fmt.Errorf("request _NET_WM_STATE_ABOVE: %w", err)
	}
	return nil
}

func internAtom(conn *xgb.Conn, name string) (xproto.Atom, error) {
	reply, err := xproto.InternAtom(conn, false, uint16(len(name)), name).Reply()
	if err != nil {
		return 0, fmt.Errorf("intern %s: %w", name, err)
	}
	return reply.Atom, nil
}
