package x11

import (
	"encoding/binary"

	"github.com/BurntSushi/xgb/xproto"
)

// Rect is an on-screen window geometry: origin plus extent.
type Rect struct {
	Pos  Point
	Size Point
}

// WindowAttributes is the subset of xproto's window attributes the
// manager inspects when deciding whether to frame a window.
type WindowAttributes struct {
	OverrideRedirect bool
	Viewable         bool
}

// GetWindowAttributes reads a window's override-redirect bit and map
// state.
func (c *Conn) GetWindowAttributes(w xproto.Window) (WindowAttributes, error) {
	reply, err := xproto.GetWindowAttributes(c.X, w).Reply()
	if err != nil {
		return WindowAttributes{}, err
	}
	return WindowAttributes{
		OverrideRedirect: reply.OverrideRedirect,
		Viewable:         reply.MapState == xproto.MapStateViewable,
	}, nil
}

// GetGeometry reads a window's current on-screen rectangle.
func (c *Conn) GetGeometry(w xproto.Window) (Rect, error) {
	reply, err := xproto.GetGeometry(c.X, xproto.Drawable(w)).Reply()
	if err != nil {
		return Rect{}, err
	}
	return Rect{
		Pos:  Point{int32(reply.X), int32(reply.Y)},
		Size: Point{int32(reply.Width), int32(reply.Height)},
	}, nil
}

// QueryTree returns the direct children of the root window, in
// stacking order.
func (c *Conn) QueryTree() ([]xproto.Window, error) {
	reply, err := xproto.QueryTree(c.X, c.Root).Reply()
	if err != nil {
		return nil, err
	}
	return reply.Children, nil
}

// WindowType reads _NET_WM_WINDOW_TYPE and reports which of the types
// this manager cares about (Dock/Toolbar/Utility/Menu) it is, if any.
func (c *Conn) WindowType(w xproto.Window) (WindowType, bool, error) {
	reply, err := xproto.GetProperty(c.X, false, w, c.Atoms.NetWMWindowType,
		xproto.AtomAny, 0, 32).Reply()
	if err != nil {
		return 0, false, err
	}
	for v := reply.Value; len(v) >= 4; v = v[4:] {
		atom := xproto.Atom(binary.LittleEndian.Uint32(v))
		switch atom {
		case c.Atoms.NetWMWindowTypeDock:
			return WindowTypeDock, true, nil
		case c.Atoms.NetWMWindowTypeToolbar:
			return WindowTypeToolbar, true, nil
		case c.Atoms.NetWMWindowTypeUtility:
			return WindowTypeUtility, true, nil
		case c.Atoms.NetWMWindowTypeMenu:
			return WindowTypeMenu, true, nil
		}
	}
	return 0, false, nil
}

// WindowType enumerates the EWMH window types this manager special-cases.
type WindowType int

const (
	WindowTypeDock WindowType = iota
	WindowTypeToolbar
	WindowTypeUtility
	WindowTypeMenu
)

// ConfigureWindow applies geometry to a window (used both to honor
// ConfigureRequest verbatim and to apply the manager's own move/resize
// decisions).
func (c *Conn) ConfigureWindow(w xproto.Window, r Rect) error {
	return xproto.ConfigureWindowChecked(c.X, w,
		xproto.ConfigWindowX|xproto.ConfigWindowY|xproto.ConfigWindowWidth|xproto.ConfigWindowHeight,
		[]uint32{
			uint32(r.Pos.X),
			uint32(r.Pos.Y),
			uint32(r.Size.X),
			uint32(r.Size.Y),
		}).Check()
}

// SendConfigureNotify synthesizes a ConfigureNotify acknowledging a
// ConfigureRequest, matching the geometry the client asked for.
func (c *Conn) SendConfigureNotify(w xproto.Window, r Rect) error {
	ev := xproto.ConfigureNotifyEvent{
		Event:            w,
		Window:           w,
		AboveSibling:     0,
		X:                int16(r.Pos.X),
		Y:                int16(r.Pos.Y),
		Width:            uint16(r.Size.X),
		Height:           uint16(r.Size.Y),
		BorderWidth:      0,
		OverrideRedirect: false,
	}
	return xproto.SendEventChecked(c.X, false, w, xproto.EventMaskStructureNotify, string(ev.Bytes())).Check()
}

// MapWindow maps a window.
func (c *Conn) MapWindow(w xproto.Window) error {
	return xproto.MapWindowChecked(c.X, w).Check()
}

// SelectInput subscribes to the given event mask on a window.
func (c *Conn) SelectInput(w xproto.Window, mask uint32) error {
	return xproto.ChangeWindowAttributesChecked(c.X, w, xproto.CwEventMask, []uint32{mask}).Check()
}

// GrabButton grabs a pointer button with the given modifier for
// asynchronous pointer and keyboard handling, as required to prime the
// modal move/resize gesture.
func (c *Conn) GrabButton(w xproto.Window, button xproto.Button, modifiers uint16) error {
	mask := uint16(xproto.EventMaskButtonPress | xproto.EventMaskButtonMotion)
	return xproto.GrabButtonChecked(
		c.X,
		false,
		w,
		mask,
		xproto.GrabModeAsync,
		xproto.GrabModeAsync,
		0,
		0,
		button,
		modifiers,
	).Check()
}

// Raise raises a window to the top of the stack.
func (c *Conn) Raise(w xproto.Window) error {
	return xproto.ConfigureWindowChecked(c.X, w, xproto.ConfigWindowStackMode,
		[]uint32{uint32(xproto.StackModeAbove)}).Check()
}

// SetInputFocus sets input focus to a window, RevertToParent, CurrentTime.
func (c *Conn) SetInputFocus(w xproto.Window) error {
	return xproto.SetInputFocusChecked(c.X, xproto.InputFocusParent, w, xproto.TimeCurrentTime).Check()
}

// RevertFocusToRoot reverts input focus to PointerRoot.
func (c *Conn) RevertFocusToRoot() error {
	return xproto.SetInputFocusChecked(c.X, xproto.InputFocusPointerRoot, c.Root, xproto.TimeCurrentTime).Check()
}
