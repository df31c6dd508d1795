package x11

import (
	"encoding/binary"

	"github.com/BurntSushi/xgb/xproto"
)

// SetCardinal sets a 32-bit cardinal property on a window.
func (c *Conn) SetCardinal(w xproto.Window, prop xproto.Atom, value uint32) error {
	buf := make([]byte, 4)
	binary.LittleEndian.PutUint32(buf, value)
	return xproto.ChangePropertyChecked(c.X, xproto.PropModeReplace, w, prop,
		xproto.AtomCardinal, 32, 1, buf).Check()
}

// SetWindowProperty sets a WINDOW-typed property on a window, used for
// _NET_ACTIVE_WINDOW and _NET_SUPPORTING_WM_CHECK.
func (c *Conn) SetWindowProperty(w xproto.Window, prop xproto.Atom, value xproto.Window) error {
	buf := make([]byte, 4)
	binary.LittleEndian.PutUint32(buf, uint32(value))
	return xproto.ChangePropertyChecked(c.X, xproto.PropModeReplace, w, prop,
		xproto.AtomWindow, 32, 1, buf).Check()
}

// SetAtomList sets an ATOM-typed list property, used for _NET_SUPPORTED.
func (c *Conn) SetAtomList(w xproto.Window, prop xproto.Atom, atoms []xproto.Atom) error {
	buf := make([]byte, 4*len(atoms))
	for i, a := range atoms {
		binary.LittleEndian.PutUint32(buf[i*4:], uint32(a))
	}
	return xproto.ChangePropertyChecked(c.X, xproto.PropModeReplace, w, prop,
		xproto.AtomAtom, 32, uint32(len(atoms)), buf).Check()
}

// SetUTF8String sets a UTF8_STRING-typed property, used for _NET_WM_NAME.
func (c *Conn) SetUTF8String(w xproto.Window, prop xproto.Atom, value string) error {
	data := []byte(value)
	return xproto.ChangePropertyChecked(c.X, xproto.PropModeReplace, w, prop,
		c.Atoms.UTF8String, 8, uint32(len(data)), data).Check()
}

// DeleteProperty removes a property entirely (used to clear
// _NET_ACTIVE_WINDOW when no client is focused).
func (c *Conn) DeleteProperty(w xproto.Window, prop xproto.Atom) error {
	return xproto.DeletePropertyChecked(c.X, w, prop).Check()
}

// CreateCheckWindow creates the 1x1 unmapped window used for
// _NET_SUPPORTING_WM_CHECK.
func (c *Conn) CreateCheckWindow() (xproto.Window, error) {
	wid, err := xproto.NewWindowId(c.X)
	if err != nil {
		return 0, err
	}
	screen := xproto.Setup(c.X).DefaultScreen(c.X)
	err = xproto.CreateWindowChecked(
		c.X,
		screen.RootDepth,
		wid,
		c.Root,
		-1, -1, 1, 1, 0,
		xproto.WindowClassInputOutput,
		screen.RootVisual,
		0, nil,
	).Check()
	if err != nil {
		return 0, err
	}
	return wid, nil
}

// SendDeleteWindow sends the ICCCM WM_DELETE_WINDOW client message to
// politely ask a client to close itself.
func (c *Conn) SendDeleteWindow(w xproto.Window) error {
	data := xproto.ClientMessageDataUnionData32New([]uint32{
		uint32(c.Atoms.WMDeleteWindow),
		uint32(xproto.TimeCurrentTime),
		0, 0, 0,
	})
	ev := xproto.ClientMessageEvent{
		Format: 32,
		Window: w,
		Type:   c.Atoms.WMProtocols,
		Data:   data,
	}
	return xproto.SendEventChecked(c.X, false, w, xproto.EventMaskNoEvent, string(ev.Bytes())).Check()
}
