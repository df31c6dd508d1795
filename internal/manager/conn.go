package manager

import (
	"github.com/BurntSushi/xgb/xproto"

	"github.com/compasswm/compasswm/internal/x11"
)

// conn is the subset of *x11.Conn the manager depends on. Tests
// substitute a fake that implements this interface instead of opening
// a real display connection — the same seam tesselslate-resetti draws
// between its internal/x11 client and the packages that consume it.
type conn interface {
	RootWindow() xproto.Window
	AtomSet() *x11.Atoms
	Screen() x11.ScreenGeometry

	GetWindowAttributes(w xproto.Window) (x11.WindowAttributes, error)
	GetGeometry(w xproto.Window) (x11.Rect, error)
	QueryTree() ([]xproto.Window, error)
	WindowType(w xproto.Window) (x11.WindowType, bool, error)

	ConfigureWindow(w xproto.Window, r x11.Rect) error
	SendConfigureNotify(w xproto.Window, r x11.Rect) error
	MapWindow(w xproto.Window) error
	SelectInput(w xproto.Window, mask uint32) error
	GrabButton(w xproto.Window, button xproto.Button, modifiers uint16) error
	Raise(w xproto.Window) error
	SetInputFocus(w xproto.Window) error
	RevertFocusToRoot() error

	SetCardinal(w xproto.Window, prop xproto.Atom, value uint32) error
	SetWindowProperty(w xproto.Window, prop xproto.Atom, value xproto.Window) error
	SetAtomList(w xproto.Window, prop xproto.Atom, atoms []xproto.Atom) error
	SetUTF8String(w xproto.Window, prop xproto.Atom, value string) error
	DeleteProperty(w xproto.Window, prop xproto.Atom) error
	CreateCheckWindow() (xproto.Window, error)
	SendDeleteWindow(w xproto.Window) error

	TakeOwnership() (alreadyManaged bool, err error)
	NextEvent() (xproto.Event, error)
}

var _ conn = (*x11.Conn)(nil)
