package manager

import (
	"errors"

	"github.com/BurntSushi/xgb/xproto"

	"github.com/compasswm/compasswm/internal/x11"
)

// fakeWindow is a fake window's attributes, geometry, and declared
// EWMH type, as tracked by fakeConn.
type fakeWindow struct {
	attrs    x11.WindowAttributes
	geometry x11.Rect
	typ      x11.WindowType
	isTyped  bool
}

// fakeConn is an in-memory stand-in for *x11.Conn, satisfying the
// manager package's conn interface without opening a real display.
type fakeConn struct {
	root   xproto.Window
	atoms  *x11.Atoms
	screen x11.ScreenGeometry

	windows map[xproto.Window]*fakeWindow
	nextWin xproto.Window

	cardinals    map[xproto.Atom]uint32
	windowProps  map[xproto.Atom]xproto.Window
	deletedProps map[xproto.Atom]bool
	atomLists    map[xproto.Atom][]xproto.Atom
	utf8Props    map[xproto.Atom]string

	focusedWindow     xproto.Window
	focusRevertedRoot bool
	raised            []xproto.Window
	deletesSent       []xproto.Window
	configureNotifies []xproto.Window
	checkWindow       xproto.Window
	alreadyManaged    bool
	takeOwnershipErr  error
}

var _ conn = (*fakeConn)(nil)

func newFakeConn() *fakeConn {
	return &fakeConn{
		root:         1,
		atoms:        fakeAtoms(),
		screen:       x11.ScreenGeometry{Width: 1920, Height: 1080},
		windows:      make(map[xproto.Window]*fakeWindow),
		nextWin:      100,
		cardinals:    make(map[xproto.Atom]uint32),
		windowProps:  make(map[xproto.Atom]xproto.Window),
		deletedProps: make(map[xproto.Atom]bool),
		atomLists:    make(map[xproto.Atom][]xproto.Atom),
		utf8Props:    make(map[xproto.Atom]string),
	}
}

func fakeAtoms() *x11.Atoms {
	var n xproto.Atom
	next := func() xproto.Atom { n++; return n }
	return &x11.Atoms{
		NetSupported:           next(),
		NetSupportingWMCheck:   next(),
		NetWMName:              next(),
		NetActiveWindow:        next(),
		NetNumberOfDesktops:    next(),
		NetCurrentDesktop:      next(),
		NetWMWindowType:        next(),
		NetWMWindowTypeDock:    next(),
		NetWMWindowTypeToolbar: next(),
		NetWMWindowTypeUtility: next(),
		NetWMWindowTypeMenu:    next(),
		WMProtocols:            next(),
		WMDeleteWindow:         next(),
		UTF8String:             next(),
		WMRequest:              next(),
	}
}

// addWindow registers a fake top-level window with the given geometry,
// defaulting to viewable, non-override-redirect, untyped.
func (f *fakeConn) addWindow(r x11.Rect) xproto.Window {
	w := f.nextWin
	f.nextWin++
	f.windows[w] = &fakeWindow{
		attrs:    x11.WindowAttributes{OverrideRedirect: false, Viewable: true},
		geometry: r,
	}
	return w
}

func (f *fakeConn) addDock(r x11.Rect) xproto.Window {
	w := f.addWindow(r)
	f.windows[w].typ = x11.WindowTypeDock
	f.windows[w].isTyped = true
	return w
}

func (f *fakeConn) RootWindow() xproto.Window  { return f.root }
func (f *fakeConn) AtomSet() *x11.Atoms        { return f.atoms }
func (f *fakeConn) Screen() x11.ScreenGeometry { return f.screen }

func (f *fakeConn) GetWindowAttributes(w xproto.Window) (x11.WindowAttributes, error) {
	win, ok := f.windows[w]
	if !ok {
		return x11.WindowAttributes{}, errors.New("no such window")
	}
	return win.attrs, nil
}

func (f *fakeConn) GetGeometry(w xproto.Window) (x11.Rect, error) {
	win, ok := f.windows[w]
	if !ok {
		return x11.Rect{}, errors.New("no such window")
	}
	return win.geometry, nil
}

func (f *fakeConn) QueryTree() ([]xproto.Window, error) {
	var out []xproto.Window
	for w := range f.windows {
		out = append(out, w)
	}
	return out, nil
}

func (f *fakeConn) WindowType(w xproto.Window) (x11.WindowType, bool, error) {
	win, ok := f.windows[w]
	if !ok {
		return 0, false, errors.New("no such window")
	}
	return win.typ, win.isTyped, nil
}

func (f *fakeConn) ConfigureWindow(w xproto.Window, r x11.Rect) error {
	win, ok := f.windows[w]
	if !ok {
		return errors.New("no such window")
	}
	win.geometry = r
	return nil
}

func (f *fakeConn) SendConfigureNotify(w xproto.Window, r x11.Rect) error {
	f.configureNotifies = append(f.configureNotifies, w)
	return nil
}
func (f *fakeConn) MapWindow(w xproto.Window) error                      { return nil }
func (f *fakeConn) SelectInput(w xproto.Window, mask uint32) error       { return nil }
func (f *fakeConn) GrabButton(w xproto.Window, button xproto.Button, modifiers uint16) error {
	return nil
}

func (f *fakeConn) Raise(w xproto.Window) error {
	f.raised = append(f.raised, w)
	return nil
}

func (f *fakeConn) SetInputFocus(w xproto.Window) error {
	f.focusedWindow = w
	f.focusRevertedRoot = false
	return nil
}

func (f *fakeConn) RevertFocusToRoot() error {
	f.focusedWindow = 0
	f.focusRevertedRoot = true
	return nil
}

func (f *fakeConn) SetCardinal(w xproto.Window, prop xproto.Atom, value uint32) error {
	f.cardinals[prop] = value
	return nil
}

func (f *fakeConn) SetWindowProperty(w xproto.Window, prop xproto.Atom, value xproto.Window) error {
	f.windowProps[prop] = value
	delete(f.deletedProps, prop)
	return nil
}

func (f *fakeConn) SetAtomList(w xproto.Window, prop xproto.Atom, atoms []xproto.Atom) error {
	f.atomLists[prop] = atoms
	return nil
}

func (f *fakeConn) SetUTF8String(w xproto.Window, prop xproto.Atom, value string) error {
	f.utf8Props[prop] = value
	return nil
}

func (f *fakeConn) DeleteProperty(w xproto.Window, prop xproto.Atom) error {
	f.deletedProps[prop] = true
	delete(f.windowProps, prop)
	return nil
}

func (f *fakeConn) CreateCheckWindow() (xproto.Window, error) {
	w := f.nextWin
	f.nextWin++
	f.checkWindow = w
	return w, nil
}

func (f *fakeConn) SendDeleteWindow(w xproto.Window) error {
	f.deletesSent = append(f.deletesSent, w)
	return nil
}

func (f *fakeConn) TakeOwnership() (bool, error) {
	return f.alreadyManaged, f.takeOwnershipErr
}

func (f *fakeConn) NextEvent() (xproto.Event, error) {
	return nil, errors.New("not implemented in fakeConn")
}
