// Package x11 is a typed façade over github.com/BurntSushi/xgb, the
// only package in this module that imports xgb itself and holds the
// connection; other packages import only xgb/xproto, for its window,
// atom and event types. It bundles the
// connection, the atom cache, and screen geometry lookup that the
// window manager needs and nothing else: no keyboard grabs, no
// compositing extensions, no multi-monitor layout.
package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xinerama"
	"github.com/BurntSushi/xgb/xproto"
)

// Point is a plain 2D integer coordinate or extent. Arithmetic on it is
// simple enough that importing a vector-math package would be pure
// overhead — see DESIGN.md.
type Point struct {
	X, Y int32
}

// Add returns p+q.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Sub returns p-q.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Conn wraps an xgb connection plus the handful of root-window facts
// every handler in internal/manager needs repeatedly.
type Conn struct {
	X     *xgb.Conn
	Root  xproto.Window
	Atoms *Atoms

	screen  ScreenGeometry
	pending []xproto.Event
}

// ScreenGeometry is the usable pixel area of the (first) screen.
type ScreenGeometry struct {
	Width, Height int32
}

// AsPoint returns the screen extent as a Point, for translating
// windows off-screen on hide.
func (s ScreenGeometry) AsPoint() Point {
	return Point{X: s.Width, Y: s.Height}
}

// Dial opens a connection to the named X display ("" means $DISPLAY)
// and interns the atom set this manager honors. It does not yet take
// WM ownership of the root window; call TakeOwnership for that.
func Dial(display string) (*Conn, error) {
	xc, err := xgb.NewConnDisplay(display)
	if err != nil {
		return nil, fmt.Errorf("open display %q: %w", display, err)
	}
	setup := xproto.Setup(xc)
	if setup == nil || len(setup.Roots) < 1 {
		xc.Close()
		return nil, fmt.Errorf("could not parse X setup info")
	}
	root := setup.Roots[0].Root

	atoms, err := newAtoms(xc)
	if err != nil {
		xc.Close()
		return nil, fmt.Errorf("intern atoms: %w", err)
	}

	c := &Conn{X: xc, Root: root, Atoms: atoms}
	c.screen = queryScreen(xc, setup)
	return c, nil
}

// Close releases the display connection.
func (c *Conn) Close() {
	c.X.Close()
}

// RootWindow returns the root window id.
func (c *Conn) RootWindow() xproto.Window {
	return c.Root
}

// AtomSet returns the interned atom registry.
func (c *Conn) AtomSet() *Atoms {
	return c.Atoms
}

// Screen returns the geometry of the screen the manager lays clients
// out on. Only the first Xinerama head (or the default root geometry
// when Xinerama reports none) is used; multi-monitor layout is a
// Non-goal.
func (c *Conn) Screen() ScreenGeometry {
	return c.screen
}

func queryScreen(xc *xgb.Conn, setup *xproto.SetupInfo) ScreenGeometry {
	fallback := ScreenGeometry{
		Width:  int32(setup.Roots[0].WidthInPixels),
		Height: int32(setup.Roots[0].HeightInPixels),
	}
	if err := xinerama.Init(xc); err != nil {
		return fallback
	}
	reply, err := xinerama.QueryScreens(xc).Reply()
	if err != nil || len(reply.ScreenInfo) == 0 {
		return fallback
	}
	head := reply.ScreenInfo[0]
	return ScreenGeometry{Width: int32(head.Width), Height: int32(head.Height)}
}

// TakeOwnership attempts to become the window manager by subscribing
// to SubstructureRedirect|SubstructureNotify on the root. It reports
// whether another manager already holds the redirect (BadAccess).
func (c *Conn) TakeOwnership() (alreadyManaged bool, err error) {
	mask := []uint32{
		uint32(xproto.EventMaskSubstructureRedirect | xproto.EventMaskSubstructureNotify),
	}
	cookie := xproto.ChangeWindowAttributesChecked(c.X, c.Root, xproto.CwEventMask, mask)
	if cerr := cookie.Check(); cerr != nil {
		if _, ok := cerr.(xproto.AccessError); ok {
			return true, nil
		}
		return false, cerr
	}
	return false, nil
}
