package x11

import (
	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
)

// Atoms is the immutable set of EWMH, ICCCM, and UTF-8 atoms the
// manager uses. It is interned once at startup and never mutated
// afterward; naming follows the grouping BurntSushi/xgbutil's ewmh and
// icccm packages use for the same identifiers.
type Atoms struct {
	// EWMH
	NetSupported           xproto.Atom
	NetSupportingWMCheck   xproto.Atom
	NetWMName              xproto.Atom
	NetActiveWindow        xproto.Atom
	NetNumberOfDesktops    xproto.Atom
	NetCurrentDesktop      xproto.Atom
	NetWMWindowType        xproto.Atom
	NetWMWindowTypeDock    xproto.Atom
	NetWMWindowTypeToolbar xproto.Atom
	NetWMWindowTypeUtility xproto.Atom
	NetWMWindowTypeMenu    xproto.Atom

	// ICCCM
	WMProtocols    xproto.Atom
	WMDeleteWindow xproto.Atom

	// Misc
	UTF8String xproto.Atom
	WMRequest  xproto.Atom // custom RPC client-message type
}

// Supported returns the explicit list of atoms published as
// _NET_SUPPORTED. Kept as a literal list rather than a raw struct dump
// (the original source's approach) per spec.md §9's portability note.
func (a *Atoms) Supported() []xproto.Atom {
	return []xproto.Atom{
		a.NetSupported,
		a.NetSupportingWMCheck,
		a.NetWMName,
		a.NetActiveWindow,
		a.NetNumberOfDesktops,
		a.NetCurrentDesktop,
		a.NetWMWindowType,
		a.NetWMWindowTypeDock,
		a.NetWMWindowTypeToolbar,
		a.NetWMWindowTypeUtility,
		a.NetWMWindowTypeMenu,
	}
}

func newAtoms(xc *xgb.Conn) (*Atoms, error) {
	a := &Atoms{}
	fields := []struct {
		dst  *xproto.Atom
		name string
	}{
		{&a.NetSupported, "_NET_SUPPORTED"},
		{&a.NetSupportingWMCheck, "_NET_SUPPORTING_WM_CHECK"},
		{&a.NetWMName, "_NET_WM_NAME"},
		{&a.NetActiveWindow, "_NET_ACTIVE_WINDOW"},
		{&a.NetNumberOfDesktops, "_NET_NUMBER_OF_DESKTOPS"},
		{&a.NetCurrentDesktop, "_NET_CURRENT_DESKTOP"},
		{&a.NetWMWindowType, "_NET_WM_WINDOW_TYPE"},
		{&a.NetWMWindowTypeDock, "_NET_WM_WINDOW_TYPE_DOCK"},
		{&a.NetWMWindowTypeToolbar, "_NET_WM_WINDOW_TYPE_TOOLBAR"},
		{&a.NetWMWindowTypeUtility, "_NET_WM_WINDOW_TYPE_UTILITY"},
		{&a.NetWMWindowTypeMenu, "_NET_WM_WINDOW_TYPE_MENU"},
		{&a.WMProtocols, "WM_PROTOCOLS"},
		{&a.WMDeleteWindow, "WM_DELETE_WINDOW"},
		{&a.UTF8String, "UTF8_STRING"},
		{&a.WMRequest, "WM_REQUEST"},
	}
	for _, f := range fields {
		atom, err := internAtom(xc, f.name)
		if err != nil {
			return nil, err
		}
		*f.dst = atom
	}
	return a, nil
}

func internAtom(xc *xgb.Conn, name string) (xproto.Atom, error) {
	reply, err := xproto.InternAtom(xc, false, uint16(len(name)), name).Reply()
	if err != nil {
		return 0, err
	}
	return reply.Atom, nil
}
