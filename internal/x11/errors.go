package x11

import "github.com/BurntSushi/xgb/xproto"

// IsProtocolError reports whether err is an X11 protocol error (as
// opposed to a connection-level failure such as the socket closing).
// The event loop absorbs these per spec.md §7: a window can vanish
// between a query and a subsequent operation on it, and that is
// expected, not fatal.
func IsProtocolError(err error) bool {
	if err == nil {
		return false
	}
	switch err.(type) {
	case xproto.AccessError, xproto.WindowError, xproto.DrawableError,
		xproto.MatchError, xproto.ValueError, xproto.IDChoiceError:
		return true
	}
	return false
}
