// Package config holds the window manager's compile-time constants.
// Per spec §6 these are not meant to be read from a config file — the
// set here is small and stable enough that a TOML/YAML layer would add
// a feature the spec never asked for, not an ambient concern it needs.
package config

import "github.com/BurntSushi/xgb/xproto"

const (
	// Modifier is the held key that primes the interactive
	// move/resize gesture, and the modifier grabbed alongside
	// Button1/Button3 on every framed window.
	Modifier = xproto.ModMask1

	// WorkspaceCount is the number of virtual desktops (the compass:
	// Center, West, East, North, South).
	WorkspaceCount = 5

	// MinWindowSize is the minimum width and height, in pixels, a
	// managed window may be resized to.
	MinWindowSize = 64

	// BorderWidth is subtracted twice (once per side) from the
	// fullscreen geometry computed by zoom.
	BorderWidth = 5

	// BorderColor and BackgroundColor are unused by the core state
	// machine today (no border is drawn) but are kept
	// as named constants since the original design reserves them for
	// a cosmetic layer.
	BorderColor     = 0x555555
	BackgroundColor = 0x222222

	// WMName is published via _NET_WM_NAME on the root and the dummy
	// check window.
	WMName = "compasswm"
)
