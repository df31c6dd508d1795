// Package manager implements the window-manager event loop and
// managed-client state machine: the core described in spec.md §4.5.
package manager

import (
	"fmt"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/rs/zerolog"

	"github.com/compasswm/compasswm/internal/config"
	"github.com/compasswm/compasswm/internal/x11"
)

// gesture captures the state of an in-progress modal move/resize,
// primed on ButtonPress and consumed by MotionNotify (spec.md §3).
type gesture struct {
	active       bool
	window       xproto.Window
	cursorOrigin x11.Point
	windowOrigin x11.Point
	windowSize   x11.Point
}

// Manager owns all mutable window-manager state and drives the event
// loop. It is single-threaded: every exported method except Run and
// the quit-channel plumbing is meant to be called from the loop
// goroutine only.
type Manager struct {
	conn conn
	log  zerolog.Logger

	clients clientTable
	current Workspace

	reservedUpper int32
	reservedLower int32

	drag gesture

	quit chan struct{}
}

// New constructs a Manager bound to the given display connection.
func New(c conn, log zerolog.Logger) *Manager {
	return &Manager{
		conn:    c,
		log:     log,
		clients: *newClientTable(),
		current: Center,
		quit:    make(chan struct{}, 1),
	}
}

// Quit requests that Run return. Run checks for the request between
// events, so while Run is blocked waiting for the next event it returns
// only after that event has been received and dispatched. Safe to call
// from another goroutine (e.g. a signal handler); it is the same exit
// path the Exit RPC opcode uses.
func (m *Manager) Quit() {
	select {
	case m.quit <- struct{}{}:
	default:
	}
}

// Bootstrap runs the one-time startup sequence of spec.md §4.5:
// take WM ownership, adopt any pre-existing top-level windows,
// publish the EWMH identity properties. It must be called before Run.
func (m *Manager) Bootstrap() error {
	alreadyManaged, err := m.conn.TakeOwnership()
	if err != nil {
		return fmt.Errorf("take WM ownership: %w", err)
	}
	if alreadyManaged {
		return fmt.Errorf("another window manager is already running on this display")
	}

	children, err := m.conn.QueryTree()
	if err != nil {
		return fmt.Errorf("query root tree: %w", err)
	}
	for _, w := range children {
		if _, _, err := m.frame(w, true); err != nil {
			m.log.Warn().Err(err).Uint32("window", uint32(w)).Msg("failed to adopt pre-existing window")
		}
	}

	check, err := m.conn.CreateCheckWindow()
	if err != nil {
		return fmt.Errorf("create supporting-wm-check window: %w", err)
	}
	atoms := m.conn.AtomSet()
	root := m.conn.RootWindow()
	if err := m.conn.SetWindowProperty(check, atoms.NetSupportingWMCheck, check); err != nil {
		return fmt.Errorf("set check window property: %w", err)
	}
	if err := m.conn.SetWindowProperty(root, atoms.NetSupportingWMCheck, check); err != nil {
		return fmt.Errorf("set root check window property: %w", err)
	}
	if err := m.conn.SetUTF8String(check, atoms.NetWMName, config.WMName); err != nil {
		return fmt.Errorf("set check window name: %w", err)
	}
	if err := m.conn.SetUTF8String(root, atoms.NetWMName, config.WMName); err != nil {
		return fmt.Errorf("set root name: %w", err)
	}

	if err := m.conn.SetAtomList(root, atoms.NetSupported, atoms.Supported()); err != nil {
		return fmt.Errorf("publish _NET_SUPPORTED: %w", err)
	}
	if err := m.conn.SetCardinal(root, atoms.NetNumberOfDesktops, config.WorkspaceCount); err != nil {
		return fmt.Errorf("publish _NET_NUMBER_OF_DESKTOPS: %w", err)
	}
	if err := m.conn.SetCardinal(root, atoms.NetCurrentDesktop, uint32(m.current)); err != nil {
		return fmt.Errorf("publish _NET_CURRENT_DESKTOP: %w", err)
	}

	m.log.Info().Msg("bootstrap complete")
	return nil
}

// Run blocks, dispatching events, until Quit is called or the
// connection fails.
func (m *Manager) Run() error {
	for {
		select {
		case <-m.quit:
			m.log.Info().Msg("exiting")
			return nil
		default:
		}

		ev, err := m.conn.NextEvent()
		if err != nil {
			m.log.Warn().Err(err).Msg("event pump error")
			continue
		}
		m.dispatch(ev)
	}
}

func (m *Manager) dispatch(ev xproto.Event) {
	switch e := ev.(type) {
	case xproto.ConfigureRequestEvent:
		m.onConfigureRequest(e)
	case xproto.MapRequestEvent:
		m.onMapRequest(e)
	case xproto.UnmapNotifyEvent:
		m.onUnmapNotify(e)
	case xproto.ButtonPressEvent:
		m.onButtonPress(e)
	case xproto.MotionNotifyEvent:
		m.onMotionNotify(e)
	case xproto.EnterNotifyEvent:
		m.onEnterNotify(e)
	case xproto.FocusInEvent:
		m.onFocusIn(e)
	case xproto.ClientMessageEvent:
		m.onClientMessage(e)
	default:
		m.log.Debug().Str("event", fmt.Sprintf("%T", e)).Msg("ignored event")
	}
}
