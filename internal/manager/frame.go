package manager

import (
	"github.com/BurntSushi/xgb/xproto"

	"github.com/compasswm/compasswm/internal/config"
	"github.com/compasswm/compasswm/internal/x11"
)

// frame implements spec.md §4.5's frame algorithm. It returns the
// accepted Client (nil if declined), whether the window was accepted
// for management, and any hard error.
func (m *Manager) frame(w xproto.Window, preExisting bool) (*Client, bool, error) {
	attrs, err := m.conn.GetWindowAttributes(w)
	if err != nil {
		return nil, false, err
	}
	if preExisting && (attrs.OverrideRedirect || !attrs.Viewable) {
		return nil, false, nil
	}

	typ, isSpecial, err := m.conn.WindowType(w)
	if err != nil {
		return nil, false, err
	}
	if isSpecial {
		if typ == x11.WindowTypeDock {
			m.registerDock(w)
		}
		return nil, false, nil
	}

	rect, err := m.conn.GetGeometry(w)
	if err != nil {
		return nil, false, err
	}
	rect = m.clampToReserved(rect)

	if err := m.conn.ConfigureWindow(w, rect); err != nil {
		return nil, false, err
	}
	if err := m.conn.SelectInput(w, uint32(xproto.EventMaskSubstructureRedirect|
		xproto.EventMaskSubstructureNotify|xproto.EventMaskEnterWindow)); err != nil {
		return nil, false, err
	}

	c := &Client{
		Window:    w,
		Workspace: int(m.current),
		Position:  rect.Pos,
		Size:      rect.Size,
		Restore:   rect.Pos,
	}
	m.clients.insert(c)

	if err := m.conn.GrabButton(w, xproto.ButtonIndex1, uint16(config.Modifier)); err != nil {
		m.log.Warn().Err(err).Msg("grab button1 failed")
	}
	if err := m.conn.GrabButton(w, xproto.ButtonIndex3, uint16(config.Modifier)); err != nil {
		m.log.Warn().Err(err).Msg("grab button3 failed")
	}

	m.log.Info().Uint32("window", uint32(w)).Msg("framed")
	return c, true, nil
}

// registerDock records a dock window's height as a reserved strip at
// the top or bottom of the screen, per spec.md §4.5 step 2. The dock
// itself is never added to the client table.
func (m *Manager) registerDock(w xproto.Window) {
	rect, err := m.conn.GetGeometry(w)
	if err != nil {
		m.log.Warn().Err(err).Msg("failed to read dock geometry")
		return
	}
	if rect.Pos.Y == 0 {
		m.reservedUpper = rect.Size.Y
	} else {
		m.reservedLower = rect.Size.Y
	}
}

// clampToReserved clamps geometry to stay clear of the reserved dock
// strips, per spec.md §4.5 step 3.
func (m *Manager) clampToReserved(r x11.Rect) x11.Rect {
	screen := m.conn.Screen()
	if r.Pos.Y < m.reservedUpper {
		r.Pos.Y = m.reservedUpper
	}
	if r.Pos.Y+r.Size.Y+m.reservedLower > screen.Height {
		r.Size.Y = screen.Height - m.reservedLower - r.Pos.Y
	}
	return r
}

// unframe implements spec.md §4.5's unframe algorithm: remove from the
// table, then re-focus via lastInCurrent, clearing _NET_ACTIVE_WINDOW
// and reverting focus to the root if nothing remains.
func (m *Manager) unframe(c *Client) {
	m.clients.erase(c.Window)
	m.log.Info().Uint32("window", uint32(c.Window)).Msg("unframed")

	next := m.clients.lastInCurrent(int(m.current))
	if next == nil {
		m.clearFocus()
		return
	}
	m.focus(next)
}

// focus implements spec.md §4.5's focus algorithm.
func (m *Manager) focus(c *Client) {
	m.clients.focused = c
	atoms := m.conn.AtomSet()
	root := m.conn.RootWindow()
	if err := m.conn.SetWindowProperty(root, atoms.NetActiveWindow, c.Window); err != nil {
		m.log.Warn().Err(err).Msg("set _NET_ACTIVE_WINDOW failed")
	}
	if err := m.conn.Raise(c.Window); err != nil {
		m.log.Warn().Err(err).Msg("raise failed")
	}
	if err := m.conn.SetInputFocus(c.Window); err != nil {
		m.log.Warn().Err(err).Msg("set input focus failed")
	}
}

// clearFocus clears the focused pointer, _NET_ACTIVE_WINDOW, and
// reverts input focus to the root (PointerRoot).
func (m *Manager) clearFocus() {
	m.clients.focused = nil
	atoms := m.conn.AtomSet()
	root := m.conn.RootWindow()
	if err := m.conn.DeleteProperty(root, atoms.NetActiveWindow); err != nil {
		m.log.Warn().Err(err).Msg("clear _NET_ACTIVE_WINDOW failed")
	}
	if err := m.conn.RevertFocusToRoot(); err != nil {
		m.log.Warn().Err(err).Msg("revert focus to root failed")
	}
}
