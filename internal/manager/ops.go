package manager

import (
	"github.com/compasswm/compasswm/internal/config"
	"github.com/compasswm/compasswm/internal/x11"
)

// hide translates a client off-screen, recording its current origin
// into Restore, keeping it mapped but invisible (spec.md §4.4).
func (m *Manager) hide(c *Client) {
	c.Restore = c.Position
	screen := m.conn.Screen()
	c.Position = c.Position.Add(screen.AsPoint())
	if err := m.conn.ConfigureWindow(c.Window, c.rect()); err != nil {
		m.log.Warn().Err(err).Uint32("window", uint32(c.Window)).Msg("hide failed")
	}
}

// show moves a client back to its recorded restore origin.
func (m *Manager) show(c *Client) {
	c.Position = c.Restore
	if err := m.conn.ConfigureWindow(c.Window, c.rect()); err != nil {
		m.log.Warn().Err(err).Uint32("window", uint32(c.Window)).Msg("show failed")
	}
}

// switchWorkspace implements spec.md §4.5's switch_workspace: hide
// every client on the current workspace, switch, show every client on
// the new current workspace, publish _NET_CURRENT_DESKTOP, re-focus.
func (m *Manager) switchWorkspace(target Workspace) {
	if target == m.current {
		return
	}
	for _, c := range m.clients.all() {
		if c.Workspace == int(m.current) {
			m.hide(c)
		}
	}
	m.current = target
	for _, c := range m.clients.all() {
		if c.Workspace == int(m.current) {
			m.show(c)
		}
	}

	atoms := m.conn.AtomSet()
	root := m.conn.RootWindow()
	if err := m.conn.SetCardinal(root, atoms.NetCurrentDesktop, uint32(m.current)); err != nil {
		m.log.Warn().Err(err).Msg("publish _NET_CURRENT_DESKTOP failed")
	}

	if next := m.clients.lastInCurrent(int(m.current)); next != nil {
		m.focus(next)
	} else {
		m.clearFocus()
	}
	m.log.Info().Str("workspace", m.current.String()).Msg("switched workspace")
}

// moveClient implements spec.md §4.5's move_client: reassign the
// client's workspace, hide it (it is by definition leaving the
// current workspace), and re-focus. It is never shown, since the
// target workspace is not current.
func (m *Manager) moveClient(c *Client, target Workspace) {
	if c.Workspace == int(target) {
		return
	}
	c.Workspace = int(target)
	m.hide(c)

	if next := m.clients.lastInCurrent(int(m.current)); next != nil {
		m.focus(next)
	} else {
		m.clearFocus()
	}
}

// zoom implements spec.md §4.5's zoom toggle.
func (m *Manager) zoom(c *Client) {
	if !c.Fullscreen {
		c.preZoomPosition = c.Position
		c.preZoomSize = c.Size
		screen := m.conn.Screen()
		border := int32(config.BorderWidth)
		c.Size = x11.Point{
			X: screen.Width - 2*border,
			Y: screen.Height - m.reservedUpper - m.reservedLower - 2*border,
		}
		c.Position = x11.Point{X: 0, Y: m.reservedUpper}
		c.Fullscreen = true
	} else {
		c.Size = c.preZoomSize
		c.Position = c.preZoomPosition
		c.Fullscreen = false
	}
	if err := m.conn.ConfigureWindow(c.Window, c.rect()); err != nil {
		m.log.Warn().Err(err).Msg("zoom configure failed")
	}
}

// kill implements spec.md §4.5's kill: send WM_DELETE_WINDOW, then
// re-focus (the client is expected to unmap itself in response, which
// will re-focus again via unframe, but the spec calls for a re-focus
// immediately after sending too).
func (m *Manager) kill(c *Client) {
	if err := m.conn.SendDeleteWindow(c.Window); err != nil {
		m.log.Warn().Err(err).Uint32("window", uint32(c.Window)).Msg("send WM_DELETE_WINDOW failed")
	}
	if next := m.clients.lastInCurrent(int(m.current)); next != nil {
		m.focus(next)
	} else {
		m.clearFocus()
	}
}
