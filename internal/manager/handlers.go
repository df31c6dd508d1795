package manager

import (
	"github.com/BurntSushi/xgb/xproto"

	"github.com/compasswm/compasswm/internal/config"
	"github.com/compasswm/compasswm/internal/x11"
)

func (m *Manager) onConfigureRequest(e xproto.ConfigureRequestEvent) {
	r := x11.Rect{
		Pos:  x11.Point{X: int32(e.X), Y: int32(e.Y)},
		Size: x11.Point{X: int32(e.Width), Y: int32(e.Height)},
	}
	if err := m.conn.ConfigureWindow(e.Window, r); err != nil {
		m.log.Warn().Err(err).Uint32("window", uint32(e.Window)).Msg("configure request failed")
		return
	}
	if c := m.clients.find(e.Window); c != nil {
		c.Position = r.Pos
		c.Size = r.Size
		// Also send a synthetic ConfigureNotify carrying the applied
		// root-relative geometry, so ICCCM clients that track their own
		// position see it. Managed windows are not reparented, so this
		// geometry is the same the server itself reports.
		if err := m.conn.SendConfigureNotify(e.Window, r); err != nil {
			m.log.Warn().Err(err).Uint32("window", uint32(e.Window)).Msg("synthetic configure notify failed")
		}
	}
}

func (m *Manager) onMapRequest(e xproto.MapRequestEvent) {
	c, accepted, err := m.frame(e.Window, false)
	if err != nil {
		m.log.Warn().Err(err).Uint32("window", uint32(e.Window)).Msg("failed to frame window")
		return
	}
	if err := m.conn.MapWindow(e.Window); err != nil {
		m.log.Warn().Err(err).Uint32("window", uint32(e.Window)).Msg("map window failed")
	}
	if accepted {
		m.focus(c)
	}
}

func (m *Manager) onUnmapNotify(e xproto.UnmapNotifyEvent) {
	c := m.clients.find(e.Window)
	if c == nil {
		return
	}
	m.unframe(c)
}

func (m *Manager) onButtonPress(e xproto.ButtonPressEvent) {
	c := m.clients.find(e.Event)
	if c == nil {
		return
	}
	rect, err := m.conn.GetGeometry(c.Window)
	if err != nil {
		m.log.Warn().Err(err).Uint32("window", uint32(c.Window)).Msg("get geometry failed on button press")
		return
	}
	m.drag = gesture{
		active:       true,
		window:       c.Window,
		cursorOrigin: x11.Point{X: int32(e.RootX), Y: int32(e.RootY)},
		windowOrigin: rect.Pos,
		windowSize:   rect.Size,
	}
}

func (m *Manager) onMotionNotify(e xproto.MotionNotifyEvent) {
	if !m.drag.active || m.drag.window != e.Event {
		return
	}
	c := m.clients.find(e.Event)
	if c == nil {
		return
	}
	if c.Fullscreen {
		return
	}
	cursor := x11.Point{X: int32(e.RootX), Y: int32(e.RootY)}
	delta := cursor.Sub(m.drag.cursorOrigin)

	switch {
	case e.State&xproto.ButtonMask1 != 0:
		newPos := m.drag.windowOrigin.Add(delta)
		c.Position = newPos
		if err := m.conn.ConfigureWindow(c.Window, c.rect()); err != nil {
			m.log.Warn().Err(err).Msg("move during drag failed")
		}
	case e.State&xproto.ButtonMask3 != 0:
		newSize := x11.Point{
			X: maxInt32(m.drag.windowSize.X+delta.X, config.MinWindowSize),
			Y: maxInt32(m.drag.windowSize.Y+delta.Y, config.MinWindowSize),
		}
		c.Size = newSize
		if err := m.conn.ConfigureWindow(c.Window, c.rect()); err != nil {
			m.log.Warn().Err(err).Msg("resize during drag failed")
		}
	}
}

func (m *Manager) onEnterNotify(e xproto.EnterNotifyEvent) {
	if m.clients.focused != nil && m.clients.focused.Fullscreen {
		return
	}
	c := m.clients.find(e.Event)
	if c == nil {
		return
	}
	m.focus(c)
}

func (m *Manager) onFocusIn(e xproto.FocusInEvent) {
	m.log.Debug().Uint32("window", uint32(e.Event)).Msg("focus changed")
}

func (m *Manager) onClientMessage(e xproto.ClientMessageEvent) {
	if e.Type != m.conn.AtomSet().WMRequest {
		return
	}
	data := e.Data.Data32
	if len(data) == 0 {
		return
	}
	m.dispatchRPC(data[0], data[1:])
}

func maxInt32(a, b int32) int32 {
	if a > b {
		return a
	}
	return b
}
