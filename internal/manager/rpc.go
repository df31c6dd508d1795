package manager

import "github.com/compasswm/compasswm/internal/rpcproto"

// rpcHandler dispatches one RPC opcode. args mirrors data.l[1..] of
// the WM_REQUEST client message, zero-padded.
type rpcHandler func(m *Manager, args []uint32)

// rpcTable is the static, bounds-checked dispatch table described in
// spec.md §9: opcode is plain data indexing into named methods, not a
// set of heterogeneous closures over mutable state.
var rpcTable = [...]rpcHandler{
	rpcproto.OpMove:      (*Manager).rpcMove,
	rpcproto.OpGo:        (*Manager).rpcGo,
	rpcproto.OpZoom:      (*Manager).rpcZoom,
	rpcproto.OpKill:      (*Manager).rpcKill,
	rpcproto.OpExit:      (*Manager).rpcExit,
	rpcproto.OpFocusNext: (*Manager).rpcFocusNext,
	rpcproto.OpFocusPrev: (*Manager).rpcFocusPrev,
}

// dispatchRPC runs the handler for opcode, ignoring unknown opcodes
// per spec.md §6.
func (m *Manager) dispatchRPC(opcode uint32, args []uint32) {
	if int(opcode) >= len(rpcTable) {
		m.log.Debug().Uint32("opcode", opcode).Msg("ignoring unknown RPC opcode")
		return
	}
	rpcTable[opcode](m, args)
}

func argDirection(args []uint32) (Direction, bool) {
	if len(args) < 1 {
		return 0, false
	}
	d := Direction(args[0])
	if d > Down {
		return 0, false
	}
	return d, true
}

func (m *Manager) rpcMove(args []uint32) {
	dir, ok := argDirection(args)
	if !ok {
		return
	}
	c := m.clients.focused
	if c == nil {
		return
	}
	target := targetWorkspace(Workspace(c.Workspace), dir)
	m.moveClient(c, target)
}

func (m *Manager) rpcGo(args []uint32) {
	dir, ok := argDirection(args)
	if !ok {
		return
	}
	m.switchWorkspace(targetWorkspace(m.current, dir))
}

func (m *Manager) rpcZoom(_ []uint32) {
	c := m.clients.focused
	if c == nil {
		return
	}
	m.zoom(c)
}

func (m *Manager) rpcKill(_ []uint32) {
	c := m.clients.focused
	if c == nil {
		return
	}
	m.kill(c)
}

func (m *Manager) rpcExit(_ []uint32) {
	m.Quit()
}

func (m *Manager) rpcFocusNext(_ []uint32) {
	c := m.clients.focused
	if c == nil {
		return
	}
	if next := m.clients.cycleNext(c, int(m.current)); next != nil {
		m.focus(next)
	}
}

func (m *Manager) rpcFocusPrev(_ []uint32) {
	c := m.clients.focused
	if c == nil {
		return
	}
	if prev := m.clients.cyclePrev(c, int(m.current)); prev != nil {
		m.focus(prev)
	}
}
