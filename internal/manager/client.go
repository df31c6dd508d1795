package manager

import (
	"github.com/BurntSushi/xgb/xproto"

	"github.com/compasswm/compasswm/internal/x11"
)

// Client is a managed top-level application window plus its
// per-manager state (spec.md §3).
type Client struct {
	Window     xproto.Window
	Workspace  int
	Position   x11.Point
	Size       x11.Point
	Restore    x11.Point
	Fullscreen bool

	// preZoomPosition and preZoomSize remember the geometry to return
	// to when a fullscreen toggle is reversed. Distinct from Restore,
	// which is hide/show's off-screen round-trip memory.
	preZoomPosition x11.Point
	preZoomSize     x11.Point
}

func (c *Client) rect() x11.Rect {
	return x11.Rect{Pos: c.Position, Size: c.Size}
}

// clientTable is the ordered collection of managed clients (spec.md
// §4.3). Order is insertion order of framing, and is the traversal
// order cycling observes; it is preserved across erase by shifting
// rather than swap-removing.
type clientTable struct {
	clients []*Client
	focused *Client
}

func newClientTable() *clientTable {
	return &clientTable{}
}

// insert appends a client to the end of the table.
func (t *clientTable) insert(c *Client) {
	t.clients = append(t.clients, c)
}

// find returns the client with the given window id, or nil.
func (t *clientTable) find(w xproto.Window) *Client {
	for _, c := range t.clients {
		if c.Window == w {
			return c
		}
	}
	return nil
}

// erase removes the client with the given window id, preserving the
// relative order of the remainder. Clears the focus pointer if it
// aliased the removed client.
func (t *clientTable) erase(w xproto.Window) {
	for i, c := range t.clients {
		if c.Window != w {
			continue
		}
		t.clients = append(t.clients[:i], t.clients[i+1:]...)
		if t.focused == c {
			t.focused = nil
		}
		return
	}
}

// all returns the table's clients in insertion order. Callers must not
// retain the slice across a mutating call.
func (t *clientTable) all() []*Client {
	return t.clients
}

// lastInCurrent returns the last client (in table order) on the given
// workspace, or nil.
func (t *clientTable) lastInCurrent(workspace int) *Client {
	for i := len(t.clients) - 1; i >= 0; i-- {
		if t.clients[i].Workspace == workspace {
			return t.clients[i]
		}
	}
	return nil
}

// indexOf returns the table index of c, or -1 if c is not a member.
func (t *clientTable) indexOf(c *Client) int {
	for i, x := range t.clients {
		if x == c {
			return i
		}
	}
	return -1
}

// cycleNext returns the next client after anchor (circularly) whose
// Workspace matches workspace. Behavior is undefined (returns nil) if
// anchor is not a member of the table.
func (t *clientTable) cycleNext(anchor *Client, workspace int) *Client {
	start := t.indexOf(anchor)
	if start < 0 || len(t.clients) == 0 {
		return nil
	}
	n := len(t.clients)
	for i := 1; i <= n; i++ {
		c := t.clients[(start+i)%n]
		if c.Workspace == workspace {
			return c
		}
	}
	return nil
}

// cyclePrev returns the previous client before anchor (circularly)
// whose Workspace matches workspace.
func (t *clientTable) cyclePrev(anchor *Client, workspace int) *Client {
	start := t.indexOf(anchor)
	if start < 0 || len(t.clients) == 0 {
		return nil
	}
	n := len(t.clients)
	for i := 1; i <= n; i++ {
		idx := ((start-i)%n + n) % n
		c := t.clients[idx]
		if c.Workspace == workspace {
			return c
		}
	}
	return nil
}
