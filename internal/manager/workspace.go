package manager

import "github.com/compasswm/compasswm/internal/rpcproto"

// Workspace indexes one of the five compass desktops (spec.md §4.4).
type Workspace int

const (
	Center Workspace = iota
	West
	East
	North
	South

	workspaceCount
)

func (w Workspace) String() string {
	switch w {
	case Center:
		return "center"
	case West:
		return "west"
	case East:
		return "east"
	case North:
		return "north"
	case South:
		return "south"
	default:
		return "invalid"
	}
}

// Direction is a requested compass move, shared with the RPC wire
// contract so Move/Go arguments need no translation.
type Direction = rpcproto.Direction

const (
	Left  = rpcproto.Left
	Right = rpcproto.Right
	Up    = rpcproto.Up
	Down  = rpcproto.Down
)

// transitionTable maps (current workspace, direction) to the target
// workspace. Reproduced verbatim from spec.md §4.4, including the
// intentional North/South asymmetry: North responds to Up by wrapping
// to South, treating the compass as a torus with Center at the cross.
var transitionTable = [workspaceCount][4]Workspace{
	Center: {Left: West, Right: East, Up: North, Down: South},
	West:   {Left: East, Right: Center, Up: North, Down: South},
	East:   {Left: Center, Right: West, Up: North, Down: South},
	North:  {Left: West, Right: East, Up: South, Down: Center},
	South:  {Left: West, Right: East, Up: Center, Down: North},
}

// targetWorkspace returns the workspace reached from current via dir.
func targetWorkspace(current Workspace, dir Direction) Workspace {
	return transitionTable[current][dir]
}
