// Command wmc is the RPC sender CLI (spec.md §6): it injects a
// WM_REQUEST client message on the root window and exits.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/compasswm/compasswm/internal/rpcproto"
	"github.com/compasswm/compasswm/internal/x11"
)

var displayFlag string

func main() {
	root := &cobra.Command{
		Use:   "wmc",
		Short: "Send a control message to a running compasswm instance",
	}
	root.PersistentFlags().StringVar(&displayFlag, "display", "", "X display to connect to (default: $DISPLAY)")

	root.AddCommand(
		directionCommand("move", rpcproto.OpMove, "Move the focused client to the workspace in the given direction"),
		directionCommand("go", rpcproto.OpGo, "Switch the current workspace in the given direction"),
		simpleCommand("zoom", rpcproto.OpZoom, "Toggle fullscreen on the focused client"),
		simpleCommand("kill", rpcproto.OpKill, "Politely close the focused client"),
		simpleCommand("exit", rpcproto.OpExit, "Terminate the window manager"),
		simpleCommand("focusnext", rpcproto.OpFocusNext, "Focus the next client on the current workspace"),
		simpleCommand("focusprev", rpcproto.OpFocusPrev, "Focus the previous client on the current workspace"),
	)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func directionCommand(use string, op rpcproto.Opcode, short string) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <left|right|up|down>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, ok := rpcproto.ParseDirection(args[0])
			if !ok {
				return fmt.Errorf("unknown direction %q (want left, right, up, or down)", args[0])
			}
			return send(op, [3]int32{int32(dir), 0, 0})
		},
	}
}

func simpleCommand(use string, op rpcproto.Opcode, short string) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return send(op, [3]int32{})
		},
	}
}

func send(op rpcproto.Opcode, args [3]int32) error {
	conn, err := x11.Dial(displayFlag)
	if err != nil {
		return fmt.Errorf("connect to X server: %w", err)
	}
	defer conn.Close()

	if err := conn.SendRPC(uint32(op), args); err != nil {
		return fmt.Errorf("send RPC: %w", err)
	}
	return conn.Sync()
}
