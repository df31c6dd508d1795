package x11

import "github.com/BurntSushi/xgb/xproto"

// SendRPC injects a WM_REQUEST client message on the root window: the
// mechanism cmd/wmc uses to talk to a running manager. opcode and args
// mirror spec.md §6's data.l[0..4] layout.
func (c *Conn) SendRPC(opcode uint32, args [3]int32) error {
	data := xproto.ClientMessageDataUnionData32New([]uint32{
		opcode,
		uint32(args[0]),
		uint32(args[1]),
		uint32(args[2]),
		0,
	})
	ev := xproto.ClientMessageEvent{
		Format: 32,
		Window: c.Root,
		Type:   c.Atoms.WMRequest,
		Data:   data,
	}
	return xproto.SendEventChecked(c.X, false, c.Root, xproto.EventMaskSubstructureRedirect, string(ev.Bytes())).Check()
}

// Sync forces a round-trip so the sender can be sure the event reached
// the server before exiting.
func (c *Conn) Sync() error {
	_, err := xproto.GetInputFocus(c.X).Reply()
	return err
}
