package x11

import "github.com/BurntSushi/xgb/xproto"

// NextEvent blocks for the next event, then drains and discards any
// immediately-queued MotionNotify events for the same window,
// returning only the latest. This is the event-pump-level coalescing
// spec.md §9 calls for: a property of the pump, not of the handler.
//
// xgb has no "peek and push back" primitive, so any non-matching event
// popped while draining is held in pending and returned on the next
// call instead of being lost.
func (c *Conn) NextEvent() (xproto.Event, error) {
	if len(c.pending) > 0 {
		ev := c.pending[0]
		c.pending = c.pending[1:]
		return c.coalesce(ev)
	}
	ev, err := c.X.WaitForEvent()
	if err != nil || ev == nil {
		return ev, err
	}
	return c.coalesce(ev)
}

func (c *Conn) coalesce(ev xproto.Event) (xproto.Event, error) {
	motion, ok := ev.(xproto.MotionNotifyEvent)
	if !ok {
		return ev, nil
	}
	for {
		next, nerr := c.X.PollForEvent()
		if nerr != nil || next == nil {
			break
		}
		nextMotion, ok := next.(xproto.MotionNotifyEvent)
		if !ok || nextMotion.Event != motion.Event {
			c.pending = append(c.pending, next)
			break
		}
		motion = nextMotion
	}
	return motion, nil
}
