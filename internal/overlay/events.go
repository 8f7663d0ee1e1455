package overlay

import "vr-overlay/internal/vr"

// ProcessEvent drains the overlay's pending events and reports whether the
// runtime asked the application to quit. On a quit event it returns at once,
// leaving later events queued. With debugLog set each event type is logged.
//
// Call it once per frame.
func (c *Controller) ProcessEvent(debugLog bool) bool {
	if c.overlay == nil {
		return false
	}
	for {
		ev, ok := c.overlay.PollNextOverlayEvent(c.handle)
		if !ok {
			return false
		}
		if debugLog {
			c.log.Info("Event: "+ev.Type.String(), "device", uint32(ev.TrackedDeviceIndex))
		}
		if ev.Type == vr.EventQuit {
			return true
		}
	}
}
