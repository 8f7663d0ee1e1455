package vr

import "fmt"

// EventType identifies a runtime event.
type EventType uint32

const (
	EventNone                     EventType = 0
	EventTrackedDeviceActivated   EventType = 100
	EventTrackedDeviceDeactivated EventType = 101
	EventButtonPress              EventType = 200
	EventButtonUnpress            EventType = 201
	EventMouseMove                EventType = 300
	EventMouseButtonDown          EventType = 301
	EventMouseButtonUp            EventType = 302
	EventFocusEnter               EventType = 303
	EventFocusLeave               EventType = 304
	EventScrollDiscrete           EventType = 305
	EventOverlayShown             EventType = 500
	EventOverlayHidden            EventType = 501
	EventDashboardActivated       EventType = 502
	EventDashboardDeactivated     EventType = 503
	EventQuit                     EventType = 700
	EventProcessQuit              EventType = 701
	EventQuitAcknowledged         EventType = 703
)

var eventNames = map[EventType]string{
	EventNone:                     "VREvent_None",
	EventTrackedDeviceActivated:   "VREvent_TrackedDeviceActivated",
	EventTrackedDeviceDeactivated: "VREvent_TrackedDeviceDeactivated",
	EventButtonPress:              "VREvent_ButtonPress",
	EventButtonUnpress:            "VREvent_ButtonUnpress",
	EventMouseMove:                "VREvent_MouseMove",
	EventMouseButtonDown:          "VREvent_MouseButtonDown",
	EventMouseButtonUp:            "VREvent_MouseButtonUp",
	EventFocusEnter:               "VREvent_FocusEnter",
	EventFocusLeave:               "VREvent_FocusLeave",
	EventScrollDiscrete:           "VREvent_ScrollDiscrete",
	EventOverlayShown:             "VREvent_OverlayShown",
	EventOverlayHidden:            "VREvent_OverlayHidden",
	EventDashboardActivated:       "VREvent_DashboardActivated",
	EventDashboardDeactivated:     "VREvent_DashboardDeactivated",
	EventQuit:                     "VREvent_Quit",
	EventProcessQuit:              "VREvent_ProcessQuit",
	EventQuitAcknowledged:         "VREvent_QuitAcknowledged",
}

func (t EventType) String() string {
	if s, ok := eventNames[t]; ok {
		return s
	}
	return fmt.Sprintf("VREvent(%d)", uint32(t))
}

// Event is one entry of an overlay's event queue.
type Event struct {
	Type               EventType
	TrackedDeviceIndex TrackedDeviceIndex
	// Age is the event's age in seconds when it was polled.
	Age float32
}
