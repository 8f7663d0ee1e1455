// Package vr describes the boundary to an external VR compositor runtime.
//
// Only the calls the overlay controller depends on are modelled. The real
// runtime is an opaque collaborator; internal/headless provides an in-process
// implementation and vrtest a recording fake.
package vr

// ApplicationType selects the mode a client connects to the runtime in.
type ApplicationType int

const (
	ApplicationOther ApplicationType = iota
	ApplicationScene
	ApplicationOverlay
	ApplicationBackground
	ApplicationUtility
)

// Runtime is the process-wide connection to the compositor.
type Runtime interface {
	// Init connects to the runtime. On failure the returned System is nil
	// and the code is not InitErrorNone.
	Init(appType ApplicationType) (System, InitError)

	// Overlay returns the overlay interface of an initialized runtime, or nil.
	Overlay() Overlay

	// Shutdown releases the connection opened by Init.
	Shutdown()
}

// System is the runtime's device and tracking interface.
type System interface {
	TrackedDeviceIndexForControllerRole(role ControllerRole) TrackedDeviceIndex
	ResetSeatedZeroPose()
}

// Overlay is the runtime's overlay interface. Every call is synchronous.
type Overlay interface {
	CreateOverlay(key, name string) (OverlayHandle, OverlayError)
	DestroyOverlay(h OverlayHandle) OverlayError

	ShowOverlay(h OverlayHandle) OverlayError
	HideOverlay(h OverlayHandle) OverlayError

	SetOverlayTextureBounds(h OverlayHandle, bounds TextureBounds) OverlayError
	SetOverlayAlpha(h OverlayHandle, alpha float32) OverlayError
	SetOverlayWidthInMeters(h OverlayHandle, width float32) OverlayError
	SetOverlayMouseScale(h OverlayHandle, scale Vector2) OverlayError
	SetOverlayFromFile(h OverlayHandle, path string) OverlayError
	SetOverlayTexture(h OverlayHandle, tex Texture) OverlayError

	SetOverlayTransformTrackedDeviceRelative(h OverlayHandle, device TrackedDeviceIndex, m Matrix34) OverlayError
	SetOverlayTransformAbsolute(h OverlayHandle, origin TrackingUniverse, m Matrix34) OverlayError

	// PollNextOverlayEvent pops one pending event. ok is false when the queue is empty.
	PollNextOverlayEvent(h OverlayHandle) (ev Event, ok bool)
}
