package overlay

import (
	"fmt"

	"vr-overlay/internal/vr"
)

type deviceKind int

const (
	deviceHMD deviceKind = iota
	deviceLeftController
	deviceRightController
	deviceExplicit
)

// MaxExplicitDevice is the highest device slot ExplicitDevice accepts.
const MaxExplicitDevice = 8

// Device is the target of device-relative tracking.
type Device struct {
	kind  deviceKind
	index vr.TrackedDeviceIndex
}

var (
	HMD             = Device{kind: deviceHMD}
	LeftController  = Device{kind: deviceLeftController}
	RightController = Device{kind: deviceRightController}
)

// ExplicitDevice targets a fixed device slot in 1..MaxExplicitDevice.
func ExplicitDevice(n int) (Device, error) {
	if n < 1 || n > MaxExplicitDevice {
		return Device{}, fmt.Errorf("overlay: device index %d out of range 1..%d", n, MaxExplicitDevice)
	}
	return Device{kind: deviceExplicit, index: vr.TrackedDeviceIndex(n)}, nil
}

func (d Device) String() string {
	switch d.kind {
	case deviceLeftController:
		return "LeftController"
	case deviceRightController:
		return "RightController"
	case deviceExplicit:
		return fmt.Sprintf("Device%d", d.index)
	}
	return "HMD"
}

type trackingKind int

const (
	trackingDeviceRelative trackingKind = iota
	trackingStanding
	trackingSeated
	trackingNone
)

// Tracking is the reference the overlay transform is submitted against:
// relative to a tracked device, absolute in the standing or seated
// universe, or nothing at all.
type Tracking struct {
	kind   trackingKind
	device Device
}

var (
	AbsoluteStanding = Tracking{kind: trackingStanding}
	AbsoluteSeated   = Tracking{kind: trackingSeated}
	// NoTracking keeps the overlay where it is; UpdatePosition submits nothing.
	NoTracking = Tracking{kind: trackingNone}
)

// DeviceRelative follows the given device.
func DeviceRelative(d Device) Tracking {
	return Tracking{kind: trackingDeviceRelative, device: d}
}

// Device returns the followed device for device-relative tracking.
func (t Tracking) Device() (Device, bool) {
	return t.device, t.kind == trackingDeviceRelative
}

// Universe returns the reference universe for absolute tracking.
func (t Tracking) Universe() (vr.TrackingUniverse, bool) {
	switch t.kind {
	case trackingStanding:
		return vr.TrackingUniverseStanding, true
	case trackingSeated:
		return vr.TrackingUniverseSeated, true
	}
	return 0, false
}

func (t Tracking) String() string {
	switch t.kind {
	case trackingStanding:
		return "AbsoluteStanding"
	case trackingSeated:
		return "AbsoluteSeated"
	case trackingNone:
		return "None"
	}
	return "DeviceRelative(" + t.device.String() + ")"
}

// Tracking returns the current tracking reference.
func (c *Controller) Tracking() Tracking {
	return c.tracking
}

// SetTracking replaces the tracking reference. It does not submit; call
// UpdatePosition afterwards.
func (c *Controller) SetTracking(t Tracking) {
	c.tracking = t
	if d, ok := t.Device(); ok {
		c.device = d
	}
}

// SetDeviceTracking switches between device-relative tracking of the current
// target device and absolute tracking in the seated or standing universe.
// seated is ignored when tracking is true. It does not submit.
func (c *Controller) SetDeviceTracking(tracking, seated bool) {
	switch {
	case tracking:
		c.tracking = DeviceRelative(c.device)
	case seated:
		c.tracking = AbsoluteSeated
	default:
		c.tracking = AbsoluteStanding
	}
}

// SetDeviceTrackingIndex selects the device followed by device-relative
// tracking. It does not submit.
func (c *Controller) SetDeviceTrackingIndex(d Device) {
	c.device = d
	if _, ok := c.tracking.Device(); ok {
		c.tracking = DeviceRelative(d)
	}
}
