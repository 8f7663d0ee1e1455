package overlay

import (
	"log/slog"

	"vr-overlay/internal/vr"
)

// TextureFormat selects the texture row order expected by the overlay.
type TextureFormat int

const (
	OpenGL TextureFormat = iota
	DirectX
)

func (f TextureFormat) String() string {
	if f == DirectX {
		return "DirectX"
	}
	return "OpenGL"
}

// Bounds returns the texture bounds for the format. DirectX stores rows top
// down, so V is flipped.
func (f TextureFormat) Bounds() vr.TextureBounds {
	if f == DirectX {
		return vr.TextureBounds{UMin: 0, VMin: 1, UMax: 1, VMax: 0}
	}
	return vr.TextureBounds{UMin: 0, VMin: 0, UMax: 1, VMax: 1}
}

func (f TextureFormat) textureType() vr.TextureType {
	if f == DirectX {
		return vr.TextureTypeDirectX
	}
	return vr.TextureTypeOpenGL
}

// Controller owns one overlay registered with a runtime.
type Controller struct {
	rt      vr.Runtime
	system  vr.System
	overlay vr.Overlay
	handle  vr.OverlayHandle
	format  TextureFormat

	pose     Pose
	tracking Tracking
	// device is the last device target chosen, kept while tracking is
	// absolute so SetDeviceTracking(true, ...) can restore it.
	device Device

	log *slog.Logger
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger used for event debug lines and warnings.
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.log = l
		}
	}
}

// New returns an uninitialized controller with the default pose: 2 m in
// front of the HMD, unrotated, unit scale, not mirrored.
func New(rt vr.Runtime, opts ...Option) *Controller {
	c := &Controller{
		rt:       rt,
		pose:     DefaultPose(),
		tracking: DeviceRelative(HMD),
		device:   HMD,
		log:      slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Open creates a controller and initializes it. On error nothing is left to
// release.
func Open(rt vr.Runtime, appName, appKey string, format TextureFormat, opts ...Option) (*Controller, error) {
	c := New(rt, opts...)
	if err := c.Initialize(appName, appKey, format); err != nil {
		return nil, err
	}
	return c, nil
}

// Initialize connects to the runtime as an overlay application and creates
// the overlay identified by appKey. Any previous overlay is disposed first.
// Failures drop whatever references were taken and return *RuntimeInitError
// or *OverlayCreateError.
func (c *Controller) Initialize(appName, appKey string, format TextureFormat) error {
	c.Dispose()

	system, code := c.rt.Init(vr.ApplicationOverlay)
	if code != vr.InitErrorNone || system == nil {
		c.Dispose()
		if code == vr.InitErrorNone {
			code = vr.InitErrorUnknown
		}
		return &RuntimeInitError{Code: code}
	}
	c.system = system

	c.overlay = c.rt.Overlay()
	if c.overlay == nil {
		c.Dispose()
		return &RuntimeInitError{Code: vr.InitErrorInterfaceNotFound}
	}

	handle, oerr := c.overlay.CreateOverlay(appKey, appName)
	if oerr != vr.OverlayErrorNone || handle == vr.InvalidOverlayHandle {
		c.Dispose()
		if oerr == vr.OverlayErrorNone {
			oerr = vr.OverlayErrorInvalidHandle
		}
		return &OverlayCreateError{Key: appKey, Code: oerr}
	}
	c.handle = handle

	c.format = format
	c.SetTextureBounds(format.Bounds())

	c.log.Debug("overlay created", "key", appKey, "name", appName, "handle", uint64(handle), "format", format.String())
	return nil
}

// Dispose destroys the controller's own overlay and drops its runtime
// references. The runtime connection stays open; whoever created the
// runtime shuts it down. Safe to call more than once and before Initialize.
// Destroy failures are logged, never returned.
func (c *Controller) Dispose() {
	if c.handle != vr.InvalidOverlayHandle && c.overlay != nil {
		if code := c.overlay.DestroyOverlay(c.handle); code != vr.OverlayErrorNone {
			c.log.Warn("overlay: destroy failed", "handle", uint64(c.handle), "code", code.String())
		}
	}

	c.handle = vr.InvalidOverlayHandle
	c.overlay = nil
	c.system = nil
}

// Close implements io.Closer. It always returns nil.
func (c *Controller) Close() error {
	c.Dispose()
	return nil
}

// IsError reports whether the controller lacks a live overlay.
func (c *Controller) IsError() bool {
	return c.handle == vr.InvalidOverlayHandle || c.overlay == nil || c.system == nil
}

// Handle returns the runtime handle, or vr.InvalidOverlayHandle.
func (c *Controller) Handle() vr.OverlayHandle {
	return c.handle
}

// Format returns the texture format chosen at Initialize.
func (c *Controller) Format() TextureFormat {
	return c.format
}

// Pose returns the current pose parameters. Rotation is in radians.
func (c *Controller) Pose() Pose {
	return c.pose
}

// Transform returns the matrix UpdatePosition would submit now.
func (c *Controller) Transform() vr.Matrix34 {
	return c.pose.Matrix()
}
