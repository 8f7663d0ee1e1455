package overlay

import (
	"vr-overlay/internal/mathutil"
	"vr-overlay/internal/vr"
)

// UpdatePolicy controls whether a pose setter submits the transform.
type UpdatePolicy int

const (
	// UpdateImmediate recomputes and submits before the setter returns.
	UpdateImmediate UpdatePolicy = iota
	// UpdateDeferred only stores the value; call UpdatePosition later.
	UpdateDeferred
)

// Pose holds the overlay placement in a left-handed, Y-up frame.
type Pose struct {
	Position mathutil.Vec3
	// Rotation holds yaw, pitch and roll in radians, in that order.
	Rotation mathutil.Vec3
	Scale    mathutil.Vec3
	MirrorX  bool
	MirrorY  bool
}

// DefaultPose is 2 m along +Z, unrotated, unit scale.
func DefaultPose() Pose {
	return Pose{
		Position: mathutil.Vec3{0, 0, 2},
		Scale:    mathutil.Vec3{1, 1, 1},
	}
}

// Matrix returns the 3×4 submission transform for p.
//
// Scale is applied first, then rotation, then translation. The matrices act
// on column vectors here, so the product reads T × R × S. Position Z is
// negated to move into the runtime's right-handed space, and mirroring flips
// the sign of the X and Y basis columns.
func (p Pose) Matrix() vr.Matrix34 {
	q := mathutil.QuatFromYawPitchRoll(p.Rotation[0], p.Rotation[1], p.Rotation[2])

	t := mathutil.Mat4Translation(p.Position.FlipZ())
	r := mathutil.Mat4Rotation(mathutil.QuatToMat3(q))
	s := mathutil.Mat4Scale(p.Scale)
	m := mathutil.Mat4Mul(mathutil.Mat4Mul(t, r), s)

	mirror := [3]float64{sign(p.MirrorX), sign(p.MirrorY), 1}

	var out vr.Matrix34
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			out[row][col] = float32(mirror[col] * m[row*4+col])
		}
		out[row][3] = float32(m[row*4+3])
	}
	return out
}

func sign(neg bool) float64 {
	if neg {
		return -1
	}
	return 1
}

// SetPosition stores the overlay position in meters.
func (c *Controller) SetPosition(pos mathutil.Vec3, policy UpdatePolicy) {
	c.pose.Position = pos
	c.apply(policy)
}

// SetRotation stores yaw, pitch and roll given in degrees.
func (c *Controller) SetRotation(degrees mathutil.Vec3, policy UpdatePolicy) {
	c.pose.Rotation = mathutil.Vec3Deg2Rad(degrees)
	c.apply(policy)
}

// SetScale stores the per-axis scale.
func (c *Controller) SetScale(scale mathutil.Vec3, policy UpdatePolicy) {
	c.pose.Scale = scale
	c.apply(policy)
}

// SetMirror stores the mirror flags for the X and Y axes.
func (c *Controller) SetMirror(x, y bool, policy UpdatePolicy) {
	c.pose.MirrorX = x
	c.pose.MirrorY = y
	c.apply(policy)
}

func (c *Controller) apply(policy UpdatePolicy) {
	if policy == UpdateImmediate {
		c.UpdatePosition()
	}
}

// UpdatePosition recomputes the transform and submits it relative to the
// tracking target. It resubmits even when nothing changed.
//
// Controller targets are resolved through the runtime on every call since
// their device index can change between sessions. If the target does not
// resolve to a valid device, nothing is submitted.
func (c *Controller) UpdatePosition() {
	if c.overlay == nil {
		return
	}
	m := c.pose.Matrix()

	if universe, ok := c.tracking.Universe(); ok {
		c.overlay.SetOverlayTransformAbsolute(c.handle, universe, m)
		return
	}

	device, ok := c.tracking.Device()
	if !ok {
		return
	}
	idx := c.resolveDevice(device)
	if !idx.Valid() {
		c.log.Warn("overlay: tracking device unavailable, transform not submitted", "device", device.String())
		return
	}
	c.overlay.SetOverlayTransformTrackedDeviceRelative(c.handle, idx, m)
}

func (c *Controller) resolveDevice(d Device) vr.TrackedDeviceIndex {
	switch d.kind {
	case deviceLeftController, deviceRightController:
		if c.system == nil {
			return vr.TrackedDeviceIndexInvalid
		}
		role := vr.ControllerRoleLeftHand
		if d.kind == deviceRightController {
			role = vr.ControllerRoleRightHand
		}
		return c.system.TrackedDeviceIndexForControllerRole(role)
	case deviceExplicit:
		return d.index
	}
	return vr.TrackedDeviceIndexHMD
}
