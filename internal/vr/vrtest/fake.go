// Package vrtest provides a recording fake of the vr runtime boundary.
package vrtest

import "vr-overlay/internal/vr"

// Submission is one transform handed to the runtime.
type Submission struct {
	Handle   vr.OverlayHandle
	Relative bool
	Device   vr.TrackedDeviceIndex
	Origin   vr.TrackingUniverse
	Matrix   vr.Matrix34
}

// Runtime implements vr.Runtime, vr.System and vr.Overlay in one value and
// records every call. Fields ending in Err script the status returned by the
// matching call. It is not safe for concurrent use.
type Runtime struct {
	InitErr     vr.InitError
	CreateErr   vr.OverlayError
	DestroyErr  vr.OverlayError
	FromFileErr vr.OverlayError
	TextureErr  vr.OverlayError

	// NoOverlayInterface makes Overlay return nil after a successful Init.
	NoOverlayInterface bool

	// NextHandle is assigned by the next successful CreateOverlay.
	NextHandle vr.OverlayHandle

	// Roles maps controller roles to device indices. Missing roles resolve
	// to vr.TrackedDeviceIndexInvalid.
	Roles map[vr.ControllerRole]vr.TrackedDeviceIndex

	// Events is the pending event queue, popped front first.
	Events []vr.Event

	Calls       []string
	Keys        []string
	Names       []string
	Bounds      []vr.TextureBounds
	Submissions []Submission
	Destroyed   []vr.OverlayHandle
	Visible     []bool
	Alpha       []float32
	Width       []float32
	MouseScale  []vr.Vector2
	Files       []string
	Textures    []vr.Texture
	Polled      []vr.Event

	Shutdowns   int
	SeatedReset int

	initialized bool
}

// New returns a fake whose first overlay handle is 1 and whose left and
// right controllers sit at device indices 3 and 4.
func New() *Runtime {
	return &Runtime{
		NextHandle: 1,
		Roles: map[vr.ControllerRole]vr.TrackedDeviceIndex{
			vr.ControllerRoleLeftHand:  3,
			vr.ControllerRoleRightHand: 4,
		},
	}
}

// Post appends events to the queue.
func (r *Runtime) Post(types ...vr.EventType) {
	for _, t := range types {
		r.Events = append(r.Events, vr.Event{Type: t})
	}
}

// LastSubmission returns the most recent transform submission.
func (r *Runtime) LastSubmission() (Submission, bool) {
	if len(r.Submissions) == 0 {
		return Submission{}, false
	}
	return r.Submissions[len(r.Submissions)-1], true
}

// Count returns how many times the named call was made.
func (r *Runtime) Count(name string) int {
	n := 0
	for _, c := range r.Calls {
		if c == name {
			n++
		}
	}
	return n
}

func (r *Runtime) record(name string) {
	r.Calls = append(r.Calls, name)
}

// Runtime

func (r *Runtime) Init(appType vr.ApplicationType) (vr.System, vr.InitError) {
	r.record("Init")
	if r.InitErr != vr.InitErrorNone {
		return nil, r.InitErr
	}
	r.initialized = true
	return r, vr.InitErrorNone
}

func (r *Runtime) Overlay() vr.Overlay {
	if !r.initialized || r.NoOverlayInterface {
		return nil
	}
	return r
}

func (r *Runtime) Shutdown() {
	r.record("Shutdown")
	r.initialized = false
	r.Shutdowns++
}

// System

func (r *Runtime) TrackedDeviceIndexForControllerRole(role vr.ControllerRole) vr.TrackedDeviceIndex {
	r.record("TrackedDeviceIndexForControllerRole")
	if idx, ok := r.Roles[role]; ok {
		return idx
	}
	return vr.TrackedDeviceIndexInvalid
}

func (r *Runtime) ResetSeatedZeroPose() {
	r.record("ResetSeatedZeroPose")
	r.SeatedReset++
}

// Overlay

func (r *Runtime) CreateOverlay(key, name string) (vr.OverlayHandle, vr.OverlayError) {
	r.record("CreateOverlay")
	r.Keys = append(r.Keys, key)
	r.Names = append(r.Names, name)
	if r.CreateErr != vr.OverlayErrorNone {
		return vr.InvalidOverlayHandle, r.CreateErr
	}
	h := r.NextHandle
	r.NextHandle++
	return h, vr.OverlayErrorNone
}

func (r *Runtime) DestroyOverlay(h vr.OverlayHandle) vr.OverlayError {
	r.record("DestroyOverlay")
	r.Destroyed = append(r.Destroyed, h)
	return r.DestroyErr
}

func (r *Runtime) ShowOverlay(h vr.OverlayHandle) vr.OverlayError {
	r.record("ShowOverlay")
	r.Visible = append(r.Visible, true)
	return vr.OverlayErrorNone
}

func (r *Runtime) HideOverlay(h vr.OverlayHandle) vr.OverlayError {
	r.record("HideOverlay")
	r.Visible = append(r.Visible, false)
	return vr.OverlayErrorNone
}

func (r *Runtime) SetOverlayTextureBounds(h vr.OverlayHandle, bounds vr.TextureBounds) vr.OverlayError {
	r.record("SetOverlayTextureBounds")
	r.Bounds = append(r.Bounds, bounds)
	return vr.OverlayErrorNone
}

func (r *Runtime) SetOverlayAlpha(h vr.OverlayHandle, alpha float32) vr.OverlayError {
	r.record("SetOverlayAlpha")
	r.Alpha = append(r.Alpha, alpha)
	return vr.OverlayErrorNone
}

func (r *Runtime) SetOverlayWidthInMeters(h vr.OverlayHandle, width float32) vr.OverlayError {
	r.record("SetOverlayWidthInMeters")
	r.Width = append(r.Width, width)
	return vr.OverlayErrorNone
}

func (r *Runtime) SetOverlayMouseScale(h vr.OverlayHandle, scale vr.Vector2) vr.OverlayError {
	r.record("SetOverlayMouseScale")
	r.MouseScale = append(r.MouseScale, scale)
	return vr.OverlayErrorNone
}

func (r *Runtime) SetOverlayFromFile(h vr.OverlayHandle, path string) vr.OverlayError {
	r.record("SetOverlayFromFile")
	r.Files = append(r.Files, path)
	return r.FromFileErr
}

func (r *Runtime) SetOverlayTexture(h vr.OverlayHandle, tex vr.Texture) vr.OverlayError {
	r.record("SetOverlayTexture")
	r.Textures = append(r.Textures, tex)
	return r.TextureErr
}

func (r *Runtime) SetOverlayTransformTrackedDeviceRelative(h vr.OverlayHandle, device vr.TrackedDeviceIndex, m vr.Matrix34) vr.OverlayError {
	r.record("SetOverlayTransformTrackedDeviceRelative")
	r.Submissions = append(r.Submissions, Submission{Handle: h, Relative: true, Device: device, Matrix: m})
	return vr.OverlayErrorNone
}

func (r *Runtime) SetOverlayTransformAbsolute(h vr.OverlayHandle, origin vr.TrackingUniverse, m vr.Matrix34) vr.OverlayError {
	r.record("SetOverlayTransformAbsolute")
	r.Submissions = append(r.Submissions, Submission{Handle: h, Origin: origin, Matrix: m})
	return vr.OverlayErrorNone
}

func (r *Runtime) PollNextOverlayEvent(h vr.OverlayHandle) (vr.Event, bool) {
	r.record("PollNextOverlayEvent")
	if len(r.Events) == 0 {
		return vr.Event{}, false
	}
	ev := r.Events[0]
	r.Events = r.Events[1:]
	r.Polled = append(r.Polled, ev)
	return ev, true
}

var (
	_ vr.Runtime = (*Runtime)(nil)
	_ vr.System  = (*Runtime)(nil)
	_ vr.Overlay = (*Runtime)(nil)
)
