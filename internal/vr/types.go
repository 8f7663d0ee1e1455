package vr

import "fmt"

// OverlayHandle identifies an overlay registered with the runtime.
type OverlayHandle uint64

// InvalidOverlayHandle is never assigned by the runtime.
const InvalidOverlayHandle OverlayHandle = 0

// TrackedDeviceIndex addresses one tracked device slot.
type TrackedDeviceIndex uint32

const (
	TrackedDeviceIndexHMD     TrackedDeviceIndex = 0
	TrackedDeviceIndexInvalid TrackedDeviceIndex = 0xFFFFFFFF
	MaxTrackedDeviceCount                        = 64
)

// Valid reports whether i addresses a device slot.
func (i TrackedDeviceIndex) Valid() bool {
	return i < MaxTrackedDeviceCount
}

// ControllerRole names a hand for controller lookups.
type ControllerRole int

const (
	ControllerRoleInvalid ControllerRole = iota
	ControllerRoleLeftHand
	ControllerRoleRightHand
)

func (r ControllerRole) String() string {
	switch r {
	case ControllerRoleLeftHand:
		return "LeftHand"
	case ControllerRoleRightHand:
		return "RightHand"
	}
	return "Invalid"
}

// TrackingUniverse is the reference space for absolute overlay transforms.
type TrackingUniverse int

const (
	TrackingUniverseSeated TrackingUniverse = iota
	TrackingUniverseStanding
)

func (u TrackingUniverse) String() string {
	switch u {
	case TrackingUniverseSeated:
		return "Seated"
	case TrackingUniverseStanding:
		return "Standing"
	}
	return fmt.Sprintf("TrackingUniverse(%d)", int(u))
}

// Matrix34 is a row-major 3×4 affine transform: three rows of
// (basis x, basis y, basis z, translation) in the runtime's right-handed,
// Y-up tracking space.
type Matrix34 [3][4]float32

// Translation returns the fourth column.
func (m Matrix34) Translation() [3]float32 {
	return [3]float32{m[0][3], m[1][3], m[2][3]}
}

// TextureBounds selects the sub-rectangle of the texture shown on the overlay.
// Swapping min and max on an axis flips the texture along it.
type TextureBounds struct {
	UMin, VMin, UMax, VMax float32
}

// Vector2 is a 2D float vector.
type Vector2 struct {
	X, Y float32
}

// TextureType identifies the graphics API that owns a native texture handle.
type TextureType int

const (
	TextureTypeOpenGL TextureType = iota
	TextureTypeDirectX
)

func (t TextureType) String() string {
	switch t {
	case TextureTypeOpenGL:
		return "OpenGL"
	case TextureTypeDirectX:
		return "DirectX"
	}
	return fmt.Sprintf("TextureType(%d)", int(t))
}

// ColorSpace of a submitted texture.
type ColorSpace int

const (
	ColorSpaceAuto ColorSpace = iota
	ColorSpaceGamma
	ColorSpaceLinear
)

// Texture references a GPU texture owned by the caller.
type Texture struct {
	Handle     uintptr
	Type       TextureType
	ColorSpace ColorSpace
}
