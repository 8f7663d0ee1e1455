package mathutil

// Vec3 is a 3-component vector (value type, stack-allocated).
// Components are x, y, z in a left-handed, Y-up frame unless stated otherwise.
type Vec3 [3]float64

// FlipZ returns v with the Z component negated. This converts between the
// left-handed pose frame and the compositor's right-handed tracking space.
func (v Vec3) FlipZ() Vec3 {
	return Vec3{v[0], v[1], -v[2]}
}
