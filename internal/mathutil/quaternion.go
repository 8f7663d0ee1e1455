package mathutil

import "math"

// Quat represents a quaternion (x, y, z, w).
type Quat [4]float64

// QuatFromYawPitchRoll builds a rotation from Euler angles in radians using
// the Y-up game-engine convention: yaw about Y, pitch about X, roll about Z.
// The resulting rotation applies roll first, then pitch, then yaw, i.e.
// RotY(yaw) × RotX(pitch) × RotZ(roll) on column vectors.
func QuatFromYawPitchRoll(yaw, pitch, roll float64) Quat {
	sr, cr := math.Sin(roll*0.5), math.Cos(roll*0.5)
	sp, cp := math.Sin(pitch*0.5), math.Cos(pitch*0.5)
	sy, cy := math.Sin(yaw*0.5), math.Cos(yaw*0.5)

	return Quat{
		cy*sp*cr + sy*cp*sr, // x
		sy*cp*cr - cy*sp*sr, // y
		cy*cp*sr - sy*sp*cr, // z
		cy*cp*cr + sy*sp*sr, // w
	}
}

// QuatToMat3 converts a quaternion to a 3×3 rotation matrix.
func QuatToMat3(q Quat) Mat3 {
	x, y, z, w := q[0], q[1], q[2], q[3]
	xx, yy, zz := x*x, y*y, z*z
	xy, xz, yz := x*y, x*z, y*z
	wx, wy, wz := w*x, w*y, w*z

	return Mat3{
		1 - 2*(yy+zz), 2 * (xy - wz), 2 * (xz + wy),
		2 * (xy + wz), 1 - 2*(xx+zz), 2 * (yz - wx),
		2 * (xz - wy), 2 * (yz + wx), 1 - 2*(xx+yy),
	}
}
