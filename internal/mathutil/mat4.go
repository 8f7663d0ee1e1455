package mathutil

// Mat4 is a 4×4 matrix stored row-major, acting on column vectors (M × v).
// Used for the overlay pose transform.
type Mat4 [16]float64

// Mat4Mul returns a × b.
func Mat4Mul(a, b Mat4) Mat4 {
	var m Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			m[r*4+c] = a[r*4+0]*b[0*4+c] + a[r*4+1]*b[1*4+c] +
				a[r*4+2]*b[2*4+c] + a[r*4+3]*b[3*4+c]
		}
	}
	return m
}

// FromMat3Translation builds a 4×4 affine matrix from a 3×3 rotation and translation.
func FromMat3Translation(r Mat3, t Vec3) Mat4 {
	return Mat4{
		r[0], r[1], r[2], t[0],
		r[3], r[4], r[5], t[1],
		r[6], r[7], r[8], t[2],
		0, 0, 0, 1,
	}
}

// Mat4Translation returns a pure translation by t.
func Mat4Translation(t Vec3) Mat4 {
	return FromMat3Translation(Mat3Identity(), t)
}

// Mat4Rotation returns the affine form of a 3×3 rotation.
func Mat4Rotation(r Mat3) Mat4 {
	return FromMat3Translation(r, Vec3{})
}

// Mat4Scale returns a per-axis scale matrix.
func Mat4Scale(s Vec3) Mat4 {
	return FromMat3Translation(Mat3Diag(s[0], s[1], s[2]), Vec3{})
}
