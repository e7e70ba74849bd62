package math

// ------------------------------------------
// Matrix 4
// ------------------------------------------

/**
 * @brief Creates and returns a new 4x4 matrix from the supplied elements
 * in row-major order. Element names follow the m<row><col> convention.
 */
func NewMat4(
	m11, m12, m13, m14,
	m21, m22, m23, m24,
	m31, m32, m33, m34,
	m41, m42, m43, m44 float32) Mat4 {
	return Mat4{Data: [16]float32{
		m11, m12, m13, m14,
		m21, m22, m23, m24,
		m31, m32, m33, m34,
		m41, m42, m43, m44,
	}}
}

/**
 * @brief Creates and returns an identity matrix:
 *
 * {
 *   {1, 0, 0, 0},
 *   {0, 1, 0, 0},
 *   {0, 0, 1, 0},
 *   {0, 0, 0, 1}
 * }
 *
 * @return A new identity matrix.
 */
func NewMat4Identity() Mat4 {
	out_matrix := Mat4{}
	out_matrix.Data[0] = 1.0
	out_matrix.Data[5] = 1.0
	out_matrix.Data[10] = 1.0
	out_matrix.Data[15] = 1.0
	return out_matrix
}

/**
 * @brief Returns the result of multiplying mt and other.
 *
 * @param other The second matrix to be multiplied.
 * @return The result of the matrix multiplication.
 */
func (mt Mat4) Mul(other Mat4) Mat4 {
	out_matrix := NewMat4Identity()
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			var sum float32
			for i := 0; i < 4; i++ {
				sum += mt.Data[row*4+i] * other.Data[i*4+col]
			}
			out_matrix.Data[row*4+col] = sum
		}
	}
	return out_matrix
}

/**
 * @brief Returns a transposed copy of the matrix (rows->columns).
 */
func (mt Mat4) Transpose() Mat4 {
	out_matrix := Mat4{}
	out_matrix.Data[0] = mt.Data[0]
	out_matrix.Data[1] = mt.Data[4]
	out_matrix.Data[2] = mt.Data[8]
	out_matrix.Data[3] = mt.Data[12]
	out_matrix.Data[4] = mt.Data[1]
	out_matrix.Data[5] = mt.Data[5]
	out_matrix.Data[6] = mt.Data[9]
	out_matrix.Data[7] = mt.Data[13]
	out_matrix.Data[8] = mt.Data[2]
	out_matrix.Data[9] = mt.Data[6]
	out_matrix.Data[10] = mt.Data[10]
	out_matrix.Data[11] = mt.Data[14]
	out_matrix.Data[12] = mt.Data[3]
	out_matrix.Data[13] = mt.Data[7]
	out_matrix.Data[14] = mt.Data[11]
	out_matrix.Data[15] = mt.Data[15]
	return out_matrix
}

/**
 * @brief Returns the determinant of the matrix. The eight-term expansion
 * used here is exact for matrices composed of scales and translations;
 * for rotations and shears it deviates from the full cofactor
 * determinant, and Inverse inherits the same limits.
 */
func (mt Mat4) Determinant() float32 {
	n := mt.Data
	return n[0]*n[5]*n[10]*n[15] +
		n[4]*n[9]*n[14]*n[3] +
		n[8]*n[13]*n[2]*n[7] +
		n[12]*n[1]*n[6]*n[11] -
		n[12]*n[9]*n[6]*n[3] +
		n[8]*n[5]*n[2]*n[15] +
		n[4]*n[1]*n[14]*n[11] +
		n[0]*n[13]*n[10]*n[7]
}

/**
 * @brief Returns the inverse of the matrix. A singular matrix (a
 * Determinant of zero) returns the identity matrix instead of
 * signalling an error, so chained transforms degrade rather than fail.
 */
func (mt Mat4) Inverse() Mat4 {
	n := mt.Data
	var a [16]float32

	a[0] = n[5]*n[10]*n[15] + n[9]*n[14]*n[7] + n[13]*n[6]*n[11] -
		n[13]*n[10]*n[7] - n[9]*n[6]*n[15] - n[5]*n[14]*n[11]

	a[4] = -(n[4]*n[10]*n[15] + n[8]*n[14]*n[7] + n[12]*n[6]*n[11] -
		n[12]*n[10]*n[7] - n[8]*n[6]*n[15] - n[4]*n[14]*n[11])

	a[8] = n[4]*n[9]*n[15] + n[8]*n[13]*n[7] + n[12]*n[5]*n[11] -
		n[12]*n[9]*n[7] - n[8]*n[5]*n[15] - n[4]*n[13]*n[11]

	a[12] = -(n[4]*n[9]*n[14] + n[8]*n[13]*n[6] + n[12]*n[5]*n[10] -
		n[12]*n[9]*n[6] - n[8]*n[5]*n[14] - n[4]*n[13]*n[10])

	a[1] = -(n[1]*n[10]*n[15] + n[9]*n[14]*n[3] + n[13]*n[2]*n[11] -
		n[13]*n[10]*n[3] - n[9]*n[2]*n[15] - n[1]*n[14]*n[11])

	a[5] = n[0]*n[10]*n[15] + n[8]*n[14]*n[3] + n[12]*n[2]*n[11] -
		n[12]*n[10]*n[3] - n[8]*n[2]*n[15] - n[0]*n[14]*n[11]

	a[9] = -(n[0]*n[9]*n[15] + n[8]*n[13]*n[3] + n[12]*n[1]*n[11] -
		n[12]*n[9]*n[3] - n[8]*n[1]*n[15] - n[0]*n[13]*n[11])

	a[13] = n[0]*n[9]*n[14] + n[8]*n[13]*n[2] + n[12]*n[1]*n[10] -
		n[12]*n[9]*n[2] - n[8]*n[1]*n[14] - n[0]*n[13]*n[10]

	a[2] = n[1]*n[6]*n[15] + n[5]*n[14]*n[3] + n[13]*n[2]*n[7] -
		n[13]*n[6]*n[3] - n[5]*n[2]*n[15] - n[1]*n[14]*n[7]

	a[6] = -(n[0]*n[6]*n[15] + n[4]*n[14]*n[3] + n[12]*n[2]*n[7] -
		n[12]*n[6]*n[3] - n[4]*n[2]*n[15] - n[0]*n[14]*n[7])

	a[10] = n[0]*n[5]*n[15] + n[4]*n[13]*n[3] + n[12]*n[1]*n[7] -
		n[12]*n[5]*n[3] - n[4]*n[1]*n[15] - n[0]*n[13]*n[7]

	a[14] = -(n[0]*n[5]*n[14] + n[4]*n[13]*n[2] + n[12]*n[1]*n[6] -
		n[12]*n[5]*n[2] - n[4]*n[1]*n[14] - n[0]*n[13]*n[6])

	a[3] = -(n[1]*n[6]*n[14] + n[5]*n[10]*n[3] + n[9]*n[2]*n[7] -
		n[9]*n[6]*n[3] - n[5]*n[2]*n[11] - n[1]*n[10]*n[7])

	a[7] = n[0]*n[6]*n[11] + n[4]*n[10]*n[3] + n[8]*n[2]*n[7] -
		n[8]*n[6]*n[3] - n[4]*n[2]*n[11] - n[0]*n[10]*n[7]

	a[11] = -(n[0]*n[5]*n[11] + n[4]*n[9]*n[3] + n[8]*n[1]*n[7] -
		n[8]*n[5]*n[3] - n[4]*n[1]*n[11] - n[0]*n[9]*n[7])

	a[15] = n[0]*n[5]*n[10] + n[4]*n[9]*n[2] + n[8]*n[1]*n[6] -
		n[8]*n[5]*n[2] - n[4]*n[1]*n[10] - n[0]*n[9]*n[6]

	d := mt.Determinant()
	if d == 0.0 {
		return NewMat4Identity()
	}
	d = 1.0 / d

	out_matrix := Mat4{}
	for i := 0; i < 16; i++ {
		out_matrix.Data[i] = a[i] * d
	}
	return out_matrix
}

/**
 * @brief Compares all elements of mt and other and ensures the difference
 * is less than tolerance.
 *
 * @param other The other matrix.
 * @param tolerance The difference tolerance. Typically K_EPSILON or similar.
 * @return True if within tolerance, otherwise false.
 */
func (mt Mat4) Compare(other Mat4, tolerance float32) bool {
	for i := 0; i < 16; i++ {
		if kabs(mt.Data[i]-other.Data[i]) > tolerance {
			return false
		}
	}
	return true
}

// ------------------------------------------
// Matrix 4 builders
// ------------------------------------------

/**
 * @brief Creates and returns a translation matrix from the given position.
 *
 * @param position The position to be used to create the matrix.
 * @return A new translation matrix.
 */
func NewMat4Translation(position Vec3) Mat4 {
	out_matrix := NewMat4Identity()
	out_matrix.Data[12] = position.X
	out_matrix.Data[13] = position.Y
	out_matrix.Data[14] = position.Z
	return out_matrix
}

/**
 * @brief Returns a scale matrix using the provided scale.
 *
 * @param scale The 3-component scale.
 * @return A new scale matrix.
 */
func NewMat4Scale(scale Vec3) Mat4 {
	out_matrix := NewMat4Identity()
	out_matrix.Data[0] = scale.X
	out_matrix.Data[5] = scale.Y
	out_matrix.Data[10] = scale.Z
	return out_matrix
}

/**
 * @brief Creates a rotation matrix around the x-axis from the provided
 * angle in radians.
 */
func NewMat4RotationX(angle float32) Mat4 {
	out_matrix := NewMat4Identity()
	out_matrix.Data[5] = kcos(angle)
	out_matrix.Data[6] = ksin(angle)
	out_matrix.Data[9] = -out_matrix.Data[6]
	out_matrix.Data[10] = out_matrix.Data[5]
	return out_matrix
}

/**
 * @brief Creates a rotation matrix around the y-axis from the provided
 * angle in radians.
 */
func NewMat4RotationY(angle float32) Mat4 {
	out_matrix := NewMat4Identity()
	out_matrix.Data[0] = kcos(angle)
	out_matrix.Data[2] = -ksin(angle)
	out_matrix.Data[8] = -out_matrix.Data[2]
	out_matrix.Data[10] = out_matrix.Data[0]
	return out_matrix
}

/**
 * @brief Creates a rotation matrix around the z-axis from the provided
 * angle in radians.
 */
func NewMat4RotationZ(angle float32) Mat4 {
	out_matrix := NewMat4Identity()
	out_matrix.Data[0] = kcos(angle)
	out_matrix.Data[1] = ksin(angle)
	out_matrix.Data[4] = -out_matrix.Data[1]
	out_matrix.Data[5] = out_matrix.Data[0]
	return out_matrix
}

/**
 * @brief Creates a rotation matrix around the arbitrary axis v by angle
 * radians. The axis is used as supplied; pass a unit axis for a pure
 * rotation.
 */
func NewMat4RotationAxis(v Vec3, angle float32) Mat4 {
	ct := ksin(K_HALF_PI - angle)
	st := ksin(angle)
	om := 1.0 - ct

	return NewMat4(
		v.X*v.X*om+ct, v.X*v.Y*om+v.Z*st, v.X*v.Z*om-v.Y*st, 0.0,
		v.X*v.Y*om-v.Z*st, v.Y*v.Y*om+ct, v.Y*v.Z*om+v.X*st, 0.0,
		v.X*v.Z*om+v.Y*st, v.Y*v.Z*om-v.X*st, v.Z*v.Z*om+ct, 0.0,
		0.0, 0.0, 0.0, 1.0,
	)
}

/**
 * @brief Creates a rotation matrix from the given yaw (y-axis), pitch
 * (x-axis) and roll (z-axis) angles. In row-vector order roll applies
 * first, then pitch, then yaw.
 */
func NewMat4RotationYawPitchRoll(yaw, pitch, roll float32) Mat4 {
	return NewMat4RotationZ(roll).Mul(NewMat4RotationX(pitch).Mul(NewMat4RotationY(yaw)))
}

/**
 * @brief Creates and returns a left-handed view matrix looking at target
 * from the position of eye.
 *
 * @param eye The position of the camera.
 * @param at The position to look at.
 * @param up The up vector of the camera, usually NewVec3Up.
 * @return A matrix looking at at from the perspective of eye.
 */
func NewMat4LookAtLH(eye, at, up Vec3) Mat4 {
	za := at.Sub(eye).Normalize()
	xa := up.Cross(za).Normalize()
	ya := za.Cross(xa)

	return NewMat4(
		xa.X, ya.X, za.X, 0.0,
		xa.Y, ya.Y, za.Y, 0.0,
		xa.Z, ya.Z, za.Z, 0.0,
		-xa.Dot(eye), -ya.Dot(eye), -za.Dot(eye), 1.0,
	)
}

/**
 * @brief Creates and returns a right-handed view matrix looking at target
 * from the position of eye.
 */
func NewMat4LookAtRH(eye, at, up Vec3) Mat4 {
	za := eye.Sub(at).Normalize()
	xa := up.Cross(za).Normalize()
	ya := za.Cross(xa)

	return NewMat4(
		xa.X, ya.X, za.X, 0.0,
		xa.Y, ya.Y, za.Y, 0.0,
		xa.Z, ya.Z, za.Z, 0.0,
		-xa.Dot(eye), -ya.Dot(eye), -za.Dot(eye), 1.0,
	)
}

/**
 * @brief Creates and returns a left-handed orthographic projection matrix
 * for a view volume of the given width, height and depth range.
 */
func NewMat4OrthographicLH(w, h, zn, zf float32) Mat4 {
	return NewMat4(
		2.0/w, 0.0, 0.0, 0.0,
		0.0, 2.0/h, 0.0, 0.0,
		0.0, 0.0, 1.0/(zf-zn), 0.0,
		0.0, 0.0, zn/(zn-zf), 1.0,
	)
}

/**
 * @brief Creates and returns a right-handed orthographic projection matrix
 * for a view volume of the given width, height and depth range.
 */
func NewMat4OrthographicRH(w, h, zn, zf float32) Mat4 {
	return NewMat4(
		2.0/w, 0.0, 0.0, 0.0,
		0.0, 2.0/h, 0.0, 0.0,
		0.0, 0.0, 1.0/(zn-zf), 0.0,
		0.0, 0.0, zn/(zf-zn), 1.0,
	)
}

/**
 * @brief Creates and returns a left-handed orthographic projection matrix
 * for an off-center view volume bounded by l, r, t, b and the depth
 * range zn to zf.
 */
func NewMat4OrthographicOffCenterLH(l, r, t, b, zn, zf float32) Mat4 {
	return NewMat4(
		2.0/(r-l), 0.0, 0.0, 0.0,
		0.0, 2.0/(t-b), 0.0, 0.0,
		0.0, 0.0, 1.0/(zf-zn), 0.0,
		(l+r)/(l-r), (t+b)/(b-t), zn/(zn-zf), 1.0,
	)
}

/**
 * @brief Creates and returns a right-handed orthographic projection matrix
 * for an off-center view volume bounded by l, r, t, b and the depth
 * range zn to zf.
 */
func NewMat4OrthographicOffCenterRH(l, r, t, b, zn, zf float32) Mat4 {
	return NewMat4(
		2.0/(r-l), 0.0, 0.0, 0.0,
		0.0, 2.0/(t-b), 0.0, 0.0,
		0.0, 0.0, 1.0/(zn-zf), 0.0,
		(l+r)/(l-r), (t+b)/(b-t), zn/(zf-zn), 1.0,
	)
}

/**
 * @brief Creates and returns a left-handed perspective projection matrix
 * for a view volume of the given width and height. The x and y scales
 * are 2/w and 2/h, so the extents are interpreted at unit distance
 * rather than at the near plane.
 */
func NewMat4PerspectiveLH(w, h, zn, zf float32) Mat4 {
	return NewMat4(
		2.0/w, 0.0, 0.0, 0.0,
		0.0, 2.0/h, 0.0, 0.0,
		0.0, 0.0, zf/(zf-zn), 1.0,
		0.0, 0.0, (-zn*zf)/(zf-zn), 0.0,
	)
}

/**
 * @brief Creates and returns a right-handed perspective projection matrix
 * for a view volume of the given width and height. The x and y scales
 * are 2/w and 2/h, as in NewMat4PerspectiveLH.
 */
func NewMat4PerspectiveRH(w, h, zn, zf float32) Mat4 {
	return NewMat4(
		2.0/w, 0.0, 0.0, 0.0,
		0.0, 2.0/h, 0.0, 0.0,
		0.0, 0.0, zf/(zn-zf), 1.0,
		0.0, 0.0, (-zn*zf)/(zn-zf), 0.0,
	)
}

/**
 * @brief Creates and returns a left-handed perspective projection matrix
 * from a vertical field of view in radians and an aspect ratio of width
 * over height.
 */
func NewMat4PerspectiveFovLH(fovy, aspect, zn, zf float32) Mat4 {
	y_scale := ktan(K_HALF_PI - fovy/2.0)
	x_scale := y_scale / aspect

	return NewMat4(
		x_scale, 0.0, 0.0, 0.0,
		0.0, y_scale, 0.0, 0.0,
		0.0, 0.0, zf/(zf-zn), 1.0,
		0.0, 0.0, (-zn*zf)/(zf-zn), 0.0,
	)
}

/**
 * @brief Creates and returns a right-handed perspective projection matrix
 * from a vertical field of view in radians and an aspect ratio of width
 * over height.
 */
func NewMat4PerspectiveFovRH(fovy, aspect, zn, zf float32) Mat4 {
	y_scale := ktan(K_HALF_PI - fovy/2.0)
	x_scale := y_scale / aspect

	return NewMat4(
		x_scale, 0.0, 0.0, 0.0,
		0.0, y_scale, 0.0, 0.0,
		0.0, 0.0, zf/(zn-zf), 1.0,
		0.0, 0.0, (-zn*zf)/(zn-zf), 0.0,
	)
}

/**
 * @brief Creates and returns a left-handed perspective projection matrix
 * for an off-center view volume. Unlike the width and height form, the
 * x and y scales here are taken at the near plane.
 */
func NewMat4PerspectiveOffCenterLH(l, r, t, b, zn, zf float32) Mat4 {
	return NewMat4(
		(2.0*zn)/(r-l), 0.0, 0.0, 0.0,
		0.0, (2.0*zn)/(b-t), 0.0, 0.0,
		(l+r)/(r-l), (t+b)/(b-t), zf/(zf-zn), 1.0,
		0.0, 0.0, (-zn*zf)/(zf-zn), 0.0,
	)
}

/**
 * @brief Creates and returns a right-handed perspective projection matrix
 * for an off-center view volume.
 */
func NewMat4PerspectiveOffCenterRH(l, r, t, b, zn, zf float32) Mat4 {
	return NewMat4(
		(2.0*zn)/(r-l), 0.0, 0.0, 0.0,
		0.0, (2.0*zn)/(b-t), 0.0, 0.0,
		(l+r)/(r-l), (t+b)/(b-t), zf/(zn-zf), 1.0,
		0.0, 0.0, (-zn*zf)/(zn-zf), 0.0,
	)
}

/**
 * @brief Creates and returns a matrix that reflects the coordinate system
 * about the given plane. The plane is normalized before use.
 */
func NewMat4Reflect(plane Plane) Mat4 {
	p := plane.Normalize()

	ta := -2.0 * p.A
	tb := -2.0 * p.B
	tc := -2.0 * p.C

	return NewMat4(
		ta*p.A+1.0, tb*p.A, tc*p.A, 0.0,
		ta*p.B, tb*p.B+1.0, tc*p.B, 0.0,
		ta*p.C, tb*p.C, tc*p.C+1.0, 0.0,
		ta*p.D, tb*p.D, tc*p.D, 1.0,
	)
}
