package math

// ------------------------------------------
// Transformation builders
// ------------------------------------------

/**
 * @brief Creates a 2D transformation matrix in the xy plane. In
 * row-vector order the rotation about rotation_center applies first,
 * then the scaling about scaling_center, then the translation.
 *
 * @param scaling_center The center of scaling.
 * @param scale The x and y scaling factors.
 * @param rotation_center The center of rotation.
 * @param angle The angle of rotation in radians, about the z-axis.
 * @param translation The translation offsets.
 * @return The composed transformation matrix.
 */
func NewMat4Transformation2D(scaling_center, scale Vec2, rotation_center Vec2,
	angle float32, translation Vec2) Mat4 {
	rc := NewVec3(rotation_center.X, rotation_center.Y, 0.0)
	r := NewMat4Translation(rc).Inverse().Mul(NewMat4RotationZ(angle))
	r = r.Mul(NewMat4Translation(rc))

	sc := NewVec3(scaling_center.X, scaling_center.Y, 0.0)
	s := NewMat4Translation(sc).Inverse().Mul(NewMat4Scale(NewVec3(scale.X, scale.Y, 0.0)))
	s = s.Mul(NewMat4Translation(sc))

	t := NewMat4Translation(NewVec3(translation.X, translation.Y, 0.0))

	return r.Mul(s).Mul(t)
}

/**
 * @brief Creates a transformation matrix from 3-component centers and
 * translation. The rotation stays about the z-axis only, and the scale
 * matrix takes scale.X and scale.Y with a z scale of zero, so geometry
 * is flattened onto the xy plane; scale.Z is not read.
 *
 * @param scaling_center The center of scaling.
 * @param scale The scaling factors; only x and y are used.
 * @param rotation_center The center of rotation.
 * @param angle The angle of rotation in radians, about the z-axis.
 * @param translation The translation offsets.
 * @return The composed transformation matrix.
 */
func NewMat4Transformation3D(scaling_center, scale Vec3, rotation_center Vec3,
	angle float32, translation Vec3) Mat4 {
	r := NewMat4Translation(rotation_center).Inverse().Mul(NewMat4RotationZ(angle))
	r = r.Mul(NewMat4Translation(rotation_center))

	s := NewMat4Translation(scaling_center).Inverse().Mul(NewMat4Scale(NewVec3(scale.X, scale.Y, 0.0)))
	s = s.Mul(NewMat4Translation(scaling_center))

	t := NewMat4Translation(translation)

	return r.Mul(s).Mul(t)
}
