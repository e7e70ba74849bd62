package math

// ------------------------------------------
// Viewport
// ------------------------------------------

/**
 * @brief Creates and returns a viewport with the given origin, extents
 * and depth range.
 */
func NewViewport(x, y, w, h uint32, min_z, max_z float32) Viewport {
	return Viewport{X: x, Y: y, W: w, H: h, MinZ: min_z, MaxZ: max_z}
}

/**
 * @brief Projects a point from object space into screen space through
 * the world, view and projection matrices and the viewport's off-center
 * orthographic mapping. No perspective divide is applied; callers using
 * a perspective projection divide by the transformed w themselves.
 */
func (vp Viewport) Project(v Vec3, projection, view, world Mat4) Vec3 {
	t := NewMat4OrthographicOffCenterLH(
		float32(vp.X), float32(vp.X+vp.W),
		float32(vp.Y), float32(vp.Y+vp.H),
		vp.MinZ, vp.MaxZ,
	).Mul(projection.Mul(view.Mul(world)))
	return v.TransformCoord(t)
}

/**
 * @brief Maps a point from screen space back toward object space by
 * running the Project pipeline in the opposite order. The matrices are
 * composed as world * view * projection * viewport without inversion,
 * so the result mirrors the composition rather than algebraically
 * inverting Project.
 */
func (vp Viewport) Unproject(v Vec3, projection, view, world Mat4) Vec3 {
	t := world.Mul(view.Mul(projection.Mul(NewMat4OrthographicOffCenterLH(
		float32(vp.X), float32(vp.X+vp.W),
		float32(vp.Y), float32(vp.Y+vp.H),
		vp.MinZ, vp.MaxZ,
	))))
	return v.TransformCoord(t)
}
