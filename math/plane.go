package math

// ------------------------------------------
// Plane
// ------------------------------------------

/**
 * @brief Creates and returns a plane with the supplied coefficients. A
 * point p lies on the plane when a*p.X + b*p.Y + c*p.Z + d == 0.
 */
func NewPlane(a, b, c, d float32) Plane {
	return Plane{A: a, B: b, C: c, D: d}
}

/**
 * @brief Creates and returns the plane through point with the given
 * normal. The normal is stored as supplied, without normalization.
 */
func NewPlaneFromPointNormal(point, normal Vec3) Plane {
	return Plane{
		A: normal.X,
		B: normal.Y,
		C: normal.Z,
		D: -normal.Dot(point),
	}
}

/**
 * @brief Creates and returns the plane through the three points. The
 * normal follows the winding of v0, v1, v2.
 */
func NewPlaneFromPoints(v0, v1, v2 Vec3) Plane {
	n := v1.Sub(v0).Cross(v2.Sub(v0))
	return NewPlaneFromPointNormal(v0, n)
}

/**
 * @brief Returns the 4-component dot product of the plane coefficients
 * and v.
 */
func (p Plane) Dot(v Vec4) float32 {
	return NewVec4(p.A, p.B, p.C, p.D).Dot(v)
}

/**
 * @brief Returns the dot product of the plane and the point with an
 * implicit w of 1. For a normalized plane this is the signed distance
 * of the point from the plane.
 */
func (p Plane) DotCoord(v Vec3) float32 {
	return NewVec4(p.A, p.B, p.C, p.D).Dot(NewVec4(v.X, v.Y, v.Z, 1.0))
}

/**
 * @brief Returns the dot product of the plane normal and the vector,
 * with an implicit w of 0.
 */
func (p Plane) DotNormal(v Vec3) float32 {
	return NewVec4(p.A, p.B, p.C, p.D).Dot(NewVec4(v.X, v.Y, v.Z, 0.0))
}

/**
 * @brief Returns a copy of the plane with a unit-length normal. Only
 * the a, b and c coefficients are rescaled; d keeps its value, so
 * distance queries on the result stay comparable with the inputs that
 * produced d.
 */
func (p Plane) Normalize() Plane {
	v := NewVec3(p.A, p.B, p.C).Normalize()
	return Plane{A: v.X, B: v.Y, C: v.Z, D: p.D}
}

/**
 * @brief Multiplies all four coefficients by scalar and returns a copy
 * of the result.
 */
func (p Plane) MulScalar(scalar float32) Plane {
	return Plane{
		A: p.A * scalar,
		B: p.B * scalar,
		C: p.C * scalar,
		D: p.D * scalar,
	}
}

/**
 * @brief Transforms the plane by the matrix. mat must be the inverse
 * transpose of the transformation being applied to the geometry.
 */
func (p Plane) Transform(mat Mat4) Plane {
	v := NewVec4(p.A, p.B, p.C, p.D).Transform(mat)
	return Plane{A: v.X, B: v.Y, C: v.Z, D: v.W}
}

/**
 * @brief Returns the point where the segment from p0 to p1 crosses the
 * plane. The endpoints are ordered by distance from the origin and the
 * crossing test compares the plane's d against that distance window, so
 * the routine is intended for segments cast outward from the origin.
 * When the window test fails the farther endpoint is returned.
 */
func (p Plane) LineIntersect(p0, p1 Vec3) Vec3 {
	v0 := p0
	v1 := p1
	d0 := v0.Length()
	d1 := v1.Length()
	if d1 < d0 {
		d0, d1 = d1, d0
		v0, v1 = p1, p0
	}

	if p.D > d0 && p.D < d1 {
		n := NewVec3(p.A, p.B, p.C)
		seg := v1.Sub(v0)
		dist := n.Dot(v0) + p.D
		l := seg.Length()
		return v0.Add(seg.MulScalar(dist / l))
	}

	if (p.D - d0) <= (p.D - d1) {
		return v0
	}
	return v1
}

/**
 * @brief Compares all coefficients of p and other and ensures the
 * difference is less than tolerance.
 */
func (p Plane) Compare(other Plane, tolerance float32) bool {
	if kabs(p.A-other.A) > tolerance {
		return false
	}
	if kabs(p.B-other.B) > tolerance {
		return false
	}
	if kabs(p.C-other.C) > tolerance {
		return false
	}
	if kabs(p.D-other.D) > tolerance {
		return false
	}
	return true
}
