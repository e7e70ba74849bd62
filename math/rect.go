package math

// ------------------------------------------
// Rectangle
// ------------------------------------------

/**
 * @brief Constructs a rectangle from a position and extents, for use
 * with the XY operation family.
 */
func NewRectXY(x, y, w, h int32) Rect {
	return Rect{N: [4]int32{x, y, w, h}}
}

/**
 * @brief Constructs a rectangle from explicit edges, for use with the
 * LT operation family.
 */
func NewRectLT(l, t, r, b int32) Rect {
	return Rect{N: [4]int32{l, t, r, b}}
}

/**
 * @brief Tests whether the two rectangles intersect. Overlap is strict:
 * rectangles whose edges merely touch do not intersect.
 */
func (r Rect) IntersectsXY(other Rect) bool {
	ra := r.N[0] + r.N[2]
	rb := other.N[0] + other.N[2]
	ba := r.N[1] + r.N[3]
	bb := other.N[1] + other.N[3]

	min_r := Min(ra, rb)
	min_b := Min(ba, bb)
	max_x := Max(r.N[0], other.N[0])
	max_y := Max(r.N[1], other.N[1])

	return min_r > max_x && min_b > max_y
}

/**
 * @brief Tests whether the two rectangles intersect. Overlap is strict:
 * rectangles whose edges merely touch do not intersect.
 */
func (r Rect) IntersectsLT(other Rect) bool {
	min_r := Min(r.N[2], other.N[2])
	min_b := Min(r.N[3], other.N[3])
	max_x := Max(r.N[0], other.N[0])
	max_y := Max(r.N[1], other.N[1])

	return min_r > max_x && min_b > max_y
}

/**
 * @brief Returns true if the point lies inside the rectangle. The lower
 * bound is inclusive and the upper bound exclusive: [x, x+w) and
 * [y, y+h).
 */
func (r Rect) ContainsXY(x, y int32) bool {
	return (r.N[0] <= x && x < r.N[0]+r.N[2]) &&
		(r.N[1] <= y && y < r.N[1]+r.N[3])
}

/**
 * @brief Returns true if the point lies inside the rectangle. The lower
 * bound is inclusive and the upper bound exclusive: [l, r) and [t, b).
 */
func (r Rect) ContainsLT(x, y int32) bool {
	return (r.N[0] <= x && x < r.N[2]) && (r.N[1] <= y && y < r.N[3])
}

/**
 * @brief Returns true if the point is outside the rectangle. Both
 * bounds are inclusive here, unlike ContainsXY; a point exactly on the
 * far edge is neither contained nor outside.
 */
func (r Rect) OutsideXY(x, y int32) bool {
	return x < r.N[0] || x > r.N[0]+r.N[2] ||
		y < r.N[1] || y > r.N[1]+r.N[3]
}

/**
 * @brief Returns true if the point is outside the rectangle. Both
 * bounds are inclusive, mirroring OutsideXY.
 */
func (r Rect) OutsideLT(x, y int32) bool {
	return x < r.N[0] || x > r.N[2] || y < r.N[1] || y > r.N[3]
}

/**
 * @brief Returns a copy of the rectangle grown by half of h and v on
 * each side. The receiver is unchanged.
 */
func (r Rect) InflateXY(h, v int32) Rect {
	out := r
	out.N[0] -= h >> 1
	out.N[1] -= v >> 1
	out.N[2] += h >> 1
	out.N[3] += v >> 1
	return out
}

/**
 * @brief Returns a copy of the rectangle with every edge pushed outward
 * by half of h and v. The receiver is unchanged.
 */
func (r Rect) InflateLT(h, v int32) Rect {
	out := r
	out.N[0] -= h >> 1
	out.N[1] -= v >> 1
	out.N[2] += h >> 1
	out.N[3] += v >> 1
	return out
}

/**
 * @brief Returns a copy of the rectangle moved by the given offsets.
 * The extents are relative in this family, so only the position moves.
 * The receiver is unchanged.
 */
func (r Rect) OffsetXY(x, y int32) Rect {
	out := r
	out.N[0] += x
	out.N[1] += y
	return out
}

/**
 * @brief Returns a copy of the rectangle moved by the given offsets.
 * All four edges move. The receiver is unchanged.
 */
func (r Rect) OffsetLT(x, y int32) Rect {
	out := r
	out.N[0] += x
	out.N[1] += y
	out.N[2] += x
	out.N[3] += y
	return out
}
