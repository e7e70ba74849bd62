// Package math provides Direct3D-style math value types for building a
// rendering transform stack: colors, rectangles, 2D/3D/4D vectors,
// planes, row-major 4x4 matrices and viewports. All types are small
// copyable values and every operation is a pure function over them.
package math

// Byte4 represents four packed 8-bit channels, as produced by the color
// packing operations. The first byte is always alpha.
type Byte4 struct {
	N0, N1, N2, N3 uint8
}

// Color represents a 4-component floating point color. Channel values
// are not constrained at construction; consuming operations clamp where
// the legacy behavior does.
type Color struct {
	R, G, B, A float32
}

/**
 * @brief An integer rectangle over four values with two read
 * conventions: the XY operation family reads N as (x, y, w, h), the LT
 * family reads the same storage as (left, top, right, bottom). A value
 * is built and consumed under a single convention; mixing families on
 * one value is undefined by convention.
 */
type Rect struct {
	N [4]int32
}

// Vec2 represents a 2D vector
type Vec2 struct {
	X, Y float32
}

// Vec3 represents a 3D vector
type Vec3 struct {
	X, Y, Z float32
}

// Vec4 represents a 4D vector
type Vec4 struct {
	X, Y, Z, W float32
}

/** @brief A plane in implicit form: ax + by + cz + d = 0. */
type Plane struct {
	A, B, C, D float32
}

/** @brief A 4x4 row-major matrix using the row-vector convention (v' = v * M). */
type Mat4 struct {
	/** @brief The matrix elements */
	Data [16]float32
}

/**
 * @brief A screen-space rectangle with a depth range, used to project
 * points between object space and screen space.
 */
type Viewport struct {
	X, Y, W, H uint32
	MinZ, MaxZ float32
}
