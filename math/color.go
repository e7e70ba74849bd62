package math

// ------------------------------------------
// Color
// ------------------------------------------

/**
 * @brief Creates and returns a new color using the supplied values.
 *
 * @param r The red channel.
 * @param g The green channel.
 * @param b The blue channel.
 * @param a The alpha channel.
 * @return A new color.
 */
func NewColor(r, g, b, a float32) Color {
	return Color{R: r, G: g, B: b, A: a}
}

/**
 * @brief Creates and returns an opaque black color, the default value.
 */
func NewColorBlack() Color {
	return Color{0.0, 0.0, 0.0, 1.0}
}

/**
 * @brief Creates and returns an opaque white color.
 */
func NewColorWhite() Color {
	return Color{1.0, 1.0, 1.0, 1.0}
}

/**
 * Adds other to c and returns a copy of the result. Every channel is
 * clamped to at most 1.0; no lower clamp is applied.
 */
func (c Color) Add(other Color) Color {
	return Color{
		R: Min(c.R+other.R, 1.0),
		G: Min(c.G+other.G, 1.0),
		B: Min(c.B+other.B, 1.0),
		A: Min(c.A+other.A, 1.0),
	}
}

/**
 * Subtracts other from c and returns a copy of the result. Every channel
 * is clamped to at least 0.0; no upper clamp is applied.
 */
func (c Color) Sub(other Color) Color {
	return Color{
		R: Max(c.R-other.R, 0.0),
		G: Max(c.G-other.G, 0.0),
		B: Max(c.B-other.B, 0.0),
		A: Max(c.A-other.A, 0.0),
	}
}

/**
 * Scales every channel of c by s and returns a copy of the result,
 * unclamped.
 */
func (c Color) MulScalar(s float32) Color {
	return Color{c.R * s, c.G * s, c.B * s, c.A * s}
}

/**
 * @brief Modulates c with other by multiplying channel-wise, blending
 * the two colors.
 */
func (c Color) Mul(other Color) Color {
	return Color{
		R: c.R * other.R,
		G: c.G * other.G,
		B: c.B * other.B,
		A: c.A * other.A,
	}
}

/**
 * @brief Creates the negative color value: 1 - c per channel, alpha
 * included.
 */
func (c Color) Negate() Color {
	return Color{
		R: 1.0 - c.R,
		G: 1.0 - c.G,
		B: 1.0 - c.B,
		A: 1.0 - c.A,
	}
}

/**
 * @brief Uses linear interpolation to create a color value between c
 * and other. The interpolant is not clamped, so values of s outside
 * [0, 1] extrapolate.
 */
func (c Color) Lerp(other Color, s float32) Color {
	return Color{
		R: c.R + s*(other.R-c.R),
		G: c.G + s*(other.G-c.G),
		B: c.B + s*(other.B-c.B),
		A: c.A + s*(other.A-c.A),
	}
}

/**
 * @brief Adjusts the contrast value of a color. The r, g and b channels
 * are pulled toward or pushed away from the 0.5 midpoint; alpha passes
 * through.
 */
func (c Color) AdjustContrast(contrast float32) Color {
	return Color{
		R: 0.5 + contrast*(c.R-0.5),
		G: 0.5 + contrast*(c.G-0.5),
		B: 0.5 + contrast*(c.B-0.5),
		A: c.A,
	}
}

/**
 * @brief Adjusts the saturation value of a color. Alpha passes through.
 */
func (c Color) AdjustSaturation(saturation float32) Color {
	// Approximate values for each component's contribution to luminance.
	// Based upon the NTSC standard described in ITU-R Recommendation BT.709.
	luminance := c.R*0.2125 + c.G*0.7154 + c.B*0.0721

	return Color{
		R: luminance + saturation*(c.R-luminance),
		G: luminance + saturation*(c.G-luminance),
		B: luminance + saturation*(c.B-luminance),
		A: c.A,
	}
}

/**
 * @brief Packs the color into 8-bit channels ordered alpha, red, green,
 * blue. Each channel is clamped to [0, 1] before scaling to 255 and
 * truncating.
 */
func (c Color) RGBA() Byte4 {
	return Byte4{
		N0: uint8(Clamp(c.A, 0, 1) * 255),
		N1: uint8(Clamp(c.R, 0, 1) * 255),
		N2: uint8(Clamp(c.G, 0, 1) * 255),
		N3: uint8(Clamp(c.B, 0, 1) * 255),
	}
}

/**
 * @brief Packs the color into 8-bit channels ordered alpha, blue, green,
 * red. Each channel is clamped to [0, 1] before scaling to 255 and
 * truncating.
 */
func (c Color) BGRA() Byte4 {
	return Byte4{
		N0: uint8(Clamp(c.A, 0, 1) * 255),
		N1: uint8(Clamp(c.B, 0, 1) * 255),
		N2: uint8(Clamp(c.G, 0, 1) * 255),
		N3: uint8(Clamp(c.R, 0, 1) * 255),
	}
}

/**
 * @brief Compares all channels of c and other and ensures the difference
 * is less than tolerance.
 *
 * @param other The other color.
 * @param tolerance The difference tolerance. Typically K_EPSILON or similar.
 * @return True if within tolerance; otherwise false.
 */
func (c Color) Compare(other Color, tolerance float32) bool {
	if kabs(c.R-other.R) > tolerance {
		return false
	}
	if kabs(c.G-other.G) > tolerance {
		return false
	}
	if kabs(c.B-other.B) > tolerance {
		return false
	}
	if kabs(c.A-other.A) > tolerance {
		return false
	}
	return true
}

// Uint32 returns the packed dword view of the four bytes, first byte in
// the low-order position.
func (b Byte4) Uint32() uint32 {
	return uint32(b.N0) | uint32(b.N1)<<8 | uint32(b.N2)<<16 | uint32(b.N3)<<24
}
