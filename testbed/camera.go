package testbed

import (
	"github.com/spaghettifunk/cartesio/math"
)

/**
 * @brief Look-at camera for the turntable. The view matrix is rebuilt
 * lazily when position, target or free-look rotation changed.
 */
type Camera struct {
	/**
	 * @brief The position of this camera.
	 * NOTE: Do not set this directly, use SetPosition() instead
	 * so the view matrix is recalculated when needed.
	 */
	Position math.Vec3
	/** @brief The point the camera looks at while not in free-look. */
	Target math.Vec3
	/** @brief The up reference for the look-at basis. */
	Up math.Vec3
	/**
	 * @brief Free-look rotation using Euler angles (pitch, yaw, roll).
	 * NOTE: Do not set this directly, use SetEulerRotation() instead
	 * so the view matrix is recalculated when needed.
	 */
	EulerRotation math.Vec3
	/** @brief When set the view derives its target from EulerRotation. */
	FreeLook bool
	/** @brief Internal flag used to determine when the view matrix needs to be rebuilt. */
	IsDirty bool
	/**
	 * @brief The view matrix of this camera.
	 * NOTE: Do not get this directly, use GetView() instead
	 * so the view matrix is recalculated when needed.
	 */
	ViewMatrix math.Mat4

	rightHanded bool
}

func NewCamera(rightHanded bool) *Camera {
	camera := &Camera{rightHanded: rightHanded}
	camera.Reset()
	return camera
}

func (c *Camera) Reset() {
	c.Position = math.NewVec3Zero()
	c.Target = math.NewVec3Zero()
	c.Up = math.NewVec3Up()
	c.EulerRotation = math.NewVec3Zero()
	c.FreeLook = false
	c.IsDirty = false
	c.ViewMatrix = math.NewMat4Identity()
}

func (c *Camera) GetPosition() math.Vec3 {
	return c.Position
}

func (c *Camera) SetPosition(position math.Vec3) {
	c.Position = position
	c.IsDirty = true
}

func (c *Camera) GetTarget() math.Vec3 {
	return c.Target
}

// SetTarget aims the camera at a fixed point and leaves free-look.
func (c *Camera) SetTarget(target math.Vec3) {
	c.Target = target
	c.FreeLook = false
	c.IsDirty = true
}

func (c *Camera) GetEulerRotation() math.Vec3 {
	return c.EulerRotation
}

// SetEulerRotation switches the camera into free-look.
func (c *Camera) SetEulerRotation(rotation math.Vec3) {
	c.EulerRotation = rotation
	c.FreeLook = true
	c.IsDirty = true
}

func (c *Camera) Yaw(amount float32) {
	c.EulerRotation.Y += amount
	c.FreeLook = true
	c.IsDirty = true
}

func (c *Camera) Pitch(amount float32) {
	c.EulerRotation.X += amount

	// Clamp to avoid Gimbal lock.
	limit := float32(1.55334306) // 89 degrees, or equivalent to deg_to_rad(89.0f);
	c.EulerRotation.X = math.Clamp(c.EulerRotation.X, -limit, limit)

	c.FreeLook = true
	c.IsDirty = true
}

// Forward returns the free-look view direction for the current
// yaw/pitch/roll.
func (c *Camera) Forward() math.Vec3 {
	rotation := math.NewMat4RotationYawPitchRoll(c.EulerRotation.Y, c.EulerRotation.X, c.EulerRotation.Z)
	base := math.NewVec3(0.0, 0.0, 1.0)
	if c.rightHanded {
		base = math.NewVec3(0.0, 0.0, -1.0)
	}
	return base.TransformDirection(rotation)
}

func (c *Camera) GetView() math.Mat4 {
	if c.IsDirty {
		at := c.Target
		if c.FreeLook {
			at = c.Position.Add(c.Forward())
		}
		if c.rightHanded {
			c.ViewMatrix = math.NewMat4LookAtRH(c.Position, at, c.Up)
		} else {
			c.ViewMatrix = math.NewMat4LookAtLH(c.Position, at, c.Up)
		}
		c.IsDirty = false
	}
	return c.ViewMatrix
}

/**
 * @brief Catmull-Rom path through the camera control points. The ends
 * reuse their neighbour as tangent anchor, so the path passes through
 * every control point.
 */
type SplinePath struct {
	points []math.Vec3
}

func NewSplinePath(points []math.Vec3) *SplinePath {
	return &SplinePath{points: points}
}

// Evaluate walks the whole path for s in [0, 1]. Values outside the
// range clamp to the path ends.
func (sp *SplinePath) Evaluate(s float32) math.Vec3 {
	n := len(sp.points)
	if n == 0 {
		return math.NewVec3Zero()
	}
	if n == 1 {
		return sp.points[0]
	}

	s = math.Clamp(s, 0.0, 1.0)
	scaled := s * float32(n-1)
	i := int(scaled)
	if i > n-2 {
		i = n - 2
	}
	t := scaled - float32(i)

	p0 := sp.points[math.Max(i-1, 0)]
	p1 := sp.points[i]
	p2 := sp.points[i+1]
	p3 := sp.points[math.Min(i+2, n-1)]
	return p0.CatmullRom(p1, p2, p3, t)
}
