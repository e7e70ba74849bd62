package testbed

import (
	"github.com/google/uuid"

	"github.com/spaghettifunk/cartesio/core"
	"github.com/spaghettifunk/cartesio/math"
)

// SpinMode selects the world matrix a line set receives each frame.
type SpinMode int

const (
	SpinNone SpinMode = iota
	SpinTurntable
	SpinRing
)

const ringSegmentCount = 32

type Segment struct {
	A math.Vec3
	B math.Vec3
}

// Segment2 is a screen-space line for the overlay pass.
type Segment2 struct {
	A math.Vec2
	B math.Vec2
}

type LineSet struct {
	ID       uint32
	Name     string
	Kind     string
	Color    math.Color
	Spin     SpinMode
	Segments []Segment
}

type Scene struct {
	LineSets    []*LineSet
	GroundPlane math.Plane
}

func NewScene(settings *SceneSettings) *Scene {
	scene := &Scene{
		// Ground through the origin. The winding of the three points
		// gives the plane a +y normal, so DotCoord is positive above
		// ground.
		GroundPlane: math.NewPlaneFromPoints(math.NewVec3Zero(), math.NewVec3(0.0, 0.0, 1.0), math.NewVec3(1.0, 0.0, 0.0)),
	}

	scene.add("cube", colorFrom(settings.CubeColor), SpinTurntable, cubeEdges(settings.CubeSize))
	scene.add("grid", colorFrom(settings.GridColor), SpinNone, groundGrid(settings.GridExtent, settings.GridStep))
	scene.add("ring", colorFrom(settings.RingColor), SpinRing, unitCircle(ringSegmentCount))

	length := settings.GridExtent * 0.5
	head := length * 0.15
	scene.add("axis-x", math.NewColor(0.85, 0.2, 0.2, 1.0), SpinNone, axisLine(
		math.NewVec3(length, 0.0, 0.0), math.NewVec3(1.0, 0.0, 0.0), math.NewVec3(0.0, 0.0, 1.0), head,
		func(v math.Vec3) math.Vec2 { return math.NewVec2(v.X, v.Z) }))
	scene.add("axis-y", math.NewColor(0.2, 0.85, 0.2, 1.0), SpinNone, axisLine(
		math.NewVec3(0.0, length, 0.0), math.NewVec3(0.0, 1.0, 0.0), math.NewVec3(1.0, 0.0, 0.0), head,
		func(v math.Vec3) math.Vec2 { return math.NewVec2(v.X, v.Y) }))
	scene.add("axis-z", math.NewColor(0.25, 0.4, 0.9, 1.0), SpinNone, axisLine(
		math.NewVec3(0.0, 0.0, length), math.NewVec3(0.0, 0.0, 1.0), math.NewVec3(1.0, 0.0, 0.0), head,
		func(v math.Vec3) math.Vec2 { return math.NewVec2(v.Z, v.X) }))

	return scene
}

func (s *Scene) add(kind string, color math.Color, spin SpinMode, segments []Segment) *LineSet {
	// Generate a UUID to act as the line set name.
	lineSetUUID := uuid.New()

	ls := &LineSet{
		Name:     lineSetUUID.String(),
		Kind:     kind,
		Color:    color,
		Spin:     spin,
		Segments: segments,
	}
	ls.ID = core.IdentifierAcquireNewID(ls)
	s.LineSets = append(s.LineSets, ls)
	return ls
}

func (s *Scene) Destroy() {
	for _, ls := range s.LineSets {
		if err := core.IdentifierReleaseID(ls.ID); err != nil {
			core.LogError("failed to release line set id %d: %v", ls.ID, err)
		}
	}
	s.LineSets = nil
}

// cubeEdges builds the 12 edges of an axis-aligned cube centered on the
// origin.
func cubeEdges(size float32) []Segment {
	half := size * 0.5
	corners := [8]math.Vec3{
		math.NewVec3(-half, -half, -half),
		math.NewVec3(half, -half, -half),
		math.NewVec3(half, half, -half),
		math.NewVec3(-half, half, -half),
		math.NewVec3(-half, -half, half),
		math.NewVec3(half, -half, half),
		math.NewVec3(half, half, half),
		math.NewVec3(-half, half, half),
	}
	edges := [12][2]int{
		{0, 1}, {1, 2}, {2, 3}, {3, 0},
		{4, 5}, {5, 6}, {6, 7}, {7, 4},
		{0, 4}, {1, 5}, {2, 6}, {3, 7},
	}

	segments := make([]Segment, 0, len(edges))
	for _, e := range edges {
		segments = append(segments, Segment{A: corners[e[0]], B: corners[e[1]]})
	}
	return segments
}

// groundGrid builds grid lines in the xz plane at y=0.
func groundGrid(extent, step float32) []Segment {
	count := int(extent / step)
	segments := make([]Segment, 0, 2*(2*count+1))
	for i := -count; i <= count; i++ {
		c := float32(i) * step
		segments = append(segments,
			Segment{A: math.NewVec3(c, 0.0, -extent), B: math.NewVec3(c, 0.0, extent)},
			Segment{A: math.NewVec3(-extent, 0.0, c), B: math.NewVec3(extent, 0.0, c)},
		)
	}
	return segments
}

// unitCircle builds a closed line loop of radius one in the xy plane.
// The ring world matrix scales and places it each frame.
func unitCircle(count int) []Segment {
	step := math.K_PI_2 / float32(count)
	points := make([]math.Vec3, count)
	for i := 0; i < count; i++ {
		rot := math.NewMat4RotationZ(step * float32(i))
		points[i] = math.NewVec3(1.0, 0.0, 0.0).TransformCoord(rot)
	}

	segments := make([]Segment, 0, count)
	for i := 0; i < count; i++ {
		segments = append(segments, Segment{A: points[i], B: points[(i+1)%count]})
	}
	return segments
}

// axisLine builds an axis through the origin plus two arrowhead wings
// at the positive tip. The negative half is a separate segment so the
// below-ground shading can treat it on its own. plane2 maps world
// vectors into the drawing plane of the axis; the CCW test keeps the
// first wing on the counter-clockwise side regardless of which side
// vector the caller picked.
func axisLine(tip, dir, side math.Vec3, head float32, plane2 func(math.Vec3) math.Vec2) []Segment {
	d2 := plane2(dir)
	s2 := plane2(side)
	if d2.CCW(s2) < 0.0 {
		side = side.MulScalar(-1.0)
	}

	back := tip.Sub(dir.MulScalar(head))
	w1 := back.Add(side.MulScalar(head * 0.5))
	w2 := back.Sub(side.MulScalar(head * 0.5))

	return []Segment{
		{A: math.NewVec3Zero(), B: tip},
		{A: math.NewVec3Zero(), B: tip.MulScalar(-0.5)},
		{A: tip, B: w1},
		{A: tip, B: w2},
	}
}

// compassRose builds the screen-space overlay: an outer circle, four
// ticks and a needle pointing at the top of the inset.
func compassRose(center math.Vec2, radius float32) []Segment2 {
	const count = 16
	step := math.K_PI_2 / float32(count)

	points := make([]math.Vec2, count)
	for i := 0; i < count; i++ {
		rot := math.NewMat4RotationZ(step * float32(i))
		p := math.NewVec2(radius, 0.0).TransformCoord(rot)
		points[i] = center.Add(p)
	}

	segments := make([]Segment2, 0, count+5)
	for i := 0; i < count; i++ {
		segments = append(segments, Segment2{A: points[i], B: points[(i+1)%count]})
	}

	// Ticks at the four cardinal points.
	for i := 0; i < 4; i++ {
		rot := math.NewMat4RotationZ(math.K_HALF_PI * float32(i))
		outer := math.NewVec2(radius, 0.0).TransformCoord(rot)
		inner := math.NewVec2(radius*0.8, 0.0).TransformCoord(rot)
		segments = append(segments, Segment2{A: center.Add(outer), B: center.Add(inner)})
	}

	// Needle to the top of the inset.
	segments = append(segments, Segment2{A: center, B: center.Add(math.NewVec2(0.0, -radius*0.9))})
	return segments
}
