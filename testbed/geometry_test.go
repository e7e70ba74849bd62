package testbed

import (
	"testing"

	"github.com/google/uuid"

	"github.com/spaghettifunk/cartesio/math"
)

func testSceneSettings() SceneSettings {
	return SceneSettings{
		CubeSize:   2.0,
		Tilt:       0.35,
		GridExtent: 6.0,
		GridStep:   1.0,
		RingRadius: 3.0,
		SpinSpeed:  0.9,
		Background: [4]float32{0.0, 0.0, 0.0, 1.0},
		CubeColor:  [4]float32{1.0, 1.0, 1.0, 1.0},
		GridColor:  [4]float32{0.5, 0.5, 0.5, 1.0},
		RingColor:  [4]float32{0.0, 1.0, 1.0, 1.0},
	}
}

func findLineSet(t *testing.T, scene *Scene, kind string) *LineSet {
	t.Helper()
	for _, ls := range scene.LineSets {
		if ls.Kind == kind {
			return ls
		}
	}
	t.Fatalf("line set %q not found", kind)
	return nil
}

func TestNewScene(t *testing.T) {
	settings := testSceneSettings()
	scene := NewScene(&settings)
	defer scene.Destroy()

	if len(scene.LineSets) != 6 {
		t.Fatalf("scene has %d line sets, want 6", len(scene.LineSets))
	}

	cube := findLineSet(t, scene, "cube")
	if len(cube.Segments) != 12 {
		t.Errorf("cube has %d segments, want 12 edges", len(cube.Segments))
	}
	if cube.Spin != SpinTurntable {
		t.Error("cube should spin on the turntable")
	}

	// extent 6 with step 1 gives 13 lines per direction.
	grid := findLineSet(t, scene, "grid")
	if len(grid.Segments) != 26 {
		t.Errorf("grid has %d segments, want 26", len(grid.Segments))
	}
	if grid.Spin != SpinNone {
		t.Error("grid should not spin")
	}

	ring := findLineSet(t, scene, "ring")
	if len(ring.Segments) != ringSegmentCount {
		t.Errorf("ring has %d segments, want %d", len(ring.Segments), ringSegmentCount)
	}
	if ring.Spin != SpinRing {
		t.Error("ring should use the ring spin mode")
	}

	ids := make(map[uint32]bool)
	for _, ls := range scene.LineSets {
		if ids[ls.ID] {
			t.Errorf("line set id %d handed out twice", ls.ID)
		}
		ids[ls.ID] = true

		if _, err := uuid.Parse(ls.Name); err != nil {
			t.Errorf("line set name %q is not a UUID: %v", ls.Name, err)
		}
	}
}

func TestCubeEdges(t *testing.T) {
	segments := cubeEdges(2.0)
	if len(segments) != 12 {
		t.Fatalf("cubeEdges returned %d segments, want 12", len(segments))
	}

	for i, seg := range segments {
		// Every edge of an axis-aligned cube spans exactly one side
		// length.
		length := seg.B.Sub(seg.A).Length()
		if !math.FloatEqual(length, 2.0) {
			t.Errorf("edge %d has length %v, want 2", i, length)
		}

		for _, p := range []math.Vec3{seg.A, seg.B} {
			if math.Abs(p.X) != 1.0 || math.Abs(p.Y) != 1.0 || math.Abs(p.Z) != 1.0 {
				t.Errorf("edge %d corner %v is not on the cube surface", i, p)
			}
		}
	}
}

func TestGroundGrid(t *testing.T) {
	segments := groundGrid(6.0, 1.0)
	if len(segments) != 26 {
		t.Fatalf("groundGrid returned %d segments, want 26", len(segments))
	}

	for i, seg := range segments {
		if seg.A.Y != 0.0 || seg.B.Y != 0.0 {
			t.Errorf("segment %d leaves the y=0 plane: %v, %v", i, seg.A, seg.B)
		}
	}
}

func TestUnitCircle(t *testing.T) {
	segments := unitCircle(ringSegmentCount)
	if len(segments) != ringSegmentCount {
		t.Fatalf("unitCircle returned %d segments, want %d", len(segments), ringSegmentCount)
	}

	for i, seg := range segments {
		for _, p := range []math.Vec3{seg.A, seg.B} {
			if !math.FloatEqual(p.Length(), 1.0) {
				t.Errorf("segment %d point %v is off the unit circle", i, p)
			}
			if p.Z != 0.0 {
				t.Errorf("segment %d point %v leaves the xy plane", i, p)
			}
		}
	}

	// The loop closes: the last segment ends where the first starts.
	last := segments[len(segments)-1]
	if !last.B.Compare(segments[0].A, math.K_EPSILON) {
		t.Errorf("circle does not close: %v != %v", last.B, segments[0].A)
	}
}

func TestGroundPlaneFacesUp(t *testing.T) {
	settings := testSceneSettings()
	scene := NewScene(&settings)
	defer scene.Destroy()

	if got := scene.GroundPlane.DotCoord(math.NewVec3(0.0, 1.0, 0.0)); got <= 0.0 {
		t.Errorf("DotCoord above ground = %v, want positive", got)
	}
	if got := scene.GroundPlane.DotCoord(math.NewVec3(0.0, -1.0, 0.0)); got >= 0.0 {
		t.Errorf("DotCoord below ground = %v, want negative", got)
	}
	if got := scene.GroundPlane.DotCoord(math.NewVec3(5.0, 0.0, -3.0)); !math.FloatEqual(got, 0.0) {
		t.Errorf("DotCoord on the plane = %v, want 0", got)
	}
}

func TestAxisLine(t *testing.T) {
	tip := math.NewVec3(3.0, 0.0, 0.0)
	dir := math.NewVec3(1.0, 0.0, 0.0)
	side := math.NewVec3(0.0, 0.0, 1.0)
	segments := axisLine(tip, dir, side, 0.45, func(v math.Vec3) math.Vec2 {
		return math.NewVec2(v.X, v.Z)
	})

	if len(segments) != 4 {
		t.Fatalf("axisLine returned %d segments, want 4", len(segments))
	}
	if segments[0].B != tip {
		t.Errorf("axis segment ends at %v, want %v", segments[0].B, tip)
	}
	if !segments[1].B.Compare(tip.MulScalar(-0.5), math.K_EPSILON) {
		t.Errorf("negative half ends at %v, want %v", segments[1].B, tip.MulScalar(-0.5))
	}

	// The wings attach at the tip and mirror each other about the
	// axis.
	if segments[2].A != tip || segments[3].A != tip {
		t.Error("arrowhead wings should start at the tip")
	}
	back := tip.Sub(dir.MulScalar(0.45))
	midpoint := segments[2].B.Add(segments[3].B).MulScalar(0.5)
	if !midpoint.Compare(back, math.K_EPSILON) {
		t.Errorf("wing midpoint = %v, want %v", midpoint, back)
	}
}

func TestCompassRose(t *testing.T) {
	center := math.NewVec2(100.0, 50.0)
	radius := float32(20.0)
	segments := compassRose(center, radius)

	// 16 circle segments, 4 ticks, 1 needle.
	if len(segments) != 21 {
		t.Fatalf("compassRose returned %d segments, want 21", len(segments))
	}

	for i := 0; i < 16; i++ {
		for _, p := range []math.Vec2{segments[i].A, segments[i].B} {
			if d := p.Sub(center).Length(); !math.FloatEqual(d, radius) {
				t.Errorf("circle point %v sits %v from center, want %v", p, d, radius)
			}
		}
	}

	needle := segments[len(segments)-1]
	if needle.A != center {
		t.Errorf("needle starts at %v, want the center %v", needle.A, center)
	}
	if !needle.B.Compare(math.NewVec2(100.0, 32.0), math.K_EPSILON) {
		t.Errorf("needle ends at %v, want (100, 32)", needle.B)
	}
}

func TestSceneDestroyReleasesIDs(t *testing.T) {
	settings := testSceneSettings()
	scene := NewScene(&settings)

	ids := make([]uint32, 0, len(scene.LineSets))
	for _, ls := range scene.LineSets {
		ids = append(ids, ls.ID)
	}
	scene.Destroy()

	if len(scene.LineSets) != 0 {
		t.Error("Destroy should drop the line sets")
	}

	// The released slots get handed out again, lowest first.
	rebuilt := NewScene(&settings)
	defer rebuilt.Destroy()
	if got := rebuilt.LineSets[0].ID; got != ids[0] {
		t.Errorf("first id after rebuild = %d, want the released %d", got, ids[0])
	}
}
