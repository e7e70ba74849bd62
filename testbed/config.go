package testbed

import (
	"fmt"
	"os"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/spaghettifunk/cartesio/core"
	"github.com/spaghettifunk/cartesio/math"
)

// Settings drives the whole turntable run and is reloadable while the
// frame loop is running.
type Settings struct {
	LogLevel     string `toml:"log_level"`
	MetricsEvery uint32 `toml:"metrics_every"`

	Output OutputSettings `toml:"output"`
	Camera CameraSettings `toml:"camera"`
	Scene  SceneSettings  `toml:"scene"`
	Grade  GradeSettings  `toml:"grade"`
}

type OutputSettings struct {
	Width       uint32 `toml:"width"`
	Height      uint32 `toml:"height"`
	Supersample uint32 `toml:"supersample"`
	Frames      uint32 `toml:"frames"`
	Dir         string `toml:"dir"`
}

type CameraSettings struct {
	// Vertical field of view in degrees.
	Fov         float32 `toml:"fov"`
	Near        float32 `toml:"near"`
	Far         float32 `toml:"far"`
	RightHanded bool    `toml:"right_handed"`
	// Seconds to travel the whole path once.
	PathSeconds float32 `toml:"path_seconds"`
	// Catmull-Rom control points. Close the loop by repeating the
	// first point at the end.
	Path [][3]float32 `toml:"path"`
}

type SceneSettings struct {
	CubeSize   float32 `toml:"cube_size"`
	Tilt       float32 `toml:"tilt"`
	GridExtent float32 `toml:"grid_extent"`
	GridStep   float32 `toml:"grid_step"`
	RingRadius float32 `toml:"ring_radius"`
	SpinSpeed  float32 `toml:"spin_speed"`

	Background [4]float32 `toml:"background"`
	CubeColor  [4]float32 `toml:"cube_color"`
	GridColor  [4]float32 `toml:"grid_color"`
	RingColor  [4]float32 `toml:"ring_color"`
}

type GradeSettings struct {
	Saturation float32    `toml:"saturation"`
	Contrast   float32    `toml:"contrast"`
	Fog        [4]float32 `toml:"fog"`
}

func LoadSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	settings := &Settings{}
	if err := toml.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("%w: %v", core.ErrInvalidSettings, err)
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return settings, nil
}

func (s *Settings) Validate() error {
	if s.LogLevel == "" {
		return fmt.Errorf("%w: log_level is empty", core.ErrInvalidSettings)
	}
	if s.Output.Width == 0 || s.Output.Height == 0 {
		return fmt.Errorf("%w: output size %dx%d", core.ErrInvalidSettings, s.Output.Width, s.Output.Height)
	}
	if s.Output.Supersample < 1 || s.Output.Supersample > 8 {
		return fmt.Errorf("%w: supersample %d outside 1..8", core.ErrInvalidSettings, s.Output.Supersample)
	}
	if s.Output.Frames == 0 {
		return fmt.Errorf("%w: frame count is zero", core.ErrInvalidSettings)
	}
	if s.Output.Dir == "" {
		return fmt.Errorf("%w: output dir is empty", core.ErrInvalidSettings)
	}
	if s.Camera.Fov <= 0.0 || s.Camera.Fov >= 180.0 {
		return fmt.Errorf("%w: fov %.1f outside (0, 180)", core.ErrInvalidSettings, s.Camera.Fov)
	}
	if s.Camera.Near <= 0.0 || s.Camera.Near >= s.Camera.Far {
		return fmt.Errorf("%w: depth range [%f, %f]", core.ErrInvalidSettings, s.Camera.Near, s.Camera.Far)
	}
	if s.Camera.PathSeconds <= 0.0 {
		return fmt.Errorf("%w: path_seconds %.2f", core.ErrInvalidSettings, s.Camera.PathSeconds)
	}
	if len(s.Camera.Path) < 2 {
		return fmt.Errorf("%w: camera path needs at least 2 points, got %d", core.ErrInvalidSettings, len(s.Camera.Path))
	}
	if s.Scene.CubeSize <= 0.0 {
		return fmt.Errorf("%w: cube_size %.2f", core.ErrInvalidSettings, s.Scene.CubeSize)
	}
	if s.Scene.GridStep <= 0.0 || s.Scene.GridExtent < s.Scene.GridStep {
		return fmt.Errorf("%w: grid extent %.2f step %.2f", core.ErrInvalidSettings, s.Scene.GridExtent, s.Scene.GridStep)
	}
	if s.Scene.RingRadius <= 0.0 {
		return fmt.Errorf("%w: ring_radius %.2f", core.ErrInvalidSettings, s.Scene.RingRadius)
	}
	if s.Grade.Saturation < 0.0 || s.Grade.Contrast < 0.0 {
		return fmt.Errorf("%w: grade saturation %.2f contrast %.2f", core.ErrInvalidSettings, s.Grade.Saturation, s.Grade.Contrast)
	}
	return nil
}

// ControlPoints converts the raw path triplets into vectors.
func (cs CameraSettings) ControlPoints() []math.Vec3 {
	points := make([]math.Vec3, 0, len(cs.Path))
	for _, p := range cs.Path {
		points = append(points, math.NewVec3(p[0], p[1], p[2]))
	}
	return points
}

func colorFrom(v [4]float32) math.Color {
	return math.NewColor(v[0], v[1], v[2], v[3])
}
