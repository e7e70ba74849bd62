package testbed

import (
	"context"
	"errors"
	"fmt"

	"github.com/spaghettifunk/cartesio/containers"
	"github.com/spaghettifunk/cartesio/core"
	"github.com/spaghettifunk/cartesio/math"
)

// Game owns the whole turntable run: the scene, the orbiting camera,
// the rasterizer and the settings hot reload. Everything but the
// settings watcher runs on the frame loop goroutine.
type Game struct {
	settingsPath string
	settings     *Settings

	scene  *Scene
	camera *Camera
	spline *SplinePath
	raster *Rasterizer

	watcher *SettingsWatcher
	reloads *containers.RingQueue[string]

	clock      *core.Clock
	frameClock *core.Clock
	lastTime   float64

	frame     uint32
	angle     float32
	pathPos   float32
	isRunning bool
}

func NewGame(settingsPath string) (*Game, error) {
	settings, err := LoadSettings(settingsPath)
	if err != nil {
		return nil, err
	}
	if err := core.LogSetLevel(settings.LogLevel); err != nil {
		return nil, fmt.Errorf("%w: log_level %q", core.ErrInvalidSettings, settings.LogLevel)
	}

	return &Game{
		settingsPath: settingsPath,
		settings:     settings,
		clock:        core.NewClock(),
		frameClock:   core.NewClock(),
		isRunning:    true,
	}, nil
}

func (g *Game) Initialize() error {
	// initialize events
	if !core.EventInitialize() {
		return fmt.Errorf("failed to initialize the event system")
	}
	if err := core.MetricsInitialize(); err != nil {
		return err
	}

	g.scene = NewScene(&g.settings.Scene)
	g.camera = NewCamera(g.settings.Camera.RightHanded)
	g.camera.SetTarget(math.NewVec3(0.0, g.settings.Scene.CubeSize, 0.0))
	g.spline = NewSplinePath(g.settings.Camera.ControlPoints())
	g.raster = NewRasterizer(g.settings, g.scene)

	g.reloads = containers.NewRingQueue[string](8)
	watcher, err := NewSettingsWatcher(g.settingsPath, g.reloads)
	if err != nil {
		return err
	}
	g.watcher = watcher
	if err := g.watcher.Start(); err != nil {
		return err
	}

	// register some events
	core.EventRegister(core.EVENT_CODE_APPLICATION_QUIT, g, g.onQuit)
	core.EventRegister(core.EVENT_CODE_SETTINGS_CHANGED, g, g.onSettingsChanged)
	core.EventRegister(core.EVENT_CODE_SETTINGS_CHANGED, nil, logSettingsChanged)
	core.EventRegister(core.EVENT_CODE_FRAME_RENDERED, g, g.onFrameRendered)

	return nil
}

func (g *Game) Run(ctx context.Context) error {
	if err := g.Initialize(); err != nil {
		return err
	}
	defer g.Shutdown()

	g.clock.Start()
	g.clock.Update()
	g.lastTime = g.clock.Elapsed()

	for g.isRunning && g.frame < g.settings.Output.Frames {
		select {
		case <-ctx.Done():
			core.EventFire(core.EVENT_CODE_APPLICATION_QUIT, g, core.EventContext{})
			continue
		default:
		}

		// Update clock and get delta time.
		g.clock.Update()
		var currentTime float64 = g.clock.Elapsed()
		var delta float64 = currentTime - g.lastTime

		g.frameClock.Start()
		if err := g.Update(delta); err != nil {
			core.LogError("game update failed, shutting down")
			return err
		}
		if err := g.Render(delta); err != nil {
			core.LogError("game render failed, shutting down")
			return err
		}
		g.frameClock.Update()
		core.MetricsUpdate(g.frameClock.Elapsed())

		// Update last time
		g.lastTime = currentTime
	}

	return nil
}

func (g *Game) Update(delta float64) error {
	g.drainReloads()

	g.angle += g.settings.Scene.SpinSpeed * float32(delta)
	if g.angle > math.K_PI_2 {
		g.angle -= math.K_PI_2
	}

	g.pathPos += float32(delta) / g.settings.Camera.PathSeconds
	for g.pathPos > 1.0 {
		g.pathPos -= 1.0
	}
	g.camera.SetPosition(g.spline.Evaluate(g.pathPos))

	return nil
}

func (g *Game) Render(delta float64) error {
	packet := FramePacket{
		Frame:     g.frame,
		DeltaTime: delta,
		Angle:     g.angle,
		View:      g.camera.GetView(),
	}
	g.raster.Render(packet)

	path, err := g.raster.WriteFrame(g.frame)
	if err != nil {
		return err
	}

	data := core.EventContext{}
	data.Data.U32[0] = g.frame
	data.Data.C[0] = path
	core.EventFire(core.EVENT_CODE_FRAME_RENDERED, g, data)

	g.frame++
	return nil
}

func (g *Game) Shutdown() error {
	if g.watcher != nil {
		if err := g.watcher.Close(); err != nil && !errors.Is(err, core.ErrWatcherClosed) {
			core.LogError(err.Error())
		}
	}

	core.EventUnregister(core.EVENT_CODE_APPLICATION_QUIT, g, g.onQuit)
	core.EventUnregister(core.EVENT_CODE_SETTINGS_CHANGED, g, g.onSettingsChanged)
	core.EventUnregister(core.EVENT_CODE_SETTINGS_CHANGED, nil, logSettingsChanged)
	core.EventUnregister(core.EVENT_CODE_FRAME_RENDERED, g, g.onFrameRendered)

	if g.scene != nil {
		g.scene.Destroy()
	}

	return core.EventShutdown()
}

// drainReloads empties the watcher queue on the frame loop goroutine
// and fires a single settings event no matter how many file events
// piled up. A reload that fails validation keeps the current settings.
func (g *Game) drainReloads() {
	changed := ""
	for {
		path, err := g.reloads.Dequeue()
		if err != nil {
			break
		}
		changed = path
	}
	if changed == "" {
		return
	}

	settings, err := LoadSettings(changed)
	if err != nil {
		core.LogError("settings reload rejected: %v", err)
		return
	}

	data := core.EventContext{}
	data.Data.C[0] = changed
	core.EventFire(core.EVENT_CODE_SETTINGS_CHANGED, settings, data)
}

func (g *Game) onQuit(code core.SystemEventCode, sender, listenerInst interface{}, data core.EventContext) bool {
	core.LogInfo("EVENT_CODE_APPLICATION_QUIT received, shutting down.")
	g.isRunning = false
	return true
}

// onSettingsChanged swaps in the validated settings carried by the
// sender and rebuilds everything derived from them. Returns false so
// the remaining listeners still see the event.
func (g *Game) onSettingsChanged(code core.SystemEventCode, sender, listenerInst interface{}, data core.EventContext) bool {
	settings, ok := sender.(*Settings)
	if !ok {
		core.LogError("wrong sender associated with the event code `%d`", code)
		return false
	}

	g.settings = settings
	if err := core.LogSetLevel(settings.LogLevel); err != nil {
		core.LogWarn("keeping previous log level: %v", err)
	}

	g.scene.Destroy()
	g.scene = NewScene(&settings.Scene)
	g.camera = NewCamera(settings.Camera.RightHanded)
	g.camera.SetTarget(math.NewVec3(0.0, settings.Scene.CubeSize, 0.0))
	g.spline = NewSplinePath(settings.Camera.ControlPoints())
	g.raster.Apply(settings, g.scene)

	return false
}

func logSettingsChanged(code core.SystemEventCode, sender, listenerInst interface{}, data core.EventContext) bool {
	core.LogInfo("settings reloaded from %s", data.Data.C[0])
	return false
}

func (g *Game) onFrameRendered(code core.SystemEventCode, sender, listenerInst interface{}, data core.EventContext) bool {
	frame := data.Data.U32[0]
	every := g.settings.MetricsEvery
	if every == 0 || frame == 0 || frame%every != 0 {
		return false
	}

	fps, frameTime := core.MetricsFrame()
	core.LogInfo("frame %d written to %s (%.1f fps, %.2f ms)", frame, data.Data.C[0], fps, frameTime)
	return false
}
