package testbed

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"

	"golang.org/x/image/draw"

	"github.com/spaghettifunk/cartesio/math"
)

// FramePacket carries the per-frame state from the game loop into the
// rasterizer.
type FramePacket struct {
	Frame     uint32
	DeltaTime float64
	Angle     float32
	View      math.Mat4
}

// Rasterizer draws the line sets of a scene into an offscreen RGBA
// framebuffer and resolves it to the output image. All drawing happens
// on the frame loop goroutine.
type Rasterizer struct {
	settings *Settings
	scene    *Scene

	vp         math.Viewport
	clip       math.Rect
	projection math.Mat4
	// Inverse of the viewport volume matrix, mapping NDC to pixels.
	volumeInv math.Mat4

	framebuffer *image.RGBA
	output      *image.RGBA

	overlay       []Segment2
	overlayCenter math.Vec2
}

func NewRasterizer(settings *Settings, scene *Scene) *Rasterizer {
	r := &Rasterizer{}
	r.Apply(settings, scene)
	return r
}

// Apply rebuilds every size- and camera-dependent resource. Called on
// creation and again whenever the settings are reloaded.
func (r *Rasterizer) Apply(settings *Settings, scene *Scene) {
	r.settings = settings
	r.scene = scene

	w := settings.Output.Width * settings.Output.Supersample
	h := settings.Output.Height * settings.Output.Supersample

	r.vp = math.NewViewport(0, 0, w, h, 0.0, 1.0)
	r.clip = math.NewRectXY(0, 0, int32(w), int32(h))

	volume := math.NewMat4OrthographicOffCenterLH(
		float32(r.vp.X), float32(r.vp.X+r.vp.W),
		float32(r.vp.Y), float32(r.vp.Y+r.vp.H),
		r.vp.MinZ, r.vp.MaxZ,
	)
	r.volumeInv = volume.Inverse()

	fov := math.DegToRad(settings.Camera.Fov)
	aspect := float32(settings.Output.Width) / float32(settings.Output.Height)
	if settings.Camera.RightHanded {
		r.projection = math.NewMat4PerspectiveFovRH(fov, aspect, settings.Camera.Near, settings.Camera.Far)
	} else {
		r.projection = math.NewMat4PerspectiveFovLH(fov, aspect, settings.Camera.Near, settings.Camera.Far)
	}

	r.framebuffer = image.NewRGBA(image.Rect(0, 0, int(w), int(h)))
	r.output = image.NewRGBA(image.Rect(0, 0, int(settings.Output.Width), int(settings.Output.Height)))

	r.overlayCenter = math.NewVec2(float32(w)*0.86, float32(h)*0.14)
	r.overlay = compassRose(r.overlayCenter, float32(math.Min(w, h))*0.09)
}

// Render draws one frame into the framebuffer and resolves it into the
// output image.
func (r *Rasterizer) Render(packet FramePacket) {
	r.clear()

	for _, ls := range r.scene.LineSets {
		world := r.worldFor(ls, packet.Angle)
		m := world.Mul(packet.View).Mul(r.projection)
		for _, seg := range ls.Segments {
			r.drawSegment(seg, world, m, ls.Color)
		}
	}

	r.drawOverlay(packet.Angle)
	r.resolve()
}

func (r *Rasterizer) clear() {
	b4 := colorFrom(r.settings.Scene.Background).RGBA()
	uniform := image.NewUniform(color.RGBA{R: b4.N1, G: b4.N2, B: b4.N3, A: b4.N0})
	draw.Draw(r.framebuffer, r.framebuffer.Bounds(), uniform, image.Point{}, draw.Src)
}

// worldFor returns the world matrix a line set uses this frame.
func (r *Rasterizer) worldFor(ls *LineSet, angle float32) math.Mat4 {
	switch ls.Spin {
	case SpinTurntable:
		spin := math.NewMat4RotationYawPitchRoll(angle, r.settings.Scene.Tilt, 0.0)
		lift := math.NewMat4Translation(math.NewVec3(0.0, r.settings.Scene.CubeSize, 0.0))
		return spin.Mul(lift)
	case SpinRing:
		// The rotation center sits off the ring's own center, so the
		// loop wobbles around the cube instead of spinning in place.
		return math.NewMat4Transformation3D(
			math.NewVec3Zero(),
			math.NewVec3(r.settings.Scene.RingRadius, r.settings.Scene.RingRadius, 1.0),
			math.NewVec3(0.35, 0.0, 0.0),
			-angle,
			math.NewVec3(0.0, r.settings.Scene.CubeSize, 0.0),
		)
	default:
		return math.NewMat4Identity()
	}
}

// drawSegment projects one segment through the combined matrix, shades
// it by depth and draws it. Segments that reach in front of the near
// plane are dropped whole rather than clipped.
func (r *Rasterizer) drawSegment(seg Segment, world, m math.Mat4, base math.Color) {
	near := r.settings.Camera.Near
	far := r.settings.Camera.Far

	a := seg.A.Transform(m)
	b := seg.B.Transform(m)
	if a.W < near || b.W < near {
		return
	}

	pa := math.NewVec3(a.X/a.W, a.Y/a.W, a.Z/a.W).TransformCoord(r.volumeInv)
	pb := math.NewVec3(b.X/b.W, b.Y/b.W, b.Z/b.W).TransformCoord(r.volumeInv)

	xa := math.Floor(pa.X + 0.5)
	ya := math.Floor(pa.Y + 0.5)
	xb := math.Floor(pb.X + 0.5)
	yb := math.Floor(pb.Y + 0.5)

	if r.clip.OutsideXY(xa, ya) && r.clip.OutsideXY(xb, yb) {
		bounds := math.NewRectXY(
			math.Min(xa, xb), math.Min(ya, yb),
			math.Abs(xb-xa)+1, math.Abs(yb-ya)+1,
		)
		if !r.clip.IntersectsXY(bounds) {
			return
		}
	}

	t := math.Clamp((0.5*(a.W+b.W)-near)/(far-near), 0.0, 1.0)
	c := base.Lerp(colorFrom(r.settings.Grade.Fog), t).
		AdjustSaturation(r.settings.Grade.Saturation).
		AdjustContrast(r.settings.Grade.Contrast)

	mid := seg.A.Lerp(seg.B, 0.5).TransformCoord(world)
	if r.scene.GroundPlane.DotCoord(mid) < 0.0 {
		c = c.Mul(math.NewColor(0.35, 0.35, 0.35, 1.0))
	}

	r.drawLine(xa, ya, xb, yb, c.RGBA())
}

// drawOverlay spins the compass rose about its own center and draws it
// in the ink color, the negative of the background.
func (r *Rasterizer) drawOverlay(angle float32) {
	m := math.NewMat4Transformation2D(
		math.NewVec2Zero(), math.NewVec2One(),
		r.overlayCenter, angle,
		math.NewVec2Zero(),
	)

	// Negate flips alpha as well; the overlay ink must stay opaque.
	ink := colorFrom(r.settings.Scene.Background).Negate()
	ink.A = 1.0
	b4 := ink.RGBA()

	for _, seg := range r.overlay {
		a := seg.A.TransformCoord(m)
		b := seg.B.TransformCoord(m)
		r.drawLine(
			math.Floor(a.X+0.5), math.Floor(a.Y+0.5),
			math.Floor(b.X+0.5), math.Floor(b.Y+0.5),
			b4,
		)
	}
}

// drawLine draws with integer Bresenham stepping. Every pixel is
// bounds-checked against the clip rectangle.
func (r *Rasterizer) drawLine(xa, ya, xb, yb int32, b4 math.Byte4) {
	dx := math.Abs(xb - xa)
	dy := -math.Abs(yb - ya)
	sx := math.Sign(xb - xa)
	sy := math.Sign(yb - ya)
	err := dx + dy

	x, y := xa, ya
	for {
		r.setPixel(x, y, b4)
		if x == xb && y == yb {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}

func (r *Rasterizer) setPixel(x, y int32, b4 math.Byte4) {
	if !r.clip.ContainsXY(x, y) {
		return
	}
	// The byte layout packs alpha first: N0=A, N1=R, N2=G, N3=B.
	i := r.framebuffer.PixOffset(int(x), int(y))
	r.framebuffer.Pix[i] = b4.N1
	r.framebuffer.Pix[i+1] = b4.N2
	r.framebuffer.Pix[i+2] = b4.N3
	r.framebuffer.Pix[i+3] = b4.N0
}

// resolve downsamples the supersampled framebuffer into the output
// image.
func (r *Rasterizer) resolve() {
	if r.framebuffer.Bounds() == r.output.Bounds() {
		draw.Draw(r.output, r.output.Bounds(), r.framebuffer, image.Point{}, draw.Src)
		return
	}
	draw.CatmullRom.Scale(r.output, r.output.Bounds(), r.framebuffer, r.framebuffer.Bounds(), draw.Src, nil)
}

// Output returns the resolved frame image.
func (r *Rasterizer) Output() *image.RGBA {
	return r.output
}

// WriteFrame encodes the resolved frame as a PNG under the output
// directory and returns the written path.
func (r *Rasterizer) WriteFrame(frame uint32) (string, error) {
	if err := os.MkdirAll(r.settings.Output.Dir, 0o755); err != nil {
		return "", err
	}

	path := filepath.Join(r.settings.Output.Dir, fmt.Sprintf("frame_%04d.png", frame))
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer func() {
		_ = f.Close()
	}()

	if err := png.Encode(f, r.output); err != nil {
		return "", err
	}
	return path, nil
}
