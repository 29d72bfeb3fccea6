package renderer

import (
	"image"
	"image/color"
	"math"
	"math/rand"
	"time"

	"spheretrace/pkg/core"
	"spheretrace/pkg/integrator"
	"spheretrace/pkg/lights"
)

// Gamma applied when converting accumulated linear color to 8-bit output
const Gamma = 2.2

// Scene is what the renderer needs from a scene assembly. Scenes are
// built once before rendering and read-only afterwards, which is what
// makes lock-free parallel rendering safe.
type Scene interface {
	GetCameraConfig() CameraConfig
	GetWorld() core.Hittable
	GetLights() []lights.PointLight
	GetBackgroundColors() (topColor, bottomColor core.Vec3)
}

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	SamplesPerPixel int // Rays per pixel
	MaxDepth        int // Maximum ray bounce depth
}

// DefaultSamplingConfig returns the reference renderer's defaults
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		SamplesPerPixel: 20,
		MaxDepth:        15,
	}
}

// RenderStats summarizes a completed render
type RenderStats struct {
	TotalPixels  int
	TotalSamples int
	Elapsed      time.Duration
}

// Raytracer renders a scene to an image. Pixel sample sets are mutually
// independent, so scanlines can be rendered in parallel; each scanline
// draws from its own deterministically seeded generator so the output
// bytes are identical for any worker count.
type Raytracer struct {
	scene  Scene
	camera *Camera
	tracer *integrator.PathTracer
	width  int
	height int
	config SamplingConfig
	seed   int64
	logger core.Logger
}

// NewRaytracer creates a raytracer for a fixed scene and image size
func NewRaytracer(scene Scene, width, height int, config SamplingConfig, seed int64, logger core.Logger) *Raytracer {
	topColor, bottomColor := scene.GetBackgroundColors()
	return &Raytracer{
		scene:  scene,
		camera: NewCamera(scene.GetCameraConfig()),
		tracer: integrator.NewPathTracer(scene.GetWorld(), scene.GetLights(), topColor, bottomColor, config.MaxDepth),
		width:  width,
		height: height,
		config: config,
		seed:   seed,
		logger: logger,
	}
}

// Render renders every scanline serially
func (rt *Raytracer) Render() (*image.RGBA, RenderStats) {
	start := time.Now()
	img := image.NewRGBA(image.Rect(0, 0, rt.width, rt.height))

	for j := rt.height - 1; j >= 0; j-- {
		rt.renderScanline(j, img)
		if rt.logger != nil && j%50 == 0 {
			rt.logger.Printf("Scanlines remaining: %d\n", j)
		}
	}

	return img, rt.stats(start)
}

// renderScanline renders row j (in camera coordinates, bottom row is 0)
// into the image, whose rows run top to bottom.
func (rt *Raytracer) renderScanline(j int, img *image.RGBA) {
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(rt.seed + int64(j))))

	for i := 0; i < rt.width; i++ {
		accum := core.Vec3{}
		for s := 0; s < rt.config.SamplesPerPixel; s++ {
			// Jitter the sample position inside the pixel footprint
			u := (float64(i) + sampler.Get1D()) / float64(rt.width-1)
			v := (float64(j) + sampler.Get1D()) / float64(rt.height-1)
			ray := rt.camera.GetRay(u, v)
			accum = accum.Add(rt.tracer.RayColor(ray, sampler))
		}
		img.SetRGBA(i, rt.height-1-j, rt.pixelColor(accum))
	}
}

// pixelColor averages the accumulated samples, applies gamma correction
// and clamps to [0, 0.999] before scaling to the 8-bit range.
func (rt *Raytracer) pixelColor(accum core.Vec3) color.RGBA {
	scale := 1.0 / float64(rt.config.SamplesPerPixel)
	c := accum.Multiply(scale).Clamp(0, math.Inf(1))
	c = c.GammaCorrect(Gamma).Clamp(0, 0.999)

	return color.RGBA{
		R: uint8(256 * c.X),
		G: uint8(256 * c.Y),
		B: uint8(256 * c.Z),
		A: 255,
	}
}

func (rt *Raytracer) stats(start time.Time) RenderStats {
	pixels := rt.width * rt.height
	return RenderStats{
		TotalPixels:  pixels,
		TotalSamples: pixels * rt.config.SamplesPerPixel,
		Elapsed:      time.Since(start),
	}
}
