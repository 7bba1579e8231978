package renderer

import (
	"context"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/df07/go-weekend-raytracer/pkg/core"
)

var (
	white   = core.NewVec3(1.0, 1.0, 1.0)
	skyBlue = core.NewVec3(0.5, 0.7, 1.0)
	black   = core.NewVec3(0, 0, 0)
)

// Raytracer handles the rendering process
type Raytracer struct {
	camera  *Camera
	config  SamplingConfig
	sampler core.Sampler
	logger  core.Logger
}

// NewRaytracer creates a new raytracer. The sampler is the only source of
// randomness, so a seeded sampler reproduces an image exactly.
func NewRaytracer(cameraConfig CameraConfig, config SamplingConfig, sampler core.Sampler, logger core.Logger) (*Raytracer, error) {
	camera, err := NewCamera(cameraConfig)
	if err != nil {
		return nil, err
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = core.NopLogger{}
	}
	return &Raytracer{
		camera:  camera,
		config:  config,
		sampler: sampler,
		logger:  logger,
	}, nil
}

// Camera returns the camera used by this raytracer
func (rt *Raytracer) Camera() *Camera {
	return rt.camera
}

// Config returns the sampling configuration
func (rt *Raytracer) Config() SamplingConfig {
	return rt.config
}

// Background returns the sky gradient seen by a ray that hits nothing
func Background(r core.Ray) core.Vec3 {
	unitDirection := r.Direction.Normalize()

	// Use the y-component to create a gradient (map from -1,1 to 0,1)
	a := 0.5 * (unitDirection.Y + 1.0)

	// Linear interpolation: (1-a)*white + a*blue
	return white.Multiply(1.0 - a).Add(skyBlue.Multiply(a))
}

// NormalColor maps a unit normal to a displayable color
func NormalColor(normal core.Vec3) core.Vec3 {
	return normal.Add(white).Multiply(0.5)
}

// RayColor estimates the radiance carried back along r. Each bounce
// multiplies the throughput by the material attenuation and uses up one
// unit of depth; when depth runs out no more light is gathered.
func (rt *Raytracer) RayColor(r core.Ray, depth int, world core.Hittable) core.Vec3 {
	throughput := white
	rayT := core.NewInterval(rt.config.HitEpsilon, math.Inf(1))

	for ; depth > 0; depth-- {
		hit, isHit := world.Hit(r, rayT)
		if !isHit {
			return throughput.MultiplyVec(Background(r))
		}

		// Geometry without a material is shaded by its normal
		if hit.Material == nil {
			return throughput.MultiplyVec(NormalColor(hit.Normal))
		}

		scatter, didScatter := hit.Material.Scatter(r, *hit, rt.sampler)
		if !didScatter {
			return black
		}

		throughput = throughput.MultiplyVec(scatter.Attenuation)
		r = scatter.Scattered
	}

	return black
}

// samplePixel averages SamplesPerPixel radiance estimates for pixel (i, j)
func (rt *Raytracer) samplePixel(i, j int, world core.Hittable) core.Vec3 {
	var ps PixelStats
	for sample := 0; sample < rt.config.SamplesPerPixel; sample++ {
		ray := rt.camera.GetRay(i, j, rt.sampler)
		ps.AddSample(rt.RayColor(ray, rt.config.MaxDepth, world))
	}
	return ps.GetColor()
}

// renderPixels visits every pixel row-major, top row first, and hands the
// averaged color to emit. The context is checked between scanlines.
func (rt *Raytracer) renderPixels(ctx context.Context, world core.Hittable, emit func(i, j int, color core.Vec3) error) (RenderStats, error) {
	width, height := rt.camera.ImageWidth(), rt.camera.ImageHeight()
	stats := newStatsCollector(width*height, rt.config.SamplesPerPixel)
	start := time.Now()

	for j := 0; j < height; j++ {
		if err := ctx.Err(); err != nil {
			return stats.finish(time.Since(start)), err
		}
		rt.logger.Printf("\rScanlines remaining: %d ", height-j)

		for i := 0; i < width; i++ {
			color := rt.samplePixel(i, j, world)
			stats.add(color)
			if err := emit(i, j, color); err != nil {
				return stats.finish(time.Since(start)), err
			}
		}
	}

	rt.logger.Printf("\rDone.                 \n")
	return stats.finish(time.Since(start)), nil
}

// Render writes the image of world to w as a plain PPM stream
func (rt *Raytracer) Render(ctx context.Context, world core.Hittable, w io.Writer) (RenderStats, error) {
	ppm := NewPPMWriter(w, rt.config.Gamma)
	if err := ppm.WriteHeader(rt.camera.ImageWidth(), rt.camera.ImageHeight()); err != nil {
		return RenderStats{}, fmt.Errorf("writing image header: %w", err)
	}

	stats, err := rt.renderPixels(ctx, world, func(_, _ int, color core.Vec3) error {
		return ppm.WritePixel(color)
	})
	if err != nil {
		return stats, fmt.Errorf("rendering: %w", err)
	}

	if err := ppm.Flush(); err != nil {
		return stats, fmt.Errorf("writing image: %w", err)
	}
	return stats, nil
}

// RenderImage renders world into memory. Pixel colors are linear averages.
func (rt *Raytracer) RenderImage(ctx context.Context, world core.Hittable) (*Image, RenderStats, error) {
	img := NewImage(rt.camera.ImageWidth(), rt.camera.ImageHeight())
	stats, err := rt.renderPixels(ctx, world, func(i, j int, color core.Vec3) error {
		img.Set(i, j, color)
		return nil
	})
	if err != nil {
		return nil, stats, err
	}
	return img, stats, nil
}
