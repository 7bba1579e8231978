package scene

import (
	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/geometry"
	"github.com/df07/go-weekend-raytracer/pkg/material"
	"github.com/df07/go-weekend-raytracer/pkg/renderer"
)

const (
	gridHalfSize = 11
	smallRadius  = 0.2
)

// randomColor returns a color with each channel in [minVal, maxVal)
func randomColor(sampler core.Sampler, minVal, maxVal float64) core.Vec3 {
	c := sampler.Get3D()
	return core.NewVec3(
		core.SampleRange(minVal, maxVal, c.X),
		core.SampleRange(minVal, maxVal, c.Y),
		core.SampleRange(minVal, maxVal, c.Z),
	)
}

// NewSphereGridScene creates a ground sphere covered by a grid of small random spheres
// with three large spheres in the middle. Placement and materials are fixed by seed.
func NewSphereGridScene(seed int64) *Scene {
	cameraConfig := renderer.CameraConfig{
		Center:        core.NewVec3(13, 2, 3),
		LookAt:        core.NewVec3(0, 0, 0),
		Up:            core.NewVec3(0, 1, 0),
		Width:         1200,
		AspectRatio:   16.0 / 9.0,
		VFov:          20,
		DefocusAngle:  0.6,
		FocusDistance: 10,
	}

	samplingConfig := renderer.DefaultSamplingConfig()
	samplingConfig.SamplesPerPixel = 500
	samplingConfig.MaxDepth = 50
	samplingConfig.Gamma = 2

	sampler := core.NewSeededSampler(seed)
	world := geometry.NewHittableList()

	// Create ground sphere (gray lambertian)
	world.Add(geometry.NewSphere(
		core.NewVec3(0, -1000, 0),
		1000,
		material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5)),
	))

	glass := material.NewDielectric(1.5)
	clearing := core.NewVec3(4, smallRadius, 0)

	for a := -gridHalfSize; a < gridHalfSize; a++ {
		for b := -gridHalfSize; b < gridHalfSize; b++ {
			chooseMat := sampler.Get1D()
			jitter := sampler.Get2D()
			center := core.NewVec3(float64(a)+0.9*jitter.X, smallRadius, float64(b)+0.9*jitter.Y)

			// Keep the area around the metal sphere clear
			if center.Subtract(clearing).Length() <= 0.9 {
				continue
			}

			var sphereMaterial core.Material
			switch {
			case chooseMat < 0.8:
				albedo := randomColor(sampler, 0, 1).MultiplyVec(randomColor(sampler, 0, 1))
				sphereMaterial = material.NewLambertian(albedo)
			case chooseMat < 0.95:
				albedo := randomColor(sampler, 0.5, 1)
				fuzz := core.SampleRange(0, 0.5, sampler.Get1D())
				sphereMaterial = material.NewMetal(albedo, fuzz)
			default:
				sphereMaterial = glass
			}
			world.Add(geometry.NewSphere(center, smallRadius, sphereMaterial))
		}
	}

	world.Add(
		geometry.NewSphere(core.NewVec3(0, 1, 0), 1.0, glass),
		geometry.NewSphere(core.NewVec3(-4, 1, 0), 1.0, material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1))),
		geometry.NewSphere(core.NewVec3(4, 1, 0), 1.0, material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0.0)),
	)

	return &Scene{
		World:    world,
		Camera:   cameraConfig,
		Sampling: samplingConfig,
	}
}
