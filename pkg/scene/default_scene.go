package scene

import (
	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/geometry"
	"github.com/df07/go-weekend-raytracer/pkg/material"
	"github.com/df07/go-weekend-raytracer/pkg/renderer"
)

// previewCamera is the pinhole camera at the origin looking down -Z
func previewCamera() renderer.CameraConfig {
	return renderer.CameraConfig{
		Center:        core.NewVec3(0, 0, 0),
		LookAt:        core.NewVec3(0, 0, -1),
		Up:            core.NewVec3(0, 1, 0),
		Width:         400,
		AspectRatio:   16.0 / 9.0,
		VFov:          90,
		DefocusAngle:  0,
		FocusDistance: 1,
	}
}

// NewNormalsScene creates a single sphere with no material, which renders as its normals
func NewNormalsScene() *Scene {
	samplingConfig := renderer.DefaultSamplingConfig()
	samplingConfig.SamplesPerPixel = 1
	samplingConfig.MaxDepth = 1

	return &Scene{
		World:    geometry.NewHittableList(geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, nil)),
		Camera:   previewCamera(),
		Sampling: samplingConfig,
	}
}

// NewEmptyScene creates a scene with nothing in it
func NewEmptyScene() *Scene {
	samplingConfig := renderer.DefaultSamplingConfig()
	samplingConfig.SamplesPerPixel = 1
	samplingConfig.MaxDepth = 1

	return &Scene{
		World:    geometry.NewHittableList(),
		Camera:   previewCamera(),
		Sampling: samplingConfig,
	}
}

// NewMaterialsScene creates three spheres on a ground sphere, one per material
func NewMaterialsScene() *Scene {
	cameraConfig := renderer.CameraConfig{
		Center:        core.NewVec3(-2, 2, 1),
		LookAt:        core.NewVec3(0, 0, -1),
		Up:            core.NewVec3(0, 1, 0),
		Width:         400,
		AspectRatio:   16.0 / 9.0,
		VFov:          20,
		DefocusAngle:  10,
		FocusDistance: 3.4,
	}

	samplingConfig := renderer.DefaultSamplingConfig()
	samplingConfig.SamplesPerPixel = 100
	samplingConfig.MaxDepth = 50
	samplingConfig.Gamma = 2

	// Create materials
	lambertianGround := material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0))
	lambertianBlue := material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5))
	materialGlass := material.NewDielectric(1.5)
	materialBubble := material.NewDielectric(1.0 / 1.5) // air inside glass
	metalGold := material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 1.0)

	world := geometry.NewHittableList(
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, lambertianGround),
		geometry.NewSphere(core.NewVec3(0, 0, -1.2), 0.5, lambertianBlue),
		geometry.NewSphere(core.NewVec3(-1, 0, -1), 0.5, materialGlass),
		geometry.NewSphere(core.NewVec3(-1, 0, -1), 0.4, materialBubble),
		geometry.NewSphere(core.NewVec3(1, 0, -1), 0.5, metalGold),
	)

	return &Scene{
		World:    world,
		Camera:   cameraConfig,
		Sampling: samplingConfig,
	}
}
