package renderer

import (
	"errors"
	"fmt"
	"math"

	"github.com/df07/go-weekend-raytracer/pkg/core"
)

// ErrInvalidConfig is returned when a camera or sampling configuration cannot be rendered
var ErrInvalidConfig = errors.New("invalid render configuration")

// DefaultHitEpsilon is the default lower bound on accepted hit distances.
// It keeps scattered rays from re-hitting the surface they start on.
const DefaultHitEpsilon = 0.001

// CameraConfig describes the view. All angles are in degrees.
type CameraConfig struct {
	Center        core.Vec3 // Point camera is looking from
	LookAt        core.Vec3 // Point camera is looking at
	Up            core.Vec3 // Camera-relative "up" direction
	Width         int       // Rendered image width in pixels
	AspectRatio   float64   // Ratio of image width over height
	VFov          float64   // Vertical view angle (field of view)
	DefocusAngle  float64   // Variation angle of rays through each pixel, 0 disables depth of field
	FocusDistance float64   // Distance from camera center to plane of perfect focus
}

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	SamplesPerPixel int     // Number of rays per pixel
	MaxDepth        int     // Maximum ray bounce depth
	HitEpsilon      float64 // Minimum accepted hit distance
	Gamma           float64 // Output gamma, 1 writes linear values
}

// DefaultCameraConfig returns a pinhole camera at the origin looking down -Z
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		Center:        core.NewVec3(0, 0, 0),
		LookAt:        core.NewVec3(0, 0, -1),
		Up:            core.NewVec3(0, 1, 0),
		Width:         100,
		AspectRatio:   1.0,
		VFov:          90,
		DefocusAngle:  0,
		FocusDistance: 10,
	}
}

// DefaultSamplingConfig returns sensible default values
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		SamplesPerPixel: 10,
		MaxDepth:        10,
		HitEpsilon:      DefaultHitEpsilon,
		Gamma:           1.0,
	}
}

// ImageHeight returns the image height implied by width and aspect ratio, at least 1
func (c CameraConfig) ImageHeight() int {
	return max(1, int(math.Round(float64(c.Width)/c.AspectRatio)))
}

// Validate checks that the configuration produces a well-defined camera
func (c CameraConfig) Validate() error {
	if c.Width <= 0 {
		return fmt.Errorf("%w: image width must be positive, got %d", ErrInvalidConfig, c.Width)
	}
	if !(c.AspectRatio > 0) || math.IsInf(c.AspectRatio, 0) {
		return fmt.Errorf("%w: aspect ratio must be positive and finite, got %v", ErrInvalidConfig, c.AspectRatio)
	}
	if !(c.VFov > 0 && c.VFov < 180) {
		return fmt.Errorf("%w: vertical field of view must be in (0, 180), got %v", ErrInvalidConfig, c.VFov)
	}
	if !(c.FocusDistance > 0) || math.IsInf(c.FocusDistance, 0) {
		return fmt.Errorf("%w: focus distance must be positive, got %v", ErrInvalidConfig, c.FocusDistance)
	}
	if math.IsNaN(c.DefocusAngle) || c.DefocusAngle >= 180 {
		return fmt.Errorf("%w: defocus angle must be below 180, got %v", ErrInvalidConfig, c.DefocusAngle)
	}
	if !c.Center.IsFinite() || !c.LookAt.IsFinite() || !c.Up.IsFinite() {
		return fmt.Errorf("%w: camera vectors must be finite", ErrInvalidConfig)
	}

	view := c.Center.Subtract(c.LookAt)
	if view.LengthSquared() == 0 {
		return fmt.Errorf("%w: look-from and look-at are the same point %v", ErrInvalidConfig, c.Center)
	}
	if c.Up.LengthSquared() == 0 || c.Up.Normalize().Cross(view.Normalize()).Length() < 1e-9 {
		return fmt.Errorf("%w: up vector %v is zero or parallel to the view direction", ErrInvalidConfig, c.Up)
	}
	return nil
}

// Validate checks the sampling parameters
func (s SamplingConfig) Validate() error {
	if s.SamplesPerPixel <= 0 {
		return fmt.Errorf("%w: samples per pixel must be positive, got %d", ErrInvalidConfig, s.SamplesPerPixel)
	}
	if s.MaxDepth < 0 {
		return fmt.Errorf("%w: max depth must not be negative, got %d", ErrInvalidConfig, s.MaxDepth)
	}
	if !(s.HitEpsilon >= 0) || math.IsInf(s.HitEpsilon, 0) {
		return fmt.Errorf("%w: hit epsilon must be a non-negative number, got %v", ErrInvalidConfig, s.HitEpsilon)
	}
	if !(s.Gamma > 0) || math.IsInf(s.Gamma, 0) {
		return fmt.Errorf("%w: gamma must be positive, got %v", ErrInvalidConfig, s.Gamma)
	}
	return nil
}
