package renderer

import (
	"math"

	"github.com/df07/go-weekend-raytracer/pkg/core"
)

// Camera generates rays for rendering. All derived quantities are computed
// once by NewCamera and never change.
type Camera struct {
	config       CameraConfig
	imageHeight  int
	center       core.Vec3 // Camera center
	pixel00Loc   core.Vec3 // Location of pixel 0, 0
	pixelDeltaU  core.Vec3 // Offset to pixel to the right
	pixelDeltaV  core.Vec3 // Offset to pixel below
	u, v, w      core.Vec3 // Camera frame basis vectors
	defocusDiskU core.Vec3 // Defocus disk horizontal radius
	defocusDiskV core.Vec3 // Defocus disk vertical radius
}

// NewCamera validates the configuration and derives the viewport
func NewCamera(config CameraConfig) (*Camera, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	c := &Camera{
		config:      config,
		imageHeight: config.ImageHeight(),
		center:      config.Center,
	}

	// Determine viewport dimensions
	theta := core.DegreesToRadians(config.VFov)
	h := math.Tan(theta / 2)
	viewportHeight := 2 * h * config.FocusDistance
	viewportWidth := viewportHeight * float64(config.Width) / float64(c.imageHeight)

	// Calculate the u,v,w unit basis vectors for the camera coordinate frame
	c.w = config.Center.Subtract(config.LookAt).Normalize()
	c.u = config.Up.Cross(c.w).Normalize()
	c.v = c.w.Cross(c.u)

	// Vectors across the horizontal and down the vertical viewport edges
	viewportU := c.u.Multiply(viewportWidth)
	viewportV := c.v.Negate().Multiply(viewportHeight)

	c.pixelDeltaU = viewportU.Divide(float64(config.Width))
	c.pixelDeltaV = viewportV.Divide(float64(c.imageHeight))

	// Location of the upper left pixel center
	viewportUpperLeft := c.center.
		Subtract(c.w.Multiply(config.FocusDistance)).
		Subtract(viewportU.Multiply(0.5)).
		Subtract(viewportV.Multiply(0.5))
	c.pixel00Loc = viewportUpperLeft.Add(c.pixelDeltaU.Add(c.pixelDeltaV).Multiply(0.5))

	defocusRadius := config.FocusDistance * math.Tan(core.DegreesToRadians(config.DefocusAngle/2))
	c.defocusDiskU = c.u.Multiply(defocusRadius)
	c.defocusDiskV = c.v.Multiply(defocusRadius)

	return c, nil
}

// GetRay returns a ray for pixel (i, j), jittered inside the pixel and
// starting on the defocus disk when depth of field is enabled
func (c *Camera) GetRay(i, j int, sampler core.Sampler) core.Ray {
	offset := core.SampleSquare(sampler.Get2D())
	pixelSample := c.pixel00Loc.
		Add(c.pixelDeltaU.Multiply(float64(i) + offset.X)).
		Add(c.pixelDeltaV.Multiply(float64(j) + offset.Y))

	origin := c.center
	if c.config.DefocusAngle > 0 {
		origin = c.defocusDiskSample(sampler)
	}

	return core.NewRay(origin, pixelSample.Subtract(origin))
}

// GetCenterRay returns the unjittered pinhole ray through the center of pixel (i, j)
func (c *Camera) GetCenterRay(i, j int) core.Ray {
	pixelCenter := c.pixel00Loc.
		Add(c.pixelDeltaU.Multiply(float64(i))).
		Add(c.pixelDeltaV.Multiply(float64(j)))
	return core.NewRay(c.center, pixelCenter.Subtract(c.center))
}

// defocusDiskSample returns a random point on the camera defocus disk
func (c *Camera) defocusDiskSample(sampler core.Sampler) core.Vec3 {
	p := core.SamplePointInUnitDisk(sampler.Get2D())
	return c.center.Add(c.defocusDiskU.Multiply(p.X)).Add(c.defocusDiskV.Multiply(p.Y))
}

// ImageWidth returns the rendered image width
func (c *Camera) ImageWidth() int { return c.config.Width }

// ImageHeight returns the rendered image height
func (c *Camera) ImageHeight() int { return c.imageHeight }

// Center returns the camera center
func (c *Camera) Center() core.Vec3 { return c.center }

// Pixel00 returns the world-space location of the top-left pixel center
func (c *Camera) Pixel00() core.Vec3 { return c.pixel00Loc }

// PixelDeltas returns the world-space steps to the next pixel right and below
func (c *Camera) PixelDeltas() (du, dv core.Vec3) { return c.pixelDeltaU, c.pixelDeltaV }

// Basis returns the camera frame: u points right, v up, w backwards
func (c *Camera) Basis() (u, v, w core.Vec3) { return c.u, c.v, c.w }

// DefocusDisk returns the defocus disk radius vectors along u and v
func (c *Camera) DefocusDisk() (du, dv core.Vec3) { return c.defocusDiskU, c.defocusDiskV }

// GetCameraForward returns the direction the camera looks in
func (c *Camera) GetCameraForward() core.Vec3 { return c.w.Negate() }

// Config returns the configuration the camera was built from
func (c *Camera) Config() CameraConfig { return c.config }
