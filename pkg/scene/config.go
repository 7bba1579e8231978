package scene

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/df07/go-weekend-raytracer/pkg/core"
)

// CameraOverrides holds optional camera settings. Nil fields keep the scene value.
type CameraOverrides struct {
	Center        *core.Vec3 `json:"center,omitempty"`
	LookAt        *core.Vec3 `json:"lookAt,omitempty"`
	Up            *core.Vec3 `json:"up,omitempty"`
	Width         *int       `json:"width,omitempty"`
	AspectRatio   *float64   `json:"aspectRatio,omitempty"`
	VFov          *float64   `json:"vfov,omitempty"`
	DefocusAngle  *float64   `json:"defocusAngle,omitempty"`
	FocusDistance *float64   `json:"focusDistance,omitempty"`
}

// SamplingOverrides holds optional sampling settings
type SamplingOverrides struct {
	SamplesPerPixel *int     `json:"samplesPerPixel,omitempty"`
	MaxDepth        *int     `json:"maxDepth,omitempty"`
	HitEpsilon      *float64 `json:"hitEpsilon,omitempty"`
	Gamma           *float64 `json:"gamma,omitempty"`
}

// Config is the JSON document accepted by LoadConfigFile, e.g.
//
//	{"scene": "materials", "camera": {"width": 800}, "sampling": {"samplesPerPixel": 50}}
type Config struct {
	Scene    string            `json:"scene,omitempty"`
	Seed     *int64            `json:"seed,omitempty"`
	Camera   CameraOverrides   `json:"camera"`
	Sampling SamplingOverrides `json:"sampling"`
}

// ParseConfig decodes a config document. Unknown fields are rejected so typos surface.
func ParseConfig(data []byte) (*Config, error) {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()

	var cfg Config
	if err := decoder.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// LoadConfigFile reads and parses a JSON config file
func LoadConfigFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Apply copies every set field over the scene's configuration
func (c *Config) Apply(s *Scene) {
	cam := &s.Camera
	setIf(&cam.Center, c.Camera.Center)
	setIf(&cam.LookAt, c.Camera.LookAt)
	setIf(&cam.Up, c.Camera.Up)
	setIf(&cam.Width, c.Camera.Width)
	setIf(&cam.AspectRatio, c.Camera.AspectRatio)
	setIf(&cam.VFov, c.Camera.VFov)
	setIf(&cam.DefocusAngle, c.Camera.DefocusAngle)
	setIf(&cam.FocusDistance, c.Camera.FocusDistance)

	sampling := &s.Sampling
	setIf(&sampling.SamplesPerPixel, c.Sampling.SamplesPerPixel)
	setIf(&sampling.MaxDepth, c.Sampling.MaxDepth)
	setIf(&sampling.HitEpsilon, c.Sampling.HitEpsilon)
	setIf(&sampling.Gamma, c.Sampling.Gamma)
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
