package scene

import (
	"errors"
	"fmt"
	"sort"

	"github.com/df07/go-weekend-raytracer/pkg/geometry"
	"github.com/df07/go-weekend-raytracer/pkg/renderer"
)

// ErrUnknownScene is returned by New for names that are not registered
var ErrUnknownScene = errors.New("unknown scene")

// Scene contains all the elements needed for rendering
type Scene struct {
	Name        string
	Description string
	World       *geometry.HittableList
	Camera      renderer.CameraConfig
	Sampling    renderer.SamplingConfig
}

// builder creates a scene. Scenes with random content draw it from seed.
type builder struct {
	description string
	build       func(seed int64) *Scene
}

var builtins = map[string]builder{
	"normals": {
		description: "Single sphere shaded by its surface normal",
		build:       func(int64) *Scene { return NewNormalsScene() },
	},
	"empty": {
		description: "No objects, background gradient only",
		build:       func(int64) *Scene { return NewEmptyScene() },
	},
	"materials": {
		description: "Diffuse, hollow glass and fuzzed metal spheres with depth of field",
		build:       func(int64) *Scene { return NewMaterialsScene() },
	},
	"spheregrid": {
		description: "Ground with a grid of randomized small spheres and three large ones",
		build:       NewSphereGridScene,
	},
}

// Names returns the registered scene names in sorted order
func Names() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Describe returns the one-line description of a registered scene
func Describe(name string) (string, error) {
	b, ok := builtins[name]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownScene, name)
	}
	return b.description, nil
}

// New builds the named scene. The seed only affects scenes with random content.
func New(name string, seed int64) (*Scene, error) {
	b, ok := builtins[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %v)", ErrUnknownScene, name, Names())
	}
	s := b.build(seed)
	s.Name = name
	s.Description = b.description
	return s, nil
}

// Validate checks both configurations of the scene
func (s *Scene) Validate() error {
	if err := s.Camera.Validate(); err != nil {
		return fmt.Errorf("scene %q camera: %w", s.Name, err)
	}
	if err := s.Sampling.Validate(); err != nil {
		return fmt.Errorf("scene %q sampling: %w", s.Name, err)
	}
	return nil
}

// GetPrimitiveCount returns the number of objects in the world
func (s *Scene) GetPrimitiveCount() int {
	if s.World == nil {
		return 0
	}
	return s.World.Len()
}
