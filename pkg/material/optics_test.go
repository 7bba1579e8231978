package material

import (
	"math"
	"testing"

	"github.com/df07/go-weekend-raytracer/pkg/core"
)

func TestReflect(t *testing.T) {
	v := core.NewVec3(1, -1, 0)
	n := core.NewVec3(0, 1, 0)
	r := Reflect(v, n)
	if !r.Equals(core.NewVec3(1, 1, 0)) {
		t.Errorf("Expected (1,1,0), got %v", r)
	}
}

func TestRefract_NormalIncidence(t *testing.T) {
	uv := core.NewVec3(0, -1, 0)
	n := core.NewVec3(0, 1, 0)
	r := Refract(uv, n, 1/1.5)
	if r.Subtract(uv).Length() > 1e-12 {
		t.Errorf("Normal incidence should pass straight through, got %v", r)
	}
}

func TestReflectance(t *testing.T) {
	tests := []struct {
		name     string
		cosine   float64
		ratio    float64
		expected float64
	}{
		{"Normal incidence air to glass", 1.0, 1 / 1.5, 0.04},
		{"Grazing incidence", 0.0, 1 / 1.5, 1.0},
		{"Matched index", 1.0, 1.0, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Reflectance(tt.cosine, tt.ratio)
			if math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("Expected %f, got %f", tt.expected, got)
			}
		})
	}
}
