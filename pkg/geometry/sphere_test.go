package geometry

import (
	"math"
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/df07/go-weekend-raytracer/pkg/core"
)

var hitRange = core.NewInterval(0.001, math.Inf(1))

func vecWithin(a, b core.Vec3, tol float64) bool {
	return scalar.EqualWithinAbs(a.X, b.X, tol) &&
		scalar.EqualWithinAbs(a.Y, b.Y, tol) &&
		scalar.EqualWithinAbs(a.Z, b.Z, tol)
}

func TestSphere_Hit_Miss(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, nil)
	ray := core.NewRay(core.NewVec3(2, 0, 0), core.NewVec3(0, 1, 0))

	hit, isHit := sphere.Hit(ray, hitRange)
	if isHit {
		t.Errorf("Expected miss, but got hit at t=%f", hit.T)
	}
}

func TestSphere_Hit_FrontAndBackFace(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, nil)

	tests := []struct {
		name           string
		rayOrigin      core.Vec3
		rayDirection   core.Vec3
		expectedT      float64
		expectedFront  bool
		expectedNormal core.Vec3
	}{
		{
			name:           "front face hit",
			rayOrigin:      core.NewVec3(0, 0, 2),
			rayDirection:   core.NewVec3(0, 0, -1),
			expectedT:      1.0,
			expectedFront:  true,
			expectedNormal: core.NewVec3(0, 0, 1),
		},
		{
			name:           "back face hit",
			rayOrigin:      core.NewVec3(0, 0, 0),
			rayDirection:   core.NewVec3(0, 0, 1),
			expectedT:      1.0,
			expectedFront:  false,
			expectedNormal: core.NewVec3(0, 0, -1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(tt.rayOrigin, tt.rayDirection)
			hit, isHit := sphere.Hit(ray, hitRange)

			if !isHit {
				t.Fatal("Expected hit, but got miss")
			}

			if math.Abs(hit.T-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got t=%f", tt.expectedT, hit.T)
			}

			if hit.FrontFace != tt.expectedFront {
				t.Errorf("Expected front face %t, got %t", tt.expectedFront, hit.FrontFace)
			}

			if !vecWithin(hit.Normal, tt.expectedNormal, 1e-9) {
				t.Errorf("Expected normal %v, got %v", tt.expectedNormal, hit.Normal)
			}
		})
	}
}

func TestSphere_Hit_GlancingHit(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, nil)
	ray := core.NewRay(core.NewVec3(1, 0, 2), core.NewVec3(0, 0, -1))

	hit, isHit := sphere.Hit(ray, hitRange)
	if !isHit {
		t.Fatal("Expected glancing hit, but got miss")
	}

	expectedPoint := core.NewVec3(1, 0, 0)
	if !vecWithin(hit.Point, expectedPoint, 1e-9) {
		t.Errorf("Expected hit point %v, got %v", expectedPoint, hit.Point)
	}
}

func TestSphere_Hit_Bounds(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, nil)
	ray := core.NewRay(core.NewVec3(0, 0, 2), core.NewVec3(0, 0, -1))

	// Test max bound
	hit, isHit := sphere.Hit(ray, core.NewInterval(0.001, 0.5))
	if isHit {
		t.Errorf("Expected miss due to max bound, but got hit at t=%f", hit.T)
	}

	// Test min bound
	hit, isHit = sphere.Hit(ray, core.NewInterval(3.5, 1000.0))
	if isHit {
		t.Errorf("Expected miss due to min bound, but got hit at t=%f", hit.T)
	}

	// Near root excluded, far root accepted
	hit, isHit = sphere.Hit(ray, core.NewInterval(1.5, 1000.0))
	if !isHit {
		t.Fatal("Expected far intersection to be accepted")
	}
	if math.Abs(hit.T-3) > 1e-9 || hit.FrontFace {
		t.Errorf("Expected back face hit at t=3, got t=%f front=%v", hit.T, hit.FrontFace)
	}
}

func TestSphere_Hit_RejectsOriginSelfIntersection(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, nil)
	// Ray starting exactly on the surface and leaving it
	ray := core.NewRay(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, 1))

	hit, isHit := sphere.Hit(ray, core.NewInterval(0, math.Inf(1)))
	if isHit {
		t.Errorf("Root at t=0 should be excluded, got hit at t=%g", hit.T)
	}
}

func TestSphere_MaterialPassthrough(t *testing.T) {
	mat := &stubMaterial{}
	sphere := NewSphere(core.NewVec3(0, 0, -1), 0.5, mat)
	hit, isHit := sphere.Hit(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1)), hitRange)
	if !isHit {
		t.Fatal("Expected hit")
	}
	if hit.Material != core.Material(mat) {
		t.Error("Hit record should reference the sphere's material")
	}
}

func TestNewSphere_NegativeRadius(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), -2, nil)
	if sphere.Radius != 0 {
		t.Errorf("Expected radius clamped to 0, got %f", sphere.Radius)
	}
}

// TestSphere_Hit_MatchesQuadraticFormula checks random rays against the full
// quadratic (a, b, c) formula evaluated independently with r3.
func TestSphere_Hit_MatchesQuadraticFormula(t *testing.T) {
	random := rand.New(rand.NewSource(42))
	center := r3.Vec{X: 0.3, Y: -0.2, Z: -2}
	radius := 0.75
	sphere := NewSphere(core.NewVec3(center.X, center.Y, center.Z), radius, nil)

	hits := 0
	for i := 0; i < 500; i++ {
		origin := r3.Vec{X: random.Float64()*4 - 2, Y: random.Float64()*4 - 2, Z: random.Float64() * 2}
		dir := r3.Vec{X: random.Float64()*2 - 1, Y: random.Float64()*2 - 1, Z: -random.Float64() - 0.1}

		oc := r3.Sub(center, origin)
		a := r3.Dot(dir, dir)
		b := -2.0 * r3.Dot(dir, oc)
		c := r3.Dot(oc, oc) - radius*radius
		disc := b*b - 4*a*c

		ray := core.NewRay(core.NewVec3(origin.X, origin.Y, origin.Z), core.NewVec3(dir.X, dir.Y, dir.Z))
		hit, isHit := sphere.Hit(ray, hitRange)

		if disc < 0 {
			if isHit {
				t.Fatalf("Ray %d: expected miss, got hit at t=%f", i, hit.T)
			}
			continue
		}

		expectedT := (-b - math.Sqrt(disc)) / (2 * a)
		if expectedT <= hitRange.Min {
			expectedT = (-b + math.Sqrt(disc)) / (2 * a)
		}
		if expectedT <= hitRange.Min {
			if isHit {
				t.Fatalf("Ray %d: both roots behind origin, got hit at t=%f", i, hit.T)
			}
			continue
		}

		if !isHit {
			t.Fatalf("Ray %d: expected hit at t=%f, got miss", i, expectedT)
		}
		hits++
		if !scalar.EqualWithinAbsOrRel(hit.T, expectedT, 1e-9, 1e-9) {
			t.Errorf("Ray %d: expected t=%f, got t=%f", i, expectedT, hit.T)
		}

		p := r3.Add(origin, r3.Scale(expectedT, dir))
		outward := r3.Unit(r3.Sub(p, center))
		if r3.Dot(outward, dir) > 0 {
			outward = r3.Scale(-1, outward)
		}
		if !vecWithin(hit.Normal, core.NewVec3(outward.X, outward.Y, outward.Z), 1e-6) {
			t.Errorf("Ray %d: expected normal %v, got %v", i, outward, hit.Normal)
		}
		if math.Abs(hit.Normal.Length()-1) > 1e-9 {
			t.Errorf("Ray %d: normal should be unit length, got %f", i, hit.Normal.Length())
		}
		if hit.Normal.Dot(ray.Direction.Negate()) < 0 {
			t.Errorf("Ray %d: normal should oppose the ray direction", i)
		}
	}

	if hits == 0 {
		t.Fatal("Expected at least one ray to hit the sphere")
	}
}

type stubMaterial struct{}

func (stubMaterial) Scatter(rayIn core.Ray, hit core.HitRecord, sampler core.Sampler) (core.ScatterResult, bool) {
	return core.ScatterResult{}, false
}
