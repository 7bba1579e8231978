package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-weekend-raytracer/pkg/core"
)

func TestHittableList_Empty(t *testing.T) {
	list := NewHittableList()
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	if hit, isHit := list.Hit(ray, hitRange); isHit || hit != nil {
		t.Errorf("Empty list should never hit, got %v", hit)
	}
}

func TestHittableList_ClosestHit(t *testing.T) {
	near := NewSphere(core.NewVec3(0, 0, -2), 0.5, nil)
	far := NewSphere(core.NewVec3(0, 0, -5), 0.5, nil)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	tests := []struct {
		name    string
		objects []core.Hittable
	}{
		{"near first", []core.Hittable{near, far}},
		{"far first", []core.Hittable{far, near}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list := NewHittableList(tt.objects...)
			hit, isHit := list.Hit(ray, hitRange)
			if !isHit {
				t.Fatal("Expected hit")
			}
			if math.Abs(hit.T-1.5) > 1e-9 {
				t.Errorf("Expected closest hit at t=1.5, got t=%f", hit.T)
			}
		})
	}
}

func TestHittableList_OverlappingSpheres(t *testing.T) {
	// Two overlapping spheres; the larger one is entered first
	small := NewSphere(core.NewVec3(0, 0, -3), 0.5, nil)
	large := NewSphere(core.NewVec3(0, 0, -3.5), 1.5, nil)
	list := NewHittableList(small, large)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	hit, isHit := list.Hit(ray, hitRange)
	if !isHit {
		t.Fatal("Expected hit")
	}
	if math.Abs(hit.T-2.0) > 1e-9 {
		t.Errorf("Expected minimum t=2.0, got t=%f", hit.T)
	}
}

func TestHittableList_RespectsInterval(t *testing.T) {
	list := NewHittableList(
		NewSphere(core.NewVec3(0, 0, -2), 0.5, nil),
		NewSphere(core.NewVec3(0, 0, -5), 0.5, nil),
	)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	rayT := core.NewInterval(3, 10)
	hit, isHit := list.Hit(ray, rayT)
	if !isHit {
		t.Fatal("Expected hit on the far sphere")
	}
	if !rayT.Contains(hit.T) {
		t.Errorf("Hit t=%f outside interval [%f, %f]", hit.T, rayT.Min, rayT.Max)
	}
	if math.Abs(hit.T-4.5) > 1e-9 {
		t.Errorf("Expected t=4.5, got t=%f", hit.T)
	}

	if _, isHit := list.Hit(ray, core.NewInterval(6, 10)); isHit {
		t.Error("Expected miss beyond both spheres")
	}
}

func TestHittableList_Nested(t *testing.T) {
	inner := NewHittableList(NewSphere(core.NewVec3(0, 0, -2), 0.5, nil))
	outer := NewHittableList(inner, NewSphere(core.NewVec3(0, 0, -5), 0.5, nil))

	hit, isHit := outer.Hit(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1)), hitRange)
	if !isHit || math.Abs(hit.T-1.5) > 1e-9 {
		t.Errorf("Nested list should report the closest hit at t=1.5, got %v", hit)
	}
}

func TestHittableList_AddClear(t *testing.T) {
	list := NewHittableList()
	list.Add(NewSphere(core.NewVec3(0, 0, -1), 0.5, nil), NewSphere(core.NewVec3(1, 0, -1), 0.5, nil))
	if list.Len() != 2 {
		t.Errorf("Expected 2 objects, got %d", list.Len())
	}
	list.Clear()
	if list.Len() != 0 {
		t.Errorf("Expected empty list after Clear, got %d", list.Len())
	}
}
