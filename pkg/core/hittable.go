package core

// Hittable is anything a ray can intersect. Composite objects such as lists
// implement it too, so a whole scene can be tested as one object.
type Hittable interface {
	// Hit returns the closest intersection with T inside rayT.
	Hit(ray Ray, rayT Interval) (*HitRecord, bool)
}

// Material decides how a ray continues after hitting a surface
type Material interface {
	// Scatter returns the attenuation and the continuing ray, or false if
	// the ray is absorbed.
	Scatter(rayIn Ray, hit HitRecord, sampler Sampler) (ScatterResult, bool)
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Scattered   Ray  // The scattered ray
	Attenuation Vec3 // Color attenuation
}

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	Point     Vec3     // Point of intersection
	Normal    Vec3     // Unit surface normal, always facing the incoming ray
	Material  Material // Material of the hit object, nil for unshaded geometry
	T         float64  // Parameter t along the ray
	FrontFace bool     // Whether ray hit the front face
}

// SetFaceNormal sets the normal vector and determines front/back face.
// outwardNormal is assumed to have unit length.
func (h *HitRecord) SetFaceNormal(ray Ray, outwardNormal Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}
