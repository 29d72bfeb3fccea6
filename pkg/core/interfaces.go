package core

// Logger is the minimal logging interface the render packages depend on
type Logger interface {
	Printf(format string, args ...interface{})
}

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	Point     Vec3     // Point of intersection
	Normal    Vec3     // Unit surface normal, oriented against the incoming ray
	T         float64  // Parameter t along the ray
	FrontFace bool     // Whether the ray hit the front face
	Material  Material // Material of the hit object, shared across shapes
}

// SetFaceNormal orients the normal against the incoming ray and records
// whether the hit was on the front face
func (h *HitRecord) SetFaceNormal(ray Ray, outwardNormal Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}

// Hittable is the contract for objects that rays can intersect
type Hittable interface {
	// Hit tests the ray against the object over the interval [tMin, tMax].
	// Returns false when there is no intersection in range.
	Hit(ray Ray, tMin, tMax float64) (*HitRecord, bool)
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Scattered   Ray  // The scattered ray
	Attenuation Vec3 // Color attenuation applied to light along the scattered ray
}

// Material is the contract for surface scattering. Scatter returns false
// when the ray is absorbed.
type Material interface {
	Scatter(rayIn Ray, hit HitRecord, sampler Sampler) (ScatterResult, bool)
}

// Reflector is implemented by materials with an explicit reflectance.
// The integrator uses it for the direct lighting term; materials without
// an albedo are treated as white.
type Reflector interface {
	Albedo() Vec3
}
