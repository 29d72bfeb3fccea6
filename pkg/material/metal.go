package material

import (
	"spheretrace/pkg/core"
)

// Metal represents a metallic material with specular reflection
type Metal struct {
	albedo core.Vec3
	Fuzz   float64 // 0.0 = perfect mirror, 1.0 = very fuzzy
}

// NewMetal creates a new metal material. Fuzz is clamped to [0, 1].
func NewMetal(albedo core.Vec3, fuzz float64) *Metal {
	if fuzz > 1.0 {
		fuzz = 1.0
	}
	if fuzz < 0.0 {
		fuzz = 0.0
	}
	return &Metal{albedo: albedo, Fuzz: fuzz}
}

// Albedo returns the material's base reflectance
func (m *Metal) Albedo() core.Vec3 {
	return m.albedo
}

// Scatter reflects the incoming ray about the normal, perturbed by fuzz.
// If the perturbed direction ends up inside the surface the ray is
// absorbed, which is how rough metal self-shadows.
func (m *Metal) Scatter(rayIn core.Ray, hit core.HitRecord, sampler core.Sampler) (core.ScatterResult, bool) {
	reflected := rayIn.Direction.Normalize().Reflect(hit.Normal)

	if m.Fuzz > 0 {
		perturbation := core.SampleInUnitSphere(sampler).Multiply(m.Fuzz)
		reflected = reflected.Add(perturbation)
	}

	scattered := core.NewRay(hit.Point, reflected)
	if scattered.Direction.Dot(hit.Normal) <= 0 {
		return core.ScatterResult{}, false
	}

	return core.ScatterResult{
		Scattered:   scattered,
		Attenuation: m.albedo,
	}, true
}
