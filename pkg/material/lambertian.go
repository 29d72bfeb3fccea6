package material

import (
	"spheretrace/pkg/core"
)

// Lambertian represents a perfectly diffuse material
type Lambertian struct {
	albedo core.Vec3
}

// NewLambertian creates a new lambertian material
func NewLambertian(albedo core.Vec3) *Lambertian {
	return &Lambertian{albedo: albedo}
}

// Albedo returns the material's base reflectance
func (l *Lambertian) Albedo() core.Vec3 {
	return l.albedo
}

// Scatter implements cosine-weighted diffuse scattering. The cosine-weighted
// PDF cancels the Lambertian cosine term, so the attenuation is just the
// albedo. Lambertian surfaces never absorb in this design.
func (l *Lambertian) Scatter(rayIn core.Ray, hit core.HitRecord, sampler core.Sampler) (core.ScatterResult, bool) {
	direction := core.SampleCosineHemisphere(hit.Normal, sampler.Get2D())
	scattered := core.NewRay(hit.Point, direction.Normalize())

	return core.ScatterResult{
		Scattered:   scattered,
		Attenuation: l.albedo,
	}, true
}
