package material

import (
	"math"

	"spheretrace/pkg/core"
)

// Dielectric represents a transparent material like glass that both
// reflects and refracts. Ideal glass absorbs nothing, so the attenuation
// is always white.
type Dielectric struct {
	RefractiveIndex float64 // e.g. 1.5 for glass
}

// NewDielectric creates a new dielectric material
func NewDielectric(refractiveIndex float64) *Dielectric {
	return &Dielectric{RefractiveIndex: refractiveIndex}
}

// Scatter refracts the ray where Snell's law permits and otherwise
// reflects. When refraction is possible the choice is stochastic with the
// Fresnel reflectance from Schlick's approximation.
func (d *Dielectric) Scatter(rayIn core.Ray, hit core.HitRecord, sampler core.Sampler) (core.ScatterResult, bool) {
	attenuation := core.NewVec3(1.0, 1.0, 1.0)

	// Entering the medium uses 1/n, exiting uses n
	etaRatio := d.RefractiveIndex
	if hit.FrontFace {
		etaRatio = 1.0 / d.RefractiveIndex
	}

	unitDirection := rayIn.Direction.Normalize()
	cosTheta := math.Min(unitDirection.Negate().Dot(hit.Normal), 1.0)

	refracted, canRefract := unitDirection.Refract(hit.Normal, etaRatio)

	var direction core.Vec3
	if !canRefract || Reflectance(cosTheta, d.RefractiveIndex) > sampler.Get1D() {
		// Total internal reflection, or the Fresnel lottery chose reflection
		direction = unitDirection.Reflect(hit.Normal)
	} else {
		direction = refracted
	}

	return core.ScatterResult{
		Scattered:   core.NewRay(hit.Point, direction),
		Attenuation: attenuation,
	}, true
}

// Reflectance calculates Fresnel reflectance using Schlick's approximation:
// R(θ) = R0 + (1-R0)(1-cosθ)^5 with R0 = ((1-n)/(1+n))²
func Reflectance(cosine, refractiveIndex float64) float64 {
	r0 := (1 - refractiveIndex) / (1 + refractiveIndex)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}
