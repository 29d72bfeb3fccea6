package core

import (
	"math"
	"math/rand"
)

// Vec2 holds two sample values in [0, 1)
type Vec2 struct {
	X, Y float64
}

// NewVec2 creates a new Vec2
func NewVec2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Sampler provides random sampling for rendering algorithms. Randomness is
// always drawn from an explicit source rather than the global generator so
// parallel rendering stays reproducible given a seed.
type Sampler interface {
	Get1D() float64
	Get2D() Vec2
	Get3D() Vec3
}

// RandomSampler wraps a standard Go random generator
type RandomSampler struct {
	random *rand.Rand
}

// NewRandomSampler creates a sampler from a Go random generator
func NewRandomSampler(random *rand.Rand) *RandomSampler {
	return &RandomSampler{random: random}
}

// Get1D returns a random float64 in [0, 1)
func (r *RandomSampler) Get1D() float64 {
	return r.random.Float64()
}

// Get2D returns two random float64 values in [0, 1)
func (r *RandomSampler) Get2D() Vec2 {
	return NewVec2(r.random.Float64(), r.random.Float64())
}

// Get3D returns three random float64 values in [0, 1)
func (r *RandomSampler) Get3D() Vec3 {
	return NewVec3(r.random.Float64(), r.random.Float64(), r.random.Float64())
}

// SampleInUnitSphere generates a uniform random point inside the unit ball
// by rejection: draw from [-1,1]³ and retry while the squared length is >= 1.
func SampleInUnitSphere(sampler Sampler) Vec3 {
	for {
		s := sampler.Get3D()
		p := NewVec3(2*s.X-1, 2*s.Y-1, 2*s.Z-1)
		if p.LengthSquared() < 1 {
			return p
		}
	}
}

// SampleUnitVector generates a uniform random direction on the unit sphere
func SampleUnitVector(sampler Sampler) Vec3 {
	return SampleInUnitSphere(sampler).Normalize()
}

// SampleCosineHemisphere generates a cosine-weighted random direction in the
// hemisphere around a unit normal. Cosine weighting makes the sampling PDF
// cancel the Lambertian cosine term, so diffuse attenuation is just albedo.
func SampleCosineHemisphere(normal Vec3, sample Vec2) Vec3 {
	// Local cosine-weighted direction: z = sqrt(1-r2), phi = 2*pi*r1
	phi := 2.0 * math.Pi * sample.X
	r2 := sample.Y
	x := math.Cos(phi) * math.Sqrt(r2)
	y := math.Sin(phi) * math.Sqrt(r2)
	z := math.Sqrt(1.0 - r2)

	u, v, w := OrthonormalBasis(normal)
	return u.Multiply(x).Add(v.Multiply(y)).Add(w.Multiply(z))
}

// OrthonormalBasis builds a right-handed basis (u, v, w) with w = normal.
// The helper axis is world-X unless the normal is nearly aligned with the
// X axis, in which case world-Y is used instead.
func OrthonormalBasis(normal Vec3) (u, v, w Vec3) {
	w = normal
	a := NewVec3(1, 0, 0)
	if math.Abs(w.X) > 0.9 {
		a = NewVec3(0, 1, 0)
	}
	v = w.Cross(a)
	if v.LengthSquared() < 1e-8 {
		// Degenerate helper choice, regenerate with the other axis
		v = w.Cross(NewVec3(1, 0, 0))
	}
	v = v.Normalize()
	u = v.Cross(w)
	return u, v, w
}
