package integrator

import (
	"math"

	"spheretrace/pkg/core"
	"spheretrace/pkg/lights"
)

// Epsilon offsets intersection intervals to suppress self-intersection
// ("shadow acne") at surfaces.
const Epsilon = 0.001

// PathTracer is a recursive, depth-bounded Monte Carlo estimator of the
// radiance along a ray. Each bounce combines a direct term (shadow rays
// toward every point light) with an indirect term (the material's
// stochastic scatter). The direct term is added alongside the full
// indirect scatter on purpose, matching the reference renderer's transport
// combination rule.
type PathTracer struct {
	world       core.Hittable
	lights      []lights.PointLight
	topColor    core.Vec3
	bottomColor core.Vec3
	maxDepth    int
}

// NewPathTracer creates a path tracer over a fixed, read-only scene
func NewPathTracer(world core.Hittable, pointLights []lights.PointLight, topColor, bottomColor core.Vec3, maxDepth int) *PathTracer {
	return &PathTracer{
		world:       world,
		lights:      pointLights,
		topColor:    topColor,
		bottomColor: bottomColor,
		maxDepth:    maxDepth,
	}
}

// MaxDepth returns the configured bounce limit
func (pt *PathTracer) MaxDepth() int {
	return pt.maxDepth
}

// RayColor estimates the radiance arriving along a camera ray
func (pt *PathTracer) RayColor(ray core.Ray, sampler core.Sampler) core.Vec3 {
	return pt.rayColor(ray, sampler, pt.maxDepth)
}

func (pt *PathTracer) rayColor(ray core.Ray, sampler core.Sampler, depth int) core.Vec3 {
	// Truncating the path at the depth bound is a hard bias; past it no
	// more light is gathered.
	if depth <= 0 {
		return core.Vec3{}
	}

	hit, isHit := pt.world.Hit(ray, Epsilon, math.Inf(1))
	if !isHit {
		return pt.backgroundGradient(ray)
	}

	direct := pt.directIllumination(hit)

	indirect := core.Vec3{}
	if scatter, didScatter := hit.Material.Scatter(ray, *hit, sampler); didScatter {
		indirect = scatter.Attenuation.MultiplyVec(pt.rayColor(scatter.Scattered, sampler, depth-1))
	}

	return direct.Add(indirect)
}

// directIllumination accumulates the contribution of every unoccluded
// point light at the hit point: albedo * intensity/dist² * max(0, n·l).
func (pt *PathTracer) directIllumination(hit *core.HitRecord) core.Vec3 {
	direct := core.Vec3{}

	for _, light := range pt.lights {
		toLight := light.Position.Subtract(hit.Point)
		dist2 := toLight.LengthSquared()
		lightDir := toLight.Normalize()

		// Shadow ray bounded just short of the light so the light
		// position itself never counts as an occluder.
		shadowRay := core.NewRay(hit.Point, lightDir)
		if _, occluded := pt.world.Hit(shadowRay, Epsilon, math.Sqrt(dist2)-Epsilon); occluded {
			continue
		}

		nDotL := math.Max(0, hit.Normal.Dot(lightDir))
		falloff := light.Intensity.Divide(dist2)
		direct = direct.Add(materialAlbedo(hit.Material).MultiplyVec(falloff).Multiply(nDotL))
	}

	return direct
}

// backgroundGradient returns the sky color for a ray that misses all
// geometry: a vertical lerp between white and sky blue.
func (pt *PathTracer) backgroundGradient(ray core.Ray) core.Vec3 {
	unitDirection := ray.Direction.Normalize()
	t := 0.5 * (unitDirection.Y + 1.0)
	return core.Lerp(pt.bottomColor, pt.topColor, t)
}

// materialAlbedo returns the material's reflectance for the direct term,
// defaulting to white for materials without one (e.g. dielectrics).
func materialAlbedo(m core.Material) core.Vec3 {
	if r, ok := m.(core.Reflector); ok {
		return r.Albedo()
	}
	return core.NewVec3(1, 1, 1)
}
