package material

import (
	"math/rand"
	"testing"

	"spheretrace/pkg/core"
)

func TestLambertian_AlwaysScatters(t *testing.T) {
	albedo := core.NewVec3(0.5, 0.4, 0.3)
	lambertian := NewLambertian(albedo)
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))

	rayIn := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))
	hit := core.HitRecord{
		Point:     core.NewVec3(0, 0, 0),
		Normal:    core.NewVec3(0, 1, 0),
		FrontFace: true,
		Material:  lambertian,
	}

	for i := 0; i < 100; i++ {
		scatter, didScatter := lambertian.Scatter(rayIn, hit, sampler)
		if !didScatter {
			t.Fatalf("Lambertian absorbed the ray on iteration %d", i)
		}
		if !scatter.Attenuation.Equals(albedo) {
			t.Fatalf("Attenuation %v should equal albedo %v", scatter.Attenuation, albedo)
		}
		if scatter.Scattered.Direction.Dot(hit.Normal) < 0 {
			t.Fatalf("Scattered direction %v below surface", scatter.Scattered.Direction)
		}
		if !scatter.Scattered.Origin.Equals(hit.Point) {
			t.Fatalf("Scattered ray should originate at the hit point")
		}
	}
}

func TestLambertian_Albedo(t *testing.T) {
	albedo := core.NewVec3(0.8, 0.8, 0.0)
	lambertian := NewLambertian(albedo)

	var reflector core.Reflector = lambertian
	if !reflector.Albedo().Equals(albedo) {
		t.Errorf("Albedo() returned %v, want %v", reflector.Albedo(), albedo)
	}
}
