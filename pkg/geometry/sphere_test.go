package geometry

import (
	"math"
	"testing"

	"spheretrace/pkg/core"
)

func TestSphere_Hit_Miss(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, nil)
	ray := core.NewRay(core.NewVec3(2, 0, 0), core.NewVec3(0, 1, 0))

	hit, isHit := sphere.Hit(ray, 0.001, math.Inf(1))
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
			name:           "back face hit from inside",
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
			hit, isHit := sphere.Hit(ray, 0.001, math.Inf(1))

			if !isHit {
				t.Fatal("Expected hit, but got miss")
			}
			if math.Abs(hit.T-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got t=%f", tt.expectedT, hit.T)
			}
			if hit.FrontFace != tt.expectedFront {
				t.Errorf("Expected front face %t, got %t", tt.expectedFront, hit.FrontFace)
			}

			tolerance := 1e-9
			if math.Abs(hit.Normal.X-tt.expectedNormal.X) > tolerance ||
				math.Abs(hit.Normal.Y-tt.expectedNormal.Y) > tolerance ||
				math.Abs(hit.Normal.Z-tt.expectedNormal.Z) > tolerance {
				t.Errorf("Expected normal %v, got %v", tt.expectedNormal, hit.Normal)
			}
		})
	}
}

func TestSphere_Hit_NearestRootDistance(t *testing.T) {
	// A ray aimed at the center from outside hits at distance_to_center - radius
	center := core.NewVec3(0, 0, -5)
	sphere := NewSphere(center, 2.0, nil)

	origin := core.NewVec3(0, 0, 3)
	ray := core.NewRay(origin, center.Subtract(origin).Normalize())

	hit, isHit := sphere.Hit(ray, 0.001, math.Inf(1))
	if !isHit {
		t.Fatal("Expected hit, but got miss")
	}

	expectedT := origin.Subtract(center).Length() - 2.0
	if math.Abs(hit.T-expectedT) > 1e-9 {
		t.Errorf("Expected t=%f (distance to center minus radius), got t=%f", expectedT, hit.T)
	}
}

func TestSphere_Hit_Bounds(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, nil)
	ray := core.NewRay(core.NewVec3(0, 0, 2), core.NewVec3(0, 0, -1))

	// tMax excludes the near root, the far root qualifies
	hit, isHit := sphere.Hit(ray, 0.001, 0.5)
	if isHit {
		t.Errorf("Expected miss due to tMax bound, but got hit at t=%f", hit.T)
	}

	// tMin past the near root falls back to the far root (exit point)
	hit, isHit = sphere.Hit(ray, 1.5, math.Inf(1))
	if !isHit {
		t.Fatal("Expected far-root hit with tMin past the near root")
	}
	if math.Abs(hit.T-3.0) > 1e-9 {
		t.Errorf("Expected far root at t=3, got t=%f", hit.T)
	}

	// Both roots excluded
	_, isHit = sphere.Hit(ray, 3.5, math.Inf(1))
	if isHit {
		t.Error("Expected miss with both roots below tMin")
	}
}

func TestSphere_Hit_NegativeRadiusInvertsNormal(t *testing.T) {
	// A negative radius models an inverted shell: the outward normal
	// points toward the center, so a ray from outside hits a "back face".
	sphere := NewSphere(core.NewVec3(0, 0, 0), -1.0, nil)
	ray := core.NewRay(core.NewVec3(0, 0, 2), core.NewVec3(0, 0, -1))

	hit, isHit := sphere.Hit(ray, 0.001, math.Inf(1))
	if !isHit {
		t.Fatal("Expected hit, but got miss")
	}
	if hit.FrontFace {
		t.Error("Expected back-face hit on an inverted shell")
	}
	// SetFaceNormal still orients the normal against the ray
	if hit.Normal.Dot(ray.Direction) >= 0 {
		t.Errorf("Normal %v should oppose ray direction", hit.Normal)
	}
}

func TestSphere_Hit_EpsilonSuppressesSelfIntersection(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, nil)

	// A ray starting on the surface and leaving the sphere must not
	// re-hit the surface it started on.
	ray := core.NewRay(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, 1))
	hit, isHit := sphere.Hit(ray, 0.001, math.Inf(1))
	if isHit {
		t.Errorf("Expected no self-intersection, got hit at t=%g", hit.T)
	}
}
