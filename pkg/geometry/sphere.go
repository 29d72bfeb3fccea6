package geometry

import (
	"math"

	"spheretrace/pkg/core"
)

// Sphere represents a sphere shape. A negative radius produces an inverted
// shell whose normals point inward, used to model hollow glass bubbles.
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material core.Material
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, material core.Material) *Sphere {
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Material: material,
	}
}

// Hit tests if a ray intersects with the sphere by solving
// |O + tD - C|² = r² for t.
func (s *Sphere) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	oc := ray.Origin.Subtract(s.Center)

	a := ray.Direction.Dot(ray.Direction)
	halfB := oc.Dot(ray.Direction)
	c := oc.LengthSquared() - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return nil, false
	}
	sqrtD := math.Sqrt(discriminant)

	// Try the nearer root first, fall back to the farther one
	root := (-halfB - sqrtD) / a
	if root < tMin || root > tMax {
		root = (-halfB + sqrtD) / a
		if root < tMin || root > tMax {
			return nil, false
		}
	}

	hit := &core.HitRecord{
		T:        root,
		Point:    ray.At(root),
		Material: s.Material,
	}

	// Dividing by the (possibly negative) radius flips the normal for
	// inverted shells.
	outwardNormal := hit.Point.Subtract(s.Center).Divide(s.Radius)
	hit.SetFaceNormal(ray, outwardNormal)

	return hit, true
}
