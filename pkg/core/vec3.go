package core

import (
	"fmt"
	"math"
)

// Vec3 represents a 3D vector. It is used for positions, directions and
// linear-light RGB colors alike.
type Vec3 struct {
	X, Y, Z float64
}

// NewVec3 creates a new Vec3
func NewVec3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Add returns the sum of two vectors
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Subtract returns the difference of two vectors
func (v Vec3) Subtract(other Vec3) Vec3 {
	return Vec3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Negate returns the negative of the vector
func (v Vec3) Negate() Vec3 {
	return Vec3{-v.X, -v.Y, -v.Z}
}

// Multiply returns the vector scaled by a scalar
func (v Vec3) Multiply(scalar float64) Vec3 {
	return Vec3{v.X * scalar, v.Y * scalar, v.Z * scalar}
}

// Divide returns the vector scaled by 1/scalar
func (v Vec3) Divide(scalar float64) Vec3 {
	return v.Multiply(1.0 / scalar)
}

// MultiplyVec returns component-wise (Hadamard) multiplication of two
// vectors, used to tint light by an albedo.
func (v Vec3) MultiplyVec(other Vec3) Vec3 {
	return Vec3{v.X * other.X, v.Y * other.Y, v.Z * other.Z}
}

// Length returns the magnitude of the vector
func (v Vec3) Length() float64 {
	return math.Sqrt(v.LengthSquared())
}

// LengthSquared returns the squared magnitude of the vector
func (v Vec3) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Dot returns the dot product of two vectors
func (v Vec3) Dot(other Vec3) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product of two vectors
func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

// Normalize returns a unit vector in the same direction. Normalizing a
// zero vector indicates a geometry or camera construction bug, so it
// panics rather than propagating NaNs.
func (v Vec3) Normalize() Vec3 {
	length := v.Length()
	if length == 0 {
		panic(fmt.Sprintf("cannot normalize zero-length vector %+v", v))
	}
	return Vec3{v.X / length, v.Y / length, v.Z / length}
}

// Reflect returns the reflection of v about a unit normal n:
// r = v - 2*(v·n)*n
func (v Vec3) Reflect(n Vec3) Vec3 {
	return v.Subtract(n.Multiply(2 * v.Dot(n)))
}

// Refract computes the refracted direction of v about unit normal n using
// Snell's law, with etaRatio the ratio of refractive indices. The second
// return value is false when refraction is geometrically impossible
// (total internal reflection); that is an expected outcome, not an error.
func (v Vec3) Refract(n Vec3, etaRatio float64) (Vec3, bool) {
	cosTheta := math.Min(v.Negate().Dot(n), 1.0)
	rOutPerp := v.Add(n.Multiply(cosTheta)).Multiply(etaRatio)
	k := 1.0 - rOutPerp.LengthSquared()
	if k < 0 {
		return Vec3{}, false
	}
	rOutParallel := n.Multiply(-math.Sqrt(k))
	return rOutPerp.Add(rOutParallel), true
}

// Clamp returns a vector with components clamped to [minVal, maxVal]
func (v Vec3) Clamp(minVal, maxVal float64) Vec3 {
	return Vec3{
		X: math.Max(minVal, math.Min(maxVal, v.X)),
		Y: math.Max(minVal, math.Min(maxVal, v.Y)),
		Z: math.Max(minVal, math.Min(maxVal, v.Z)),
	}
}

// GammaCorrect applies gamma correction to color values
func (v Vec3) GammaCorrect(gamma float64) Vec3 {
	invGamma := 1.0 / gamma
	return Vec3{
		X: math.Pow(v.X, invGamma),
		Y: math.Pow(v.Y, invGamma),
		Z: math.Pow(v.Z, invGamma),
	}
}

// Luminance returns the Rec. 709 luminance of an RGB color
func (v Vec3) Luminance() float64 {
	return 0.2126*v.X + 0.7152*v.Y + 0.0722*v.Z
}

// Equals reports whether two vectors are exactly equal
func (v Vec3) Equals(other Vec3) bool {
	return v.X == other.X && v.Y == other.Y && v.Z == other.Z
}

// Lerp linearly interpolates between a and b: (1-t)*a + t*b
func Lerp(a, b Vec3, t float64) Vec3 {
	return a.Multiply(1.0 - t).Add(b.Multiply(t))
}

// Ray represents a ray with an origin and direction
type Ray struct {
	Origin    Vec3
	Direction Vec3
}

// NewRay creates a new ray
func NewRay(origin, direction Vec3) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Multiply(t))
}
