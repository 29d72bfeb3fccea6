package renderer

import (
	"math"

	"spheretrace/pkg/core"
)

// CameraConfig describes a perspective camera
type CameraConfig struct {
	LookFrom    core.Vec3 // Camera position
	LookAt      core.Vec3 // Point the camera looks at
	Up          core.Vec3 // World up reference for the view basis
	VFov        float64   // Vertical field of view in degrees
	AspectRatio float64   // Width / height
}

// Camera maps normalized image-plane coordinates to world-space rays.
// The view basis is computed once at construction and never mutated, so
// concurrent GetRay calls are safe.
type Camera struct {
	origin          core.Vec3
	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
}

// NewCamera builds the orthonormal view basis from the configuration:
// w = normalize(lookfrom - lookat), u = normalize(up × w), v = w × u.
// The camera looks down -w.
func NewCamera(config CameraConfig) *Camera {
	theta := config.VFov * math.Pi / 180.0
	h := math.Tan(theta / 2)
	viewportHeight := 2.0 * h
	viewportWidth := config.AspectRatio * viewportHeight

	w := config.LookFrom.Subtract(config.LookAt).Normalize()
	u := config.Up.Cross(w).Normalize()
	v := w.Cross(u)

	origin := config.LookFrom
	horizontal := u.Multiply(viewportWidth)
	vertical := v.Multiply(viewportHeight)
	lowerLeftCorner := origin.
		Subtract(horizontal.Multiply(0.5)).
		Subtract(vertical.Multiply(0.5)).
		Subtract(w)

	return &Camera{
		origin:          origin,
		horizontal:      horizontal,
		vertical:        vertical,
		lowerLeftCorner: lowerLeftCorner,
	}
}

// GetRay generates a normalized ray through image-plane coordinates
// (s, t) in [0, 1]
func (c *Camera) GetRay(s, t float64) core.Ray {
	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(s)).
		Add(c.vertical.Multiply(t)).
		Subtract(c.origin)

	return core.NewRay(c.origin, direction.Normalize())
}
