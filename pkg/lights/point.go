package lights

import (
	"spheretrace/pkg/core"
)

// PointLight is a point emitter with a radiant intensity per color channel.
// Received irradiance falls off with the squared distance to the light.
type PointLight struct {
	Position  core.Vec3
	Intensity core.Vec3
}

// NewPointLight creates a new point light
func NewPointLight(position, intensity core.Vec3) PointLight {
	return PointLight{Position: position, Intensity: intensity}
}
