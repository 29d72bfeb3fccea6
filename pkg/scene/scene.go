package scene

import (
	"spheretrace/pkg/core"
	"spheretrace/pkg/geometry"
	"spheretrace/pkg/lights"
	"spheretrace/pkg/material"
	"spheretrace/pkg/renderer"
)

// Scene is a fixed assembly of geometry, materials and point lights.
// It is constructed once before rendering and read-only afterwards.
type Scene struct {
	CameraConfig renderer.CameraConfig
	World        *geometry.HittableList
	Lights       []lights.PointLight
	TopColor     core.Vec3 // Sky color at the top of the background gradient
	BottomColor  core.Vec3 // Sky color at the bottom of the background gradient
}

// GetCameraConfig implements renderer.Scene
func (s *Scene) GetCameraConfig() renderer.CameraConfig {
	return s.CameraConfig
}

// GetWorld implements renderer.Scene
func (s *Scene) GetWorld() core.Hittable {
	return s.World
}

// GetLights implements renderer.Scene
func (s *Scene) GetLights() []lights.PointLight {
	return s.Lights
}

// GetBackgroundColors implements renderer.Scene
func (s *Scene) GetBackgroundColors() (topColor, bottomColor core.Vec3) {
	return s.TopColor, s.BottomColor
}

// NewSimpleScene creates the reference scene: a large ground sphere, a
// diffuse sphere, a hollow glass sphere (outer shell plus inverted inner
// shell) and a metal sphere, lit by one point light.
func NewSimpleScene() *Scene {
	world := geometry.NewHittableList()

	materialGround := material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0))
	materialCenter := material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5))
	materialGlass := material.NewDielectric(1.5)
	materialMetal := material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.0)

	world.Add(geometry.NewSphere(core.NewVec3(0.0, -100.5, -1.0), 100.0, materialGround))
	world.Add(geometry.NewSphere(core.NewVec3(0.0, 0.0, -1.0), 0.5, materialCenter))
	world.Add(geometry.NewSphere(core.NewVec3(-1.0, 0.0, -1.0), 0.5, materialGlass))
	// Negative radius turns the inner shell inside out, making the glass
	// sphere hollow.
	world.Add(geometry.NewSphere(core.NewVec3(-1.0, 0.0, -1.0), -0.45, materialGlass))
	world.Add(geometry.NewSphere(core.NewVec3(1.0, 0.0, -1.0), 0.5, materialMetal))

	return &Scene{
		CameraConfig: DefaultCameraConfig(),
		World:        world,
		Lights: []lights.PointLight{
			lights.NewPointLight(core.NewVec3(5, 5, -2), core.NewVec3(6.0, 6.0, 6.0)),
		},
		TopColor:    core.NewVec3(0.5, 0.7, 1.0),
		BottomColor: core.NewVec3(1.0, 1.0, 1.0),
	}
}

// DefaultCameraConfig returns the reference scene's camera
func DefaultCameraConfig() renderer.CameraConfig {
	return renderer.CameraConfig{
		LookFrom:    core.NewVec3(3, 3, 2),
		LookAt:      core.NewVec3(0, 0, -1),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        20.0,
		AspectRatio: 16.0 / 9.0,
	}
}
