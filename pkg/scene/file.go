package scene

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"

	"spheretrace/pkg/core"
	"spheretrace/pkg/geometry"
	"spheretrace/pkg/lights"
	"spheretrace/pkg/material"
)

// File is the YAML scene description format. Materials are declared once
// by name and referenced by spheres, mirroring how material instances are
// shared across geometry at runtime.
type File struct {
	Camera     CameraSection    `yaml:"camera"`
	Background BackgroundSpec   `yaml:"background"`
	Materials  []MaterialSpec   `yaml:"materials"`
	Spheres    []SphereSpec     `yaml:"spheres"`
	Lights     []PointLightSpec `yaml:"lights"`
}

// CameraSection describes the camera in a scene file
type CameraSection struct {
	LookFrom    []float64 `yaml:"lookfrom"`
	LookAt      []float64 `yaml:"lookat"`
	Up          []float64 `yaml:"vup"`
	VFov        float64   `yaml:"vfov"`
	AspectRatio float64   `yaml:"aspect_ratio"`
}

// BackgroundSpec describes the background gradient colors
type BackgroundSpec struct {
	Top    []float64 `yaml:"top"`
	Bottom []float64 `yaml:"bottom"`
}

// MaterialSpec describes a named material
type MaterialSpec struct {
	Name            string    `yaml:"name"`
	Type            string    `yaml:"type"` // lambertian, metal, dielectric
	Albedo          []float64 `yaml:"albedo"`
	Fuzz            float64   `yaml:"fuzz"`
	RefractiveIndex float64   `yaml:"refractive_index"`
}

// SphereSpec describes a sphere bound to a named material
type SphereSpec struct {
	Center   []float64 `yaml:"center"`
	Radius   float64   `yaml:"radius"`
	Material string    `yaml:"material"`
}

// PointLightSpec describes a point light
type PointLightSpec struct {
	Position  []float64 `yaml:"position"`
	Intensity []float64 `yaml:"intensity"`
}

// LoadFile loads a YAML scene description from disk
func LoadFile(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene file: %w", err)
	}
	return Parse(data)
}

// Parse builds a scene from YAML scene description bytes
func Parse(data []byte) (*Scene, error) {
	var file File
	if err := yaml.UnmarshalStrict(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse scene file: %w", err)
	}
	return file.Build()
}

// Build assembles the runtime scene from the file description
func (f *File) Build() (*Scene, error) {
	s := &Scene{
		CameraConfig: DefaultCameraConfig(),
		World:        geometry.NewHittableList(),
		TopColor:     core.NewVec3(0.5, 0.7, 1.0),
		BottomColor:  core.NewVec3(1.0, 1.0, 1.0),
	}

	if err := f.Camera.apply(s); err != nil {
		return nil, err
	}
	if err := f.Background.apply(s); err != nil {
		return nil, err
	}

	// Each named material becomes one shared instance referenced by any
	// number of spheres.
	materials := make(map[string]core.Material, len(f.Materials))
	for _, spec := range f.Materials {
		m, err := spec.build()
		if err != nil {
			return nil, err
		}
		if _, exists := materials[spec.Name]; exists {
			return nil, fmt.Errorf("duplicate material %q", spec.Name)
		}
		materials[spec.Name] = m
	}

	for i, spec := range f.Spheres {
		center, err := toVec3(spec.Center, "sphere center")
		if err != nil {
			return nil, err
		}
		m, ok := materials[spec.Material]
		if !ok {
			return nil, fmt.Errorf("sphere %d references unknown material %q", i, spec.Material)
		}
		s.World.Add(geometry.NewSphere(center, spec.Radius, m))
	}

	for _, spec := range f.Lights {
		position, err := toVec3(spec.Position, "light position")
		if err != nil {
			return nil, err
		}
		intensity, err := toVec3(spec.Intensity, "light intensity")
		if err != nil {
			return nil, err
		}
		s.Lights = append(s.Lights, lights.NewPointLight(position, intensity))
	}

	return s, nil
}

func (c *CameraSection) apply(s *Scene) error {
	var err error
	if c.LookFrom != nil {
		if s.CameraConfig.LookFrom, err = toVec3(c.LookFrom, "camera lookfrom"); err != nil {
			return err
		}
	}
	if c.LookAt != nil {
		if s.CameraConfig.LookAt, err = toVec3(c.LookAt, "camera lookat"); err != nil {
			return err
		}
	}
	if c.Up != nil {
		if s.CameraConfig.Up, err = toVec3(c.Up, "camera vup"); err != nil {
			return err
		}
	}
	if c.VFov != 0 {
		s.CameraConfig.VFov = c.VFov
	}
	if c.AspectRatio != 0 {
		s.CameraConfig.AspectRatio = c.AspectRatio
	}
	return nil
}

func (b *BackgroundSpec) apply(s *Scene) error {
	var err error
	if b.Top != nil {
		if s.TopColor, err = toVec3(b.Top, "background top"); err != nil {
			return err
		}
	}
	if b.Bottom != nil {
		if s.BottomColor, err = toVec3(b.Bottom, "background bottom"); err != nil {
			return err
		}
	}
	return nil
}

func (m *MaterialSpec) build() (core.Material, error) {
	switch m.Type {
	case "lambertian":
		albedo, err := toVec3(m.Albedo, fmt.Sprintf("material %q albedo", m.Name))
		if err != nil {
			return nil, err
		}
		return material.NewLambertian(albedo), nil
	case "metal":
		albedo, err := toVec3(m.Albedo, fmt.Sprintf("material %q albedo", m.Name))
		if err != nil {
			return nil, err
		}
		return material.NewMetal(albedo, m.Fuzz), nil
	case "dielectric":
		if m.RefractiveIndex <= 0 {
			return nil, fmt.Errorf("material %q needs a positive refractive_index", m.Name)
		}
		return material.NewDielectric(m.RefractiveIndex), nil
	default:
		return nil, fmt.Errorf("material %q has unknown type %q", m.Name, m.Type)
	}
}

func toVec3(values []float64, what string) (core.Vec3, error) {
	if len(values) != 3 {
		return core.Vec3{}, fmt.Errorf("%s must have exactly 3 components, got %d", what, len(values))
	}
	return core.NewVec3(values[0], values[1], values[2]), nil
}
