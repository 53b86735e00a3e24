package scene

import (
	"github.com/df07/go-phong-raytracer/pkg/camera"
	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/lights"
	"github.com/df07/go-phong-raytracer/pkg/material"
)

// NewSphereScene creates a single shiny blue sphere lit by an orange spot light
func NewSphereScene() (*Preset, error) {
	s := New("sphere")
	s.Ambient = lights.NewAmbientLight(core.NewColor(255, 255, 255), core.Uniform(0.05))

	a := newAssembler(s)
	a.add(geometry.NewSphere(core.NewVec3(0, 0, -50), 50,
		material.NewSurface(core.NewColor(0, 0, 127.5), material.NewMaterial(0.5, 0.5, 100))))
	a.light(lights.NewSpotLight(core.NewColor(800, 500, 0), core.NewVec3(-50, -50, 50), core.NewVec3(1, 1, -2),
		lights.Attenuation{Constant: 1, Linear: 0.001, Quadratic: 0.0001}, 1))

	if err := a.err(); err != nil {
		return nil, err
	}

	return &Preset{
		Scene:  s,
		Camera: farCamera(150),
		Width:  500,
		Height: 500,
	}, nil
}

// farCamera looks down -Z from far away with a square view plane
func farCamera(size float64) camera.Config {
	return camera.Config{
		Position: core.NewVec3(0, 0, 1000),
		To:       core.NewVec3(0, 0, -1),
		Up:       core.NewVec3(0, 1, 0),
		Width:    size,
		Height:   size,
		Distance: 1000,
	}
}
