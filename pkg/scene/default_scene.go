package scene

import (
	"github.com/df07/go-phong-raytracer/pkg/camera"
	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/lights"
	"github.com/df07/go-phong-raytracer/pkg/material"
)

// NewDefaultScene creates a scene with one of every primitive on a floor
func NewDefaultScene() (*Preset, error) {
	s := New("default")
	s.Background = core.NewColor(10, 10, 25)
	s.Ambient = lights.NewAmbientLight(core.NewColor(255, 255, 255), core.Uniform(0.08))

	floor := material.NewSurface(core.NewColor(20, 20, 20), material.NewMaterial(0.6, 0.1, 10))
	red := material.NewSurface(core.NewColor(40, 10, 10), material.NewMaterial(0.5, 0.5, 60))
	blue := material.NewSurface(core.NewColor(10, 10, 40), material.NewMaterial(0.4, 0.6, 120))
	green := material.NewSurface(core.NewColor(15, 30, 15), material.NewMaterial(0.5, 0.2, 20))
	amber := material.NewSurface(core.NewColor(30, 25, 10), material.NewMaterial(0.7, 0.1, 5))
	steel := material.NewSurface(core.NewColor(25, 25, 25), material.NewMaterial(0.5, 0.5, 30))

	a := newAssembler(s)

	// Ground
	a.add(geometry.NewPlane(core.NewVec3(0, -1, 0), core.NewVec3(0, 1, 0), floor))

	// Spheres resting on the ground
	a.add(geometry.NewSphere(core.NewVec3(-1.5, 0, -1), 1, red))
	a.add(geometry.NewSphere(core.NewVec3(1.5, -0.25, 0), 0.75, blue))

	// Back wall triangle and a square side panel
	a.add(geometry.NewTriangle(
		core.NewVec3(-4, -1, -6),
		core.NewVec3(4, -1, -6),
		core.NewVec3(0, 4, -6),
		green,
	))
	a.add(geometry.NewPolygon(amber,
		core.NewVec3(-4, -1, -4),
		core.NewVec3(-4, -1, 0),
		core.NewVec3(-4, 2, 0),
		core.NewVec3(-4, 2, -4),
	))

	// Vertical pole
	axis, err := core.NewRay(core.NewVec3(3, 0, -4), core.NewVec3(0, 1, 0))
	if err != nil {
		return nil, err
	}
	a.add(geometry.NewTube(axis, 0.3, steel))

	a.light(lights.NewDirectionalLight(core.NewColor(80, 80, 80), core.NewVec3(-1, -1, -1)))
	a.light(lights.NewPointLight(core.NewColor(300, 250, 200), core.NewVec3(2, 3, 2),
		lights.Attenuation{Constant: 1, Linear: 0.05, Quadratic: 0.01}))
	a.light(lights.NewSpotLight(core.NewColor(400, 400, 600), core.NewVec3(-2, 4, 3), core.NewVec3(1, -2, -2),
		lights.Attenuation{Constant: 1, Linear: 0.02, Quadratic: 0.005}, 4))

	if err := a.err(); err != nil {
		return nil, err
	}

	return &Preset{
		Scene: s,
		Camera: camera.Config{
			Position: core.NewVec3(0, 1, 10),
			To:       core.NewVec3(0, 0, -1),
			Up:       core.NewVec3(0, 1, 0),
			Width:    3.2,
			Height:   1.8,
			Distance: 2,
		},
		Width:  640,
		Height: 360,
	}, nil
}
