package scene

import (
	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/lights"
	"github.com/df07/go-phong-raytracer/pkg/material"
)

// NewTrianglesScene creates two triangles behind a sphere, lit by a point light
func NewTrianglesScene() (*Preset, error) {
	s := New("triangles")
	s.Ambient = lights.NewAmbientLight(core.NewColor(255, 191, 191), core.Uniform(0.15))

	matte := material.NewMaterial(0.8, 0.2, 300)
	p0 := core.NewVec3(-150, -150, -115)
	p1 := core.NewVec3(150, -150, -135)
	p2 := core.NewVec3(75, 75, -150)
	p3 := core.NewVec3(-70, 70, -140)

	a := newAssembler(s)
	a.add(geometry.NewTriangle(p0, p1, p2, material.NewSurface(core.NewColor(20, 20, 20), matte)))
	a.add(geometry.NewTriangle(p0, p3, p2, material.NewSurface(core.NewColor(20, 20, 20), matte)))
	a.add(geometry.NewSphere(core.NewVec3(0, 0, -11), 30,
		material.NewSurface(core.NewColor(100, 30, 30), material.NewMaterial(0.5, 0.5, 30))))
	a.light(lights.NewPointLight(core.NewColor(500, 250, 250), core.NewVec3(30, 10, -100),
		lights.Attenuation{Constant: 1, Linear: 0.0005, Quadratic: 0.0005}))

	if err := a.err(); err != nil {
		return nil, err
	}

	return &Preset{
		Scene:  s,
		Camera: farCamera(200),
		Width:  500,
		Height: 500,
	}, nil
}
