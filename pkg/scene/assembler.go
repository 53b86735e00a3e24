package scene

import (
	"errors"

	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/lights"
)

// assembler adds constructed objects to a scene, collecting construction errors
// so preset builders can chain constructor calls directly
type assembler struct {
	scene *Scene
	errs  []error
}

func newAssembler(s *Scene) *assembler {
	return &assembler{scene: s}
}

func (a *assembler) add(g geometry.Intersectable, err error) {
	if err != nil {
		a.errs = append(a.errs, err)
		return
	}
	a.scene.AddGeometries(g)
}

func (a *assembler) light(l lights.LightSource, err error) {
	if err != nil {
		a.errs = append(a.errs, err)
		return
	}
	a.scene.AddLights(l)
}

func (a *assembler) err() error {
	return errors.Join(a.errs...)
}
