package scene

import (
	"fmt"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/lights"
)

// Scene contains all the elements needed for rendering.
// It is assembled once and only read while rendering.
type Scene struct {
	Name       string
	Background core.Color           // Color of rays that hit nothing
	Ambient    lights.AmbientLight  // Scene-wide ambient light
	Lights     []lights.LightSource // Lights in the scene
	Geometries *geometry.Geometries // Objects in the scene
}

// New creates an empty scene with a black background and no ambient light
func New(name string) *Scene {
	return &Scene{
		Name:       name,
		Background: core.Black,
		Ambient:    lights.NoAmbient,
		Geometries: geometry.NewGeometries(),
	}
}

// AddGeometries adds objects to the scene
func (s *Scene) AddGeometries(items ...geometry.Intersectable) {
	s.Geometries.Add(items...)
}

// AddLights adds light sources to the scene; nil lights are skipped
func (s *Scene) AddLights(sources ...lights.LightSource) {
	for _, l := range sources {
		if l != nil {
			s.Lights = append(s.Lights, l)
		}
	}
}

// Validate checks that the scene can be rendered
func (s *Scene) Validate() error {
	if s == nil || s.Geometries == nil {
		return fmt.Errorf("%w: scene has no geometry collection", core.ErrMissingConfiguration)
	}
	return nil
}
