package geometry

import (
	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/material"
)

// Intersectable is anything a ray can be tested against
type Intersectable interface {
	// FindIntersections returns every forward hit (t > 0) along the ray,
	// ordered by the primitive's own hit order. Nil means no hit.
	FindIntersections(ray core.Ray) []GeoPoint
}

// Geometry is a primitive surface that can be hit and shaded
type Geometry interface {
	Intersectable

	// Normal returns the unit normal at a point on the surface,
	// or the zero vector where the normal is undefined
	Normal(point core.Vec3) core.Vec3

	Emission() core.Color
	Material() material.Material
}

// surface implements the appearance half of Geometry for embedding in primitives
type surface struct {
	appearance material.Surface
}

func newSurface(s material.Surface) (surface, error) {
	if err := s.Material.Validate(); err != nil {
		return surface{}, err
	}
	return surface{appearance: s}, nil
}

// Emission returns the light emitted by the surface itself
func (s surface) Emission() core.Color {
	return s.appearance.Emission
}

// Material returns the surface reflectance
func (s surface) Material() material.Material {
	return s.appearance.Material
}

// unitOrZero normalizes v, returning the zero vector when v has no direction
func unitOrZero(v core.Vec3) core.Vec3 {
	u, err := v.Normalize()
	if err != nil {
		return core.Vec3{}
	}
	return u
}
