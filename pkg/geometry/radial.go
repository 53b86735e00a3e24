package geometry

import (
	"fmt"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// radial holds the radius shared by spheres and tubes
type radial struct {
	radius        float64
	radiusSquared float64
}

func newRadial(radius float64) (radial, error) {
	if core.AlignZero(radius) <= 0 {
		return radial{}, fmt.Errorf("%w: radius %g must be positive", core.ErrInvalidGeometry, radius)
	}
	return radial{radius: radius, radiusSquared: radius * radius}, nil
}

// Radius returns the radius
func (r radial) Radius() float64 {
	return r.radius
}
