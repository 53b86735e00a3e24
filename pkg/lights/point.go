package lights

import (
	"fmt"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// Attenuation holds the constant, linear and quadratic falloff factors of a point light
type Attenuation struct {
	Constant  float64 // kC
	Linear    float64 // kL
	Quadratic float64 // kQ
}

// DefaultAttenuation returns no falloff (kC=1, kL=0, kQ=0)
func DefaultAttenuation() Attenuation {
	return Attenuation{Constant: 1}
}

// factor returns the divisor applied to the intensity at the given distance
func (a Attenuation) factor(distance float64) float64 {
	return a.Constant + a.Linear*distance + a.Quadratic*distance*distance
}

func (a Attenuation) validate() error {
	if a.Constant < 0 || a.Linear < 0 || a.Quadratic < 0 {
		return fmt.Errorf("%w: attenuation %+v must not be negative", core.ErrInvalidGeometry, a)
	}
	if a.Constant == 0 && a.Linear == 0 && a.Quadratic == 0 {
		return fmt.Errorf("%w: attenuation must have a positive factor", core.ErrInvalidGeometry)
	}
	return nil
}

// PointLight radiates from a position in every direction, fading with distance
type PointLight struct {
	light
	position    core.Vec3
	attenuation Attenuation
}

// NewPointLight creates a point light with the given attenuation
func NewPointLight(intensity core.Color, position core.Vec3, attenuation Attenuation) (*PointLight, error) {
	if err := attenuation.validate(); err != nil {
		return nil, err
	}
	return &PointLight{
		light:       light{intensity: intensity},
		position:    position,
		attenuation: attenuation,
	}, nil
}

func (p *PointLight) Type() LightType {
	return LightTypePoint
}

// Position returns the light position
func (p *PointLight) Position() core.Vec3 {
	return p.position
}

// IntensityAt returns I0 / (kC + kL*d + kQ*d²)
func (p *PointLight) IntensityAt(point core.Vec3) core.Color {
	return p.intensity.Reduce(p.attenuation.factor(p.position.Distance(point)))
}

// DirectionAt returns the unit vector from the light to point
func (p *PointLight) DirectionAt(point core.Vec3) core.Vec3 {
	dir, err := point.Subtract(p.position).Normalize()
	if err != nil {
		return core.Vec3{}
	}
	return dir
}
