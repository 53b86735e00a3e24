package lights

import (
	"fmt"
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// SpotLight is a point light that only shines into the half-space its beam faces,
// strongest along the beam and sharpened by the narrow-beam exponent
type SpotLight struct {
	PointLight
	direction  core.Vec3
	narrowBeam float64
}

// NewSpotLight creates a spot light; a narrowBeam of 1 gives plain cosine falloff
func NewSpotLight(intensity core.Color, position, direction core.Vec3, attenuation Attenuation, narrowBeam float64) (*SpotLight, error) {
	dir, err := direction.Normalize()
	if err != nil {
		return nil, fmt.Errorf("spot light: %w", err)
	}
	if narrowBeam < 0 {
		return nil, fmt.Errorf("%w: narrow beam %g must not be negative", core.ErrInvalidGeometry, narrowBeam)
	}
	point, err := NewPointLight(intensity, position, attenuation)
	if err != nil {
		return nil, err
	}
	return &SpotLight{PointLight: *point, direction: dir, narrowBeam: narrowBeam}, nil
}

func (s *SpotLight) Type() LightType {
	return LightTypeSpot
}

// IntensityAt scales the point-light intensity by cos^narrowBeam of the angle
// off the beam, and is black behind the light
func (s *SpotLight) IntensityAt(point core.Vec3) core.Color {
	cos := s.DirectionAt(point).Dot(s.direction)
	if cos < 0 {
		return core.Black
	}
	return s.PointLight.IntensityAt(point).Scale(math.Pow(cos, s.narrowBeam))
}
