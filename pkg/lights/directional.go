package lights

import (
	"fmt"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// DirectionalLight is a light infinitely far away: constant direction, no falloff
type DirectionalLight struct {
	light
	direction core.Vec3
}

// NewDirectionalLight creates a directional light shining along direction
func NewDirectionalLight(intensity core.Color, direction core.Vec3) (*DirectionalLight, error) {
	dir, err := direction.Normalize()
	if err != nil {
		return nil, fmt.Errorf("directional light: %w", err)
	}
	return &DirectionalLight{light: light{intensity: intensity}, direction: dir}, nil
}

func (d *DirectionalLight) Type() LightType {
	return LightTypeDirectional
}

// IntensityAt returns the same intensity everywhere
func (d *DirectionalLight) IntensityAt(core.Vec3) core.Color {
	return d.intensity
}

// DirectionAt returns the light direction
func (d *DirectionalLight) DirectionAt(core.Vec3) core.Vec3 {
	return d.direction
}
