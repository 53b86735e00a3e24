package lights

import "github.com/df07/go-phong-raytracer/pkg/core"

type LightType string

const (
	LightTypeDirectional LightType = "directional"
	LightTypePoint       LightType = "point"
	LightTypeSpot        LightType = "spot"
)

// LightSource is a light that illuminates surface points from a direction
type LightSource interface {
	Type() LightType

	// IntensityAt returns the light arriving at point
	IntensityAt(point core.Vec3) core.Color

	// DirectionAt returns the unit vector from the light toward point,
	// or the zero vector when the point coincides with the light
	DirectionAt(point core.Vec3) core.Vec3
}

// light holds the base intensity shared by every light source
type light struct {
	intensity core.Color
}

// Intensity returns the base intensity of the light
func (l light) Intensity() core.Color {
	return l.intensity
}
