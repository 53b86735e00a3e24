package lights

import "github.com/df07/go-phong-raytracer/pkg/core"

// AmbientLight is the scene-wide light that reaches every point equally
type AmbientLight struct {
	light
}

// NoAmbient is a black ambient light
var NoAmbient = AmbientLight{}

// NewAmbientLight creates an ambient light of color iA attenuated by kA
func NewAmbientLight(iA core.Color, kA core.Coefficients) AmbientLight {
	return AmbientLight{light{intensity: iA.ScaleBy(kA)}}
}
