package material

import (
	"fmt"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// Material holds the Phong reflectance of a surface
type Material struct {
	KD        core.Coefficients // Diffuse reflection coefficient
	KS        core.Coefficients // Specular reflection coefficient
	Shininess int               // Specular exponent
}

// NewMaterial creates a material with uniform diffuse and specular coefficients
func NewMaterial(kd, ks float64, shininess int) Material {
	return Material{
		KD:        core.Uniform(kd),
		KS:        core.Uniform(ks),
		Shininess: shininess,
	}
}

// Validate rejects negative shininess exponents
func (m Material) Validate() error {
	if m.Shininess < 0 {
		return fmt.Errorf("shininess %d must not be negative: %w", m.Shininess, core.ErrInvalidGeometry)
	}
	return nil
}

// Surface is the appearance of a geometry: its own emitted light and its material.
// The zero value is a black, non-reflective surface.
type Surface struct {
	Emission core.Color
	Material Material
}

// NewSurface creates a surface from an emission color and a material
func NewSurface(emission core.Color, material Material) Surface {
	return Surface{Emission: emission, Material: material}
}
