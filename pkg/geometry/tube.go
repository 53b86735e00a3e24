package geometry

import (
	"fmt"
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/material"
)

// Tube represents an infinite cylinder around an axis ray
type Tube struct {
	surface
	radial
	axis core.Ray
}

// NewTube creates a new tube; the radius must be positive
func NewTube(axis core.Ray, radius float64, s material.Surface) (*Tube, error) {
	dir, err := axis.Direction.Normalize()
	if err != nil {
		return nil, fmt.Errorf("%w: tube axis: %w", core.ErrInvalidGeometry, err)
	}
	axis.Direction = dir

	r, err := newRadial(radius)
	if err != nil {
		return nil, err
	}
	surf, err := newSurface(s)
	if err != nil {
		return nil, err
	}
	return &Tube{surface: surf, radial: r, axis: axis}, nil
}

// Axis returns the tube axis
func (tb *Tube) Axis() core.Ray {
	return tb.axis
}

// Normal projects the point onto the axis and returns the unit vector from
// the projection to the point
func (tb *Tube) Normal(point core.Vec3) core.Vec3 {
	t := tb.axis.Direction.Dot(point.Subtract(tb.axis.Origin))
	return unitOrZero(point.Subtract(tb.axis.At(t)))
}

// FindIntersections returns the forward hits with the tube wall, closer first.
// Rays parallel to the axis and tangent rays do not hit.
func (tb *Tube) FindIntersections(ray core.Ray) []GeoPoint {
	// Work with the components perpendicular to the axis:
	// |dPerp*t + deltaPerp|² = r²
	v := tb.axis.Direction
	delta := ray.Origin.Subtract(tb.axis.Origin)
	dv := ray.Direction.Dot(v)
	deltaV := delta.Dot(v)

	a := core.AlignZero(1 - dv*dv) // |D|² = 1 for a ray direction
	if a == 0 {
		return nil
	}
	halfB := delta.Dot(ray.Direction) - deltaV*dv
	c := delta.LengthSquared() - deltaV*deltaV - tb.radiusSquared

	discriminant := core.AlignZero(halfB*halfB - a*c)
	if discriminant <= 0 {
		return nil
	}

	sqrtD := math.Sqrt(discriminant)
	t1 := core.AlignZero((-halfB - sqrtD) / a)
	t2 := core.AlignZero((-halfB + sqrtD) / a)

	if t1 > 0 {
		return []GeoPoint{
			{Geometry: tb, Point: ray.At(t1)},
			{Geometry: tb, Point: ray.At(t2)},
		}
	}
	if t2 > 0 {
		return []GeoPoint{{Geometry: tb, Point: ray.At(t2)}}
	}
	return nil
}
