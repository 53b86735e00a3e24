package geometry

import (
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/material"
)

// Sphere represents a sphere shape
type Sphere struct {
	surface
	radial
	center core.Vec3
}

// NewSphere creates a new sphere; the radius must be positive
func NewSphere(center core.Vec3, radius float64, s material.Surface) (*Sphere, error) {
	r, err := newRadial(radius)
	if err != nil {
		return nil, err
	}
	surf, err := newSurface(s)
	if err != nil {
		return nil, err
	}
	return &Sphere{surface: surf, radial: r, center: center}, nil
}

// Center returns the sphere center
func (s *Sphere) Center() core.Vec3 {
	return s.center
}

// Normal returns the outward unit normal at a point on the sphere
func (s *Sphere) Normal(point core.Vec3) core.Vec3 {
	return unitOrZero(point.Subtract(s.center))
}

// FindIntersections returns the forward hits with the sphere, closer first.
// A tangent ray does not hit.
func (s *Sphere) FindIntersections(ray core.Ray) []GeoPoint {
	u := s.center.Subtract(ray.Origin)

	// Ray starts at the center: exactly one hit, one radius away
	if u.IsZero() {
		return []GeoPoint{{Geometry: s, Point: ray.At(s.radius)}}
	}

	// Projection of u on the ray and squared distance from the center to the ray
	tm := ray.Direction.Dot(u)
	dSquared := u.LengthSquared()
	if !core.IsZero(tm) {
		dSquared -= tm * tm
	}

	thSquared := core.AlignZero(s.radiusSquared - dSquared)
	if thSquared <= 0 {
		return nil
	}

	th := math.Sqrt(thSquared)
	t1 := core.AlignZero(tm - th)
	t2 := core.AlignZero(tm + th)

	// t1 < t2, so t1 > 0 implies both are in front of the origin
	if t1 > 0 {
		return []GeoPoint{
			{Geometry: s, Point: ray.At(t1)},
			{Geometry: s, Point: ray.At(t2)},
		}
	}
	if t2 > 0 {
		return []GeoPoint{{Geometry: s, Point: ray.At(t2)}}
	}
	return nil
}
