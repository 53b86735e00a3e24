package geometry

import (
	"fmt"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/material"
)

// Plane represents an infinite plane defined by a point and a unit normal
type Plane struct {
	surface
	point  core.Vec3
	normal core.Vec3
}

// NewPlane creates a plane through point with the given normal (normalized here)
func NewPlane(point, normal core.Vec3, s material.Surface) (*Plane, error) {
	n, err := normal.Normalize()
	if err != nil {
		return nil, fmt.Errorf("%w: plane normal: %w", core.ErrInvalidGeometry, err)
	}
	surf, err := newSurface(s)
	if err != nil {
		return nil, err
	}
	return &Plane{surface: surf, point: point, normal: n}, nil
}

// NewPlaneFromPoints creates the plane through three points.
// The points must be distinct and not collinear.
func NewPlaneFromPoints(p0, p1, p2 core.Vec3, s material.Surface) (*Plane, error) {
	edge1 := p1.Subtract(p0)
	edge2 := p1.Subtract(p2)
	if edge1.IsZero() || edge2.IsZero() || p2.Subtract(p0).IsZero() {
		return nil, fmt.Errorf("%w: plane through %v, %v, %v has coincident points: %w",
			core.ErrInvalidGeometry, p0, p1, p2, core.ErrZeroVector)
	}

	n, err := edge1.Cross(edge2).Normalize()
	if err != nil {
		return nil, fmt.Errorf("%w: plane through %v, %v, %v has collinear points: %w",
			core.ErrInvalidGeometry, p0, p1, p2, err)
	}
	surf, err := newSurface(s)
	if err != nil {
		return nil, err
	}
	return &Plane{surface: surf, point: p0, normal: n}, nil
}

// Point returns the reference point of the plane
func (p *Plane) Point() core.Vec3 {
	return p.point
}

// Normal returns the plane normal, which is the same everywhere
func (p *Plane) Normal(core.Vec3) core.Vec3 {
	return p.normal
}

// intersect returns the ray parameter of the forward hit with the plane
func (p *Plane) intersect(ray core.Ray) (float64, bool) {
	// Parallel to the plane or contained in it
	nv := core.AlignZero(p.normal.Dot(ray.Direction))
	if nv == 0 {
		return 0, false
	}

	// A ray starting on the plane gives t = 0, which is not a forward hit
	t := core.AlignZero(p.normal.Dot(p.point.Subtract(ray.Origin)) / nv)
	if t <= 0 {
		return 0, false
	}
	return t, true
}

// FindIntersections returns the single forward hit with the plane, if any
func (p *Plane) FindIntersections(ray core.Ray) []GeoPoint {
	t, ok := p.intersect(ray)
	if !ok {
		return nil
	}
	return []GeoPoint{{Geometry: p, Point: ray.At(t)}}
}
