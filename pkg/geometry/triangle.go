package geometry

import (
	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/material"
)

// Triangle represents a single triangle defined by three vertices
type Triangle struct {
	Polygon
}

// NewTriangle creates a new triangle from three distinct, non-collinear vertices
func NewTriangle(v0, v1, v2 core.Vec3, s material.Surface) (*Triangle, error) {
	poly, err := NewPolygon(s, v0, v1, v2)
	if err != nil {
		return nil, err
	}
	return &Triangle{Polygon: *poly}, nil
}

// FindIntersections returns the hit with the triangle interior, if any
func (t *Triangle) FindIntersections(ray core.Ray) []GeoPoint {
	return t.intersect(ray, t)
}
