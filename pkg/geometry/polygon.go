package geometry

import (
	"fmt"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/material"
)

// Polygon represents a convex planar polygon. Vertices are ordered along the boundary.
type Polygon struct {
	surface
	vertices []core.Vec3
	plane    *Plane
}

// NewPolygon creates a convex polygon from at least three coplanar vertices.
// Duplicate consecutive vertices, collinear consecutive edges, vertices off the
// plane of the first three and non-convex orderings are rejected.
func NewPolygon(s material.Surface, vertices ...core.Vec3) (*Polygon, error) {
	if len(vertices) < 3 {
		return nil, fmt.Errorf("%w: polygon needs at least 3 vertices, got %d", core.ErrInvalidGeometry, len(vertices))
	}

	plane, err := NewPlaneFromPoints(vertices[0], vertices[1], vertices[2], s)
	if err != nil {
		return nil, fmt.Errorf("polygon: %w", err)
	}

	poly := &Polygon{
		surface:  plane.surface,
		vertices: append([]core.Vec3(nil), vertices...),
		plane:    plane,
	}
	if len(vertices) == 3 {
		return poly, nil
	}
	if err := poly.validate(); err != nil {
		return nil, err
	}
	return poly, nil
}

// validate checks coplanarity and convexity of polygons with more than three vertices
func (p *Polygon) validate() error {
	n := p.plane.normal
	last := len(p.vertices) - 1

	edge1, err := polygonEdge(p.vertices[last-1], p.vertices[last])
	if err != nil {
		return err
	}
	edge2, err := polygonEdge(p.vertices[last], p.vertices[0])
	if err != nil {
		return err
	}

	// The turn between the last and first edge sets the winding every other turn must match
	turn := core.AlignZero(edge1.Cross(edge2).Dot(n))
	if turn == 0 {
		return fmt.Errorf("%w: polygon has collinear edges at vertex %d", core.ErrInvalidGeometry, last)
	}
	positive := turn > 0

	for i := 1; i < len(p.vertices); i++ {
		if !core.IsZero(p.vertices[i].Subtract(p.vertices[0]).Dot(n)) {
			return fmt.Errorf("%w: polygon vertex %d %v is not on the polygon plane", core.ErrInvalidGeometry, i, p.vertices[i])
		}

		edge1 = edge2
		if edge2, err = polygonEdge(p.vertices[i-1], p.vertices[i]); err != nil {
			return err
		}

		turn = core.AlignZero(edge1.Cross(edge2).Dot(n))
		if turn == 0 {
			return fmt.Errorf("%w: polygon has collinear edges at vertex %d", core.ErrInvalidGeometry, i-1)
		}
		if positive != (turn > 0) {
			return fmt.Errorf("%w: polygon vertices must be ordered and convex (vertex %d)", core.ErrInvalidGeometry, i)
		}
	}
	return nil
}

func polygonEdge(from, to core.Vec3) (core.Vec3, error) {
	edge := to.Subtract(from)
	if edge.IsZero() {
		return core.Vec3{}, fmt.Errorf("%w: polygon has duplicate vertex %v: %w", core.ErrInvalidGeometry, from, core.ErrZeroVector)
	}
	return edge, nil
}

// Vertices returns a copy of the polygon vertices
func (p *Polygon) Vertices() []core.Vec3 {
	return append([]core.Vec3(nil), p.vertices...)
}

// Normal returns the polygon's plane normal
func (p *Polygon) Normal(core.Vec3) core.Vec3 {
	return p.plane.normal
}

// FindIntersections returns the hit with the polygon interior, if any
func (p *Polygon) FindIntersections(ray core.Ray) []GeoPoint {
	return p.intersect(ray, p)
}

// intersect hits the polygon plane, then keeps the point only if it lies strictly
// inside every edge. For each edge the cross product of the edge with the vector
// from its start to the point is parallel to the normal; inside means all of
// them face the same way. Points on an edge line or on a vertex give a zero
// term and are misses. owner is the geometry reported in the hit.
func (p *Polygon) intersect(ray core.Ray, owner Geometry) []GeoPoint {
	t, ok := p.plane.intersect(ray)
	if !ok {
		return nil
	}
	point := ray.At(t)
	n := p.plane.normal

	var positive bool
	for i, start := range p.vertices {
		end := p.vertices[(i+1)%len(p.vertices)]
		side := core.AlignZero(n.Dot(end.Subtract(start).Cross(start.Subtract(point))))
		if side == 0 {
			return nil
		}
		if i == 0 {
			positive = side > 0
		} else if positive != (side > 0) {
			return nil
		}
	}
	return []GeoPoint{{Geometry: owner, Point: point}}
}
