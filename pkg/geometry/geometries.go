package geometry

import "github.com/df07/go-phong-raytracer/pkg/core"

// Geometries is a composite of intersectables queried as one
type Geometries struct {
	items []Intersectable
}

// NewGeometries creates a composite from the given members; nil members are skipped
func NewGeometries(items ...Intersectable) *Geometries {
	g := &Geometries{}
	g.Add(items...)
	return g
}

// Add appends members to the composite; nil members are skipped
func (g *Geometries) Add(items ...Intersectable) {
	for _, item := range items {
		if item != nil {
			g.items = append(g.items, item)
		}
	}
}

// Len returns the number of members
func (g *Geometries) Len() int {
	return len(g.items)
}

// FindIntersections queries every member and returns all hits in member order,
// without deduplication. Nil means no member was hit.
func (g *Geometries) FindIntersections(ray core.Ray) []GeoPoint {
	var hits []GeoPoint
	for _, item := range g.items {
		hits = append(hits, item.FindIntersections(ray)...)
	}
	return hits
}
