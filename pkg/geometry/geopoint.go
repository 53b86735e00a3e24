package geometry

import (
	"fmt"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// GeoPoint pairs a hit location with the geometry that was hit.
// GeoPoints are transient query results and are compared with ==.
type GeoPoint struct {
	Geometry Geometry
	Point    core.Vec3
}

func (gp GeoPoint) String() string {
	return fmt.Sprintf("GeoPoint{%T at %v}", gp.Geometry, gp.Point)
}

// ClosestGeoPoint returns the hit nearest to the ray origin.
// Ties keep the first hit; ok is false when there are no hits.
func ClosestGeoPoint(ray core.Ray, hits []GeoPoint) (closest GeoPoint, ok bool) {
	best := 0.0
	for i, gp := range hits {
		d := ray.Origin.DistanceSquared(gp.Point)
		if i == 0 || d < best {
			best = d
			closest = gp
		}
	}
	return closest, len(hits) > 0
}

// Points drops the geometry references from a list of hits
func Points(hits []GeoPoint) []core.Vec3 {
	if len(hits) == 0 {
		return nil
	}
	points := make([]core.Vec3, len(hits))
	for i, gp := range hits {
		points[i] = gp.Point
	}
	return points
}
