package geometry

import (
	"testing"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

func TestGeoPoint_Equality(t *testing.T) {
	s1 := mustSphere(t, core.Origin, 1)
	s2 := mustSphere(t, core.Origin, 1)
	p := core.NewVec3(1, 0, 0)

	if (GeoPoint{s1, p}) != (GeoPoint{s1, p}) {
		t.Error("Expected equal GeoPoints for same geometry and point")
	}
	if (GeoPoint{s1, p}) == (GeoPoint{s2, p}) {
		t.Error("Expected different GeoPoints for distinct geometries")
	}
	if (GeoPoint{s1, p}) == (GeoPoint{s1, core.NewVec3(0, 1, 0)}) {
		t.Error("Expected different GeoPoints for distinct points")
	}
}

func TestClosestGeoPoint(t *testing.T) {
	s := mustSphere(t, core.Origin, 1)
	ray := newRay(t, core.NewVec3(1, 1, 1), core.NewVec3(2, 2, 2))
	far := GeoPoint{s, core.NewVec3(3, 4, 5)}
	mid := GeoPoint{s, core.NewVec3(3, 2, 3)}
	near := GeoPoint{s, core.NewVec3(1, 2, 1)}

	for _, hits := range [][]GeoPoint{
		{far, near, mid},
		{near, far, mid},
		{mid, far, near},
	} {
		got, ok := ClosestGeoPoint(ray, hits)
		if !ok || got != near {
			t.Errorf("Expected %v from %v, got %v", near, hits, got)
		}
	}

	if _, ok := ClosestGeoPoint(ray, nil); ok {
		t.Error("Expected no closest point for no hits")
	}
}

func TestPoints(t *testing.T) {
	s := mustSphere(t, core.Origin, 1)
	hits := []GeoPoint{{s, core.NewVec3(1, 0, 0)}, {s, core.NewVec3(-1, 0, 0)}}

	points := Points(hits)
	if len(points) != 2 || points[0] != hits[0].Point || points[1] != hits[1].Point {
		t.Errorf("Expected points of hits, got %v", points)
	}
	if Points(nil) != nil {
		t.Error("Expected nil points for no hits")
	}
}
