package geometry

import (
	"errors"
	"testing"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

func TestNewPlaneFromPoints(t *testing.T) {
	plane, err := NewPlaneFromPoints(core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0), core.NewVec3(0, 0, 1), plain)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	n := plane.Normal(core.Origin)
	if !core.IsZero(n.Length() - 1) {
		t.Errorf("Expected unit normal, got %v", n)
	}
	if !core.IsZero(n.Dot(core.NewVec3(-1, 1, 0))) || !core.IsZero(n.Dot(core.NewVec3(0, -1, 1))) {
		t.Errorf("Normal %v is not orthogonal to the plane edges", n)
	}
}

func TestNewPlaneFromPoints_Degenerate(t *testing.T) {
	tests := []struct {
		name       string
		p0, p1, p2 core.Vec3
	}{
		{"first two coincide", core.NewVec3(1, 2, 3), core.NewVec3(1, 2, 3), core.NewVec3(0, 0, 1)},
		{"last two coincide", core.NewVec3(0, 0, 1), core.NewVec3(1, 2, 3), core.NewVec3(1, 2, 3)},
		{"first and last coincide", core.NewVec3(1, 2, 3), core.NewVec3(0, 0, 1), core.NewVec3(1, 2, 3)},
		{"collinear", core.NewVec3(1, 1, 1), core.NewVec3(2, 2, 2), core.NewVec3(3, 3, 3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewPlaneFromPoints(tt.p0, tt.p1, tt.p2, plain)
			if !errors.Is(err, core.ErrInvalidGeometry) || !errors.Is(err, core.ErrZeroVector) {
				t.Errorf("Expected ErrInvalidGeometry and ErrZeroVector, got %v", err)
			}
		})
	}
}

func TestNewPlane_ZeroNormal(t *testing.T) {
	if _, err := NewPlane(core.Origin, core.Vec3{}, plain); !errors.Is(err, core.ErrZeroVector) {
		t.Errorf("Expected ErrZeroVector, got %v", err)
	}
}

func TestPlane_FindIntersections(t *testing.T) {
	// Plane z = 1
	plane, err := NewPlane(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, 2), plain)
	if err != nil {
		t.Fatalf("NewPlane: %v", err)
	}

	tests := []struct {
		name     string
		origin   core.Vec3
		dir      core.Vec3
		expected *core.Vec3
	}{
		{"perpendicular hit", core.NewVec3(1, 1, 0), core.NewVec3(0, 0, 1), &core.Vec3{X: 1, Y: 1, Z: 1}},
		{"oblique hit", core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 1), &core.Vec3{X: 1, Y: 0, Z: 1}},
		{"pointing away", core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1), nil},
		{"parallel outside", core.NewVec3(0, 0, 0), core.NewVec3(1, 1, 0), nil},
		{"parallel inside", core.NewVec3(0, 0, 1), core.NewVec3(1, 1, 0), nil},
		{"starts on plane", core.NewVec3(3, 4, 1), core.NewVec3(0, 1, 1), nil},
		{"starts at reference point", core.NewVec3(0, 0, 1), core.NewVec3(0, 1, 1), nil},
		{"from the back", core.NewVec3(2, 2, 5), core.NewVec3(0, 0, -1), &core.Vec3{X: 2, Y: 2, Z: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hits := plane.FindIntersections(newRay(t, tt.origin, tt.dir))
			if tt.expected == nil {
				if hits != nil {
					t.Errorf("Expected no hit, got %v", hits)
				}
				return
			}
			if len(hits) != 1 {
				t.Fatalf("Expected one hit, got %v", hits)
			}
			assertVecNear(t, *tt.expected, hits[0].Point, "hit point")
		})
	}
}
