package geometry

import (
	"errors"
	"math"
	"testing"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

func mustTube(t *testing.T) *Tube {
	t.Helper()
	// Axis along Z through the origin, radius 1
	tube, err := NewTube(newRay(t, core.Origin, core.NewVec3(0, 0, 1)), 1, plain)
	if err != nil {
		t.Fatalf("NewTube: %v", err)
	}
	return tube
}

func TestNewTube_Invalid(t *testing.T) {
	axis := newRay(t, core.Origin, core.NewVec3(0, 0, 1))
	if _, err := NewTube(axis, 0, plain); !errors.Is(err, core.ErrInvalidGeometry) {
		t.Errorf("Expected ErrInvalidGeometry for zero radius, got %v", err)
	}
	if _, err := NewTube(core.Ray{}, 1, plain); !errors.Is(err, core.ErrZeroVector) {
		t.Errorf("Expected ErrZeroVector for a zero axis, got %v", err)
	}
}

func TestTube_Normal(t *testing.T) {
	tube := mustTube(t)

	tests := []struct {
		point    core.Vec3
		expected core.Vec3
	}{
		{core.NewVec3(1, 0, 0), core.NewVec3(1, 0, 0)},
		{core.NewVec3(0, 1, 5), core.NewVec3(0, 1, 0)},
		{core.NewVec3(-math.Sqrt2/2, -math.Sqrt2/2, -3), core.NewVec3(-math.Sqrt2/2, -math.Sqrt2/2, 0)},
	}
	for _, tt := range tests {
		assertVecNear(t, tt.expected, tube.Normal(tt.point), "normal")
	}
}

func TestTube_FindIntersections(t *testing.T) {
	tube := mustTube(t)

	tests := []struct {
		name     string
		origin   core.Vec3
		dir      core.Vec3
		expected []core.Vec3
	}{
		{
			name:     "crosses the tube",
			origin:   core.NewVec3(-3, 0, 2),
			dir:      core.NewVec3(1, 0, 0),
			expected: []core.Vec3{core.NewVec3(-1, 0, 2), core.NewVec3(1, 0, 2)},
		},
		{
			name:     "oblique crossing",
			origin:   core.NewVec3(-3, 0, 0),
			dir:      core.NewVec3(1, 0, 1),
			expected: []core.Vec3{core.NewVec3(-1, 0, 2), core.NewVec3(1, 0, 4)},
		},
		{
			name:     "starts inside",
			origin:   core.NewVec3(0, 0, 7),
			dir:      core.NewVec3(0, 1, 0),
			expected: []core.Vec3{core.NewVec3(0, 1, 7)},
		},
		{
			name:   "misses",
			origin: core.NewVec3(-3, 2, 0),
			dir:    core.NewVec3(1, 0, 0),
		},
		{
			name:   "tangent",
			origin: core.NewVec3(-3, 1, 0),
			dir:    core.NewVec3(1, 0, 0),
		},
		{
			name:   "parallel to axis inside",
			origin: core.NewVec3(0.5, 0, 0),
			dir:    core.NewVec3(0, 0, 1),
		},
		{
			name:   "tube behind ray",
			origin: core.NewVec3(3, 0, 0),
			dir:    core.NewVec3(1, 0, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hits := tube.FindIntersections(newRay(t, tt.origin, tt.dir))
			if len(hits) != len(tt.expected) {
				t.Fatalf("Expected %d hits, got %d: %v", len(tt.expected), len(hits), hits)
			}
			for i, hit := range hits {
				assertVecNear(t, tt.expected[i], hit.Point, "hit point")
			}
		})
	}
}
