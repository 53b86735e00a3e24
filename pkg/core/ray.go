package core

import "fmt"

// Ray represents a ray with an origin and a unit direction
type Ray struct {
	Origin    Vec3
	Direction Vec3
}

// NewRay creates a new ray, normalizing the direction
func NewRay(origin, direction Vec3) (Ray, error) {
	dir, err := direction.Normalize()
	if err != nil {
		return Ray{}, fmt.Errorf("ray from %v: %w", origin, err)
	}
	return Ray{Origin: origin, Direction: dir}, nil
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Vec3 {
	if IsZero(t) {
		return r.Origin
	}
	return r.Origin.Add(r.Direction.Multiply(t))
}

// ClosestPoint returns the point nearest to the ray origin.
// Ties keep the first point; ok is false for an empty list.
func (r Ray) ClosestPoint(points []Vec3) (closest Vec3, ok bool) {
	best := 0.0
	for i, p := range points {
		d := r.Origin.DistanceSquared(p)
		if i == 0 || d < best {
			best = d
			closest = p
		}
	}
	return closest, len(points) > 0
}

// String formats the ray for debugging
func (r Ray) String() string {
	return fmt.Sprintf("ray %v -> %v", r.Origin, r.Direction)
}
