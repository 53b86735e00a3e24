package core

import (
	"fmt"
	"math"
)

// Vec3 represents a 3D point or vector
type Vec3 struct {
	X, Y, Z float64
}

// Origin is the point (0,0,0)
var Origin = Vec3{}

// NewVec3 creates a new Vec3
func NewVec3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// NewDirection creates a vector that must have a direction, failing for (0,0,0)
func NewDirection(x, y, z float64) (Vec3, error) {
	v := Vec3{X: x, Y: y, Z: z}
	if v.IsZero() {
		return Vec3{}, fmt.Errorf("direction %v: %w", v, ErrZeroVector)
	}
	return v, nil
}

// Add returns the sum of two vectors (or a point moved by a vector)
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Subtract returns the difference of two vectors (or the vector between two points)
func (v Vec3) Subtract(other Vec3) Vec3 {
	return Vec3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Multiply returns the vector scaled by a scalar
func (v Vec3) Multiply(scalar float64) Vec3 {
	return Vec3{v.X * scalar, v.Y * scalar, v.Z * scalar}
}

// Negate returns the negative of the vector
func (v Vec3) Negate() Vec3 {
	return Vec3{-v.X, -v.Y, -v.Z}
}

// Length returns the magnitude of the vector
func (v Vec3) Length() float64 {
	return math.Sqrt(v.LengthSquared())
}

// LengthSquared returns the squared magnitude of the vector
func (v Vec3) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Dot returns the dot product of two vectors
func (v Vec3) Dot(other Vec3) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product of two vectors (right-hand rule)
func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

// Normalize returns a unit vector in the same direction.
// A vector with no length has no direction and yields ErrZeroVector.
func (v Vec3) Normalize() (Vec3, error) {
	length := v.Length()
	if IsZero(length) {
		return Vec3{}, fmt.Errorf("normalize %v: %w", v, ErrZeroVector)
	}
	return Vec3{v.X / length, v.Y / length, v.Z / length}, nil
}

// DistanceSquared returns the squared distance between two points
func (v Vec3) DistanceSquared(other Vec3) float64 {
	return v.Subtract(other).LengthSquared()
}

// Distance returns the distance between two points
func (v Vec3) Distance(other Vec3) float64 {
	return math.Sqrt(v.DistanceSquared(other))
}

// IsZero reports whether every coordinate is exactly zero
func (v Vec3) IsZero() bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0
}

// String formats the vector as (x, y, z)
func (v Vec3) String() string {
	return fmt.Sprintf("(%g, %g, %g)", v.X, v.Y, v.Z)
}
