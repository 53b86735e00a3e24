package core

import "errors"

var (
	// ErrZeroVector is returned when an operation would need a direction from a zero-length vector
	ErrZeroVector = errors.New("zero vector has no direction")

	// ErrInvalidGeometry is returned for degenerate primitives and view-plane sizes
	ErrInvalidGeometry = errors.New("invalid geometry")

	// ErrInvalidCamera is returned when the camera basis is not orthogonal
	ErrInvalidCamera = errors.New("invalid camera")

	// ErrMissingConfiguration is returned when rendering is requested without a complete setup
	ErrMissingConfiguration = errors.New("missing configuration")
)
