package camera

import (
	"fmt"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// Config describes the camera placement and its view plane
type Config struct {
	Position core.Vec3 // Eye position, origin of every ray
	To       core.Vec3 // Forward direction
	Up       core.Vec3 // Up direction, must be perpendicular to To

	Width    float64 // View plane width
	Height   float64 // View plane height
	Distance float64 // Distance from the eye to the view plane center
}

// Camera casts one ray per pixel through a view plane in front of it
type Camera struct {
	position        core.Vec3
	to, up, right   core.Vec3
	width, height   float64
	distance        float64
	viewPlaneCenter core.Vec3
}

// New validates the configuration and builds the camera basis (right = to × up).
// Unset view plane dimensions yield ErrMissingConfiguration, negative ones ErrInvalidGeometry.
func New(cfg Config) (*Camera, error) {
	to, err := cfg.To.Normalize()
	if err != nil {
		return nil, fmt.Errorf("%w: forward vector: %w", core.ErrInvalidCamera, err)
	}
	up, err := cfg.Up.Normalize()
	if err != nil {
		return nil, fmt.Errorf("%w: up vector: %w", core.ErrInvalidCamera, err)
	}
	if !core.IsZero(to.Dot(up)) {
		return nil, fmt.Errorf("%w: forward %v and up %v must be perpendicular", core.ErrInvalidCamera, cfg.To, cfg.Up)
	}
	right, err := to.Cross(up).Normalize()
	if err != nil {
		return nil, fmt.Errorf("%w: right vector: %w", core.ErrInvalidCamera, err)
	}

	if err := validateViewPlane(cfg); err != nil {
		return nil, err
	}

	return &Camera{
		position:        cfg.Position,
		to:              to,
		up:              up,
		right:           right,
		width:           cfg.Width,
		height:          cfg.Height,
		distance:        cfg.Distance,
		viewPlaneCenter: cfg.Position.Add(to.Multiply(cfg.Distance)),
	}, nil
}

func validateViewPlane(cfg Config) error {
	if cfg.Width == 0 || cfg.Height == 0 {
		return fmt.Errorf("%w: view plane size is not set", core.ErrMissingConfiguration)
	}
	if cfg.Distance == 0 {
		return fmt.Errorf("%w: view plane distance is not set", core.ErrMissingConfiguration)
	}
	if core.AlignZero(cfg.Width) <= 0 || core.AlignZero(cfg.Height) <= 0 {
		return fmt.Errorf("%w: view plane size %gx%g must be positive", core.ErrInvalidGeometry, cfg.Width, cfg.Height)
	}
	if core.AlignZero(cfg.Distance) <= 0 {
		return fmt.Errorf("%w: view plane distance %g must be positive", core.ErrInvalidGeometry, cfg.Distance)
	}
	return nil
}

// Position returns the eye position
func (c *Camera) Position() core.Vec3 { return c.position }

// To returns the unit forward vector
func (c *Camera) To() core.Vec3 { return c.to }

// Up returns the unit up vector
func (c *Camera) Up() core.Vec3 { return c.up }

// Right returns the unit right vector
func (c *Camera) Right() core.Vec3 { return c.right }

// ConstructRay returns the ray from the eye through the center of pixel (col, row)
// of an nx by ny image. Row 0 is the top of the image.
func (c *Camera) ConstructRay(nx, ny, col, row int) (core.Ray, error) {
	if nx <= 0 || ny <= 0 {
		return core.Ray{}, fmt.Errorf("%w: resolution %dx%d must be positive", core.ErrMissingConfiguration, nx, ny)
	}
	if col < 0 || col >= nx || row < 0 || row >= ny {
		return core.Ray{}, fmt.Errorf("pixel (%d, %d) outside %dx%d image", col, row, nx, ny)
	}

	rY := c.height / float64(ny)
	rX := c.width / float64(nx)

	// Image rows grow downward, view plane Y grows upward
	xJ := (float64(col) - float64(nx-1)/2) * rX
	yI := -(float64(row) - float64(ny-1)/2) * rY

	pIJ := c.viewPlaneCenter
	if xJ != 0 {
		pIJ = pIJ.Add(c.right.Multiply(xJ))
	}
	if yI != 0 {
		pIJ = pIJ.Add(c.up.Multiply(yI))
	}

	return core.NewRay(c.position, pIJ.Subtract(c.position))
}
