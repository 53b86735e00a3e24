package renderer

import (
	"context"
	"fmt"
	"time"

	"github.com/df07/go-phong-raytracer/pkg/camera"
	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/scene"
)

// DefaultLogger implements core.Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// RenderConfig contains configuration for rendering an image
type RenderConfig struct {
	Width      int // Image width in pixels
	Height     int // Image height in pixels
	TileSize   int // Size of each tile
	NumWorkers int // Number of parallel workers (0 = use CPU count)
}

// DefaultRenderConfig returns sensible default values
func DefaultRenderConfig(width, height int) RenderConfig {
	return RenderConfig{
		Width:      width,
		Height:     height,
		TileSize:   32,
		NumWorkers: 0, // Auto-detect CPU count
	}
}

// Renderer casts one ray per pixel through the camera and shades it with the ray tracer
type Renderer struct {
	camera *camera.Camera
	tracer *RayTracer
	config RenderConfig
	logger core.Logger
}

// NewRenderer checks that every piece needed for rendering is present
func NewRenderer(cam *camera.Camera, s *scene.Scene, config RenderConfig, logger core.Logger) (*Renderer, error) {
	if cam == nil {
		return nil, fmt.Errorf("%w: no camera", core.ErrMissingConfiguration)
	}
	if config.Width <= 0 || config.Height <= 0 {
		return nil, fmt.Errorf("%w: image size %dx%d must be positive", core.ErrMissingConfiguration, config.Width, config.Height)
	}
	if config.TileSize <= 0 {
		config.TileSize = DefaultRenderConfig(config.Width, config.Height).TileSize
	}
	if logger == nil {
		logger = NewDefaultLogger()
	}

	tracer, err := NewRayTracer(s)
	if err != nil {
		return nil, err
	}

	return &Renderer{camera: cam, tracer: tracer, config: config, logger: logger}, nil
}

// PixelColor traces the single ray of pixel (col, row)
func (r *Renderer) PixelColor(col, row int) (core.Color, error) {
	ray, err := r.camera.ConstructRay(r.config.Width, r.config.Height, col, row)
	if err != nil {
		return core.Color{}, err
	}
	return r.tracer.TraceRay(ray), nil
}

// Render renders the whole image in parallel tiles.
// Cancelling ctx stops the render before the next tile starts.
func (r *Renderer) Render(ctx context.Context) (*Framebuffer, RenderStats, error) {
	start := time.Now()
	fb := NewFramebuffer(r.config.Width, r.config.Height)
	tiles := NewTileGrid(r.config.Width, r.config.Height, r.config.TileSize)

	pool := NewWorkerPool(NewTileRenderer(r.camera, r.tracer, fb), len(tiles), r.config.NumWorkers)
	r.logger.Printf("Rendering %dx%d in %d tiles (using %d workers)...\n",
		r.config.Width, r.config.Height, len(tiles), pool.GetNumWorkers())

	pool.Start(ctx)
	for i, tile := range tiles {
		pool.SubmitTask(TileTask{Tile: tile, TaskID: i})
	}

	var stats RenderStats
	var firstErr error
	for range tiles {
		result, ok := pool.GetResult()
		if !ok {
			firstErr = fmt.Errorf("worker pool closed unexpectedly")
			break
		}
		if result.Error != nil && firstErr == nil {
			firstErr = result.Error
		}
		stats.add(result.Stats)
	}
	pool.Stop()

	stats.Duration = time.Since(start)
	if firstErr != nil {
		return nil, stats, firstErr
	}

	r.logger.Printf("Rendered %d pixels (%d hit, %d background) in %v\n",
		stats.TotalPixels, stats.HitPixels, stats.BackgroundPixels, stats.Duration)
	return fb, stats, nil
}
