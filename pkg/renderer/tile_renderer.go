package renderer

import (
	"image"

	"github.com/df07/go-phong-raytracer/pkg/camera"
)

// Tile is a rectangular block of pixels rendered as one task
type Tile struct {
	ID     int
	Bounds image.Rectangle
}

// NewTileGrid splits a width x height image into tiles of at most tileSize pixels per side
func NewTileGrid(width, height, tileSize int) []*Tile {
	var tiles []*Tile
	tileID := 0

	tilesX := (width + tileSize - 1) / tileSize // Ceiling division
	tilesY := (height + tileSize - 1) / tileSize

	for tileY := 0; tileY < tilesY; tileY++ {
		for tileX := 0; tileX < tilesX; tileX++ {
			x0 := tileX * tileSize
			y0 := tileY * tileSize
			x1 := min(x0+tileSize, width) // Don't exceed image bounds
			y1 := min(y0+tileSize, height)

			tiles = append(tiles, &Tile{ID: tileID, Bounds: image.Rect(x0, y0, x1, y1)})
			tileID++
		}
	}

	return tiles
}

// TileRenderer traces the pixels of a tile into a shared framebuffer
type TileRenderer struct {
	camera *camera.Camera
	tracer *RayTracer
	fb     *Framebuffer
}

// NewTileRenderer creates a tile renderer writing into fb
func NewTileRenderer(cam *camera.Camera, tracer *RayTracer, fb *Framebuffer) *TileRenderer {
	return &TileRenderer{camera: cam, tracer: tracer, fb: fb}
}

// RenderTileBounds renders pixels within the specified bounds.
// Tiles never overlap, so concurrent calls write disjoint pixels.
func (tr *TileRenderer) RenderTileBounds(bounds image.Rectangle) (RenderStats, error) {
	stats := RenderStats{Tiles: 1}
	nx, ny := tr.fb.Width(), tr.fb.Height()

	for row := bounds.Min.Y; row < bounds.Max.Y; row++ {
		for col := bounds.Min.X; col < bounds.Max.X; col++ {
			ray, err := tr.camera.ConstructRay(nx, ny, col, row)
			if err != nil {
				return stats, err
			}
			color, hit := tr.tracer.trace(ray)
			tr.fb.Set(col, row, color)

			stats.TotalPixels++
			if hit {
				stats.HitPixels++
			} else {
				stats.BackgroundPixels++
			}
		}
	}
	return stats, nil
}
