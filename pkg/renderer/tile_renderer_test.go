package renderer

import (
	"image"
	"testing"
)

func TestNewTileGrid(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		tileSize      int
		expectedTiles int
		lastBounds    image.Rectangle
	}{
		{"exact fit", 64, 32, 32, 2, image.Rect(32, 0, 64, 32)},
		{"partial edge tiles", 70, 40, 32, 6, image.Rect(64, 32, 70, 40)},
		{"single tile", 10, 10, 32, 1, image.Rect(0, 0, 10, 10)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tiles := NewTileGrid(tt.width, tt.height, tt.tileSize)
			if len(tiles) != tt.expectedTiles {
				t.Fatalf("Expected %d tiles, got %d", tt.expectedTiles, len(tiles))
			}

			area := 0
			for i, tile := range tiles {
				if tile.ID != i {
					t.Errorf("Expected tile ID %d, got %d", i, tile.ID)
				}
				area += tile.Bounds.Dx() * tile.Bounds.Dy()
			}
			if area != tt.width*tt.height {
				t.Errorf("Tiles cover %d pixels, expected %d", area, tt.width*tt.height)
			}
			if last := tiles[len(tiles)-1].Bounds; last != tt.lastBounds {
				t.Errorf("Expected last tile %v, got %v", tt.lastBounds, last)
			}
		})
	}
}

func TestWorkerPool_DefaultsToCPUCount(t *testing.T) {
	pool := NewWorkerPool(nil, 1, 0)
	if pool.GetNumWorkers() <= 0 {
		t.Errorf("Expected a positive worker count, got %d", pool.GetNumWorkers())
	}
}
