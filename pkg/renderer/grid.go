package renderer

import (
	"fmt"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// DrawGrid paints every interval-th row and column with color
func DrawGrid(fb *Framebuffer, interval int, color core.Color) error {
	if interval <= 0 {
		return fmt.Errorf("grid interval %d must be positive", interval)
	}
	for y := 0; y < fb.Height(); y++ {
		for x := 0; x < fb.Width(); x++ {
			if x%interval == 0 || y%interval == 0 {
				fb.Set(x, y, color)
			}
		}
	}
	return nil
}
