package renderer

import (
	"fmt"
	"image"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// Framebuffer holds the unclamped color of every pixel.
// Workers write disjoint pixels, so no locking is needed.
type Framebuffer struct {
	width, height int
	pixels        []core.Color
}

// NewFramebuffer creates a black framebuffer
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		width:  width,
		height: height,
		pixels: make([]core.Color, width*height),
	}
}

// Width returns the number of columns
func (f *Framebuffer) Width() int { return f.width }

// Height returns the number of rows
func (f *Framebuffer) Height() int { return f.height }

// Bounds returns the framebuffer rectangle
func (f *Framebuffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, f.width, f.height)
}

// At returns the color of pixel (x, y)
func (f *Framebuffer) At(x, y int) core.Color {
	return f.pixels[f.index(x, y)]
}

// Set stores the color of pixel (x, y)
func (f *Framebuffer) Set(x, y int, c core.Color) {
	f.pixels[f.index(x, y)] = c
}

func (f *Framebuffer) index(x, y int) int {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		panic(fmt.Sprintf("pixel (%d, %d) outside %dx%d framebuffer", x, y, f.width, f.height))
	}
	return y*f.width + x
}

// ToRGBA converts the framebuffer to an 8-bit image, clamping every channel
func (f *Framebuffer) ToRGBA() *image.RGBA {
	img := image.NewRGBA(f.Bounds())
	for y := 0; y < f.height; y++ {
		for x := 0; x < f.width; x++ {
			img.SetRGBA(x, y, f.At(x, y).ToRGBA())
		}
	}
	return img
}
