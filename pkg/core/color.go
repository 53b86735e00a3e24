package core

import "image/color"

// Color is an RGB triple on a 0..255 scale. Channels may exceed 255 while
// light contributions are summed; they are clamped only when converted to RGBA.
type Color struct {
	R, G, B float64
}

// Black is the absence of light
var Black = Color{}

// NewColor creates a new Color
func NewColor(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

// Add returns the channel-wise sum of colors
func (c Color) Add(others ...Color) Color {
	for _, o := range others {
		c.R += o.R
		c.G += o.G
		c.B += o.B
	}
	return c
}

// Scale returns the color multiplied by a scalar
func (c Color) Scale(k float64) Color {
	return Color{c.R * k, c.G * k, c.B * k}
}

// ScaleBy returns the color multiplied per channel by a coefficient triple
func (c Color) ScaleBy(k Coefficients) Color {
	return Color{c.R * k.R, c.G * k.G, c.B * k.B}
}

// Reduce returns the color divided by a scalar
func (c Color) Reduce(k float64) Color {
	return Color{c.R / k, c.G / k, c.B / k}
}

// ToRGBA converts the color to 8-bit channels, clamping to [0, 255]
func (c Color) ToRGBA() color.RGBA {
	return color.RGBA{
		R: clampChannel(c.R),
		G: clampChannel(c.G),
		B: clampChannel(c.B),
		A: 255,
	}
}

func clampChannel(v float64) uint8 {
	return uint8(max(0, min(255, v)))
}

// Coefficients is a triple of independent per-channel factors,
// used for reflectance and attenuation.
type Coefficients struct {
	R, G, B float64
}

// NewCoefficients creates a new coefficient triple
func NewCoefficients(r, g, b float64) Coefficients {
	return Coefficients{R: r, G: g, B: b}
}

// Uniform creates a coefficient triple with the same factor on every channel
func Uniform(k float64) Coefficients {
	return Coefficients{R: k, G: k, B: k}
}

// Add returns the channel-wise sum of two triples
func (k Coefficients) Add(other Coefficients) Coefficients {
	return Coefficients{k.R + other.R, k.G + other.G, k.B + other.B}
}

// Scale returns the triple multiplied by a scalar
func (k Coefficients) Scale(s float64) Coefficients {
	return Coefficients{k.R * s, k.G * s, k.B * s}
}

// IsZero reports whether all factors are zero
func (k Coefficients) IsZero() bool {
	return k.R == 0 && k.G == 0 && k.B == 0
}
