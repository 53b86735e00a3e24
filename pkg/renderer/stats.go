package renderer

import "time"

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels      int           // Total number of pixels rendered
	HitPixels        int           // Pixels whose ray hit a geometry
	BackgroundPixels int           // Pixels that got the background color
	Tiles            int           // Number of tiles rendered
	Duration         time.Duration // Wall time of the whole render
}

// add accumulates the counters of a tile into the total
func (s *RenderStats) add(other RenderStats) {
	s.TotalPixels += other.TotalPixels
	s.HitPixels += other.HitPixels
	s.BackgroundPixels += other.BackgroundPixels
	s.Tiles += other.Tiles
}

// HitRatio returns the fraction of pixels that hit a geometry
func (s RenderStats) HitRatio() float64 {
	if s.TotalPixels == 0 {
		return 0
	}
	return float64(s.HitPixels) / float64(s.TotalPixels)
}
