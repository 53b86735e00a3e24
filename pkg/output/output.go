// Package output writes rendered images to disk and scales them down for previews.
package output

import (
	"bytes"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"time"

	"github.com/disintegration/imaging"
	"github.com/nfnt/resize"
)

// RenderPath returns dir/<scene>/render_<timestamp>.png
func RenderPath(dir, sceneName string, at time.Time) string {
	timestamp := at.Format("20060102_150405")
	return filepath.Join(dir, sceneName, fmt.Sprintf("render_%s.png", timestamp))
}

// ThumbnailPath returns the path of the thumbnail that accompanies a render
func ThumbnailPath(renderPath string) string {
	ext := filepath.Ext(renderPath)
	return renderPath[:len(renderPath)-len(ext)] + "_thumb" + ext
}

// Save writes img to path, creating parent directories.
// The image format follows the file extension.
func Save(img image.Image, path string) error {
	if _, err := imaging.FormatFromFilename(path); err != nil {
		return fmt.Errorf("cannot save %s: %w", path, err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("error creating output directory: %w", err)
	}
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("error saving %s: %w", path, err)
	}
	return nil
}

// EncodePNG returns img as PNG bytes
func EncodePNG(img image.Image) ([]byte, error) {
	buf := new(bytes.Buffer)
	if err := imaging.Encode(buf, img, imaging.PNG); err != nil {
		return nil, fmt.Errorf("error encoding PNG: %w", err)
	}
	return buf.Bytes(), nil
}

// Thumbnail scales img to fit within maxDim x maxDim, keeping its aspect ratio.
// Images already small enough are returned unchanged.
func Thumbnail(img image.Image, maxDim int) (image.Image, error) {
	if maxDim <= 0 {
		return nil, fmt.Errorf("thumbnail size %d must be positive", maxDim)
	}
	return resize.Thumbnail(uint(maxDim), uint(maxDim), img, resize.Bilinear), nil
}
