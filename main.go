package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/df07/go-phong-raytracer/pkg/camera"
	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/output"
	"github.com/df07/go-phong-raytracer/pkg/publish"
	"github.com/df07/go-phong-raytracer/pkg/renderer"
	"github.com/df07/go-phong-raytracer/pkg/scene"
)

// Helper to get environment variables with a default value.
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Ignoring %s=%q: %v", key, value, err)
		return fallback
	}
	return n
}

func main() {
	// Missing .env is fine, real environment variables still apply
	_ = godotenv.Load(".env")

	// Parse command line flags
	sceneType := flag.String("scene", "default", "Scene type (see -help for the list)")
	outputDir := flag.String("out", getEnv("RT_OUTPUT_DIR", "output"), "Output directory")
	numWorkers := flag.Int("workers", getEnvInt("RT_WORKERS", 0), "Number of parallel workers (0 = auto)")
	width := flag.Int("width", 0, "Image width in pixels (0 = scene default)")
	height := flag.Int("height", 0, "Image height in pixels (0 = scene default)")
	grid := flag.Int("grid", 0, "Draw a grid line every N pixels (0 = off)")
	thumb := flag.Int("thumb", 0, "Also save a thumbnail of at most N pixels per side (0 = off)")
	upload := flag.Bool("upload", false, "Upload the render to the bucket set by RT_S3_BUCKET")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	// Show help if requested
	if *help {
		showHelp()
		return
	}

	fmt.Println("Starting Phong Raytracer...")

	preset, err := createScene(*sceneType)
	if err != nil {
		log.Fatalf("Error: %v", err)
	}
	if *width > 0 && *height > 0 {
		preset.Width, preset.Height = *width, *height
	}
	fmt.Printf("Using %s scene (%dx%d)...\n", preset.Scene.Name, preset.Width, preset.Height)

	cam, err := camera.New(preset.Camera)
	if err != nil {
		log.Fatalf("Error creating camera: %v", err)
	}

	config := renderer.DefaultRenderConfig(preset.Width, preset.Height)
	config.NumWorkers = *numWorkers
	logger := renderer.NewDefaultLogger()

	r, err := renderer.NewRenderer(cam, preset.Scene, config, logger)
	if err != nil {
		log.Fatalf("Error creating renderer: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fb, stats, err := r.Render(ctx)
	if err != nil {
		log.Fatalf("Render failed: %v", err)
	}
	fmt.Printf("Render completed in %v (%.1f%% of pixels hit geometry)\n", stats.Duration, 100*stats.HitRatio())

	if *grid > 0 {
		if err := renderer.DrawGrid(fb, *grid, core.NewColor(255, 255, 255)); err != nil {
			log.Fatalf("Error drawing grid: %v", err)
		}
	}

	img := fb.ToRGBA()
	filename := output.RenderPath(*outputDir, *sceneType, time.Now())
	if err := output.Save(img, filename); err != nil {
		log.Fatalf("Error: %v", err)
	}
	fmt.Printf("Render saved as %s\n", filename)

	if *thumb > 0 {
		small, err := output.Thumbnail(img, *thumb)
		if err != nil {
			log.Fatalf("Error creating thumbnail: %v", err)
		}
		thumbName := output.ThumbnailPath(filename)
		if err := output.Save(small, thumbName); err != nil {
			log.Fatalf("Error: %v", err)
		}
		fmt.Printf("Thumbnail saved as %s\n", thumbName)
	}

	if *upload {
		if err := uploadRender(ctx, img, *sceneType, filepath.Base(filename), logger); err != nil {
			log.Fatalf("Upload failed: %v", err)
		}
	}
}

// createScene creates the built-in scene for the given type
func createScene(sceneType string) (*scene.Preset, error) {
	if sceneType == "" {
		return nil, fmt.Errorf("no scene type given")
	}
	return scene.Create(sceneType)
}

// uploadRender publishes the PNG render using the RT_S3_* settings
func uploadRender(ctx context.Context, img image.Image, sceneType, fileName string, logger core.Logger) error {
	uploader, err := publish.NewUploader(publish.ConfigFromEnv(), logger)
	if err != nil {
		return err
	}
	data, err := output.EncodePNG(img)
	if err != nil {
		return err
	}
	return uploader.Upload(ctx, uploader.Key(sceneType, fileName), data)
}

func showHelp() {
	fmt.Println("Phong Raytracer")
	fmt.Println("Usage: raytracer [options]")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("Available scenes:")
	for _, info := range scene.ListBuiltins() {
		fmt.Printf("  %-10s - %s\n", info.ID, info.Description)
	}
	fmt.Println()
	fmt.Println("Output will be saved to <out>/<scene>/render_<timestamp>.png")
	fmt.Println("Settings can also be given in a .env file (RT_OUTPUT_DIR, RT_WORKERS, RT_S3_*)")
}
