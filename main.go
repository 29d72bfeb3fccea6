package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/joho/godotenv"

	"spheretrace/internal/logger"
	"spheretrace/pkg/config"
	"spheretrace/pkg/output"
	"spheretrace/pkg/publish"
	"spheretrace/pkg/renderer"
	"spheretrace/pkg/scene"
)

func main() {
	// Optional .env for upload credentials; absence is fine
	_ = godotenv.Load()

	configPath := flag.String("config", "", "Path to a YAML settings file")
	width := flag.Int("width", 2000, "Image width in pixels")
	samples := flag.Int("samples", 20, "Samples per pixel")
	depth := flag.Int("depth", 15, "Maximum ray bounce depth")
	out := flag.String("out", "render", "Output file prefix (<prefix>.ppm and <prefix>.png)")
	scenePath := flag.String("scene", "", "Path to a YAML scene file (empty uses the built-in scene)")
	workers := flag.Int("workers", 0, "Number of render workers (0 = CPU count)")
	seed := flag.Int64("seed", 42, "Random seed; renders are reproducible for a fixed seed")
	logLevel := flag.String("log-level", "info", "Log level: debug, info, warn, error, fatal")
	preview := flag.Bool("preview", false, "Also write a downscaled preview PNG")
	upload := flag.Bool("upload", false, "Upload the PNG to the configured S3 bucket")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	// Flags given on the command line override the settings file
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width":
			cfg.Render.Width = *width
		case "samples":
			cfg.Render.Samples = *samples
		case "depth":
			cfg.Render.Depth = *depth
		case "out":
			cfg.Output.Prefix = *out
		case "scene":
			cfg.Render.Scene = *scenePath
		case "workers":
			cfg.Render.Workers = *workers
		case "seed":
			cfg.Render.Seed = *seed
		case "log-level":
			cfg.Log.Level = *logLevel
		case "preview":
			cfg.Output.Preview = *preview
		case "upload":
			cfg.Upload.Enabled = *upload
		}
	})

	log := logger.New(cfg.Log.Level)
	if err := run(cfg, log); err != nil {
		log.Fatalf("%v", err)
	}
}

func run(cfg config.Config, log *logger.Logger) error {
	s, err := buildScene(cfg, log)
	if err != nil {
		return err
	}

	imageWidth := cfg.Render.Width
	imageHeight := int(float64(imageWidth) / s.CameraConfig.AspectRatio)
	samplingConfig := renderer.SamplingConfig{
		SamplesPerPixel: cfg.Render.Samples,
		MaxDepth:        cfg.Render.Depth,
	}

	raytracer := renderer.NewRaytracer(s, imageWidth, imageHeight, samplingConfig, cfg.Render.Seed, log)
	pool := renderer.NewWorkerPool(raytracer, cfg.Render.Workers)

	log.Infof("Rendering %dx%d, %d samples/pixel, depth %d, %d workers",
		imageWidth, imageHeight, cfg.Render.Samples, cfg.Render.Depth, pool.NumWorkers())

	img, stats := pool.Render()
	log.Infof("Render completed in %v (%d samples over %d pixels)",
		stats.Elapsed, stats.TotalSamples, stats.TotalPixels)

	return writeOutputs(cfg, img, log)
}

func buildScene(cfg config.Config, log *logger.Logger) (*scene.Scene, error) {
	if cfg.Render.Scene == "" {
		log.Debugf("Using built-in scene")
		return scene.NewSimpleScene(), nil
	}
	log.Debugf("Loading scene from %s", cfg.Render.Scene)
	return scene.LoadFile(cfg.Render.Scene)
}

func writeOutputs(cfg config.Config, img image.Image, log *logger.Logger) error {
	ppmPath := cfg.Output.Prefix + ".ppm"
	if err := output.WritePPMFile(ppmPath, img); err != nil {
		return err
	}
	log.Infof("Wrote %s", ppmPath)

	pngPath := cfg.Output.Prefix + ".png"
	if err := output.WritePNGFile(pngPath, img); err != nil {
		return err
	}
	log.Infof("Wrote %s", pngPath)

	if cfg.Output.Preview {
		previewPath := cfg.Output.Prefix + "_preview.png"
		if err := output.WritePreviewFile(previewPath, img, cfg.Output.PreviewWidth); err != nil {
			return err
		}
		log.Infof("Wrote %s", previewPath)
	}

	if cfg.Upload.Enabled {
		if err := uploadPNG(cfg, img, log); err != nil {
			return err
		}
	}
	return nil
}

func uploadPNG(cfg config.Config, img image.Image, log *logger.Logger) error {
	publisher, err := publish.NewS3Publisher(publish.S3Config{
		Bucket:    cfg.Upload.Bucket,
		Endpoint:  cfg.Upload.Endpoint,
		Region:    cfg.Upload.Region,
		KeyPrefix: cfg.Upload.KeyPrefix,
	})
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Errorf("failed to encode PNG for upload: %w", err)
	}

	key, err := publisher.PublishPNG(context.Background(), cfg.Output.Prefix, buf.Bytes())
	if err != nil {
		return err
	}
	log.Infof("Uploaded render to s3://%s/%s", cfg.Upload.Bucket, key)
	return nil
}
