// Command render writes the demo animation to disk as a WebP frame
// sequence plus a manifest, using all cores.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"soft-raster/internal/batch"
	"soft-raster/internal/config"
	"soft-raster/internal/logger"
	"soft-raster/internal/texture"
)

func main() {
	configFile := flag.String("config", "", "path to config.yaml")
	frames := flag.Int("frames", 0, "number of frames to render (default: 120)")
	workers := flag.Int("workers", 0, "number of worker goroutines (default: NumCPU)")
	outputDir := flag.String("output", "", "output directory (default: frames)")
	scale := flag.Int("scale", 0, "integer upscale factor for exported frames")
	textureDir := flag.String("textures", "", "directory to index for texture files")
	textureName := flag.String("texture", "", "texture name (default: built-in checkerboard)")
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	cfg.Resolve(config.Flags{
		OutputDir:  *outputDir,
		Frames:     *frames,
		Workers:    *workers,
		Scale:      *scale,
		TextureDir: *textureDir,
		Texture:    *textureName,
	})

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	idx := texture.BuildIndex(cfg.Texture.Dir)
	cache := texture.NewCache(idx)

	logger.Info("starting batch render",
		zap.Int("frames", cfg.Output.Frames),
		zap.Int("workers", cfg.Output.Workers),
		zap.Int("textures_indexed", idx.Len()),
		zap.String("output", cfg.Output.Dir),
	)

	start := time.Now()

	results := batch.Run(batch.Config{
		OutputDir:   cfg.Output.Dir,
		Width:       cfg.Render.Width,
		Height:      cfg.Render.Height,
		Frames:      cfg.Output.Frames,
		TurnFrames:  cfg.Render.TurnFrames,
		Scale:       cfg.Output.Scale,
		Workers:     cfg.Output.Workers,
		TexResolver: cache,
		TextureName: cfg.Texture.Name,
	})

	success, failed := 0, 0
	for _, r := range results {
		if r.Success {
			success++
			continue
		}
		failed++
		if failed <= 20 {
			logger.Error("frame failed",
				zap.Int("frame", r.Frame),
				zap.String("error", r.Error),
			)
		}
	}

	logger.Info("batch render done",
		zap.Int("rendered", success),
		zap.Int("failed", failed),
		zap.Duration("elapsed", time.Since(start)),
	)

	manifestPath := filepath.Join(cfg.Output.Dir, "manifest.json")
	if err := batch.WriteManifest(manifestPath, results); err != nil {
		logger.Warn("manifest write failed", zap.Error(err))
	} else {
		logger.Info("manifest written", zap.String("path", manifestPath))
	}

	if failed > 0 {
		os.Exit(1)
	}
}
