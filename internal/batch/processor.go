// Package batch renders animation frame sequences to WebP files using a
// worker pool. Frames are independent: each worker owns its framebuffer,
// so the rasterizer's list-order overwrite rule holds within every frame
// and no two workers ever touch the same pixel.
package batch

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/HugoSmits86/nativewebp"
	"github.com/chewxy/math32"
	"go.uber.org/zap"

	"soft-raster/internal/logger"
	"soft-raster/internal/postprocess"
	"soft-raster/internal/raster"
	"soft-raster/internal/scene"
	"soft-raster/internal/texture"
)

// Config holds all shared resources for a batch run.
type Config struct {
	OutputDir   string
	Width       int
	Height      int
	Frames      int
	TurnFrames  int
	Scale       int
	Workers     int
	TexResolver texture.Resolver
	TextureName string
}

// Result holds the outcome of rendering one frame.
type Result struct {
	Frame   int
	Path    string
	Success bool
	Error   string
}

// Run renders all frames using a worker pool and returns one result per
// frame, indexed by frame number.
func Run(cfg Config) []Result {
	tex := resolveTexture(cfg)

	total := cfg.Frames
	results := make([]Result, total)
	var processed atomic.Int64

	start := time.Now()

	// Progress reporter.
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				p := processed.Load()
				if p > 0 {
					elapsed := time.Since(start).Seconds()
					logger.Info("rendering",
						zap.Int64("frames", p),
						zap.Int("total", total),
						zap.Float64("frames_per_sec", float64(p)/elapsed),
					)
				}
			}
		}
	}()

	// Worker pool.
	frameChan := make(chan int, cfg.Workers*2)
	var wg sync.WaitGroup

	for w := 0; w < cfg.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for frame := range frameChan {
				results[frame] = renderFrame(cfg, tex, frame)
				processed.Add(1)
			}
		}()
	}

	for i := 0; i < total; i++ {
		frameChan <- i
	}
	close(frameChan)

	wg.Wait()
	close(done)

	return results
}

// resolveTexture picks the configured texture, falling back to the
// built-in checkerboard when nothing is configured or the lookup misses.
func resolveTexture(cfg Config) *raster.Texture {
	if cfg.TextureName != "" && cfg.TexResolver != nil {
		if tex := cfg.TexResolver.Resolve(cfg.TextureName); tex != nil {
			return tex
		}
		logger.Warn("texture not found, using checkerboard",
			zap.String("name", cfg.TextureName))
	}
	return raster.Checkerboard()
}

func renderFrame(cfg Config, tex *raster.Texture, frame int) Result {
	angle := 2 * math32.Pi * float32(frame) / float32(cfg.TurnFrames)

	fb := raster.NewFramebuffer(cfg.Width, cfg.Height)
	fb.Clear(0, 0, 0, 0xFF)
	raster.Rasterise(fb, scene.Frame(angle), tex)

	img := postprocess.Upscale(fb.NRGBA(), cfg.Scale)

	outPath := filepath.Join(cfg.OutputDir, fmt.Sprintf("%04d.webp", frame))
	if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
		return Result{Frame: frame, Error: err.Error()}
	}

	f, err := os.Create(outPath)
	if err != nil {
		return Result{Frame: frame, Error: err.Error()}
	}
	defer f.Close()

	if err := nativewebp.Encode(f, img, nil); err != nil {
		return Result{Frame: frame, Error: fmt.Sprintf("WebP encode: %v", err)}
	}

	return Result{Frame: frame, Path: outPath, Success: true}
}
