// Command view rasterizes the demo scene on the CPU every frame and
// presents the pixel buffer through a GPU texture on a fullscreen quad.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/chewxy/math32"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"soft-raster/internal/config"
	"soft-raster/internal/display"
	"soft-raster/internal/logger"
	"soft-raster/internal/raster"
	"soft-raster/internal/scene"
	"soft-raster/internal/texture"
)

func main() {
	configFile := flag.String("config", "", "path to config.yaml")
	textureDir := flag.String("textures", "", "directory to index for texture files")
	textureName := flag.String("texture", "", "texture name (default: built-in checkerboard)")
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	cfg.Resolve(config.Flags{TextureDir: *textureDir, Texture: *textureName})

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	tex := pickTexture(cfg)

	win, err := display.NewWindow(display.Config{
		Title:  cfg.Window.Title,
		Width:  cfg.Render.Width * cfg.Window.Scale,
		Height: cfg.Render.Height * cfg.Window.Scale,
		VSync:  cfg.Window.VSync,
	})
	if err != nil {
		logger.Error("window creation failed", zap.Error(err))
		os.Exit(1)
	}
	defer win.Close()

	quad, err := display.NewQuad(cfg.Render.Width, cfg.Render.Height)
	if err != nil {
		logger.Error("quad setup failed", zap.Error(err))
		os.Exit(1)
	}
	defer quad.Close()

	fb := raster.NewFramebuffer(cfg.Render.Width, cfg.Render.Height)

	logger.Info("entering render loop",
		zap.Int("width", cfg.Render.Width),
		zap.Int("height", cfg.Render.Height),
		zap.Int("turn_frames", cfg.Render.TurnFrames),
	)

	frame := 0
	animate := true
	running := true
	for running {
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			switch e := event.(type) {
			case *sdl.QuitEvent:
				running = false
			case *sdl.KeyboardEvent:
				if e.Type != sdl.KEYDOWN {
					break
				}
				switch e.Keysym.Sym {
				case sdl.K_ESCAPE:
					running = false
				case sdl.K_SPACE:
					animate = !animate
				}
			}
		}

		angle := 2 * math32.Pi * float32(frame) / float32(cfg.Render.TurnFrames)

		fb.Clear(0, 0, 0, 0xFF)
		raster.Rasterise(fb, scene.Frame(angle), tex)

		quad.Upload(fb.Pix)
		quad.Draw()
		win.SwapBuffers()

		if animate {
			frame++
		}
	}
}

// pickTexture resolves the configured texture name through the directory
// index, falling back to the built-in checkerboard.
func pickTexture(cfg *config.Config) *raster.Texture {
	if cfg.Texture.Name == "" {
		return raster.Checkerboard()
	}

	idx := texture.BuildIndex(cfg.Texture.Dir)
	if tex := texture.NewCache(idx).Resolve(cfg.Texture.Name); tex != nil {
		return tex
	}

	logger.Warn("texture not found, using checkerboard",
		zap.String("name", cfg.Texture.Name),
		zap.String("dir", cfg.Texture.Dir),
	)
	return raster.Checkerboard()
}
