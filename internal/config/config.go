// Package config handles tool configuration loading and management.
package config

import "runtime"

// Config holds all render, window and output settings.
type Config struct {
	Render  RenderConfig  `yaml:"render"`
	Window  WindowConfig  `yaml:"window"`
	Output  OutputConfig  `yaml:"output"`
	Texture TextureConfig `yaml:"texture"`
	Logging LoggingConfig `yaml:"logging"`
}

// RenderConfig holds raster target settings.
type RenderConfig struct {
	Width      int `yaml:"width"`
	Height     int `yaml:"height"`
	TurnFrames int `yaml:"turn_frames"` // frames per full rotation of the demo scene
}

// WindowConfig holds live viewer settings. Scale multiplies the raster
// target size to get the window size; the GPU quad does the stretching.
type WindowConfig struct {
	Title string `yaml:"title"`
	Scale int    `yaml:"scale"`
	VSync bool   `yaml:"vsync"`
}

// OutputConfig holds offline export settings.
type OutputConfig struct {
	Dir     string `yaml:"dir"`
	Frames  int    `yaml:"frames"`
	Scale   int    `yaml:"scale"` // nearest-neighbour upscale of exported frames
	Workers int    `yaml:"workers"`
}

// TextureConfig selects the texture the scene samples. An empty name means
// the built-in checkerboard.
type TextureConfig struct {
	Dir  string `yaml:"dir"`
	Name string `yaml:"name"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Render: RenderConfig{
			Width:      256,
			Height:     256,
			TurnFrames: 120,
		},
		Window: WindowConfig{
			Title: "soft-raster",
			Scale: 2,
			VSync: true,
		},
		Output: OutputConfig{
			Dir:     "frames",
			Frames:  120,
			Scale:   1,
			Workers: runtime.NumCPU(),
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	OutputDir  string
	Frames     int
	Workers    int
	Scale      int
	TextureDir string
	Texture    string
}

// Resolve applies CLI flags over file values and repairs out-of-range
// settings.
func (c *Config) Resolve(flags Flags) {
	if flags.OutputDir != "" {
		c.Output.Dir = flags.OutputDir
	}
	if flags.Frames > 0 {
		c.Output.Frames = flags.Frames
	}
	if flags.Workers > 0 {
		c.Output.Workers = flags.Workers
	}
	if flags.Scale > 0 {
		c.Output.Scale = flags.Scale
	}
	if flags.TextureDir != "" {
		c.Texture.Dir = flags.TextureDir
	}
	if flags.Texture != "" {
		c.Texture.Name = flags.Texture
	}

	if c.Render.Width <= 0 {
		c.Render.Width = 256
	}
	if c.Render.Height <= 0 {
		c.Render.Height = 256
	}
	if c.Render.TurnFrames <= 0 {
		c.Render.TurnFrames = 120
	}
	if c.Window.Scale <= 0 {
		c.Window.Scale = 1
	}
	if c.Output.Scale <= 0 {
		c.Output.Scale = 1
	}
	if c.Output.Workers <= 0 {
		c.Output.Workers = runtime.NumCPU()
	}
}
