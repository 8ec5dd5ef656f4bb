package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Render.Width != 256 {
		t.Errorf("expected width 256, got %d", cfg.Render.Width)
	}
	if cfg.Render.Height != 256 {
		t.Errorf("expected height 256, got %d", cfg.Render.Height)
	}
	if cfg.Render.TurnFrames != 120 {
		t.Errorf("expected 120 turn frames, got %d", cfg.Render.TurnFrames)
	}
	if !cfg.Window.VSync {
		t.Error("expected vsync to be true by default")
	}
	if cfg.Window.Scale != 2 {
		t.Errorf("expected window scale 2, got %d", cfg.Window.Scale)
	}
	if cfg.Output.Workers <= 0 {
		t.Errorf("expected positive default worker count, got %d", cfg.Output.Workers)
	}
	if cfg.Texture.Name != "" {
		t.Errorf("expected checkerboard fallback (empty name), got %q", cfg.Texture.Name)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	data := `
render:
  width: 512
  height: 512
window:
  title: custom
  scale: 1
output:
  frames: 30
  workers: 3
texture:
  name: bricks
logging:
  level: debug
`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Render.Width != 512 || cfg.Render.Height != 512 {
		t.Errorf("expected 512x512, got %dx%d", cfg.Render.Width, cfg.Render.Height)
	}
	if cfg.Window.Title != "custom" {
		t.Errorf("expected title 'custom', got %q", cfg.Window.Title)
	}
	if cfg.Output.Frames != 30 {
		t.Errorf("expected 30 frames, got %d", cfg.Output.Frames)
	}
	if cfg.Output.Workers != 3 {
		t.Errorf("expected 3 workers, got %d", cfg.Output.Workers)
	}
	if cfg.Texture.Name != "bricks" {
		t.Errorf("expected texture 'bricks', got %q", cfg.Texture.Name)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
	// Fields absent from the file keep their defaults.
	if cfg.Render.TurnFrames != 120 {
		t.Errorf("expected default turn frames, got %d", cfg.Render.TurnFrames)
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for explicitly named missing file")
	}
}

func TestResolveFlagsOverride(t *testing.T) {
	cfg := Default()
	cfg.Resolve(Flags{
		OutputDir: "/tmp/out",
		Frames:    10,
		Workers:   2,
		Texture:   "marble",
	})

	if cfg.Output.Dir != "/tmp/out" {
		t.Errorf("expected output dir override, got %q", cfg.Output.Dir)
	}
	if cfg.Output.Frames != 10 {
		t.Errorf("expected 10 frames, got %d", cfg.Output.Frames)
	}
	if cfg.Output.Workers != 2 {
		t.Errorf("expected 2 workers, got %d", cfg.Output.Workers)
	}
	if cfg.Texture.Name != "marble" {
		t.Errorf("expected texture 'marble', got %q", cfg.Texture.Name)
	}
}

func TestResolveRepairsBrokenValues(t *testing.T) {
	cfg := Default()
	cfg.Render.Width = -5
	cfg.Output.Workers = 0
	cfg.Window.Scale = 0
	cfg.Resolve(Flags{})

	if cfg.Render.Width != 256 {
		t.Errorf("expected repaired width 256, got %d", cfg.Render.Width)
	}
	if cfg.Output.Workers <= 0 {
		t.Errorf("expected positive workers, got %d", cfg.Output.Workers)
	}
	if cfg.Window.Scale != 1 {
		t.Errorf("expected repaired window scale 1, got %d", cfg.Window.Scale)
	}
}
