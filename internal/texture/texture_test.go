package texture

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"soft-raster/internal/raster"
)

// writePNG drops a 2x2 test image at path: red, green / blue, white.
func writePNG(t *testing.T, path string) {
	t.Helper()

	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.SetNRGBA(0, 0, color.NRGBA{R: 255, A: 255})
	img.SetNRGBA(1, 0, color.NRGBA{G: 255, A: 255})
	img.SetNRGBA(0, 1, color.NRGBA{B: 255, A: 255})
	img.SetNRGBA(1, 1, color.NRGBA{R: 255, G: 255, B: 255, A: 255})

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encode %s: %v", path, err)
	}
}

func TestLoadPNG(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "grid.png")
	writePNG(t, path)

	tex, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if tex.Width != 2 || tex.Height != 2 {
		t.Fatalf("loaded texture is %dx%d, want 2x2", tex.Width, tex.Height)
	}

	if got := tex.Sample(raster.Coord{X: 0, Y: 0}); got != (raster.Colour{R: 255}) {
		t.Errorf("texel (0,0) = %+v, want red", got)
	}
	if got := tex.Sample(raster.Coord{X: 1, Y: 1}); got != raster.White() {
		t.Errorf("texel (1,1) = %+v, want white", got)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.png")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestIndexResolvesByStem(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "Bricks.png"))

	idx := BuildIndex(dir)
	if idx.Len() != 1 {
		t.Fatalf("indexed %d files, want 1", idx.Len())
	}

	for _, name := range []string{"bricks", "BRICKS.png", "some/dir/Bricks.jpg"} {
		if _, ok := idx.ResolvePath(name); !ok {
			t.Errorf("ResolvePath(%q) found nothing", name)
		}
	}
	if _, ok := idx.ResolvePath("marble"); ok {
		t.Error("ResolvePath resolved a name that was never indexed")
	}
}

func TestCacheResolvesOnceAndCachesMisses(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "bricks.png"))

	cache := NewCache(BuildIndex(dir))

	first := cache.Resolve("bricks")
	if first == nil {
		t.Fatal("Resolve returned nil for an indexed texture")
	}
	if second := cache.Resolve("bricks"); second != first {
		t.Error("second Resolve returned a different grid; cache not hit")
	}

	if got := cache.Resolve("marble"); got != nil {
		t.Errorf("Resolve of unknown name = %v, want nil", got)
	}
}
