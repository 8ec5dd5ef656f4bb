// Package texture loads image files into sampling grids and caches them.
package texture

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "github.com/ftrvxmtrx/tga"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"soft-raster/internal/raster"
)

// Load reads an image file (PNG, JPEG, TGA, BMP or WebP) and converts it
// to a texture grid.
func Load(path string) (*raster.Texture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("texture: open %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("texture: decode %s: %w", path, err)
	}

	tex, err := FromImage(img)
	if err != nil {
		return nil, fmt.Errorf("texture: %s: %w", path, err)
	}
	return tex, nil
}

// FromImage flattens any image into a row-major colour grid. The alpha
// channel is dropped; the rasterizer's colour model has no alpha.
func FromImage(img image.Image) (*raster.Texture, error) {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	colours := make([]raster.Colour, 0, w*h)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			colours = append(colours, raster.Colour{
				R: uint8(r >> 8),
				G: uint8(g >> 8),
				B: uint8(b >> 8),
			})
		}
	}

	return raster.NewTexture(w, h, colours)
}
