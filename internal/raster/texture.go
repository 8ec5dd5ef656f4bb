package raster

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Texture is an immutable row-major grid of colours. It is shared read-only
// across all polygons in a rasterization call and across worker goroutines;
// nothing mutates it after construction.
type Texture struct {
	Width, Height int

	Colours []Colour
}

// NewTexture builds a texture from a flat row-major colour slice.
// Zero-sized textures are rejected here so Sample never divides by zero.
func NewTexture(width, height int, colours []Colour) (*Texture, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("raster: texture size %dx%d: dimensions must be positive", width, height)
	}
	if len(colours) != width*height {
		return nil, fmt.Errorf("raster: texture size %dx%d: want %d colours, got %d",
			width, height, width*height, len(colours))
	}
	return &Texture{Width: width, Height: height, Colours: colours}, nil
}

// Checkerboard returns the canonical 32×32 test texture: 4×4-pixel blocks,
// black where the block coordinates sum to an even number, white otherwise.
func Checkerboard() *Texture {
	colours := make([]Colour, 32*32)
	for pos := range colours {
		xQuad := (pos % 32) / 4
		yQuad := (pos / 32) / 4
		if (xQuad+yQuad)%2 == 0 {
			colours[pos] = Black()
		} else {
			colours[pos] = White()
		}
	}
	return &Texture{Width: 32, Height: 32, Colours: colours}
}

// Sample maps a texture-space coordinate to a colour: floor to integer
// indices, then wrap each axis independently via floored modulo. Negative
// and out-of-range coordinates tile the texture rather than clamping.
func (t *Texture) Sample(c Coord) Colour {
	x := int(math32.Floor(c.X)) % t.Width
	if x < 0 {
		x += t.Width
	}
	y := int(math32.Floor(c.Y)) % t.Height
	if y < 0 {
		y += t.Height
	}
	return t.Colours[y*t.Width+x]
}
