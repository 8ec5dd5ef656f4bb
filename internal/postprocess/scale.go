// Package postprocess transforms finished frames on their way to disk.
package postprocess

import (
	"image"

	"golang.org/x/image/draw"
)

// Upscale returns the image enlarged by an integer factor using
// nearest-neighbour sampling. Pixels stay hard-edged; nothing is smoothed
// or anti-aliased. A factor of 1 returns the input unchanged.
func Upscale(img *image.NRGBA, factor int) *image.NRGBA {
	if factor <= 1 {
		return img
	}

	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}
