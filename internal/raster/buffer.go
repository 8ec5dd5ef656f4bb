package raster

import "image"

// Framebuffer holds the rendering target as a flat RGBA slice for cache
// locality. Pix has length Width*Height*4, row-major, origin top-left.
type Framebuffer struct {
	Width  int
	Height int
	Pix    []byte
}

// NewFramebuffer allocates a zeroed RGBA framebuffer.
func NewFramebuffer(w, h int) *Framebuffer {
	return &Framebuffer{
		Width:  w,
		Height: h,
		Pix:    make([]byte, w*h*4),
	}
}

// Clear fills every pixel, alpha included. Rasterise never touches alpha or
// out-of-polygon pixels, so callers clear between frames.
func (fb *Framebuffer) Clear(r, g, b, a byte) {
	for i := 0; i < len(fb.Pix); i += 4 {
		fb.Pix[i] = r
		fb.Pix[i+1] = g
		fb.Pix[i+2] = b
		fb.Pix[i+3] = a
	}
}

// NRGBA returns a snapshot copy of the framebuffer as an image.
func (fb *Framebuffer) NRGBA() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	copy(img.Pix, fb.Pix)
	return img
}
