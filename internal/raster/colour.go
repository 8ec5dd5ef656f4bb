package raster

// Colour is an 8-bit-per-channel RGB triple. Alpha is not part of the
// rasterizer's model; the framebuffer's alpha bytes belong to the caller.
type Colour struct {
	R, G, B uint8
}

// Black returns the zero colour.
func Black() Colour {
	return Colour{}
}

// White returns full-intensity white.
func White() Colour {
	return Colour{R: 0xFF, G: 0xFF, B: 0xFF}
}

// Blend averages the two colours per channel, truncating toward zero.
// Blend is symmetric: c.Blend(o) == o.Blend(c).
func (c Colour) Blend(other Colour) Colour {
	return Colour{
		R: uint8((uint16(c.R) + uint16(other.R)) / 2),
		G: uint8((uint16(c.G) + uint16(other.G)) / 2),
		B: uint8((uint16(c.B) + uint16(other.B)) / 2),
	}
}
