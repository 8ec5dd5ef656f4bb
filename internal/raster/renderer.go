package raster

import "github.com/chewxy/math32"

// Rasterise draws the polygons into the framebuffer in list order with no
// depth test: a later polygon's pixels overwrite an earlier polygon's at
// the same coordinate. Only the R,G,B bytes of covered pixels are written;
// alpha and uncovered pixels keep whatever the caller put there.
//
// A single call is synchronous and owns the framebuffer exclusively.
// Parallelism belongs one level up, across frames with independent
// framebuffers, where the list-order overwrite rule cannot be violated.
func Rasterise(fb *Framebuffer, polygons []Polygon, tex *Texture) {
	for i := range polygons {
		rasterisePolygon(fb, &polygons[i], tex)
	}
}

func rasterisePolygon(fb *Framebuffer, p *Polygon, tex *Texture) {
	box := p.BoundingBox()

	minX := int(math32.Floor(box.Min.X))
	maxX := int(math32.Ceil(box.Max.X))
	minY := int(math32.Floor(box.Min.Y))
	maxY := int(math32.Ceil(box.Max.Y))

	// Clip the scan range against the framebuffer. Writing past Pix is
	// memory corruption, not a rendering artifact.
	if minX < 0 {
		minX = 0
	}
	if maxX > fb.Width-1 {
		maxX = fb.Width - 1
	}
	if minY < 0 {
		minY = 0
	}
	if maxY > fb.Height-1 {
		maxY = fb.Height - 1
	}

	hasColours := p.Colours != nil
	hasTex := p.TexCoords != nil && tex != nil

	for y := minY; y <= maxY; y++ {
		rowOff := y * fb.Width
		for x := minX; x <= maxX; x++ {
			w, inside := p.TestInside(Coord{X: float32(x), Y: float32(y)})
			if !inside {
				continue
			}

			var colour Colour
			switch {
			case hasColours && hasTex:
				colour = p.shade(w).Blend(tex.Sample(p.texCoord(w)))
			case hasColours:
				colour = p.shade(w)
			case hasTex:
				colour = tex.Sample(p.texCoord(w))
			default:
				colour = Black()
			}

			idx := (rowOff + x) * 4
			fb.Pix[idx] = colour.R
			fb.Pix[idx+1] = colour.G
			fb.Pix[idx+2] = colour.B
			// Alpha byte stays untouched.
		}
	}
}
