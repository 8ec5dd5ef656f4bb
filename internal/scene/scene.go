// Package scene builds the polygon lists the rasterizer consumes.
package scene

import (
	"github.com/chewxy/math32"

	"soft-raster/internal/raster"
)

// Width and Height of the raster target the scene is laid out for.
const (
	Width  = 256
	Height = 256
)

// Demo returns the canonical frame: a large triangle carrying both vertex
// colours and texture coordinates, plus two smaller ones exercising the
// colour-only and texture-only paths. Painted in list order.
func Demo() []raster.Polygon {
	return []raster.Polygon{
		{
			Vertices: [3]raster.Coord{
				{X: 127.5, Y: 32},
				{X: 32, Y: 224},
				{X: 224, Y: 224},
			},
			Colours: &[3]raster.Colour{
				{R: 0xFF},
				{G: 0xFF},
				{B: 0xFF},
			},
			TexCoords: &[3]raster.Coord{
				{X: 16, Y: 0},
				{X: 0, Y: 32},
				{X: 32, Y: 32},
			},
		},
		{
			Vertices: [3]raster.Coord{
				{X: 20, Y: 20},
				{X: 10, Y: 60},
				{X: 60, Y: 60},
			},
			Colours: &[3]raster.Colour{
				{R: 0xFF, G: 0xFF},
				{G: 0xFF, B: 0xFF},
				{R: 0xFF, B: 0xFF},
			},
		},
		{
			Vertices: [3]raster.Coord{
				{X: 236, Y: 20},
				{X: 196, Y: 60},
				{X: 246, Y: 60},
			},
			TexCoords: &[3]raster.Coord{
				{X: 0, Y: 0},
				{X: 0, Y: 16},
				{X: 16, Y: 16},
			},
		},
	}
}

// Frame returns the demo polygons rotated by angle radians about the
// buffer centre. Rotation preserves winding, so the inside test's sign
// convention still holds for every frame.
func Frame(angle float32) []raster.Polygon {
	polys := Demo()
	sin, cos := math32.Sincos(angle)
	centre := raster.Coord{X: Width / 2, Y: Height / 2}

	for i := range polys {
		for j, v := range polys[i].Vertices {
			polys[i].Vertices[j] = rotate(v, centre, sin, cos)
		}
	}
	return polys
}

func rotate(v, centre raster.Coord, sin, cos float32) raster.Coord {
	dx := v.X - centre.X
	dy := v.Y - centre.Y
	return raster.Coord{
		X: centre.X + dx*cos - dy*sin,
		Y: centre.Y + dx*sin + dy*cos,
	}
}
