package raster

import "github.com/chewxy/math32"

// degenerateArea is the doubled-area threshold below which a triangle is
// treated as collinear. Normalising weights by a smaller area would leak
// NaN/Inf into colour computation, so callers see such points as outside.
const degenerateArea = 1e-8

// Polygon is a triangle in pixel space. Colours and TexCoords are optional
// parallel triples: a nil field means the polygon carries no per-vertex
// colours / no texture coordinates. When present they correspond
// index-for-index to Vertices.
//
// Vertex order defines the winding the edge function's sign convention
// expects; all three edge tests must come out non-negative for a point to
// count as inside.
type Polygon struct {
	Vertices  [3]Coord
	Colours   *[3]Colour
	TexCoords *[3]Coord
}

// BoundingBox is the axis-aligned box covering a polygon's vertices.
// Transient: recomputed per rasterization call, never cached.
type BoundingBox struct {
	Min, Max Coord
}

// BoundingBox returns the per-axis min/max over the three vertices.
func (p *Polygon) BoundingBox() BoundingBox {
	min, max := p.Vertices[0], p.Vertices[0]
	for _, v := range p.Vertices[1:] {
		min.X = math32.Min(min.X, v.X)
		min.Y = math32.Min(min.Y, v.Y)
		max.X = math32.Max(max.X, v.X)
		max.Y = math32.Max(max.Y, v.Y)
	}
	return BoundingBox{Min: min, Max: max}
}

// TestInside reports whether coord lies inside the triangle and, if so,
// returns its barycentric weights. Each edge i→j contributes the weight of
// the opposite vertex (i+2)%3, so the triple sums to 1 for inside points.
// Points exactly on an edge count as inside. Degenerate (near-collinear)
// triangles contain no points.
func (p *Polygon) TestInside(coord Coord) ([3]float32, bool) {
	var w [3]float32

	area := EdgeFunction(p.Vertices[0], p.Vertices[1], p.Vertices[2])
	if math32.Abs(area) < degenerateArea {
		return w, false
	}

	for i := 0; i < 3; i++ {
		j := (i + 1) % 3
		wx := EdgeFunction(p.Vertices[i], p.Vertices[j], coord)
		if wx < 0 {
			// Point lies on the wrong side of this edge.
			return w, false
		}
		// Normalise with respect to the doubled triangle area.
		w[(i+2)%3] = wx / area
	}

	return w, true
}

// shade interpolates the per-vertex colours at the given weights, one
// channel at a time. Callers must ensure Colours is non-nil.
func (p *Polygon) shade(w [3]float32) Colour {
	c := p.Colours
	return Colour{
		R: uint8(Interpolate([3]float32{float32(c[0].R), float32(c[1].R), float32(c[2].R)}, w)),
		G: uint8(Interpolate([3]float32{float32(c[0].G), float32(c[1].G), float32(c[2].G)}, w)),
		B: uint8(Interpolate([3]float32{float32(c[0].B), float32(c[1].B), float32(c[2].B)}, w)),
	}
}

// texCoord interpolates the per-vertex texture coordinates at the given
// weights. Callers must ensure TexCoords is non-nil.
func (p *Polygon) texCoord(w [3]float32) Coord {
	t := p.TexCoords
	return Coord{
		X: Interpolate([3]float32{t[0].X, t[1].X, t[2].X}, w),
		Y: Interpolate([3]float32{t[0].Y, t[1].Y, t[2].Y}, w),
	}
}
