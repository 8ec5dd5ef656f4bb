// Package raster implements a software triangle rasterizer: barycentric
// inside-testing, per-vertex colour interpolation, wrapped texture sampling,
// and painter's-algorithm writes into an RGBA framebuffer.
package raster

// Coord is a 2D point in floating-point pixel space. It doubles as a
// texture-space coordinate.
type Coord struct {
	X, Y float32
}

// EdgeFunction computes the cross product of the vectors a→b and a→c.
// The Z component of both vectors is zero, so the result is effectively
// scalar. It serves two purposes:
//
//  1. Its sign tells which side of the directed line a→b the point c
//     lies on, which drives the inside test.
//  2. Its magnitude is twice the area of triangle a,b,c, which
//     normalises the barycentric weights.
func EdgeFunction(a, b, c Coord) float32 {
	return (c.X-a.X)*(b.Y-a.Y) - (c.Y-a.Y)*(b.X-a.X)
}

// Interpolate returns the weighted sum of three vertex values under the
// given barycentric weights.
func Interpolate(vals, weights [3]float32) float32 {
	return vals[0]*weights[0] + vals[1]*weights[1] + vals[2]*weights[2]
}
