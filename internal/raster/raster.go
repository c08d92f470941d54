// Package raster provides integer rasterization of the primitives a gene can
// encode: filled triangles and one-pixel line segments.
//
// The package has no notion of colors or pixel storage. Each primitive yields
// the integer points it covers and the caller decides how to paint them, which
// keeps this package free of any dependency on the root package.
package raster

import "iter"

// Point is an integer pixel coordinate.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Primitive is a shape that can enumerate the pixels it covers.
type Primitive interface {
	// Points returns the covered pixels. The sequence is finite and may be
	// ranged over any number of times.
	Points() iter.Seq[Point]
}

// Collect gathers every point a primitive covers, in iteration order.
func Collect(p Primitive) []Point {
	var pts []Point
	for pt := range p.Points() {
		pts = append(pts, pt)
	}
	return pts
}
