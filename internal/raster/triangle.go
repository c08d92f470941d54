package raster

import (
	"iter"
	"math"
)

// Triangle is a filled triangle with integer vertices.
//
// Coverage is exclusive: a pixel is painted only when all three of its
// barycentric weights are strictly positive, so points on an edge or a
// vertex are never covered.
type Triangle struct {
	V0, V1, V2 Point
}

// NewTriangle returns the triangle with the given vertices.
func NewTriangle(v0, v1, v2 Point) Triangle {
	return Triangle{V0: v0, V1: v1, V2: v2}
}

// Bounds returns the bounding box of the three vertices.
func (t Triangle) Bounds() BBox {
	return NewBBox(t.V0, t.V1, t.V2)
}

// Barycentric returns the barycentric weights of p with respect to t.
//
// The weights come from the cross product of (v2-v0, v1-v0, v0-p) taken
// separately for x and y. When the z component of that product is smaller
// than 1 in magnitude the triangle has (almost) no area at pixel scale and
// ok is false.
func (t Triangle) Barycentric(p Point) (w [3]float64, ok bool) {
	ax := float64(t.V2.X) - float64(t.V0.X)
	ay := float64(t.V1.X) - float64(t.V0.X)
	az := float64(t.V0.X) - float64(p.X)

	bx := float64(t.V2.Y) - float64(t.V0.Y)
	by := float64(t.V1.Y) - float64(t.V0.Y)
	bz := float64(t.V0.Y) - float64(p.Y)

	// Conversions keep each product rounded on its own so results do not
	// depend on whether the target fuses multiply-add.
	ux := float64(ay*bz) - float64(az*by)
	uy := float64(az*bx) - float64(ax*bz)
	uz := float64(ax*by) - float64(ay*bx)

	if math.Abs(uz) < 1.0 {
		return w, false
	}
	w[0] = 1.0 - (ux+uy)/uz
	w[1] = uy / uz
	w[2] = ux / uz
	return w, true
}

// Contains reports whether p lies strictly inside t.
func (t Triangle) Contains(p Point) bool {
	w, ok := t.Barycentric(p)
	if !ok {
		return false
	}
	return w[0] > 0 && w[1] > 0 && w[2] > 0
}

// Points yields the pixels of the bounding box that lie strictly inside t.
func (t Triangle) Points() iter.Seq[Point] {
	box := t.Bounds()
	return func(yield func(Point) bool) {
		for p := range box.Points() {
			if t.Contains(p) && !yield(p) {
				return
			}
		}
	}
}
