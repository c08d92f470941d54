package raster

import "iter"

// BBox is an axis-aligned bounding box with inclusive integer bounds.
type BBox struct {
	Min, Max Point
}

// NewBBox returns the smallest box containing all of the given points.
// It panics if pts is empty.
func NewBBox(pts ...Point) BBox {
	b := BBox{Min: pts[0], Max: pts[0]}
	for _, p := range pts[1:] {
		b.Min.X = min(b.Min.X, p.X)
		b.Min.Y = min(b.Min.Y, p.Y)
		b.Max.X = max(b.Max.X, p.X)
		b.Max.Y = max(b.Max.Y, p.Y)
	}
	return b
}

// Dx returns the number of columns covered by the box.
func (b BBox) Dx() int { return b.Max.X - b.Min.X + 1 }

// Dy returns the number of rows covered by the box.
func (b BBox) Dy() int { return b.Max.Y - b.Min.Y + 1 }

// Contains reports whether p lies within the box bounds.
func (b BBox) Contains(p Point) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X && p.Y >= b.Min.Y && p.Y <= b.Max.Y
}

// Points yields every integer point of the box in row-major order.
func (b BBox) Points() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for y := b.Min.Y; y <= b.Max.Y; y++ {
			for x := b.Min.X; x <= b.Max.X; x++ {
				if !yield(Point{X: x, Y: y}) {
					return
				}
			}
		}
	}
}
