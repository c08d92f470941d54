package raster

import "iter"

// Line is a one-pixel segment between two integer endpoints, both inclusive.
type Line struct {
	P0, P1 Point
}

// NewLine returns the segment from p0 to p1.
func NewLine(p0, p1 Point) Line {
	return Line{P0: p0, P1: p1}
}

// Points yields the pixels along the segment.
//
// Horizontal and vertical segments are walked directly. Any other segment is
// walked with x increasing; the slope magnitude is accumulated as an error
// term and y moves one step toward the far endpoint each time the error
// reaches 0.5. Only one pixel is produced per column.
func (l Line) Points() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		p0, p1 := l.P0, l.P1

		if p0.Y == p1.Y {
			x0, x1 := min(p0.X, p1.X), max(p0.X, p1.X)
			for x := x0; x <= x1; x++ {
				if !yield(Point{X: x, Y: p0.Y}) {
					return
				}
			}
			return
		}

		if p0.X == p1.X {
			y0, y1 := min(p0.Y, p1.Y), max(p0.Y, p1.Y)
			for y := y0; y <= y1; y++ {
				if !yield(Point{X: p0.X, Y: y}) {
					return
				}
			}
			return
		}

		if p0.X > p1.X {
			p0, p1 = p1, p0
		}

		dx := float64(p1.X - p0.X)
		dy := float64(p1.Y - p0.Y)
		slope := dy / dx
		if slope < 0 {
			slope = -slope
		}
		step := 1
		if dy < 0 {
			step = -1
		}

		y := p0.Y
		var errAcc float64
		for x := p0.X; x <= p1.X; x++ {
			if !yield(Point{X: x, Y: y}) {
				return
			}
			errAcc += slope
			for errAcc >= 0.5 {
				y += step
				errAcc -= 1.0
			}
		}
	}
}
