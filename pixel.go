package evo

// Pixel is one stored color sample of a rendered image.
//
// Pixel and Color share a layout. Color is the value painted; Pixel is the
// mutable cell it is painted onto.
type Pixel struct {
	R, G, B, A uint8
}

// PixelOf returns a pixel holding c.
func PixelOf(c Color) Pixel {
	return Pixel{R: c.R, G: c.G, B: c.B, A: c.A}
}

// Color returns the color currently stored in p.
func (p Pixel) Color() Color {
	return Color{R: p.R, G: p.G, B: p.B, A: p.A}
}

// SetColor overwrites p with c.
func (p *Pixel) SetColor(c Color) {
	*p = PixelOf(c)
}

// AddColor composites c over p in place.
func (p *Pixel) AddColor(c Color) {
	*p = PixelOf(p.Color().Blend(c))
}

// SquaredError returns the sum of squared differences over all four channels.
func (p Pixel) SquaredError(other Pixel) float64 {
	return sq(p.R, other.R) + sq(p.G, other.G) + sq(p.B, other.B) + sq(p.A, other.A)
}

func sq(a, b uint8) float64 {
	d := float64(a) - float64(b)
	return d * d
}
