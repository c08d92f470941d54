package evo

import (
	"image"
	"image/color"
)

// View is a borrowed, read-only window onto a rendered pixel buffer.
//
// A View aliases the buffer of the candidate it came from. It stays valid
// until that candidate is mutated, re-rendered or culled, which for views
// obtained from a Population means until the next call to Evolve. Copy the
// data with ToImage or CopyTo to keep it longer.
//
// View implements image.Image with straight (non-premultiplied) alpha.
type View struct {
	width  int
	height int
	data   []uint8
}

// Width returns the width of the viewed buffer.
func (v View) Width() int {
	return v.width
}

// Height returns the height of the viewed buffer.
func (v View) Height() int {
	return v.height
}

// Len returns the length of the RGBA data in bytes, 4*Width*Height.
func (v View) Len() int {
	return len(v.data)
}

// Bytes returns the row-major RGBA data. The slice aliases the underlying
// buffer and must not be modified.
func (v View) Bytes() []uint8 {
	return v.data
}

// Pixel returns the pixel at (x, y), or the zero Pixel when out of bounds.
func (v View) Pixel(x, y int) Pixel {
	if x < 0 || x >= v.width || y < 0 || y >= v.height {
		return Pixel{}
	}
	i := (y*v.width + x) * 4
	return Pixel{R: v.data[i], G: v.data[i+1], B: v.data[i+2], A: v.data[i+3]}
}

// CopyTo copies the RGBA data into dst and returns the number of bytes
// copied.
func (v View) CopyTo(dst []uint8) int {
	return copy(dst, v.data)
}

// ToImage returns a copy of the viewed buffer as an *image.NRGBA.
func (v View) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, v.width, v.height))
	copy(img.Pix, v.data)
	return img
}

// At implements the image.Image interface.
func (v View) At(x, y int) color.Color {
	return v.Pixel(x, y).Color().NRGBA()
}

// Bounds implements the image.Image interface.
func (v View) Bounds() image.Rectangle {
	return image.Rect(0, 0, v.width, v.height)
}

// ColorModel implements the image.Image interface.
func (v View) ColorModel() color.Model {
	return color.NRGBAModel
}
