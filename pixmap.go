package evo

import "fmt"

// Pixmap is a dense row-major RGBA pixel buffer, 4 bytes per pixel.
type Pixmap struct {
	width  int
	height int
	data   []uint8
}

// NewPixmap returns a pixmap of the given size filled with opaque white.
func NewPixmap(width, height int) (*Pixmap, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	p := &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
	p.Fill(White)
	return p, nil
}

// PixmapFromBytes wraps an existing RGBA buffer. The buffer is used in place
// and must be exactly 4*width*height bytes long.
func PixmapFromBytes(width, height int, data []uint8) (*Pixmap, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	if len(data) != width*height*4 {
		return nil, fmt.Errorf("%w: %d bytes for %dx%d", ErrReferenceSize, len(data), width, height)
	}
	return &Pixmap{width: width, height: height, data: data}, nil
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Size returns the number of pixels.
func (p *Pixmap) Size() int {
	return p.width * p.height
}

// Bytes returns the raw RGBA data.
func (p *Pixmap) Bytes() []uint8 {
	return p.data
}

// InBounds reports whether (x, y) addresses a pixel of p.
func (p *Pixmap) InBounds(x, y int) bool {
	return x >= 0 && x < p.width && y >= 0 && y < p.height
}

// Pixel returns the pixel at (x, y), or the zero Pixel when out of bounds.
func (p *Pixmap) Pixel(x, y int) Pixel {
	if !p.InBounds(x, y) {
		return Pixel{}
	}
	i := (y*p.width + x) * 4
	return Pixel{R: p.data[i], G: p.data[i+1], B: p.data[i+2], A: p.data[i+3]}
}

// SetColor overwrites the pixel at (x, y). Out-of-bounds writes are dropped.
func (p *Pixmap) SetColor(x, y int, c Color) {
	if !p.InBounds(x, y) {
		return
	}
	p.store(x, y, PixelOf(c))
}

// AddColor composites c over the pixel at (x, y). Out-of-bounds writes are
// dropped.
func (p *Pixmap) AddColor(x, y int, c Color) {
	if !p.InBounds(x, y) {
		return
	}
	px := p.Pixel(x, y)
	px.AddColor(c)
	p.store(x, y, px)
}

// Fill overwrites every pixel with c.
func (p *Pixmap) Fill(c Color) {
	for i := 0; i < len(p.data); i += 4 {
		p.data[i+0] = c.R
		p.data[i+1] = c.G
		p.data[i+2] = c.B
		p.data[i+3] = c.A
	}
}

// View returns a read-only view of the pixmap.
func (p *Pixmap) View() View {
	return View{width: p.width, height: p.height, data: p.data}
}

func (p *Pixmap) store(x, y int, px Pixel) {
	i := (y*p.width + x) * 4
	p.data[i+0] = px.R
	p.data[i+1] = px.G
	p.data[i+2] = px.B
	p.data[i+3] = px.A
}
