package evo

import "fmt"

// Shrink downsamples p with a box filter.
//
// The source is cut into non-overlapping tiles of (Width/width) x
// (Height/height) pixels and each tile becomes one opaque output pixel whose
// red, green and blue channels are the integer mean of the tile. Output is
// row-major.
//
// Tile sizes use integer division. When the source is not an exact multiple
// of the target, the remainder rows and columns are not sampled and the
// output is Width/tileW x Height/tileH, which can be larger than requested.
// Compare rejects such an output against a reference of the requested size.
func (p *Pixmap) Shrink(width, height int) (*Pixmap, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: shrink target %dx%d", ErrInvalidDimensions, width, height)
	}
	tileW := p.width / width
	tileH := p.height / height
	if tileW == 0 || tileH == 0 {
		return nil, fmt.Errorf("%w: cannot shrink %dx%d to %dx%d",
			ErrInvalidDimensions, p.width, p.height, width, height)
	}

	outW := p.width / tileW
	outH := p.height / tileH
	area := uint32(tileW * tileH)

	out := &Pixmap{
		width:  outW,
		height: outH,
		data:   make([]uint8, 0, outW*outH*4),
	}
	for row := range outH {
		for col := range outW {
			var sumR, sumG, sumB uint32
			for y := row * tileH; y < (row+1)*tileH; y++ {
				i := (y*p.width + col*tileW) * 4
				for range tileW {
					sumR += uint32(p.data[i])
					sumG += uint32(p.data[i+1])
					sumB += uint32(p.data[i+2])
					i += 4
				}
			}
			out.data = append(out.data,
				uint8(sumR/area),
				uint8(sumG/area),
				uint8(sumB/area),
				255)
		}
	}
	return out, nil
}
