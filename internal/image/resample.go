package image

import (
	"fmt"
	"image"

	xdraw "golang.org/x/image/draw"
)

// Reference resamples img to width x height and returns its pixels as
// row-major straight-alpha RGBA, 4*width*height bytes.
//
// When img already has the requested size its pixels are copied as-is;
// otherwise it is filtered with Catmull-Rom.
func Reference(img image.Image, width, height int) ([]uint8, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}

	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	b := img.Bounds()
	if b.Dx() == width && b.Dy() == height {
		xdraw.Draw(dst, dst.Bounds(), img, b.Min, xdraw.Src)
	} else {
		xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, b, xdraw.Src, nil)
	}
	return dst.Pix, nil
}

// Resized reports whether Reference would filter img to reach width x height.
func Resized(img image.Image, width, height int) bool {
	b := img.Bounds()
	return b.Dx() != width || b.Dy() != height
}

// Upscale enlarges img by an integer factor with nearest-neighbour sampling,
// keeping hard pixel edges.
func Upscale(img image.Image, scale int) (*image.NRGBA, error) {
	if scale <= 0 {
		return nil, fmt.Errorf("%w: scale %d", ErrInvalidSize, scale)
	}
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx()*scale, b.Dy()*scale))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, xdraw.Src, nil)
	return dst, nil
}
