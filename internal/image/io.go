// Package image loads reference images and writes evolved images.
//
// Decoders for PNG, JPEG, GIF, BMP, TIFF and WebP are registered, so any of
// those formats can serve as a reference.
package image

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif" // register GIF decoder
	_ "image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// I/O errors.
var (
	// ErrEmptyData is returned when image data is empty.
	ErrEmptyData = errors.New("image: empty data")

	// ErrInvalidSize is returned for non-positive target sizes or scales.
	ErrInvalidSize = errors.New("image: invalid size")
)

// Load decodes the image file at path, detecting the format from its content.
func Load(path string) (image.Image, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("image: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Decode(f)
}

// LoadBytes decodes an in-memory image, detecting the format from its content.
func LoadBytes(data []byte) (image.Image, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}
	return Decode(bytes.NewReader(data))
}

// Decode decodes an image from r.
func Decode(r io.Reader) (image.Image, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("image: decode: %w", err)
	}
	return img, nil
}

// SavePNG writes img to path as a PNG, enlarged by an integer scale factor
// with nearest-neighbour sampling. A scale of 1 writes img unchanged.
func SavePNG(path string, img image.Image, scale int) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("image: create file: %w", err)
	}
	if err := EncodePNG(f, img, scale); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// EncodePNG writes img to w as a PNG, enlarged by scale as in SavePNG.
func EncodePNG(w io.Writer, img image.Image, scale int) error {
	if scale != 1 {
		up, err := Upscale(img, scale)
		if err != nil {
			return err
		}
		img = up
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("image: encode PNG: %w", err)
	}
	return nil
}
