package evo

import (
	"image/color"
	"math/rand/v2"

	"github.com/gogpu/evo/internal/blend"
)

// Color is a straight (non-premultiplied) RGBA color with 8-bit channels.
type Color struct {
	R, G, B, A uint8
}

// Common colors.
var (
	White       = Color{R: 255, G: 255, B: 255, A: 255}
	Black       = Color{R: 0, G: 0, B: 0, A: 255}
	Transparent = Color{}
)

// RGBA returns a color from its four channels.
func RGBA(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// RandomColor returns a color whose four channels are drawn uniformly from
// [0, 255].
func RandomColor(rng *rand.Rand) Color {
	return Color{
		R: uint8(rng.IntN(256)),
		G: uint8(rng.IntN(256)),
		B: uint8(rng.IntN(256)),
		A: uint8(rng.IntN(256)),
	}
}

// Blend paints top over c using source-over compositing and returns the
// result. Channels are truncated, not rounded, back to 8 bits; see
// blend.SourceOver for the exact formula.
func (c Color) Blend(top Color) Color {
	return Color(blend.SourceOver(blend.RGBA8(c), blend.RGBA8(top)))
}

// NRGBA converts c to the standard library color type.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}
