// Package blend implements the source-over compositing rule used to paint
// genes onto a candidate.
//
// Colors are straight (non-premultiplied) alpha with 8-bit channels. Alpha is
// normalized to [0, 1] for the computation:
//
//	outA = srcA + dstA*(1-srcA)
//	outC = (srcC*srcA + dstC*dstA*(1-srcA)) / outA
//
// References:
//   - Porter-Duff: "Compositing Digital Images" (1984)
//   - W3C Compositing and Blending Level 1: https://www.w3.org/TR/compositing-1/
package blend

// RGBA8 is a straight-alpha color with 8-bit channels.
type RGBA8 struct {
	R, G, B, A uint8
}

// SourceOver paints src over dst.
//
// The computation runs in float32 and each channel is truncated, not
// rounded, back to 8 bits. An opaque src always yields src and a fully
// transparent src always yields dst.
func SourceOver(dst, src RGBA8) RGBA8 {
	switch src.A {
	case 255:
		return src
	case 0:
		return dst
	}

	srcA := float32(src.A) / 255
	dstA := float32(dst.A) / 255
	// Explicit conversions round each product on its own, so results do not
	// depend on whether the target fuses multiply-add.
	covered := float32(dstA * (1 - srcA))
	outA := srcA + covered
	if outA == 0 {
		return RGBA8{}
	}

	ch := func(s, d uint8) uint8 {
		return truncate255((float32(float32(s)*srcA) + float32(float32(d)*covered)) / outA)
	}
	return RGBA8{
		R: ch(src.R, dst.R),
		G: ch(src.G, dst.G),
		B: ch(src.B, dst.B),
		A: truncate255(float32(255 * outA)),
	}
}

// truncate255 clamps v to [0, 255] and drops the fractional part.
func truncate255(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}
