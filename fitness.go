package evo

import "fmt"

// Compare scores p against a reference RGBA buffer of the same resolution.
//
// The score is
//
//	1 - sum((p[i] - ref[i])^2) / (N^2 * 256^2)
//
// over all four channels of every pixel, where N is len(ref). A perfect match
// scores exactly 1 and the score decreases with error. The N^2 normalization
// is kept as-is; only the relative order of scores matters for selection.
//
// Compare fails with ErrReferenceSize unless len(ref) == 4*p.Size().
func (p *Pixmap) Compare(ref []uint8) (float64, error) {
	if len(p.data) != len(ref) {
		return 0, fmt.Errorf("%w: %d pixels against %d reference bytes",
			ErrReferenceSize, p.Size(), len(ref))
	}

	var errSum float64
	for i := 0; i < len(ref); i++ {
		d := float64(p.data[i]) - float64(ref[i])
		errSum += d * d
	}

	n := float64(len(ref))
	return 1.0 - errSum/(n*n*256.0*256.0), nil
}
