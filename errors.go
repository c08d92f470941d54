package evo

import "errors"

// Precondition errors. They indicate caller misuse and are never retried.
var (
	// ErrInvalidDimensions is returned when a width or height is not positive,
	// or a shrink target is larger than its source.
	ErrInvalidDimensions = errors.New("evo: invalid dimensions")

	// ErrReferenceSize is returned when a reference buffer is not exactly
	// 4 bytes per pixel of the resolution it is compared at.
	ErrReferenceSize = errors.New("evo: reference buffer size mismatch")

	// ErrNotDivisible is returned when the candidate resolution is not an
	// exact multiple of the reference resolution.
	ErrNotDivisible = errors.New("evo: candidate size not divisible by reference size")

	// ErrInvalidOption is returned for out-of-range option values.
	ErrInvalidOption = errors.New("evo: invalid option")
)
