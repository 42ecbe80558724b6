package rlemorph

import "errors"

// Errors returned by the codec, the algebra checks and the morphology engine.
// Call sites wrap them with the offending sizes; test with errors.Is.
var (
	// ErrDimensionMismatch is returned when a row, image or pixel grid does
	// not have the width or height the operation was given.
	ErrDimensionMismatch = errors.New("rlemorph: dimension mismatch")

	// ErrInvalidKernel is returned for negative structuring element sizes.
	ErrInvalidKernel = errors.New("rlemorph: invalid kernel")

	// ErrInvariantViolation reports a run list that is not canonical:
	// unsorted, overlapping, touching, empty or out of bounds runs.
	// Every run list produced by this package is canonical, so seeing it
	// means either a caller built a Row by hand or there is a bug.
	ErrInvariantViolation = errors.New("rlemorph: run list invariant violated")
)
