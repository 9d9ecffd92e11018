package dice

import "errors"

var (
	// ErrInvalidInput reports a malformed argument: no faces, an unusable label, count < 1.
	ErrInvalidInput = errors.New("invalid input")
	// ErrDuplicateLabel reports a face that appears more than once on a die.
	ErrDuplicateLabel = errors.New("duplicate face label")
	// ErrUnknownLabel reports a weight change for a face the die does not have.
	ErrUnknownLabel = errors.New("unknown face label")
	// ErrInvalidWeight reports a negative or non-finite weight, or a die with no drawable face.
	ErrInvalidWeight = errors.New("invalid weight")
)
