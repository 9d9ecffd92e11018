package dice

import (
	"fmt"
	"math"
)

func validateWeight(w float64) error {
	if math.IsNaN(w) || math.IsInf(w, 0) {
		return fmt.Errorf("%w: %v is not finite", ErrInvalidWeight, w)
	}
	if w < 0 {
		return fmt.Errorf("%w: %v is negative", ErrInvalidWeight, w)
	}
	return nil
}

// validateFaces checks that faces is usable as a die and returns the index of every face.
func validateFaces[L comparable](faces []L) (map[L]int, error) {
	if len(faces) == 0 {
		return nil, fmt.Errorf("%w: a die needs at least one face", ErrInvalidInput)
	}
	index := make(map[L]int, len(faces))
	for i, f := range faces {
		// NaN never equals itself, so it can neither be looked up nor checked for duplicates
		if f != f {
			return nil, fmt.Errorf("%w: face %d is not comparable to itself", ErrInvalidInput, i)
		}
		if j, ok := index[f]; ok {
			return nil, fmt.Errorf("%w: %v at positions %d and %d", ErrDuplicateLabel, f, j, i)
		}
		index[f] = i
	}
	return index, nil
}
