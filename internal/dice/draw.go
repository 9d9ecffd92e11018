package dice

import (
	"fmt"
	"math"
)

// pick returns the index selected by one weighted draw.
// r = rng.Float64() * total, then walk the cumulative weights; zero weights are never hit.
func pick(weights []float64, rng RandomSource) (int, error) {
	total := 0.0
	last := -1
	for i, w := range weights {
		total += w
		if w > 0 {
			last = i
		}
	}
	if last < 0 {
		return 0, fmt.Errorf("%w: every face has weight 0", ErrInvalidWeight)
	}
	if math.IsInf(total, 0) {
		return 0, fmt.Errorf("%w: total weight overflows", ErrInvalidWeight)
	}
	if rng == nil {
		rng = DefaultRNG()
	}
	r := rng.Float64() * total
	for i, w := range weights {
		if r < w {
			return i, nil
		}
		r -= w
	}
	// rounding can leave r just above the remaining mass
	return last, nil
}
