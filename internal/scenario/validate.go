package scenario

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrScenarioConfig reports a scenario that cannot be built.
var ErrScenarioConfig = errors.New("invalid scenario config")

// ValidateRaw checks semantic constraints of a merged RawConfig.
func ValidateRaw(cfg RawConfig) error {
	var errs []string

	if cfg.Trials != nil && *cfg.Trials < 1 {
		errs = append(errs, "trials must be >= 1")
	}
	if len(cfg.Dice) == 0 {
		errs = append(errs, "dice must list at least one die")
	}
	for i, d := range cfg.Dice {
		if len(d.Faces) == 0 {
			errs = append(errs, fmt.Sprintf("dice[%d].faces must not be empty", i))
		}
		if len(d.Weights) > 0 && len(d.Weights) != len(d.Faces) {
			errs = append(errs, fmt.Sprintf("dice[%d].weights has %d entries for %d faces", i, len(d.Weights), len(d.Faces)))
		}
		for j, w := range d.Weights {
			if math.IsNaN(w) || math.IsInf(w, 0) || w < 0 {
				errs = append(errs, fmt.Sprintf("dice[%d].weights[%d] must be finite and >= 0", i, j))
			}
		}
		if d.Copies < 0 {
			errs = append(errs, fmt.Sprintf("dice[%d].copies must be >= 0", i))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %s", ErrScenarioConfig, strings.Join(errs, "; "))
	}
	return nil
}
