package scenario

import (
	"cmp"
	"fmt"

	"github.com/xtding233/montecarlo/internal/analyzer"
	"github.com/xtding233/montecarlo/internal/config"
	"github.com/xtding233/montecarlo/internal/dice"
	"github.com/xtding233/montecarlo/internal/game"
)

// Plan is a built scenario, ready to run.
type Plan[L comparable] struct {
	Runner  *game.Runner[L]
	Trials  int
	Seed    *uint64 // nil when dice draw from DefaultRNG
	Version string
}

// Run plays the planned number of trials.
func (p *Plan[L]) Run() error {
	return p.Runner.Run(p.Trials)
}

// Build turns a merged config plus overrides into dice and a runner.
// With a seed, die i (after expanding copies) draws from stream i of that seed.
func Build[L comparable](cfg RawConfig, o Overrides, opts ...game.Option) (*Plan[L], error) {
	cfg = mergeRaw(cfg, RawConfig{Seed: o.Seed, Trials: o.Trials})
	if err := ValidateRaw(cfg); err != nil {
		return nil, err
	}
	if cfg.Trials == nil {
		return nil, fmt.Errorf("%w: trials is not set", ErrScenarioConfig)
	}

	var ds []*dice.Die[L]
	for i, dc := range cfg.Dice {
		faces := make([]L, len(dc.Faces))
		for j := range dc.Faces {
			if err := dc.Faces[j].Decode(&faces[j]); err != nil {
				return nil, fmt.Errorf("%w: dice[%d].faces[%d]: %v", ErrScenarioConfig, i, j, err)
			}
		}
		copies := max(dc.Copies, 1)
		for c := 0; c < copies; c++ {
			dieOpts := []dice.Option{}
			if len(dc.Weights) > 0 {
				dieOpts = append(dieOpts, dice.WithWeights(dc.Weights))
			}
			if cfg.Seed != nil {
				dieOpts = append(dieOpts, dice.WithRandomSource(dice.NewSeededStream(*cfg.Seed, uint64(len(ds)))))
			}
			d, err := dice.New(faces, dieOpts...)
			if err != nil {
				return nil, fmt.Errorf("dice[%d] %s: %w", i, dc.Name, err)
			}
			ds = append(ds, d)
		}
	}

	runner, err := game.NewRunner(ds, opts...)
	if err != nil {
		return nil, err
	}
	return &Plan[L]{
		Runner:  runner,
		Trials:  *cfg.Trials,
		Seed:    cfg.Seed,
		Version: cfg.Version,
	}, nil
}

// Simulate loads the named scenario, runs it and returns an analyzer over the results.
func Simulate[L cmp.Ordered](l *Loader, name string, o Overrides, opts ...game.Option) (*analyzer.Analyzer[L], error) {
	cfg, err := l.LoadMerged(name)
	if err != nil {
		return nil, err
	}
	plan, err := Build[L](cfg, o, opts...)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", name, err)
	}
	if err := plan.Run(); err != nil {
		return nil, fmt.Errorf("scenario %s: %w", name, err)
	}
	return analyzer.New(plan.Runner)
}

// FromSettings returns a loader and overrides for environment settings.
func FromSettings(s config.Settings) (*Loader, Overrides) {
	return NewLoader(s.ConfigDir), Overrides{Seed: s.Seed, Trials: s.Trials}
}

// SimulateFromEnv runs the scenario selected by the environment (see config.Load).
func SimulateFromEnv[L cmp.Ordered](opts ...game.Option) (*analyzer.Analyzer[L], error) {
	s, err := config.Load()
	if err != nil {
		return nil, err
	}
	l, o := FromSettings(s)
	return Simulate[L](l, s.Scenario, o, opts...)
}

// WatchSettings watches the files of the configured scenario at the configured interval.
func WatchSettings(l *Loader, s config.Settings) *FileWatcher {
	return l.Watch(s.Scenario, s.WatchInterval)
}
