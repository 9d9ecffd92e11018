package game

import (
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/google/uuid"

	"github.com/xtding233/montecarlo/internal/dice"
)

var (
	// ErrNoResults reports a read of results before any run succeeded.
	ErrNoResults = errors.New("no results; run the game first")
	// ErrInvalidArgument reports an unsupported result shape.
	ErrInvalidArgument = errors.New("invalid argument")
)

// Runner rolls a fixed, ordered set of dice for a number of trials and keeps
// the outcome table of the latest run.
type Runner[L comparable] struct {
	dice   []*dice.Die[L]
	logger *log.Logger

	mu      sync.RWMutex
	results *outcomes[L]
}

// Option configures a Runner.
type Option func(*runnerOptions)

type runnerOptions struct {
	logger *log.Logger
}

// WithLogger reports every completed run to logger.
func WithLogger(logger *log.Logger) Option {
	return func(o *runnerOptions) { o.logger = logger }
}

// NewRunner creates a runner for dice. The same die may appear more than once.
func NewRunner[L comparable](ds []*dice.Die[L], opts ...Option) (*Runner[L], error) {
	var o runnerOptions
	for _, opt := range opts {
		opt(&o)
	}
	if len(ds) == 0 {
		return nil, fmt.Errorf("%w: a game needs at least one die", dice.ErrInvalidInput)
	}
	for i, d := range ds {
		if d == nil {
			return nil, fmt.Errorf("%w: die %d is nil", dice.ErrInvalidInput, i)
		}
	}
	return &Runner[L]{
		dice:   append([]*dice.Die[L](nil), ds...),
		logger: o.logger,
	}, nil
}

// Run plays trials rounds, one draw per die per round, and replaces the
// previous table. If any draw fails the previous table is kept.
func (r *Runner[L]) Run(trials int) error {
	if trials < 1 {
		return fmt.Errorf("%w: trials %d must be >= 1", dice.ErrInvalidInput, trials)
	}

	rows := make([][]L, trials)
	for t := range rows {
		row := make([]L, len(r.dice))
		for i, d := range r.dice {
			face, err := d.Roll()
			if err != nil {
				return fmt.Errorf("trial %d, %s: %w", t+1, DieColumn(i), err)
			}
			row[i] = face
		}
		rows[t] = row
	}

	next := &outcomes[L]{runID: uuid.NewString(), rows: rows}
	r.mu.Lock()
	r.results = next
	r.mu.Unlock()

	if r.logger != nil {
		r.logger.Printf("run %s: %d trials x %d dice", next.runID, trials, len(r.dice))
	}
	return nil
}

// Results returns a copy of the latest table in the requested shape.
// The narrow form is always derived from the current table.
func (r *Runner[L]) Results(shape Shape) (*Table[L], error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.results == nil {
		return nil, ErrNoResults
	}
	switch shape {
	case ShapeWide:
		return r.results.wide(), nil
	case ShapeNarrow:
		return r.results.narrow(), nil
	default:
		return nil, fmt.Errorf("%w: shape %q, want %q or %q", ErrInvalidArgument, shape, ShapeWide, ShapeNarrow)
	}
}

// Wide is Results(ShapeWide).
func (r *Runner[L]) Wide() (*Table[L], error) { return r.Results(ShapeWide) }

// Narrow is Results(ShapeNarrow).
func (r *Runner[L]) Narrow() (*Table[L], error) { return r.Results(ShapeNarrow) }

// HasResults reports whether a run has succeeded.
func (r *Runner[L]) HasResults() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.results != nil
}

// RunID identifies the latest table; it changes on every successful run.
func (r *Runner[L]) RunID() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.results == nil {
		return ""
	}
	return r.results.runID
}

// Trials returns the row count of the latest table, 0 before any run.
func (r *Runner[L]) Trials() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.results == nil {
		return 0
	}
	return len(r.results.rows)
}

// Dice returns the dice in column order.
func (r *Runner[L]) Dice() []*dice.Die[L] {
	return append([]*dice.Die[L](nil), r.dice...)
}
