// Package analyzer derives statistics from the outcome table of a game.Runner.
//
// An Analyzer never copies the runner: every call reads the runner's current
// table, so re-running the game changes what later calls report.
package analyzer

import (
	"cmp"
	"fmt"
	"sync"

	"github.com/xtding233/montecarlo/internal/dice"
	"github.com/xtding233/montecarlo/internal/game"
)

// ColumnCount names the statistics column of Counts.
const ColumnCount = "Count"

// Analyzer computes statistics over a runner's latest results.
type Analyzer[L cmp.Ordered] struct {
	runner *game.Runner[L]

	mu     sync.Mutex
	cached *game.Table[L] // wide table of runner.RunID()
}

// New wraps runner. The runner must already have results.
func New[L cmp.Ordered](runner *game.Runner[L]) (*Analyzer[L], error) {
	if runner == nil {
		return nil, fmt.Errorf("%w: analyzer needs a game", dice.ErrInvalidInput)
	}
	if !runner.HasResults() {
		return nil, game.ErrNoResults
	}
	return &Analyzer[L]{runner: runner}, nil
}

// Runner returns the analyzed runner.
func (a *Analyzer[L]) Runner() *game.Runner[L] { return a.runner }

// table returns the runner's wide table, refreshed when the run ID moved.
func (a *Analyzer[L]) table() (*game.Table[L], error) {
	id := a.runner.RunID()
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.cached != nil && a.cached.RunID == id {
		return a.cached, nil
	}
	t, err := a.runner.Wide()
	if err != nil {
		return nil, err
	}
	a.cached = t
	return t, nil
}

// CountJackpots returns the number of trials in which every die showed the same face.
// With a single die every trial is a jackpot.
func (a *Analyzer[L]) CountJackpots() (int, error) {
	t, err := a.table()
	if err != nil {
		return 0, err
	}
	n := 0
	for _, row := range t.Cells {
		if jackpot(row) {
			n++
		}
	}
	return n, nil
}

func jackpot[L comparable](row []L) bool {
	for _, v := range row[1:] {
		if v != row[0] {
			return false
		}
	}
	return true
}

// column returns the index of die in t, or an error when out of range.
func column[L comparable](t *game.Table[L], die int) (int, error) {
	if die < 0 || die >= len(t.Columns) {
		return 0, fmt.Errorf("%w: die %d, game has %d", dice.ErrInvalidInput, die, len(t.Columns))
	}
	return die, nil
}
