package analyzer

import (
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/xtding233/montecarlo/internal/dice"
)

// Stats summarizes one value per trial.
type Stats struct {
	Trials int
	Mean   float64
	Var    float64 // population variance
	StdDev float64
	Min    float64
	Max    float64
	P50    float64
	P90    float64
	P99    float64
}

// Summarize maps every face to a number with value, totals each trial, and
// summarizes the totals. For numeric dice value is usually the face itself.
func (a *Analyzer[L]) Summarize(value func(L) float64) (Stats, error) {
	if value == nil {
		return Stats{}, fmt.Errorf("%w: value func is nil", dice.ErrInvalidInput)
	}
	t, err := a.table()
	if err != nil {
		return Stats{}, err
	}
	totals := make([]float64, len(t.Cells))
	for i, row := range t.Cells {
		for _, v := range row {
			totals[i] += value(v)
		}
	}
	return calcStats(totals), nil
}

// calcStats computes mean/variance/percentiles; xs is sorted in place.
func calcStats(xs []float64) Stats {
	n := len(xs)
	if n == 0 {
		return Stats{}
	}
	slices.Sort(xs)
	mean, variance := stat.PopMeanVariance(xs, nil)
	return Stats{
		Trials: n,
		Mean:   mean,
		Var:    variance,
		StdDev: math.Sqrt(variance),
		Min:    xs[0],
		Max:    xs[n-1],
		P50:    stat.Quantile(0.50, stat.LinInterp, xs, nil),
		P90:    stat.Quantile(0.90, stat.LinInterp, xs, nil),
		P99:    stat.Quantile(0.99, stat.LinInterp, xs, nil),
	}
}

// Fit is a chi-square goodness-of-fit test of one die's observed faces against
// the die's current weights.
type Fit struct {
	Column           string
	Statistic        float64
	DegreesOfFreedom int
	PValue           float64
}

// GoodnessOfFit tests whether the faces the die at position die produced are
// consistent with its current weights. Weights changed after the run are used
// as they are now.
func (a *Analyzer[L]) GoodnessOfFit(die int) (Fit, error) {
	t, err := a.table()
	if err != nil {
		return Fit{}, err
	}
	c, err := column(t, die)
	if err != nil {
		return Fit{}, err
	}
	dies := a.runner.Dice()
	probs, err := dies[c].Probabilities()
	if err != nil {
		return Fit{}, err
	}

	freq := make(map[L]int, len(probs))
	for _, row := range t.Cells {
		freq[row[c]]++
	}
	n := float64(len(t.Cells))
	fit := Fit{Column: t.Columns[c]}

	var obs, exp []float64
	impossible := false
	for _, p := range probs {
		if p.Weight == 0 {
			// a zero-weight face that showed up cannot be explained by the weights
			impossible = impossible || freq[p.Face] > 0
			continue
		}
		obs = append(obs, float64(freq[p.Face]))
		exp = append(exp, p.Weight*n)
	}
	fit.DegreesOfFreedom = len(obs) - 1
	if impossible {
		fit.Statistic = math.Inf(1)
		return fit, nil
	}
	if fit.DegreesOfFreedom < 1 {
		fit.PValue = 1
		return fit, nil
	}
	fit.Statistic = stat.ChiSquare(obs, exp)
	fit.PValue = 1 - distuv.ChiSquared{K: float64(fit.DegreesOfFreedom)}.CDF(fit.Statistic)
	return fit, nil
}
