package analyzer_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xtding233/montecarlo/internal/analyzer"
	"github.com/xtding233/montecarlo/internal/dice"
	"github.com/xtding233/montecarlo/internal/game"
)

// faceSource makes a uniform d6 show the given faces in order.
type faceSource struct {
	faces []int
	pos   int
}

func (s *faceSource) Float64() float64 {
	f := s.faces[s.pos%len(s.faces)]
	s.pos++
	return (float64(f) - 0.5) / 6
}

func d6(t *testing.T, rng dice.RandomSource) *dice.Die[int] {
	t.Helper()
	d, err := dice.New([]int{1, 2, 3, 4, 5, 6}, dice.WithRandomSource(rng))
	require.NoError(t, err)
	return d
}

// scripted plays two dice sharing one source: trials are 1-1, 2-3, 3-2, 6-6, 2-3.
func scripted(t *testing.T) (*game.Runner[int], *analyzer.Analyzer[int]) {
	t.Helper()
	src := &faceSource{faces: []int{1, 1, 2, 3, 3, 2, 6, 6, 2, 3}}
	r, err := game.NewRunner([]*dice.Die[int]{d6(t, src), d6(t, src)})
	require.NoError(t, err)
	require.NoError(t, r.Run(5))
	a, err := analyzer.New(r)
	require.NoError(t, err)
	return r, a
}

func identity(v int) float64 { return float64(v) }

func TestNew(t *testing.T) {
	_, err := analyzer.New[int](nil)
	assert.ErrorIs(t, err, dice.ErrInvalidInput)

	r, err := game.NewRunner([]*dice.Die[int]{d6(t, nil)})
	require.NoError(t, err)
	_, err = analyzer.New(r)
	assert.ErrorIs(t, err, game.ErrNoResults)

	require.NoError(t, r.Run(1))
	a, err := analyzer.New(r)
	require.NoError(t, err)
	assert.Same(t, r, a.Runner())
}

func TestScriptedTable(t *testing.T) {
	r, _ := scripted(t)
	wide, err := r.Wide()
	require.NoError(t, err)
	assert.Equal(t, [][]int{{1, 1}, {2, 3}, {3, 2}, {6, 6}, {2, 3}}, wide.Cells)
}

func TestCountJackpots(t *testing.T) {
	_, a := scripted(t)
	n, err := a.CountJackpots()
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestCountJackpots_SingleDie(t *testing.T) {
	r, err := game.NewRunner([]*dice.Die[int]{d6(t, dice.NewSeededRNG(12))})
	require.NoError(t, err)
	require.NoError(t, r.Run(100))
	a, err := analyzer.New(r)
	require.NoError(t, err)

	n, err := a.CountJackpots()
	require.NoError(t, err)
	assert.Equal(t, 100, n)
}

func TestFaceCountsPerTrial(t *testing.T) {
	_, a := scripted(t)
	fc, err := a.FaceCountsPerTrial()
	require.NoError(t, err)

	assert.Equal(t, game.IndexTrial, fc.Index)
	assert.Equal(t, []int{1, 2, 3, 6}, fc.Faces)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, fc.Trials)
	assert.Equal(t, [][]int{
		{2, 0, 0, 0},
		{0, 1, 1, 0},
		{0, 1, 1, 0},
		{0, 0, 0, 2},
		{0, 1, 1, 0},
	}, fc.Counts)
	assert.Equal(t, 5, fc.Len())
	assert.Equal(t, 2, fc.Count(4, 6))
	assert.Equal(t, 0, fc.Count(4, 1))
	assert.Equal(t, 0, fc.Count(4, 5), "face never seen")
	assert.Equal(t, 0, fc.Count(9, 1), "trial out of range")
}

func TestCombinationCounts(t *testing.T) {
	_, a := scripted(t)
	c, err := a.CombinationCounts()
	require.NoError(t, err)

	assert.Equal(t, analyzer.ColumnCount, c.Column)
	assert.Equal(t, []analyzer.Tally[int]{
		{Outcomes: []int{2, 3}, Count: 3},
		{Outcomes: []int{1, 1}, Count: 1},
		{Outcomes: []int{6, 6}, Count: 1},
	}, c.Rows)
	assert.Equal(t, 5, c.Total())
	assert.Equal(t, 3, c.Len())
	assert.Equal(t, 3, c.Get(2, 3))
	assert.Equal(t, 0, c.Get(3, 2), "combinations are keyed by sorted outcomes")
}

func TestPermutationCounts(t *testing.T) {
	_, a := scripted(t)
	c, err := a.PermutationCounts()
	require.NoError(t, err)

	assert.Equal(t, analyzer.ColumnCount, c.Column)
	assert.Equal(t, []analyzer.Tally[int]{
		{Outcomes: []int{2, 3}, Count: 2},
		{Outcomes: []int{1, 1}, Count: 1},
		{Outcomes: []int{3, 2}, Count: 1},
		{Outcomes: []int{6, 6}, Count: 1},
	}, c.Rows)
	assert.Equal(t, 5, c.Total())
	assert.Equal(t, 1, c.Get(3, 2))
}

func TestCounts_StringFaces(t *testing.T) {
	src := &faceSource{faces: []int{4, 1}} // fourth letter, then first
	letters, err := dice.New([]string{"a", "b", "c", "d", "e", "f"}, dice.WithRandomSource(src))
	require.NoError(t, err)
	r, err := game.NewRunner([]*dice.Die[string]{letters, letters})
	require.NoError(t, err)
	require.NoError(t, r.Run(3))
	a, err := analyzer.New(r)
	require.NoError(t, err)

	combos, err := a.CombinationCounts()
	require.NoError(t, err)
	assert.Equal(t, []analyzer.Tally[string]{{Outcomes: []string{"a", "d"}, Count: 3}}, combos.Rows)

	perms, err := a.PermutationCounts()
	require.NoError(t, err)
	assert.Equal(t, 3, perms.Get("d", "a"))
}

func TestTotalsEqualTrials(t *testing.T) {
	r, err := game.NewRunner([]*dice.Die[int]{
		d6(t, dice.NewSeededRNG(1)),
		d6(t, dice.NewSeededRNG(2)),
		d6(t, dice.NewSeededRNG(3)),
	})
	require.NoError(t, err)
	require.NoError(t, r.Run(500))
	a, err := analyzer.New(r)
	require.NoError(t, err)

	combos, err := a.CombinationCounts()
	require.NoError(t, err)
	perms, err := a.PermutationCounts()
	require.NoError(t, err)
	assert.Equal(t, 500, combos.Total())
	assert.Equal(t, 500, perms.Total())
	assert.LessOrEqual(t, combos.Len(), perms.Len())
	for i := 1; i < combos.Len(); i++ {
		assert.GreaterOrEqual(t, combos.Rows[i-1].Count, combos.Rows[i].Count)
	}
}

func TestAnalyzerFollowsRerun(t *testing.T) {
	r, err := game.NewRunner([]*dice.Die[int]{d6(t, dice.NewSeededRNG(30))})
	require.NoError(t, err)
	require.NoError(t, r.Run(10))
	a, err := analyzer.New(r)
	require.NoError(t, err)

	n, err := a.CountJackpots()
	require.NoError(t, err)
	assert.Equal(t, 10, n)

	require.NoError(t, r.Run(25))
	n, err = a.CountJackpots()
	require.NoError(t, err)
	assert.Equal(t, 25, n)

	perms, err := a.PermutationCounts()
	require.NoError(t, err)
	assert.Equal(t, 25, perms.Total())
}

func TestAnalysisDoesNotMutateTable(t *testing.T) {
	r, a := scripted(t)
	before, err := r.Wide()
	require.NoError(t, err)

	_, err = a.CountJackpots()
	require.NoError(t, err)
	_, err = a.FaceCountsPerTrial()
	require.NoError(t, err)
	_, err = a.CombinationCounts()
	require.NoError(t, err)
	_, err = a.PermutationCounts()
	require.NoError(t, err)
	_, err = a.Summarize(identity)
	require.NoError(t, err)

	after, err := r.Wide()
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestFaceFrequencies(t *testing.T) {
	_, a := scripted(t)

	freq, err := a.FaceFrequencies(0)
	require.NoError(t, err)
	assert.Equal(t, map[int]int{1: 1, 2: 2, 3: 1, 6: 1}, freq)

	_, err = a.FaceFrequencies(2)
	assert.ErrorIs(t, err, dice.ErrInvalidInput)
	_, err = a.FaceFrequencies(-1)
	assert.ErrorIs(t, err, dice.ErrInvalidInput)
}

func TestSummarize(t *testing.T) {
	_, a := scripted(t)

	s, err := a.Summarize(identity)
	require.NoError(t, err)
	// totals 2, 5, 5, 12, 5
	assert.Equal(t, 5, s.Trials)
	assert.InDelta(t, 5.8, s.Mean, 1e-9)
	assert.InDelta(t, 10.96, s.Var, 1e-9)
	assert.InDelta(t, math.Sqrt(10.96), s.StdDev, 1e-9)
	assert.Equal(t, 2.0, s.Min)
	assert.Equal(t, 12.0, s.Max)
	assert.InDelta(t, 5.0, s.P50, 1e-9)
	assert.LessOrEqual(t, s.P50, s.P90)
	assert.LessOrEqual(t, s.P90, s.P99)
	assert.LessOrEqual(t, s.P99, s.Max)

	_, err = a.Summarize(nil)
	assert.ErrorIs(t, err, dice.ErrInvalidInput)
}

func TestGoodnessOfFit(t *testing.T) {
	r, err := game.NewRunner([]*dice.Die[int]{d6(t, dice.NewSeededRNG(77))})
	require.NoError(t, err)
	require.NoError(t, r.Run(6000))
	a, err := analyzer.New(r)
	require.NoError(t, err)

	fit, err := a.GoodnessOfFit(0)
	require.NoError(t, err)
	t.Logf("chi2=%v, df=%v, p=%v", fit.Statistic, fit.DegreesOfFreedom, fit.PValue)
	assert.Equal(t, "Die 0", fit.Column)
	assert.Equal(t, 5, fit.DegreesOfFreedom)
	assert.Greater(t, fit.PValue, 0.001)

	_, err = a.GoodnessOfFit(1)
	assert.ErrorIs(t, err, dice.ErrInvalidInput)

	// weights changed after the run: a face that showed up is now impossible
	require.NoError(t, r.Dice()[0].SetWeight(3, 0))
	fit, err = a.GoodnessOfFit(0)
	require.NoError(t, err)
	assert.True(t, math.IsInf(fit.Statistic, 1))
	assert.Equal(t, 0.0, fit.PValue)
}

func TestGoodnessOfFit_SingleDrawableFace(t *testing.T) {
	d, err := dice.New([]int{1, 2, 3}, dice.WithWeights([]float64{0, 1, 0}))
	require.NoError(t, err)
	r, err := game.NewRunner([]*dice.Die[int]{d})
	require.NoError(t, err)
	require.NoError(t, r.Run(20))
	a, err := analyzer.New(r)
	require.NoError(t, err)

	fit, err := a.GoodnessOfFit(0)
	require.NoError(t, err)
	assert.Equal(t, 0, fit.DegreesOfFreedom)
	assert.Equal(t, 1.0, fit.PValue)
}
