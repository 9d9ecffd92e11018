package analyzer

import "github.com/xtding233/montecarlo/internal/game"

// FaceCounts has one row per trial and one column per face seen anywhere in the table.
type FaceCounts[L comparable] struct {
	Index  string
	Faces  []L     // columns, in order of first appearance
	Trials []int   // row keys, 1-based
	Counts [][]int // Counts[row][face]
}

// Len returns the number of rows.
func (f *FaceCounts[L]) Len() int { return len(f.Counts) }

// Count returns how often face showed in trial. Unknown trials or faces count 0.
func (f *FaceCounts[L]) Count(trial int, face L) int {
	if trial < 1 || trial > len(f.Counts) {
		return 0
	}
	for i, fc := range f.Faces {
		if fc == face {
			return f.Counts[trial-1][i]
		}
	}
	return 0
}

// FaceCountsPerTrial counts each face per trial across all dice. Faces that
// never appear in a trial get 0 in that row.
func (a *Analyzer[L]) FaceCountsPerTrial() (*FaceCounts[L], error) {
	t, err := a.table()
	if err != nil {
		return nil, err
	}

	pos := map[L]int{}
	var faces []L
	for _, row := range t.Cells {
		for _, v := range row {
			if _, ok := pos[v]; !ok {
				pos[v] = len(faces)
				faces = append(faces, v)
			}
		}
	}

	out := &FaceCounts[L]{
		Index:  game.IndexTrial,
		Faces:  faces,
		Trials: make([]int, len(t.Cells)),
		Counts: make([][]int, len(t.Cells)),
	}
	for i, row := range t.Cells {
		counts := make([]int, len(faces))
		for _, v := range row {
			counts[pos[v]]++
		}
		out.Trials[i] = t.Keys[i].Trial
		out.Counts[i] = counts
	}
	return out, nil
}

// FaceFrequencies counts the faces shown by the die at position die over all trials.
func (a *Analyzer[L]) FaceFrequencies(die int) (map[L]int, error) {
	t, err := a.table()
	if err != nil {
		return nil, err
	}
	c, err := column(t, die)
	if err != nil {
		return nil, err
	}
	freq := make(map[L]int)
	for _, row := range t.Cells {
		freq[row[c]]++
	}
	return freq, nil
}
