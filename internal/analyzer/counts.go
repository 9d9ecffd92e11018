package analyzer

import (
	"cmp"
	"slices"
	"strconv"
	"strings"
)

// Tally is one distinct outcome tuple and how many trials produced it.
type Tally[L comparable] struct {
	Outcomes []L
	Count    int
}

// Counts maps distinct outcome tuples to their occurrence counts.
// Rows are ordered by Count descending, ties by first appearance.
type Counts[L comparable] struct {
	Column string
	Rows   []Tally[L]
}

// Len returns the number of distinct tuples.
func (c *Counts[L]) Len() int { return len(c.Rows) }

// Total returns the sum of all counts, which equals the number of trials.
func (c *Counts[L]) Total() int {
	n := 0
	for _, r := range c.Rows {
		n += r.Count
	}
	return n
}

// Get returns the count of the tuple outcomes, 0 if it never occurred.
func (c *Counts[L]) Get(outcomes ...L) int {
	for _, r := range c.Rows {
		if slices.Equal(r.Outcomes, outcomes) {
			return r.Count
		}
	}
	return 0
}

// CombinationCounts counts trials by their sorted outcomes, so die order does not matter.
func (a *Analyzer[L]) CombinationCounts() (*Counts[L], error) {
	return a.tally(true)
}

// PermutationCounts counts trials by their outcomes in die order.
func (a *Analyzer[L]) PermutationCounts() (*Counts[L], error) {
	return a.tally(false)
}

func (a *Analyzer[L]) tally(sorted bool) (*Counts[L], error) {
	t, err := a.table()
	if err != nil {
		return nil, err
	}

	// labels get small ids so a tuple can be keyed by a string of ids
	ids := map[L]int{}
	seen := map[string]int{}
	out := &Counts[L]{Column: ColumnCount}
	var key strings.Builder
	for _, row := range t.Cells {
		tuple := append([]L(nil), row...)
		if sorted {
			slices.Sort(tuple)
		}
		key.Reset()
		for i, v := range tuple {
			id, ok := ids[v]
			if !ok {
				id = len(ids)
				ids[v] = id
			}
			if i > 0 {
				key.WriteByte(',')
			}
			key.WriteString(strconv.Itoa(id))
		}
		k := key.String()
		if i, ok := seen[k]; ok {
			out.Rows[i].Count++
			continue
		}
		seen[k] = len(out.Rows)
		out.Rows = append(out.Rows, Tally[L]{Outcomes: tuple, Count: 1})
	}

	slices.SortStableFunc(out.Rows, func(x, y Tally[L]) int {
		return cmp.Compare(y.Count, x.Count)
	})
	return out, nil
}
