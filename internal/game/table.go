package game

import "fmt"

// Labels that callers of the result tables depend on.
const (
	IndexTrial    = "Roll"
	IndexDie      = "Die"
	ColumnOutcome = "Outcome"
)

// Shape selects the layout returned by Runner.Results.
type Shape string

const (
	// ShapeWide has one row per trial and one column per die.
	ShapeWide Shape = "wide"
	// ShapeNarrow has one row per (trial, die) pair and a single Outcome column.
	ShapeNarrow Shape = "narrow"
)

// DieColumn names the column of the die at position i.
func DieColumn(i int) string { return fmt.Sprintf("Die %d", i) }

// Key identifies a table row. Die is empty in wide tables.
type Key struct {
	Trial int
	Die   string
}

// Table is a copy of a run's outcomes in one of the two shapes.
type Table[L comparable] struct {
	RunID   string
	Index   []string // index level names
	Columns []string
	Keys    []Key // one per row
	Cells   [][]L // Cells[row][column]
}

// Len returns the number of rows.
func (t *Table[L]) Len() int { return len(t.Cells) }

// Row returns the cells of the row for trial (1-based) in a wide table.
func (t *Table[L]) Row(trial int) ([]L, bool) {
	if trial < 1 || trial > len(t.Cells) || len(t.Index) != 1 {
		return nil, false
	}
	return append([]L(nil), t.Cells[trial-1]...), true
}

// Cell returns the outcome of die column col in trial for a wide table.
func (t *Table[L]) Cell(trial int, col string) (L, bool) {
	var zero L
	row, ok := t.Row(trial)
	if !ok {
		return zero, false
	}
	for i, c := range t.Columns {
		if c == col {
			return row[i], true
		}
	}
	return zero, false
}

// Lookup returns the outcome for a (trial, die) pair in a narrow table.
func (t *Table[L]) Lookup(trial int, die string) (L, bool) {
	var zero L
	if len(t.Index) != 2 {
		return zero, false
	}
	for i, k := range t.Keys {
		if k.Trial == trial && k.Die == die {
			return t.Cells[i][0], true
		}
	}
	return zero, false
}

// outcomes is the runner-owned table: rows[trial-1][die].
type outcomes[L comparable] struct {
	runID string
	rows  [][]L
}

func (o *outcomes[L]) columns() []string {
	if len(o.rows) == 0 {
		return nil
	}
	cols := make([]string, len(o.rows[0]))
	for i := range cols {
		cols[i] = DieColumn(i)
	}
	return cols
}

func (o *outcomes[L]) wide() *Table[L] {
	t := &Table[L]{
		RunID:   o.runID,
		Index:   []string{IndexTrial},
		Columns: o.columns(),
		Keys:    make([]Key, len(o.rows)),
		Cells:   make([][]L, len(o.rows)),
	}
	for i, row := range o.rows {
		t.Keys[i] = Key{Trial: i + 1}
		t.Cells[i] = append([]L(nil), row...)
	}
	return t
}

// narrow unpivots the table die by die, like a melt of the wide form.
func (o *outcomes[L]) narrow() *Table[L] {
	cols := o.columns()
	n := len(o.rows) * len(cols)
	t := &Table[L]{
		RunID:   o.runID,
		Index:   []string{IndexTrial, IndexDie},
		Columns: []string{ColumnOutcome},
		Keys:    make([]Key, 0, n),
		Cells:   make([][]L, 0, n),
	}
	for d, col := range cols {
		for i, row := range o.rows {
			t.Keys = append(t.Keys, Key{Trial: i + 1, Die: col})
			t.Cells = append(t.Cells, []L{row[d]})
		}
	}
	return t
}
