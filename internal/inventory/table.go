package inventory

import (
	"fmt"
	"strings"
)

// Table is an in-memory sheet: unique column names and rows aligned with them.
//
// Cell values are nil (missing), string, float64, int, int64, bool, time.Time
// or any fmt.Stringer. A Table is not mutated through its API, so search
// results may share row storage with their source.
type Table struct {
	// Name is the sheet the table was loaded from, if any.
	Name string

	columns []string
	index   map[string]int
	rows    [][]any
}

// NewTable builds a Table. Column names must be non-empty and unique; short
// rows are padded with nil, rows wider than the header are rejected.
func NewTable(columns []string, rows [][]any) (*Table, error) {
	index := make(map[string]int, len(columns))
	for i, c := range columns {
		if c == "" {
			return nil, fmt.Errorf("column %d has an empty name", i)
		}
		if _, dup := index[c]; dup {
			return nil, fmt.Errorf("duplicate column %q", c)
		}
		index[c] = i
	}
	t := &Table{
		columns: append([]string(nil), columns...),
		index:   index,
		rows:    make([][]any, 0, len(rows)),
	}
	for i, r := range rows {
		if len(r) > len(columns) {
			return nil, fmt.Errorf("row %d has %d values for %d columns", i, len(r), len(columns))
		}
		row := make([]any, len(columns))
		copy(row, r)
		t.rows = append(t.rows, row)
	}
	return t, nil
}

// Columns returns a copy of the column names in source order.
func (t *Table) Columns() []string {
	if t == nil {
		return nil
	}
	return append([]string(nil), t.columns...)
}

// Len is the number of rows.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.rows)
}

// Has reports whether the table has a column with exactly this name.
func (t *Table) Has(column string) bool {
	if t == nil {
		return false
	}
	_, ok := t.index[column]
	return ok
}

// Value returns the cell at row i in the named column.
func (t *Table) Value(i int, column string) (any, bool) {
	if t == nil || i < 0 || i >= len(t.rows) {
		return nil, false
	}
	j, ok := t.index[column]
	if !ok {
		return nil, false
	}
	return t.rows[i][j], true
}

// Row returns a copy of row i.
func (t *Table) Row(i int) []any {
	if t == nil || i < 0 || i >= len(t.rows) {
		return nil
	}
	return append([]any(nil), t.rows[i]...)
}

// Records returns every row as a column-name keyed map.
func (t *Table) Records() []map[string]any {
	if t == nil {
		return nil
	}
	out := make([]map[string]any, len(t.rows))
	for i, r := range t.rows {
		m := make(map[string]any, len(t.columns))
		for j, c := range t.columns {
			m[c] = r[j]
		}
		out[i] = m
	}
	return out
}

// Strings renders row i as display text, one entry per column.
func (t *Table) Strings(i int) []string {
	if t == nil || i < 0 || i >= len(t.rows) {
		return nil
	}
	out := make([]string, len(t.columns))
	for j, v := range t.rows[i] {
		out[j] = DisplayText(v)
	}
	return out
}

// Select projects the table onto the given columns, in the given order.
// Unknown and repeated names are skipped.
func (t *Table) Select(columns []string) *Table {
	if t == nil {
		return &Table{index: map[string]int{}}
	}
	picked := t.intersect(columns)
	src := make([]int, len(picked))
	index := make(map[string]int, len(picked))
	for k, c := range picked {
		src[k] = t.index[c]
		index[c] = k
	}
	out := &Table{Name: t.Name, columns: picked, index: index, rows: make([][]any, len(t.rows))}
	for i, r := range t.rows {
		row := make([]any, len(src))
		for k, j := range src {
			row[k] = r[j]
		}
		out.rows[i] = row
	}
	return out
}

// Head returns the first n rows; n <= 0 or n >= Len returns t itself.
func (t *Table) Head(n int) *Table {
	if t == nil || n <= 0 || n >= len(t.rows) {
		return t
	}
	out := t.empty()
	out.rows = t.rows[:n:n]
	return out
}

// intersect keeps the names that are columns of t, preserving the caller's
// order and dropping repeats.
func (t *Table) intersect(columns []string) []string {
	seen := make(map[string]bool, len(columns))
	var out []string
	for _, c := range columns {
		if seen[c] || !t.Has(c) {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	return out
}

// empty returns a zero-row table with the same columns.
func (t *Table) empty() *Table {
	if t == nil {
		return &Table{index: map[string]int{}}
	}
	return &Table{Name: t.Name, columns: t.columns, index: t.index}
}

// subset returns the rows at the given indexes, in that order.
func (t *Table) subset(keep []int) *Table {
	out := t.empty()
	out.rows = make([][]any, len(keep))
	for k, i := range keep {
		out.rows[k] = t.rows[i]
	}
	return out
}

// String gives a short description used in logs.
func (t *Table) String() string {
	if t == nil {
		return "<nil table>"
	}
	var b strings.Builder
	if t.Name != "" {
		fmt.Fprintf(&b, "%s: ", t.Name)
	}
	fmt.Fprintf(&b, "%d rows x %d columns", len(t.rows), len(t.columns))
	return b.String()
}
