package dataset

import (
	"fmt"
	"time"
)

// Value is a single table cell. A nil Value is a null. Concrete cell types
// are string, float64, int and time.Time; anything else is rejected at the
// accessor level rather than at insertion.
type Value interface{}

// Table is an ordered-column, row-major relational table with nullable
// cells. It is the working representation for every dataset the loader
// touches. Tables are not safe for concurrent use.
type Table struct {
	cols  []string
	index map[string]int
	rows  [][]Value
}

// New creates an empty table with the given column order.
func New(cols ...string) *Table {
	t := &Table{
		cols:  append([]string(nil), cols...),
		index: make(map[string]int, len(cols)),
	}
	for i, c := range t.cols {
		t.index[c] = i
	}
	return t
}

// Columns returns the column names in order. The slice is a copy.
func (t *Table) Columns() []string {
	return append([]string(nil), t.cols...)
}

// NumRows returns the number of rows.
func (t *Table) NumRows() int { return len(t.rows) }

// NumCols returns the number of columns.
func (t *Table) NumCols() int { return len(t.cols) }

// HasColumn reports whether the table has a column with the given name.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.index[name]
	return ok
}

// AppendRow adds a row. The number of values must match the column count.
func (t *Table) AppendRow(values ...Value) error {
	if len(values) != len(t.cols) {
		return fmt.Errorf("append row: got %d values, table has %d columns", len(values), len(t.cols))
	}
	t.rows = append(t.rows, append([]Value(nil), values...))
	return nil
}

// MustAppendRow adds a row and panics on column-count mismatch. Intended for
// tests and static table construction.
func (t *Table) MustAppendRow(values ...Value) {
	if err := t.AppendRow(values...); err != nil {
		panic(err)
	}
}

// Row returns a view over row i. The view shares storage with the table.
func (t *Table) Row(i int) Row {
	return Row{table: t, cells: t.rows[i]}
}

// At returns the cell at row i, column name. Returns nil for unknown columns.
func (t *Table) At(i int, col string) Value {
	idx, ok := t.index[col]
	if !ok {
		return nil
	}
	return t.rows[i][idx]
}

// SetAt overwrites the cell at row i, column name.
func (t *Table) SetAt(i int, col string, v Value) error {
	idx, ok := t.index[col]
	if !ok {
		return fmt.Errorf("set cell: unknown column %q", col)
	}
	t.rows[i][idx] = v
	return nil
}

// Copy returns a deep copy. Derived tables are always built on copies so the
// caller's table is never mutated by reference.
func (t *Table) Copy() *Table {
	out := New(t.cols...)
	out.rows = make([][]Value, len(t.rows))
	for i, r := range t.rows {
		out.rows[i] = append([]Value(nil), r...)
	}
	return out
}

// Select returns a new table restricted to the given columns, in the given
// order. Unknown columns are an error.
func (t *Table) Select(cols ...string) (*Table, error) {
	idxs := make([]int, len(cols))
	for i, c := range cols {
		idx, ok := t.index[c]
		if !ok {
			return nil, fmt.Errorf("select: unknown column %q", c)
		}
		idxs[i] = idx
	}
	out := New(cols...)
	out.rows = make([][]Value, len(t.rows))
	for i, r := range t.rows {
		row := make([]Value, len(idxs))
		for j, idx := range idxs {
			row[j] = r[idx]
		}
		out.rows[i] = row
	}
	return out, nil
}

// Drop returns a new table without the given columns. Unknown columns are
// ignored.
func (t *Table) Drop(cols ...string) *Table {
	dropped := make(map[string]bool, len(cols))
	for _, c := range cols {
		dropped[c] = true
	}
	kept := make([]string, 0, len(t.cols))
	for _, c := range t.cols {
		if !dropped[c] {
			kept = append(kept, c)
		}
	}
	out, _ := t.Select(kept...)
	return out
}

// Filter returns a new table with the rows for which keep returns true.
// Relative row order is preserved.
func (t *Table) Filter(keep func(Row) bool) *Table {
	out := New(t.cols...)
	for i := range t.rows {
		if keep(t.Row(i)) {
			out.rows = append(out.rows, append([]Value(nil), t.rows[i]...))
		}
	}
	return out
}

// WithColumn returns a new table with an extra column computed per row. If
// the column already exists its values are replaced in place of appending.
func (t *Table) WithColumn(name string, compute func(Row) Value) *Table {
	out := t.Copy()
	if idx, ok := out.index[name]; ok {
		for i := range out.rows {
			out.rows[i][idx] = compute(out.Row(i))
		}
		return out
	}
	out.cols = append(out.cols, name)
	out.index[name] = len(out.cols) - 1
	for i := range out.rows {
		out.rows[i] = append(out.rows[i], compute(Row{table: t, cells: t.rows[i]}))
	}
	return out
}

// Row is a read-only view over one table row.
type Row struct {
	table *Table
	cells []Value
}

// Value returns the raw cell for the column, nil when the column is unknown.
func (r Row) Value(col string) Value {
	idx, ok := r.table.index[col]
	if !ok {
		return nil
	}
	return r.cells[idx]
}

// IsNull reports whether the cell is null or the column is unknown.
func (r Row) IsNull(col string) bool {
	return r.Value(col) == nil
}

// String returns the cell as a string. ok is false for nulls and non-string
// cells.
func (r Row) String(col string) (string, bool) {
	s, ok := r.Value(col).(string)
	return s, ok
}

// Float returns the cell as a float64, converting int cells. ok is false for
// nulls and non-numeric cells.
func (r Row) Float(col string) (float64, bool) {
	switch v := r.Value(col).(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	default:
		return 0, false
	}
}

// Int returns the cell as an int, truncating float cells toward zero.
func (r Row) Int(col string) (int, bool) {
	switch v := r.Value(col).(type) {
	case int:
		return v, true
	case float64:
		return int(v), true
	default:
		return 0, false
	}
}

// Time returns the cell as a time.Time. ok is false for nulls and
// non-timestamp cells.
func (r Row) Time(col string) (time.Time, bool) {
	ts, ok := r.Value(col).(time.Time)
	return ts, ok
}
