package dataset

import (
	"fmt"
	"strconv"
	"time"
)

// joinKey renders a cell as a hashable join key. Null cells are not joinable
// and never match, mirroring relational semantics.
func joinKey(v Value) (string, bool) {
	switch k := v.(type) {
	case nil:
		return "", false
	case string:
		return k, true
	case float64:
		return strconv.FormatFloat(k, 'g', -1, 64), true
	case int:
		return strconv.Itoa(k), true
	case time.Time:
		return k.Format(time.RFC3339Nano), true
	default:
		return "", false
	}
}

// InnerJoin hash-joins t with right on the key column, appending the listed
// right-side columns. One output row is produced per matching left/right
// pair, so a left row with several matches fans out, exactly as a relational
// join does. Left row order is preserved; matches follow right row order.
func (t *Table) InnerJoin(right *Table, key string, rightCols ...string) (*Table, error) {
	return t.join(right, key, rightCols, false)
}

// LeftJoin behaves like InnerJoin but keeps unmatched left rows, filling the
// appended columns with nulls.
func (t *Table) LeftJoin(right *Table, key string, rightCols ...string) (*Table, error) {
	return t.join(right, key, rightCols, true)
}

func (t *Table) join(right *Table, key string, rightCols []string, keepUnmatched bool) (*Table, error) {
	if !t.HasColumn(key) {
		return nil, fmt.Errorf("join: left table has no column %q", key)
	}
	if !right.HasColumn(key) {
		return nil, fmt.Errorf("join: right table has no column %q", key)
	}
	rightIdx := make([]int, len(rightCols))
	for i, c := range rightCols {
		idx, ok := right.index[c]
		if !ok {
			return nil, fmt.Errorf("join: right table has no column %q", c)
		}
		rightIdx[i] = idx
	}

	// Hash the right side by key.
	matches := make(map[string][]int, right.NumRows())
	rightKey := right.index[key]
	for i, row := range right.rows {
		if k, ok := joinKey(row[rightKey]); ok {
			matches[k] = append(matches[k], i)
		}
	}

	out := New(append(t.Columns(), rightCols...)...)
	leftKey := t.index[key]
	for _, row := range t.rows {
		k, ok := joinKey(row[leftKey])
		var rightRows []int
		if ok {
			rightRows = matches[k]
		}
		if len(rightRows) == 0 {
			if keepUnmatched {
				joined := append(append([]Value(nil), row...), make([]Value, len(rightCols))...)
				out.rows = append(out.rows, joined)
			}
			continue
		}
		for _, ri := range rightRows {
			joined := make([]Value, 0, len(row)+len(rightCols))
			joined = append(joined, row...)
			for _, idx := range rightIdx {
				joined = append(joined, right.rows[ri][idx])
			}
			out.rows = append(out.rows, joined)
		}
	}
	return out, nil
}
