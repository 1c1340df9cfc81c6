package dataset

import (
	"time"

	"shopcli/pkg/contracts/domain"
)

// Summary describes the table's shape, per-column null counts and inferred
// column types. Diagnostic only; nothing downstream consumes it.
func (t *Table) Summary() domain.TableSummary {
	missing := make(map[string]int, len(t.cols))
	types := make(map[string]string, len(t.cols))
	for _, c := range t.cols {
		missing[c] = 0
		types[c] = "unknown"
	}
	for _, row := range t.rows {
		for i, c := range t.cols {
			v := row[i]
			if v == nil {
				missing[c]++
				continue
			}
			if types[c] == "unknown" {
				types[c] = typeName(v)
			}
		}
	}
	return domain.TableSummary{
		Rows:          t.NumRows(),
		Columns:       t.NumCols(),
		ColumnNames:   t.Columns(),
		MissingValues: missing,
		ColumnTypes:   types,
	}
}

func typeName(v Value) string {
	switch v.(type) {
	case string:
		return "string"
	case float64:
		return "float"
	case int:
		return "int"
	case time.Time:
		return "datetime"
	default:
		return "unknown"
	}
}
