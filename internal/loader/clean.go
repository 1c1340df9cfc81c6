package loader

import (
	"time"

	"shopcli/internal/dataset"
	"shopcli/internal/errors"
	"shopcli/pkg/contracts/domain"
)

// CleanDatetimeColumns returns a copy of the table with each listed column
// coerced to timestamps. Columns the table does not have are skipped;
// unparsable values become null rather than errors.
func (s *Session) CleanDatetimeColumns(t *dataset.Table, cols []string) *dataset.Table {
	out := t.Copy()
	for _, col := range cols {
		if !out.HasColumn(col) {
			continue
		}
		for i := 0; i < out.NumRows(); i++ {
			v := out.At(i, col)
			if v == nil {
				continue
			}
			if ts, ok := dataset.ParseTime(v); ok {
				_ = out.SetAt(i, col, ts)
			} else {
				_ = out.SetAt(i, col, nil)
			}
		}
	}
	return out
}

// ExtractTimeFeatures returns a copy of the table with year, month,
// day_of_week (0=Monday) and quarter columns derived from the timestamp
// column. When the column is absent the table is returned unchanged (as a
// copy). Rows with a null timestamp get null features.
func (s *Session) ExtractTimeFeatures(t *dataset.Table, timestampCol string) *dataset.Table {
	if !t.HasColumn(timestampCol) {
		return t.Copy()
	}
	out := t.WithColumn(domain.ColYear, func(r dataset.Row) dataset.Value {
		if ts, ok := r.Time(timestampCol); ok {
			return ts.Year()
		}
		return nil
	})
	out = out.WithColumn(domain.ColMonth, func(r dataset.Row) dataset.Value {
		if ts, ok := r.Time(timestampCol); ok {
			return int(ts.Month())
		}
		return nil
	})
	out = out.WithColumn(domain.ColDayOfWeek, func(r dataset.Row) dataset.Value {
		if ts, ok := r.Time(timestampCol); ok {
			// time.Weekday counts from Sunday; shift so Monday is 0.
			return (int(ts.Weekday()) + 6) % 7
		}
		return nil
	})
	out = out.WithColumn(domain.ColQuarter, func(r dataset.Row) dataset.Value {
		if ts, ok := r.Time(timestampCol); ok {
			return (int(ts.Month())-1)/3 + 1
		}
		return nil
	})
	return out
}

// DateRange expresses the conjunctive filters of FilterByDateRange. Zero
// values mean "no filter". A Month without a Year is silently ignored,
// preserving the behavior of the reference pipeline.
type DateRange struct {
	Start time.Time
	End   time.Time
	Year  int
	Month int
	// TimestampColumn defaults to order_purchase_timestamp.
	TimestampColumn string
}

// FilterByDateRange returns a filtered copy of the table. Start and End are
// inclusive bounds on the timestamp column; Year and Month match the derived
// feature columns exactly. Filtering on a feature column the table does not
// have is an error.
func (s *Session) FilterByDateRange(t *dataset.Table, r DateRange) (*dataset.Table, error) {
	tsCol := r.TimestampColumn
	if tsCol == "" {
		tsCol = domain.ColPurchaseTimestamp
	}
	if (!r.Start.IsZero() || !r.End.IsZero()) && !t.HasColumn(tsCol) {
		return nil, errors.NewValidationError("date-range filter: table has no column " + tsCol)
	}
	if r.Year != 0 && !t.HasColumn(domain.ColYear) {
		return nil, errors.NewValidationError("date-range filter: table has no year column")
	}

	out := t.Filter(func(row dataset.Row) bool {
		if !r.Start.IsZero() {
			ts, ok := row.Time(tsCol)
			if !ok || ts.Before(r.Start) {
				return false
			}
		}
		if !r.End.IsZero() {
			ts, ok := row.Time(tsCol)
			if !ok || ts.After(r.End) {
				return false
			}
		}
		if r.Year != 0 {
			year, ok := row.Int(domain.ColYear)
			if !ok || year != r.Year {
				return false
			}
		}
		// Month filters only apply alongside a year filter.
		if r.Month != 0 && r.Year != 0 {
			month, ok := row.Int(domain.ColMonth)
			if !ok || month != r.Month {
				return false
			}
		}
		return true
	})
	return out, nil
}
