package loader

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopcli/internal/dataset"
	apperrors "shopcli/internal/errors"
	"shopcli/pkg/contracts/domain"
)

func TestCleanDatetimeColumns(t *testing.T) {
	s := newTestSession(t)
	table := dataset.New("ts", "other")
	table.MustAppendRow("2023-01-04 10:30:00", "x")
	table.MustAppendRow("not-a-date", "y")
	table.MustAppendRow(nil, "z")

	cleaned := s.CleanDatetimeColumns(table, []string{"ts", "absent"})

	ts, ok := cleaned.Row(0).Time("ts")
	require.True(t, ok)
	assert.Equal(t, time.Date(2023, 1, 4, 10, 30, 0, 0, time.UTC), ts)

	assert.True(t, cleaned.Row(1).IsNull("ts"), "unparsable values become null, not errors")
	assert.True(t, cleaned.Row(2).IsNull("ts"))

	raw, ok := table.Row(0).String("ts")
	require.True(t, ok)
	assert.Equal(t, "2023-01-04 10:30:00", raw, "original table must stay untouched")
}

func TestExtractTimeFeatures(t *testing.T) {
	s := newTestSession(t)
	table := dataset.New("ts")
	// 2023-01-04 is a Wednesday; 2022-11-20 is a Sunday.
	table.MustAppendRow(time.Date(2023, 1, 4, 10, 0, 0, 0, time.UTC))
	table.MustAppendRow(time.Date(2022, 11, 20, 8, 0, 0, 0, time.UTC))
	table.MustAppendRow(nil)

	enriched := s.ExtractTimeFeatures(table, "ts")

	tests := []struct {
		rowIdx      int
		wantYear    int
		wantMonth   int
		wantDOW     int
		wantQuarter int
	}{
		{rowIdx: 0, wantYear: 2023, wantMonth: 1, wantDOW: 2, wantQuarter: 1},
		{rowIdx: 1, wantYear: 2022, wantMonth: 11, wantDOW: 6, wantQuarter: 4},
	}
	for _, tt := range tests {
		row := enriched.Row(tt.rowIdx)
		year, _ := row.Int(domain.ColYear)
		month, _ := row.Int(domain.ColMonth)
		dow, _ := row.Int(domain.ColDayOfWeek)
		quarter, _ := row.Int(domain.ColQuarter)
		assert.Equal(t, tt.wantYear, year)
		assert.Equal(t, tt.wantMonth, month)
		assert.Equal(t, tt.wantDOW, dow, "day_of_week must count Monday as 0")
		assert.Equal(t, tt.wantQuarter, quarter)
	}

	assert.True(t, enriched.Row(2).IsNull(domain.ColYear), "null timestamps get null features")
}

func TestExtractTimeFeaturesMissingColumn(t *testing.T) {
	s := newTestSession(t)
	table := dataset.New("other")
	table.MustAppendRow("x")

	out := s.ExtractTimeFeatures(table, "ts")
	assert.False(t, out.HasColumn(domain.ColYear))
	assert.Equal(t, 1, out.NumRows())
}

func featureTable() *dataset.Table {
	t := dataset.New(domain.ColPurchaseTimestamp, domain.ColYear, domain.ColMonth)
	t.MustAppendRow(time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC), 2023, 1)
	t.MustAppendRow(time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC), 2023, 6)
	t.MustAppendRow(time.Date(2022, 6, 1, 0, 0, 0, 0, time.UTC), 2022, 6)
	return t
}

func TestFilterByDateRange(t *testing.T) {
	s := newTestSession(t)

	tests := []struct {
		name     string
		r        DateRange
		wantRows int
	}{
		{name: "no filters", r: DateRange{}, wantRows: 3},
		{
			name:     "inclusive start bound",
			r:        DateRange{Start: time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC)},
			wantRows: 2,
		},
		{
			name:     "inclusive end bound",
			r:        DateRange{End: time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC)},
			wantRows: 2,
		},
		{name: "year", r: DateRange{Year: 2023}, wantRows: 2},
		{name: "year and month", r: DateRange{Year: 2023, Month: 6}, wantRows: 1},
		{
			name:     "month without year is ignored",
			r:        DateRange{Month: 6},
			wantRows: 3,
		},
		{
			name: "conjunctive bounds and year",
			r: DateRange{
				Start: time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
				End:   time.Date(2023, 2, 1, 0, 0, 0, 0, time.UTC),
				Year:  2023,
			},
			wantRows: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filtered, err := s.FilterByDateRange(featureTable(), tt.r)
			require.NoError(t, err)
			assert.Equal(t, tt.wantRows, filtered.NumRows())
		})
	}
}

func TestFilterByDateRangeMissingColumns(t *testing.T) {
	s := newTestSession(t)
	bare := dataset.New("unrelated")
	bare.MustAppendRow("x")

	_, err := s.FilterByDateRange(bare, DateRange{Year: 2023})
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeValidation))

	_, err = s.FilterByDateRange(bare, DateRange{Start: time.Now()})
	assert.Error(t, err)
}
