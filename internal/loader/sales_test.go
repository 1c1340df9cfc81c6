package loader

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopcli/internal/dataset"
	apperrors "shopcli/internal/errors"
	"shopcli/pkg/contracts/domain"
)

func TestPrepareSalesData(t *testing.T) {
	s := newLoadedSession(t)

	sales, err := s.PrepareSalesData(context.Background(), nil)
	require.NoError(t, err)

	// Only o1 and o2 are delivered.
	require.Equal(t, 2, sales.NumRows())

	row := sales.Row(0)
	id, _ := row.String(domain.ColOrderID)
	assert.Equal(t, "o1", id)

	days, ok := row.Int(domain.ColDeliveryDays)
	require.True(t, ok)
	assert.Equal(t, 3, days)

	year, _ := row.Int(domain.ColYear)
	assert.Equal(t, 2023, year)
	quarter, _ := row.Int(domain.ColQuarter)
	assert.Equal(t, 1, quarter)

	// o2 was delivered one minute under a full day: truncate to 0.
	fast, ok := sales.Row(1).Int(domain.ColDeliveryDays)
	require.True(t, ok)
	assert.Equal(t, 0, fast)
}

func TestPrepareSalesDataStatusFilter(t *testing.T) {
	s := newLoadedSession(t)

	sales, err := s.PrepareSalesData(context.Background(), []string{"canceled"})
	require.NoError(t, err)
	require.Equal(t, 1, sales.NumRows())

	id, _ := sales.Row(0).String(domain.ColOrderID)
	assert.Equal(t, "o3", id)
	assert.True(t, sales.Row(0).IsNull(domain.ColDeliveryDays), "undelivered orders have null delivery_days")
}

func TestPrepareSalesDataMissingDatasets(t *testing.T) {
	tests := []struct {
		name string
		load func(s *Session)
	}{
		{name: "nothing loaded", load: func(s *Session) {}},
		{
			name: "orders missing",
			load: func(s *Session) { s.SetRaw(domain.TableOrderItems, orderItemsTable()) },
		},
		{
			name: "order items missing",
			load: func(s *Session) { s.SetRaw(domain.TableOrders, ordersTable()) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSession(t)
			tt.load(s)

			_, err := s.PrepareSalesData(context.Background(), nil)
			require.Error(t, err)
			assert.True(t, apperrors.IsType(err, apperrors.ErrTypeMissingData))
		})
	}
}

func productsTable() *dataset.Table {
	t := dataset.New(domain.ColProductID, domain.ColProductCategoryName)
	t.MustAppendRow("p1", "electronics")
	// p2 deliberately missing: its sales rows keep a null category.
	return t
}

func customersTable() *dataset.Table {
	t := dataset.New(domain.ColCustomerID, domain.ColCustomerState, domain.ColCustomerCity)
	t.MustAppendRow("c1", "CA", "San Francisco")
	t.MustAppendRow("c2", "NY", "New York")
	return t
}

func reviewsTable() *dataset.Table {
	t := dataset.New(domain.ColOrderID, domain.ColReviewScore)
	t.MustAppendRow("o1", 5.0)
	// o2 has no review: its sales row keeps a null score.
	return t
}

func newFullSession(t *testing.T) *Session {
	t.Helper()
	s := newLoadedSession(t)
	s.SetRaw(domain.TableProducts, productsTable())
	s.SetRaw(domain.TableCustomers, customersTable())
	s.SetRaw(domain.TableReviews, reviewsTable())
	return s
}

func TestCreateAnalysisDataset(t *testing.T) {
	s := newFullSession(t)

	analysis, err := s.CreateAnalysisDataset(context.Background(), DefaultAnalysisOptions())
	require.NoError(t, err)
	require.Equal(t, 2, analysis.NumRows())

	row := analysis.Row(0)
	category, _ := row.String(domain.ColProductCategoryName)
	assert.Equal(t, "electronics", category)
	state, _ := row.String(domain.ColCustomerState)
	assert.Equal(t, "CA", state)
	score, ok := row.Float(domain.ColReviewScore)
	require.True(t, ok)
	assert.Equal(t, 5.0, score)

	// o2 has no review and an unknown product: left joins keep the row.
	unreviewed := analysis.Row(1)
	assert.True(t, unreviewed.IsNull(domain.ColReviewScore), "order without review keeps its row with a null score")
	assert.True(t, unreviewed.IsNull(domain.ColProductCategoryName))
	state2, _ := unreviewed.String(domain.ColCustomerState)
	assert.Equal(t, "NY", state2)
}

func TestCreateAnalysisDatasetYearFilter(t *testing.T) {
	s := newFullSession(t)

	opts := DefaultAnalysisOptions()
	opts.Year = 2023
	analysis, err := s.CreateAnalysisDataset(context.Background(), opts)
	require.NoError(t, err)

	require.Equal(t, 1, analysis.NumRows())
	for i := 0; i < analysis.NumRows(); i++ {
		year, ok := analysis.Row(i).Int(domain.ColYear)
		require.True(t, ok)
		assert.Equal(t, 2023, year, "every returned row must match the year filter")
	}
}

func TestCreateAnalysisDatasetToggles(t *testing.T) {
	s := newFullSession(t)

	opts := AnalysisOptions{IncludeReviews: true}
	analysis, err := s.CreateAnalysisDataset(context.Background(), opts)
	require.NoError(t, err)

	assert.False(t, analysis.HasColumn(domain.ColProductCategoryName))
	assert.False(t, analysis.HasColumn(domain.ColCustomerState))
	assert.True(t, analysis.HasColumn(domain.ColReviewScore))
}

func TestCreateAnalysisDatasetSkipsUnloadedJoins(t *testing.T) {
	s := newLoadedSession(t) // no products, customers or reviews loaded

	analysis, err := s.CreateAnalysisDataset(context.Background(), DefaultAnalysisOptions())
	require.NoError(t, err, "optional joins are skipped when their dataset is unavailable")
	assert.False(t, analysis.HasColumn(domain.ColReviewScore))
}
