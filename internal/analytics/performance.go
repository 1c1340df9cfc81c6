package analytics

import (
	"math"
	"sort"

	"shopcli/internal/dataset"
	"shopcli/internal/errors"
	"shopcli/pkg/contracts/domain"
)

func round2(v float64) float64 { return math.Round(v*100) / 100 }
func round3(v float64) float64 { return math.Round(v*1000) / 1000 }
func round4(v float64) float64 { return math.Round(v*10000) / 10000 }

// CategoryPerformance ranks product categories by revenue: sales inner-joined
// to products on product_id, grouped by category, reporting total revenue,
// row count and mean price, rounded to 2 decimals and sorted descending by
// total revenue (ties keep input order).
func CategoryPerformance(sales, products *dataset.Table) ([]domain.RegionPerformance, error) {
	slim, err := sales.Select(domain.ColProductID, domain.ColPrice)
	if err != nil {
		return nil, errors.NewValidationError("sales dataset: " + err.Error())
	}
	joined, err := slim.InnerJoin(products, domain.ColProductID, domain.ColProductCategoryName)
	if err != nil {
		return nil, errors.NewValidationError("join products: " + err.Error())
	}
	return aggregateByKey(joined, domain.ColProductCategoryName), nil
}

// GeographicPerformance ranks customer states by revenue: sales joined to
// orders on order_id, then to customers on customer_id, grouped by state
// with the same aggregates, rounding and sort order as CategoryPerformance.
func GeographicPerformance(sales, orders, customers *dataset.Table) ([]domain.RegionPerformance, error) {
	slim, err := sales.Select(domain.ColOrderID, domain.ColPrice)
	if err != nil {
		return nil, errors.NewValidationError("sales dataset: " + err.Error())
	}
	withCustomers, err := slim.InnerJoin(orders, domain.ColOrderID, domain.ColCustomerID)
	if err != nil {
		return nil, errors.NewValidationError("join orders: " + err.Error())
	}
	withStates, err := withCustomers.InnerJoin(customers, domain.ColCustomerID, domain.ColCustomerState)
	if err != nil {
		return nil, errors.NewValidationError("join customers: " + err.Error())
	}
	return aggregateByKey(withStates, domain.ColCustomerState), nil
}

// aggregateByKey groups rows by a string key column and aggregates price:
// sum, count and mean per group, 2-decimal rounding, descending stable sort
// by total revenue. Rows with a null key are skipped.
func aggregateByKey(t *dataset.Table, keyCol string) []domain.RegionPerformance {
	type agg struct {
		sum   float64
		count int
	}
	groups := make(map[string]*agg)
	order := make([]string, 0)
	for i := 0; i < t.NumRows(); i++ {
		row := t.Row(i)
		key, ok := row.String(keyCol)
		if !ok {
			continue
		}
		price, ok := row.Float(domain.ColPrice)
		if !ok {
			continue
		}
		g, seen := groups[key]
		if !seen {
			g = &agg{}
			groups[key] = g
			order = append(order, key)
		}
		g.sum += price
		g.count++
	}

	out := make([]domain.RegionPerformance, 0, len(order))
	for _, key := range order {
		g := groups[key]
		out = append(out, domain.RegionPerformance{
			Key:           key,
			TotalRevenue:  round2(g.sum),
			TotalOrders:   g.count,
			AvgOrderValue: round2(g.sum / float64(g.count)),
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].TotalRevenue > out[j].TotalRevenue
	})
	return out
}
