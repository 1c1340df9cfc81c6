package analytics

import (
	"sort"

	"shopcli/internal/dataset"
	"shopcli/pkg/contracts/domain"
)

// growthPercent computes (current-previous)/previous*100 with the standard
// degenerate-denominator guard: a non-positive previous value yields 0,
// never a division error.
func growthPercent(current, previous float64) float64 {
	if previous > 0 {
		return (current - previous) / previous * 100
	}
	return 0
}

// yearOf reads the derived year feature from a sales row.
func yearOf(r dataset.Row) (int, bool) {
	return r.Int(domain.ColYear)
}

// RevenueMetrics sums price for the current and previous year and reports
// year-over-year growth.
func RevenueMetrics(sales *dataset.Table, currentYear, previousYear int) domain.RevenueMetrics {
	var current, previous float64
	for i := 0; i < sales.NumRows(); i++ {
		row := sales.Row(i)
		year, ok := yearOf(row)
		if !ok {
			continue
		}
		price, ok := row.Float(domain.ColPrice)
		if !ok {
			continue
		}
		switch year {
		case currentYear:
			current += price
		case previousYear:
			previous += price
		}
	}
	return domain.RevenueMetrics{
		CurrentYearRevenue:   current,
		PreviousYearRevenue:  previous,
		RevenueGrowthPercent: growthPercent(current, previous),
	}
}

// MonthlyGrowth sums revenue per month within a year and reports the
// month-over-month growth series. Months appear in ascending order and only
// when they have sales; the first month's growth is nil, there being no
// previous period to compare against.
func MonthlyGrowth(sales *dataset.Table, year int) []domain.MonthlyRevenue {
	byMonth := make(map[int]float64)
	for i := 0; i < sales.NumRows(); i++ {
		row := sales.Row(i)
		if y, ok := yearOf(row); !ok || y != year {
			continue
		}
		month, ok := row.Int(domain.ColMonth)
		if !ok {
			continue
		}
		price, ok := row.Float(domain.ColPrice)
		if !ok {
			continue
		}
		byMonth[month] += price
	}

	months := make([]int, 0, len(byMonth))
	for m := range byMonth {
		months = append(months, m)
	}
	sort.Ints(months)

	series := make([]domain.MonthlyRevenue, 0, len(months))
	for i, m := range months {
		point := domain.MonthlyRevenue{Month: m, Revenue: byMonth[m]}
		if i > 0 {
			prev := byMonth[months[i-1]]
			g := growthPercent(byMonth[m], prev)
			point.GrowthPercent = &g
		}
		series = append(series, point)
	}
	return series
}

// AverageOrderValue averages per-order summed item prices for each year and
// reports year-over-year growth.
func AverageOrderValue(sales *dataset.Table, currentYear, previousYear int) domain.AOVMetrics {
	return domain.AOVMetrics{
		CurrentYearAOV:  averageOrderValueForYear(sales, currentYear),
		PreviousYearAOV: averageOrderValueForYear(sales, previousYear),
		AOVGrowthPercent: growthPercent(
			averageOrderValueForYear(sales, currentYear),
			averageOrderValueForYear(sales, previousYear),
		),
	}
}

func averageOrderValueForYear(sales *dataset.Table, year int) float64 {
	perOrder := make(map[string]float64)
	for i := 0; i < sales.NumRows(); i++ {
		row := sales.Row(i)
		if y, ok := yearOf(row); !ok || y != year {
			continue
		}
		orderID, ok := row.String(domain.ColOrderID)
		if !ok {
			continue
		}
		price, ok := row.Float(domain.ColPrice)
		if !ok {
			continue
		}
		perOrder[orderID] += price
	}
	if len(perOrder) == 0 {
		return 0
	}
	var total float64
	for _, sum := range perOrder {
		total += sum
	}
	return total / float64(len(perOrder))
}

// OrderVolumeMetrics counts distinct orders for each year and reports
// year-over-year growth.
func OrderVolumeMetrics(sales *dataset.Table, currentYear, previousYear int) domain.OrderVolumeMetrics {
	current := make(map[string]bool)
	previous := make(map[string]bool)
	for i := 0; i < sales.NumRows(); i++ {
		row := sales.Row(i)
		year, ok := yearOf(row)
		if !ok {
			continue
		}
		orderID, ok := row.String(domain.ColOrderID)
		if !ok {
			continue
		}
		switch year {
		case currentYear:
			current[orderID] = true
		case previousYear:
			previous[orderID] = true
		}
	}
	return domain.OrderVolumeMetrics{
		CurrentYearOrders:  len(current),
		PreviousYearOrders: len(previous),
		OrderGrowthPercent: growthPercent(float64(len(current)), float64(len(previous))),
	}
}
