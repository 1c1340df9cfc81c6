package analytics

import (
	"fmt"
	"strconv"

	"shopcli/internal/dataset"
	"shopcli/internal/errors"
	"shopcli/pkg/contracts/domain"
)

// Delivery-speed bucket labels.
const (
	SpeedFast   = "1-3 days"
	SpeedMedium = "4-7 days"
	SpeedSlow   = "8+ days"
)

// CategorizeDeliverySpeed buckets a whole-day delivery duration. Boundaries
// are inclusive: 3 days is still "1-3 days", 7 days is still "4-7 days".
func CategorizeDeliverySpeed(days int) string {
	switch {
	case days <= 3:
		return SpeedFast
	case days <= 7:
		return SpeedMedium
	default:
		return SpeedSlow
	}
}

// CustomerExperience correlates delivery speed with review satisfaction.
// Delivery-speed days and their delivery_time_category are derived from the
// order timestamps on a private copy of the sales table (the caller's table
// is never touched), the rows
// are inner-joined to reviews on order_id and deduplicated on the
// (order_id, delivery_speed_days, review_score) triple, so one order
// contributes once per distinct score. Reports overall mean delivery days,
// overall mean review score, and mean score per delivery-speed bucket
// rounded to 3 decimals.
func CustomerExperience(sales, reviews *dataset.Table) (domain.CustomerExperienceMetrics, error) {
	work := sales.WithColumn(domain.ColDeliverySpeedDays, func(r dataset.Row) dataset.Value {
		delivered, ok := dataset.ParseTime(r.Value(domain.ColDeliveredCustomerDate))
		if !ok {
			return nil
		}
		purchased, ok := dataset.ParseTime(r.Value(domain.ColPurchaseTimestamp))
		if !ok {
			return nil
		}
		return int(delivered.Sub(purchased).Hours() / 24)
	})
	work = work.WithColumn(domain.ColDeliveryCategory, func(r dataset.Row) dataset.Value {
		days, ok := r.Int(domain.ColDeliverySpeedDays)
		if !ok {
			return nil
		}
		return CategorizeDeliverySpeed(days)
	})

	joined, err := work.InnerJoin(reviews, domain.ColOrderID, domain.ColReviewScore)
	if err != nil {
		return domain.CustomerExperienceMetrics{}, errors.NewValidationError("join reviews: " + err.Error())
	}

	type experience struct {
		days   int
		bucket string
		score  float64
	}
	seen := make(map[string]bool)
	unique := make([]experience, 0, joined.NumRows())
	for i := 0; i < joined.NumRows(); i++ {
		row := joined.Row(i)
		orderID, ok := row.String(domain.ColOrderID)
		if !ok {
			continue
		}
		days, ok := row.Int(domain.ColDeliverySpeedDays)
		if !ok {
			continue
		}
		bucket, ok := row.String(domain.ColDeliveryCategory)
		if !ok {
			continue
		}
		score, ok := row.Float(domain.ColReviewScore)
		if !ok {
			continue
		}
		key := orderID + "|" + strconv.Itoa(days) + "|" + strconv.FormatFloat(score, 'g', -1, 64)
		if seen[key] {
			continue
		}
		seen[key] = true
		unique = append(unique, experience{days: days, bucket: bucket, score: score})
	}

	metrics := domain.CustomerExperienceMetrics{
		DeliverySatisfactionBySpeed: make(map[string]float64),
	}
	if len(unique) == 0 {
		return metrics, nil
	}

	var totalDays, totalScore float64
	bucketSum := make(map[string]float64)
	bucketCount := make(map[string]int)
	for _, e := range unique {
		totalDays += float64(e.days)
		totalScore += e.score
		bucketSum[e.bucket] += e.score
		bucketCount[e.bucket]++
	}
	metrics.AvgDeliveryDays = totalDays / float64(len(unique))
	metrics.AvgReviewScore = totalScore / float64(len(unique))
	for bucket, sum := range bucketSum {
		metrics.DeliverySatisfactionBySpeed[bucket] = round3(sum / float64(bucketCount[bucket]))
	}
	return metrics, nil
}

// OrderStatusDistribution reports the normalized frequency of each order
// status among orders placed in the given year, derived from the purchase
// timestamp and rounded to 4 decimals. The proportions sum to 1 up to
// rounding. Rows whose timestamp cannot be parsed are excluded.
func OrderStatusDistribution(orders *dataset.Table, year int) (map[string]float64, error) {
	if !orders.HasColumn(domain.ColOrderStatus) {
		return nil, errors.NewValidationError("orders dataset has no order_status column")
	}
	if !orders.HasColumn(domain.ColPurchaseTimestamp) {
		return nil, errors.NewValidationError(fmt.Sprintf("orders dataset has no %s column", domain.ColPurchaseTimestamp))
	}

	counts := make(map[string]int)
	total := 0
	for i := 0; i < orders.NumRows(); i++ {
		row := orders.Row(i)
		ts, ok := dataset.ParseTime(row.Value(domain.ColPurchaseTimestamp))
		if !ok || ts.Year() != year {
			continue
		}
		status, ok := row.String(domain.ColOrderStatus)
		if !ok {
			continue
		}
		counts[status]++
		total++
	}

	distribution := make(map[string]float64, len(counts))
	for status, n := range counts {
		distribution[status] = round4(float64(n) / float64(total))
	}
	return distribution, nil
}
