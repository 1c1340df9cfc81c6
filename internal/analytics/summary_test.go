package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"shopcli/pkg/contracts/domain"
)

func TestBusinessSummary(t *testing.T) {
	got := BusinessSummary(
		domain.RevenueMetrics{CurrentYearRevenue: 12345.678, RevenueGrowthPercent: 12.3456},
		domain.AOVMetrics{CurrentYearAOV: 99.999},
		domain.OrderVolumeMetrics{CurrentYearOrders: 42, OrderGrowthPercent: -5},
		domain.CustomerExperienceMetrics{AvgDeliveryDays: 6.04, AvgReviewScore: 4.267},
	)

	assert.Equal(t, 12345.678, got.Revenue.CurrentRevenue)
	assert.Equal(t, "12.35%", got.Revenue.RevenueGrowth)
	assert.Equal(t, 42, got.Orders.CurrentOrders)
	assert.Equal(t, "$100.00", got.Orders.CurrentAOV)
	assert.Equal(t, "-5.00%", got.Orders.OrderGrowth)
	assert.Equal(t, "6.0 days", got.Experience.AvgDeliveryDays)
	assert.Equal(t, "4.27/5.0", got.Experience.AvgSatisfaction)
}

func TestBusinessSummaryZeroValues(t *testing.T) {
	got := BusinessSummary(
		domain.RevenueMetrics{},
		domain.AOVMetrics{},
		domain.OrderVolumeMetrics{},
		domain.CustomerExperienceMetrics{},
	)

	assert.Zero(t, got.Revenue.CurrentRevenue)
	assert.Equal(t, "0.00%", got.Revenue.RevenueGrowth)
	assert.Equal(t, "$0.00", got.Orders.CurrentAOV)
	assert.Equal(t, "0.0 days", got.Experience.AvgDeliveryDays)
	assert.Equal(t, "0.00/5.0", got.Experience.AvgSatisfaction)
}
