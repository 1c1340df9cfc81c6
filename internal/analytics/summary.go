package analytics

import (
	"fmt"

	"shopcli/pkg/contracts/domain"
)

// BusinessSummary assembles the human-readable report from the four metric
// results. Pure presentation: growth percentages to 2 decimals, currency to
// 2 decimals, delivery days to 1 decimal, satisfaction as "x.xx/5.0".
func BusinessSummary(
	revenue domain.RevenueMetrics,
	aov domain.AOVMetrics,
	volume domain.OrderVolumeMetrics,
	cx domain.CustomerExperienceMetrics,
) domain.BusinessSummary {
	return domain.BusinessSummary{
		Revenue: domain.RevenueSummary{
			CurrentRevenue: revenue.CurrentYearRevenue,
			RevenueGrowth:  fmt.Sprintf("%.2f%%", revenue.RevenueGrowthPercent),
		},
		Orders: domain.OrderSummary{
			CurrentOrders: volume.CurrentYearOrders,
			CurrentAOV:    fmt.Sprintf("$%.2f", aov.CurrentYearAOV),
			OrderGrowth:   fmt.Sprintf("%.2f%%", volume.OrderGrowthPercent),
		},
		Experience: domain.ExperienceSummary{
			AvgDeliveryDays: fmt.Sprintf("%.1f days", cx.AvgDeliveryDays),
			AvgSatisfaction: fmt.Sprintf("%.2f/5.0", cx.AvgReviewScore),
		},
	}
}
