package domain

// RevenueMetrics compares total revenue between two years.
type RevenueMetrics struct {
	CurrentYearRevenue   float64 `json:"current_year_revenue"`
	PreviousYearRevenue  float64 `json:"previous_year_revenue"`
	RevenueGrowthPercent float64 `json:"revenue_growth_percent"`
}

// AOVMetrics compares average order value between two years.
type AOVMetrics struct {
	CurrentYearAOV   float64 `json:"current_year_aov"`
	PreviousYearAOV  float64 `json:"previous_year_aov"`
	AOVGrowthPercent float64 `json:"aov_growth_percent"`
}

// OrderVolumeMetrics compares distinct order counts between two years.
type OrderVolumeMetrics struct {
	CurrentYearOrders  int     `json:"current_year_orders"`
	PreviousYearOrders int     `json:"previous_year_orders"`
	OrderGrowthPercent float64 `json:"order_growth_percent"`
}

// MonthlyRevenue is one point of the month-over-month growth series.
// GrowthPercent is nil for the first month of the series, where a
// change-from-previous-period value is undefined.
type MonthlyRevenue struct {
	Month         int      `json:"month"`
	Revenue       float64  `json:"revenue"`
	GrowthPercent *float64 `json:"growth_percent"`
}

// RegionPerformance is one aggregated row of a category or geographic
// performance ranking. Key holds the category name or state code.
type RegionPerformance struct {
	Key           string  `json:"key"`
	TotalRevenue  float64 `json:"total_revenue"`
	TotalOrders   int     `json:"total_orders"`
	AvgOrderValue float64 `json:"avg_order_value"`
}

// CustomerExperienceMetrics summarizes delivery speed and satisfaction.
type CustomerExperienceMetrics struct {
	AvgDeliveryDays             float64            `json:"avg_delivery_days"`
	AvgReviewScore              float64            `json:"avg_review_score"`
	DeliverySatisfactionBySpeed map[string]float64 `json:"delivery_satisfaction_by_speed"`
}

// RevenueSummary holds the formatted revenue section of the business summary.
// CurrentRevenue stays numeric; the growth figure is a display string.
type RevenueSummary struct {
	CurrentRevenue float64 `json:"current_revenue"`
	RevenueGrowth  string  `json:"revenue_growth"`
}

// OrderSummary holds the formatted order section of the business summary.
type OrderSummary struct {
	CurrentOrders int    `json:"current_orders"`
	CurrentAOV    string `json:"current_aov"`
	OrderGrowth   string `json:"order_growth"`
}

// ExperienceSummary holds the formatted customer-experience section.
type ExperienceSummary struct {
	AvgDeliveryDays string `json:"avg_delivery_days"`
	AvgSatisfaction string `json:"avg_satisfaction"`
}

// BusinessSummary is the assembled human-readable report. All fields are
// presentation strings; no computation happens past this point.
type BusinessSummary struct {
	Revenue    RevenueSummary    `json:"revenue_summary"`
	Orders     OrderSummary      `json:"order_summary"`
	Experience ExperienceSummary `json:"customer_experience"`
}

// TableSummary describes the shape and health of one loaded dataset.
type TableSummary struct {
	Rows          int               `json:"rows"`
	Columns       int               `json:"columns"`
	ColumnNames   []string          `json:"column_names"`
	MissingValues map[string]int    `json:"missing_values"`
	ColumnTypes   map[string]string `json:"column_types"`
}
