package domain

// Table names used throughout the loader and analytics packages.
const (
	TableOrders     = "orders"
	TableOrderItems = "order_items"
	TableProducts   = "products"
	TableCustomers  = "customers"
	TableReviews    = "reviews"
)

// Column names for the raw datasets. These are the canonical spellings;
// the loader and analytics packages never hardcode column strings directly.
const (
	ColOrderID               = "order_id"
	ColCustomerID            = "customer_id"
	ColOrderStatus           = "order_status"
	ColPurchaseTimestamp     = "order_purchase_timestamp"
	ColDeliveredCustomerDate = "order_delivered_customer_date"
	ColEstimatedDeliveryDate = "order_estimated_delivery_date"

	ColOrderItemID  = "order_item_id"
	ColProductID    = "product_id"
	ColPrice        = "price"
	ColFreightValue = "freight_value"

	ColProductCategoryName = "product_category_name"

	ColCustomerState = "customer_state"
	ColCustomerCity  = "customer_city"

	ColReviewScore = "review_score"
)

// Derived column names appended by the loader and analytics packages.
const (
	ColYear              = "year"
	ColMonth             = "month"
	ColDayOfWeek         = "day_of_week"
	ColQuarter           = "quarter"
	ColDeliveryDays      = "delivery_days"
	ColDeliverySpeedDays = "delivery_speed_days"
	ColDeliveryCategory  = "delivery_time_category"
)

// OrderStatusDelivered is the default status restriction for sales analysis.
const OrderStatusDelivered = "delivered"

// DatasetFiles maps dataset names to the CSV file each one is read from.
func DatasetFiles() map[string]string {
	return map[string]string{
		TableOrders:     "orders_dataset.csv",
		TableOrderItems: "order_items_dataset.csv",
		TableProducts:   "products_dataset.csv",
		TableCustomers:  "customers_dataset.csv",
		TableReviews:    "order_reviews_dataset.csv",
	}
}

// DatetimeColumns lists the order timestamp columns the loader coerces.
func DatetimeColumns() []string {
	return []string{
		ColPurchaseTimestamp,
		ColDeliveredCustomerDate,
		ColEstimatedDeliveryDate,
	}
}
