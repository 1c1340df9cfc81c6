package domain

// DataDictionary returns the column descriptions for every dataset, keyed by
// dataset name then column name. It documents the full source schemas, not
// only the columns the loader consumes. The mapping is rebuilt on every call
// so callers may mutate their copy freely.
func DataDictionary() map[string]map[string]string {
	return map[string]map[string]string{
		TableOrders: {
			ColOrderID:                     "Unique identifier for each order",
			ColCustomerID:                  "Unique identifier for the customer who placed the order",
			ColOrderStatus:                 "Current status of the order (delivered, shipped, canceled, etc.)",
			ColPurchaseTimestamp:           "Date and time when the order was placed",
			"order_approved_at":            "Date and time when the order was approved",
			"order_delivered_carrier_date": "Date when order was delivered to carrier",
			ColDeliveredCustomerDate:       "Date when order was delivered to customer",
			ColEstimatedDeliveryDate:       "Estimated delivery date provided to customer",
		},
		TableOrderItems: {
			ColOrderID:            "Reference to the order this item belongs to",
			ColOrderItemID:        "Sequential number of the item within the order",
			ColProductID:          "Unique identifier for the product",
			"seller_id":           "Unique identifier for the seller",
			"shipping_limit_date": "Latest date seller can ship the item",
			ColPrice:              "Item price in USD",
			ColFreightValue:       "Shipping cost for this item in USD",
		},
		TableProducts: {
			ColProductID:                 "Unique identifier for each product",
			ColProductCategoryName:       "Product category (e.g., electronics, books_media)",
			"product_name_length":        "Number of characters in product name",
			"product_description_length": "Number of characters in product description",
			"product_photos_qty":         "Number of product photos available",
			"product_weight_g":           "Product weight in grams",
			"product_length_cm":          "Product length in centimeters",
			"product_height_cm":          "Product height in centimeters",
			"product_width_cm":           "Product width in centimeters",
		},
		TableCustomers: {
			ColCustomerID:              "Unique identifier for each customer",
			"customer_unique_id":       "Unique identifier across all orders (privacy-focused)",
			"customer_zip_code_prefix": "First digits of customer zip code",
			ColCustomerCity:            "Customer city",
			ColCustomerState:           "Customer state (2-letter abbreviation)",
		},
		TableReviews: {
			"review_id":               "Unique identifier for each review",
			ColOrderID:                "Reference to the order being reviewed",
			ColReviewScore:            "Customer satisfaction score (1-5, where 5 is best)",
			"review_comment_title":    "Title of the review comment",
			"review_comment_message":  "Full text of the review",
			"review_creation_date":    "Date when review was created",
			"review_answer_timestamp": "Date when review was answered by seller",
		},
	}
}
