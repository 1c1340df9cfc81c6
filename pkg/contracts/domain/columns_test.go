package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDatasetFiles(t *testing.T) {
	files := DatasetFiles()
	require.Len(t, files, 5)
	assert.Equal(t, "orders_dataset.csv", files[TableOrders])
	assert.Equal(t, "order_items_dataset.csv", files[TableOrderItems])
	assert.Equal(t, "products_dataset.csv", files[TableProducts])
	assert.Equal(t, "customers_dataset.csv", files[TableCustomers])
	assert.Equal(t, "order_reviews_dataset.csv", files[TableReviews])
}

func TestDatetimeColumns(t *testing.T) {
	cols := DatetimeColumns()
	require.Len(t, cols, 3)
	assert.Contains(t, cols, ColPurchaseTimestamp)
	assert.Contains(t, cols, ColDeliveredCustomerDate)
	assert.Contains(t, cols, ColEstimatedDeliveryDate)
}

func TestDataDictionaryCoversAllDatasets(t *testing.T) {
	dict := DataDictionary()
	for name := range DatasetFiles() {
		assert.Contains(t, dict, name)
	}
}
