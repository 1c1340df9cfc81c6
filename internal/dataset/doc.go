// Package dataset provides the relational table engine the loader and
// analytics packages are built on.
//
// A Table is an ordered-column, row-major container of nullable cells.
// Cells carry one of four concrete types (string, float64, int, time.Time)
// or are null (nil). Tables come from CSV files via ReadCSV or are built in
// code, and every derived table (Copy, Select, Filter, WithColumn, joins)
// is a fresh copy: transformations never mutate their input by reference.
//
// Example usage:
//
//	orders, err := dataset.ReadCSV("orders_dataset.csv")
//	if err != nil {
//	    return err
//	}
//
//	delivered := orders.Filter(func(r dataset.Row) bool {
//	    status, _ := r.String("order_status")
//	    return status == "delivered"
//	})
//
//	sales, err := items.InnerJoin(delivered, "order_id", "order_status")
package dataset
