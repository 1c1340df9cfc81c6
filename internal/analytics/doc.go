// Package analytics computes the business metrics over prepared sales
// tables: year-over-year revenue, average order value and order volume
// growth, the monthly growth series, category and geographic revenue
// rankings, delivery-speed versus satisfaction correlation, order-status
// distribution and the final business summary.
//
// Every function is pure: inputs are read, never mutated, and no session
// state is involved. Growth calculations share one degenerate-denominator
// guard (previous period of zero yields growth 0).
package analytics
