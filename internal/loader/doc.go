// Package loader ingests the raw e-commerce CSV datasets and prepares them
// for analysis: timestamp cleaning, time-feature extraction, the order-item
// to order join that produces the sales table, date-range filtering,
// data-quality validation, and assembly of the wide analysis dataset.
//
// A Session holds the loaded tables for one analysis run. Missing dataset
// files degrade the session (logged warning, dataset unavailable); an
// operation that needs an unloaded dataset fails with a MISSING_DATA error.
package loader
