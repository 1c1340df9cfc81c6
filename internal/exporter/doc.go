// Package exporter writes analysis results to the reports directory as CSV
// files (with optional UTF-8 BOM for Excel compatibility) and as an Excel
// workbook with summary and performance sheets.
package exporter
