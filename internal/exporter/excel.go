package exporter

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"shopcli/internal/config"
	"shopcli/internal/errors"
	"shopcli/pkg/contracts/domain"
)

// ExcelWriter writes the analysis workbook: a Summary sheet with the
// business summary and one sheet per performance breakdown.
type ExcelWriter struct {
	paths  config.PathsConfig
	logger *slog.Logger
}

// NewExcelWriter creates a new Excel writer instance
func NewExcelWriter(paths config.PathsConfig, logger *slog.Logger) *ExcelWriter {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExcelWriter{paths: paths, logger: logger}
}

// WorkbookData collects everything that goes into one analysis workbook.
type WorkbookData struct {
	Summary    domain.BusinessSummary
	Categories []domain.RegionPerformance
	States     []domain.RegionPerformance
	Monthly    []domain.MonthlyRevenue
}

// WriteWorkbook writes the workbook to the reports directory. Relative paths
// are resolved against the reports directory.
func (w *ExcelWriter) WriteWorkbook(filePath string, data WorkbookData) error {
	fullPath := filePath
	if !filepath.IsAbs(fullPath) {
		fullPath = filepath.Join(w.paths.ReportsDir, fullPath)
	}
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", "Summary"); err != nil {
		return fmt.Errorf("failed to rename summary sheet: %w", err)
	}
	writeSummarySheet(f, data.Summary)

	if err := writePerformanceSheet(f, "Categories", "Category", data.Categories); err != nil {
		return err
	}
	if err := writePerformanceSheet(f, "States", "State", data.States); err != nil {
		return err
	}
	if err := writeMonthlySheet(f, data.Monthly); err != nil {
		return err
	}

	if err := f.SaveAs(fullPath); err != nil {
		return errors.NewExportError("failed to save workbook", err).WithContext("path", fullPath)
	}
	w.logger.Info("wrote analysis workbook",
		slog.String("path", fullPath),
		slog.Int("categories", len(data.Categories)),
		slog.Int("states", len(data.States)))
	return nil
}

func writeSummarySheet(f *excelize.File, s domain.BusinessSummary) {
	rows := [][]interface{}{
		{"Section", "Metric", "Value"},
		{"Revenue", "Current Revenue", s.Revenue.CurrentRevenue},
		{"Revenue", "Revenue Growth", s.Revenue.RevenueGrowth},
		{"Orders", "Current Orders", s.Orders.CurrentOrders},
		{"Orders", "Current AOV", s.Orders.CurrentAOV},
		{"Orders", "Order Growth", s.Orders.OrderGrowth},
		{"Customer Experience", "Avg Delivery Days", s.Experience.AvgDeliveryDays},
		{"Customer Experience", "Avg Satisfaction", s.Experience.AvgSatisfaction},
	}
	for i, row := range rows {
		for j, cell := range row {
			ref, _ := excelize.CoordinatesToCellName(j+1, i+1)
			f.SetCellValue("Summary", ref, cell)
		}
	}
}

func writePerformanceSheet(f *excelize.File, sheet, keyHeader string, rows []domain.RegionPerformance) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", sheet, err)
	}
	header := []interface{}{keyHeader, "Total Revenue", "Total Orders", "Avg Order Value"}
	for j, cell := range header {
		ref, _ := excelize.CoordinatesToCellName(j+1, 1)
		f.SetCellValue(sheet, ref, cell)
	}
	for i, row := range rows {
		values := []interface{}{row.Key, row.TotalRevenue, row.TotalOrders, row.AvgOrderValue}
		for j, cell := range values {
			ref, _ := excelize.CoordinatesToCellName(j+1, i+2)
			f.SetCellValue(sheet, ref, cell)
		}
	}
	return nil
}

func writeMonthlySheet(f *excelize.File, series []domain.MonthlyRevenue) error {
	if _, err := f.NewSheet("Monthly"); err != nil {
		return fmt.Errorf("failed to create sheet Monthly: %w", err)
	}
	header := []interface{}{"Month", "Revenue", "Growth %"}
	for j, cell := range header {
		ref, _ := excelize.CoordinatesToCellName(j+1, 1)
		f.SetCellValue("Monthly", ref, cell)
	}
	for i, point := range series {
		values := []interface{}{point.Month, point.Revenue}
		if point.GrowthPercent != nil {
			values = append(values, *point.GrowthPercent)
		} else {
			values = append(values, "")
		}
		for j, cell := range values {
			ref, _ := excelize.CoordinatesToCellName(j+1, i+2)
			f.SetCellValue("Monthly", ref, cell)
		}
	}
	return nil
}
