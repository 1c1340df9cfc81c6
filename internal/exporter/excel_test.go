package exporter

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"shopcli/internal/config"
	"shopcli/pkg/contracts/domain"
)

func TestWriteWorkbook(t *testing.T) {
	dir := t.TempDir()
	writer := NewExcelWriter(config.PathsConfig{ReportsDir: dir}, nil)

	growth := 50.0
	data := WorkbookData{
		Summary: domain.BusinessSummary{
			Revenue: domain.RevenueSummary{CurrentRevenue: 150, RevenueGrowth: "100.00%"},
			Orders:  domain.OrderSummary{CurrentOrders: 2, CurrentAOV: "$75.00", OrderGrowth: "0.00%"},
			Experience: domain.ExperienceSummary{
				AvgDeliveryDays: "3.0 days",
				AvgSatisfaction: "4.50/5.0",
			},
		},
		Categories: []domain.RegionPerformance{
			{Key: "electronics", TotalRevenue: 150, TotalOrders: 2, AvgOrderValue: 75},
		},
		States: []domain.RegionPerformance{
			{Key: "CA", TotalRevenue: 150, TotalOrders: 2, AvgOrderValue: 75},
		},
		Monthly: []domain.MonthlyRevenue{
			{Month: 1, Revenue: 100},
			{Month: 2, Revenue: 150, GrowthPercent: &growth},
		},
	}

	require.NoError(t, writer.WriteWorkbook("analysis.xlsx", data))

	path := filepath.Join(dir, "analysis.xlsx")
	require.FileExists(t, path)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.ElementsMatch(t, []string{"Summary", "Categories", "States", "Monthly"}, f.GetSheetList())

	got, err := f.GetCellValue("Summary", "B2")
	require.NoError(t, err)
	assert.Equal(t, "Current Revenue", got)

	got, err = f.GetCellValue("Categories", "A2")
	require.NoError(t, err)
	assert.Equal(t, "electronics", got)

	got, err = f.GetCellValue("Monthly", "C3")
	require.NoError(t, err)
	assert.Equal(t, "50", got)
}

func TestWriteWorkbookEmptySections(t *testing.T) {
	dir := t.TempDir()
	writer := NewExcelWriter(config.PathsConfig{ReportsDir: dir}, nil)

	require.NoError(t, writer.WriteWorkbook("empty.xlsx", WorkbookData{}))

	f, err := excelize.OpenFile(filepath.Join(dir, "empty.xlsx"))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Categories")
	require.NoError(t, err)
	require.Len(t, rows, 1, "header only")
}
