package exporter

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopcli/internal/config"
	"shopcli/pkg/contracts/domain"
)

func testWriter(t *testing.T) (*CSVWriter, string) {
	t.Helper()
	dir := t.TempDir()
	return NewCSVWriter(config.PathsConfig{ReportsDir: dir}, nil), dir
}

func readReport(t *testing.T, path string) [][]string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	content := strings.TrimPrefix(string(data), "\uFEFF")
	records, err := csv.NewReader(strings.NewReader(content)).ReadAll()
	require.NoError(t, err)
	return records
}

func TestWriteCSV(t *testing.T) {
	writer, dir := testWriter(t)

	err := writer.WriteCSV("report.csv", WriteOptions{
		Headers: []string{"name", "value"},
		Records: [][]string{{"a", "1"}, {"b", "2"}},
	})
	require.NoError(t, err)

	records := readReport(t, filepath.Join(dir, "report.csv"))
	require.Len(t, records, 3)
	assert.Equal(t, []string{"name", "value"}, records[0])
	assert.Equal(t, []string{"b", "2"}, records[2])
}

func TestWriteCSVBOMPrefix(t *testing.T) {
	writer, dir := testWriter(t)

	err := writer.WriteCSV("bom.csv", WriteOptions{
		Headers:   []string{"name"},
		Records:   [][]string{{"a"}},
		BOMPrefix: true,
	})
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "bom.csv"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "\uFEFF"))
}

func TestWriteCSVAppend(t *testing.T) {
	writer, dir := testWriter(t)

	require.NoError(t, writer.WriteCSV("append.csv", WriteOptions{
		Headers: []string{"name"},
		Records: [][]string{{"a"}},
	}))
	require.NoError(t, writer.WriteCSV("append.csv", WriteOptions{
		Headers: []string{"name"},
		Records: [][]string{{"b"}},
		Append:  true,
	}))

	records := readReport(t, filepath.Join(dir, "append.csv"))
	require.Len(t, records, 3, "append must not repeat the header")
	assert.Equal(t, []string{"b"}, records[2])
}

func TestWriteCSVCreatesSubdirectories(t *testing.T) {
	writer, dir := testWriter(t)

	err := writer.WriteCSV(filepath.Join("nested", "deep", "report.csv"), WriteOptions{
		Records: [][]string{{"a"}},
	})
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "nested", "deep", "report.csv"))
}

func TestWritePerformance(t *testing.T) {
	writer, dir := testWriter(t)

	rows := []domain.RegionPerformance{
		{Key: "electronics", TotalRevenue: 150.5, TotalOrders: 2, AvgOrderValue: 75.25},
		{Key: "books", TotalRevenue: 10, TotalOrders: 1, AvgOrderValue: 10},
	}
	require.NoError(t, writer.WritePerformance("categories.csv", "category", rows))

	records := readReport(t, filepath.Join(dir, "categories.csv"))
	require.Len(t, records, 3)
	assert.Equal(t, []string{"category", "total_revenue", "total_orders", "avg_order_value"}, records[0])
	assert.Equal(t, []string{"electronics", "150.50", "2", "75.25"}, records[1])
	assert.Equal(t, []string{"books", "10.00", "1", "10.00"}, records[2])
}
