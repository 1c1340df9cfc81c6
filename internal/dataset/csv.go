package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ReadCSV loads a CSV file into a table. The first record is the header row.
// Numeric cells become float64, empty cells become null, everything else
// stays a string. Timestamp coercion is a separate cleaning step so that raw
// tables round-trip the source text unchanged.
func ReadCSV(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return readCSV(f)
}

func readCSV(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}
	// Strip UTF-8 BOM written by Excel exports.
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\uFEFF")
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	table := New(header...)
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv record: %w", err)
		}
		row := make([]Value, len(header))
		for i := range header {
			if i < len(record) {
				row[i] = inferCell(record[i])
			}
		}
		table.rows = append(table.rows, row)
	}
	return table, nil
}

// inferCell converts one raw CSV cell to its working representation.
func inferCell(raw string) Value {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}
