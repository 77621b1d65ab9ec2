// Package testutil provides common utility functions for testing.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

// SampleCSV is a three-company table covering two years.
const SampleCSV = `Year,Month,Company A,Company B,Company C
1990,Jan,20,15,20
1990,Feb,10,25,30
1991,Jan,50,25,10
`

// SampleRows is SampleCSV as rows, header first.
func SampleRows() [][]string {
	return [][]string{
		{"Year", "Month", "Company A", "Company B", "Company C"},
		{"1990", "Jan", "20", "15", "20"},
		{"1990", "Feb", "10", "25", "30"},
		{"1991", "Jan", "50", "25", "10"},
	}
}

// WriteFile writes content to name inside a per-test temporary directory and
// returns the full path.
func WriteFile(t testing.TB, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}

// WriteWorkbook saves rows to the named sheet of a new workbook inside a
// per-test temporary directory and returns the full path.
func WriteWorkbook(t testing.TB, name, sheet string, rows [][]string) string {
	t.Helper()
	f := excelize.NewFile()
	defer func() {
		_ = f.Close()
	}()

	if sheet != "" && sheet != "Sheet1" {
		if err := f.SetSheetName("Sheet1", sheet); err != nil {
			t.Fatalf("failed to rename sheet: %v", err)
		}
	} else {
		sheet = "Sheet1"
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("failed to compute cell name: %v", err)
		}
		values := make([]interface{}, len(row))
		for j, v := range row {
			values[j] = v
		}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			t.Fatalf("failed to write row %d: %v", i+1, err)
		}
	}

	path := filepath.Join(t.TempDir(), name)
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("failed to save workbook %s: %v", path, err)
	}
	return path
}
