package testutil

import (
	"os"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestWriteFile(t *testing.T) {
	path := WriteFile(t, "prices.csv", SampleCSV)

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(data) != SampleCSV {
		t.Errorf("WriteFile() wrote %q, want %q", string(data), SampleCSV)
	}
}

func TestSampleRowsMatchesSampleCSV(t *testing.T) {
	lines := strings.Split(strings.TrimSpace(SampleCSV), "\n")
	rows := SampleRows()
	if len(lines) != len(rows) {
		t.Fatalf("SampleCSV has %d lines, SampleRows has %d rows", len(lines), len(rows))
	}
	for i, line := range lines {
		if got := strings.Join(rows[i], ","); got != line {
			t.Errorf("row %d = %q, want %q", i, got, line)
		}
	}
}

func TestWriteWorkbook(t *testing.T) {
	tests := []struct {
		name      string
		sheet     string
		wantSheet string
	}{
		{name: "Default sheet", sheet: "", wantSheet: "Sheet1"},
		{name: "Named sheet", sheet: "Prices", wantSheet: "Prices"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := WriteWorkbook(t, "prices.xlsx", tt.sheet, SampleRows())

			f, err := excelize.OpenFile(path)
			if err != nil {
				t.Fatalf("OpenFile() error = %v", err)
			}
			defer func() {
				_ = f.Close()
			}()

			rows, err := f.GetRows(tt.wantSheet)
			if err != nil {
				t.Fatalf("GetRows(%s) error = %v", tt.wantSheet, err)
			}
			if len(rows) != 4 {
				t.Fatalf("expected 4 rows, got %d", len(rows))
			}
			if rows[3][2] != "50" {
				t.Errorf("expected C4 = 50, got %s", rows[3][2])
			}
		})
	}
}
