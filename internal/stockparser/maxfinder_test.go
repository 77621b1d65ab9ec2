package stockparser

import (
	"testing"

	"github.com/iwvelando/stockmax/pkg/price"
)

func sampleKeyedRows() []KeyedRow {
	return []KeyedRow{
		{Line: 2, Fields: map[string]string{"Year": "1990", "Month": "Jan", "Company A": "20", "Company B": "15", "Company C": "20"}},
		{Line: 3, Fields: map[string]string{"Year": "1990", "Month": "Feb", "Company A": "10", "Company B": "25", "Company C": "30"}},
		{Line: 4, Fields: map[string]string{"Year": "1991", "Month": "Jan", "Company A": "50", "Company B": "25", "Company C": "10"}},
	}
}

func samplePositionalRows() []PositionalRow {
	return []PositionalRow{
		{Line: 2, Values: []string{"1990", "Jan", "20", "15", "20"}},
		{Line: 3, Values: []string{"1990", "Feb", "10", "25", "30"}},
		{Line: 4, Values: []string{"1991", "Jan", "50", "25", "10"}},
	}
}

func TestMaxOverCompanyColumn(t *testing.T) {
	tests := []struct {
		name     string
		company  string
		criteria Criteria
		want     string
		wantNone bool
	}{
		{name: "Company", company: "Company A", want: "50"},
		{name: "Company and year", company: "Company A", criteria: Criteria{Year: "1990"}, want: "20"},
		{name: "Company and month", company: "Company A", criteria: Criteria{Month: "Jan"}, want: "50"},
		{name: "Company, year and month", company: "Company C", criteria: Criteria{Year: "1990", Month: "Feb"}, want: "30"},
		{name: "Other company", company: "Company B", want: "25"},
		{name: "Year without rows", company: "Company A", criteria: Criteria{Year: "2000"}, wantNone: true},
		{name: "Unknown column reads as none", company: "Company Z", wantNone: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MaxOverCompanyColumn(sampleKeyedRows(), tt.company, tt.criteria, price.Numeric)
			if err != nil {
				t.Fatalf("MaxOverCompanyColumn() unexpected error = %v", err)
			}
			if tt.wantNone {
				if !got.IsNone() {
					t.Errorf("MaxOverCompanyColumn() = %s, want none", got)
				}
				return
			}
			if got.String() != tt.want {
				t.Errorf("MaxOverCompanyColumn() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestMaxOverAllColumns(t *testing.T) {
	tests := []struct {
		name     string
		criteria Criteria
		want     string
		wantNone bool
	}{
		{name: "Year", criteria: Criteria{Year: "1990"}, want: "30"},
		{name: "Month", criteria: Criteria{Month: "Jan"}, want: "50"},
		{name: "Year and month", criteria: Criteria{Year: "1990", Month: "Jan"}, want: "20"},
		{name: "No filter", criteria: Criteria{}, want: "50"},
		{name: "Single matching row", criteria: Criteria{Month: "Feb"}, want: "30"},
		{name: "Year without rows", criteria: Criteria{Year: "1989"}, wantNone: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MaxOverAllColumns(samplePositionalRows(), tt.criteria, price.Numeric)
			if err != nil {
				t.Fatalf("MaxOverAllColumns() unexpected error = %v", err)
			}
			if tt.wantNone {
				if !got.IsNone() {
					t.Errorf("MaxOverAllColumns() = %s, want none", got)
				}
				return
			}
			if got.String() != tt.want {
				t.Errorf("MaxOverAllColumns() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestScanCounters(t *testing.T) {
	scan, err := ScanCompanyColumn(sampleKeyedRows(), "Company A", Criteria{Year: "1990"}, price.Numeric)
	if err != nil {
		t.Fatalf("ScanCompanyColumn() unexpected error = %v", err)
	}
	if scan.Scanned != 3 || scan.Matched != 2 {
		t.Errorf("ScanCompanyColumn() scanned/matched = %d/%d, want 3/2", scan.Scanned, scan.Matched)
	}

	scan, err = ScanAllColumns(samplePositionalRows(), Criteria{Month: "Jan"}, price.Numeric)
	if err != nil {
		t.Fatalf("ScanAllColumns() unexpected error = %v", err)
	}
	if scan.Scanned != 3 || scan.Matched != 2 {
		t.Errorf("ScanAllColumns() scanned/matched = %d/%d, want 3/2", scan.Scanned, scan.Matched)
	}
}

func TestComparisonModes(t *testing.T) {
	keyed := []KeyedRow{
		{Line: 2, Fields: map[string]string{"Year": "1990", "Month": "Jan", "X": "9"}},
		{Line: 3, Fields: map[string]string{"Year": "1990", "Month": "Feb", "X": "10"}},
	}
	positional := []PositionalRow{
		{Line: 2, Values: []string{"1990", "Jan", "9", "2"}},
		{Line: 3, Values: []string{"1990", "Feb", "10", "3"}},
	}

	tests := []struct {
		mode price.Mode
		want string
	}{
		{mode: price.Numeric, want: "10"},
		{mode: price.Lexical, want: "9"},
	}

	for _, tt := range tests {
		t.Run(string(tt.mode), func(t *testing.T) {
			got, err := MaxOverCompanyColumn(keyed, "X", Criteria{}, tt.mode)
			if err != nil {
				t.Fatalf("MaxOverCompanyColumn() unexpected error = %v", err)
			}
			if got.String() != tt.want {
				t.Errorf("MaxOverCompanyColumn() = %s, want %s", got, tt.want)
			}

			got, err = MaxOverAllColumns(positional, Criteria{}, tt.mode)
			if err != nil {
				t.Fatalf("MaxOverAllColumns() unexpected error = %v", err)
			}
			if got.String() != tt.want {
				t.Errorf("MaxOverAllColumns() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestEmptyCellsAreNone(t *testing.T) {
	keyed := []KeyedRow{
		{Line: 2, Fields: map[string]string{"Year": "1990", "Month": "Jan", "X": ""}},
		{Line: 3, Fields: map[string]string{"Year": "1990", "Month": "Feb"}},
	}
	got, err := MaxOverCompanyColumn(keyed, "X", Criteria{}, price.Numeric)
	if err != nil {
		t.Fatalf("MaxOverCompanyColumn() unexpected error = %v", err)
	}
	if !got.IsNone() {
		t.Errorf("MaxOverCompanyColumn() = %s, want none", got)
	}

	positional := []PositionalRow{
		{Line: 2, Values: []string{"1990", "Jan", "", "-3"}},
		{Line: 3, Values: []string{"1990", "Feb"}},
	}
	got, err = MaxOverAllColumns(positional, Criteria{}, price.Numeric)
	if err != nil {
		t.Fatalf("MaxOverAllColumns() unexpected error = %v", err)
	}
	if got.String() != "-3" {
		t.Errorf("MaxOverAllColumns() = %s, want -3", got)
	}
}

func TestMalformedRows(t *testing.T) {
	_, err := MaxOverAllColumns([]PositionalRow{
		{Line: 2, Values: []string{"1990", "Jan", "20"}},
		{Line: 3, Values: []string{"1990"}},
	}, Criteria{}, price.Numeric)
	if KindOf(err) != MalformedRow {
		t.Errorf("short positional row: got error %v, want MalformedRow", err)
	}

	_, err = MaxOverAllColumns([]PositionalRow{
		{Line: 5, Values: []string{"1990", "Jan", "twenty"}},
	}, Criteria{}, price.Numeric)
	if KindOf(err) != MalformedRow {
		t.Errorf("non-numeric positional cell: got error %v, want MalformedRow", err)
	}

	_, err = MaxOverCompanyColumn([]KeyedRow{
		{Line: 7, Fields: map[string]string{"Year": "1990", "Month": "Jan", "X": "twenty"}},
	}, "X", Criteria{}, price.Numeric)
	if KindOf(err) != MalformedRow {
		t.Errorf("non-numeric keyed cell: got error %v, want MalformedRow", err)
	}

	// Non-matching rows are never parsed.
	got, err := MaxOverCompanyColumn([]KeyedRow{
		{Line: 7, Fields: map[string]string{"Year": "1989", "Month": "Jan", "X": "twenty"}},
		{Line: 8, Fields: map[string]string{"Year": "1990", "Month": "Jan", "X": "4"}},
	}, "X", Criteria{Year: "1990"}, price.Numeric)
	if err != nil {
		t.Fatalf("MaxOverCompanyColumn() unexpected error = %v", err)
	}
	if got.String() != "4" {
		t.Errorf("MaxOverCompanyColumn() = %s, want 4", got)
	}
}
