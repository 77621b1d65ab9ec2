package stockparser

import (
	"github.com/iwvelando/stockmax/internal/loader"
	"github.com/iwvelando/stockmax/pkg/constants"
)

// KeyedRow is a data row addressed by column name.
type KeyedRow struct {
	Line   int
	Fields map[string]string
}

// Year returns the row's year label.
func (r KeyedRow) Year() string {
	return r.Fields[constants.YearColumn]
}

// Month returns the row's month label.
func (r KeyedRow) Month() string {
	return r.Fields[constants.MonthColumn]
}

// PositionalRow is a data row addressed by position: year, month, then one
// value per company.
type PositionalRow struct {
	Line   int
	Values []string
}

// KeyedRows pairs each record with the header. Cells past the end of a short
// record are left out of the map; cells past the end of the header are
// dropped.
func KeyedRows(header []string, records []loader.Record) ([]KeyedRow, error) {
	rows := make([]KeyedRow, 0, len(records))
	for _, rec := range records {
		if err := checkLabels(rec); err != nil {
			return nil, err
		}
		fields := make(map[string]string, len(header))
		for i, name := range header {
			if i >= len(rec.Fields) {
				break
			}
			fields[name] = rec.Fields[i]
		}
		rows = append(rows, KeyedRow{Line: rec.Line, Fields: fields})
	}
	return rows, nil
}

// PositionalRows converts records into positional rows.
func PositionalRows(records []loader.Record) ([]PositionalRow, error) {
	rows := make([]PositionalRow, 0, len(records))
	for _, rec := range records {
		if err := checkLabels(rec); err != nil {
			return nil, err
		}
		rows = append(rows, PositionalRow{Line: rec.Line, Values: rec.Fields})
	}
	return rows, nil
}

func checkLabels(rec loader.Record) error {
	if len(rec.Fields) < constants.LabelColumns {
		return Errorf(MalformedRow, "line %d: expected at least %d fields, got %d",
			rec.Line, constants.LabelColumns, len(rec.Fields))
	}
	return nil
}
