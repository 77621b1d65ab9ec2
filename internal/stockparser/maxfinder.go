// Package stockparser finds the maximum stock price in a table of monthly
// prices, optionally narrowed to one company, one year and one month.
package stockparser

import (
	"github.com/iwvelando/stockmax/pkg/constants"
	"github.com/iwvelando/stockmax/pkg/price"
)

// Scan is the outcome of one pass over a set of rows.
type Scan struct {
	Max     price.Price
	Scanned int
	Matched int
}

// MaxOverCompanyColumn returns the largest value in the company column among
// rows matching c. It returns none when no matching row has a value.
func MaxOverCompanyColumn(rows []KeyedRow, company string, c Criteria, mode price.Mode) (price.Price, error) {
	scan, err := ScanCompanyColumn(rows, company, c, mode)
	return scan.Max, err
}

// ScanCompanyColumn is MaxOverCompanyColumn with row counters.
func ScanCompanyColumn(rows []KeyedRow, company string, c Criteria, mode price.Mode) (Scan, error) {
	scan := Scan{Max: price.None()}
	for _, row := range rows {
		scan.Scanned++
		if !c.Matches(row.Year(), row.Month()) {
			continue
		}
		scan.Matched++

		// A missing key reads as "" which parses to none.
		p, err := price.Parse(row.Fields[company], mode)
		if err != nil {
			return scan, Wrap(MalformedRow, err, "line %d: column %q", row.Line, company)
		}
		scan.Max = price.Max(scan.Max, p)
	}
	return scan, nil
}

// MaxOverAllColumns returns the largest value in any company column among
// rows matching c. The running maximum joins each matching row's candidates,
// so the result covers every previously matched row and all columns of the
// current one.
func MaxOverAllColumns(rows []PositionalRow, c Criteria, mode price.Mode) (price.Price, error) {
	scan, err := ScanAllColumns(rows, c, mode)
	return scan.Max, err
}

// ScanAllColumns is MaxOverAllColumns with row counters.
func ScanAllColumns(rows []PositionalRow, c Criteria, mode price.Mode) (Scan, error) {
	scan := Scan{Max: price.None()}
	for _, row := range rows {
		scan.Scanned++
		if len(row.Values) < constants.LabelColumns {
			return scan, Errorf(MalformedRow, "line %d: expected at least %d fields, got %d",
				row.Line, constants.LabelColumns, len(row.Values))
		}
		year, month := row.Values[0], row.Values[1]
		if !c.Matches(year, month) {
			continue
		}
		scan.Matched++

		values := row.Values[constants.LabelColumns:]
		candidates := make([]price.Price, 0, len(values)+1)
		for i, raw := range values {
			p, err := price.Parse(raw, mode)
			if err != nil {
				return scan, Wrap(MalformedRow, err, "line %d: field %d", row.Line, i+constants.LabelColumns+1)
			}
			candidates = append(candidates, p)
		}
		if !scan.Max.IsNone() {
			candidates = append(candidates, scan.Max)
		}
		scan.Max = price.MaxOf(candidates...)
	}
	return scan, nil
}
