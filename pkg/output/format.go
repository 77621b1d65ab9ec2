// Package output provides utilities for formatting and displaying query results.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/iwvelando/stockmax/internal/stockparser"
	"github.com/iwvelando/stockmax/pkg/constants"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Write renders result in the given format.
func Write(w io.Writer, format string, result *stockparser.Result) error {
	switch format {
	case constants.OutputFormatPretty:
		return PrettyFormat(w, result)
	case constants.OutputFormatCSV:
		return CsvFormat(w, result)
	}
	return fmt.Errorf("unknown output format %s", format)
}

// PrettyFormat outputs the single human-readable result line.
func PrettyFormat(w io.Writer, result *stockparser.Result) error {
	_, err := fmt.Fprintf(w, "Max: %s\n", result.Value())
	return err
}

// CsvFormat outputs a header and one comma-separated row describing the query
// and its result. Row counts use thousands separators.
func CsvFormat(w io.Writer, result *stockparser.Result) error {
	p := message.NewPrinter(language.English)
	if _, err := io.WriteString(w, `"company","year","month","max","rows matched","rows scanned"`+"\n"); err != nil {
		return err
	}
	_, err := p.Fprintf(w, "%s,%s,%s,%s,\"%d\",\"%d\"\n",
		quote(result.Company),
		quote(result.Criteria.Year),
		quote(result.Criteria.Month),
		quote(result.Value()),
		result.RowsMatched,
		result.RowsScanned,
	)
	return err
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
