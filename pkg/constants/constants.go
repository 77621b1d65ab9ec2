// Package constants provides shared constants for the stockmax application.
package constants

// Column headers expected at the start of every price table.
const (
	// YearColumn is the header of the first column.
	YearColumn = "Year"

	// MonthColumn is the header of the second column.
	MonthColumn = "Month"

	// LabelColumns is the number of leading label columns before the
	// per-company price columns.
	LabelColumns = 2
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"

	// NoDataMessage is printed in place of a value when nothing matched.
	NoDataMessage = "No data found."
)

// Comparison modes for price cells
const (
	// CompareNumeric parses cells as numbers before comparing them.
	CompareNumeric = "numeric"

	// CompareLexical compares the raw cell text byte by byte.
	CompareLexical = "lexical"
)

// Input encodings
const (
	// EncodingUTF8 is the default input encoding. ASCII files are valid UTF-8.
	EncodingUTF8 = "utf-8"

	// EncodingLatin1 decodes ISO-8859-1 input.
	EncodingLatin1 = "latin-1"
)

// Input file extensions
const (
	// ExtensionXLSX selects the workbook reader; anything else is read as CSV.
	ExtensionXLSX = ".xlsx"
)

// Configuration constants
const (
	// EnvPrefix prefixes environment overrides, e.g. STOCKMAX_PARSER_COMPARISON.
	EnvPrefix = "STOCKMAX"

	// ExampleConfigFile is the example configuration file name
	ExampleConfigFile = "config.yaml.example"

	// DefaultLogLevel keeps stdout limited to the result line.
	DefaultLogLevel = "warn"

	// DefaultLogFormat is the default zap encoder.
	DefaultLogFormat = "json"
)
