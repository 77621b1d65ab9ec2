package stockparser

import (
	"errors"
	"fmt"
	"io/fs"
	"slices"

	"github.com/iwvelando/stockmax/internal/loader"
	"github.com/iwvelando/stockmax/pkg/constants"
	"github.com/iwvelando/stockmax/pkg/price"
	"go.uber.org/zap"
)

// Options describe one query against a price table.
type Options struct {
	FilePath   string
	Company    string
	Year       string
	Month      string
	Comparison price.Mode
	Encoding   string
	Sheet      string
}

// Criteria returns the year/month filter of the query.
func (o Options) Criteria() Criteria {
	return Criteria{Year: o.Year, Month: o.Month}
}

// Result is the answer to a query. A none Max means no data was found.
type Result struct {
	Company     string
	Criteria    Criteria
	Max         price.Price
	RowsScanned int
	RowsMatched int
}

// Found reports whether any value matched.
func (r *Result) Found() bool {
	return !r.Max.IsNone()
}

// Value returns the maximum as written in the input, or the no-data message.
func (r *Result) Value() string {
	if !r.Found() {
		return constants.NoDataMessage
	}
	return r.Max.String()
}

// ComputeMax opens the table at opts.FilePath and returns the maximum price
// matching opts. With a company it scans that company's column; without one
// it scans every company column. A company missing from the header fails
// with DataNotFound before any data row is read.
func ComputeMax(logger *zap.Logger, opts Options) (*Result, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	src, err := loader.Open(opts.FilePath, loader.Options{
		Encoding: opts.Encoding,
		Sheet:    opts.Sheet,
	})
	if err != nil {
		return nil, classifyOpenError(opts.FilePath, err)
	}
	defer func() {
		if err := src.Close(); err != nil {
			logger.Warn("failed to close price table",
				zap.String("op", "stockparser.ComputeMax"),
				zap.String("path", opts.FilePath),
				zap.Error(err),
			)
		}
	}()

	header := src.Header()
	logger.Debug(fmt.Sprintf("read header with %d columns", len(header)),
		zap.String("op", "stockparser.ComputeMax"),
		zap.Strings("columns", header),
	)

	if opts.Company != "" && !slices.Contains(header, opts.Company) {
		return nil, Errorf(DataNotFound, "no data about company %q in %q", opts.Company, opts.FilePath)
	}
	if opts.Company != "" {
		if err := requireLabelColumns(header, opts.Criteria(), opts.FilePath); err != nil {
			return nil, err
		}
	}

	records, err := src.Records()
	if err != nil {
		return nil, Wrap(MalformedRow, err, "failed to read %q", opts.FilePath)
	}

	mode := opts.Comparison
	if mode == "" {
		mode = price.Numeric
	}

	var scan Scan
	if opts.Company != "" {
		rows, err := KeyedRows(header, records)
		if err != nil {
			return nil, err
		}
		scan, err = ScanCompanyColumn(rows, opts.Company, opts.Criteria(), mode)
		if err != nil {
			return nil, err
		}
	} else {
		rows, err := PositionalRows(records)
		if err != nil {
			return nil, err
		}
		scan, err = ScanAllColumns(rows, opts.Criteria(), mode)
		if err != nil {
			return nil, err
		}
	}

	logger.Debug("scanned price table",
		zap.String("op", "stockparser.ComputeMax"),
		zap.String("company", opts.Company),
		zap.String("year", opts.Year),
		zap.String("month", opts.Month),
		zap.Bool("filtered", !opts.Criteria().IsEmpty()),
		zap.Int("rowsScanned", scan.Scanned),
		zap.Int("rowsMatched", scan.Matched),
		zap.Bool("found", !scan.Max.IsNone()),
	)

	return &Result{
		Company:     opts.Company,
		Criteria:    opts.Criteria(),
		Max:         scan.Max,
		RowsScanned: scan.Scanned,
		RowsMatched: scan.Matched,
	}, nil
}

// requireLabelColumns checks that keyed rows can be filtered: every label
// the criteria constrain must be a column of the header.
func requireLabelColumns(header []string, c Criteria, path string) error {
	if c.Year != "" && !slices.Contains(header, constants.YearColumn) {
		return Errorf(MalformedRow, "header of %q has no %q column", path, constants.YearColumn)
	}
	if c.Month != "" && !slices.Contains(header, constants.MonthColumn) {
		return Errorf(MalformedRow, "header of %q has no %q column", path, constants.MonthColumn)
	}
	return nil
}

func classifyOpenError(path string, err error) error {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return Errorf(FileNotFound, "file not found %s", path)
	case errors.Is(err, loader.ErrNoHeader):
		return Wrap(MalformedRow, err, "failed to read %q", path)
	case errors.Is(err, loader.ErrSheetNotFound), errors.Is(err, loader.ErrUnknownEncoding):
		return Wrap(InvalidOption, err, "cannot read %q", path)
	}
	return Wrap(FileNotFound, err, "failed to open %q", path)
}
