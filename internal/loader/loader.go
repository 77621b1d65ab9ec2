// Package loader opens price tables and yields their header and data records.
// CSV files are read with encoding/csv; workbooks with excelize.
package loader

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/iwvelando/stockmax/pkg/constants"
)

var (
	// ErrNoHeader is returned when a table has no header line.
	ErrNoHeader = errors.New("missing header line")

	// ErrSheetNotFound is returned when the requested worksheet does not exist.
	ErrSheetNotFound = errors.New("sheet not found")

	// ErrUnknownEncoding is returned for an unsupported input encoding.
	ErrUnknownEncoding = errors.New("unknown encoding")
)

// Record is one data row with its 1-based position in the source.
type Record struct {
	Line   int
	Fields []string
}

// Options tune how a table is read.
type Options struct {
	// Encoding applies to CSV input only.
	Encoding string
	// Sheet applies to workbook input only. Empty selects the first sheet.
	Sheet string
}

// Source is an open price table. The header is read by Open; the data rows
// are only read by Records.
type Source interface {
	Header() []string
	Records() ([]Record, error)
	Close() error
}

// Open opens the table at path, picking the reader from the file extension,
// and reads its header.
func Open(path string, opts Options) (Source, error) {
	if strings.EqualFold(filepath.Ext(path), constants.ExtensionXLSX) {
		src, err := openWorkbook(path, opts)
		if err != nil {
			return nil, err
		}
		return src, nil
	}
	src, err := openCSV(path, opts)
	if err != nil {
		return nil, err
	}
	return src, nil
}

// ValidateEncoding checks that enc names a supported input encoding.
func ValidateEncoding(enc string) error {
	switch enc {
	case "", constants.EncodingUTF8, constants.EncodingLatin1:
		return nil
	}
	return fmt.Errorf("%w: expected %s or %s, got %s",
		ErrUnknownEncoding, constants.EncodingUTF8, constants.EncodingLatin1, enc)
}
