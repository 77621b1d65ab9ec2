package validation

import (
	"errors"
	"io/fs"
	"os"

	"github.com/iwvelando/stockmax/internal/stockparser"
)

// Arguments are the query options supplied on the command line.
type Arguments struct {
	FilePath string
	Company  string
	Year     string
	Month    string
}

// ValidateArguments rejects a query before any file is parsed. The path must
// name an existing regular file and at least one of company, year or month
// must be given.
func ValidateArguments(args Arguments) error {
	info, err := os.Stat(args.FilePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return stockparser.Errorf(stockparser.FileNotFound, "file not found %s", args.FilePath)
		}
		return stockparser.Wrap(stockparser.FileNotFound, err, "cannot access %s", args.FilePath)
	}
	if !info.Mode().IsRegular() {
		return stockparser.Errorf(stockparser.FileNotFound, "file not found %s", args.FilePath)
	}

	if args.Company == "" && args.Year == "" && args.Month == "" {
		return stockparser.Errorf(stockparser.InvalidOption,
			"at least one option amongst -c, -y or -m is required")
	}
	return nil
}
