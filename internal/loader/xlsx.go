package loader

import (
	"fmt"
	"slices"

	"github.com/xuri/excelize/v2"
)

type workbookSource struct {
	file   *excelize.File
	rows   *excelize.Rows
	header []string
	line   int
}

func openWorkbook(path string, opts Options) (*workbookSource, error) {
	file, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}

	sheets := file.GetSheetList()
	sheet := opts.Sheet
	if sheet == "" && len(sheets) > 0 {
		sheet = sheets[0]
	}
	if !slices.Contains(sheets, sheet) {
		_ = file.Close()
		return nil, fmt.Errorf("%w: %q", ErrSheetNotFound, opts.Sheet)
	}

	rows, err := file.Rows(sheet)
	if err != nil {
		_ = file.Close()
		return nil, err
	}

	src := &workbookSource{file: file, rows: rows}
	header, ok, err := src.next()
	if err != nil || !ok {
		_ = src.Close()
		if err == nil {
			err = ErrNoHeader
		}
		return nil, err
	}
	src.header = header
	return src, nil
}

// next returns the next non-empty row. Trailing empty cells are already
// trimmed by excelize.
func (s *workbookSource) next() ([]string, bool, error) {
	for s.rows.Next() {
		s.line++
		cols, err := s.rows.Columns()
		if err != nil {
			return nil, false, err
		}
		if len(cols) > 0 {
			return cols, true, nil
		}
	}
	return nil, false, s.rows.Error()
}

func (s *workbookSource) Header() []string {
	return s.header
}

func (s *workbookSource) Records() ([]Record, error) {
	var records []Record
	for {
		fields, ok, err := s.next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return records, nil
		}
		records = append(records, Record{Line: s.line, Fields: fields})
	}
}

func (s *workbookSource) Close() error {
	rowsErr := s.rows.Close()
	if err := s.file.Close(); err != nil {
		return err
	}
	return rowsErr
}
