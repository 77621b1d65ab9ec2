package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/iwvelando/stockmax/pkg/constants"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

type csvSource struct {
	file   *os.File
	reader *csv.Reader
	header []string
}

func openCSV(path string, opts Options) (*csvSource, error) {
	dec, err := decoderFor(opts.Encoding)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	reader := csv.NewReader(transform.NewReader(file, dec))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		_ = file.Close()
		if errors.Is(err, io.EOF) {
			return nil, ErrNoHeader
		}
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	return &csvSource{file: file, reader: reader, header: header}, nil
}

func decoderFor(enc string) (*encoding.Decoder, error) {
	if err := ValidateEncoding(enc); err != nil {
		return nil, err
	}
	if enc == constants.EncodingLatin1 {
		return charmap.ISO8859_1.NewDecoder(), nil
	}
	// UTF8BOM drops a leading byte order mark so it does not end up in "Year".
	return unicode.UTF8BOM.NewDecoder(), nil
}

func (s *csvSource) Header() []string {
	return s.header
}

func (s *csvSource) Records() ([]Record, error) {
	var records []Record
	for {
		fields, err := s.reader.Read()
		if errors.Is(err, io.EOF) {
			return records, nil
		}
		if err != nil {
			return nil, err
		}
		line, _ := s.reader.FieldPos(0)
		records = append(records, Record{Line: line, Fields: fields})
	}
}

func (s *csvSource) Close() error {
	return s.file.Close()
}
