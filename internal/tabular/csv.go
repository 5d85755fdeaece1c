package tabular

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/gocarina/gocsv"
	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// SetLogger allows setting a configured logger
func SetLogger(logger *logrus.Logger) {
	if logger == nil {
		return
	}
	log = logger
}

// Delimiter is the field separator for CSV input and output. It can be
// overridden via configuration before any source is read.
var Delimiter rune = ','

// SetDelimiter sets the delimiter for CSV input and output.
func SetDelimiter(delim rune) {
	Delimiter = delim
	gocsv.TagSeparator = fmt.Sprintf("%c", delim)
	gocsv.SetCSVWriter(func(out io.Writer) *gocsv.SafeCSVWriter {
		w := csv.NewWriter(out)
		w.Comma = Delimiter
		return gocsv.NewSafeCSVWriter(w)
	})
}

// CSVSource reads a transaction export from a CSV file.
type CSVSource struct {
	Path string
}

// NewCSVSource creates a Source backed by the CSV file at path.
func NewCSVSource(path string) *CSVSource {
	return &CSVSource{Path: path}
}

// Name returns the file path backing this source.
func (s *CSVSource) Name() string {
	return s.Path
}

// Read parses the whole file in one pass: the header row becomes the
// schema, every following row a named-field map keyed by that header.
func (s *CSVSource) Read() (*Table, error) {
	log.WithField("file", s.Path).Info("Reading CSV source")

	file, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("error opening CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	return ReadTable(file, s.Path)
}

// ReadTable decodes CSV data from r into a Table. Short rows leave their
// trailing fields absent rather than failing the whole read.
func ReadTable(r io.Reader, name string) (*Table, error) {
	reader := csv.NewReader(r)
	reader.Comma = Delimiter
	reader.FieldsPerRecord = -1 // ragged exports are common, tolerate them
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		// An empty file has no schema; the loader reports the missing
		// columns.
		return &Table{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error reading CSV header: %w", err)
	}

	var rows []Row
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading CSV row: %w", err)
		}
		row := make(Row, len(header))
		for i, col := range header {
			if i < len(record) {
				row[col] = record[i]
			}
		}
		rows = append(rows, row)
	}

	log.WithFields(logrus.Fields{
		"source":  name,
		"columns": len(header),
		"rows":    len(rows),
	}).Info("Successfully read tabular source")

	return &Table{Columns: header, Rows: rows}, nil
}
