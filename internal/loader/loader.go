// Package loader turns a tabular record source into a raw record set,
// validating the source schema on the way in.
package loader

import (
	"strings"

	"fjacquet/csv-summary/internal/models"
	"fjacquet/csv-summary/internal/pipelineerror"
	"fjacquet/csv-summary/internal/tabular"

	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// SetLogger allows setting a configured logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// Required column names. Matching is by name and case-insensitive; exports
// disagree on header casing.
const (
	ColumnDate        = "Date"
	ColumnDescription = "Description"
	ColumnAmount      = "Amount"
)

// Load reads the source once and returns the record set unchanged apart
// from mapping rows onto Record fields. Values stay raw text at this stage.
//
// A source that cannot be read yields SourceUnavailableError. A schema
// missing any of the required columns yields SchemaError, checked once
// against the header before any row is touched.
func Load(src tabular.Source) (models.RecordSet, error) {
	table, err := src.Read()
	if err != nil {
		return models.RecordSet{}, &pipelineerror.SourceUnavailableError{
			Source: src.Name(),
			Err:    err,
		}
	}

	dateCol, descCol, amountCol, missing := resolveColumns(table.Columns)
	if len(missing) > 0 {
		return models.RecordSet{}, &pipelineerror.SchemaError{Missing: missing}
	}

	records := make([]models.Record, 0, len(table.Rows))
	for _, row := range table.Rows {
		rec := models.Record{
			RawDate:     row[dateCol],
			Description: row[descCol],
			RawAmount:   row[amountCol],
		}
		for col, val := range row {
			if col == dateCol || col == descCol || col == amountCol {
				continue
			}
			if rec.Extra == nil {
				rec.Extra = make(map[string]string)
			}
			rec.Extra[col] = val
		}
		records = append(records, rec)
	}

	log.WithFields(logrus.Fields{
		"source":  src.Name(),
		"records": len(records),
	}).Info("Loaded raw records")

	return models.RecordSet{Status: models.StatusRaw, Records: records}, nil
}

// resolveColumns maps the required logical columns onto the source's actual
// header names and collects the ones that are absent.
func resolveColumns(columns []string) (dateCol, descCol, amountCol string, missing []string) {
	find := func(want string) (string, bool) {
		for _, col := range columns {
			if strings.EqualFold(strings.TrimSpace(col), want) {
				return col, true
			}
		}
		return "", false
	}

	var ok bool
	if dateCol, ok = find(ColumnDate); !ok {
		missing = append(missing, ColumnDate)
	}
	if descCol, ok = find(ColumnDescription); !ok {
		missing = append(missing, ColumnDescription)
	}
	if amountCol, ok = find(ColumnAmount); !ok {
		missing = append(missing, ColumnAmount)
	}
	return dateCol, descCol, amountCol, missing
}
