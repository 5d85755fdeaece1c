package tabular

import (
	"fmt"
	"os"
	"path/filepath"

	"fjacquet/csv-summary/internal/models"
	"fjacquet/csv-summary/internal/summary"

	"github.com/gocarina/gocsv"
	"github.com/sirupsen/logrus"
)

// recordRow maps a processed record onto CSV output columns.
type recordRow struct {
	Date        string `csv:"Date"`
	Description string `csv:"Description"`
	Amount      string `csv:"Amount"`
	Category    string `csv:"Category"`
}

// categoryRow maps one per-category summary line onto CSV output columns.
type categoryRow struct {
	Category    string `csv:"Category"`
	TotalAmount string `csv:"Total Amount"`
	Count       int    `csv:"Count"`
}

// WriteRecordsCSV writes cleaned or categorized records to a CSV file in a
// standardized format.
func WriteRecordsCSV(records []models.Record, csvFile string) error {
	rows := make([]recordRow, len(records))
	for i, r := range records {
		rows[i] = recordRow{
			Date:        r.Date.Format("2006-01-02"),
			Description: r.Description,
			Amount:      r.Amount.Decimal.StringFixed(2),
			Category:    r.Category,
		}
	}
	return writeCSV(&rows, csvFile, len(rows))
}

// WriteCategorySummaryCSV writes the per-category breakdown to a CSV file,
// preserving the summary's row order.
func WriteCategorySummaryCSV(rows []summary.CategoryRow, csvFile string) error {
	out := make([]categoryRow, len(rows))
	for i, row := range rows {
		out[i] = categoryRow{
			Category:    row.Category,
			TotalAmount: row.TotalAmount.StringFixed(2),
			Count:       row.Count,
		}
	}
	return writeCSV(&out, csvFile, len(out))
}

func writeCSV(rows interface{}, csvFile string, count int) error {
	log.WithFields(logrus.Fields{
		"file":  csvFile,
		"count": count,
	}).Info("Writing CSV file")

	dir := filepath.Dir(csvFile)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}

	file, err := os.Create(csvFile)
	if err != nil {
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	if err := gocsv.MarshalFile(rows, file); err != nil {
		return fmt.Errorf("error writing CSV file: %w", err)
	}
	return nil
}
