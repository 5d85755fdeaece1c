// Package cleaner normalizes raw record fields: dates and amounts are
// coerced to typed values, descriptions are trimmed, and records that stay
// unparseable are dropped. Dropping is a diagnostic, never an error.
package cleaner

import (
	"strings"

	"fjacquet/csv-summary/internal/currencyutils"
	"fjacquet/csv-summary/internal/dateutils"
	"fjacquet/csv-summary/internal/models"
	"fjacquet/csv-summary/internal/pipelineerror"

	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// SetLogger allows setting a configured logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// Clean coerces every record's date and amount, trims its description, then
// drops records still missing a date or amount. Survivors keep their
// relative order. The returned int is the dropped-row count.
//
// Clean is idempotent: records that already carry a valid date and amount
// pass through untouched, so re-running on a cleaned set drops nothing and
// changes no values. The stage guard therefore accepts both raw and cleaned
// input; only a categorized set is a sequencing error.
func Clean(set models.RecordSet) (models.RecordSet, int, error) {
	if set.Status == models.StatusCategorized {
		return models.RecordSet{}, 0, &pipelineerror.StateError{
			Stage:    "clean",
			Got:      set.Status.String(),
			Expected: models.StatusRaw.String(),
		}
	}

	kept := make([]models.Record, 0, len(set.Records))
	dropped := 0
	for i, rec := range set.Records {
		cleaned := cleanRecord(rec)
		if !cleaned.IsClean() {
			dropped++
			log.WithFields(logrus.Fields{
				"row":    i,
				"date":   cleaned.RawDate,
				"amount": cleaned.RawAmount,
			}).Debug("Dropping unparseable record")
			continue
		}
		kept = append(kept, cleaned)
	}

	if dropped > 0 {
		log.WithFields(logrus.Fields{
			"dropped":   dropped,
			"surviving": len(kept),
		}).Warn("Dropped records with unparseable date or amount")
	}

	return models.RecordSet{Status: models.StatusCleaned, Records: kept}, dropped, nil
}

// cleanRecord coerces one record independently of every other record.
func cleanRecord(rec models.Record) models.Record {
	// Already-coerced fields stay as they are; this is what makes Clean
	// idempotent.
	if !rec.HasDate() {
		if date, err := dateutils.ParseDate(rec.RawDate); err == nil {
			rec.Date = date
		}
	}

	if !rec.HasAmount() {
		if amount, err := currencyutils.ParseAmount(rec.RawAmount); err == nil {
			rec.Amount = models.NewAmount(amount)
		}
	}

	rec.Description = strings.TrimSpace(rec.Description)
	return rec
}
