// Package categorizer assigns a spending category to every cleaned record
// by matching its description against a keyword table. Matching is a pure
// function of the description and the table; the optional AI fallback lives
// alongside it but never participates in Categorize itself.
package categorizer

import (
	"fjacquet/csv-summary/internal/models"
	"fjacquet/csv-summary/internal/pipelineerror"
	"fjacquet/csv-summary/internal/rules"

	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// SetLogger allows setting a configured logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// Match resolves a description to a category name. The first keyword that
// occurs as a whole word or phrase wins, scanning categories in table order
// and keywords in declared order; cross-category ties are broken purely by
// table order. Descriptions matching nothing get the default category, so
// Match is total.
func Match(description string, table rules.Table) string {
	if category, ok := table.Match(description); ok {
		return category
	}
	return models.DefaultCategory
}

// Categorize assigns exactly one category to every record in a cleaned set.
// No other field is touched and no record is added, dropped or reordered.
//
// A set that has not been cleaned is a sequencing error: amounts are not
// guaranteed numeric yet, so categorizing it would let invalid records leak
// into the summaries.
func Categorize(set models.RecordSet, table rules.Table) (models.RecordSet, error) {
	if set.Status != models.StatusCleaned {
		return models.RecordSet{}, &pipelineerror.StateError{
			Stage:    "categorize",
			Got:      set.Status.String(),
			Expected: models.StatusCleaned.String(),
		}
	}
	for _, rec := range set.Records {
		// Belt over the status tag: the precondition is really about
		// amounts being valid numbers.
		if !rec.HasAmount() {
			return models.RecordSet{}, &pipelineerror.StateError{
				Stage:    "categorize",
				Got:      "records with non-numeric amounts",
				Expected: models.StatusCleaned.String(),
			}
		}
	}

	records := make([]models.Record, len(set.Records))
	copy(records, set.Records)
	for i := range records {
		records[i].Category = Match(records[i].Description, table)
	}

	log.WithField("records", len(records)).Debug("Categorized record set")
	return models.RecordSet{Status: models.StatusCategorized, Records: records}, nil
}
