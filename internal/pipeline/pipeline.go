// Package pipeline chains the four processing stages over one source:
// load -> clean -> categorize -> summarize. Control flow is strictly
// linear and fully in memory; each stage consumes the previous stage's
// record set.
package pipeline

import (
	"fjacquet/csv-summary/internal/categorizer"
	"fjacquet/csv-summary/internal/cleaner"
	"fjacquet/csv-summary/internal/loader"
	"fjacquet/csv-summary/internal/models"
	"fjacquet/csv-summary/internal/rules"
	"fjacquet/csv-summary/internal/summary"
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

// Result carries everything one run produces: the categorized records, both
// summaries, and the cleaner's dropped-row diagnostic.
type Result struct {
	Records     models.RecordSet
	Overall     summary.Overall
	PerCategory []summary.CategoryRow
	Dropped     int
}

// Recompute refreshes both summaries from the current records, for callers
// that adjust categories after the pipeline ran.
func (r *Result) Recompute() error {
	overall, err := summary.Summarize(r.Records)
	if err != nil {
		return err
	}
	perCategory, err := summary.ByCategory(r.Records)
	if err != nil {
		return err
	}
	r.Overall = overall
	r.PerCategory = perCategory
	return nil
}

// Run executes the whole pipeline over the given source with the given
// keyword table. Fatal errors (unreadable source, missing columns, stage
// sequencing bugs) abort before any summary is produced; unparseable rows
// only reduce the surviving set.
func Run(src tabular.Source, table rules.Table) (*Result, error) {
	raw, err := loader.Load(src)
	if err != nil {
		return nil, err
	}

	cleaned, dropped, err := cleaner.Clean(raw)
	if err != nil {
		return nil, err
	}
	log.WithFields(logrus.Fields{
		"loaded":    raw.Len(),
		"surviving": cleaned.Len(),
		"dropped":   dropped,
	}).Info("Cleaned record set")

	categorized, err := categorizer.Categorize(cleaned, table)
	if err != nil {
		return nil, err
	}

	overall, err := summary.Summarize(categorized)
	if err != nil {
		return nil, err
	}
	perCategory, err := summary.ByCategory(categorized)
	if err != nil {
		return nil, err
	}

	return &Result{
		Records:     categorized,
		Overall:     overall,
		PerCategory: perCategory,
		Dropped:     dropped,
	}, nil
}
