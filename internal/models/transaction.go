// Package models defines the transaction record and record-set types shared
// by every pipeline stage.
package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultCategory is assigned when no keyword rule matches a description.
const DefaultCategory = "Uncategorized"

// Record represents one bank transaction as it moves through the pipeline.
// Date and Amount start unset (zero time, NullDecimal with Valid=false) and
// are populated by the cleaner. Category is empty until the categorizer runs.
type Record struct {
	Date        time.Time
	Description string
	Amount      decimal.NullDecimal
	Category    string

	// Original field text, retained for diagnostics after coercion.
	RawDate   string
	RawAmount string

	// Extra holds columns beyond date/description/amount. They pass
	// through the pipeline unmodified.
	Extra map[string]string
}

// HasDate reports whether the date field has been parsed successfully.
func (r Record) HasDate() bool {
	return !r.Date.IsZero()
}

// HasAmount reports whether the amount field holds a valid decimal value.
func (r Record) HasAmount() bool {
	return r.Amount.Valid
}

// IsClean reports whether both coerced fields are set. Records failing this
// after cleaning are dropped by the row filter.
func (r Record) IsClean() bool {
	return r.HasDate() && r.HasAmount()
}

// IsInflow reports whether the amount is positive (money in).
func (r Record) IsInflow() bool {
	return r.Amount.Valid && r.Amount.Decimal.IsPositive()
}

// IsOutflow reports whether the amount is negative (money out).
func (r Record) IsOutflow() bool {
	return r.Amount.Valid && r.Amount.Decimal.IsNegative()
}

// NewAmount wraps a decimal value as a set amount.
func NewAmount(d decimal.Decimal) decimal.NullDecimal {
	return decimal.NullDecimal{Decimal: d, Valid: true}
}
