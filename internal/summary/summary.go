// Package summary computes the aggregate views over a processed record set:
// the overall summary and the per-category breakdown. Summaries are derived
// values, recomputed on every call; nothing here mutates the record set.
package summary

import (
	"fmt"
	"sort"
	"time"

	"fjacquet/csv-summary/internal/models"
	"fjacquet/csv-summary/internal/pipelineerror"

	"github.com/shopspring/decimal"
)

// DateRange represents a date range with start and end dates.
type DateRange struct {
	Start time.Time `json:"start_date"`
	End   time.Time `json:"end_date"`
}

// Extend grows the range to include the given date. Zero dates are ignored.
func (dr DateRange) Extend(date time.Time) DateRange {
	if date.IsZero() {
		return dr
	}
	if dr.Start.IsZero() || date.Before(dr.Start) {
		dr.Start = date
	}
	if dr.End.IsZero() || date.After(dr.End) {
		dr.End = date
	}
	return dr
}

// String returns the date range in the format "YYYY-MM-DD_YYYY-MM-DD".
func (dr DateRange) String() string {
	if dr.Start.IsZero() || dr.End.IsZero() {
		return ""
	}
	return fmt.Sprintf("%s_%s",
		dr.Start.Format("2006-01-02"),
		dr.End.Format("2006-01-02"))
}

// Overall is the whole-set summary. Monetary totals are rounded to two
// decimal places when the summary is built; accumulation is exact.
type Overall struct {
	TotalIncome   decimal.Decimal `json:"total_income"`
	TotalExpenses decimal.Decimal `json:"total_expenses"`
	NetAmount     decimal.Decimal `json:"net_amount"`
	Period        DateRange       `json:"period"`
	Count         int             `json:"count"`
}

// HasData reports whether the summary describes any records. An empty
// record set yields a valid summary with HasData false, not an error;
// callers must branch on this before rendering totals.
func (o Overall) HasData() bool {
	return o.Count > 0
}

// CategoryRow is one line of the per-category breakdown.
type CategoryRow struct {
	Category    string          `json:"category"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Count       int             `json:"count"`
}

// Summarize computes the overall summary over cleaned or categorized
// records: total income (amounts > 0), total expenses (amounts < 0, sign
// retained), net amount, date range and record count.
func Summarize(set models.RecordSet) (Overall, error) {
	if set.Status == models.StatusRaw {
		return Overall{}, &pipelineerror.StateError{
			Stage:    "summarize",
			Got:      set.Status.String(),
			Expected: models.StatusCleaned.String(),
		}
	}

	var income, expenses, net decimal.Decimal
	var period DateRange
	for _, r := range set.Records {
		amount := r.Amount.Decimal
		net = net.Add(amount)
		if amount.IsPositive() {
			income = income.Add(amount)
		} else if amount.IsNegative() {
			expenses = expenses.Add(amount)
		}
		period = period.Extend(r.Date)
	}

	return Overall{
		TotalIncome:   income.Round(2),
		TotalExpenses: expenses.Round(2),
		NetAmount:     net.Round(2),
		Period:        period,
		Count:         set.Len(),
	}, nil
}

// ByCategory groups categorized records by category and returns one row per
// group with the amount sum and record count. Rows are sorted ascending by
// total amount, so the most expense-heavy categories come first; ties keep
// first-encountered category order.
func ByCategory(set models.RecordSet) ([]CategoryRow, error) {
	if set.Status != models.StatusCategorized {
		return nil, &pipelineerror.StateError{
			Stage:    "per-category summary",
			Got:      set.Status.String(),
			Expected: models.StatusCategorized.String(),
		}
	}

	totals := make(map[string]decimal.Decimal)
	counts := make(map[string]int)
	var order []string
	for _, r := range set.Records {
		if _, seen := counts[r.Category]; !seen {
			order = append(order, r.Category)
		}
		totals[r.Category] = totals[r.Category].Add(r.Amount.Decimal)
		counts[r.Category]++
	}

	rows := make([]CategoryRow, 0, len(order))
	for _, category := range order {
		rows = append(rows, CategoryRow{
			Category:    category,
			TotalAmount: totals[category].Round(2),
			Count:       counts[category],
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].TotalAmount.LessThan(rows[j].TotalAmount)
	})

	return rows, nil
}
