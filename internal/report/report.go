// Package report renders pipeline results for the presentation layer. The
// core hands over in-memory summaries; this package owns their text and
// JSON shapes.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"fjacquet/csv-summary/internal/pipeline"
	"fjacquet/csv-summary/internal/summary"
)

// Format identifiers accepted by Render.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// jsonOverall is the wire shape of the overall summary. Amounts render as
// fixed two-decimal strings.
type jsonOverall struct {
	TotalIncome   string `json:"total_income"`
	TotalExpenses string `json:"total_expenses"`
	NetAmount     string `json:"net_amount"`
	StartDate     string `json:"start_date"`
	EndDate       string `json:"end_date"`
	Count         int    `json:"count"`
}

type jsonCategoryRow struct {
	Category    string `json:"category"`
	TotalAmount string `json:"total_amount"`
	Count       int    `json:"count"`
}

type jsonReport struct {
	HasData     bool              `json:"has_data"`
	Overall     *jsonOverall      `json:"overall,omitempty"`
	PerCategory []jsonCategoryRow `json:"per_category"`
	DroppedRows int               `json:"dropped_rows"`
}

// Render writes the result to w in the requested format.
func Render(w io.Writer, result *pipeline.Result, format string) error {
	switch format {
	case FormatJSON:
		return renderJSON(w, result)
	case FormatText:
		return renderText(w, result)
	default:
		return fmt.Errorf("unsupported report format: %s", format)
	}
}

func renderJSON(w io.Writer, result *pipeline.Result) error {
	out := jsonReport{
		HasData:     result.Overall.HasData(),
		PerCategory: make([]jsonCategoryRow, 0, len(result.PerCategory)),
		DroppedRows: result.Dropped,
	}
	if result.Overall.HasData() {
		out.Overall = &jsonOverall{
			TotalIncome:   result.Overall.TotalIncome.StringFixed(2),
			TotalExpenses: result.Overall.TotalExpenses.StringFixed(2),
			NetAmount:     result.Overall.NetAmount.StringFixed(2),
			StartDate:     result.Overall.Period.Start.Format("2006-01-02"),
			EndDate:       result.Overall.Period.End.Format("2006-01-02"),
			Count:         result.Overall.Count,
		}
	}
	for _, row := range result.PerCategory {
		out.PerCategory = append(out.PerCategory, jsonCategoryRow{
			Category:    row.Category,
			TotalAmount: row.TotalAmount.StringFixed(2),
			Count:       row.Count,
		})
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON report: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func renderText(w io.Writer, result *pipeline.Result) error {
	if result.Dropped > 0 {
		fmt.Fprintf(w, "Dropped %d unparseable row(s)\n\n", result.Dropped)
	}

	if !result.Overall.HasData() {
		_, err := fmt.Fprintln(w, "No records to summarize.")
		return err
	}

	o := result.Overall
	fmt.Fprintln(w, "Overall Summary")
	fmt.Fprintf(w, "  Period:         %s to %s\n",
		o.Period.Start.Format("2006-01-02"), o.Period.End.Format("2006-01-02"))
	fmt.Fprintf(w, "  Records:        %d\n", o.Count)
	fmt.Fprintf(w, "  Total income:   %s\n", o.TotalIncome.StringFixed(2))
	fmt.Fprintf(w, "  Total expenses: %s\n", o.TotalExpenses.StringFixed(2))
	fmt.Fprintf(w, "  Net amount:     %s\n\n", o.NetAmount.StringFixed(2))

	fmt.Fprintln(w, "Per-Category Summary")
	return renderCategoryTable(w, result.PerCategory)
}

func renderCategoryTable(w io.Writer, rows []summary.CategoryRow) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "  Category\tTotal\tCount")
	for _, row := range rows {
		fmt.Fprintf(tw, "  %s\t%s\t%d\n", row.Category, row.TotalAmount.StringFixed(2), row.Count)
	}
	return tw.Flush()
}
