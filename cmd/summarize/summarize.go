// Package summarize runs the full processing pipeline over one CSV export.
package summarize

import (
	"context"
	"os"

	"fjacquet/csv-summary/cmd/root"
	"fjacquet/csv-summary/internal/categorizer"
	"fjacquet/csv-summary/internal/models"
	"fjacquet/csv-summary/internal/pipeline"
	"fjacquet/csv-summary/internal/report"
	"fjacquet/csv-summary/internal/rules"
	"fjacquet/csv-summary/internal/tabular"

	"github.com/spf13/cobra"
)

var (
	input        string
	format       string
	output       string
	transactions string
	useAI        bool
)

// Cmd represents the summarize command
var Cmd = &cobra.Command{
	Use:   "summarize",
	Short: "Clean, categorize and summarize a transaction CSV export",
	Long: `Summarize reads a CSV export with Date, Description and Amount columns,
drops rows whose date or amount cannot be parsed, categorizes every
surviving transaction, and prints the overall and per-category summaries.`,
	Run: summarizeFunc,
}

func init() {
	Cmd.Flags().StringVarP(&input, "input", "i", "", "Input CSV file")
	Cmd.Flags().StringVarP(&format, "format", "f", report.FormatText, "Report format: text or json")
	Cmd.Flags().StringVarP(&output, "output", "o", "", "Write the per-category summary to a CSV file")
	Cmd.Flags().StringVarP(&transactions, "export-transactions", "e", "", "Write the categorized transactions to a CSV file")
	Cmd.Flags().BoolVar(&useAI, "ai", false, "Ask Gemini to categorize transactions the keyword rules missed")
	if err := Cmd.MarkFlagRequired("input"); err != nil {
		panic(err)
	}
}

func summarizeFunc(cmd *cobra.Command, args []string) {
	table, err := root.LoadTable()
	if err != nil {
		root.Log.Fatalf("Failed to load keyword rules: %v", err)
	}

	result, err := pipeline.Run(tabular.NewCSVSource(input), table)
	if err != nil {
		root.Log.Fatalf("Pipeline failed: %v", err)
	}

	if useAI || (root.Cfg != nil && root.Cfg.AI.Enabled) {
		applyAIFallback(cmd.Context(), result, table)
	}

	if err := report.Render(os.Stdout, result, format); err != nil {
		root.Log.Fatalf("Failed to render report: %v", err)
	}

	if output != "" {
		if err := tabular.WriteCategorySummaryCSV(result.PerCategory, output); err != nil {
			root.Log.Fatalf("Failed to write summary CSV: %v", err)
		}
		root.Log.WithField("file", output).Info("Wrote per-category summary")
	}
	if transactions != "" {
		if err := tabular.WriteRecordsCSV(result.Records.Records, transactions); err != nil {
			root.Log.Fatalf("Failed to write transactions CSV: %v", err)
		}
		root.Log.WithField("file", transactions).Info("Wrote categorized transactions")
	}
}

// applyAIFallback re-categorizes records the keyword pass left on the
// default category, then recomputes the summaries. Any failure degrades to
// keeping the default category.
func applyAIFallback(ctx context.Context, result *pipeline.Result, table rules.Table) {
	if ctx == nil {
		ctx = context.Background()
	}

	fallback, err := categorizer.NewGeminiFallback(ctx, root.Cfg.AI.APIKey, root.Cfg.AI.Model)
	if err != nil {
		root.Log.Warnf("AI fallback unavailable: %v", err)
		return
	}
	defer func() {
		if err := fallback.Close(); err != nil {
			root.Log.Warnf("Failed to close Gemini client: %v", err)
		}
	}()

	categories := table.Categories()
	changed := 0
	for i, rec := range result.Records.Records {
		if rec.Category != models.DefaultCategory {
			continue
		}
		category, err := fallback.Suggest(ctx, rec.Description, categories)
		if err != nil {
			root.Log.Warnf("AI fallback failed for %q: %v", rec.Description, err)
			continue
		}
		result.Records.Records[i].Category = category
		changed++
	}
	if changed == 0 {
		return
	}
	root.Log.WithField("records", changed).Info("AI fallback re-categorized records")

	if err := result.Recompute(); err != nil {
		root.Log.Warnf("Failed to recompute summaries after AI fallback: %v", err)
	}
}
