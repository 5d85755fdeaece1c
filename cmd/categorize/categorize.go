// Package categorize handles one-off description categorization, mainly for
// debugging keyword rules.
package categorize

import (
	"fmt"

	"fjacquet/csv-summary/cmd/root"
	"fjacquet/csv-summary/internal/categorizer"

	"github.com/spf13/cobra"
)

var description string

// Cmd represents the categorize command
var Cmd = &cobra.Command{
	Use:   "categorize",
	Short: "Categorize a single transaction description",
	Long: `Categorize runs the keyword matching over one description and prints the
category it resolves to, so rule files can be checked without a full run.`,
	Run: categorizeFunc,
}

func init() {
	Cmd.Flags().StringVarP(&description, "description", "d", "", "Transaction description to categorize")
	if err := Cmd.MarkFlagRequired("description"); err != nil {
		panic(err)
	}
}

func categorizeFunc(cmd *cobra.Command, args []string) {
	table, err := root.LoadTable()
	if err != nil {
		root.Log.Fatalf("Failed to load keyword rules: %v", err)
	}

	category := categorizer.Match(description, table)
	fmt.Println(category)
}
