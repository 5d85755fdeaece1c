// Package root contains the root command for the application
package root

import (
	"fjacquet/csv-summary/internal/categorizer"
	"fjacquet/csv-summary/internal/cleaner"
	"fjacquet/csv-summary/internal/config"
	"fjacquet/csv-summary/internal/loader"
	"fjacquet/csv-summary/internal/pipeline"
	"fjacquet/csv-summary/internal/rules"
	"fjacquet/csv-summary/internal/store"
	"fjacquet/csv-summary/internal/tabular"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// Cfg holds the resolved configuration for all commands
	Cfg *config.Config

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "csv-summary",
		Short: "A CLI tool to clean, categorize and summarize bank transaction CSV exports.",
		Long: `csv-summary ingests a bank transaction CSV export, normalizes dates and
amounts, assigns each transaction a spending category from keyword rules,
and prints overall and per-category summaries.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to csv-summary!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()

			cfg, err := config.InitializeConfig()
			if err != nil {
				Log.Fatalf("Failed to load configuration: %v", err)
			}
			Cfg = cfg

			Log = config.ConfigureLogging(cfg.Log.Level, cfg.Log.Format)

			// Hand the configured logger to every package that logs.
			tabular.SetLogger(Log)
			loader.SetLogger(Log)
			cleaner.SetLogger(Log)
			categorizer.SetLogger(Log)
			pipeline.SetLogger(Log)
			store.SetLogger(Log)

			if cfg.CSV.Delimiter != "" {
				tabular.SetDelimiter([]rune(cfg.CSV.Delimiter)[0])
			}
		},
	}

	// RulesFile is the --rules flag shared by all commands
	RulesFile string
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&RulesFile, "rules", "r", "", "Keyword rule file (categories.yaml)")
}

// LoadTable resolves the keyword table from --rules, the configured rule
// file, or the built-in defaults.
func LoadTable() (rules.Table, error) {
	rulesFile := RulesFile
	if rulesFile == "" && Cfg != nil {
		rulesFile = Cfg.Rules.File
	}
	return store.NewRuleStore(rulesFile).LoadTable()
}
