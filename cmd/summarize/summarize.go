// Package summarize implements the categorize-and-summarize command.
package summarize

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"msalas/statement-csv/cmd/root"
	"msalas/statement-csv/internal/categorizer"
	"msalas/statement-csv/internal/common"
	"msalas/statement-csv/internal/config"
	"msalas/statement-csv/internal/corrections"
	"msalas/statement-csv/internal/logging"
	"msalas/statement-csv/internal/report"
	"msalas/statement-csv/internal/store"
)

// Cmd represents the summarize command.
var Cmd = &cobra.Command{
	Use:   "summarize",
	Short: "Categorize a converted CSV and print per-category totals",
	Long: `Read a CSV produced by convert or batch, assign a category to every
transaction, and print a per-category spending summary.

Categories come from learned corrections first, then keyword rules from
the categories YAML file, then the Gemini API when ai.enabled is set.
With -o the categorized transactions are also written back to CSV.

Example:
  statement-csv summarize -i chase-jan-2025.csv -o categorized.csv`,
	Run: summarizeFunc,
}

func summarizeFunc(cmd *cobra.Command, args []string) {
	logger := root.GetLogrusAdapter()

	inputFile := root.SharedFlags.Input
	if inputFile == "" {
		logger.Fatal("Input file must be specified")
	}

	cfg, err := config.InitializeConfig()
	if err != nil {
		logger.Fatalf("Failed to load configuration: %v", err)
	}

	transactions, err := common.ReadTransactionsFromCSV(inputFile)
	if err != nil {
		logger.Fatalf("Failed to read transactions: %v", err)
	}

	c := buildCategorizer(cfg, logger)
	c.CategorizeAll(context.Background(), transactions)

	generator := report.NewGenerator(logger)
	rows := generator.Summarize(transactions)
	if err := generator.Render(os.Stdout, rows); err != nil {
		logger.Fatalf("Failed to render summary: %v", err)
	}

	if outputFile := root.SharedFlags.Output; outputFile != "" {
		if err := common.WriteTransactionsToCSV(transactions, outputFile); err != nil {
			logger.Fatalf("Failed to write categorized CSV: %v", err)
		}
	}
}

// buildCategorizer assembles the strategy chain from the configuration.
// A failing Gemini setup degrades to the local strategies only.
func buildCategorizer(cfg *config.Config, logger logging.Logger) *categorizer.Categorizer {
	correctionsStore := corrections.NewStore(cfg.Corrections.File, logger)
	learned, err := correctionsStore.Load()
	if err != nil {
		logger.WithError(err).Warn("Failed to load corrections, continuing without them")
	}

	categoryStore := store.NewCategoryStore(cfg.Categories.File, logger)
	keywordStrategy := categorizer.NewKeywordStrategy(categoryStore, logger)

	strategies := []categorizer.Strategy{
		categorizer.NewCorrectionsStrategy(learned, logger),
		keywordStrategy,
	}

	if cfg.AI.Enabled {
		gemini, err := categorizer.NewGeminiStrategy(cfg, keywordStrategy.Categories(), logger)
		if err != nil {
			logger.WithError(err).Warn("AI categorization unavailable")
		} else {
			strategies = append(strategies, gemini)
		}
	}

	return categorizer.New(strategies, cfg.AI.FallbackCategory, logger)
}
