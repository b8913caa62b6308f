// Package batch implements the multi-file merge command.
package batch

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"msalas/statement-csv/cmd/root"
	"msalas/statement-csv/internal/batch"
	"msalas/statement-csv/internal/common"
	"msalas/statement-csv/internal/factory"
	"msalas/statement-csv/internal/logging"
)

// Cmd represents the batch command.
var Cmd = &cobra.Command{
	Use:   "batch [files...]",
	Short: "Merge several statements of one format into a single CSV",
	Long: `Merge several statement text files of the same format into one
chronological CSV. Input files are the positional arguments; alternatively
-i names a directory and every .txt file in it is processed.

Files that fail to parse are skipped with a warning. The command fails
only when none of the inputs could be parsed.

Example:
  statement-csv batch -f chase -o year.csv chase-jan-2025.txt chase-feb-2025.txt`,
	Run: batchFunc,
}

func batchFunc(cmd *cobra.Command, args []string) {
	logger := root.GetLogrusAdapter()

	files, err := collectInputs(args)
	if err != nil {
		logger.Fatalf("Cannot collect input files: %v", err)
	}
	if len(files) == 0 {
		logger.Fatal("No input files given; pass files as arguments or a directory with -i")
	}

	parserType, err := factory.ParseType(root.SharedFlags.Format)
	if err != nil {
		logger.Fatalf("Batch requires an explicit format: %v", err)
	}
	p, err := factory.GetParserWithLogger(parserType, logger)
	if err != nil {
		logger.Fatalf("Failed to create parser: %v", err)
	}

	aggregator := batch.NewAggregator(logger)
	merged, err := aggregator.Run(files, p)
	if err != nil {
		logger.Fatalf("Batch processing failed: %v", err)
	}

	outputFile := root.SharedFlags.Output
	if outputFile == "" {
		dateRange := batch.CalculateDateRange(merged)
		outputFile = fmt.Sprintf("%s_%s.csv", parserType, dateRange)
	}
	if err := common.WriteTransactionsToCSV(merged, outputFile); err != nil {
		logger.Fatalf("Failed to write merged CSV: %v", err)
	}

	logger.Info("Batch processing completed",
		logging.Field{Key: logging.FieldCount, Value: len(merged)},
		logging.Field{Key: logging.FieldOutputFile, Value: outputFile})
}

// collectInputs returns the positional file arguments, or the .txt files
// of the -i directory when no arguments were given.
func collectInputs(args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}

	inputDir := root.SharedFlags.Input
	if inputDir == "" {
		return nil, nil
	}
	entries, err := os.ReadDir(inputDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read input directory: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.HasSuffix(strings.ToLower(entry.Name()), ".txt") {
			files = append(files, filepath.Join(inputDir, entry.Name()))
		}
	}
	return files, nil
}
