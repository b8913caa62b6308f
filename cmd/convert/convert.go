// Package convert implements the single-file conversion command.
package convert

import (
	"strings"

	"github.com/spf13/cobra"

	cmdcommon "msalas/statement-csv/cmd/common"
	"msalas/statement-csv/cmd/root"
	"msalas/statement-csv/internal/factory"
	"msalas/statement-csv/internal/logging"
)

// Cmd represents the convert command.
var Cmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert one statement text file to CSV",
	Long: `Convert a single extracted statement text file to normalized CSV.

The format flag selects the statement layout. When omitted, each known
format is tried against the file and the first one that recognizes it wins.

Example:
  statement-csv convert -f chase -i chase-jan-2025.txt -o chase-jan-2025.csv`,
	Run: convertFunc,
}

func convertFunc(cmd *cobra.Command, args []string) {
	logger := root.GetLogrusAdapter()

	inputFile := root.SharedFlags.Input
	outputFile := root.SharedFlags.Output
	if inputFile == "" || outputFile == "" {
		logger.Fatal("Input and output files must be specified")
	}

	parserType, err := resolveFormat(inputFile)
	if err != nil {
		logger.Fatalf("Cannot determine statement format: %v", err)
	}
	logger.Info("Converting statement",
		logging.Field{Key: logging.FieldFormat, Value: string(parserType)},
		logging.Field{Key: logging.FieldInputFile, Value: inputFile})

	p, err := factory.GetParserWithLogger(parserType, logger)
	if err != nil {
		logger.Fatalf("Failed to create parser: %v", err)
	}

	cmdcommon.ProcessFile(p, inputFile, outputFile, root.SharedFlags.Validate, logger)
}

// resolveFormat returns the explicit format flag, or probes every known
// format against the input file.
func resolveFormat(inputFile string) (factory.ParserType, error) {
	if flag := strings.TrimSpace(root.SharedFlags.Format); flag != "" {
		return factory.ParseType(flag)
	}
	return factory.DetectType(inputFile, root.GetLogrusAdapter())
}
