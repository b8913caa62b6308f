// Package root contains the root command for the application.
package root

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"msalas/statement-csv/internal/common"
	"msalas/statement-csv/internal/config"
	"msalas/statement-csv/internal/logging"
)

// CommonFlags holds the flags shared by the file-processing commands.
type CommonFlags struct {
	Input    string
	Output   string
	Format   string
	Validate bool
}

var (
	// Log is the shared logrus instance for commands.
	Log = logrus.New()

	// SharedFlags holds the persistent flag values.
	SharedFlags = CommonFlags{}

	// Cmd is the root command.
	Cmd = &cobra.Command{
		Use:   "statement-csv",
		Short: "A CLI tool to convert extracted bank statement text to CSV and categorize transactions.",
		Long: `statement-csv converts text extracted from bank statements (Banamex,
Chase, Wells Fargo, Citi) into a normalized CSV of dated debit and credit
records. It can also categorize transactions and summarize spending.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to statement-csv!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()
			Log = config.ConfigureLogging()

			common.SetLogger(GetLogrusAdapter())

			if delim := os.Getenv("CSV_DELIMITER"); delim != "" {
				Log.WithField("delimiter", delim).Debug("Setting CSV delimiter from environment")
				common.SetDelimiter([]rune(delim)[0])
			}
		},
	}
)

// GetLogrusAdapter wraps the shared logger in the logging.Logger interface.
func GetLogrusAdapter() logging.Logger {
	return logging.NewLogrusAdapterFromLogger(Log)
}

// Init registers the persistent flags on the root command.
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input file")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output file")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Format, "format", "f", "", "Statement format (banamex, chase, citi, wellsfargo)")
	Cmd.PersistentFlags().BoolVarP(&SharedFlags.Validate, "validate", "v", false, "Validate file format before conversion")
}
