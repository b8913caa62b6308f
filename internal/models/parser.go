package models

import (
	"msalas/statement-csv/internal/logging"
)

// Parser defines the interface every statement parser implements.
type Parser interface {
	// ParseFile reads the statement at filePath and returns its
	// transactions, sorted by date.
	ParseFile(filePath string) ([]Transaction, error)

	// ValidateFormat reports whether the file looks like a statement in
	// this parser's layout.
	ValidateFormat(filePath string) (bool, error)

	// ConvertToCSV parses inputFile and writes the result to outputFile.
	ConvertToCSV(inputFile, outputFile string) error

	// WriteToCSV writes already-parsed transactions to csvFile.
	WriteToCSV(transactions []Transaction, csvFile string) error

	SetLogger(logger logging.Logger)
}
