// Package parser provides the shared parser plumbing: the BaseParser
// embedded by every format parser and the FileParser that drives the
// extract-classify-assemble pipeline for grammar-based layouts.
package parser

import (
	"msalas/statement-csv/internal/common"
	"msalas/statement-csv/internal/logging"
	"msalas/statement-csv/internal/models"
)

// BaseParser provides common functionality for all parser implementations.
//
// Parsers embed BaseParser to inherit logger handling and CSV writing:
//
//	type MyParser struct {
//		BaseParser
//		// parser-specific fields
//	}
type BaseParser struct {
	logger logging.Logger
}

// NewBaseParser creates a BaseParser with the provided logger. A nil
// logger falls back to a default text logger.
func NewBaseParser(logger logging.Logger) BaseParser {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return BaseParser{logger: logger}
}

// SetLogger replaces the parser's logger. Nil loggers are ignored.
func (b *BaseParser) SetLogger(logger logging.Logger) {
	if logger != nil {
		b.logger = logger
	}
}

// GetLogger returns the current logger instance.
func (b *BaseParser) GetLogger() logging.Logger {
	return b.logger
}

// WriteToCSV writes transactions through the common CSV writer so all
// parsers produce the same output format.
func (b *BaseParser) WriteToCSV(transactions []models.Transaction, csvFile string) error {
	b.logger.Info("Writing transactions to CSV",
		logging.Field{Key: logging.FieldOutputFile, Value: csvFile},
		logging.Field{Key: logging.FieldCount, Value: len(transactions)})

	return common.WriteTransactionsToCSV(transactions, csvFile)
}
