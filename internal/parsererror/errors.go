// Package parsererror defines the error types shared by the format parsers.
// Callers can distinguish a missing source file from a structurally broken
// one with errors.As.
package parsererror

import "fmt"

// SourceNotFoundError indicates the statement file does not exist or could
// not be opened. Batch processing treats this as skippable.
type SourceNotFoundError struct {
	FilePath string
	Err      error
}

func (e *SourceNotFoundError) Error() string {
	return fmt.Sprintf("statement file not found: %s: %v", e.FilePath, e.Err)
}

func (e *SourceNotFoundError) Unwrap() error {
	return e.Err
}

// ParseError indicates a line or token could not be interpreted even though
// the grammar classified it as part of a transaction.
type ParseError struct {
	Format string
	Field  string
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: failed to parse %s='%s': %v",
		e.Format, e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// NoTransactionsError indicates a statement was read successfully but
// yielded zero transactions, for formats where that is considered a failure.
type NoTransactionsError struct {
	FilePath string
	Format   string
}

func (e *NoTransactionsError) Error() string {
	return fmt.Sprintf("%s: no transactions found in %s", e.Format, e.FilePath)
}

// InvalidFormatError indicates the input does not look like the statement
// layout the selected parser expects.
type InvalidFormatError struct {
	FilePath       string
	ExpectedFormat string
	Msg            string
}

func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("invalid format in file '%s': %s. Expected: %s",
		e.FilePath, e.Msg, e.ExpectedFormat)
}

// CategorizationError indicates a categorization strategy failed for a
// transaction description.
type CategorizationError struct {
	Description string
	Strategy    string
	Err         error
}

func (e *CategorizationError) Error() string {
	return fmt.Sprintf("categorization failed for %s using %s: %v",
		e.Description, e.Strategy, e.Err)
}

func (e *CategorizationError) Unwrap() error {
	return e.Err
}
