package parser

import (
	"os"
	"path/filepath"
	"time"

	"msalas/statement-csv/internal/dateutils"
	"msalas/statement-csv/internal/engine"
	"msalas/statement-csv/internal/logging"
	"msalas/statement-csv/internal/models"
	"msalas/statement-csv/internal/parsererror"
	"msalas/statement-csv/internal/textdoc"
)

// FileParser runs the grammar engine against a statement file. Every
// format parser wraps one of these around its grammar; the differences
// between institutions live entirely in the grammar.
type FileParser struct {
	BaseParser

	grammar   *engine.Grammar
	extractor textdoc.Extractor

	defaultYear  int
	defaultMonth time.Month
}

// NewFileParser creates a FileParser for the given grammar. The extractor
// is chosen per file from the extension; tests override it with
// NewFileParserWithExtractor.
func NewFileParser(grammar *engine.Grammar, logger logging.Logger) *FileParser {
	return NewFileParserWithExtractor(grammar, logger, nil)
}

// NewFileParserWithExtractor creates a FileParser with a fixed extractor.
// A nil extractor means per-file selection by extension.
func NewFileParserWithExtractor(grammar *engine.Grammar, logger logging.Logger, extractor textdoc.Extractor) *FileParser {
	return &FileParser{
		BaseParser:   NewBaseParser(logger),
		grammar:      grammar,
		extractor:    extractor,
		defaultYear:  2025,
		defaultMonth: time.January,
	}
}

// SetPeriodDefaults sets the statement period used when the file name
// carries no "-<month>-<year>" reference.
func (p *FileParser) SetPeriodDefaults(year int, month time.Month) {
	if year > 0 {
		p.defaultYear = year
	}
	if month >= time.January && month <= time.December {
		p.defaultMonth = month
	}
}

// ParseFile extracts the statement text and assembles its transactions.
// The statement period comes from the file name, so a December entry on
// a "citi-jan-2025" statement lands in 2024.
func (p *FileParser) ParseFile(filePath string) ([]models.Transaction, error) {
	if _, err := os.Stat(filePath); err != nil {
		return nil, &parsererror.SourceNotFoundError{FilePath: filePath, Err: err}
	}

	doc, err := p.extract(filePath)
	if err != nil {
		return nil, err
	}

	period := dateutils.ParseStatementRef(filepath.Base(filePath), p.defaultYear, p.defaultMonth)
	p.GetLogger().Info("Parsing statement",
		logging.Field{Key: logging.FieldFile, Value: filePath},
		logging.Field{Key: logging.FieldFormat, Value: p.grammar.Format},
		logging.Field{Key: logging.FieldPage, Value: doc.PageCount()})

	transactions := engine.Run(doc, p.grammar, period, p.GetLogger())
	if len(transactions) == 0 {
		if p.grammar.ErrOnEmpty {
			return nil, &parsererror.NoTransactionsError{FilePath: filePath, Format: p.grammar.Format}
		}
		p.GetLogger().Warn("No transactions found in statement",
			logging.Field{Key: logging.FieldFile, Value: filePath},
			logging.Field{Key: logging.FieldFormat, Value: p.grammar.Format})
	}

	p.GetLogger().Info("Statement parsed",
		logging.Field{Key: logging.FieldFile, Value: filePath},
		logging.Field{Key: logging.FieldCount, Value: len(transactions)})
	return transactions, nil
}

// ValidateFormat reports whether any line of the file matches one of the
// grammar's section headers. Section headers are the most stable
// fingerprint a layout has.
func (p *FileParser) ValidateFormat(filePath string) (bool, error) {
	if _, err := os.Stat(filePath); err != nil {
		return false, &parsererror.SourceNotFoundError{FilePath: filePath, Err: err}
	}

	doc, err := p.extract(filePath)
	if err != nil {
		return false, err
	}

	for _, line := range doc.Lines() {
		for _, s := range p.grammar.SectionStarts {
			if s.Matcher.Match(line.Text) {
				return true, nil
			}
		}
	}
	return false, nil
}

// ConvertToCSV parses inputFile and writes the transactions to outputFile.
func (p *FileParser) ConvertToCSV(inputFile, outputFile string) error {
	transactions, err := p.ParseFile(inputFile)
	if err != nil {
		return err
	}
	return p.WriteToCSV(transactions, outputFile)
}

func (p *FileParser) extract(filePath string) (*textdoc.Document, error) {
	extractor := p.extractor
	if extractor == nil {
		extractor = textdoc.ForPath(filePath)
	}
	return extractor.Extract(filePath)
}
