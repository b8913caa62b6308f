// Package batch merges several statement files of one format into a
// single chronological transaction list.
package batch

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"msalas/statement-csv/internal/logging"
	"msalas/statement-csv/internal/models"
)

// DateRange is the period covered by a set of transactions.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// String returns the range as "YYYY-MM-DD_YYYY-MM-DD".
func (dr DateRange) String() string {
	if dr.Start.IsZero() || dr.End.IsZero() {
		return ""
	}
	return fmt.Sprintf("%s_%s",
		dr.Start.Format("2006-01-02"),
		dr.End.Format("2006-01-02"))
}

// Aggregator runs one parser over many input files and merges the
// results. Each run gets a uuid so interleaved log lines can be tied
// back to their invocation.
type Aggregator struct {
	logger logging.Logger
}

// NewAggregator creates a batch aggregator.
func NewAggregator(logger logging.Logger) *Aggregator {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Aggregator{logger: logger}
}

// Run parses every file and merges the transactions into one list sorted
// by date. A file that fails to parse is skipped with a warning; Run only
// errors when no file at all produced a result.
func (a *Aggregator) Run(files []string, p models.Parser) ([]models.Transaction, error) {
	runID := uuid.New().String()
	log := a.logger.WithField(logging.FieldRunID, runID)

	log.Info("Starting batch run",
		logging.Field{Key: logging.FieldCount, Value: len(files)})

	var merged []models.Transaction
	parsed := 0
	for _, file := range files {
		transactions, err := p.ParseFile(file)
		if err != nil {
			log.WithError(err).Warn("Skipping file",
				logging.Field{Key: logging.FieldFile, Value: filepath.Base(file)})
			continue
		}
		log.Debug("Parsed file",
			logging.Field{Key: logging.FieldFile, Value: filepath.Base(file)},
			logging.Field{Key: logging.FieldCount, Value: len(transactions)})
		merged = append(merged, transactions...)
		parsed++
	}

	if parsed == 0 {
		return nil, fmt.Errorf("no parseable input among %d file(s)", len(files))
	}

	models.SortByDate(merged)
	a.logDuplicates(log, merged)

	log.Info("Batch run complete",
		logging.Field{Key: "files_parsed", Value: parsed},
		logging.Field{Key: logging.FieldCount, Value: len(merged)})
	return merged, nil
}

// logDuplicates warns about transactions that look identical across the
// merged inputs. Statements for adjacent periods sometimes overlap, so
// nothing is removed; the user decides.
func (a *Aggregator) logDuplicates(log logging.Logger, transactions []models.Transaction) {
	seen := make(map[string]bool, len(transactions))
	duplicates := 0
	for i := range transactions {
		key := transactions[i].Key()
		if seen[key] {
			duplicates++
			log.Warn("Potential duplicate transaction",
				logging.Field{Key: "date", Value: transactions[i].Date.Format("2006-01-02")},
				logging.Field{Key: "description", Value: transactions[i].Description},
				logging.Field{Key: "amount", Value: transactions[i].Amount.StringFixed(2)})
			continue
		}
		seen[key] = true
	}
	if duplicates > 0 {
		log.Warn("Found potential duplicate transactions",
			logging.Field{Key: logging.FieldCount, Value: duplicates})
	}
}

// CalculateDateRange returns the period spanned by the transactions.
func CalculateDateRange(transactions []models.Transaction) DateRange {
	if len(transactions) == 0 {
		return DateRange{}
	}
	start := transactions[0].Date
	end := transactions[0].Date
	for _, tx := range transactions {
		if tx.Date.Before(start) {
			start = tx.Date
		}
		if tx.Date.After(end) {
			end = tx.Date
		}
	}
	return DateRange{Start: start, End: end}
}
