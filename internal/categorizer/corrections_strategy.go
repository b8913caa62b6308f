package categorizer

import (
	"context"

	"msalas/statement-csv/internal/corrections"
	"msalas/statement-csv/internal/logging"
	"msalas/statement-csv/internal/models"
)

// CorrectionsStrategy matches transactions against user-confirmed
// corrections. A correction applies when its description appears inside
// the transaction description, so a single "costco" entry covers every
// store number.
type CorrectionsStrategy struct {
	corrections []models.Correction
	logger      logging.Logger
}

// NewCorrectionsStrategy creates the strategy from an already loaded
// corrections list.
func NewCorrectionsStrategy(corrs []models.Correction, logger logging.Logger) *CorrectionsStrategy {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &CorrectionsStrategy{corrections: corrs, logger: logger}
}

// Name returns the strategy name for logging.
func (s *CorrectionsStrategy) Name() string {
	return "Corrections"
}

// Categorize looks the transaction up in the corrections list.
func (s *CorrectionsStrategy) Categorize(_ context.Context, tx models.Transaction) (string, bool, error) {
	category, found := corrections.Lookup(s.corrections, tx.Description)
	if !found {
		return "", false, nil
	}

	s.logger.WithFields(
		logging.Field{Key: "strategy", Value: s.Name()},
		logging.Field{Key: "description", Value: tx.Description},
		logging.Field{Key: "category", Value: category},
	).Debug("Transaction categorized from corrections")
	return category, true, nil
}
