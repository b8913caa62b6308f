package categorizer

import (
	"context"

	"msalas/statement-csv/internal/logging"
	"msalas/statement-csv/internal/models"
)

// Categorizer runs strategies in priority order and assigns the first
// category produced. Transactions no strategy can place get the fallback
// category.
type Categorizer struct {
	strategies []Strategy
	fallback   string
	logger     logging.Logger
}

// New creates a categorizer from an ordered strategy list.
func New(strategies []Strategy, fallback string, logger logging.Logger) *Categorizer {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	if fallback == "" {
		fallback = "Uncategorized"
	}
	return &Categorizer{
		strategies: strategies,
		fallback:   fallback,
		logger:     logger,
	}
}

// Categorize returns the category for one transaction. Strategy errors
// are logged and the chain moves on, so a failing AI call never blocks
// the local strategies' results.
func (c *Categorizer) Categorize(ctx context.Context, tx models.Transaction) string {
	for _, strategy := range c.strategies {
		category, found, err := strategy.Categorize(ctx, tx)
		if err != nil {
			c.logger.WithError(err).WithField("strategy", strategy.Name()).
				Warn("Categorization strategy failed")
			continue
		}
		if found {
			return category
		}
	}
	return c.fallback
}

// CategorizeAll fills the Category field of every transaction that does
// not already carry one.
func (c *Categorizer) CategorizeAll(ctx context.Context, transactions []models.Transaction) {
	for i := range transactions {
		if transactions[i].Category != "" {
			continue
		}
		transactions[i].Category = c.Categorize(ctx, transactions[i])
	}
	c.logger.Info("Categorized transactions",
		logging.Field{Key: logging.FieldCount, Value: len(transactions)})
}
