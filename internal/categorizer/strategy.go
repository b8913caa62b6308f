// Package categorizer assigns spending categories to transactions. It
// chains strategies in priority order: learned corrections first, then
// keyword rules, then the optional Gemini fallback.
package categorizer

import (
	"context"

	"msalas/statement-csv/internal/models"
)

// Strategy is one way of assigning a category to a transaction. Categorize
// returns the category, whether the strategy produced one, and any error.
type Strategy interface {
	Categorize(ctx context.Context, tx models.Transaction) (string, bool, error)

	// Name identifies the strategy in logs.
	Name() string
}

// CategoryStoreInterface is what the keyword strategy needs from the
// category store.
type CategoryStoreInterface interface {
	LoadCategories() ([]models.CategoryConfig, error)
}
