package categorizer

import (
	"context"
	"strings"

	"msalas/statement-csv/internal/logging"
	"msalas/statement-csv/internal/models"
)

// KeywordStrategy categorizes transactions by matching the keywords from
// the categories YAML file against the transaction description.
type KeywordStrategy struct {
	categories []models.CategoryConfig
	store      CategoryStoreInterface
	logger     logging.Logger
}

// NewKeywordStrategy creates a keyword strategy backed by the given store.
func NewKeywordStrategy(store CategoryStoreInterface, logger logging.Logger) *KeywordStrategy {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	strategy := &KeywordStrategy{
		categories: []models.CategoryConfig{},
		store:      store,
		logger:     logger,
	}
	strategy.loadCategories()
	return strategy
}

// Name returns the strategy name for logging.
func (s *KeywordStrategy) Name() string {
	return "Keyword"
}

// Categories returns the loaded category names, for prompt building.
func (s *KeywordStrategy) Categories() []string {
	names := make([]string, 0, len(s.categories))
	for _, c := range s.categories {
		names = append(names, c.Name)
	}
	return names
}

// Categorize matches the description against category keywords,
// case-insensitively. The first matching keyword wins.
func (s *KeywordStrategy) Categorize(_ context.Context, tx models.Transaction) (string, bool, error) {
	description := strings.ToUpper(tx.Description)
	if strings.TrimSpace(description) == "" {
		return "", false, nil
	}

	for _, categoryConfig := range s.categories {
		for _, keyword := range categoryConfig.Keywords {
			if keyword == "" {
				continue
			}
			if strings.Contains(description, strings.ToUpper(keyword)) {
				s.logger.WithFields(
					logging.Field{Key: "strategy", Value: s.Name()},
					logging.Field{Key: "description", Value: tx.Description},
					logging.Field{Key: "keyword", Value: keyword},
					logging.Field{Key: "category", Value: categoryConfig.Name},
				).Debug("Transaction categorized using keyword matching")
				return categoryConfig.Name, true, nil
			}
		}
	}
	return "", false, nil
}

// ReloadCategories reloads the rules after the YAML file changed.
func (s *KeywordStrategy) ReloadCategories() {
	s.loadCategories()
}

func (s *KeywordStrategy) loadCategories() {
	categories, err := s.store.LoadCategories()
	if err != nil {
		s.logger.WithError(err).Warn("Failed to load categories for keyword matching")
		return
	}
	s.categories = categories
	s.logger.WithField(logging.FieldCount, len(categories)).Debug("Loaded categories for keyword matching")
}
