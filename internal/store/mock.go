package store

import "msalas/statement-csv/internal/models"

// MockStore returns fixed categories for tests.
type MockStore struct {
	Categories []models.CategoryConfig
	Err        error
}

// LoadCategories returns the mock categories or error.
func (m *MockStore) LoadCategories() ([]models.CategoryConfig, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Categories, nil
}
