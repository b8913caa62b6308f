// Package corrections persists user-confirmed category assignments. The
// store is a two-column CSV that the categorizer consults before any
// keyword or AI strategy runs.
package corrections

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gocarina/gocsv"

	"msalas/statement-csv/internal/common"
	"msalas/statement-csv/internal/logging"
	"msalas/statement-csv/internal/models"
)

// Store reads and appends learned (description, category) pairs.
type Store struct {
	Path string

	logger logging.Logger
}

// NewStore creates a corrections store backed by the given CSV file.
func NewStore(path string, logger logging.Logger) *Store {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Store{Path: path, logger: logger}
}

// Load reads all corrections. A missing file is not an error: the store
// starts empty and fills as the user confirms categories.
func (s *Store) Load() ([]models.Correction, error) {
	if _, err := os.Stat(s.Path); os.IsNotExist(err) {
		s.logger.Debug("Corrections file not found, starting empty",
			logging.Field{Key: logging.FieldFile, Value: s.Path})
		return []models.Correction{}, nil
	}

	corrections, err := common.ReadCSVFile[models.Correction](s.Path)
	if err != nil {
		return nil, fmt.Errorf("error loading corrections: %w", err)
	}
	return corrections, nil
}

// Append records new corrections, skipping any (description, category)
// pair already present. The whole file is rewritten so the header stays
// intact.
func (s *Store) Append(newCorrections []models.Correction) error {
	existing, err := s.Load()
	if err != nil {
		return err
	}

	seen := make(map[string]bool, len(existing))
	for _, c := range existing {
		seen[correctionKey(c)] = true
	}

	added := 0
	for _, c := range newCorrections {
		if c.Description == "" || c.Category == "" {
			continue
		}
		if seen[correctionKey(c)] {
			continue
		}
		seen[correctionKey(c)] = true
		existing = append(existing, c)
		added++
	}

	if added == 0 {
		s.logger.Debug("No new corrections to record")
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(s.Path), 0750); err != nil {
		return fmt.Errorf("error creating corrections directory: %w", err)
	}
	file, err := os.Create(s.Path)
	if err != nil {
		return fmt.Errorf("error creating corrections file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			s.logger.WithError(err).Warn("Failed to close file")
		}
	}()

	if err := gocsv.MarshalFile(&existing, file); err != nil {
		return fmt.Errorf("error writing corrections file: %w", err)
	}

	s.logger.Info("Recorded corrections",
		logging.Field{Key: logging.FieldFile, Value: s.Path},
		logging.Field{Key: logging.FieldCount, Value: added})
	return nil
}

// Lookup returns the category for the first correction whose description
// is contained in the transaction description, case-insensitively.
func Lookup(corrections []models.Correction, description string) (string, bool) {
	haystack := strings.ToLower(description)
	for _, c := range corrections {
		if c.Description == "" {
			continue
		}
		if strings.Contains(haystack, strings.ToLower(c.Description)) {
			return c.Category, true
		}
	}
	return "", false
}

func correctionKey(c models.Correction) string {
	return c.Description + "\x00" + c.Category
}
