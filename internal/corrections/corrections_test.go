package corrections

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"msalas/statement-csv/internal/logging"
	"msalas/statement-csv/internal/models"
)

func TestLoad_MissingFileIsEmpty(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "corrections.csv"), &logging.MockLogger{})
	corrections, err := s.Load()

	require.NoError(t, err)
	assert.Empty(t, corrections)
}

func TestAppend_DeduplicatesExactPairs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corrections.csv")
	s := NewStore(path, &logging.MockLogger{})

	require.NoError(t, s.Append([]models.Correction{
		{Description: "COSTCO WHSE", Category: "Groceries"},
		{Description: "OXXO GAS", Category: "Gas"},
	}))
	require.NoError(t, s.Append([]models.Correction{
		{Description: "COSTCO WHSE", Category: "Groceries"},
		{Description: "COSTCO WHSE", Category: "Shopping"},
	}))

	corrections, err := s.Load()
	require.NoError(t, err)
	require.Len(t, corrections, 3)
	assert.Equal(t, "Groceries", corrections[0].Category)
	assert.Equal(t, "Shopping", corrections[2].Category)
}

func TestAppend_SkipsBlankPairs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corrections.csv")
	s := NewStore(path, &logging.MockLogger{})

	require.NoError(t, s.Append([]models.Correction{
		{Description: "", Category: "Groceries"},
		{Description: "COSTCO WHSE", Category: ""},
	}))

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err), "file should not be created for blank pairs")
}

func TestLookup_SubstringMatchIsCaseInsensitive(t *testing.T) {
	corrections := []models.Correction{
		{Description: "costco", Category: "Groceries"},
		{Description: "NETFLIX", Category: "Entertainment"},
	}

	category, ok := Lookup(corrections, "COSTCO WHSE #1234 TUCSON AZ")
	require.True(t, ok)
	assert.Equal(t, "Groceries", category)

	category, ok = Lookup(corrections, "Netflix.com Los Gatos CA")
	require.True(t, ok)
	assert.Equal(t, "Entertainment", category)

	_, ok = Lookup(corrections, "SHELL OIL 5771")
	assert.False(t, ok)
}
