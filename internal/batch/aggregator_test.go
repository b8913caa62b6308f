package batch

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"msalas/statement-csv/internal/logging"
	"msalas/statement-csv/internal/models"
)

type fakeParser struct {
	results map[string][]models.Transaction
}

func (p *fakeParser) ParseFile(filePath string) ([]models.Transaction, error) {
	transactions, ok := p.results[filePath]
	if !ok {
		return nil, errors.New("unreadable statement")
	}
	return transactions, nil
}

func (p *fakeParser) ValidateFormat(string) (bool, error)           { return true, nil }
func (p *fakeParser) ConvertToCSV(string, string) error             { return nil }
func (p *fakeParser) WriteToCSV([]models.Transaction, string) error { return nil }
func (p *fakeParser) SetLogger(logging.Logger)                      {}

func day(d int) time.Time {
	return time.Date(2025, time.March, d, 0, 0, 0, 0, time.UTC)
}

func statementTx(d int, description string) models.Transaction {
	return models.Transaction{
		Date:        day(d),
		Description: description,
		Amount:      decimal.NewFromFloat(10.00),
		Direction:   models.DirectionDebit,
	}
}

func TestRun_MergesAndSortsAcrossFiles(t *testing.T) {
	parser := &fakeParser{results: map[string][]models.Transaction{
		"feb.txt": {statementTx(20, "LATE FEB"), statementTx(25, "LATER FEB")},
		"mar.txt": {statementTx(2, "EARLY MAR")},
	}}
	a := NewAggregator(&logging.MockLogger{})

	merged, err := a.Run([]string{"feb.txt", "mar.txt"}, parser)
	require.NoError(t, err)
	require.Len(t, merged, 3)
	assert.Equal(t, "EARLY MAR", merged[0].Description)
	assert.Equal(t, "LATE FEB", merged[1].Description)
	assert.Equal(t, "LATER FEB", merged[2].Description)
}

func TestRun_SkipsFailingFileWithWarning(t *testing.T) {
	parser := &fakeParser{results: map[string][]models.Transaction{
		"good.txt": {statementTx(5, "OK")},
	}}
	mockLogger := &logging.MockLogger{}
	a := NewAggregator(mockLogger)

	merged, err := a.Run([]string{"missing.txt", "good.txt"}, parser)
	require.NoError(t, err)
	require.Len(t, merged, 1)
	assert.NotEmpty(t, mockLogger.EntriesByLevel("WARN"))
}

func TestRun_ErrorsWhenNothingParses(t *testing.T) {
	a := NewAggregator(&logging.MockLogger{})
	_, err := a.Run([]string{"one.txt", "two.txt"}, &fakeParser{})
	assert.Error(t, err)
}

func TestRun_WarnsOnDuplicates(t *testing.T) {
	parser := &fakeParser{results: map[string][]models.Transaction{
		"a.txt": {statementTx(5, "SAME")},
		"b.txt": {statementTx(5, "SAME")},
	}}
	mockLogger := &logging.MockLogger{}
	a := NewAggregator(mockLogger)

	merged, err := a.Run([]string{"a.txt", "b.txt"}, parser)
	require.NoError(t, err)
	assert.Len(t, merged, 2, "duplicates are reported, not removed")
	assert.True(t, mockLogger.HasEntry("WARN", "Potential duplicate transaction"))
}

func TestCalculateDateRange(t *testing.T) {
	transactions := []models.Transaction{
		statementTx(12, "A"),
		statementTx(3, "B"),
		statementTx(28, "C"),
	}
	dr := CalculateDateRange(transactions)
	assert.Equal(t, "2025-03-03_2025-03-28", dr.String())

	assert.Equal(t, "", CalculateDateRange(nil).String())
}
