package models

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"msalas/statement-csv/internal/dateutils"
)

func TestTransaction_DirectionHelpers(t *testing.T) {
	debit := Transaction{Direction: DirectionDebit}
	credit := Transaction{Direction: DirectionCredit}

	assert.True(t, debit.IsDebit())
	assert.False(t, debit.IsCredit())
	assert.True(t, credit.IsCredit())
	assert.False(t, credit.IsDebit())
}

func TestTransaction_SyncCSVFields(t *testing.T) {
	tests := []struct {
		name       string
		direction  string
		amount     string
		wantDebit  string
		wantCredit string
	}{
		{
			name:       "debit fills only the debit column",
			direction:  DirectionDebit,
			amount:     "125.5",
			wantDebit:  "125.50",
			wantCredit: "",
		},
		{
			name:       "credit fills only the credit column",
			direction:  DirectionCredit,
			amount:     "3000",
			wantDebit:  "",
			wantCredit: "3000.00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			amount, err := decimal.NewFromString(tt.amount)
			require.NoError(t, err)

			tx := Transaction{
				Date:      dateutils.Date(2025, time.March, 7),
				Amount:    amount,
				Direction: tt.direction,
			}
			tx.SyncCSVFields()

			assert.Equal(t, "2025-03-07", tx.CSVDate)
			assert.Equal(t, tt.wantDebit, tx.DebitText)
			assert.Equal(t, tt.wantCredit, tx.CreditText)
		})
	}
}

func TestTransaction_HydrateFromCSV(t *testing.T) {
	tx := Transaction{
		CSVDate:    "2025-02-14",
		DebitText:  "42.00",
		CreditText: "",
	}
	require.NoError(t, tx.HydrateFromCSV())

	assert.Equal(t, dateutils.Date(2025, time.February, 14), tx.Date)
	assert.Equal(t, DirectionDebit, tx.Direction)
	assert.True(t, tx.Amount.Equal(decimal.NewFromInt(42)))

	credit := Transaction{CSVDate: "2025-02-15", CreditText: "100.00"}
	require.NoError(t, credit.HydrateFromCSV())
	assert.Equal(t, DirectionCredit, credit.Direction)
	assert.True(t, credit.Amount.Equal(decimal.NewFromInt(100)))
}

func TestTransaction_HydrateFromCSV_BadDate(t *testing.T) {
	tx := Transaction{CSVDate: "14.02.2025"}
	assert.Error(t, tx.HydrateFromCSV())
}

func TestSortByDate_StableForSameDay(t *testing.T) {
	day := dateutils.Date(2025, time.March, 7)
	transactions := []Transaction{
		{Date: dateutils.Date(2025, time.March, 9), Description: "later"},
		{Date: day, Description: "first"},
		{Date: day, Description: "second"},
		{Date: dateutils.Date(2025, time.March, 1), Description: "earliest"},
	}

	SortByDate(transactions)

	require.Len(t, transactions, 4)
	assert.Equal(t, "earliest", transactions[0].Description)
	assert.Equal(t, "first", transactions[1].Description)
	assert.Equal(t, "second", transactions[2].Description)
	assert.Equal(t, "later", transactions[3].Description)
}

func TestTransaction_Key(t *testing.T) {
	tx := Transaction{
		Date:        dateutils.Date(2025, time.March, 7),
		Description: "OXXO GAS",
		Amount:      decimal.NewFromFloat(10.5),
		Direction:   DirectionDebit,
	}
	assert.Equal(t, "2025-03-07|OXXO GAS|10.50|DBIT", tx.Key())
}
