package wellsfargoparser

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"msalas/statement-csv/internal/dateutils"
	"msalas/statement-csv/internal/logging"
	"msalas/statement-csv/internal/models"
	"msalas/statement-csv/internal/parsererror"
)

func writeStatement(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

const sampleStatement = `Transaction history
Date Number Description Additions Subtractions balance
Deposits/ Withdrawals/
1/2 Bank of America Mortgage 250102 P12739652 , Salas M 798.44 3,157.01
1/6 Recurring Transfer From Salas M Savings Ref #Op0Dhnwz4X 500.00 3,657.01
1/8 Purchase authorized on 01/07 Safeway Store 1234
Tucson AZ Card 5678 84.32 3,572.69
Totals $500.00 $882.76
`

func TestParseFile_Statement(t *testing.T) {
	path := writeStatement(t, "wellsfargo-jan-2025.txt", sampleStatement)

	p := NewAdapter(&logging.MockLogger{})
	transactions, err := p.ParseFile(path)
	require.NoError(t, err)

	require.Len(t, transactions, 3)

	mortgage := transactions[0]
	assert.Equal(t, dateutils.Date(2025, time.January, 2), mortgage.Date)
	assert.Equal(t, "Bank of America Mortgage 250102 P12739652 , Salas M", mortgage.Description)
	assert.Equal(t, models.DirectionDebit, mortgage.Direction)
	assert.Equal(t, "798.44", mortgage.Amount.StringFixed(2))

	transfer := transactions[1]
	assert.Equal(t, models.DirectionCredit, transfer.Direction, "transfer from is a credit keyword")
	assert.Equal(t, "500.00", transfer.Amount.StringFixed(2))

	// The wrapped purchase line picks up its amounts from the
	// continuation line.
	purchase := transactions[2]
	assert.Equal(t, dateutils.Date(2025, time.January, 8), purchase.Date)
	assert.Equal(t, "Purchase authorized on 01/07 Safeway Store 1234 Tucson AZ Card 5678", purchase.Description)
	assert.Equal(t, models.DirectionDebit, purchase.Direction)
	assert.Equal(t, "84.32", purchase.Amount.StringFixed(2))
}

func TestParseFile_SingleAmountRows(t *testing.T) {
	// Rows without the trailing balance column still parse; the lone
	// amount is the transaction amount.
	path := writeStatement(t, "wellsfargo-jan-2025.txt",
		"Transaction history\n"+
			"1/9 Online Transfer to Checking 120.00\n"+
			"Totals\n")

	p := NewAdapter(&logging.MockLogger{})
	transactions, err := p.ParseFile(path)
	require.NoError(t, err)

	require.Len(t, transactions, 1)
	assert.Equal(t, "120.00", transactions[0].Amount.StringFixed(2))
}

func TestParseFile_CreditKeywordsAreCaseInsensitive(t *testing.T) {
	path := writeStatement(t, "wellsfargo-jan-2025.txt",
		"Transaction history\n"+
			"1/10 INTEREST PAYMENT 0.42 3,573.11\n"+
			"Totals\n")

	p := NewAdapter(&logging.MockLogger{})
	transactions, err := p.ParseFile(path)
	require.NoError(t, err)

	require.Len(t, transactions, 1)
	assert.Equal(t, models.DirectionCredit, transactions[0].Direction)
}

func TestParseFile_NoTransactionsIsAnError(t *testing.T) {
	path := writeStatement(t, "wellsfargo-jan-2025.txt", "unrelated text\n")

	p := NewAdapter(&logging.MockLogger{})
	_, err := p.ParseFile(path)

	var empty *parsererror.NoTransactionsError
	require.ErrorAs(t, err, &empty)
}

func TestParseFile_MissingFile(t *testing.T) {
	p := NewAdapter(&logging.MockLogger{})
	_, err := p.ParseFile(filepath.Join(t.TempDir(), "absent.txt"))

	var notFound *parsererror.SourceNotFoundError
	require.ErrorAs(t, err, &notFound)
}
