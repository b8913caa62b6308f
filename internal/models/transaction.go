// Package models provides the data structures shared by the parsers, the
// categorizer, and the CSV layer.
package models

import (
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"msalas/statement-csv/internal/dateutils"
)

// Transaction direction markers.
const (
	DirectionDebit  = "DBIT"
	DirectionCredit = "CRDT"
)

// Transaction is one normalized statement entry. Date, Amount, and
// Direction carry the canonical values; the string fields tagged with csv
// are the output projection and are refreshed by SyncCSVFields before
// writing.
type Transaction struct {
	CSVDate     string `csv:"Date"`
	Description string `csv:"Description"`
	DebitText   string `csv:"Debit"`
	CreditText  string `csv:"Credit"`
	Cardholder  string `csv:"Cardholder"`
	Category    string `csv:"Category"`

	Date      time.Time       `csv:"-"`
	Amount    decimal.Decimal `csv:"-"` // non-negative magnitude
	Direction string          `csv:"-"`
}

// IsDebit returns true if the transaction moves money out.
func (t *Transaction) IsDebit() bool {
	return t.Direction == DirectionDebit
}

// IsCredit returns true if the transaction moves money in.
func (t *Transaction) IsCredit() bool {
	return t.Direction == DirectionCredit
}

// SyncCSVFields refreshes the csv-tagged projection from the canonical
// fields. Exactly one of Debit/Credit is populated.
func (t *Transaction) SyncCSVFields() {
	t.CSVDate = dateutils.ToISODate(t.Date)
	if t.IsCredit() {
		t.CreditText = t.Amount.StringFixed(2)
		t.DebitText = ""
	} else {
		t.DebitText = t.Amount.StringFixed(2)
		t.CreditText = ""
	}
}

// HydrateFromCSV rebuilds the canonical fields after a gocsv read. The
// Credit column wins when both are somehow present.
func (t *Transaction) HydrateFromCSV() error {
	if t.CSVDate != "" {
		date, err := time.Parse(dateutils.DateLayoutISO, strings.TrimSpace(t.CSVDate))
		if err != nil {
			return err
		}
		t.Date = date
	}

	credit := strings.TrimSpace(t.CreditText)
	debit := strings.TrimSpace(t.DebitText)
	if credit != "" {
		amount, err := decimal.NewFromString(credit)
		if err != nil {
			return err
		}
		t.Amount = amount
		t.Direction = DirectionCredit
		return nil
	}
	if debit != "" {
		amount, err := decimal.NewFromString(debit)
		if err != nil {
			return err
		}
		t.Amount = amount
		t.Direction = DirectionDebit
	}
	return nil
}

// Key identifies a transaction for duplicate detection across statements.
func (t *Transaction) Key() string {
	return strings.Join([]string{
		dateutils.ToISODate(t.Date),
		t.Description,
		t.Amount.StringFixed(2),
		t.Direction,
	}, "|")
}

// SortByDate orders transactions by date ascending. The sort is stable so
// same-day entries keep their statement order.
func SortByDate(transactions []Transaction) {
	sort.SliceStable(transactions, func(i, j int) bool {
		return transactions[i].Date.Before(transactions[j].Date)
	})
}
