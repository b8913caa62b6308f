package engine

import (
	"regexp"

	"github.com/shopspring/decimal"

	"msalas/statement-csv/internal/currencyutils"
)

// EventKind classifies what a statement line means to the assembler.
type EventKind int

const (
	// EventNoise lines are dropped.
	EventNoise EventKind = iota
	// EventSectionStart opens a transaction section.
	EventSectionStart
	// EventSectionEnd closes the current section and flushes.
	EventSectionEnd
	// EventTransactionStart opens a new transaction.
	EventTransactionStart
	// EventContinuation extends the open transaction with text or amounts.
	EventContinuation
	// EventHolder switches the active cardholder.
	EventHolder
	// EventPageBreak marks a page boundary.
	EventPageBreak
)

// Amount is one harvested amount token: a non-negative magnitude plus the
// sign it carried on the statement.
type Amount struct {
	Value    decimal.Decimal
	Negative bool
}

// Signed returns the amount with its statement sign applied.
func (a Amount) Signed() decimal.Decimal {
	if a.Negative {
		return a.Value.Neg()
	}
	return a.Value
}

// Event is the classifier's verdict on a single line.
type Event struct {
	Kind EventKind

	// TransactionStart payload.
	Start *Start

	// Continuation payload.
	Fragment string
	Amounts  []Amount

	// SectionStart payload.
	Section          string
	SectionDirection string

	// Holder payload.
	Holder string
}

// HarvestAmounts extracts every amount token matched by re, in order.
// Tokens that fail to parse are skipped.
func HarvestAmounts(re *regexp.Regexp, line string) []Amount {
	if re == nil {
		return nil
	}
	var amounts []Amount
	for _, token := range re.FindAllString(line, -1) {
		value, err := currencyutils.ParseAmount(token)
		if err != nil {
			continue
		}
		amounts = append(amounts, Amount{
			Value:    value.Abs(),
			Negative: value.IsNegative(),
		})
	}
	return amounts
}
