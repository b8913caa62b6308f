package engine

import "github.com/shopspring/decimal"

// ParseContext is the per-document mutable state. A fresh context is
// created for every parse call, so parses never observe each other.
type ParseContext struct {
	// Section state.
	InSection        bool
	Section          string
	SectionDirection string

	// Holder is the active cardholder for formats that attribute
	// transactions to named cardholders.
	Holder string

	// Running balance for balance-delta direction inference.
	PrevBalance    decimal.Decimal
	HasPrevBalance bool

	// PendingDescription buffers an orphan description line that may
	// belong to the next transaction head.
	PendingDescription string
}

// NewParseContext creates an empty context.
func NewParseContext() *ParseContext {
	return &ParseContext{}
}

// UpdateBalance records a newly observed balance figure and returns the
// delta from the previous one, when there was one.
func (c *ParseContext) UpdateBalance(balance decimal.Decimal) (delta decimal.Decimal, ok bool) {
	if c.HasPrevBalance {
		delta = balance.Sub(c.PrevBalance)
		ok = true
	}
	c.PrevBalance = balance
	c.HasPrevBalance = true
	return delta, ok
}
