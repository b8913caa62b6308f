// Package engine implements the shared line-oriented statement parser. A
// per-format Grammar describes what section markers, noise, and transaction
// lines look like; the classifier turns lines into events and the assembler
// folds events into transactions. All four institution parsers run on this
// one engine.
package engine

import (
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// SingleAmountPolicy decides what a transaction with exactly one amount
// token means.
type SingleAmountPolicy int

const (
	// SingleAmountDiscard treats the lone amount as a balance figure: the
	// entry is dropped and, when balances are tracked, the running balance
	// is updated.
	SingleAmountDiscard SingleAmountPolicy = iota
	// SingleAmountUse treats the lone amount as the transaction amount.
	SingleAmountUse
)

// Matcher matches a statement line by prefix, substring, or pattern.
// Exactly one of the fields should be set.
type Matcher struct {
	Prefix   string
	Contains string
	Regex    *regexp.Regexp
}

// Match reports whether the line satisfies the matcher.
func (m Matcher) Match(line string) bool {
	switch {
	case m.Prefix != "":
		return strings.HasPrefix(line, m.Prefix)
	case m.Contains != "":
		return strings.Contains(line, m.Contains)
	case m.Regex != nil:
		return m.Regex.MatchString(line)
	}
	return false
}

// Prefix builds a prefix matcher.
func Prefix(s string) Matcher { return Matcher{Prefix: s} }

// Contains builds a substring matcher.
func Contains(s string) Matcher { return Matcher{Contains: s} }

// Pattern builds a regexp matcher.
func Pattern(expr string) Matcher { return Matcher{Regex: regexp.MustCompile(expr)} }

// SectionMarker opens a transaction section. Direction, when set, applies
// to every transaction in the section (Chase deposit and withdrawal
// sections).
type SectionMarker struct {
	Matcher   Matcher
	Name      string
	Direction string
}

// Start is the parsed head of a transaction line.
type Start struct {
	Day      int
	Month    time.Month
	Fragment string
	Amounts  []Amount
}

// ClassifyHook lets a format intercept lines the declarative matchers
// cannot express, such as Citi cardholder headings and foreign currency
// detail lines. Returning ok=false passes the line back to the standard
// classifier.
type ClassifyHook func(line string, ctx *ParseContext) (Event, bool)

// Grammar is the declarative description of one statement layout.
type Grammar struct {
	Format string

	// Section detection. When InSectionOnly is set, lines outside an open
	// section are ignored apart from section starts and hook matches.
	SectionStarts          []SectionMarker
	SectionEnds            []Matcher
	InSectionOnly          bool
	KeepSectionAcrossPages bool

	// PageMarkers match in-text page headers that behave like a page
	// break (some extractions inline them instead of form feeds).
	PageMarkers []Matcher

	// Noise lines are dropped. MetadataPrefixes keep their amounts but
	// drop their text (branch/authorization detail lines).
	Noise            []Matcher
	MetadataPrefixes []Matcher

	// MatchStart recognizes the head of a new transaction.
	MatchStart func(line string) (*Start, bool)

	// AmountPattern harvests amount tokens from continuation and
	// metadata lines.
	AmountPattern *regexp.Regexp

	// UnmatchedIsNoise drops lines that match nothing instead of
	// treating them as continuations. Strict single-line layouts set it.
	UnmatchedIsNoise bool

	// BufferTextAfterAmounts buffers a text-only line that follows an
	// amount-carrying transaction as the description of the next
	// transaction instead of appending it. Set for layouts that print a
	// merchant name on the line above its dated amount line.
	BufferTextAfterAmounts bool

	// CreditKeywords force credit direction when found in a description
	// (case-insensitive).
	CreditKeywords []string

	// StripFromDescription removes marker phrases from the final
	// description before the empty-description check.
	StripFromDescription []string

	SingleAmountPolicy SingleAmountPolicy
	TrackBalance       bool
	DefaultDirection   string

	// Rate, when non-zero, converts amounts from the statement currency
	// at emission: round(raw/rate, 2).
	Rate decimal.Decimal

	// ErrOnEmpty marks formats where zero parsed transactions is an error.
	ErrOnEmpty bool

	Hook ClassifyHook
}

// HasCreditKeyword reports whether the description contains any of the
// grammar's credit keywords, ignoring case.
func (g *Grammar) HasCreditKeyword(description string) bool {
	upper := strings.ToUpper(description)
	for _, kw := range g.CreditKeywords {
		if strings.Contains(upper, strings.ToUpper(kw)) {
			return true
		}
	}
	return false
}
