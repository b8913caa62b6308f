// Package chaseparser parses Chase checking statements. Transactions live
// in two single-line tables, DEPOSITS AND ADDITIONS and ELECTRONIC
// WITHDRAWALS; the section decides the direction and every row carries its
// amount inline.
package chaseparser

import (
	"regexp"
	"strconv"
	"time"

	"msalas/statement-csv/internal/engine"
	"msalas/statement-csv/internal/logging"
	"msalas/statement-csv/internal/models"
	"msalas/statement-csv/internal/parser"
	"msalas/statement-csv/internal/textdoc"
)

var (
	// MM/DD Description $Amount, anchored to the full line.
	lineRe   = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})\s+(.+?)\s+\$?([\d,]+\.\d{2})$`)
	amountRe = regexp.MustCompile(`[\d,]+\.\d{2}`)
)

// NewGrammar returns the Chase statement grammar.
func NewGrammar() *engine.Grammar {
	return &engine.Grammar{
		Format: "chase",
		SectionStarts: []engine.SectionMarker{
			{Matcher: engine.Contains("DEPOSITS AND ADDITIONS"), Name: "deposits", Direction: models.DirectionCredit},
			{Matcher: engine.Contains("ELECTRONIC WITHDRAWALS"), Name: "withdrawals", Direction: models.DirectionDebit},
		},
		SectionEnds: []engine.Matcher{
			engine.Prefix("Total Deposits"),
			engine.Prefix("Total Electronic"),
		},
		InSectionOnly:          true,
		KeepSectionAcrossPages: true,
		Noise: []engine.Matcher{
			engine.Contains("DATE DESCRIPTION AMOUNT"),
		},
		MatchStart:         matchStart,
		AmountPattern:      amountRe,
		UnmatchedIsNoise:   true,
		SingleAmountPolicy: engine.SingleAmountUse,
		ErrOnEmpty:         true,
	}
}

// matchStart recognizes a complete "MM/DD Description $Amount" row. Rows
// that do not carry an amount are not transactions in this layout.
func matchStart(line string) (*engine.Start, bool) {
	m := lineRe.FindStringSubmatch(line)
	if m == nil {
		return nil, false
	}
	monthNum, _ := strconv.Atoi(m[1])
	day, _ := strconv.Atoi(m[2])
	if monthNum < 1 || monthNum > 12 || day < 1 || day > 31 {
		return nil, false
	}
	return &engine.Start{
		Day:      day,
		Month:    time.Month(monthNum),
		Fragment: m[3],
		Amounts:  engine.HarvestAmounts(amountRe, m[4]),
	}, true
}

// NewAdapter creates a parser for Chase statements.
func NewAdapter(logger logging.Logger) models.Parser {
	return parser.NewFileParser(NewGrammar(), logger)
}

// NewAdapterWithExtractor creates a Chase parser with a fixed extractor.
func NewAdapterWithExtractor(logger logging.Logger, extractor textdoc.Extractor) models.Parser {
	return parser.NewFileParserWithExtractor(NewGrammar(), logger, extractor)
}
