// Package wellsfargoparser parses Wells Fargo checking statements. The
// "Transaction history" table prints one row per transaction with an
// optional trailing balance column; long descriptions wrap onto following
// lines until the amounts appear.
package wellsfargoparser

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"msalas/statement-csv/internal/engine"
	"msalas/statement-csv/internal/logging"
	"msalas/statement-csv/internal/models"
	"msalas/statement-csv/internal/parser"
	"msalas/statement-csv/internal/textdoc"
)

var (
	startRe  = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})\s+(.+)$`)
	amountRe = regexp.MustCompile(`[\d,]+\.\d{2}`)
)

// creditKeywords mark deposits in the description text. The layout has no
// separate deposit section, so keywords alone decide the direction.
var creditKeywords = []string{
	"transfer from",
	"deposit",
	"credit",
	"interest",
	"refund",
	"recurring transfer from",
}

// NewGrammar returns the Wells Fargo statement grammar.
func NewGrammar() *engine.Grammar {
	return &engine.Grammar{
		Format: "wellsfargo",
		SectionStarts: []engine.SectionMarker{
			{Matcher: engine.Contains("Transaction history"), Name: "history"},
		},
		SectionEnds: []engine.Matcher{
			engine.Prefix("Totals"),
		},
		InSectionOnly:          true,
		KeepSectionAcrossPages: true,
		Noise: []engine.Matcher{
			engine.Contains("Date Number Description"),
			engine.Contains("Deposits/"),
			engine.Contains("Withdrawals/"),
		},
		MatchStart:         matchStart,
		AmountPattern:      amountRe,
		CreditKeywords:     creditKeywords,
		SingleAmountPolicy: engine.SingleAmountUse,
		DefaultDirection:   models.DirectionDebit,
		ErrOnEmpty:         true,
	}
}

// matchStart recognizes a "M/D Description [Amount] [Balance]" row. The
// amounts may be missing entirely when the description wraps; they arrive
// on a continuation line.
func matchStart(line string) (*engine.Start, bool) {
	m := startRe.FindStringSubmatch(line)
	if m == nil {
		return nil, false
	}
	monthNum, _ := strconv.Atoi(m[1])
	day, _ := strconv.Atoi(m[2])
	if monthNum < 1 || monthNum > 12 || day < 1 || day > 31 {
		return nil, false
	}

	rest := m[3]
	fragment := strings.TrimSpace(amountRe.ReplaceAllString(rest, ""))
	return &engine.Start{
		Day:      day,
		Month:    time.Month(monthNum),
		Fragment: fragment,
		Amounts:  engine.HarvestAmounts(amountRe, rest),
	}, true
}

// NewAdapter creates a parser for Wells Fargo statements.
func NewAdapter(logger logging.Logger) models.Parser {
	return parser.NewFileParser(NewGrammar(), logger)
}

// NewAdapterWithExtractor creates a Wells Fargo parser with a fixed extractor.
func NewAdapterWithExtractor(logger logging.Logger, extractor textdoc.Extractor) models.Parser {
	return parser.NewFileParserWithExtractor(NewGrammar(), logger, extractor)
}
