// Package citiparser parses Citi Costco card statements. Transactions are
// grouped under named cardholders, dated lines carry a sale and a post
// date, payments print negative amounts, and foreign purchases print their
// dollar amount on a separate MEXICAN PESO conversion line.
package citiparser

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

// cardholders are the account holders whose headings group transactions.
var cardholders = []string{
	"MANUEL SALAS",
	"REYNA VARELA",
}

var (
	// Sale date, optional post date, then description and amounts.
	startRe  = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})(?:\s+(\d{1,2})/(\d{1,2}))?\s*(.*)$`)
	amountRe = regexp.MustCompile(`-?\$?[\d,]+\.\d{2}`)

	// Conversion line under a foreign purchase: the dollar figure is the
	// transaction amount, the peso figure is dropped.
	pesoRe = regexp.MustCompile(`^[\d,]+\.\d+-?\s+MEXICAN\s+PESO\s+(-?\$?[\d,]+\.\d{2})`)

	// Reward figures print with a leading plus and are never transaction
	// amounts.
	plusAmountRe = regexp.MustCompile(`\+\s?\$?[\d,]+\.\d{2}`)
)

// stripPhrases is reward and footer text that leaks into transaction
// lines and must not survive into descriptions.
var stripPhrases = []string{
	"Total Earned:",
	"1% on all other purchases",
	"2% on Costco and Costco.com purchases",
	"3% on restaurant and eligible travel",
	"4% on eligible gas and EV charging",
	"Costco Cash Back Rewards",
	"for more information",
}

// NewGrammar returns the Citi statement grammar.
func NewGrammar() *engine.Grammar {
	return &engine.Grammar{
		Format: "citi",
		SectionStarts: []engine.SectionMarker{
			{Matcher: engine.Contains("Payments, Credits and Adjustments"), Name: "payments"},
			{Matcher: engine.Contains("Standard Purchases"), Name: "purchases"},
			// Reward headings double as section text on purchase pages.
			// A dated line can end with the same words, so only lines
			// that do not start with a date count.
			{Matcher: engine.Pattern(`^\D.*Earned This Period`), Name: "purchases"},
		},
		SectionEnds: []engine.Matcher{
			engine.Prefix("CARDHOLDER SUMMARY"),
			engine.Prefix("Foreign Currency Transactions"),
			engine.Prefix("Interest Charged"),
			engine.Prefix("Fees"),
			engine.Prefix("Year-To-Date Totals"),
			engine.Pattern(`^\d{4} Totals Year-to-Date`),
		},
		InSectionOnly:          true,
		KeepSectionAcrossPages: true,
		PageMarkers: []engine.Matcher{
			engine.Prefix("Page "),
		},
		Noise: []engine.Matcher{
			engine.Contains("Sale Post"),
			engine.Contains("Date Date Description Amount"),
			engine.Contains("Balance:"),
			engine.Contains("New Charges"),
			engine.Contains("Earned this period"),
			engine.Contains("cont'd"),
			engine.Pattern(`(?i)^WWW\.`),
		},
		MatchStart:             matchStart,
		AmountPattern:          amountRe,
		BufferTextAfterAmounts: true,
		StripFromDescription:   stripPhrases,
		SingleAmountPolicy:     engine.SingleAmountUse,
		DefaultDirection:       models.DirectionDebit,
		ErrOnEmpty:             true,
		Hook:                   classifyHook,
	}
}

// classifyHook intercepts the two line shapes the declarative matchers
// cannot express: cardholder headings and MEXICAN PESO conversion lines.
func classifyHook(line string, ctx *engine.ParseContext) (engine.Event, bool) {
	for _, holder := range cardholders {
		if strings.Contains(line, holder) && !strings.Contains(line, "Card ending in") {
			return engine.Event{Kind: engine.EventHolder, Holder: holder}, true
		}
	}

	if m := pesoRe.FindStringSubmatch(line); m != nil {
		return engine.Event{
			Kind:    engine.EventContinuation,
			Amounts: engine.HarvestAmounts(amountRe, m[1]),
		}, true
	}

	return engine.Event{}, false
}

// matchStart recognizes a dated line. The sale date is the transaction
// date; the post date, when present, is dropped. The description or the
// amount may be missing, arriving on a neighboring line instead.
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

	rest := m[5]
	fragment := strings.TrimSpace(amountRe.ReplaceAllString(rest, ""))
	// Reward amounts print as "+$29.54"; the sign never belongs in a
	// description.
	fragment = strings.TrimSpace(strings.ReplaceAll(fragment, "+", ""))
	// Strip reward text here as well: a line reading "01/24 $1,373.97
	// Total Earned: $100.73" carries no description of its own, and only
	// an empty fragment lets the buffered merchant line fill in.
	for _, phrase := range stripPhrases {
		fragment = strings.ReplaceAll(fragment, phrase, "")
	}
	fragment = strings.TrimSpace(fragment)
	return &engine.Start{
		Day:      day,
		Month:    time.Month(monthNum),
		Fragment: fragment,
		Amounts:  engine.HarvestAmounts(amountRe, harvestSource(rest)),
	}, true
}

// harvestSource trims a dated line down to the text whose figures are
// real transaction amounts. Reward annotations trail the purchase text,
// so everything from the first reward phrase onward is cut, and any
// remaining plus-signed figure is removed.
func harvestSource(rest string) string {
	cut := len(rest)
	for _, phrase := range stripPhrases {
		if i := strings.Index(rest, phrase); i >= 0 && i < cut {
			cut = i
		}
	}
	return plusAmountRe.ReplaceAllString(rest[:cut], "")
}

// NewAdapter creates a parser for Citi statements.
func NewAdapter(logger logging.Logger) models.Parser {
	return parser.NewFileParser(NewGrammar(), logger)
}

// NewAdapterWithExtractor creates a Citi parser with a fixed extractor.
func NewAdapterWithExtractor(logger logging.Logger, extractor textdoc.Extractor) models.Parser {
	return parser.NewFileParserWithExtractor(NewGrammar(), logger, extractor)
}
