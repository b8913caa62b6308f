// Package banamexparser parses Banamex checking statements. The statement
// body is a "Detalle de Operaciones" table (FECHA, CONCEPTO, RETIROS,
// DEPOSITOS, SALDO) printed in Mexican pesos; every emitted amount is
// converted to dollars at the fixed statement rate.
package banamexparser

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"msalas/statement-csv/internal/dateutils"
	"msalas/statement-csv/internal/engine"
	"msalas/statement-csv/internal/logging"
	"msalas/statement-csv/internal/models"
	"msalas/statement-csv/internal/parser"
	"msalas/statement-csv/internal/textdoc"
)

// pesoToDollarRate is the fixed peso to dollar conversion rate.
var pesoToDollarRate = decimal.NewFromFloat(18.5)

var (
	startRe = regexp.MustCompile(`^(\d{1,2})\s+([A-Z]{3})\s+(.+)$`)

	// Banamex prints amounts with an occasional mid-digit space, so the
	// last two decimals may be split ("1,234.5 6").
	amountRe = regexp.MustCompile(`[\d,]+\.\d\s?\d`)
)

// creditKeywords mark deposits in the CONCEPTO text. The table's RETIROS
// and DEPOSITOS columns are not distinguishable from line text alone, so
// keywords and balance movement decide the direction.
var creditKeywords = []string{
	"PAGO RECIBIDO",
	"DEPOSITO",
	"DEPÓSITO",
	"ABONO",
	"TRANSFERENCIA RECIBIDA",
	"EXENCION",
	"EXENCIÓN",
	"INTERES",
	"INTERÉS",
}

// NewGrammar returns the Banamex statement grammar.
func NewGrammar() *engine.Grammar {
	return &engine.Grammar{
		Format: "banamex",
		SectionStarts: []engine.SectionMarker{
			// The table header row: FECHA CONCEPTO RETIROS DEPOSITOS SALDO.
			{Matcher: engine.Pattern(`FECHA\s+CONCEPTO.*(RETIROS|DEP)`), Name: "operaciones"},
		},
		SectionEnds: []engine.Matcher{
			engine.Contains("Resumen Operaciones"),
			engine.Prefix("TARJETA "),
		},
		InSectionOnly: true,
		PageMarkers: []engine.Matcher{
			engine.Prefix("Página "),
			// Some extractions mangle the accent.
			engine.Prefix("Pägina "),
		},
		Noise: []engine.Matcher{
			engine.Contains("FECHA CONCEPTO"),
			engine.Prefix("000"),
			engine.Contains("Detalle de Operaciones"),
			engine.Contains("En pesos Moneda Nacional"),
		},
		MetadataPrefixes: []engine.Matcher{
			engine.Prefix("SUC "),
			engine.Prefix("CAJA "),
			engine.Prefix("HORA "),
			engine.Prefix("AUT "),
			engine.Pattern(`^\d{8,}$`),
			engine.Prefix("$"),
		},
		MatchStart:           matchStart,
		AmountPattern:        amountRe,
		CreditKeywords:       creditKeywords,
		StripFromDescription: []string{"SALDO ANTERIOR"},
		SingleAmountPolicy:   engine.SingleAmountDiscard,
		TrackBalance:         true,
		DefaultDirection:     models.DirectionDebit,
		Rate:                 pesoToDollarRate,
	}
}

// matchStart recognizes a "DD MMM CONCEPTO..." row. The three-letter token
// must be a Spanish month abbreviation; anything else is continuation text.
func matchStart(line string) (*engine.Start, bool) {
	m := startRe.FindStringSubmatch(line)
	if m == nil {
		return nil, false
	}
	month, ok := dateutils.MonthFromSpanish(m[2])
	if !ok {
		return nil, false
	}
	day, err := strconv.Atoi(m[1])
	if err != nil || day < 1 || day > 31 {
		return nil, false
	}

	rest := m[3]
	fragment := strings.TrimSpace(amountRe.ReplaceAllString(rest, ""))
	return &engine.Start{
		Day:      day,
		Month:    month,
		Fragment: fragment,
		Amounts:  engine.HarvestAmounts(amountRe, rest),
	}, true
}

// NewAdapter creates a parser for Banamex statements.
func NewAdapter(logger logging.Logger) models.Parser {
	return parser.NewFileParser(NewGrammar(), logger)
}

// NewAdapterWithExtractor creates a Banamex parser with a fixed extractor.
func NewAdapterWithExtractor(logger logging.Logger, extractor textdoc.Extractor) models.Parser {
	return parser.NewFileParserWithExtractor(NewGrammar(), logger, extractor)
}
