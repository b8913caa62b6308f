package engine

import (
	"msalas/statement-csv/internal/dateutils"
	"msalas/statement-csv/internal/logging"
	"msalas/statement-csv/internal/models"
	"msalas/statement-csv/internal/textdoc"
)

// Run parses a whole document under a grammar: every line is classified
// and folded into the assembler, page boundaries become page-break events,
// and the result is sorted by date (stable, so same-day entries keep their
// statement order).
func Run(doc *textdoc.Document, g *Grammar, period dateutils.StatementPeriod, logger logging.Logger) []models.Transaction {
	ctx := NewParseContext()
	asm := NewAssembler(g, period, ctx, logger)

	lastPage := 0
	for _, line := range doc.Lines() {
		if line.Page != lastPage {
			asm.Apply(Event{Kind: EventPageBreak})
			lastPage = line.Page
		}
		asm.Apply(Classify(g, line.Text, ctx))
	}

	transactions := asm.Finish()
	models.SortByDate(transactions)
	return transactions
}
