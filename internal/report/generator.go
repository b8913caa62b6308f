// Package report builds per-category spending summaries from categorized
// transactions.
package report

import (
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"github.com/shopspring/decimal"

	"msalas/statement-csv/internal/logging"
	"msalas/statement-csv/internal/models"
)

// Row is one category line in the summary. Net is debits minus credits,
// so refunds and payments reduce the category's spend.
type Row struct {
	Category string
	Debit    decimal.Decimal
	Credit   decimal.Decimal
	Net      decimal.Decimal
}

// Generator aggregates transactions into category rows.
type Generator struct {
	logger logging.Logger
}

// NewGenerator creates a summary generator.
func NewGenerator(logger logging.Logger) *Generator {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Generator{logger: logger}
}

// Summarize groups transactions by category and totals each side. Rows
// come back sorted by net spend, biggest first; ties break by name so
// output is deterministic.
func (g *Generator) Summarize(transactions []models.Transaction) []Row {
	byCategory := make(map[string]*Row)
	for _, tx := range transactions {
		category := tx.Category
		if category == "" {
			category = "Uncategorized"
		}
		row, ok := byCategory[category]
		if !ok {
			row = &Row{Category: category}
			byCategory[category] = row
		}
		if tx.IsCredit() {
			row.Credit = row.Credit.Add(tx.Amount)
		} else {
			row.Debit = row.Debit.Add(tx.Amount)
		}
	}

	rows := make([]Row, 0, len(byCategory))
	for _, row := range byCategory {
		row.Net = row.Debit.Sub(row.Credit)
		rows = append(rows, *row)
	}
	sort.Slice(rows, func(i, j int) bool {
		if !rows[i].Net.Equal(rows[j].Net) {
			return rows[i].Net.GreaterThan(rows[j].Net)
		}
		return rows[i].Category < rows[j].Category
	})

	g.logger.Debug("Built category summary",
		logging.Field{Key: logging.FieldCount, Value: len(rows)})
	return rows
}

// Render writes the summary as an aligned text table with a totals line.
func (g *Generator) Render(w io.Writer, rows []Row) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	if _, err := fmt.Fprintln(tw, "Category\tDebit\tCredit\tNet"); err != nil {
		return err
	}

	var totalDebit, totalCredit decimal.Decimal
	for _, row := range rows {
		totalDebit = totalDebit.Add(row.Debit)
		totalCredit = totalCredit.Add(row.Credit)
		if _, err := fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			row.Category,
			row.Debit.StringFixed(2),
			row.Credit.StringFixed(2),
			row.Net.StringFixed(2)); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(tw, "Total\t%s\t%s\t%s\n",
		totalDebit.StringFixed(2),
		totalCredit.StringFixed(2),
		totalDebit.Sub(totalCredit).StringFixed(2)); err != nil {
		return err
	}

	return tw.Flush()
}
