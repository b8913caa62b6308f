package engine

import (
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"msalas/statement-csv/internal/currencyutils"
	"msalas/statement-csv/internal/dateutils"
	"msalas/statement-csv/internal/logging"
	"msalas/statement-csv/internal/models"
)

var spaceRe = regexp.MustCompile(`\s+`)

// pending is a transaction under construction.
type pending struct {
	day       int
	month     time.Month
	fragments []string
	amounts   []Amount
	direction string
	holder    string
}

// Assembler folds classified events into transactions. It is the one state
// machine shared by all formats; the grammar supplies the per-format
// policies.
type Assembler struct {
	grammar *Grammar
	period  dateutils.StatementPeriod
	ctx     *ParseContext
	log     logging.Logger

	open *pending
	// stash holds a dated transaction that closed without any amount, so
	// a later amount-only line can still claim it (foreign purchases
	// whose conversion line lands after an intervening heading).
	stash *pending
	out   []models.Transaction
}

// NewAssembler creates an assembler for one document.
func NewAssembler(g *Grammar, period dateutils.StatementPeriod, ctx *ParseContext, logger logging.Logger) *Assembler {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Assembler{
		grammar: g,
		period:  period,
		ctx:     ctx,
		log:     logger,
	}
}

// Apply advances the state machine by one event.
func (a *Assembler) Apply(ev Event) {
	switch ev.Kind {
	case EventNoise:

	case EventSectionStart:
		// No flush here: a transaction opened before a page break stays
		// open while its section reopens on the next page.
		a.ctx.InSection = true
		a.ctx.Section = ev.Section
		a.ctx.SectionDirection = ev.SectionDirection
		a.ctx.PendingDescription = ""

	case EventSectionEnd:
		a.finalize()
		a.clearSection()

	case EventPageBreak:
		// A page break never flushes: transactions may continue on the
		// next page. Section state survives only when the grammar says so.
		if !a.grammar.KeepSectionAcrossPages {
			a.clearSection()
		}

	case EventTransactionStart:
		a.finalize()
		// Amount lines always directly follow their transaction; once a
		// new one starts, an unresolved predecessor is unrecoverable.
		a.stash = nil
		p := &pending{
			day:       ev.Start.Day,
			month:     ev.Start.Month,
			amounts:   ev.Start.Amounts,
			direction: a.ctx.SectionDirection,
			holder:    a.ctx.Holder,
		}
		fragment := ev.Start.Fragment
		if fragment == "" && a.ctx.PendingDescription != "" {
			// A description line directly above a bare dated line names
			// this transaction. Starts with their own inline text discard
			// the buffer instead.
			fragment = a.ctx.PendingDescription
		}
		a.ctx.PendingDescription = ""
		if fragment != "" {
			p.fragments = append(p.fragments, fragment)
		}
		a.open = p

	case EventContinuation:
		if a.open != nil {
			if a.grammar.BufferTextAfterAmounts && len(a.open.amounts) > 0 &&
				ev.Fragment != "" && len(ev.Amounts) == 0 {
				// The open transaction is already complete; this text
				// names the merchant of the next dated line.
				a.ctx.PendingDescription = ev.Fragment
				return
			}
			if ev.Fragment != "" {
				a.open.fragments = append(a.open.fragments, ev.Fragment)
			}
			a.open.amounts = append(a.open.amounts, ev.Amounts...)
			return
		}
		if ev.Fragment != "" && len(ev.Amounts) == 0 {
			a.ctx.PendingDescription = ev.Fragment
			return
		}
		if len(ev.Amounts) > 0 {
			if s := a.stash; s != nil {
				// The dated description set aside earlier resolves
				// against this line's amounts and reopens.
				a.stash = nil
				if ev.Fragment != "" {
					s.fragments = append(s.fragments, ev.Fragment)
				}
				s.amounts = append(s.amounts, ev.Amounts...)
				a.open = s
				return
			}
			a.log.Debug("Dropping orphan amounts outside a transaction",
				logging.Field{Key: logging.FieldFormat, Value: a.grammar.Format},
				logging.Field{Key: logging.FieldCount, Value: len(ev.Amounts)})
		}

	case EventHolder:
		if ev.Holder == a.ctx.Holder {
			// Repeated headings for the active holder, such as the
			// cont'd heading at the top of a new page, do not close an
			// open transaction.
			return
		}
		a.finalize()
		a.ctx.Holder = ev.Holder
	}
}

// Finish flushes the open transaction and returns everything assembled.
func (a *Assembler) Finish() []models.Transaction {
	a.finalize()
	return a.out
}

func (a *Assembler) clearSection() {
	a.ctx.InSection = false
	a.ctx.Section = ""
	a.ctx.SectionDirection = ""
	a.ctx.PendingDescription = ""
	a.stash = nil
}

// finalize closes the open transaction according to the amount-count
// table: zero amounts discards, one amount follows the grammar policy,
// two or more amounts mean transaction amount first and balance last.
func (a *Assembler) finalize() {
	p := a.open
	if p == nil {
		return
	}
	a.open = nil

	description := a.cleanDescription(p.fragments)

	n := len(p.amounts)
	if n == 0 {
		if description != "" {
			// No amount ever arrived. Set the transaction aside: an
			// amount-only line may still resolve it before the next
			// boundary.
			a.stash = p
		}
		return
	}

	var amount Amount
	var balance *decimal.Decimal

	switch {
	case n == 1:
		if a.grammar.SingleAmountPolicy == SingleAmountDiscard {
			// The lone figure is a balance line (opening balance rows).
			if a.grammar.TrackBalance {
				a.ctx.UpdateBalance(p.amounts[0].Signed())
			}
			return
		}
		amount = p.amounts[0]
	default:
		amount = p.amounts[0]
		b := p.amounts[n-1].Signed()
		balance = &b
	}

	var delta decimal.Decimal
	var hasDelta bool
	if balance != nil && a.grammar.TrackBalance {
		delta, hasDelta = a.ctx.UpdateBalance(*balance)
	}

	if description == "" {
		a.log.Debug("Discarding transaction with empty description",
			logging.Field{Key: logging.FieldFormat, Value: a.grammar.Format})
		return
	}

	direction := a.resolveDirection(description, amount, p.direction, delta, hasDelta)

	value := amount.Value
	if !a.grammar.Rate.IsZero() {
		value = currencyutils.ConvertAtRate(value, a.grammar.Rate)
	}

	year := dateutils.ResolveYear(p.month, a.period)
	a.out = append(a.out, models.Transaction{
		Date:        dateutils.Date(year, p.month, p.day),
		Description: description,
		Amount:      value,
		Direction:   direction,
		Cardholder:  p.holder,
	})
}

// resolveDirection applies the priority order: credit keyword, explicit
// sign or section direction, balance delta, format default.
func (a *Assembler) resolveDirection(description string, amount Amount, sectionDir string, delta decimal.Decimal, hasDelta bool) string {
	if a.grammar.HasCreditKeyword(description) {
		return models.DirectionCredit
	}
	if amount.Negative {
		return models.DirectionCredit
	}
	if sectionDir != "" {
		return sectionDir
	}
	if hasDelta {
		if delta.IsPositive() {
			return models.DirectionCredit
		}
		if delta.IsNegative() {
			return models.DirectionDebit
		}
	}
	if a.grammar.DefaultDirection != "" {
		return a.grammar.DefaultDirection
	}
	return models.DirectionDebit
}

func (a *Assembler) cleanDescription(fragments []string) string {
	description := strings.Join(fragments, " ")
	for _, phrase := range a.grammar.StripFromDescription {
		description = strings.ReplaceAll(description, phrase, "")
	}
	return strings.TrimSpace(spaceRe.ReplaceAllString(description, " "))
}
