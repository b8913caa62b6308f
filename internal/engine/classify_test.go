package engine

import (
	"regexp"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"msalas/statement-csv/internal/dateutils"
)

var testAmountRe = regexp.MustCompile(`-?[\d,]+\.\d{2}`)

// testGrammar is a small synthetic layout: "BEGIN"/"CREDITS" open
// sections, "END" closes them, and transaction heads look like
// "7 MAR COFFEE SHOP 12.50".
func testGrammar() *Grammar {
	startRe := regexp.MustCompile(`^(\d{1,2}) ([A-Z]{3})\s+(.*)$`)
	return &Grammar{
		Format: "test",
		SectionStarts: []SectionMarker{
			{Matcher: Contains("BEGIN"), Name: "main"},
			{Matcher: Contains("CREDITS"), Name: "credits", Direction: "CRDT"},
		},
		SectionEnds:   []Matcher{Prefix("END")},
		InSectionOnly: true,
		PageMarkers:   []Matcher{Prefix("Page ")},
		Noise:         []Matcher{Prefix("HDR")},
		MetadataPrefixes: []Matcher{
			Prefix("REF "),
		},
		AmountPattern: testAmountRe,
		MatchStart: func(line string) (*Start, bool) {
			m := startRe.FindStringSubmatch(line)
			if m == nil {
				return nil, false
			}
			month, ok := dateutils.MonthFromToken(m[2])
			if !ok {
				return nil, false
			}
			day, _ := strconv.Atoi(m[1])
			rest := m[3]
			fragment := strings.TrimSpace(testAmountRe.ReplaceAllString(rest, ""))
			return &Start{
				Day:      day,
				Month:    month,
				Fragment: fragment,
				Amounts:  HarvestAmounts(testAmountRe, rest),
			}, true
		},
		SingleAmountPolicy: SingleAmountUse,
		DefaultDirection:   "DBIT",
	}
}

func TestClassify_SectionMarkers(t *testing.T) {
	g := testGrammar()
	ctx := NewParseContext()

	ev := Classify(g, "BEGIN TRANSACTIONS", ctx)
	assert.Equal(t, EventSectionStart, ev.Kind)
	assert.Equal(t, "main", ev.Section)
	assert.Equal(t, "", ev.SectionDirection)

	ev = Classify(g, "CREDITS THIS PERIOD", ctx)
	assert.Equal(t, EventSectionStart, ev.Kind)
	assert.Equal(t, "CRDT", ev.SectionDirection)

	ctx.InSection = true
	ev = Classify(g, "END OF SECTION", ctx)
	assert.Equal(t, EventSectionEnd, ev.Kind)
}

func TestClassify_OutsideSectionIsNoise(t *testing.T) {
	g := testGrammar()
	ctx := NewParseContext()

	// A perfectly good transaction line is ignored outside a section.
	ev := Classify(g, "7 MAR COFFEE SHOP 12.50", ctx)
	assert.Equal(t, EventNoise, ev.Kind)
}

func TestClassify_TransactionStart(t *testing.T) {
	g := testGrammar()
	ctx := NewParseContext()
	ctx.InSection = true

	ev := Classify(g, "7 MAR COFFEE SHOP 12.50 1,000.00", ctx)
	require.Equal(t, EventTransactionStart, ev.Kind)
	require.NotNil(t, ev.Start)
	assert.Equal(t, 7, ev.Start.Day)
	assert.Equal(t, time.March, ev.Start.Month)
	assert.Equal(t, "COFFEE SHOP", ev.Start.Fragment)
	require.Len(t, ev.Start.Amounts, 2)
	assert.Equal(t, "12.5", ev.Start.Amounts[0].Value.String())
	assert.Equal(t, "1000", ev.Start.Amounts[1].Value.String())
}

func TestClassify_MetadataKeepsAmountsDropsText(t *testing.T) {
	g := testGrammar()
	ctx := NewParseContext()
	ctx.InSection = true

	ev := Classify(g, "REF 0012345 99.99", ctx)
	assert.Equal(t, EventContinuation, ev.Kind)
	assert.Equal(t, "", ev.Fragment)
	require.Len(t, ev.Amounts, 1)
	assert.Equal(t, "99.99", ev.Amounts[0].Value.String())
}

func TestClassify_ContinuationHarvestsAmounts(t *testing.T) {
	g := testGrammar()
	ctx := NewParseContext()
	ctx.InSection = true

	ev := Classify(g, "EXTRA DETAIL -45.00", ctx)
	assert.Equal(t, EventContinuation, ev.Kind)
	assert.Equal(t, "EXTRA DETAIL", ev.Fragment)
	require.Len(t, ev.Amounts, 1)
	assert.True(t, ev.Amounts[0].Negative)
	assert.Equal(t, "45", ev.Amounts[0].Value.String())
}

func TestClassify_HookTakesPriority(t *testing.T) {
	g := testGrammar()
	g.Hook = func(line string, ctx *ParseContext) (Event, bool) {
		if strings.HasPrefix(line, "CARDHOLDER ") {
			return Event{Kind: EventHolder, Holder: strings.TrimPrefix(line, "CARDHOLDER ")}, true
		}
		return Event{}, false
	}
	ctx := NewParseContext()

	ev := Classify(g, "CARDHOLDER JANE DOE", ctx)
	assert.Equal(t, EventHolder, ev.Kind)
	assert.Equal(t, "JANE DOE", ev.Holder)

	// Unhooked lines still flow through the standard classifier.
	ev = Classify(g, "BEGIN TRANSACTIONS", ctx)
	assert.Equal(t, EventSectionStart, ev.Kind)
}

func TestClassify_PageMarker(t *testing.T) {
	g := testGrammar()
	ctx := NewParseContext()

	ev := Classify(g, "Page 2 of 5", ctx)
	assert.Equal(t, EventPageBreak, ev.Kind)
}

func TestClassify_NoiseInsideSection(t *testing.T) {
	g := testGrammar()
	ctx := NewParseContext()
	ctx.InSection = true

	ev := Classify(g, "HDR DATE DESCRIPTION AMOUNT", ctx)
	assert.Equal(t, EventNoise, ev.Kind)
}

func TestClassify_UnmatchedIsNoise(t *testing.T) {
	g := testGrammar()
	g.UnmatchedIsNoise = true
	ctx := NewParseContext()
	ctx.InSection = true

	ev := Classify(g, "stray text the layout never produces", ctx)
	assert.Equal(t, EventNoise, ev.Kind)
}

func TestHarvestAmounts_SkipsUnparseable(t *testing.T) {
	amounts := HarvestAmounts(testAmountRe, "no amounts here")
	assert.Empty(t, amounts)

	amounts = HarvestAmounts(nil, "12.50")
	assert.Empty(t, amounts)
}
