package engine

import "strings"

// Classify maps a single line to an event under the given grammar and
// context. It never mutates the context; the assembler owns state changes.
func Classify(g *Grammar, line string, ctx *ParseContext) Event {
	if g.Hook != nil {
		if ev, ok := g.Hook(line, ctx); ok {
			return ev
		}
	}

	for _, m := range g.PageMarkers {
		if m.Match(line) {
			return Event{Kind: EventPageBreak}
		}
	}

	for _, s := range g.SectionStarts {
		if s.Matcher.Match(line) {
			return Event{
				Kind:             EventSectionStart,
				Section:          s.Name,
				SectionDirection: s.Direction,
			}
		}
	}

	// Outside a section only section starts (above) are meaningful.
	if g.InSectionOnly && !ctx.InSection {
		return Event{Kind: EventNoise}
	}

	for _, m := range g.SectionEnds {
		if m.Match(line) {
			return Event{Kind: EventSectionEnd}
		}
	}

	for _, m := range g.Noise {
		if m.Match(line) {
			return Event{Kind: EventNoise}
		}
	}

	for _, m := range g.MetadataPrefixes {
		if m.Match(line) {
			// Keep the amounts, drop the text.
			return Event{
				Kind:    EventContinuation,
				Amounts: HarvestAmounts(g.AmountPattern, line),
			}
		}
	}

	if g.MatchStart != nil {
		if start, ok := g.MatchStart(line); ok {
			return Event{Kind: EventTransactionStart, Start: start}
		}
	}

	if g.UnmatchedIsNoise {
		return Event{Kind: EventNoise}
	}

	// Amount tokens never belong in a description; an amount-only line
	// yields an empty fragment.
	fragment := line
	if g.AmountPattern != nil {
		fragment = strings.TrimSpace(g.AmountPattern.ReplaceAllString(line, ""))
	}
	return Event{
		Kind:     EventContinuation,
		Fragment: fragment,
		Amounts:  HarvestAmounts(g.AmountPattern, line),
	}
}
