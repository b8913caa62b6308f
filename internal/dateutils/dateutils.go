// Package dateutils provides date helpers for statement parsing: month
// token lookup, statement reference parsing, and year-rollover resolution.
package dateutils

import (
	"regexp"
	"strings"
	"time"
)

// DateLayoutISO is the date layout used in the output CSV.
const DateLayoutISO = "2006-01-02"

// englishMonths maps the lowercase three-letter tokens used in statement
// file names (citi-mar-2025.pdf) to months.
var englishMonths = map[string]time.Month{
	"jan": time.January,
	"feb": time.February,
	"mar": time.March,
	"apr": time.April,
	"may": time.May,
	"jun": time.June,
	"jul": time.July,
	"aug": time.August,
	"sep": time.September,
	"oct": time.October,
	"nov": time.November,
	"dec": time.December,
}

// spanishMonths maps the uppercase abbreviations printed on Banamex
// statements to months.
var spanishMonths = map[string]time.Month{
	"ENE": time.January,
	"FEB": time.February,
	"MAR": time.March,
	"ABR": time.April,
	"MAY": time.May,
	"JUN": time.June,
	"JUL": time.July,
	"AGO": time.August,
	"SEP": time.September,
	"OCT": time.October,
	"NOV": time.November,
	"DIC": time.December,
}

// MonthFromToken resolves a lowercase English three-letter month token.
func MonthFromToken(token string) (time.Month, bool) {
	m, ok := englishMonths[strings.ToLower(strings.TrimSpace(token))]
	return m, ok
}

// MonthFromSpanish resolves a Spanish month abbreviation as printed on
// Banamex statements (case-insensitive).
func MonthFromSpanish(token string) (time.Month, bool) {
	m, ok := spanishMonths[strings.ToUpper(strings.TrimSpace(token))]
	return m, ok
}

var statementRefRe = regexp.MustCompile(`-([A-Za-z]{3})-(\d{4})`)

// StatementPeriod is the month and year a statement covers, taken from its
// reference (usually the file name).
type StatementPeriod struct {
	Year  int
	Month time.Month
}

// ParseStatementRef extracts the statement period from a reference of the
// form "<anything>-<month>-<year>", e.g. "citi-mar-2025.pdf". When the
// pattern is absent or the month token is unknown, the given defaults
// apply.
func ParseStatementRef(ref string, defaultYear int, defaultMonth time.Month) StatementPeriod {
	period := StatementPeriod{Year: defaultYear, Month: defaultMonth}

	m := statementRefRe.FindStringSubmatch(ref)
	if m == nil {
		return period
	}

	month, ok := MonthFromToken(m[1])
	if !ok {
		return period
	}
	period.Month = month

	year := 0
	for _, r := range m[2] {
		year = year*10 + int(r-'0')
	}
	period.Year = year
	return period
}

// ResolveYear applies the year-rollover rule: a transaction whose month is
// later than the statement month belongs to the previous year (a December
// entry on a January statement).
func ResolveYear(txMonth time.Month, period StatementPeriod) int {
	if txMonth > period.Month {
		return period.Year - 1
	}
	return period.Year
}

// Date builds a UTC-midnight date, the canonical transaction timestamp.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// ToISODate formats a time.Time as YYYY-MM-DD.
func ToISODate(date time.Time) string {
	if date.IsZero() {
		return ""
	}
	return date.Format(DateLayoutISO)
}
