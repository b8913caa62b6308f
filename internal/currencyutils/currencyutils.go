// Package currencyutils provides amount parsing and decimal helpers shared
// by the statement parsers.
package currencyutils

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var symbolRe = regexp.MustCompile(`[€$£¥\s]`)

// ParseAmount parses a statement amount token into a decimal value. It
// accepts currency symbols, thousands separators, embedded spaces (some
// layouts split the final decimal digits, "1,234.5 6"), and either a
// leading or a trailing minus sign.
func ParseAmount(amountStr string) (decimal.Decimal, error) {
	if amountStr == "" {
		return decimal.Zero, nil
	}

	standardized := StandardizeAmount(amountStr)

	amount, err := decimal.NewFromString(standardized)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to parse amount '%s': %w", amountStr, err)
	}

	return amount, nil
}

// StandardizeAmount normalizes an amount token into a form accepted by
// decimal.NewFromString: "-$1,234.5 6" becomes "-1234.56" and the trailing
// minus of "850.00-" moves to the front.
func StandardizeAmount(amountStr string) string {
	amountStr = strings.TrimSpace(amountStr)

	negative := false
	if strings.HasSuffix(amountStr, "-") {
		negative = true
		amountStr = strings.TrimSuffix(amountStr, "-")
	}
	if strings.HasPrefix(amountStr, "-") {
		negative = true
		amountStr = strings.TrimPrefix(amountStr, "-")
	}

	amountStr = symbolRe.ReplaceAllString(amountStr, "")
	amountStr = strings.ReplaceAll(amountStr, ",", "")
	amountStr = strings.ReplaceAll(amountStr, "'", "")

	if negative {
		amountStr = "-" + amountStr
	}
	return amountStr
}

// ConvertAtRate divides an amount by a fixed exchange rate and rounds to
// two decimal places. Used for peso-denominated statements reported in USD.
func ConvertAtRate(amount, rate decimal.Decimal) decimal.Decimal {
	if rate.IsZero() {
		return amount
	}
	return amount.Div(rate).Round(2)
}

// FormatAmount renders an amount with two decimal places and no thousands
// separators, the form used in the output CSV.
func FormatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}

// IsNegative reports whether an amount is below zero.
func IsNegative(amount decimal.Decimal) bool {
	return amount.LessThan(decimal.Zero)
}

// IsZero reports whether an amount equals zero.
func IsZero(amount decimal.Decimal) bool {
	return amount.Equal(decimal.Zero)
}
