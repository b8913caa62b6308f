package currencyutils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		wantErr  bool
	}{
		{name: "plain", input: "1234.56", expected: "1234.56"},
		{name: "thousands separator", input: "1,234.56", expected: "1234.56"},
		{name: "dollar sign", input: "$1,234.56", expected: "1234.56"},
		{name: "leading minus with symbol", input: "-$850.00", expected: "-850"},
		{name: "trailing minus", input: "850.00-", expected: "-850"},
		{name: "split decimal digits", input: "1,234.5 6", expected: "1234.56"},
		{name: "empty is zero", input: "", expected: "0"},
		{name: "garbage", input: "abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAmount(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			expected, err := decimal.NewFromString(tt.expected)
			require.NoError(t, err)
			assert.True(t, got.Equal(expected), "got %s, want %s", got, expected)
		})
	}
}

func TestStandardizeAmount(t *testing.T) {
	assert.Equal(t, "-1234.56", StandardizeAmount("-$1,234.5 6"))
	assert.Equal(t, "-17890.00", StandardizeAmount("17,890.00-"))
	assert.Equal(t, "1234.56", StandardizeAmount("1'234.56"))
}

func TestConvertAtRate(t *testing.T) {
	rate := decimal.NewFromFloat(18.5)

	tests := []struct {
		name     string
		raw      string
		expected string
	}{
		{name: "even division", raw: "185.00", expected: "10"},
		{name: "rounds to two places", raw: "100.00", expected: "5.41"},
		{name: "large amount", raw: "17890.00", expected: "967.03"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, err := decimal.NewFromString(tt.raw)
			require.NoError(t, err)
			expected, err := decimal.NewFromString(tt.expected)
			require.NoError(t, err)
			got := ConvertAtRate(raw, rate)
			assert.True(t, got.Equal(expected), "got %s, want %s", got, expected)
		})
	}
}

func TestConvertAtRate_ZeroRateIsIdentity(t *testing.T) {
	amount := decimal.NewFromInt(100)
	assert.True(t, ConvertAtRate(amount, decimal.Zero).Equal(amount))
}

func TestFormatAmount(t *testing.T) {
	amount := decimal.NewFromFloat(1234.5)
	assert.Equal(t, "1234.50", FormatAmount(amount))
}

func TestSignHelpers(t *testing.T) {
	assert.True(t, IsNegative(decimal.NewFromInt(-1)))
	assert.False(t, IsNegative(decimal.Zero))
	assert.True(t, IsZero(decimal.Zero))
	assert.False(t, IsZero(decimal.NewFromInt(2)))
}
