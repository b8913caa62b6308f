package parsererror

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSourceNotFoundError(t *testing.T) {
	underlying := fs.ErrNotExist
	err := &SourceNotFoundError{
		FilePath: "statements/banamex-mar-2025.pdf",
		Err:      underlying,
	}

	assert.Contains(t, err.Error(), "statements/banamex-mar-2025.pdf")
	assert.True(t, errors.Is(err, fs.ErrNotExist))

	var target *SourceNotFoundError
	assert.True(t, errors.As(err, &target))
}

func TestParseError(t *testing.T) {
	tests := []struct {
		name     string
		err      *ParseError
		expected string
	}{
		{
			name: "amount parse failure",
			err: &ParseError{
				Format: "banamex",
				Field:  "amount",
				Value:  "1,23x.45",
				Err:    errors.New("invalid decimal"),
			},
			expected: "banamex: failed to parse amount='1,23x.45': invalid decimal",
		},
		{
			name: "empty date value",
			err: &ParseError{
				Format: "citi",
				Field:  "date",
				Value:  "",
				Err:    errors.New("empty date"),
			},
			expected: "citi: failed to parse date='': empty date",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestParseError_Unwrap(t *testing.T) {
	originalErr := errors.New("original error")
	parseErr := &ParseError{
		Format: "chase",
		Field:  "amount",
		Value:  "invalid",
		Err:    originalErr,
	}

	assert.Equal(t, originalErr, parseErr.Unwrap())
	assert.True(t, errors.Is(parseErr, originalErr))
}

func TestNoTransactionsError(t *testing.T) {
	err := &NoTransactionsError{
		FilePath: "/data/wellsfargo-feb-2025.txt",
		Format:   "wellsfargo",
	}

	assert.Equal(t,
		"wellsfargo: no transactions found in /data/wellsfargo-feb-2025.txt",
		err.Error())

	var target *NoTransactionsError
	assert.True(t, errors.As(error(err), &target))
}

func TestInvalidFormatError(t *testing.T) {
	err := &InvalidFormatError{
		FilePath:       "/data/file.csv",
		ExpectedFormat: "Chase statement text",
		Msg:            "no recognizable section markers",
	}

	assert.Equal(t,
		"invalid format in file '/data/file.csv': no recognizable section markers. Expected: Chase statement text",
		err.Error())
}

func TestCategorizationError(t *testing.T) {
	originalErr := errors.New("API timeout")
	catErr := &CategorizationError{
		Description: "OXXO GAS MONTERREY",
		Strategy:    "GeminiStrategy",
		Err:         originalErr,
	}

	assert.Equal(t,
		"categorization failed for OXXO GAS MONTERREY using GeminiStrategy: API timeout",
		catErr.Error())
	assert.Equal(t, originalErr, catErr.Unwrap())
	assert.True(t, errors.Is(catErr, originalErr))
}
