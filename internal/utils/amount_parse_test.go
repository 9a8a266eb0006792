package utils_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/avinashn/gl_journal_app/internal/utils"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLocalizedAmount(t *testing.T) {
	testCases := []struct {
		name     string
		raw      string
		locale   string
		expected string
	}{
		{name: "bare number", raw: `100`, locale: "en", expected: "100"},
		{name: "bare decimal number", raw: `25.5`, locale: "de", expected: "25.5"},
		{name: "plain string", raw: `"100"`, locale: "en", expected: "100"},
		{name: "english grouping", raw: `"1,000.50"`, locale: "en", expected: "1000.50"},
		{name: "german grouping", raw: `"1.000,50"`, locale: "de", expected: "1000.50"},
		{name: "french spaced grouping", raw: `"1 000,50"`, locale: "fr", expected: "1000.50"},
		{name: "locale with region", raw: `"1.000,50"`, locale: "de_DE", expected: "1000.50"},
		{name: "no locale defaults to dot decimal", raw: `"1,000.50"`, locale: "", expected: "1000.50"},
		{name: "zero", raw: `"0"`, locale: "en", expected: "0"},
		{name: "negative", raw: `"-42.10"`, locale: "en", expected: "-42.10"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			amount, err := utils.ParseLocalizedAmount(json.RawMessage(tc.raw), tc.locale)
			require.NoError(t, err)
			assert.True(t, amount.Equal(decimal.RequireFromString(tc.expected)),
				"expected %s, got %s", tc.expected, amount)
		})
	}
}

func TestParseLocalizedAmount_Invalid(t *testing.T) {
	testCases := []struct {
		name   string
		raw    string
		locale string
	}{
		{name: "missing", raw: ``, locale: "en"},
		{name: "null", raw: `null`, locale: "en"},
		{name: "non numeric string", raw: `"abc"`, locale: "en"},
		{name: "boolean", raw: `true`, locale: "en"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := utils.ParseLocalizedAmount(json.RawMessage(tc.raw), tc.locale)
			assert.Error(t, err)
		})
	}
}

func TestParseTransactionDate(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected time.Time
	}{
		{name: "padded day long form", input: "04 March 2024", expected: time.Date(2024, time.March, 4, 0, 0, 0, 0, time.UTC)},
		{name: "unpadded day long form", input: "4 March 2024", expected: time.Date(2024, time.March, 4, 0, 0, 0, 0, time.UTC)},
		{name: "iso date", input: "2024-03-04", expected: time.Date(2024, time.March, 4, 0, 0, 0, 0, time.UTC)},
		{name: "surrounding whitespace", input: "  04 March 2024 ", expected: time.Date(2024, time.March, 4, 0, 0, 0, 0, time.UTC)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			date, err := utils.ParseTransactionDate(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, date)
		})
	}
}

func TestParseTransactionDate_Invalid(t *testing.T) {
	for _, input := range []string{"", "yesterday", "2024/03/04", "March 2024"} {
		_, err := utils.ParseTransactionDate(input)
		assert.Error(t, err, "input %q", input)
	}
}
