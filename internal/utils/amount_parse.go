package utils

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// commaDecimalLanguages lists languages whose number convention uses "," as
// the decimal separator and "." (or spaces) for digit grouping.
var commaDecimalLanguages = map[string]struct{}{
	"cs": {}, "da": {}, "de": {}, "el": {}, "es": {}, "fi": {}, "fr": {},
	"hu": {}, "id": {}, "it": {}, "nb": {}, "nl": {}, "no": {}, "pl": {},
	"pt": {}, "ro": {}, "ru": {}, "sk": {}, "sl": {}, "sv": {}, "tr": {},
	"uk": {}, "vi": {},
}

// ParseLocalizedAmount parses a raw JSON amount value (string or bare number)
// into a decimal, honouring the grouping and decimal separator conventions of
// the given locale. Bare JSON numbers are always in canonical form and bypass
// locale normalization.
func ParseLocalizedAmount(raw json.RawMessage, locale string) (decimal.Decimal, error) {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" || trimmed == "null" {
		return decimal.Zero, fmt.Errorf("amount is missing")
	}

	if strings.HasPrefix(trimmed, `"`) {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return decimal.Zero, fmt.Errorf("invalid amount %s: %w", trimmed, err)
		}
		return ParseLocalizedAmountString(s, locale)
	}

	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %s: %w", trimmed, err)
	}
	amount, err := decimal.NewFromString(n.String())
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q: %w", n.String(), err)
	}
	return amount, nil
}

// ParseLocalizedAmountString parses a localized numeric string into a decimal.
func ParseLocalizedAmountString(s string, locale string) (decimal.Decimal, error) {
	normalized := strings.TrimSpace(s)
	// Strip plain and non-breaking spaces used as group separators.
	normalized = strings.ReplaceAll(normalized, " ", "")
	normalized = strings.ReplaceAll(normalized, " ", "")

	if isCommaDecimalLocale(locale) {
		normalized = strings.ReplaceAll(normalized, ".", "")
		normalized = strings.ReplaceAll(normalized, ",", ".")
	} else {
		normalized = strings.ReplaceAll(normalized, ",", "")
	}

	amount, err := decimal.NewFromString(normalized)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q for locale %q: %w", s, locale, err)
	}
	return amount, nil
}

func isCommaDecimalLocale(locale string) bool {
	lang := strings.ToLower(locale)
	if idx := strings.IndexAny(lang, "_-"); idx >= 0 {
		lang = lang[:idx]
	}
	_, ok := commaDecimalLanguages[lang]
	return ok
}

// transactionDateLayouts are the accepted transaction date formats, tried in order.
var transactionDateLayouts = []string{
	"02 January 2006",
	"2 January 2006",
	"2006-01-02",
}

// ParseTransactionDate parses a transaction date string against the accepted layouts.
func ParseTransactionDate(s string) (time.Time, error) {
	for _, layout := range transactionDateLayouts {
		if date, err := time.Parse(layout, strings.TrimSpace(s)); err == nil {
			return date, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid transaction date %q", s)
}
