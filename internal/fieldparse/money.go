package fieldparse

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParseCurrency parses a statement amount like "1,234.56" or "$518.00".
// Thousands separators and a leading dollar sign are stripped first.
func ParseCurrency(s string) (decimal.Decimal, bool) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// ParseSignedCurrency parses an amount that may carry the statement-style
// trailing minus ("3,890.63-" means -3890.63). A leading minus still works
// through the plain parse.
func ParseSignedCurrency(s string) (decimal.Decimal, bool) {
	s = strings.TrimSpace(s)
	neg := false
	if strings.HasSuffix(s, "-") {
		neg = true
		s = strings.TrimSuffix(s, "-")
	}
	d, ok := ParseCurrency(s)
	if !ok {
		return decimal.Zero, false
	}
	if neg {
		d = d.Neg()
	}
	return d, true
}
