package parser

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/agencydesk/settlements/internal/fieldparse"
	"github.com/agencydesk/settlements/internal/strategy"
)

// Advance layout: cash advanced against future settlement, always a debit.

var (
	reADAmount = regexp.MustCompile(`ADVANCE(?: AMOUNT)?[ \t:]+(\$?[\d,]+\.\d{2})`)
	reADAuth   = regexp.MustCompile(`(?:AUTHORIZATION|AUTH)(?: NUMBER| NO\.?| CODE)?[ \t:#]+(\w+)`)
	reADNumber = regexp.MustCompile(`ADVANCE(?: NUMBER| NO\.?)[ \t:#]+(\d+)`)
	reADDate   = regexp.MustCompile(`(?:ADVANCE|ISSUE) DATE[ \t:]+(\d{4}-\d{2}-\d{2}|\d{1,2}/\d{1,2}/\d{2}|\d{6})`)
	reADPurposeLabel = regexp.MustCompile(`(?m)^(?:PURPOSE|MEMO)[ \t:]+(.+)$`)
)

var adReference = []strategy.Strategy[string]{
	strategy.Regex(reADNumber, func(m []string) (string, bool) {
		return fieldparse.StripLeadingZeros(m[1]), true
	}),
	strategy.Regex(reADAuth, func(m []string) (string, bool) { return m[1], true }),
}

func parseAdvance(norm, raw string) ParseResult {
	var errs []string
	line := ExtractedLine{RawText: raw, IsDebit: true, Amount: decimal.Zero, Description: "ADVANCE"}

	if v, ok := strategy.First(norm, strategy.Regex(reADPurposeLabel, func(m []string) (string, bool) {
		p := strings.TrimSpace(m[1])
		return p, p != ""
	})); ok {
		line.Description = "ADVANCE " + v
	}

	if v, ok := strategy.First(norm, strategy.Regex(reADDate, func(m []string) (string, bool) {
		return fieldparse.ParseAnyDate(m[1])
	})); ok {
		line.EntryDate = strPtr(v)
	}

	if v, ok := strategy.First(norm, strategy.Regex(reADAmount, func(m []string) (string, bool) { return m[1], true })); ok {
		if amt, ok := fieldparse.ParseCurrency(v); ok {
			line.Amount = amt
		} else {
			errs = append(errs, "could not extract amount from advance document")
		}
	} else {
		errs = append(errs, "could not extract amount from advance document")
	}

	if v, ok := strategy.First(norm, adReference...); ok {
		line.Reference = strPtr(v)
	}

	return ParseResult{Lines: []ExtractedLine{line}, Errors: errs}
}
