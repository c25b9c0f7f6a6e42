package parser

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/agencydesk/settlements/internal/fieldparse"
	"github.com/agencydesk/settlements/internal/strategy"
)

// Remittance advice layout: money paid out to the contractor, so the line
// amount is a credit (negative) under the signing convention.

var (
	reRMTotalInline = regexp.MustCompile(`(?:TOTAL REMITTANCE|REMITTANCE AMOUNT|AMOUNT REMITTED)[ \t:]+(\$?[\d,]+\.\d{2}-?)`)
	reRMTotalLine   = regexp.MustCompile(`^(?:TOTAL REMITTANCE|REMITTANCE AMOUNT)[ \t:]*$`)
	reRMCheck       = regexp.MustCompile(`CHECK(?: NUMBER| NO\.?)?[ \t:#]+(\d+)`)
	reRMRemitRef    = regexp.MustCompile(`REMITTANCE(?: NUMBER| NO\.?)[ \t:#]+(\w+)`)
	reRMDate        = regexp.MustCompile(`(?:SETTLEMENT|REMITTANCE) DATE[ \t:]+(\d{4}-\d{2}-\d{2}|\d{1,2}/\d{1,2}/\d{2}|\d{6})`)
	reRMPayee       = regexp.MustCompile(`(?m)^(?:PAY TO|PAYEE)[ \t:]+(.+)$`)
)

var rmAmount = []strategy.Strategy[amountHit]{
	strategy.Regex(reRMTotalInline, func(m []string) (amountHit, bool) {
		amt, ok := fieldparse.ParseSignedCurrency(m[1])
		if !ok {
			return amountHit{}, false
		}
		return amountHit{amount: amt.Neg(), isDebit: false}, true
	}),
	strategy.LineScan(reRMTotalLine, 3, func(line string) (amountHit, bool) {
		amt, ok := findCurrency(line)
		if !ok {
			return amountHit{}, false
		}
		return amountHit{amount: amt.Neg(), isDebit: false}, true
	}),
}

var rmReference = []strategy.Strategy[string]{
	strategy.Regex(reRMCheck, func(m []string) (string, bool) {
		return fieldparse.StripLeadingZeros(m[1]), true
	}),
	strategy.Regex(reRMRemitRef, func(m []string) (string, bool) {
		return fieldparse.StripLeadingZeros(m[1]), true
	}),
}

func parseRemittance(norm, raw string) ParseResult {
	var errs []string
	line := ExtractedLine{RawText: raw, IsDebit: true, Amount: decimal.Zero}

	if v, ok := strategy.First(norm, strategy.Regex(reRMPayee, func(m []string) (string, bool) {
		p := strings.TrimSpace(m[1])
		return p, p != ""
	})); ok {
		line.Description = "REMITTANCE " + v
	} else {
		line.Description = "REMITTANCE"
	}

	if v, ok := strategy.First(norm, strategy.Regex(reRMDate, func(m []string) (string, bool) {
		return fieldparse.ParseAnyDate(m[1])
	})); ok {
		line.ProcessDate = strPtr(v)
	}

	if hit, ok := strategy.First(norm, rmAmount...); ok {
		line.Amount = hit.amount
		line.IsDebit = hit.isDebit
	} else {
		errs = append(errs, "could not extract amount from remittance document")
	}

	if v, ok := strategy.First(norm, rmReference...); ok {
		line.Reference = strPtr(v)
	}

	return ParseResult{Lines: []ExtractedLine{line}, Errors: errs}
}
