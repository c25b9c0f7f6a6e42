package parser

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/agencydesk/settlements/internal/fieldparse"
	"github.com/agencydesk/settlements/internal/strategy"
)

// Posting ticket layout. Same pipeline shape as credit/debit with its own
// header vocabulary: PT NUMBER, ACCOUNT NUMBER, DEBIT. Amounts may be
// comma-grouped and carry the statement-style trailing minus.

var (
	rePTNumber     = regexp.MustCompile(`PT NUMBER[ \t:#]+(\d+)`)
	rePTNumberLine = regexp.MustCompile(`^PT NUMBER[ \t:]*$`)
	reDigitsToken  = regexp.MustCompile(`\b(\d+)\b`)

	rePTAccount = regexp.MustCompile(`ACCOUNT NUMBER[ \t:#]+(\d+)`)

	rePTTxnType = regexp.MustCompile(`(?m)^POSTING TYPE[ \t]*[/:][ \t]*(.+)$`)

	rePTDescLabel  = regexp.MustCompile(`(?m)^DESCRIPTION[ \t:]+(.+)$`)
	rePTDescHeader = regexp.MustCompile(`^DESCRIPTION$`)

	rePTDebitInline = regexp.MustCompile(`DEBIT[ \t:]+(\$?[\d,]+\.\d{2}-?)`)
	rePTDebitLine   = regexp.MustCompile(`^DEBIT[ \t:]*$`)
	rePTDateLabel   = regexp.MustCompile(`(?:POSTING|PROCESS) DATE[ \t:]+(\d{2}/\d{2}/\d{2}|\d{6})`)
)

var ptReference = []strategy.Strategy[string]{
	strategy.Regex(rePTNumber, func(m []string) (string, bool) {
		return fieldparse.StripLeadingZeros(m[1]), true
	}),
	strategy.LineScan(rePTNumberLine, 2, func(line string) (string, bool) {
		m := reDigitsToken.FindStringSubmatch(line)
		if m == nil {
			return "", false
		}
		return fieldparse.StripLeadingZeros(m[1]), true
	}),
}

var ptAccount = []strategy.Strategy[string]{
	strategy.Regex(rePTAccount, func(m []string) (string, bool) {
		return fieldparse.StripLeadingZeros(m[1]), true
	}),
}

var ptDescription = []strategy.Strategy[string]{
	strategy.Regex(rePTDescLabel, func(m []string) (string, bool) {
		d := strings.TrimSpace(m[1])
		return d, d != "" && !isColumnHeader(d)
	}),
	strategy.LineScan(rePTDescHeader, 2, func(line string) (string, bool) {
		d := strings.TrimSpace(line)
		return d, d != "" && !isColumnHeader(line)
	}),
}

// ptAmount: the DEBIT label with the value inline, or alone on its own
// line with the value below. A trailing-minus value is a reversal: kept
// negative and flagged as a credit.
var ptAmount = []strategy.Strategy[amountHit]{
	strategy.Regex(rePTDebitInline, func(m []string) (amountHit, bool) {
		amt, ok := fieldparse.ParseSignedCurrency(m[1])
		if !ok {
			return amountHit{}, false
		}
		return amountHit{amount: amt, isDebit: !amt.IsNegative()}, true
	}),
	strategy.LineScan(rePTDebitLine, 3, func(line string) (amountHit, bool) {
		amt, ok := findCurrency(line)
		if !ok {
			return amountHit{}, false
		}
		return amountHit{amount: amt, isDebit: !amt.IsNegative()}, true
	}),
}

var ptDate = []strategy.Strategy[string]{
	strategy.Regex(rePTDateLabel, func(m []string) (string, bool) { return fieldparse.ParseAnyDate(m[1]) }),
}

func parsePostingTicket(norm, raw string) ParseResult {
	var errs []string
	line := ExtractedLine{RawText: raw, IsDebit: true, Amount: decimal.Zero}

	if v, ok := strategy.First(norm, strategy.Regex(rePTTxnType, func(m []string) (string, bool) {
		t := strings.TrimSpace(m[1])
		return t, t != ""
	})); ok {
		line.TransactionType = strPtr(v)
	}

	if v, ok := strategy.First(norm, ptDescription...); ok {
		line.Description = v
	} else if line.TransactionType != nil {
		line.Description = *line.TransactionType
	} else {
		line.Description = "Unknown"
	}

	if v, ok := strategy.First(norm, ptDate...); ok {
		line.ProcessDate = strPtr(v)
	}
	if v, ok := strategy.First(norm, ptAccount...); ok {
		line.AccountNumber = strPtr(v)
	}

	if hit, ok := strategy.First(norm, ptAmount...); ok {
		line.Amount = hit.amount
		line.IsDebit = hit.isDebit
	} else {
		errs = append(errs, "could not extract amount from posting ticket document")
	}

	if v, ok := strategy.First(norm, ptReference...); ok {
		line.Reference = strPtr(v)
	}

	return ParseResult{Lines: []ExtractedLine{line}, Errors: errs}
}
