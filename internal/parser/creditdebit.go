package parser

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/agencydesk/settlements/internal/fieldparse"
	"github.com/agencydesk/settlements/internal/strategy"
)

// Credit/Debit notification layout. Headers and field positions below are
// tuned to real OCR degradation of these pages: tab- vs newline-separated
// tables, headers alone on a line, amounts under a separate column header.

var (
	reCDTxnTypeInline = regexp.MustCompile(`(?m)^TRANSACTION TYPE[ \t]*[/:][ \t]*(.+)$`)
	reCDTxnTypeHeader = regexp.MustCompile(`^TRANSACTION TYPE[ \t]*[/:]?$`)

	reCDTabTableHeader = regexp.MustCompile(`^DESCRIPTION\tDEBITS(\tCREDITS)?$`)
	reCDDescHeader     = regexp.MustCompile(`^DESCRIPTION$`)

	reCDEntryDate       = regexp.MustCompile(`N\.?V\.?L\.?[ \t]+ENTRY[ \t:]+(\d{6})`)
	reCDEntryDateLabel  = regexp.MustCompile(`(?m)^ENTRY(?: DATE)?[ \t:]+(\d{6})`)
	reCDProcessDate     = regexp.MustCompile(`PROCESS DATE[ \t:]+(\d{6})`)
	reCDProcessDateLine = regexp.MustCompile(`^PROCESS DATE[ \t:]*$`)
	reSixDigits         = regexp.MustCompile(`\b(\d{6})\b`)

	reCDAccount = regexp.MustCompile(`ACCOUNT(?: NUMBER)?[ \t:#]+(\d+)`)

	reCDDebitsHeader     = regexp.MustCompile(`^DEBITS$`)
	reCDCreditsHeader    = regexp.MustCompile(`^CREDITS$`)
	reCDNetBalanceInline = regexp.MustCompile(`NET BALANCE(?: DUE)?[ \t]*[:\t]?[ \t]*(\$?[\d,]+\.\d{2}-?)`)
	reCDNetBalanceLine   = regexp.MustCompile(`^NET BALANCE(?: DUE)?[ \t:]*$`)
	reCDAmountAnchor     = regexp.MustCompile(`\bAMOUNT\b`)

	reCDUnit       = regexp.MustCompile(`\bUNIT(?: NUMBER| NO\.?)?[ \t:#]+(\w+)\b`)
	reCDPaymentSeq = regexp.MustCompile(`\b(?:PAYMENT[ \t]+)?(\d+)[ \t]+OF[ \t]+(\d+)\b`)
	reCDLongNumber = regexp.MustCompile(`\b(\d{10,})\b`)
)

// cdTxnType: text following the literal TRANSACTION TYPE header, either on
// the same line after a separator or alone on the next line.
var cdTxnType = []strategy.Strategy[string]{
	strategy.Regex(reCDTxnTypeInline, func(m []string) (string, bool) {
		t := strings.TrimSpace(m[1])
		return t, t != ""
	}),
	strategy.LineScan(reCDTxnTypeHeader, 1, func(line string) (string, bool) {
		t := strings.TrimSpace(line)
		return t, t != "" && !isColumnHeader(t)
	}),
}

// cdDescription: tab-table row, then the line after a standalone
// DESCRIPTION header. The remaining fallbacks (transaction type, literal
// "Unknown") are applied by the assembler because they depend on earlier
// extraction results.
var cdDescription = []strategy.Strategy[string]{
	strategy.LineScan(reCDTabTableHeader, 3, func(line string) (string, bool) {
		f := strings.SplitN(line, "\t", 2)
		d := strings.TrimSpace(f[0])
		if d == "" || isColumnHeader(d) {
			return "", false
		}
		if _, looksNumeric := findCurrency(d); looksNumeric {
			return "", false
		}
		return d, true
	}),
	strategy.LineScan(reCDDescHeader, 2, func(line string) (string, bool) {
		d := strings.TrimSpace(line)
		if d == "" || isColumnHeader(line) {
			return "", false
		}
		return d, true
	}),
}

var cdEntryDate = []strategy.Strategy[string]{
	strategy.Regex(reCDEntryDate, func(m []string) (string, bool) { return fieldparse.ParseCompactDate(m[1]) }),
	strategy.Regex(reCDEntryDateLabel, func(m []string) (string, bool) { return fieldparse.ParseCompactDate(m[1]) }),
}

var cdProcessDate = []strategy.Strategy[string]{
	strategy.Regex(reCDProcessDate, func(m []string) (string, bool) { return fieldparse.ParseCompactDate(m[1]) }),
	strategy.LineScan(reCDProcessDateLine, 2, func(line string) (string, bool) {
		m := reSixDigits.FindStringSubmatch(line)
		if m == nil {
			return "", false
		}
		return fieldparse.ParseCompactDate(m[1])
	}),
}

var cdAccount = []strategy.Strategy[string]{
	strategy.Regex(reCDAccount, func(m []string) (string, bool) {
		return fieldparse.StripLeadingZeros(m[1]), true
	}),
}

// cdAmount covers the six observed layouts: a tab table row (debit or
// credit column), newline column tables under DEBITS / CREDITS headers,
// NET BALANCE inline, NET BALANCE on its own line, and a bounded search
// after a bare AMOUNT label. A hit under CREDITS negates the magnitude.
var cdAmount = []strategy.Strategy[amountHit]{
	strategy.LineScan(reCDTabTableHeader, 3, func(line string) (amountHit, bool) {
		fields := strings.Split(line, "\t")
		if len(fields) >= 3 {
			if amt, ok := findCurrency(fields[2]); ok {
				return amountHit{amount: amt.Neg(), isDebit: false}, true
			}
		}
		if len(fields) >= 2 {
			if amt, ok := findCurrency(fields[1]); ok {
				return amountHit{amount: amt, isDebit: true}, true
			}
		}
		return amountHit{}, false
	}),
	strategy.LineScan(reCDDebitsHeader, 3, func(line string) (amountHit, bool) {
		amt, ok := findCurrency(line)
		if !ok {
			return amountHit{}, false
		}
		return amountHit{amount: amt, isDebit: true}, true
	}),
	strategy.LineScan(reCDCreditsHeader, 3, func(line string) (amountHit, bool) {
		amt, ok := findCurrency(line)
		if !ok {
			return amountHit{}, false
		}
		return amountHit{amount: amt.Neg(), isDebit: false}, true
	}),
	strategy.Regex(reCDNetBalanceInline, func(m []string) (amountHit, bool) {
		amt, ok := fieldparse.ParseSignedCurrency(m[1])
		if !ok {
			return amountHit{}, false
		}
		return amountHit{amount: amt, isDebit: true}, true
	}),
	strategy.LineScan(reCDNetBalanceLine, 3, func(line string) (amountHit, bool) {
		amt, ok := findCurrency(line)
		if !ok {
			return amountHit{}, false
		}
		return amountHit{amount: amt, isDebit: true}, true
	}),
	strategy.Bounded(reCDAmountAnchor, 60, reCurrencyToken, func(m []string) (amountHit, bool) {
		amt, ok := fieldparse.ParseSignedCurrency(m[0])
		if !ok {
			return amountHit{}, false
		}
		return amountHit{amount: amt, isDebit: true}, true
	}),
}

// cdReference: unit number (placeholder 0000 rejected), then the
// "N OF M" payment-sequence phrase, then any standalone 10+ digit token.
var cdReference = []strategy.Strategy[string]{
	strategy.Regex(reCDUnit, func(m []string) (string, bool) {
		if m[1] == "0000" {
			return "", false
		}
		return m[1], true
	}),
	strategy.Regex(reCDPaymentSeq, func(m []string) (string, bool) {
		return fmt.Sprintf("%s OF %s", m[1], m[2]), true
	}),
	strategy.Regex(reCDLongNumber, func(m []string) (string, bool) { return m[1], true }),
}

func parseCreditDebit(norm, raw string) ParseResult {
	var errs []string
	line := ExtractedLine{RawText: raw, IsDebit: true, Amount: decimal.Zero}

	if v, ok := strategy.First(norm, cdTxnType...); ok {
		line.TransactionType = strPtr(v)
	}

	if v, ok := strategy.First(norm, cdDescription...); ok {
		line.Description = v
	} else if line.TransactionType != nil {
		line.Description = *line.TransactionType
	} else {
		line.Description = "Unknown"
	}

	if v, ok := strategy.First(norm, cdEntryDate...); ok {
		line.EntryDate = strPtr(v)
	}
	if v, ok := strategy.First(norm, cdProcessDate...); ok {
		line.ProcessDate = strPtr(v)
	}
	if v, ok := strategy.First(norm, cdAccount...); ok {
		line.AccountNumber = strPtr(v)
	}

	if hit, ok := strategy.First(norm, cdAmount...); ok {
		line.Amount = hit.amount
		line.IsDebit = hit.isDebit
	} else {
		errs = append(errs, "could not extract amount from credit/debit document")
	}

	if v, ok := strategy.First(norm, cdReference...); ok {
		line.Reference = strPtr(v)
	}

	return ParseResult{Lines: []ExtractedLine{line}, Errors: errs}
}
