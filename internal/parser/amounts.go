package parser

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/agencydesk/settlements/internal/fieldparse"
)

// amountHit pairs a parsed magnitude with its polarity. Strategies yield
// this so the polarity decision stays with the layout that matched.
type amountHit struct {
	amount  decimal.Decimal
	isDebit bool
}

var reCurrencyToken = regexp.MustCompile(`\$?\d{1,3}(?:,\d{3})*\.\d{2}-?|\$?\d+\.\d{2}-?`)

// findCurrency pulls the first currency-shaped token out of a line.
func findCurrency(line string) (decimal.Decimal, bool) {
	tok := reCurrencyToken.FindString(line)
	if tok == "" {
		return decimal.Zero, false
	}
	return fieldparse.ParseSignedCurrency(tok)
}

// columnHeaderWords flags lines that are table furniture, not data.
var columnHeaderWords = map[string]struct{}{
	"DESCRIPTION": {}, "DEBITS": {}, "CREDITS": {}, "DEBIT": {}, "CREDIT": {},
	"AMOUNT": {}, "NET BALANCE": {}, "NET BALANCE DUE": {},
}

func isColumnHeader(line string) bool {
	line = strings.TrimSpace(line)
	if _, ok := columnHeaderWords[line]; ok {
		return true
	}
	fields := strings.Split(line, "\t")
	if len(fields) < 2 {
		return false
	}
	for _, f := range fields {
		if _, ok := columnHeaderWords[strings.TrimSpace(f)]; !ok {
			return false
		}
	}
	return true
}
