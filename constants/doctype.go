package constants

import (
	"fmt"
	"strings"
)

// DocType identifies a settlement-document layout family. Classification
// happens upstream; the parser only dispatches on the supplied type.
type DocType string

const (
	DocTypeCreditDebit         DocType = "CREDIT_DEBIT"
	DocTypePostingTicket       DocType = "POSTING_TICKET"
	DocTypeRevenueDistribution DocType = "REVENUE_DISTRIBUTION"
	DocTypeRemittance          DocType = "REMITTANCE"
	DocTypeAdvance             DocType = "ADVANCE"
)

// DocTypes holds the supported layout families.
var DocTypes = []DocType{
	DocTypeCreditDebit,
	DocTypePostingTicket,
	DocTypeRevenueDistribution,
	DocTypeRemittance,
	DocTypeAdvance,
}

// ParseDocType maps free-form input onto the closed set.
func ParseDocType(s string) (DocType, error) {
	want := DocType(strings.ToUpper(strings.TrimSpace(s)))
	for _, dt := range DocTypes {
		if dt == want {
			return dt, nil
		}
	}
	return "", fmt.Errorf("unknown document type %q", s)
}
