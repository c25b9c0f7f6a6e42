// Package parser turns normalized settlement-document text into structured
// line records. One parser per layout family; each is a pipeline of
// independent field extractors built as first-success strategy chains.
package parser

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/agencydesk/settlements/constants"
	"github.com/agencydesk/settlements/internal/ocrtext"
	"github.com/agencydesk/settlements/internal/tripdetail"
)

// ExtractedLine is one structured settlement line. Amount sign always
// follows the document's debit/credit convention (credits negative),
// never the raw text's own minus placement. RawText keeps the verbatim
// input for audit regardless of parse success.
type ExtractedLine struct {
	TransactionType *string          `json:"transaction_type,omitempty"`
	Description     string           `json:"description"`
	Amount          decimal.Decimal  `json:"amount"`
	IsDebit         bool             `json:"is_debit"`
	EntryDate       *string          `json:"entry_date,omitempty"`   // YYYY-MM-DD
	ProcessDate     *string          `json:"process_date,omitempty"` // YYYY-MM-DD
	AccountNumber   *string          `json:"account_number,omitempty"`
	Reference       *string          `json:"reference,omitempty"`
	Trip            *tripdetail.Trip `json:"trip,omitempty"`
	RawText         string           `json:"raw_text"`
}

// ParseResult is what every parser returns. A failed or partial extraction
// appends to Errors but never removes an otherwise-producible line.
type ParseResult struct {
	Lines  []ExtractedLine `json:"lines"`
	Errors []string        `json:"errors"`
}

// docParsers is the closed dispatch table over layout families. Parsers
// receive the normalized text plus the verbatim raw text for audit.
var docParsers = map[constants.DocType]func(norm, raw string) ParseResult{
	constants.DocTypeCreditDebit:         parseCreditDebit,
	constants.DocTypePostingTicket:       parsePostingTicket,
	constants.DocTypeRevenueDistribution: parseRevenueDistribution,
	constants.DocTypeRemittance:          parseRemittance,
	constants.DocTypeAdvance:             parseAdvance,
}

// Parse normalizes one page of OCR text and runs the parser for docType.
// The provider hint wins when given; otherwise the detector's guess picks
// the corrective pass. Parse never panics outward: structural failures
// come back as a single labeled error entry and the call still returns.
func Parse(docType constants.DocType, raw string, hint constants.OCRProvider) ParseResult {
	provider := hint
	if provider == "" || provider == constants.ProviderUnknown {
		provider = ocrtext.DetectProvider(raw)
	}
	norm := ocrtext.Normalize(raw, provider)
	p, ok := docParsers[docType]
	if !ok {
		return ParseResult{Errors: []string{fmt.Sprintf("unsupported document type: %s", docType)}}
	}
	return safeParse(docType, norm, raw, p)
}

// safeParse is the failure boundary: any panic inside a document parser is
// converted to one descriptive error string.
func safeParse(docType constants.DocType, norm, raw string, p func(norm, raw string) ParseResult) (res ParseResult) {
	defer func() {
		if r := recover(); r != nil {
			res.Errors = append(res.Errors, fmt.Sprintf("%s parse failure: %v", docType, r))
		}
	}()
	return p(norm, raw)
}

func strPtr(s string) *string {
	return &s
}
