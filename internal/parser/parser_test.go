package parser

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agencydesk/settlements/constants"
)

func TestParseUnsupportedDocType(t *testing.T) {
	res := Parse(constants.DocType("FAX_COVER"), "whatever", constants.ProviderUnknown)
	assert.Empty(t, res.Lines)
	require.Len(t, res.Errors, 1)
	assert.Contains(t, res.Errors[0], "unsupported document type")
}

func TestParseProviderHintOverridesDetection(t *testing.T) {
	// the split header would only be repaired by the Gemini pass; an
	// explicit Ollama hint must win over what detection would say
	doc := "TRANSACTION\nTYPE / FUEL\nNET BALANCE DUE\t10.00"

	res := Parse(constants.DocTypeCreditDebit, doc, constants.ProviderOllama)
	require.Len(t, res.Lines, 1)
	assert.Nil(t, res.Lines[0].TransactionType)

	res = Parse(constants.DocTypeCreditDebit, doc, constants.ProviderGemini)
	require.Len(t, res.Lines, 1)
	require.NotNil(t, res.Lines[0].TransactionType)
	assert.Equal(t, "FUEL", *res.Lines[0].TransactionType)
}

func TestParseAutodetectsGemini(t *testing.T) {
	// no hint: the split-header signature selects the Gemini pass
	doc := "TRANSACTION\nTYPE / FUEL\nNET BALANCE DUE\t10.00"
	res := Parse(constants.DocTypeCreditDebit, doc, constants.ProviderUnknown)
	require.Len(t, res.Lines, 1)
	require.NotNil(t, res.Lines[0].TransactionType)
	assert.Equal(t, "FUEL", *res.Lines[0].TransactionType)
}

func TestParseRemittance(t *testing.T) {
	doc := "REMITTANCE ADVICE\nPAY TO B&K TRANSPORT LLC\nCHECK NUMBER 0009912\nSETTLEMENT DATE 12/18/25\nTOTAL REMITTANCE 4,410.22"
	res := Parse(constants.DocTypeRemittance, doc, constants.ProviderUnknown)

	require.Len(t, res.Lines, 1)
	assert.Empty(t, res.Errors)
	ln := res.Lines[0]
	assert.Equal(t, "REMITTANCE B&K TRANSPORT LLC", ln.Description)
	assert.True(t, ln.Amount.Equal(decimal.RequireFromString("-4410.22")), "amount %s", ln.Amount)
	assert.False(t, ln.IsDebit)
	require.NotNil(t, ln.Reference)
	assert.Equal(t, "9912", *ln.Reference)
	require.NotNil(t, ln.ProcessDate)
	assert.Equal(t, "2025-12-18", *ln.ProcessDate)
}

func TestParseAdvance(t *testing.T) {
	doc := "CASH ADVANCE\nADVANCE NUMBER 00451\nADVANCE DATE 121625\nPURPOSE FUEL CARD RELOAD\nADVANCE AMOUNT 300.00"
	res := Parse(constants.DocTypeAdvance, doc, constants.ProviderUnknown)

	require.Len(t, res.Lines, 1)
	assert.Empty(t, res.Errors)
	ln := res.Lines[0]
	assert.Equal(t, "ADVANCE FUEL CARD RELOAD", ln.Description)
	assert.True(t, ln.Amount.Equal(decimal.RequireFromString("300.00")))
	assert.True(t, ln.IsDebit)
	require.NotNil(t, ln.Reference)
	assert.Equal(t, "451", *ln.Reference)
	require.NotNil(t, ln.EntryDate)
	assert.Equal(t, "2025-12-16", *ln.EntryDate)
}

func TestDocParsersCoverClosedSet(t *testing.T) {
	for _, dt := range constants.DocTypes {
		_, ok := docParsers[dt]
		assert.True(t, ok, "doc type %s has no parser", dt)
	}
}
