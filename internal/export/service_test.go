package export

import (
	"bytes"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/agencydesk/settlements/internal/parser"
)

func TestExportLinesXLSX(t *testing.T) {
	txn := "SAFETY CHARGEBACKS"
	acct := "3101"
	results := []parser.ParseResult{
		{
			Lines: []parser.ExtractedLine{
				{
					TransactionType: &txn,
					Description:     "ELD SRVC FEE",
					Amount:          decimal.RequireFromString("33.06"),
					IsDebit:         true,
					AccountNumber:   &acct,
					RawText:         "raw",
				},
			},
		},
		{
			Lines:  []parser.ExtractedLine{{Description: "Unknown", RawText: "raw2"}},
			Errors: []string{"could not extract amount from credit/debit document"},
		},
	}

	svc := NewService(nil)
	b, err := svc.ExportLinesXLSX(results)
	require.NoError(t, err)
	require.NotEmpty(t, b)

	f, err := excelize.OpenReader(bytes.NewReader(b))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	assert.Equal(t, []string{"Lines", "Errors"}, f.GetSheetList())

	got, err := f.GetCellValue("Lines", "B1")
	require.NoError(t, err)
	assert.Equal(t, "Description", got)

	got, err = f.GetCellValue("Lines", "B2")
	require.NoError(t, err)
	assert.Equal(t, "ELD SRVC FEE", got)

	got, err = f.GetCellValue("Lines", "C2")
	require.NoError(t, err)
	assert.Equal(t, "33.06", got)

	got, err = f.GetCellValue("Lines", "B3")
	require.NoError(t, err)
	assert.Equal(t, "Unknown", got)

	got, err = f.GetCellValue("Errors", "B2")
	require.NoError(t, err)
	assert.Contains(t, got, "amount")
}
