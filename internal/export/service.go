package export

import (
	"log/slog"

	"github.com/xuri/excelize/v2"

	"github.com/agencydesk/settlements/internal/common"
	"github.com/agencydesk/settlements/internal/parser"
)

// Service produces XLSX bytes from parse results for manual review.
type Service struct {
	logger *slog.Logger
}

func NewService(logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{logger: logger}
}

// ExportLinesXLSX returns an XLSX workbook (as bytes) with one row per
// extracted line and a second sheet listing review errors per document.
func (s *Service) ExportLinesXLSX(results []parser.ParseResult) ([]byte, error) {
	f := excelize.NewFile()
	const sheet = "Lines"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, common.WrapError(err, "rename sheet")
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Transaction Type",
		"Description",
		"Amount",
		"Debit",
		"Entry Date",
		"Process Date",
		"Account",
		"Reference",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	lineCount := 0
	for _, res := range results {
		for _, ln := range res.Lines {
			write := func(col int, v any) {
				cell, _ := excelize.CoordinatesToCellName(col, row)
				_ = f.SetCellValue(sheet, cell, v)
			}
			write(1, strOrEmpty(ln.TransactionType))
			write(2, ln.Description)
			write(3, ln.Amount.StringFixed(2))
			write(4, ln.IsDebit)
			write(5, strOrEmpty(ln.EntryDate))
			write(6, strOrEmpty(ln.ProcessDate))
			write(7, strOrEmpty(ln.AccountNumber))
			write(8, strOrEmpty(ln.Reference))
			row++
			lineCount++
		}
	}

	const errSheet = "Errors"
	if _, err := f.NewSheet(errSheet); err != nil {
		return nil, common.WrapError(err, "create errors sheet")
	}
	_ = f.SetCellValue(errSheet, "A1", "Document")
	_ = f.SetCellValue(errSheet, "B1", "Error")
	erow := 2
	for di, res := range results {
		for _, e := range res.Errors {
			ca, _ := excelize.CoordinatesToCellName(1, erow)
			cb, _ := excelize.CoordinatesToCellName(2, erow)
			_ = f.SetCellValue(errSheet, ca, di+1)
			_ = f.SetCellValue(errSheet, cb, e)
			erow++
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, common.WrapError(err, "write workbook")
	}
	s.logger.Info("export.xlsx", "documents", len(results), "lines", lineCount, "errors", erow-2)
	return buf.Bytes(), nil
}

func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
