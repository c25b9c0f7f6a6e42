package ocrtext

import (
	"regexp"
	"strings"
)

// geminiArtifacts are garbage sequences Gemini emits around table borders
// and box-drawing characters. Removed outright.
var geminiArtifacts = []string{
	"�",        // replacement char
	"\u200B",   // zero-width space
	"\u00AD",   // soft hyphen
	"\uFEFF",   // BOM leaking mid-document
	"â€”",      // mojibake em dash
	"â€“",      // mojibake en dash
	"â–ˆ",      // mojibake block
	"│",   // box-drawing vertical
	"───", // box-drawing rule fragments
}

// geminiSplitHeaders are multi-word table headers Gemini breaks across
// lines. Curated from real pages; rejoined verbatim.
var geminiSplitHeaders = []struct{ from, to string }{
	{"TRANSACTION\nTYPE", "TRANSACTION TYPE"},
	{"ACCOUNT\nNUMBER", "ACCOUNT NUMBER"},
	{"PROCESS\nDATE", "PROCESS DATE"},
	{"NET\nBALANCE", "NET BALANCE"},
	{"NET BALANCE\nDUE", "NET BALANCE DUE"},
	{"PT\nNUMBER", "PT NUMBER"},
	{"BILL OF\nLADING", "BILL OF LADING"},
	{"BILL\nOF LADING", "BILL OF LADING"},
	{"N.V.L.\nENTRY", "N.V.L. ENTRY"},
	{"DELIVERY\nDATE", "DELIVERY DATE"},
	{"UNIT\nNUMBER", "UNIT NUMBER"},
	{"NATIONWIDE VAN\nLINES", "NATIONWIDE VAN LINES"},
	{"NATIONWIDE\nVAN LINES", "NATIONWIDE VAN LINES"},
}

var (
	// amounts split at the thousands comma ("3,\n890.63") or the decimal
	// point ("3,890.\n63")
	reSplitAmountComma   = regexp.MustCompile(`(\d{1,3}),\n(\d{3}(?:,\d{3})*(?:\.\d{2})?)`)
	reSplitAmountDecimal = regexp.MustCompile(`(\d[\d,]*)\.\n(\d{2})\b`)
	// slash dates split on either side of a separator ("12/18/\n25")
	reSplitDateTail = regexp.MustCompile(`(\d{1,2}/\d{1,2})/\n(\d{2})\b`)
	reSplitDateHead = regexp.MustCompile(`\b(\d{1,2})/\n(\d{1,2}/\d{2})\b`)
)

// geminiPass removes Gemini's Unicode garbage and rejoins the known split
// patterns: broken names and headers, fractured amounts, fractured dates.
func geminiPass(s string) string {
	for _, a := range geminiArtifacts {
		s = strings.ReplaceAll(s, a, "")
	}
	for _, h := range geminiSplitHeaders {
		s = strings.ReplaceAll(s, h.from, h.to)
	}
	s = reSplitAmountComma.ReplaceAllString(s, "$1,$2")
	s = reSplitAmountDecimal.ReplaceAllString(s, "$1.$2")
	s = reSplitDateTail.ReplaceAllString(s, "$1/$2")
	s = reSplitDateHead.ReplaceAllString(s, "$1/$2")
	return s
}
