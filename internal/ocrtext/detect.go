package ocrtext

import (
	"strings"

	"github.com/agencydesk/settlements/constants"
)

// geminiSignatures are fragments that only show up in Gemini output:
// mojibake sequences and its characteristic split headers.
var geminiSignatures = []string{
	"�",
	"â€”",
	"â–ˆ",
	"TRANSACTION\nTYPE",
	"ACCOUNT\nNUMBER",
	"NET\nBALANCE",
}

// DetectProvider guesses which OCR engine produced the text by scanning for
// provider-specific signatures. Returns ProviderUnknown when nothing
// matches; an explicit caller hint always takes precedence over this guess.
func DetectProvider(s string) constants.OCRProvider {
	for _, sig := range geminiSignatures {
		if strings.Contains(s, sig) {
			return constants.ProviderGemini
		}
	}
	if reDashRun.MatchString(s) {
		return constants.ProviderOllama
	}
	return constants.ProviderUnknown
}
