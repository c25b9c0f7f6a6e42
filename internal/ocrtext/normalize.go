// Package ocrtext canonicalizes raw OCR output before field extraction.
// Baseline whitespace passes always run; provider-specific corrective
// rewrites dispatch through a closed table keyed on the provider tag.
package ocrtext

import (
	"regexp"
	"strings"

	"github.com/agencydesk/settlements/constants"
)

var (
	reCRLF      = regexp.MustCompile(`\r\n?`)
	reWideSpace = regexp.MustCompile(`[ \t]{3,}`)
)

// providerPasses is the closed dispatch table for corrective rewrites.
// Providers without an entry get only the baseline passes.
var providerPasses = map[constants.OCRProvider]func(string) string{
	constants.ProviderGemini: geminiPass,
	constants.ProviderOllama: ollamaPass,
}

// Normalize collapses noisy whitespace, normalizes line endings, trims
// trailing whitespace per line, then applies the provider's corrective pass.
func Normalize(s string, provider constants.OCRProvider) string {
	if s == "" {
		return s
	}
	s = reCRLF.ReplaceAllString(s, "\n")
	s = reWideSpace.ReplaceAllString(s, "  ")
	lines := strings.Split(s, "\n")
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], " \t")
	}
	s = strings.Join(lines, "\n")
	if pass, ok := providerPasses[provider]; ok {
		s = pass(s)
	}
	return s
}
