package constants

import "strings"

// OCRProvider identifies the text-recognition engine that produced a page.
// Output formatting (line splitting, artifacts) varies per provider, so the
// normalizer dispatches its corrective pass on this tag.
type OCRProvider string

const (
	ProviderGemini  OCRProvider = "gemini"
	ProviderOllama  OCRProvider = "ollama"
	ProviderUnknown OCRProvider = "unknown"
)

// Providers holds the closed set of providers with a corrective pass.
var Providers = []OCRProvider{ProviderGemini, ProviderOllama}

// ParseProvider maps free-form input (CLI flag, env var) onto the closed set.
func ParseProvider(s string) OCRProvider {
	switch OCRProvider(strings.ToLower(strings.TrimSpace(s))) {
	case ProviderGemini:
		return ProviderGemini
	case ProviderOllama:
		return ProviderOllama
	default:
		return ProviderUnknown
	}
}
