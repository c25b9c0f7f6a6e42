package ocrtext

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/agencydesk/settlements/constants"
)

func TestNormalizeBaseline(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"crlf", "a\r\nb\rc", "a\nb\nc"},
		{"wide space collapsed to two", "DESCRIPTION     DEBITS", "DESCRIPTION  DEBITS"},
		{"double space kept", "ENTRY 120125  PROCESS", "ENTRY 120125  PROCESS"},
		{"single tab kept", "ELD SRVC FEE\t33.06", "ELD SRVC FEE\t33.06"},
		{"trailing whitespace trimmed", "line one   \nline two\t", "line one\nline two"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.input, constants.ProviderUnknown))
		})
	}
}

func TestNormalizeGeminiPass(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"split header rejoined", "TRANSACTION\nTYPE / FUEL", "TRANSACTION TYPE / FUEL"},
		{"split account header", "ACCOUNT\nNUMBER 3101", "ACCOUNT NUMBER 3101"},
		{"split company name", "NATIONWIDE VAN\nLINES", "NATIONWIDE VAN LINES"},
		{"amount split at comma", "DEBIT 3,\n890.63", "DEBIT 3,890.63"},
		{"amount split at decimal", "DEBIT 3,890.\n63", "DEBIT 3,890.63"},
		{"date split across lines", "DATE 12/18/\n25 END", "DATE 12/18/25 END"},
		{"artifacts removed", "NET� BALANCE\u200B 518.00", "NET BALANCE 518.00"},
		{"invisible characters removed", "NET\uFEFF BAL\u00ADANCE DUE\u200B 518.00", "NET BALANCE DUE 518.00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.input, constants.ProviderGemini))
		})
	}
}

func TestNormalizeOllamaPass(t *testing.T) {
	got := Normalize("SECTION\n--------------------------------\nNEXT", constants.ProviderOllama)
	assert.Equal(t, "SECTION\n--------\nNEXT", got)
}

func TestProviderPassesCoverClosedSet(t *testing.T) {
	for _, p := range constants.Providers {
		_, ok := providerPasses[p]
		assert.True(t, ok, "provider %s has no corrective pass", p)
	}
}

func TestDetectProvider(t *testing.T) {
	assert.Equal(t, constants.ProviderGemini, DetectProvider("header � noise"))
	assert.Equal(t, constants.ProviderGemini, DetectProvider("TRANSACTION\nTYPE / FUEL"))
	assert.Equal(t, constants.ProviderOllama, DetectProvider("a\n------------------------\nb"))
	assert.Equal(t, constants.ProviderUnknown, DetectProvider("clean settlement text"))
	assert.Equal(t, constants.ProviderUnknown, DetectProvider(""))
}
