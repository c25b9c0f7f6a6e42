package fieldparse

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCurrency(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		ok    bool
	}{
		{"plain", "518.00", "518.00", true},
		{"thousands", "3,890.63", "3890.63", true},
		{"dollar sign", "$1,234.56", "1234.56", true},
		{"leading minus", "-42.10", "-42.10", true},
		{"integer", "500", "500", true},
		{"empty", "", "", false},
		{"garbage", "N/A", "", false},
		{"spaces only", "   ", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseCurrency(tt.input)
			require.Equal(t, tt.ok, ok)
			if ok {
				assert.True(t, got.Equal(decimal.RequireFromString(tt.want)), "got %s", got)
			}
		})
	}
}

func TestParseSignedCurrency(t *testing.T) {
	got, ok := ParseSignedCurrency("3,890.63-")
	require.True(t, ok)
	assert.True(t, got.Equal(decimal.RequireFromString("-3890.63")), "got %s", got)

	got, ok = ParseSignedCurrency("518.00")
	require.True(t, ok)
	assert.True(t, got.Equal(decimal.RequireFromString("518.00")), "got %s", got)

	// a bare trailing minus is not an amount
	_, ok = ParseSignedCurrency("-")
	assert.False(t, ok)
}

func TestStripLeadingZeros(t *testing.T) {
	assert.Equal(t, "3101", StripLeadingZeros("03101"))
	assert.Equal(t, "0", StripLeadingZeros("0000"))
	assert.Equal(t, "42", StripLeadingZeros("42"))
	assert.Equal(t, "", StripLeadingZeros(""))
}
