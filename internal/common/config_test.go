package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg := LoadConfig()
	assert.Equal(t, "CREDIT_DEBIT", cfg.DocType)
	assert.Equal(t, "json", cfg.Output)
	require.NoError(t, cfg.Validate())
}

func TestConfigValidate(t *testing.T) {
	cfg := &Config{DocType: "FAX_COVER", Output: "json"}
	err := cfg.Validate()
	require.Error(t, err)
	var appErr *AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "CONFIG_ERROR", appErr.Code)

	cfg = &Config{DocType: "CREDIT_DEBIT", Output: "pdf"}
	assert.Error(t, cfg.Validate())

	cfg = &Config{DocType: "posting_ticket", Output: "xlsx"}
	assert.NoError(t, cfg.Validate())
}
