package common

import (
	"os"
	"strconv"

	"github.com/agencydesk/settlements/constants"
)

// Config holds CLI configuration. The extraction engine itself takes no
// configuration; everything here shapes one settleparse run.
type Config struct {
	DocType    string // settlement layout family to parse as
	Provider   string // OCR provider hint; empty means autodetect
	Output     string // "json" | "xlsx"
	OutputPath string // xlsx destination; empty writes alongside input
	Verbose    bool
}

// LoadConfig loads configuration from environment variables.
func LoadConfig() *Config {
	return &Config{
		DocType:    getEnv("SETTLE_DOC_TYPE", string(constants.DocTypeCreditDebit)),
		Provider:   getEnv("SETTLE_PROVIDER", ""),
		Output:     getEnv("SETTLE_OUTPUT", "json"),
		OutputPath: getEnv("SETTLE_OUTPUT_PATH", ""),
		Verbose:    getEnvAsBool("SETTLE_VERBOSE", false),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

// Validate validates the loaded configuration.
func (c *Config) Validate() error {
	if _, err := constants.ParseDocType(c.DocType); err != nil {
		return NewAppError("CONFIG_ERROR", err.Error(), ErrInvalidInput)
	}
	if c.Output != "json" && c.Output != "xlsx" {
		return NewAppError("CONFIG_ERROR", "SETTLE_OUTPUT must be json or xlsx", ErrInvalidInput)
	}
	return nil
}
