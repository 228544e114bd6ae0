// Package config loads application configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/ericfisherdev/credvault/internal/vaultcrypto"
)

// Config holds the application configuration loaded from environment variables.
type Config struct {
	DBPath        string
	KDFIterations int
}

// Load reads configuration from environment variables and returns a
// validated Config. Optional variables with defaults:
// CREDVAULT_DB_PATH (credvault.db) and CREDVAULT_KDF_ITERATIONS
// (390000). Iteration overrides below the default are rejected — the KDF
// cost is only ever tuned upward, never down for existing vaults.
func Load() (*Config, error) {
	dbPath := "credvault.db"
	if v, ok := os.LookupEnv("CREDVAULT_DB_PATH"); ok && v != "" {
		dbPath = v
	}

	iterations := vaultcrypto.DefaultIterations
	if v, ok := os.LookupEnv("CREDVAULT_KDF_ITERATIONS"); ok {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("CREDVAULT_KDF_ITERATIONS has invalid value %q: %w", v, err)
		}
		if parsed < vaultcrypto.DefaultIterations {
			return nil, fmt.Errorf("CREDVAULT_KDF_ITERATIONS %d is below the minimum %d", parsed, vaultcrypto.DefaultIterations)
		}
		iterations = parsed
	}

	return &Config{
		DBPath:        dbPath,
		KDFIterations: iterations,
	}, nil
}
