package config

import (
	"fmt"
	"os"
	"strings"
)

// RequiredEnvVars lists environment variables that must be set when running
// against a real store backend. The memory backend needs nothing.
var requiredByBackend = map[string][]string{
	StoreBackendRedis:    {"REDIS_ADDR"},
	StoreBackendPostgres: {"DB_USER", "DB_PASSWORD", "DB_HOST", "DB_PORT", "DB_NAME"},
}

// ValidateEnv checks that all environment variables required by the selected
// store backend are set.
func ValidateEnv(backend string) error {
	var missing []string
	for _, envVar := range requiredByBackend[backend] {
		if os.Getenv(envVar) == "" {
			missing = append(missing, envVar)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables for %s backend: %s",
			backend, strings.Join(missing, ", "))
	}

	return nil
}

// ValidateEnvWithWarnings checks environment variables and returns warnings
// for non-critical issues (like using default values)
func ValidateEnvWithWarnings(cfg *Config) ([]string, error) {
	if err := ValidateEnv(cfg.StoreBackend); err != nil {
		return nil, err
	}

	var warnings []string

	if cfg.StoreBackend == StoreBackendPostgres && os.Getenv("DB_PASSWORD") == "postgres" {
		warnings = append(warnings, "DB_PASSWORD appears to be using the default value - please use a secure password")
	}

	if cfg.AffiliateLink == "" {
		warnings = append(warnings, "AFFILIATE_LINK is not set - /api/v1/link and /go will report the link as unconfigured")
	}

	if cfg.StoreBackend == StoreBackendMemory {
		warnings = append(warnings, "memory store backend selected - ledger state will not survive restarts")
	}

	return warnings, nil
}
