package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int
	LogLevel    string
	LogFormat   string
	LogDir      string
	Environment string
	Version     string

	// API key for admin endpoints; public ingest paths bypass it
	APIKey string

	// Proxies whose X-Forwarded-For headers are trusted
	TrustedProxies []string

	// Ledger store backend: "redis", "postgres" or "memory"
	StoreBackend  string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	DBUser        string
	DBPassword    string
	DBHost        string
	DBPort        string
	DBName        string

	// Business rules
	MinimumDeposit     float64
	PredictionsAwarded int

	// Path to the per-network vocabulary profiles
	NetworksConfig string

	// Affiliate registration link with optional {user_id} placeholder
	AffiliateLink string
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:       getEnv("LOG_LEVEL", "INFO"),
		LogFormat:      getEnv("LOG_FORMAT", "text"),
		LogDir:         getEnv("LOG_DIR", "logs"),
		Environment:    getEnv("ENVIRONMENT", "dev"),
		Version:        getEnv("VERSION", "dev"),
		APIKey:         getEnv("API_KEY", ""),
		TrustedProxies: splitList(getEnv("TRUSTED_PROXIES", "")),
		StoreBackend:   getEnv("STORE_BACKEND", StoreBackendMemory),
		RedisAddr:      getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:  getEnv("REDIS_PASSWORD", ""),
		DBUser:         getEnv("DB_USER", "postgres"),
		DBPassword:     getEnv("DB_PASSWORD", "postgres"),
		DBHost:         getEnv("DB_HOST", "localhost"),
		DBPort:         getEnv("DB_PORT", "5432"),
		DBName:         getEnv("DB_NAME", "predictgate"),
		NetworksConfig: getEnv("NETWORKS_CONFIG", ConfigPathNetworks),
		AffiliateLink:  getEnv("AFFILIATE_LINK", ""),
	}

	portStr := getEnv("PORT", "8080")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	minDeposit, err := parseFloatEnv("MINIMUM_DEPOSIT", DefaultMinimumDeposit)
	if err != nil {
		return nil, err
	}
	cfg.MinimumDeposit = minDeposit

	awarded, err := parseIntEnv("PREDICTIONS_AWARDED", DefaultPredictionsAwarded)
	if err != nil {
		return nil, err
	}
	cfg.PredictionsAwarded = awarded

	redisDB, err := parseNonNegativeIntEnv("REDIS_DB", 0)
	if err != nil {
		return nil, err
	}
	cfg.RedisDB = redisDB

	if err := validateBackend(cfg.StoreBackend); err != nil {
		return nil, err
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func parseFloatEnv(key string, defaultValue float64) (float64, error) {
	raw, exists := os.LookupEnv(key)
	if !exists || raw == "" {
		return defaultValue, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", key, raw, err)
	}
	if v <= 0 {
		return 0, fmt.Errorf("%s must be positive, got %v", key, v)
	}
	return v, nil
}

func parseIntEnv(key string, defaultValue int) (int, error) {
	raw, exists := os.LookupEnv(key)
	if !exists || raw == "" {
		return defaultValue, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", key, raw, err)
	}
	if v <= 0 {
		return 0, fmt.Errorf("%s must be positive, got %d", key, v)
	}
	return v, nil
}

func parseNonNegativeIntEnv(key string, defaultValue int) (int, error) {
	raw, exists := os.LookupEnv(key)
	if !exists || raw == "" {
		return defaultValue, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", key, raw, err)
	}
	if v < 0 {
		return 0, fmt.Errorf("%s must not be negative, got %d", key, v)
	}
	return v, nil
}

// splitList parses a comma-separated environment value into a slice,
// dropping empty entries.
func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func validateBackend(backend string) error {
	switch backend {
	case StoreBackendMemory, StoreBackendRedis, StoreBackendPostgres:
		return nil
	}
	return fmt.Errorf("invalid STORE_BACKEND %q: expected %s, %s or %s",
		backend, StoreBackendMemory, StoreBackendRedis, StoreBackendPostgres)
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}
