package config

// Store backend names accepted in STORE_BACKEND
const (
	StoreBackendMemory   = "memory"
	StoreBackendRedis    = "redis"
	StoreBackendPostgres = "postgres"
)

// Business rule defaults
const (
	DefaultMinimumDeposit     = 10.0
	DefaultPredictionsAwarded = 15
)

// Configuration file paths
const (
	ConfigPathNetworks = "configs/networks.yaml"
)
