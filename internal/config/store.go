package config

import "strings"

// StoreConfig selects and parameterizes the snapshot backend.
type StoreConfig struct {
	Backend  string
	DataFile string
	Redis    RedisConfig
}

// RedisConfig addresses the Redis snapshot backend.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	Key      string
}

func loadStore() StoreConfig {
	backend := strings.ToLower(strings.TrimSpace(envOrDefault(envStoreBackend, defaultStoreBackend)))
	switch backend {
	case BackendFile, BackendMemory, BackendRedis:
	default:
		backend = defaultStoreBackend
	}
	return StoreConfig{
		Backend:  backend,
		DataFile: envOrDefault(envDataFile, defaultDataFile),
		Redis: RedisConfig{
			Addr:     envOrDefault(envRedisAddr, defaultRedisAddr),
			Password: envOrDefault(envRedisPassword, ""),
			DB:       nonNegativeIntEnvOrDefault(envRedisDB, 0),
			Key:      envOrDefault(envRedisKey, defaultRedisKey),
		},
	}
}
