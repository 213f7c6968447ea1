package config

// Config holds runtime configuration for the server.
type Config struct {
	Port         string
	Provider     string
	CatalogLimit int
	MaxLimit     int
	PokeAPI      PokeAPIConfig
	Redis        RedisConfig
	Metrics      MetricsConfig
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:         envOrDefault(envPort, defaultPort),
		Provider:     envOrDefault(envProvider, defaultProvider),
		CatalogLimit: intEnvOrDefault(envCatalogLimit, defaultCatalogLimit),
		MaxLimit:     maxCatalogLimit,
		PokeAPI:      loadPokeAPI(),
		Redis:        loadRedis(),
		Metrics:      loadMetrics(),
	}
}
