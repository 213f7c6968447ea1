package config

import "time"

const (
	envRedisAddr     = "REDIS_ADDR"
	envRedisPassword = "REDIS_PASSWORD"
	envPokemonTTL    = "POKEMON_CACHE_TTL"

	defaultPokemonTTL = time.Hour
)

// RedisConfig controls the optional shared cache. An empty Addr disables
// Redis and falls back to the in-memory store.
type RedisConfig struct {
	Addr       string
	Password   string
	PokemonTTL time.Duration
}

// Enabled reports whether a Redis address was configured.
func (c RedisConfig) Enabled() bool {
	return c.Addr != ""
}

func loadRedis() RedisConfig {
	return RedisConfig{
		Addr:       envOrDefault(envRedisAddr, ""),
		Password:   envOrDefault(envRedisPassword, ""),
		PokemonTTL: durationEnvOrDefault(envPokemonTTL, defaultPokemonTTL),
	}
}
