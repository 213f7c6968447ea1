package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		envPort, envProvider, envCatalogLimit,
		envPokeAPIBaseURL, envPokeAPITimeout,
		envRedisAddr, envRedisPassword, envPokemonTTL,
		envMetricsPort, envMetricsOn, envOtelEndpoint, envOtelService, envOtelInsecure,
	} {
		t.Setenv(key, "")
	}

	cfg := Load()

	if cfg.Port != "4000" {
		t.Fatalf("unexpected port %s", cfg.Port)
	}
	if cfg.Provider != "fixture" {
		t.Fatalf("unexpected provider %s", cfg.Provider)
	}
	if cfg.CatalogLimit != 151 {
		t.Fatalf("unexpected catalog limit %d", cfg.CatalogLimit)
	}
	if cfg.MaxLimit != 2000 {
		t.Fatalf("unexpected max limit %d", cfg.MaxLimit)
	}
	if cfg.PokeAPI.BaseURL != "https://pokeapi.co/api/v2" {
		t.Fatalf("unexpected base URL %s", cfg.PokeAPI.BaseURL)
	}
	if cfg.PokeAPI.Timeout != 10*time.Second {
		t.Fatalf("unexpected timeout %v", cfg.PokeAPI.Timeout)
	}
	if cfg.Redis.Enabled() {
		t.Fatal("redis should be disabled without an address")
	}
	if cfg.Redis.PokemonTTL != time.Hour {
		t.Fatalf("unexpected TTL %v", cfg.Redis.PokemonTTL)
	}
	if cfg.Metrics.Enabled {
		t.Fatal("metrics should be disabled by default")
	}
	if cfg.Metrics.Port != "9090" {
		t.Fatalf("unexpected metrics port %s", cfg.Metrics.Port)
	}
	if cfg.Metrics.ServiceName != "pokedex-service" {
		t.Fatalf("unexpected service name %s", cfg.Metrics.ServiceName)
	}
}

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv(envPort, "8080")
	t.Setenv(envProvider, "pokeapi")
	t.Setenv(envCatalogLimit, "251")
	t.Setenv(envPokeAPIBaseURL, "http://localhost:9000/api/v2")
	t.Setenv(envPokeAPITimeout, "2s")
	t.Setenv(envRedisAddr, "localhost:6379")
	t.Setenv(envPokemonTTL, "30m")
	t.Setenv(envMetricsOn, "true")

	cfg := Load()

	if cfg.Port != "8080" || cfg.Provider != "pokeapi" || cfg.CatalogLimit != 251 {
		t.Fatalf("unexpected core config %+v", cfg)
	}
	if cfg.PokeAPI.BaseURL != "http://localhost:9000/api/v2" || cfg.PokeAPI.Timeout != 2*time.Second {
		t.Fatalf("unexpected pokeapi config %+v", cfg.PokeAPI)
	}
	if !cfg.Redis.Enabled() || cfg.Redis.PokemonTTL != 30*time.Minute {
		t.Fatalf("unexpected redis config %+v", cfg.Redis)
	}
	if !cfg.Metrics.Enabled {
		t.Fatal("expected metrics enabled")
	}
}
