package config

import "time"

const (
	envPokeAPIBaseURL = "POKEAPI_BASE_URL"
	envPokeAPITimeout = "POKEAPI_TIMEOUT"

	defaultPokeAPIBaseURL = "https://pokeapi.co/api/v2"
	defaultPokeAPITimeout = 10 * time.Second
)

// PokeAPIConfig controls how we talk to the PokéAPI.
type PokeAPIConfig struct {
	BaseURL string
	Timeout time.Duration
}

func loadPokeAPI() PokeAPIConfig {
	return PokeAPIConfig{
		BaseURL: envOrDefault(envPokeAPIBaseURL, defaultPokeAPIBaseURL),
		Timeout: durationEnvOrDefault(envPokeAPITimeout, defaultPokeAPITimeout),
	}
}
