package pokeapi

import "time"

const providerName = "pokeapi"

const (
	defaultBaseURL     = "https://pokeapi.co/api/v2"
	defaultHTTPTimeout = 10 * time.Second
)
