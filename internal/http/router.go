package http

import (
	nethttp "net/http"

	"pokedex-service/internal/http/handlers"
)

// NewRouter registers HTTP routes on a ServeMux.
func NewRouter(handler *handlers.Handler) nethttp.Handler {
	mux := nethttp.NewServeMux()
	mux.HandleFunc("/health", handler.Health)
	mux.HandleFunc("/pokedex", handler.Catalog)
	mux.HandleFunc("/pokedex/", handler.PokemonByName)
	return mux
}
