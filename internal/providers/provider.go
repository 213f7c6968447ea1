package providers

import (
	"context"

	"pokedex-service/internal/domain/pokedex"
)

// CatalogProvider defines how the bounded Pokémon catalog is listed.
// Implementations return at most limit entries in upstream order, each with
// a non-empty name and detail URL.
type CatalogProvider interface {
	FetchCatalog(ctx context.Context, limit int) ([]pokedex.CatalogEntry, error)
}

// PokemonProvider resolves one catalog entry into a normalized entity.
// Implementations are total: the returned Pokemon always carries at least
// the display name and source URL, even when the error is non-nil, so the
// caller can render a degraded, name-only view.
type PokemonProvider interface {
	FetchPokemon(ctx context.Context, entry pokedex.CatalogEntry) (pokedex.Pokemon, error)
}

// DataProvider combines all provider capabilities.
type DataProvider interface {
	CatalogProvider
	PokemonProvider
}
