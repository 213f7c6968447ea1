package testutil

import (
	"context"

	"pokedex-service/internal/domain/pokedex"
)

// StubCatalogProvider returns canned catalog entries and counts calls.
type StubCatalogProvider struct {
	Entries []pokedex.CatalogEntry
	Err     error
	Calls   int
}

func (s *StubCatalogProvider) FetchCatalog(ctx context.Context, limit int) ([]pokedex.CatalogEntry, error) {
	_ = ctx
	s.Calls++
	if s.Err != nil {
		return nil, s.Err
	}
	if limit > 0 && limit < len(s.Entries) {
		return s.Entries[:limit], nil
	}
	return s.Entries, nil
}

// StubPokemonProvider returns a canned entity (or a name-only entity plus
// Err) and counts calls.
type StubPokemonProvider struct {
	Pokemon pokedex.Pokemon
	Err     error
	Calls   int
}

func (s *StubPokemonProvider) FetchPokemon(ctx context.Context, entry pokedex.CatalogEntry) (pokedex.Pokemon, error) {
	_ = ctx
	s.Calls++
	if s.Err != nil {
		return pokedex.NewPokemon(entry), s.Err
	}
	return s.Pokemon, nil
}

// StubDataProvider combines the two stubs into a DataProvider.
type StubDataProvider struct {
	StubCatalogProvider
	StubPokemonProvider
}
