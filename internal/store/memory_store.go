package store

import (
	"context"
	"strings"
	"sync"

	"pokedex-service/internal/domain/pokedex"
)

// MemoryStore keeps thread-safe caches of catalog listings (by limit) and
// resolved Pokémon (by name) in memory.
type MemoryStore struct {
	mu       sync.RWMutex
	catalogs map[int][]pokedex.CatalogEntry
	pokemon  map[string]pokedex.Pokemon
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		catalogs: make(map[int][]pokedex.CatalogEntry),
		pokemon:  make(map[string]pokedex.Pokemon),
	}
}

// GetCatalog returns the cached listing for a limit, if present.
func (s *MemoryStore) GetCatalog(ctx context.Context, limit int) ([]pokedex.CatalogEntry, bool) {
	_ = ctx
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries, ok := s.catalogs[limit]
	if !ok {
		return nil, false
	}
	result := make([]pokedex.CatalogEntry, len(entries))
	copy(result, entries)
	return result, true
}

// SetCatalog stores a listing under its limit.
func (s *MemoryStore) SetCatalog(ctx context.Context, limit int, entries []pokedex.CatalogEntry) {
	_ = ctx
	copied := make([]pokedex.CatalogEntry, len(entries))
	copy(copied, entries)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.catalogs[limit] = copied
}

// GetPokemon retrieves a resolved entity by name (case-insensitive).
func (s *MemoryStore) GetPokemon(ctx context.Context, name string) (pokedex.Pokemon, bool) {
	_ = ctx
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.pokemon[strings.ToLower(name)]
	return p, ok
}

// SetPokemon stores a resolved entity keyed by its display name.
func (s *MemoryStore) SetPokemon(ctx context.Context, p pokedex.Pokemon) {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pokemon[strings.ToLower(p.DisplayName)] = p
}
