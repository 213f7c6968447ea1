package pokedex

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	domain "pokedex-service/internal/domain/pokedex"
	"pokedex-service/internal/logging"
	"pokedex-service/internal/metrics"
	"pokedex-service/internal/providers"
)

const pokemonCacheName = "pokemon"

// ErrNotFound indicates the requested name is not in the catalog.
var ErrNotFound = errors.New("pokemon not found")

// Cache stores resolved entities between selections. Only fully-resolved
// entities are cached; degraded ones are handed straight back to the caller.
type Cache interface {
	GetPokemon(ctx context.Context, name string) (domain.Pokemon, bool)
	SetPokemon(ctx context.Context, p domain.Pokemon)
}

// Service coordinates catalog listing and detail resolution over a provider
// and an optional cache.
type Service struct {
	provider     providers.DataProvider
	providerName string
	cache        Cache
	logger       *slog.Logger
	metrics      *metrics.Recorder
	catalogLimit int
}

// Config holds the Service dependencies.
type Config struct {
	Provider     providers.DataProvider
	ProviderName string
	Cache        Cache
	Logger       *slog.Logger
	Metrics      *metrics.Recorder
	CatalogLimit int
}

// NewService constructs a Service. CatalogLimit bounds the listing used to
// resolve names; it must match the limit the front-end lists with.
func NewService(cfg Config) *Service {
	return &Service{
		provider:     cfg.Provider,
		providerName: cfg.ProviderName,
		cache:        cfg.Cache,
		logger:       cfg.Logger,
		metrics:      cfg.Metrics,
		catalogLimit: cfg.CatalogLimit,
	}
}

// Catalog lists up to limit catalog entries. A non-positive limit falls
// back to the configured catalog bound.
func (s *Service) Catalog(ctx context.Context, limit int) ([]domain.CatalogEntry, error) {
	if limit <= 0 {
		limit = s.catalogLimit
	}

	start := time.Now()
	entries, err := s.provider.FetchCatalog(ctx, limit)
	s.metrics.RecordProviderAttempt(s.providerName, time.Since(start), err)
	if err != nil {
		logging.Warn(s.logger, "catalog fetch failed",
			slog.Int(logging.FieldLimit, limit), "error", err)
		return nil, err
	}
	return entries, nil
}

// PokemonByEntry resolves one catalog entry, cache-aside. When the detail
// fetch fails the partial entity is returned with the error and left
// uncached.
func (s *Service) PokemonByEntry(ctx context.Context, entry domain.CatalogEntry) (domain.Pokemon, error) {
	if s.cache != nil {
		if p, ok := s.cache.GetPokemon(ctx, entry.Name); ok {
			s.metrics.RecordCacheLookup(pokemonCacheName, true)
			return p, nil
		}
		s.metrics.RecordCacheLookup(pokemonCacheName, false)
	}

	start := time.Now()
	p, err := s.provider.FetchPokemon(ctx, entry)
	s.metrics.RecordProviderAttempt(s.providerName, time.Since(start), err)
	if err != nil {
		logging.Warn(s.logger, "detail fetch degraded",
			slog.String(logging.FieldPokemon, entry.Name), "error", err)
		return p, err
	}

	if s.cache != nil {
		s.cache.SetPokemon(ctx, p)
	}
	return p, nil
}

// PokemonByName looks a name up in the catalog and resolves its entry.
// Unknown names yield ErrNotFound; a failed listing is reported as-is so
// the caller can distinguish "not found" from "catalog unavailable".
func (s *Service) PokemonByName(ctx context.Context, name string) (domain.Pokemon, error) {
	entries, err := s.Catalog(ctx, s.catalogLimit)
	if err != nil {
		return domain.Pokemon{}, err
	}

	needle := strings.ToLower(strings.TrimSpace(name))
	for _, entry := range entries {
		if strings.ToLower(entry.Name) == needle {
			return s.PokemonByEntry(ctx, entry)
		}
	}
	return domain.Pokemon{}, ErrNotFound
}
