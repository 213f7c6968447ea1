// Package cache provides a Redis-backed implementation of the catalog and
// Pokémon caches so multiple service instances share one view of the
// (static) upstream catalog.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"pokedex-service/internal/domain/pokedex"
)

const (
	catalogKeyPrefix = "pokedex:catalog:"
	pokemonKeyPrefix = "pokedex:pokemon:"
)

// Config holds the dependencies for the Redis cache.
type Config struct {
	Client redis.UniversalClient
	Logger *slog.Logger
	// PokemonTTL bounds how long resolved entities are kept. Zero means no
	// expiry. Catalog listings never expire; the upstream catalog is static.
	PokemonTTL time.Duration
}

// Redis caches catalog listings keyed by limit and resolved Pokémon keyed
// by name. All operations are best-effort: a Redis failure degrades to a
// cache miss, never to a caller-visible error.
type Redis struct {
	client redis.UniversalClient
	logger *slog.Logger
	ttl    time.Duration
}

// NewRedis creates a Redis cache from the given config.
func NewRedis(cfg *Config) (*Redis, error) {
	if cfg == nil || cfg.Client == nil {
		return nil, errors.New("cache: redis client is required")
	}
	return &Redis{
		client: cfg.Client,
		logger: cfg.Logger,
		ttl:    cfg.PokemonTTL,
	}, nil
}

// GetCatalog returns the cached listing for a limit, if present.
func (r *Redis) GetCatalog(ctx context.Context, limit int) ([]pokedex.CatalogEntry, bool) {
	data, err := r.client.Get(ctx, catalogKey(limit)).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			r.logWarn("catalog cache read failed", err)
		}
		return nil, false
	}

	var entries []pokedex.CatalogEntry
	if err := json.Unmarshal([]byte(data), &entries); err != nil {
		r.logWarn("catalog cache entry corrupt", err)
		return nil, false
	}
	return entries, true
}

// SetCatalog stores a listing under its limit with no expiry.
func (r *Redis) SetCatalog(ctx context.Context, limit int, entries []pokedex.CatalogEntry) {
	data, err := json.Marshal(entries)
	if err != nil {
		r.logWarn("catalog cache encode failed", err)
		return
	}
	if err := r.client.Set(ctx, catalogKey(limit), string(data), 0).Err(); err != nil {
		r.logWarn("catalog cache write failed", err)
	}
}

// GetPokemon retrieves a resolved entity by name (case-insensitive).
func (r *Redis) GetPokemon(ctx context.Context, name string) (pokedex.Pokemon, bool) {
	data, err := r.client.Get(ctx, pokemonKey(name)).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			r.logWarn("pokemon cache read failed", err)
		}
		return pokedex.Pokemon{}, false
	}

	var p pokedex.Pokemon
	if err := json.Unmarshal([]byte(data), &p); err != nil {
		r.logWarn("pokemon cache entry corrupt", err)
		return pokedex.Pokemon{}, false
	}
	return p, true
}

// SetPokemon stores a resolved entity keyed by its display name.
func (r *Redis) SetPokemon(ctx context.Context, p pokedex.Pokemon) {
	data, err := json.Marshal(p)
	if err != nil {
		r.logWarn("pokemon cache encode failed", err)
		return
	}
	if err := r.client.Set(ctx, pokemonKey(p.DisplayName), string(data), r.ttl).Err(); err != nil {
		r.logWarn("pokemon cache write failed", err)
	}
}

func (r *Redis) logWarn(msg string, err error) {
	if r.logger != nil {
		r.logger.Warn(msg, "error", err)
	}
}

func catalogKey(limit int) string {
	return fmt.Sprintf("%s%d", catalogKeyPrefix, limit)
}

func pokemonKey(name string) string {
	return pokemonKeyPrefix + strings.ToLower(name)
}
