package server

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/redis/go-redis/v9"

	apppokedex "pokedex-service/internal/app/pokedex"
	appcache "pokedex-service/internal/cache"
	"pokedex-service/internal/config"
	"pokedex-service/internal/metrics"
	"pokedex-service/internal/providers"
	"pokedex-service/internal/providers/fixture"
	"pokedex-service/internal/providers/pokeapi"
	"pokedex-service/internal/store"
)

// providerFactory assembles the provider with shared wrappers (limit clamp +
// catalog memoization) and the cache the app service uses for resolved
// entities.
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, recorder *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: recorder}
}

// dataProvider composes a decorated catalog path with the base detail path.
type dataProvider struct {
	providers.CatalogProvider
	providers.PokemonProvider
}

// combinedCache is what both the memory store and the Redis cache satisfy.
type combinedCache interface {
	providers.CatalogCache
	apppokedex.Cache
}

func (f providerFactory) build(cfg config.Config) (providers.DataProvider, apppokedex.Cache) {
	base := selectProvider(cfg)
	cache := f.selectCache(cfg)

	clamped := providers.NewClampedCatalogProvider(base, cfg.CatalogLimit, cfg.MaxLimit, f.logger)
	memoized := providers.NewCachingCatalogProvider(clamped, cache, f.logger, f.metrics)

	return dataProvider{CatalogProvider: memoized, PokemonProvider: base}, cache
}

func selectProvider(cfg config.Config) providers.DataProvider {
	switch strings.ToLower(cfg.Provider) {
	case "pokeapi":
		return pokeapi.NewClient(pokeapi.Config{
			BaseURL:    cfg.PokeAPI.BaseURL,
			HTTPClient: &http.Client{Timeout: cfg.PokeAPI.Timeout},
		})
	default:
		return fixture.New()
	}
}

func (f providerFactory) selectCache(cfg config.Config) combinedCache {
	if cfg.Redis.Enabled() {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
		})
		redisCache, err := appcache.NewRedis(&appcache.Config{
			Client:     client,
			Logger:     f.logger,
			PokemonTTL: cfg.Redis.PokemonTTL,
		})
		if err == nil {
			return redisCache
		}
		if f.logger != nil {
			f.logger.Warn("redis cache unavailable, falling back to memory", "error", err)
		}
	}
	return newMemoryCache()
}

func newMemoryCache() combinedCache {
	return store.NewMemoryStore()
}
