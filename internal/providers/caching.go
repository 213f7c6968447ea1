package providers

import (
	"context"
	"log/slog"

	"pokedex-service/internal/domain/pokedex"
	"pokedex-service/internal/metrics"
)

const catalogCacheName = "catalog"

// CatalogCache stores catalog listings keyed by limit. The upstream catalog
// is effectively static, so cached listings never need invalidation.
type CatalogCache interface {
	GetCatalog(ctx context.Context, limit int) ([]pokedex.CatalogEntry, bool)
	SetCatalog(ctx context.Context, limit int, entries []pokedex.CatalogEntry)
}

// cachingCatalogProvider memoizes catalog listings by limit. Failed fetches
// are never cached, so a transient upstream outage does not pin an empty
// listing.
type cachingCatalogProvider struct {
	next    CatalogProvider
	cache   CatalogCache
	logger  *slog.Logger
	metrics *metrics.Recorder
}

// NewCachingCatalogProvider wraps next with memoization keyed by limit. A
// nil cache disables memoization and delegates every call.
func NewCachingCatalogProvider(next CatalogProvider, cache CatalogCache, logger *slog.Logger, recorder *metrics.Recorder) CatalogProvider {
	return &cachingCatalogProvider{
		next:    next,
		cache:   cache,
		logger:  logger,
		metrics: recorder,
	}
}

func (p *cachingCatalogProvider) FetchCatalog(ctx context.Context, limit int) ([]pokedex.CatalogEntry, error) {
	if p == nil || p.next == nil {
		return nil, ErrProviderUnavailable
	}

	if p.cache != nil {
		if entries, ok := p.cache.GetCatalog(ctx, limit); ok {
			p.metrics.RecordCacheLookup(catalogCacheName, true)
			logWithProvider(ctx, p.logger, slog.LevelDebug, "caching", "catalog cache hit",
				slog.Int("limit", limit), slog.Int("count", len(entries)))
			return entries, nil
		}
		p.metrics.RecordCacheLookup(catalogCacheName, false)
	}

	entries, err := p.next.FetchCatalog(ctx, limit)
	if err != nil {
		return entries, err
	}
	if p.cache != nil {
		p.cache.SetCatalog(ctx, limit, entries)
	}
	return entries, nil
}
