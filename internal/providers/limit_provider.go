package providers

import (
	"context"
	"log/slog"

	"pokedex-service/internal/domain/pokedex"
)

// clampedCatalogProvider normalizes caller-supplied limits before they reach
// the upstream client: non-positive limits fall back to the default, and
// limits beyond max are capped to keep listing requests bounded.
type clampedCatalogProvider struct {
	next         CatalogProvider
	defaultLimit int
	maxLimit     int
	logger       *slog.Logger
}

// NewClampedCatalogProvider returns a CatalogProvider that clamps limits to
// [1, max]. If defaultLimit or max are <= 0 they are left unguarded.
func NewClampedCatalogProvider(next CatalogProvider, defaultLimit, max int, logger *slog.Logger) CatalogProvider {
	return &clampedCatalogProvider{
		next:         next,
		defaultLimit: defaultLimit,
		maxLimit:     max,
		logger:       logger,
	}
}

func (p *clampedCatalogProvider) FetchCatalog(ctx context.Context, limit int) ([]pokedex.CatalogEntry, error) {
	if p == nil || p.next == nil {
		return nil, ErrProviderUnavailable
	}

	clamped := limit
	if clamped <= 0 && p.defaultLimit > 0 {
		clamped = p.defaultLimit
	}
	if p.maxLimit > 0 && clamped > p.maxLimit {
		clamped = p.maxLimit
	}
	if clamped != limit {
		logWithProvider(ctx, p.logger, slog.LevelWarn, "clamped", "catalog limit adjusted",
			slog.Int("requested", limit), slog.Int("effective", clamped))
	}

	return p.next.FetchCatalog(ctx, clamped)
}
