package handlers

import (
	"errors"
	"log/slog"
	nethttp "net/http"
	"net/url"
	"strconv"
	"strings"

	apppokedex "pokedex-service/internal/app/pokedex"
	"pokedex-service/internal/domain/pokedex"
	"pokedex-service/internal/logging"
	"pokedex-service/internal/providers"
)

// Handler wires HTTP routes to the Pokédex service.
type Handler struct {
	svc    *apppokedex.Service
	logger *slog.Logger
}

// NewHandler constructs a Handler.
func NewHandler(svc *apppokedex.Service, logger *slog.Logger) *Handler {
	return &Handler{
		svc:    svc,
		logger: logger,
	}
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Catalog returns the bounded catalog listing. An upstream failure degrades
// to an empty listing with the error attached, not a non-200 status, so
// front-ends can still render an (empty) selection list.
func (h *Handler) Catalog(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			writeError(w, r, nethttp.StatusBadRequest, "invalid limit (expected positive integer)", h.logger)
			return
		}
		limit = parsed
	}

	logger := loggerFromContext(r, h.logger)
	entries, err := h.svc.Catalog(r.Context(), limit)

	payload := pokedex.CatalogResponse{
		Count:   len(entries),
		Results: entries,
	}
	if entries == nil {
		payload.Results = []pokedex.CatalogEntry{}
	}
	if err != nil {
		payload.Error = fetchFailureMessage(err)
	}
	logging.Info(logger, "served catalog",
		slog.Int(logging.FieldLimit, limit), slog.Int(logging.FieldCount, len(entries)))
	writeJSON(w, nethttp.StatusOK, payload, h.logger)
}

// PokemonByName returns the resolved entity for /pokedex/{name}. A failed
// detail fetch still returns the partial, name-only entity alongside the
// error message.
func (h *Handler) PokemonByName(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	raw := strings.TrimPrefix(r.URL.Path, "/pokedex/")
	name, err := url.PathUnescape(raw)
	if err != nil || name == "" || strings.ContainsAny(name, " \t/") {
		writeError(w, r, nethttp.StatusBadRequest, "invalid pokemon name", h.logger)
		return
	}

	logger := loggerFromContext(r, h.logger)
	p, err := h.svc.PokemonByName(r.Context(), name)
	if errors.Is(err, apppokedex.ErrNotFound) {
		writeError(w, r, nethttp.StatusNotFound, "pokemon not found", h.logger)
		return
	}

	if p.DisplayName == "" {
		// Catalog unavailable: still serve a name-only placeholder.
		p = pokedex.NewPokemon(pokedex.CatalogEntry{Name: name})
	}
	payload := pokedex.PokemonResponse{Pokemon: p}
	if err != nil {
		payload.Error = fetchFailureMessage(err)
	}
	logging.Info(logger, "served pokemon",
		slog.String(logging.FieldPokemon, name), slog.Bool("resolved", p.Resolved()))
	writeJSON(w, nethttp.StatusOK, payload, h.logger)
}

// fetchFailureMessage keeps upstream error detail out of responses while
// still telling the caller which stage failed.
func fetchFailureMessage(err error) string {
	if _, ok := providers.AsDecodeError(err); ok {
		return "upstream response could not be decoded"
	}
	if fetchErr, ok := providers.AsFetchError(err); ok && fetchErr.StatusCode > 0 {
		return "upstream returned status " + strconv.Itoa(fetchErr.StatusCode)
	}
	return "upstream fetch failed"
}
