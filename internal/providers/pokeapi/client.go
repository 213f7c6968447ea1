package pokeapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"pokedex-service/internal/domain/pokedex"
	"pokedex-service/internal/providers"
)

// Config controls how the pokeapi client reaches the upstream API.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
}

// Client fetches catalog listings and detail payloads from PokéAPI and maps
// them to domain models.
type Client struct {
	baseURL    string
	httpClient httpDoer
}

// NewClient constructs a pokeapi client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		httpClient: resolveHTTPClient(cfg.HTTPClient),
	}
}

// FetchCatalog retrieves up to limit catalog entries from the listing
// endpoint. On any transport failure or non-success status it returns no
// entries and a FetchError; a body that does not decode returns a
// DecodeError. Results are passed through verbatim.
func (c *Client) FetchCatalog(ctx context.Context, limit int) ([]pokedex.CatalogEntry, error) {
	req, err := c.buildCatalogRequest(ctx, limit)
	if err != nil {
		return nil, &providers.FetchError{Provider: providerName, URL: c.baseURL + "/pokemon", Err: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &providers.FetchError{Provider: providerName, URL: req.URL.String(), Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, statusError(req.URL.String(), resp)
	}

	var payload catalogResponse
	if decodeErr := json.NewDecoder(resp.Body).Decode(&payload); decodeErr != nil {
		return nil, &providers.DecodeError{Provider: providerName, URL: req.URL.String(), Err: decodeErr}
	}

	entries := make([]pokedex.CatalogEntry, 0, len(payload.Results))
	for _, ref := range payload.Results {
		// An over-replying or sloppy upstream must not leak past the
		// listing contract: at most limit entries, each fully addressed.
		if limit > 0 && len(entries) == limit {
			break
		}
		if ref.Name == "" || ref.URL == "" {
			continue
		}
		entries = append(entries, pokedex.CatalogEntry{Name: ref.Name, URL: ref.URL})
	}
	return entries, nil
}

// FetchPokemon resolves a catalog entry into a normalized Pokemon. It is
// total: on fetch or decode failure the name-only entity comes back
// alongside the error so callers can still render a placeholder.
func (c *Client) FetchPokemon(ctx context.Context, entry pokedex.CatalogEntry) (pokedex.Pokemon, error) {
	p := pokedex.NewPokemon(entry)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, entry.URL, nil)
	if err != nil {
		return p, &providers.FetchError{Provider: providerName, URL: entry.URL, Err: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return p, &providers.FetchError{Provider: providerName, URL: entry.URL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return p, statusError(entry.URL, resp)
	}

	var payload map[string]any
	if decodeErr := json.NewDecoder(resp.Body).Decode(&payload); decodeErr != nil {
		return p, &providers.DecodeError{Provider: providerName, URL: entry.URL, Err: decodeErr}
	}

	applyDetails(&p, payload)
	return p, nil
}

func (c *Client) buildCatalogRequest(ctx context.Context, limit int) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/pokemon", nil)
	if err != nil {
		return nil, err
	}

	q := req.URL.Query()
	q.Set("limit", strconv.Itoa(limit))
	req.URL.RawQuery = q.Encode()

	return req, nil
}

func statusError(url string, resp *http.Response) *providers.FetchError {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	return &providers.FetchError{
		Provider:   providerName,
		URL:        url,
		StatusCode: resp.StatusCode,
		Err:        fmt.Errorf("%s", strings.TrimSpace(string(body))),
	}
}
