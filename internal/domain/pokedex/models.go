package pokedex

import "pokedex-service/internal/text"

// CatalogEntry is a raw listing item from the upstream catalog: the
// Pokémon's API name and the URL of its detail resource. Entries are
// passed through verbatim; display formatting happens on the resolved
// entity, not here.
type CatalogEntry struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Pokemon is the canonical, display-ready shape exposed by the service.
// DisplayName and SourceURL are set at construction and never change.
// Every other field starts empty and is populated by a successful detail
// fetch, so a failed fetch still leaves a renderable name-only entity.
type Pokemon struct {
	DisplayName string   `json:"displayName"`
	SourceURL   string   `json:"sourceUrl"`
	ID          *int     `json:"id,omitempty"`
	Types       []string `json:"types,omitempty"`
	Abilities   []string `json:"abilities,omitempty"`
	HeightM     *float64 `json:"heightM,omitempty"`
	WeightKg    *float64 `json:"weightKg,omitempty"`
	ImageURL    *string  `json:"imageUrl,omitempty"`
	Stats       StatList `json:"stats,omitempty"`
}

// NewPokemon builds the name-only entity for a catalog entry.
func NewPokemon(entry CatalogEntry) Pokemon {
	return Pokemon{
		DisplayName: text.Title(entry.Name),
		SourceURL:   entry.URL,
	}
}

// Resolved reports whether a detail fetch has populated the entity.
func (p Pokemon) Resolved() bool {
	return p.ID != nil
}

// CatalogResponse is the payload returned by /pokedex?limit=N. A listing
// failure degrades to an empty result set with the error message attached
// rather than a non-200 response.
type CatalogResponse struct {
	Count   int            `json:"count"`
	Results []CatalogEntry `json:"results"`
	Error   string         `json:"error,omitempty"`
}

// PokemonResponse is the payload returned by /pokedex/{name}. When the
// detail fetch failed the partial entity is still included alongside the
// error message.
type PokemonResponse struct {
	Pokemon Pokemon `json:"pokemon"`
	Error   string  `json:"error,omitempty"`
}
