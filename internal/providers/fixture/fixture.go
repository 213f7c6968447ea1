// Package fixture serves a small deterministic Pokédex useful for local
// runs and tests without touching the live API.
package fixture

import (
	"context"

	"pokedex-service/internal/domain/pokedex"
)

// Provider returns a static catalog and detail set.
type Provider struct{}

// New creates a fixture provider.
func New() *Provider {
	return &Provider{}
}

type detail struct {
	id        int
	types     []string
	abilities []string
	heightM   float64
	weightKg  float64
	imageURL  string
	stats     []pokedex.Stat
}

var catalog = []pokedex.CatalogEntry{
	{Name: "bulbasaur", URL: "fixture://pokemon/1"},
	{Name: "charmander", URL: "fixture://pokemon/4"},
	{Name: "squirtle", URL: "fixture://pokemon/7"},
	{Name: "pikachu", URL: "fixture://pokemon/25"},
}

var details = map[string]detail{
	"bulbasaur": {
		id:        1,
		types:     []string{"Grass", "Poison"},
		abilities: []string{"Overgrow", "Chlorophyll"},
		heightM:   0.7,
		weightKg:  6.9,
		imageURL:  "fixture://artwork/1.png",
		stats: []pokedex.Stat{
			{Name: "Hp", Value: 45},
			{Name: "Attack", Value: 49},
			{Name: "Defense", Value: 49},
			{Name: "Special Attack", Value: 65},
			{Name: "Special Defense", Value: 65},
			{Name: "Speed", Value: 45},
		},
	},
	"charmander": {
		id:        4,
		types:     []string{"Fire"},
		abilities: []string{"Blaze", "Solar Power"},
		heightM:   0.6,
		weightKg:  8.5,
		imageURL:  "fixture://artwork/4.png",
		stats: []pokedex.Stat{
			{Name: "Hp", Value: 39},
			{Name: "Attack", Value: 52},
			{Name: "Defense", Value: 43},
			{Name: "Special Attack", Value: 60},
			{Name: "Special Defense", Value: 50},
			{Name: "Speed", Value: 65},
		},
	},
	"squirtle": {
		id:        7,
		types:     []string{"Water"},
		abilities: []string{"Torrent", "Rain Dish"},
		heightM:   0.5,
		weightKg:  9.0,
		imageURL:  "fixture://artwork/7.png",
		stats: []pokedex.Stat{
			{Name: "Hp", Value: 44},
			{Name: "Attack", Value: 48},
			{Name: "Defense", Value: 65},
			{Name: "Special Attack", Value: 50},
			{Name: "Special Defense", Value: 64},
			{Name: "Speed", Value: 43},
		},
	},
	"pikachu": {
		id:        25,
		types:     []string{"Electric"},
		abilities: []string{"Static", "Lightning Rod"},
		heightM:   0.4,
		weightKg:  6.0,
		imageURL:  "fixture://artwork/25.png",
		stats: []pokedex.Stat{
			{Name: "Hp", Value: 35},
			{Name: "Attack", Value: 55},
			{Name: "Defense", Value: 40},
			{Name: "Special Attack", Value: 50},
			{Name: "Special Defense", Value: 50},
			{Name: "Speed", Value: 90},
		},
	},
}

// FetchCatalog returns up to limit fixture entries.
func (p *Provider) FetchCatalog(ctx context.Context, limit int) ([]pokedex.CatalogEntry, error) {
	_ = ctx
	if limit <= 0 || limit > len(catalog) {
		limit = len(catalog)
	}
	entries := make([]pokedex.CatalogEntry, limit)
	copy(entries, catalog[:limit])
	return entries, nil
}

// FetchPokemon resolves a fixture entry. Unknown names yield a name-only
// entity without an error, mirroring the degraded-entity contract.
func (p *Provider) FetchPokemon(ctx context.Context, entry pokedex.CatalogEntry) (pokedex.Pokemon, error) {
	_ = ctx
	resolved := pokedex.NewPokemon(entry)

	d, ok := details[entry.Name]
	if !ok {
		return resolved, nil
	}

	id := d.id
	height := d.heightM
	weight := d.weightKg
	img := d.imageURL
	resolved.ID = &id
	resolved.Types = append([]string(nil), d.types...)
	resolved.Abilities = append([]string(nil), d.abilities...)
	resolved.HeightM = &height
	resolved.WeightKg = &weight
	resolved.ImageURL = &img
	for _, stat := range d.stats {
		resolved.Stats.Set(stat.Name, stat.Value)
	}
	return resolved, nil
}
