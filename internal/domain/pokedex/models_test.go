package pokedex

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestNewPokemonSetsNameAndURLOnly(t *testing.T) {
	p := NewPokemon(CatalogEntry{Name: "pikachu", URL: "https://api.example/pokemon/25/"})

	if p.DisplayName != "Pikachu" {
		t.Fatalf("expected title-cased name, got %q", p.DisplayName)
	}
	if p.SourceURL != "https://api.example/pokemon/25/" {
		t.Fatalf("unexpected source URL %q", p.SourceURL)
	}
	if p.Resolved() {
		t.Fatal("new entity should not be resolved")
	}
	if p.ID != nil || p.HeightM != nil || p.WeightKg != nil || p.ImageURL != nil {
		t.Fatalf("expected optional fields unset, got %+v", p)
	}
	if len(p.Types) != 0 || len(p.Abilities) != 0 || len(p.Stats) != 0 {
		t.Fatalf("expected empty collections, got %+v", p)
	}
}

func TestPokemonJSONTags(t *testing.T) {
	type fieldCheck struct {
		name string
		tag  string
	}

	pokemonType := reflect.TypeOf(Pokemon{})
	fields := []fieldCheck{
		{"DisplayName", "displayName"},
		{"SourceURL", "sourceUrl"},
		{"ID", "id,omitempty"},
		{"Types", "types,omitempty"},
		{"Abilities", "abilities,omitempty"},
		{"HeightM", "heightM,omitempty"},
		{"WeightKg", "weightKg,omitempty"},
		{"ImageURL", "imageUrl,omitempty"},
		{"Stats", "stats,omitempty"},
	}

	for _, fc := range fields {
		field, ok := pokemonType.FieldByName(fc.name)
		if !ok {
			t.Fatalf("missing field %s", fc.name)
		}
		if jsonTag := field.Tag.Get("json"); jsonTag != fc.tag {
			t.Fatalf("field %s expected json tag %s, got %s", fc.name, fc.tag, jsonTag)
		}
	}
}

func TestUnresolvedPokemonMarshalsNameOnly(t *testing.T) {
	p := NewPokemon(CatalogEntry{Name: "mew", URL: "https://api.example/pokemon/151/"})

	data, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var out map[string]any
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected only displayName and sourceUrl, got %v", out)
	}
	if out["displayName"] != "Mew" {
		t.Fatalf("unexpected displayName %v", out["displayName"])
	}
}

func TestPokemonRoundTripsThroughJSON(t *testing.T) {
	id := 25
	height := 0.4
	img := "https://img.example/25.png"
	p := Pokemon{
		DisplayName: "Pikachu",
		SourceURL:   "https://api.example/pokemon/25/",
		ID:          &id,
		Types:       []string{"Electric"},
		Abilities:   []string{"Static"},
		HeightM:     &height,
		ImageURL:    &img,
		Stats:       StatList{{Name: "Speed", Value: 90}},
	}

	data, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var got Pokemon
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if !reflect.DeepEqual(p, got) {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", got, p)
	}
}
