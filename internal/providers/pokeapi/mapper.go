package pokeapi

import (
	"pokedex-service/internal/domain/pokedex"
	"pokedex-service/internal/text"
)

// applyDetails populates p from a decoded detail payload. Every field is
// extracted independently with its own default, so one missing or ill-typed
// key never blocks the others.
func applyDetails(p *pokedex.Pokemon, payload map[string]any) {
	if id, ok := intAt(payload, "id"); ok {
		p.ID = &id
	}

	// Upstream reports height in decimeters and weight in hectograms.
	height := floatOr(payload, "height", 0) / 10
	p.HeightM = &height
	weight := floatOr(payload, "weight", 0) / 10
	p.WeightKg = &weight

	if img, ok := stringAt(payload, "sprites", "other", "official-artwork", "front_default"); ok && img != "" {
		p.ImageURL = &img
	}

	p.Types = refNames(payload, "types", "type")
	p.Abilities = refNames(payload, "abilities", "ability")

	for _, elem := range sliceAt(payload, "stats") {
		obj, ok := elem.(map[string]any)
		if !ok {
			continue
		}
		name, ok := stringAt(obj, "stat", "name")
		if !ok {
			continue
		}
		value, ok := intAt(obj, "base_stat")
		if !ok {
			continue
		}
		p.Stats.Set(text.StatName(name), value)
	}
}

// refNames collects type/ability names from elements shaped like
// {"<refKey>": {"name": "..."}} and title-cases them in source order.
func refNames(payload map[string]any, listKey, refKey string) []string {
	elems := sliceAt(payload, listKey)
	if len(elems) == 0 {
		return nil
	}
	names := make([]string, 0, len(elems))
	for _, elem := range elems {
		obj, ok := elem.(map[string]any)
		if !ok {
			continue
		}
		if name, ok := stringAt(obj, refKey, "name"); ok {
			names = append(names, text.Title(name))
		}
	}
	if len(names) == 0 {
		return nil
	}
	return names
}
