package pokeapi

// catalogResponse is the wire shape of the listing endpoint. Detail payloads
// are intentionally not given a struct: they are decoded into a generic map
// and walked defensively so one missing or renamed key never blocks the
// other extractions.
type catalogResponse struct {
	Results []resourceRef `json:"results"`
}

type resourceRef struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}
