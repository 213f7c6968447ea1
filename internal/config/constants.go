package config

const (
	envPort         = "PORT"
	envProvider     = "PROVIDER"
	envCatalogLimit = "CATALOG_LIMIT"

	defaultPort     = "4000"
	defaultProvider = "fixture"
	// The original Pokédex bound: the first-generation listing.
	defaultCatalogLimit = 151
	// Cap on caller-supplied limits; the live catalog tops out well below this.
	maxCatalogLimit = 2000
)
