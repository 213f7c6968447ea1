package testutil

// DetailPayload is a representative PokéAPI detail body covering every
// extracted field.
const DetailPayload = `{
	"id": 25,
	"height": 4,
	"weight": 60,
	"sprites": {
		"other": {
			"official-artwork": {
				"front_default": "https://img.example/25.png"
			}
		}
	},
	"types": [
		{"slot": 1, "type": {"name": "electric", "url": "https://api.example/type/13/"}}
	],
	"abilities": [
		{"ability": {"name": "static", "url": "https://api.example/ability/9/"}, "is_hidden": false},
		{"ability": {"name": "lightning-rod", "url": "https://api.example/ability/31/"}, "is_hidden": true}
	],
	"stats": [
		{"base_stat": 35, "stat": {"name": "hp"}},
		{"base_stat": 55, "stat": {"name": "attack"}},
		{"base_stat": 50, "stat": {"name": "special-attack"}},
		{"base_stat": 90, "stat": {"name": "speed"}}
	]
}`

// CatalogPayload is a representative listing body.
const CatalogPayload = `{
	"count": 1302,
	"next": "https://api.example/pokemon?offset=3&limit=3",
	"previous": null,
	"results": [
		{"name": "bulbasaur", "url": "https://api.example/pokemon/1/"},
		{"name": "ivysaur", "url": "https://api.example/pokemon/2/"},
		{"name": "venusaur", "url": "https://api.example/pokemon/3/"}
	]
}`
