package main

import (
	"github.com/spf13/cobra"

	"pokedex-service/internal/providers"
	"pokedex-service/internal/providers/fixture"
	"pokedex-service/internal/providers/pokeapi"
)

// resolveProvider builds the data provider from the persistent flags.
func resolveProvider(cmd *cobra.Command) providers.DataProvider {
	if useFixture, _ := cmd.Flags().GetBool("fixture"); useFixture {
		return fixture.New()
	}
	baseURL, _ := cmd.Flags().GetString("base-url")
	return pokeapi.NewClient(pokeapi.Config{BaseURL: baseURL})
}
