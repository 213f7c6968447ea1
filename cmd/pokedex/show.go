package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"pokedex-service/internal/domain/pokedex"
)

// statCeiling is the practical maximum base stat, used only to scale the
// terminal bars.
const statCeiling = 255

const statBarWidth = 30

func newShowCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "show NAME",
		Short: "Show one Pokémon's details",
		Long:  "Resolves a Pokémon by name and prints its normalized details, including base stats.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd, args[0], limit)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "l", defaultListLimit, "Catalog bound used to resolve the name")

	return cmd
}

func runShow(cmd *cobra.Command, name string, limit int) error {
	provider := resolveProvider(cmd)
	ctx := cmd.Context()

	entries, err := provider.FetchCatalog(ctx, limit)
	if err != nil {
		return fmt.Errorf("listing catalog: %w", err)
	}

	needle := strings.ToLower(strings.TrimSpace(name))
	var entry pokedex.CatalogEntry
	found := false
	for _, e := range entries {
		if strings.ToLower(e.Name) == needle {
			entry = e
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("%q is not in the first %d catalog entries", name, limit)
	}

	p, err := provider.FetchPokemon(ctx, entry)
	if err != nil {
		// Degraded entity: print what we have and report the failure.
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", err)
	}

	printPokemon(cmd, p)
	return nil
}

func printPokemon(cmd *cobra.Command, p pokedex.Pokemon) {
	out := cmd.OutOrStdout()

	if p.ID != nil {
		fmt.Fprintf(out, "%s #%03d\n", p.DisplayName, *p.ID)
	} else {
		fmt.Fprintln(out, p.DisplayName)
	}

	if len(p.Types) > 0 {
		fmt.Fprintf(out, "Type:      %s\n", strings.Join(p.Types, ", "))
	}
	if p.HeightM != nil {
		fmt.Fprintf(out, "Height:    %.1f m\n", *p.HeightM)
	}
	if p.WeightKg != nil {
		fmt.Fprintf(out, "Weight:    %.1f kg\n", *p.WeightKg)
	}
	if len(p.Abilities) > 0 {
		fmt.Fprintf(out, "Abilities: %s\n", strings.Join(p.Abilities, ", "))
	}
	if p.ImageURL != nil {
		fmt.Fprintf(out, "Artwork:   %s\n", *p.ImageURL)
	}

	if len(p.Stats) > 0 {
		fmt.Fprintln(out, "\nBase stats")
		for _, stat := range p.Stats {
			fmt.Fprintf(out, "%-16s %3d %s\n", stat.Name, stat.Value, statBar(stat.Value))
		}
	}
}

// statBar renders a fixed-width bar scaled against the stat ceiling.
func statBar(value int) string {
	if value < 0 {
		value = 0
	}
	if value > statCeiling {
		value = statCeiling
	}
	filled := value * statBarWidth / statCeiling
	return strings.Repeat("█", filled) + strings.Repeat("░", statBarWidth-filled)
}
