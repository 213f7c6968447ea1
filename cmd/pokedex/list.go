package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"pokedex-service/internal/text"
)

const defaultListLimit = 151

func newListCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the Pokémon catalog",
		Long:  "Lists up to --limit entries from the Pokédex catalog in upstream order.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, limit)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "l", defaultListLimit, "Maximum number of entries to list")

	return cmd
}

func runList(cmd *cobra.Command, limit int) error {
	if limit <= 0 {
		return fmt.Errorf("limit must be positive, got %d", limit)
	}

	provider := resolveProvider(cmd)
	entries, err := provider.FetchCatalog(cmd.Context(), limit)
	if err != nil {
		return fmt.Errorf("listing catalog: %w", err)
	}

	out := cmd.OutOrStdout()
	if len(entries) == 0 {
		fmt.Fprintln(out, "No Pokémon found.")
		return nil
	}

	for i, entry := range entries {
		fmt.Fprintf(out, "%3d - %s\n", i+1, text.Title(entry.Name))
	}
	return nil
}
