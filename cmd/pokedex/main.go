// Package main provides the entry point for the pokedex CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var version = "0.1.0-dev"

func main() {
	_ = godotenv.Load()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	rootCmd := &cobra.Command{
		Use:     "pokedex",
		Short:   "Browse the Pokédex from the terminal, powered by PokéAPI",
		Version: version,
	}

	rootCmd.PersistentFlags().String("base-url", "", "Override the PokéAPI base URL")
	rootCmd.PersistentFlags().Bool("fixture", false, "Use the built-in fixture data instead of the live API")

	rootCmd.AddCommand(
		newListCmd(),
		newShowCmd(),
	)

	return rootCmd.ExecuteContext(ctx)
}
