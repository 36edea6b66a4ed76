package main

import (
	"fmt"
	"io"

	"github.com/goccy/go-json"

	"github.com/jonathan/recipe-finder/internal/config"
	"github.com/jonathan/recipe-finder/internal/store"
	"github.com/jonathan/recipe-finder/internal/types"
)

// loadCatalog loads configuration and the seed catalog. seedOverride, when
// set, replaces catalog.seed_file. Returned recipes carry ids 1..n.
func loadCatalog(seedOverride string) (*config.Config, []types.Recipe, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	seed := cfg.Catalog.SeedFile
	if seedOverride != "" {
		seed = seedOverride
	}

	recipes, err := store.LoadSeed(seed)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	return cfg, store.New().Seed(recipes), nil
}

// writeJSON writes v as indented JSON.
func writeJSON(out io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	_, err = fmt.Fprintln(out, string(data))
	return err
}
