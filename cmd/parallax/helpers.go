package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/abelbrown/parallax/internal/brain"
	"github.com/abelbrown/parallax/internal/config"
	"github.com/abelbrown/parallax/internal/lens"
	"github.com/abelbrown/parallax/internal/store"
)

// loadConfig reads the app config; failures fall back to defaults so
// the CLI stays usable.
func loadConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "parallax: config load failed, using defaults: %v\n", err)
		cfg = config.DefaultConfig()
		cfg.AutoPopulateFromEnv()
	}
	return cfg
}

// loadCatalog returns the lens catalog, preferring a YAML override
// from the config when present.
func loadCatalog(cfg *config.Config) map[string]lens.Lens {
	if cfg.CatalogFile != "" {
		catalog, err := config.LoadCatalog(cfg.CatalogFile)
		if err == nil {
			return catalog
		}
		fmt.Fprintf(os.Stderr, "parallax: catalog %s rejected (%v), using built-in\n", cfg.CatalogFile, err)
	}
	return lens.BuiltinCatalog()
}

// sortedLensIDs gives a stable listing order for map-backed catalogs.
func sortedLensIDs(catalog map[string]lens.Lens) []string {
	ids := make([]string, 0, len(catalog))
	for id := range catalog {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// openStore opens the run history database under the app data dir.
func openStore() (*store.Store, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get home directory: %w", err)
	}
	dir := filepath.Join(home, ".parallax")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return store.New(filepath.Join(dir, "runs.db"))
}

// buildProvider assembles the provider manager from config and returns
// the best available provider, or nil when nothing is configured.
func buildProvider(cfg *config.Config) brain.Provider {
	pm := brain.NewProviderManager()
	if cfg.Models.OpenAI.Enabled {
		pm.AddProvider(brain.NewOpenAIProvider(cfg.Models.OpenAI.APIKey, cfg.Models.OpenAI.Model))
	}
	if cfg.Models.Local.Enabled {
		pm.AddProvider(brain.NewHTTPProvider("local", cfg.Models.Local.Endpoint, cfg.Models.Local.Model))
	}
	if cfg.Models.Local.Priority < cfg.Models.OpenAI.Priority {
		pm.SetPreferred("local")
	}
	return pm.GetAvailable()
}
