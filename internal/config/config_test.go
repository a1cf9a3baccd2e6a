package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := loadFrom(filepath.Join(t.TempDir(), "nope", "config.json"))
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if cfg.Pipeline.WindowDays != 7 {
		t.Errorf("default window days = %d, want 7", cfg.Pipeline.WindowDays)
	}
	if cfg.Pipeline.TemporalMode != "bonus" {
		t.Errorf("default temporal mode = %q", cfg.Pipeline.TemporalMode)
	}
}

func TestLoadCorruptFileReturnsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{not json"), 0600); err != nil {
		t.Fatal(err)
	}
	cfg, err := loadFrom(path)
	if err != nil {
		t.Fatalf("corrupt file should fall back to defaults: %v", err)
	}
	if !cfg.Models.OpenAI.Enabled {
		t.Error("expected default model settings")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deep", "config.json")

	cfg := DefaultConfig()
	cfg.Search.BraveAPIKey = "brave-key"
	cfg.Pipeline.TemporalMode = "filter"
	if err := cfg.saveTo(path); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	got, err := loadFrom(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if got.Search.BraveAPIKey != "brave-key" {
		t.Errorf("api key = %q", got.Search.BraveAPIKey)
	}
	if got.Pipeline.TemporalMode != "filter" {
		t.Errorf("temporal mode = %q", got.Pipeline.TemporalMode)
	}
}

func TestAutoPopulateFromEnv(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("BRAVE_API_KEY", "bsk-test")

	cfg := DefaultConfig()
	cfg.AutoPopulateFromEnv()
	if cfg.Models.OpenAI.APIKey != "sk-test" {
		t.Errorf("openai key = %q", cfg.Models.OpenAI.APIKey)
	}
	if cfg.Search.BraveAPIKey != "bsk-test" {
		t.Errorf("brave key = %q", cfg.Search.BraveAPIKey)
	}
}

const validCatalog = `
political:
  label: Political Spectrum
  columns:
    - id: left
      label: Left
      color: "#4477ff"
      feeds:
        - https://example.com/left.xml
    - id: right
      label: Right
      color: "#ff4444"
      feeds:
        - https://example.com/right.xml
`

func TestParseCatalog(t *testing.T) {
	catalog, err := ParseCatalog([]byte(validCatalog))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	l, ok := catalog["political"]
	if !ok {
		t.Fatal("missing political lens")
	}
	if len(l.Columns) != 2 {
		t.Fatalf("expected 2 columns, got %d", len(l.Columns))
	}
	if l.Columns[0].ID != "left" || l.Columns[0].Color != "#4477ff" {
		t.Errorf("unexpected first column: %+v", l.Columns[0])
	}
}

func TestParseCatalogValidation(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want error
	}{
		{"empty", ``, ErrEmptyCatalog},
		{"no label", "x:\n  columns:\n    - id: a\n      feeds: [u]\n", ErrMissingLabel},
		{"no columns", "x:\n  label: X\n", ErrNoColumns},
		{"missing column id", "x:\n  label: X\n  columns:\n    - label: A\n      feeds: [u]\n", ErrMissingColumn},
		{"duplicate id", "x:\n  label: X\n  columns:\n    - id: a\n      feeds: [u]\n    - id: a\n      feeds: [u]\n", ErrDuplicateID},
		{"no feeds", "x:\n  label: X\n  columns:\n    - id: a\n", ErrNoFeeds},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCatalog([]byte(tt.yaml))
			if !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestParseCatalogMalformedYAML(t *testing.T) {
	if _, err := ParseCatalog([]byte(": not yaml : [")); err == nil {
		t.Error("expected error for malformed YAML")
	}
}

func TestLoadCatalogMissingFile(t *testing.T) {
	if _, err := LoadCatalog(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
