package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/abelbrown/parallax/internal/lens"
)

// Catalog validation failures. Wrapped with position detail; check with
// errors.Is.
var (
	ErrEmptyCatalog  = errors.New("catalog has no lenses")
	ErrMissingLabel  = errors.New("lens has no label")
	ErrNoColumns     = errors.New("lens has no columns")
	ErrMissingColumn = errors.New("column missing id")
	ErrDuplicateID   = errors.New("duplicate column id")
	ErrNoFeeds       = errors.New("column has no feeds")
)

// LoadCatalog reads a YAML lens catalog from disk and validates it. The
// file maps lens ids to lens definitions, mirroring the built-in
// catalog's shape.
func LoadCatalog(path string) (map[string]lens.Lens, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}
	return ParseCatalog(data)
}

// ParseCatalog decodes and validates catalog YAML.
func ParseCatalog(data []byte) (map[string]lens.Lens, error) {
	var catalog map[string]lens.Lens
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	if err := validateCatalog(catalog); err != nil {
		return nil, err
	}
	return catalog, nil
}

// validateCatalog enforces the invariants downstream code relies on:
// every lens has labeled columns, every column has an id and at least
// one feed, and column ids are unique within a lens.
func validateCatalog(catalog map[string]lens.Lens) error {
	if len(catalog) == 0 {
		return ErrEmptyCatalog
	}
	for id, l := range catalog {
		if l.Label == "" {
			return fmt.Errorf("%w: lens %q", ErrMissingLabel, id)
		}
		if len(l.Columns) == 0 {
			return fmt.Errorf("%w: lens %q", ErrNoColumns, id)
		}
		seen := make(map[string]bool)
		for i, col := range l.Columns {
			if col.ID == "" {
				return fmt.Errorf("%w: lens %q column %d", ErrMissingColumn, id, i)
			}
			if seen[col.ID] {
				return fmt.Errorf("%w: lens %q column %q", ErrDuplicateID, id, col.ID)
			}
			seen[col.ID] = true
			if len(col.Feeds) == 0 {
				return fmt.Errorf("%w: lens %q column %q", ErrNoFeeds, id, col.ID)
			}
		}
	}
	return nil
}
