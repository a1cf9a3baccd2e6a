// Package lens defines the core data model for a Parallax run: articles,
// perspective columns, lens catalogs, and the topic fingerprint that
// articles are scored against.
package lens

import "time"

// Article is the canonical article shape produced by the feed normalizer.
// Immutable once normalized; downstream stages treat it as read-only.
type Article struct {
	Title       string `json:"title"`
	Link        string `json:"link"`        // canonical URL
	Description string `json:"description"` // HTML-stripped, at most 300 chars
	PubDate     string `json:"pub_date"`    // raw source-format date string, may be empty
}

// Column is one perspective bucket within a lens, backed by an ordered
// list of feed URLs.
type Column struct {
	ID    string   `yaml:"id" json:"id"`
	Label string   `yaml:"label" json:"label"`
	Color string   `yaml:"color" json:"color"`
	Feeds []string `yaml:"feeds" json:"feeds"`
}

// Lens is a top-level grouping of perspective columns.
type Lens struct {
	Label   string   `yaml:"label" json:"label"`
	Columns []Column `yaml:"columns" json:"columns"`
}

// Fingerprint is the token/entity/date profile a run scores articles
// against. Built once per run and shared read-only across columns.
type Fingerprint struct {
	Tokens   []string  // lowercase scoring tokens, deduplicated, order preserved
	Entities []string  // case-sensitive surface forms from entity extraction
	SeedDate time.Time // zero when the run has no temporal anchor
}

// NewFingerprint builds a fingerprint from a seed topic string and any
// extracted entities. Duplicate topic tokens collapse to their first
// occurrence.
func NewFingerprint(topic string, entities []string, seed time.Time) Fingerprint {
	seen := make(map[string]bool)
	var tokens []string
	for _, t := range Tokenize(topic) {
		if seen[t] {
			continue
		}
		seen[t] = true
		tokens = append(tokens, t)
	}
	return Fingerprint{Tokens: tokens, Entities: entities, SeedDate: seed}
}
