// Package semantic extracts typed relationships between terms from an
// LLM and normalizes them into a deduplicated edge set.
package semantic

import (
	"sort"
	"strings"
	"time"
)

// Term is one concept in the run's vocabulary. Labels are unique
// case-insensitively; edges and layout nodes reference terms by
// lowercased label lookup.
type Term struct {
	Label string `json:"label"`
	// Type is one of unique, convergent, contradictory, emergent.
	Type string `json:"type"`
	// Slices are discipline indices, primary first.
	Slices     []int   `json:"slices,omitempty"`
	Centrality float64 `json:"centrality,omitempty"`
}

// Edge is an LLM-asserted typed relationship between two terms. Both
// endpoints are guaranteed to resolve to known terms.
type Edge struct {
	TermA     string  `json:"term_a"`
	TermB     string  `json:"term_b"`
	Type      string  `json:"type"`
	Strength  float64 `json:"strength"`
	Rationale string  `json:"rationale"`
}

// EdgeSet is the result of one extraction pass.
type EdgeSet struct {
	Relationships []Edge    `json:"relationships"`
	GeneratedAt   time.Time `json:"generated_at"`
	TermCount     int       `json:"term_count"`
	BatchCount    int       `json:"batch_count"`
}

// validEdgeTypes are the relationship types the model may assert.
// Anything else falls back to "complementary".
var validEdgeTypes = map[string]bool{
	"analogical":    true,
	"causal":        true,
	"contradictory": true,
	"complementary": true,
	"hierarchical":  true,
	"instantiates":  true,
}

// BuildTermIndex maps lowercased trimmed labels to term positions.
func BuildTermIndex(terms []Term) map[string]int {
	idx := make(map[string]int, len(terms))
	for i, t := range terms {
		idx[strings.ToLower(strings.TrimSpace(t.Label))] = i
	}
	return idx
}

// pairKey is the canonical dedup key for an unordered pair plus type.
func pairKey(a, b, edgeType string) string {
	pair := []string{strings.ToLower(a), strings.ToLower(b)}
	sort.Strings(pair)
	return pair[0] + "|||" + pair[1] + "|||" + edgeType
}
