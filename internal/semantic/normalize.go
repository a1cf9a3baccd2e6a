package semantic

import (
	"math"
	"strings"

	"github.com/tidwall/gjson"
)

// maxRationaleLen caps the free-text rationale carried on an edge.
const maxRationaleLen = 200

// defaultStrength is used when the model omits strength or sends
// something that is not a number.
const defaultStrength = 0.5

// RawRelationship is one relationship as the model asserted it, before
// validation. Strength is a pointer so "absent" and "zero" stay distinct
// until normalization decides.
type RawRelationship struct {
	TermA     string
	TermB     string
	Type      string
	Strength  *float64
	Rationale string
}

// parseRawRelationships reads the model's relationships array out of a
// tolerant-extracted JSON result.
func parseRawRelationships(parsed gjson.Result) []RawRelationship {
	rels := parsed.Get("relationships")
	if !rels.IsArray() {
		return nil
	}

	var out []RawRelationship
	for _, r := range rels.Array() {
		raw := RawRelationship{
			TermA:     r.Get("term_a").String(),
			TermB:     r.Get("term_b").String(),
			Type:      r.Get("type").String(),
			Rationale: r.Get("rationale").String(),
		}
		if s := r.Get("strength"); s.Exists() && (s.Type == gjson.Number) {
			v := s.Float()
			raw.Strength = &v
		}
		out = append(out, raw)
	}
	return out
}

// NormalizeRelationships validates raw relationships against the known
// term set and produces a deduplicated edge list. Self-loops, unknown
// endpoints, and repeats of the same unordered pair + type are dropped;
// unknown types coerce to "complementary"; strength clamps to [0,1].
func NormalizeRelationships(raw []RawRelationship, termIndex map[string]int) []Edge {
	seen := make(map[string]bool)
	var out []Edge

	for _, rel := range raw {
		a := strings.TrimSpace(rel.TermA)
		b := strings.TrimSpace(rel.TermB)
		if a == "" || b == "" || strings.EqualFold(a, b) {
			continue
		}
		if _, ok := termIndex[strings.ToLower(a)]; !ok {
			continue
		}
		if _, ok := termIndex[strings.ToLower(b)]; !ok {
			continue
		}

		edgeType := rel.Type
		if !validEdgeTypes[edgeType] {
			edgeType = "complementary"
		}

		strength := defaultStrength
		if rel.Strength != nil && !math.IsNaN(*rel.Strength) {
			strength = math.Max(0, math.Min(1, *rel.Strength))
		}

		rationale := strings.TrimSpace(rel.Rationale)
		if runes := []rune(rationale); len(runes) > maxRationaleLen {
			rationale = string(runes[:maxRationaleLen])
		}

		key := pairKey(a, b, edgeType)
		if seen[key] {
			continue
		}
		seen[key] = true

		out = append(out, Edge{
			TermA:     a,
			TermB:     b,
			Type:      edgeType,
			Strength:  strength,
			Rationale: rationale,
		})
	}
	return out
}
