// Package score computes article relevance against a topic fingerprint.
//
// All scoring functions are pure and return integers in [0, 100], except
// TemporalBonus which is an additive modifier in {-10, 0, +10}. The hard
// temporal filter and the soft bonus are alternative strategies; callers
// pick one, never both.
package score

import (
	"math"
	"strings"
	"time"

	"github.com/abelbrown/parallax/internal/lens"
)

// softPrefixLen is how many leading characters two tokens must share to
// count as morphological variants of each other.
const softPrefixLen = 5

// DefaultWindowDays is the default temporal relevance window.
const DefaultWindowDays = 7

func haystackText(a lens.Article) string {
	return a.Title + " " + a.Description
}

// Exact scores an article as the fraction of topic tokens present in the
// union of title and description tokens. Zero topic tokens scores 0.
func Exact(a lens.Article, topicTokens []string) int {
	if len(topicTokens) == 0 {
		return 0
	}
	haystack := lens.TokenSet(haystackText(a))
	matches := 0
	for _, t := range topicTokens {
		if haystack[t] {
			matches++
		}
	}
	return int(math.Round(float64(matches) / float64(len(topicTokens)) * 100))
}

// WithEntities blends token overlap (60%) with named-entity substring
// matches (40%). Entity matching is case-insensitive containment so
// proper nouns ("Jane Smith", "Operation Epic Fury") survive intact.
// An empty entity list contributes zero to that term.
func WithEntities(a lens.Article, topicTokens, entities []string) int {
	haystack := lens.TokenSet(haystackText(a))

	topicFrac := 0.0
	if len(topicTokens) > 0 {
		matches := 0
		for _, t := range topicTokens {
			if haystack[t] {
				matches++
			}
		}
		topicFrac = float64(matches) / float64(len(topicTokens))
	}

	entityFrac := 0.0
	if len(entities) > 0 {
		lower := strings.ToLower(haystackText(a))
		matches := 0
		for _, e := range entities {
			if e != "" && strings.Contains(lower, strings.ToLower(e)) {
				matches++
			}
		}
		entityFrac = float64(matches) / float64(len(entities))
	}

	return int(math.Round((topicFrac*0.6 + entityFrac*0.4) * 100))
}

// Soft scores like Exact but tolerates morphological variants: a topic
// token matches an article token when they are equal or share a
// five-character prefix. Tokens shorter than the prefix length compare
// on full length only.
func Soft(a lens.Article, topicTokens []string) int {
	if len(topicTokens) == 0 {
		return 0
	}
	articleTokens := lens.Tokenize(haystackText(a))

	matches := 0
	for _, t := range topicTokens {
		for _, at := range articleTokens {
			if softMatch(t, at) {
				matches++
				break
			}
		}
	}
	return int(math.Round(float64(matches) / float64(len(topicTokens)) * 100))
}

func softMatch(a, b string) bool {
	if a == b {
		return true
	}
	if len(a) < softPrefixLen || len(b) < softPrefixLen {
		return false
	}
	return a[:softPrefixLen] == b[:softPrefixLen]
}

// TemporalBonus rewards articles published near the seed date: +10 inside
// windowDays, 0 inside twice the window, -10 beyond. Unknown or
// unparseable dates are never penalized and return 0.
func TemporalBonus(pubDate string, seed time.Time, windowDays int) int {
	if seed.IsZero() {
		return 0
	}
	published, ok := ParseArticleDate(pubDate)
	if !ok {
		return 0
	}
	if windowDays <= 0 {
		windowDays = DefaultWindowDays
	}

	window := time.Duration(windowDays) * 24 * time.Hour
	diff := seed.Sub(published)
	if diff < 0 {
		diff = -diff
	}

	switch {
	case diff <= window:
		return 10
	case diff <= 2*window:
		return 0
	default:
		return -10
	}
}

// FilterByTemporalProximity drops articles published more than windowDays
// from the seed date. Articles with unknown or unparseable dates are
// always kept (fail-open), and a zero seed date keeps everything.
func FilterByTemporalProximity(articles []lens.Article, seed time.Time, windowDays int) []lens.Article {
	if seed.IsZero() {
		return articles
	}
	if windowDays <= 0 {
		windowDays = DefaultWindowDays
	}
	window := time.Duration(windowDays) * 24 * time.Hour

	kept := make([]lens.Article, 0, len(articles))
	for _, a := range articles {
		published, ok := ParseArticleDate(a.PubDate)
		if !ok {
			kept = append(kept, a)
			continue
		}
		diff := seed.Sub(published)
		if diff < 0 {
			diff = -diff
		}
		if diff <= window {
			kept = append(kept, a)
		}
	}
	return kept
}
