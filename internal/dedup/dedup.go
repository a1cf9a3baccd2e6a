// Package dedup merges near-duplicate articles arriving from multiple
// sources, using URL normalization and a fuzzy title-similarity check.
//
// The similarity metric is an intentionally approximate character-overlap
// heuristic: the 0.8 threshold was tuned against this exact formula, so
// it must not be swapped for edit distance or anything "better".
package dedup

import (
	"net/url"
	"strings"

	"github.com/abelbrown/parallax/internal/lens"
)

// similarityThreshold is the title-similarity cutoff above which an
// incoming article is treated as a duplicate.
const similarityThreshold = 0.8

// NormalizeURL reduces a link to hostname (www.-stripped) plus path
// (trailing-slash-stripped). Unparseable URLs fall back to the raw string.
func NormalizeURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Hostname() == "" {
		return raw
	}
	host := strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
	path := strings.TrimSuffix(u.Path, "/")
	return host + path
}

// NormalizeTitle lowercases a title and strips every non-alphanumeric
// character.
func NormalizeTitle(title string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(title) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// TitleSimilarity compares two normalized titles. If the shorter is fully
// contained in the longer, similarity is the length ratio. Otherwise it
// is the fraction of the longer title's characters that appear anywhere
// in the shorter title's character set -- order-insensitive overlap, not
// edit distance.
func TitleSimilarity(a, b string) float64 {
	shorter, longer := a, b
	if len(shorter) > len(longer) {
		shorter, longer = longer, shorter
	}
	if len(longer) == 0 {
		return 0
	}

	if strings.Contains(longer, shorter) {
		return float64(len(shorter)) / float64(len(longer))
	}

	chars := make(map[byte]bool, len(shorter))
	for i := 0; i < len(shorter); i++ {
		chars[shorter[i]] = true
	}
	overlap := 0
	for i := 0; i < len(longer); i++ {
		if chars[longer[i]] {
			overlap++
		}
	}
	return float64(overlap) / float64(len(longer))
}

// Deduplicate returns the subset of incoming articles not already present
// in existing, by normalized URL or fuzzy title match. Accepted articles
// extend the seen sets, so duplicates within the incoming batch are also
// caught.
func Deduplicate(existing, incoming []lens.Article) []lens.Article {
	seenURLs := make(map[string]bool, len(existing))
	seenTitles := make([]string, 0, len(existing))
	for _, a := range existing {
		seenURLs[NormalizeURL(a.Link)] = true
		if t := NormalizeTitle(a.Title); t != "" {
			seenTitles = append(seenTitles, t)
		}
	}

	var unique []lens.Article
	for _, a := range incoming {
		u := NormalizeURL(a.Link)
		if seenURLs[u] {
			continue
		}
		title := NormalizeTitle(a.Title)
		if title == "" {
			continue
		}
		if tooSimilar(title, seenTitles) {
			continue
		}

		unique = append(unique, a)
		seenURLs[u] = true
		seenTitles = append(seenTitles, title)
	}
	return unique
}

func tooSimilar(title string, seen []string) bool {
	for _, s := range seen {
		if TitleSimilarity(title, s) > similarityThreshold {
			return true
		}
	}
	return false
}
