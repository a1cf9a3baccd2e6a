package lens

import "strings"

// stopwords are common English words excluded from scoring tokens.
var stopwords = map[string]bool{
	"the": true, "and": true, "for": true, "that": true, "this": true,
	"with": true, "from": true, "have": true, "been": true, "they": true,
	"will": true, "more": true, "also": true, "about": true, "into": true,
	"which": true, "their": true, "after": true, "when": true, "were": true,
	"what": true, "said": true, "says": true, "year": true, "over": true,
	"than": true, "just": true, "some": true, "such": true, "would": true,
	"could": true, "then": true, "these": true, "those": true, "there": true,
	"where": true, "while": true, "other": true, "first": true, "last": true,
	"news": true, "report": true, "amid": true, "week": true, "days": true,
	"time": true, "make": true, "made": true,
	"are": true, "was": true, "has": true, "had": true, "can": true,
	"may": true, "but": true, "not": true, "you": true, "his": true,
	"her": true, "its": true, "our": true, "all": true, "any": true,
	"out": true, "who": true, "how": true, "why": true, "she": true,
	"him": true, "get": true, "got": true, "new": true, "one": true,
	"two": true, "via": true,
}

// Tokenize normalizes free text into scoring tokens: lowercase, strip
// everything outside [a-z0-9 ], split on whitespace, keep words of length
// >= 3 that are not stopwords. Empty input yields nil.
func Tokenize(text string) []string {
	if text == "" {
		return nil
	}
	lower := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r >= 'A' && r <= 'Z':
			return r + ('a' - 'A')
		default:
			return ' '
		}
	}, text)

	var tokens []string
	for _, w := range strings.Fields(lower) {
		if len(w) < 3 || stopwords[w] {
			continue
		}
		tokens = append(tokens, w)
	}
	return tokens
}

// TokenSet returns the tokens of text as a membership set.
func TokenSet(text string) map[string]bool {
	set := make(map[string]bool)
	for _, t := range Tokenize(text) {
		set[t] = true
	}
	return set
}
