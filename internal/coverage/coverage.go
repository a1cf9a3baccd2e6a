// Package coverage detects cross-column story overlap: how many other
// perspective columns are carrying the same story.
package coverage

import (
	"github.com/abelbrown/parallax/internal/lens"
)

// minSharedTokens is how many qualifying title tokens two articles must
// share before their columns count as covering the same story.
const minSharedTokens = 2

// longTokenLen marks title tokens that qualify on length alone, even
// when they are not topic tokens.
const longTokenLen = 5

// CrossMentionCount returns how many other columns have at least one
// article sharing minSharedTokens qualifying title tokens with this
// article. Each column counts at most once; maximum is columns-1.
func CrossMentionCount(article lens.Article, byColumn map[string][]lens.Article, thisColumnID string, topicTokens []string) int {
	topical := make(map[string]bool, len(topicTokens))
	for _, t := range topicTokens {
		topical[t] = true
	}

	var titleTokens []string
	for _, t := range lens.Tokenize(article.Title) {
		if topical[t] || len(t) >= longTokenLen {
			titleTokens = append(titleTokens, t)
		}
	}
	if len(titleTokens) == 0 {
		return 0
	}

	count := 0
	for colID, articles := range byColumn {
		if colID == thisColumnID {
			continue
		}
		for _, other := range articles {
			otherTokens := lens.TokenSet(other.Title)
			shared := 0
			for _, t := range titleTokens {
				if otherTokens[t] {
					shared++
				}
			}
			if shared >= minSharedTokens {
				count++
				break // count each column once
			}
		}
	}
	return count
}
