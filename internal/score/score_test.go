package score

import (
	"testing"
	"time"

	"github.com/abelbrown/parallax/internal/lens"
)

func TestExactEmptyTopicTokens(t *testing.T) {
	a := lens.Article{Title: "Anything at all", Description: "whatever"}
	if got := Exact(a, nil); got != 0 {
		t.Errorf("Exact with no topic tokens = %d, want 0", got)
	}
}

func TestExactFullMatch(t *testing.T) {
	// Worked example: both topic tokens present in the title.
	a := lens.Article{Title: "New election policy announced", Description: ""}
	if got := Exact(a, []string{"election", "policy"}); got != 100 {
		t.Errorf("Exact = %d, want 100", got)
	}
}

func TestExactPartialMatch(t *testing.T) {
	a := lens.Article{Title: "Election results delayed", Description: ""}
	if got := Exact(a, []string{"election", "policy"}); got != 50 {
		t.Errorf("Exact = %d, want 50", got)
	}
}

func TestExactMatchesDescription(t *testing.T) {
	a := lens.Article{Title: "Headline", Description: "a major policy shift"}
	if got := Exact(a, []string{"policy"}); got != 100 {
		t.Errorf("Exact = %d, want 100 (description counts)", got)
	}
}

func TestWithEntitiesWorkedExample(t *testing.T) {
	// Full token overlap, no entity match: round((1.0*0.6 + 0*0.4)*100) = 60.
	a := lens.Article{Title: "New election policy announced", Description: ""}
	got := WithEntities(a, []string{"election", "policy"}, []string{"Jane Smith"})
	if got != 60 {
		t.Errorf("WithEntities = %d, want 60", got)
	}
}

func TestWithEntitiesEntityMatch(t *testing.T) {
	a := lens.Article{Title: "Jane Smith unveils election policy", Description: ""}
	got := WithEntities(a, []string{"election", "policy"}, []string{"Jane Smith"})
	if got != 100 {
		t.Errorf("WithEntities = %d, want 100", got)
	}
}

func TestWithEntitiesCaseInsensitive(t *testing.T) {
	a := lens.Article{Title: "JANE SMITH speaks", Description: ""}
	got := WithEntities(a, nil, []string{"Jane Smith"})
	if got != 40 {
		t.Errorf("WithEntities = %d, want 40 (entity-only match)", got)
	}
}

func TestWithEntitiesEmptyLists(t *testing.T) {
	a := lens.Article{Title: "New election policy announced", Description: ""}
	// Empty entity list contributes 0, it is not treated as a full score.
	if got := WithEntities(a, []string{"election"}, nil); got != 60 {
		t.Errorf("WithEntities = %d, want 60", got)
	}
	if got := WithEntities(a, nil, nil); got != 0 {
		t.Errorf("WithEntities with nothing = %d, want 0", got)
	}
}

func TestWithEntitiesBounds(t *testing.T) {
	articles := []lens.Article{
		{},
		{Title: "election"},
		{Title: "Jane Smith on election policy", Description: "policy"},
	}
	for _, a := range articles {
		got := WithEntities(a, []string{"election", "policy"}, []string{"Jane Smith"})
		if got < 0 || got > 100 {
			t.Errorf("WithEntities(%q) = %d, out of [0,100]", a.Title, got)
		}
	}
}

func TestSoftPrefixMatch(t *testing.T) {
	a := lens.Article{Title: "Electoral reforms proposed", Description: ""}
	// "election" vs "electoral" share the "elect" prefix.
	if got := Soft(a, []string{"election"}); got != 100 {
		t.Errorf("Soft = %d, want 100", got)
	}
}

func TestSoftShortTokensNeedExactMatch(t *testing.T) {
	a := lens.Article{Title: "oil markets rally", Description: ""}
	if got := Soft(a, []string{"oil"}); got != 100 {
		t.Errorf("Soft exact short token = %d, want 100", got)
	}
	// "oil" vs "oils" -- below prefix length, no prefix tolerance.
	b := lens.Article{Title: "oils markets rally", Description: ""}
	if got := Soft(b, []string{"oil"}); got != 0 {
		t.Errorf("Soft short-token near miss = %d, want 0", got)
	}
}

func TestSoftEmptyTopicTokens(t *testing.T) {
	if got := Soft(lens.Article{Title: "x"}, nil); got != 0 {
		t.Errorf("Soft with no tokens = %d, want 0", got)
	}
}

func TestTemporalBonus(t *testing.T) {
	seed := time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		pubDate string
		want    int
	}{
		{"inside window", "Wed, 08 Jan 2025 12:00:00 GMT", 10},
		{"inside double window", "Mon, 30 Dec 2024 12:00:00 GMT", 0},
		{"outside double window", "Sat, 30 Nov 2024 12:00:00 GMT", -10},
		{"missing date", "", 0},
		{"garbage date", "sometime last tuesday-ish", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TemporalBonus(tt.pubDate, seed, 7); got != tt.want {
				t.Errorf("TemporalBonus(%q) = %d, want %d", tt.pubDate, got, tt.want)
			}
		})
	}
}

func TestTemporalBonusZeroSeed(t *testing.T) {
	if got := TemporalBonus("Wed, 08 Jan 2025 12:00:00 GMT", time.Time{}, 7); got != 0 {
		t.Errorf("TemporalBonus with zero seed = %d, want 0", got)
	}
}

func TestFilterByTemporalProximity(t *testing.T) {
	seed := time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)
	articles := []lens.Article{
		{Title: "fresh", PubDate: "Thu, 09 Jan 2025 12:00:00 GMT"},
		{Title: "stale", PubDate: "Sat, 01 Jun 2024 12:00:00 GMT"},
		{Title: "unknown", PubDate: ""},
		{Title: "garbage", PubDate: "n/a"},
	}

	kept := FilterByTemporalProximity(articles, seed, 7)
	if len(kept) != 3 {
		t.Fatalf("kept %d articles, want 3", len(kept))
	}
	for _, a := range kept {
		if a.Title == "stale" {
			t.Error("stale article should have been dropped")
		}
	}
}

func TestFilterByTemporalProximityZeroSeed(t *testing.T) {
	articles := []lens.Article{{Title: "a"}, {Title: "b"}}
	if kept := FilterByTemporalProximity(articles, time.Time{}, 7); len(kept) != 2 {
		t.Errorf("zero seed should keep everything, kept %d", len(kept))
	}
}

func TestParseArticleDate(t *testing.T) {
	valid := []string{
		"Mon, 06 Jan 2025 10:00:00 GMT",
		"Mon, 06 Jan 2025 10:00:00 +0000",
		"2025-01-06T10:00:00Z",
		"2025-01-06",
		"2 hours ago",
		"1 day ago",
	}
	for _, raw := range valid {
		if _, ok := ParseArticleDate(raw); !ok {
			t.Errorf("ParseArticleDate(%q) failed, want success", raw)
		}
	}

	invalid := []string{"", "   ", "yesterday-ish", "13/45/9999"}
	for _, raw := range invalid {
		if _, ok := ParseArticleDate(raw); ok {
			t.Errorf("ParseArticleDate(%q) succeeded, want failure", raw)
		}
	}
}
