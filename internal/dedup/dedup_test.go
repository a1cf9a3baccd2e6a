package dedup

import (
	"testing"

	"github.com/abelbrown/parallax/internal/lens"
)

func TestNormalizeURL(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"https://example.com/a/", "example.com/a"},
		{"https://www.example.com/a", "example.com/a"},
		{"http://WWW.Example.COM/path/", "example.com/path"},
		{"https://example.com", "example.com"},
		{"not a url at all", "not a url at all"},
	}
	for _, tt := range tests {
		if got := NormalizeURL(tt.raw); got != tt.want {
			t.Errorf("NormalizeURL(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestNormalizeURLRoundTripCollision(t *testing.T) {
	// Trailing slash and www. variants of the same URL must collide.
	a := NormalizeURL("https://example.com/a/")
	b := NormalizeURL("https://www.example.com/a")
	if a != b {
		t.Errorf("normalized URLs differ: %q vs %q", a, b)
	}
}

func TestNormalizeTitle(t *testing.T) {
	if got := NormalizeTitle("New Election Policy, Announced!"); got != "newelectionpolicyannounced" {
		t.Errorf("NormalizeTitle = %q", got)
	}
	if got := NormalizeTitle("?!—…"); got != "" {
		t.Errorf("NormalizeTitle(punctuation) = %q, want empty", got)
	}
}

func TestTitleSimilarityContainment(t *testing.T) {
	// Shorter fully contained in longer: length ratio.
	got := TitleSimilarity("abcd", "abcdefgh")
	if got != 0.5 {
		t.Errorf("containment similarity = %f, want 0.5", got)
	}
}

func TestTitleSimilarityCharacterOverlap(t *testing.T) {
	// No containment: character-set overlap over the longer length.
	// shorter "abc", longer "cbaxyz": c,b,a overlap = 3/6.
	got := TitleSimilarity("abc", "cbaxyz")
	if got != 0.5 {
		t.Errorf("overlap similarity = %f, want 0.5", got)
	}
}

func TestDeduplicateByURL(t *testing.T) {
	existing := []lens.Article{
		{Title: "Original story", Link: "https://example.com/a/"},
	}
	incoming := []lens.Article{
		{Title: "Totally different headline words", Link: "https://www.example.com/a"},
	}
	if got := Deduplicate(existing, incoming); len(got) != 0 {
		t.Errorf("www/trailing-slash variant should dedupe, got %v", got)
	}
}

func TestDeduplicateByTitle(t *testing.T) {
	existing := []lens.Article{
		{Title: "President signs sweeping climate bill", Link: "https://a.example/1"},
	}
	incoming := []lens.Article{
		{Title: "President signs sweeping climate bill!", Link: "https://b.example/2"},
	}
	if got := Deduplicate(existing, incoming); len(got) != 0 {
		t.Errorf("near-identical title should dedupe, got %v", got)
	}
}

func TestDeduplicateKeepsDistinct(t *testing.T) {
	existing := []lens.Article{
		{Title: "Markets rally on rate cut hopes", Link: "https://a.example/1"},
	}
	incoming := []lens.Article{
		{Title: "Volcano erupts in Iceland overnight", Link: "https://b.example/2"},
	}
	got := Deduplicate(existing, incoming)
	if len(got) != 1 {
		t.Fatalf("distinct article should survive, got %d", len(got))
	}
}

func TestDeduplicateEmptyTitle(t *testing.T) {
	incoming := []lens.Article{
		{Title: "???", Link: "https://b.example/2"},
	}
	if got := Deduplicate(nil, incoming); len(got) != 0 {
		t.Errorf("empty normalized title should be skipped, got %v", got)
	}
}

func TestDeduplicateWithinBatch(t *testing.T) {
	incoming := []lens.Article{
		{Title: "Breaking: major earthquake strikes coast", Link: "https://a.example/1"},
		{Title: "Breaking: major earthquake strikes coast", Link: "https://b.example/2"},
	}
	got := Deduplicate(nil, incoming)
	if len(got) != 1 {
		t.Errorf("in-batch duplicate should be caught, got %d", len(got))
	}
}

func TestDeduplicateIdempotent(t *testing.T) {
	existing := []lens.Article{
		{Title: "Original story about elections", Link: "https://a.example/1"},
	}
	incoming := []lens.Article{
		{Title: "Fresh take on monetary policy shifts", Link: "https://b.example/2"},
		{Title: "Wildlife returns to restored wetlands", Link: "https://c.example/3"},
	}

	unique := Deduplicate(existing, incoming)
	if len(unique) != 2 {
		t.Fatalf("expected 2 unique, got %d", len(unique))
	}

	// Feed the accepted set back in: nothing new may survive.
	updated := append(append([]lens.Article{}, existing...), unique...)
	if again := Deduplicate(updated, unique); len(again) != 0 {
		t.Errorf("re-deduplication should yield nothing, got %v", again)
	}
}
