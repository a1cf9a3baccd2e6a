// Package run owns the per-run pipeline state: the topic fingerprint,
// the active lens, fetched article sets, and any semantic graph built
// on top of them. All state lives on the Session; nothing here is a
// process-wide singleton, so concurrent runs with different lenses do
// not interfere.
package run

import (
	"context"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/abelbrown/parallax/internal/brain"
	"github.com/abelbrown/parallax/internal/coverage"
	"github.com/abelbrown/parallax/internal/dedup"
	"github.com/abelbrown/parallax/internal/feeds"
	"github.com/abelbrown/parallax/internal/fetch"
	"github.com/abelbrown/parallax/internal/layout"
	"github.com/abelbrown/parallax/internal/lens"
	"github.com/abelbrown/parallax/internal/logging"
	"github.com/abelbrown/parallax/internal/score"
	"github.com/abelbrown/parallax/internal/semantic"
)

// TemporalMode selects how the seed date shapes results. The two modes
// are alternatives, never combined.
type TemporalMode string

const (
	// TemporalBonus keeps every article and folds a +10/0/-10 bonus
	// into its score.
	TemporalBonus TemporalMode = "bonus"
	// TemporalFilter drops articles published outside the window.
	// Articles with unknown dates always survive.
	TemporalFilter TemporalMode = "filter"
)

// maxConcurrentFetches bounds how many feeds we hit at once.
const maxConcurrentFetches = 4

// ScoredArticle is an article with its relevance score and the number
// of other columns covering the same story.
type ScoredArticle struct {
	lens.Article
	Score         int `json:"score"`
	CrossMentions int `json:"cross_mentions"`
}

// ColumnResult is one column's ranked article set.
type ColumnResult struct {
	Column   lens.Column     `json:"column"`
	Articles []ScoredArticle `json:"articles"`
}

// Session carries all state for one research run.
type Session struct {
	Topic       string
	Fingerprint lens.Fingerprint
	Lens        lens.Lens
	Mode        TemporalMode
	WindowDays  int

	fetcher *fetch.Fetcher

	mu      sync.Mutex
	results []ColumnResult
	edges   *semantic.EdgeSet
	strands []layout.Strand
}

// NewSession builds a session for a topic viewed through a lens. The
// fingerprint's tokens come from the topic text; entities and a seed
// date may be supplied by the caller (typically LLM-extracted).
func NewSession(topic string, l lens.Lens, entities []string, seedDate time.Time, fetcher *fetch.Fetcher) *Session {
	return &Session{
		Topic:       topic,
		Fingerprint: lens.NewFingerprint(topic, entities, seedDate),
		Lens:        l,
		Mode:        TemporalBonus,
		WindowDays:  score.DefaultWindowDays,
		fetcher:     fetcher,
	}
}

// Run executes the article pipeline: fetch every column's feeds with
// bounded concurrency, normalize, apply the temporal mode, deduplicate
// within each column, score, count cross-column coverage, and rank.
// Individual feed failures degrade to partial data; Run only errors
// when the context dies.
func (s *Session) Run(ctx context.Context) ([]ColumnResult, error) {
	raw := make([][]lens.Article, len(s.Lens.Columns))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentFetches)
	var mu sync.Mutex

	for i, col := range s.Lens.Columns {
		for _, feedURL := range col.Feeds {
			g.Go(func() error {
				if gctx.Err() != nil {
					return gctx.Err()
				}
				body, contentType, err := s.fetcher.Fetch(gctx, feedURL, nil)
				if err != nil {
					logging.Warn("feed fetch failed", "column", col.ID, "url", feedURL, "error", err)
					return nil
				}
				articles := feeds.Normalize(body, contentType)
				mu.Lock()
				raw[i] = append(raw[i], articles...)
				mu.Unlock()
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Per-column refinement is pure and cheap; run it inline.
	byColumn := make(map[string][]lens.Article, len(s.Lens.Columns))
	unique := make([][]lens.Article, len(s.Lens.Columns))
	for i, col := range s.Lens.Columns {
		articles := raw[i]
		if s.Mode == TemporalFilter {
			articles = score.FilterByTemporalProximity(articles, s.Fingerprint.SeedDate, s.WindowDays)
		}
		articles = dedup.Deduplicate(nil, articles)
		unique[i] = articles
		byColumn[col.ID] = articles
	}

	results := make([]ColumnResult, len(s.Lens.Columns))
	for i, col := range s.Lens.Columns {
		scored := make([]ScoredArticle, 0, len(unique[i]))
		for _, a := range unique[i] {
			scored = append(scored, ScoredArticle{
				Article:       a,
				Score:         s.scoreArticle(a),
				CrossMentions: coverage.CrossMentionCount(a, byColumn, col.ID, s.Fingerprint.Tokens),
			})
		}
		sort.SliceStable(scored, func(x, y int) bool {
			return scored[x].Score > scored[y].Score
		})
		results[i] = ColumnResult{Column: col, Articles: scored}
	}

	s.mu.Lock()
	s.results = results
	s.mu.Unlock()
	return results, nil
}

// scoreArticle picks the scoring strategy: entity-weighted when the
// fingerprint carries entities, plain token overlap otherwise. In
// bonus mode the temporal modifier is folded in.
func (s *Session) scoreArticle(a lens.Article) int {
	var sc int
	if len(s.Fingerprint.Entities) > 0 {
		sc = score.WithEntities(a, s.Fingerprint.Tokens, s.Fingerprint.Entities)
	} else {
		sc = score.Exact(a, s.Fingerprint.Tokens)
	}
	if s.Mode == TemporalBonus {
		sc += score.TemporalBonus(a.PubDate, s.Fingerprint.SeedDate, s.WindowDays)
	}
	return sc
}

// Results returns the last completed pipeline output.
func (s *Session) Results() []ColumnResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.results
}

// ExtractGraph asks a provider for relationships among terms and keeps
// the resulting edge set on the session.
func (s *Session) ExtractGraph(ctx context.Context, provider brain.Provider, terms []semantic.Term, disciplines []string) *semantic.EdgeSet {
	set := semantic.NewExtractor(provider).Extract(ctx, s.Topic, terms, disciplines)
	s.mu.Lock()
	s.edges = set
	s.mu.Unlock()
	return set
}

// BuildStrands lays out the current edge set into gallery strands.
func (s *Session) BuildStrands(terms []semantic.Term) []layout.Strand {
	s.mu.Lock()
	set := s.edges
	s.mu.Unlock()

	var edges []semantic.Edge
	if set != nil {
		edges = set.Relationships
	}
	strands := layout.FindStrands(terms, edges)

	s.mu.Lock()
	s.strands = strands
	s.mu.Unlock()
	return strands
}

// Strands returns the strands from the last BuildStrands call.
func (s *Session) Strands() []layout.Strand {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.strands
}

// Edges returns the edge set from the last ExtractGraph call.
func (s *Session) Edges() *semantic.EdgeSet {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.edges
}
