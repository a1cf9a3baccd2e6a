package semantic

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/abelbrown/parallax/internal/brain"
	"github.com/abelbrown/parallax/internal/jsonx"
	"github.com/abelbrown/parallax/internal/logging"
)

// batchThreshold is the largest term count handled by a single LLM call.
const batchThreshold = 50

// batchOverlap is how many terms adjacent batches share, so relationships
// spanning a split point are not lost.
const batchOverlap = 10

// maxBatchTokens bounds each relationship call's response.
const maxBatchTokens = 3000

// Extractor batches terms to an LLM provider and assembles the
// normalized edge set.
type Extractor struct {
	provider brain.Provider
}

// NewExtractor creates an extractor around an injected provider.
func NewExtractor(p brain.Provider) *Extractor {
	return &Extractor{provider: p}
}

// splitBatches implements the batch state machine: one call up to 50
// terms, two overlapping halves up to 100, three overlapping thirds
// beyond that.
func splitBatches(terms []Term) [][]Term {
	n := len(terms)
	switch {
	case n <= batchThreshold:
		return [][]Term{terms}
	case n <= 2*batchThreshold:
		mid := n / 2
		return [][]Term{
			terms[:mid+batchOverlap],
			terms[mid-batchOverlap:],
		}
	default:
		third := n / 3
		return [][]Term{
			terms[:third+batchOverlap],
			terms[third-batchOverlap : 2*third+batchOverlap],
			terms[2*third-batchOverlap:],
		}
	}
}

// Extract asks the provider for relationships among terms. Batches run
// concurrently; a failing batch contributes zero relationships rather
// than aborting the extraction. Returns nil when there are no terms.
func (e *Extractor) Extract(ctx context.Context, topic string, terms []Term, disciplines []string) *EdgeSet {
	if len(terms) == 0 {
		return nil
	}

	termIndex := BuildTermIndex(terms)
	batches := splitBatches(terms)

	// Each goroutine owns its own slot; merge order does not matter since
	// normalization deduplicates.
	results := make([][]RawRelationship, len(batches))

	g, gctx := errgroup.WithContext(ctx)
	for i, batch := range batches {
		g.Go(func() error {
			results[i] = e.callBatch(gctx, topic, batch, terms, disciplines)
			return nil
		})
	}
	// Workers never return errors; failed batches already degraded to nil.
	_ = g.Wait()

	var allRaw []RawRelationship
	for _, r := range results {
		allRaw = append(allRaw, r...)
	}

	return &EdgeSet{
		Relationships: NormalizeRelationships(allRaw, termIndex),
		GeneratedAt:   time.Now(),
		TermCount:     len(terms),
		BatchCount:    len(batches),
	}
}

// callBatch runs one relationship call. Any failure -- transport, model,
// or parse -- yields an empty list.
func (e *Extractor) callBatch(ctx context.Context, topic string, batch, allTerms []Term, disciplines []string) []RawRelationship {
	resp, err := e.provider.Generate(ctx, brain.Request{
		SystemPrompt: buildSystemPrompt(),
		UserPrompt:   buildUserPrompt(topic, batch, allTerms, disciplines),
		MaxTokens:    maxBatchTokens,
		Temperature:  0,
	})
	if err != nil {
		logging.Warn("relationship batch failed", "terms", len(batch), "error", err)
		return nil
	}

	parsed, ok := jsonx.ExtractObject(resp.Content)
	if !ok {
		logging.Warn("relationship batch returned unparseable JSON", "terms", len(batch))
		return nil
	}
	return parseRawRelationships(parsed)
}
