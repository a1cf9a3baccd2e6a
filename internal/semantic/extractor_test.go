package semantic

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/abelbrown/parallax/internal/brain"
)

// mockProvider records calls and replies from a canned script.
type mockProvider struct {
	mu      sync.Mutex
	calls   int
	respond func(call int, req brain.Request) (brain.Response, error)
}

func (m *mockProvider) Name() string    { return "mock" }
func (m *mockProvider) Available() bool { return true }

func (m *mockProvider) Generate(_ context.Context, req brain.Request) (brain.Response, error) {
	m.mu.Lock()
	call := m.calls
	m.calls++
	m.mu.Unlock()
	return m.respond(call, req)
}

func (m *mockProvider) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

func makeTerms(n int) []Term {
	terms := make([]Term, n)
	for i := range terms {
		terms[i] = Term{Label: fmt.Sprintf("term-%03d", i), Type: "unique", Slices: []int{0}}
	}
	return terms
}

func TestSplitBatches(t *testing.T) {
	tests := []struct {
		terms   int
		batches int
	}{
		{1, 1},
		{50, 1},
		{51, 2},
		{100, 2},
		{101, 3},
		{250, 3},
	}
	for _, tt := range tests {
		got := splitBatches(makeTerms(tt.terms))
		if len(got) != tt.batches {
			t.Errorf("splitBatches(%d terms) = %d batches, want %d", tt.terms, len(got), tt.batches)
		}
	}
}

func TestSplitBatchesOverlap(t *testing.T) {
	terms := makeTerms(80)
	batches := splitBatches(terms)
	if len(batches) != 2 {
		t.Fatalf("expected 2 batches")
	}
	// mid=40: first batch ends at 50, second starts at 30.
	if len(batches[0]) != 50 {
		t.Errorf("first batch length = %d, want 50", len(batches[0]))
	}
	if batches[1][0].Label != terms[30].Label {
		t.Errorf("second batch should start at index 30, got %s", batches[1][0].Label)
	}

	// Every term must appear in at least one batch.
	covered := make(map[string]bool)
	for _, b := range batches {
		for _, term := range b {
			covered[term.Label] = true
		}
	}
	if len(covered) != len(terms) {
		t.Errorf("batches cover %d of %d terms", len(covered), len(terms))
	}
}

func TestExtractSingleBatch(t *testing.T) {
	terms := []Term{
		{Label: "Entropy"}, {Label: "Noise"}, {Label: "Information"},
	}
	mock := &mockProvider{
		respond: func(_ int, req brain.Request) (brain.Response, error) {
			if !strings.Contains(req.UserPrompt, "Entropy") {
				t.Error("user prompt should carry the term list")
			}
			return brain.Response{Content: `{"relationships":[
				{"term_a":"Entropy","term_b":"Noise","type":"causal","strength":0.9,"rationale":"related"}
			]}`}, nil
		},
	}

	set := NewExtractor(mock).Extract(context.Background(), "thermodynamics", terms, []string{"physics"})
	if set == nil {
		t.Fatal("expected an edge set")
	}
	if set.BatchCount != 1 || mock.callCount() != 1 {
		t.Errorf("batch count = %d, calls = %d, want 1/1", set.BatchCount, mock.callCount())
	}
	if len(set.Relationships) != 1 {
		t.Fatalf("expected 1 relationship, got %d", len(set.Relationships))
	}
	if set.Relationships[0].Type != "causal" {
		t.Errorf("type = %q", set.Relationships[0].Type)
	}
	if set.TermCount != 3 {
		t.Errorf("term count = %d, want 3", set.TermCount)
	}
}

func TestExtractParallelBatches(t *testing.T) {
	terms := makeTerms(120)
	mock := &mockProvider{
		respond: func(_ int, _ brain.Request) (brain.Response, error) {
			return brain.Response{Content: `{"relationships":[
				{"term_a":"term-000","term_b":"term-001","type":"causal","strength":0.5}
			]}`}, nil
		},
	}

	set := NewExtractor(mock).Extract(context.Background(), "topic", terms, nil)
	if set.BatchCount != 3 || mock.callCount() != 3 {
		t.Errorf("batch count = %d, calls = %d, want 3/3", set.BatchCount, mock.callCount())
	}
	// The same edge from all three batches must collapse to one.
	if len(set.Relationships) != 1 {
		t.Errorf("expected 1 deduplicated relationship, got %d", len(set.Relationships))
	}
}

func TestExtractFailedBatchDegrades(t *testing.T) {
	terms := makeTerms(60)
	mock := &mockProvider{
		respond: func(call int, _ brain.Request) (brain.Response, error) {
			if call == 0 {
				return brain.Response{}, fmt.Errorf("upstream timeout")
			}
			return brain.Response{Content: `{"relationships":[
				{"term_a":"term-055","term_b":"term-056","type":"analogical"}
			]}`}, nil
		},
	}

	set := NewExtractor(mock).Extract(context.Background(), "topic", terms, nil)
	if set == nil {
		t.Fatal("extraction must survive a failing batch")
	}
	if mock.callCount() != 2 {
		t.Errorf("calls = %d, want 2", mock.callCount())
	}
	if len(set.Relationships) != 1 {
		t.Errorf("surviving batch should contribute, got %d relationships", len(set.Relationships))
	}
}

func TestExtractMalformedResponse(t *testing.T) {
	terms := makeTerms(5)
	mock := &mockProvider{
		respond: func(_ int, _ brain.Request) (brain.Response, error) {
			return brain.Response{Content: "I could not find any relationships, sorry!"}, nil
		},
	}

	set := NewExtractor(mock).Extract(context.Background(), "topic", terms, nil)
	if set == nil {
		t.Fatal("malformed response must not abort extraction")
	}
	if len(set.Relationships) != 0 {
		t.Errorf("expected no relationships, got %d", len(set.Relationships))
	}
}

func TestExtractNoTerms(t *testing.T) {
	mock := &mockProvider{
		respond: func(_ int, _ brain.Request) (brain.Response, error) {
			t.Error("provider should not be called with no terms")
			return brain.Response{}, nil
		},
	}
	if set := NewExtractor(mock).Extract(context.Background(), "topic", nil, nil); set != nil {
		t.Error("no terms should yield nil")
	}
}
