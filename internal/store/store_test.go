package store

import (
	"encoding/json"
	"path/filepath"
	"testing"
	"time"
)

type testDoc struct {
	Articles int      `json:"articles"`
	Columns  []string `json:"columns"`
}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := newTestStore(t)

	doc := testDoc{Articles: 12, Columns: []string{"left", "right"}}
	id, err := s.SaveRun("election policy", "political", doc)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	rec, err := s.LoadRun(id)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if rec.Topic != "election policy" || rec.LensID != "political" {
		t.Errorf("metadata = %q/%q", rec.Topic, rec.LensID)
	}

	var got testDoc
	if err := json.Unmarshal(rec.Document, &got); err != nil {
		t.Fatalf("document unmarshal failed: %v", err)
	}
	if got.Articles != 12 || len(got.Columns) != 2 {
		t.Errorf("document round trip lost data: %+v", got)
	}
}

func TestListRunsNewestFirst(t *testing.T) {
	s := newTestStore(t)

	for _, topic := range []string{"first", "second", "third"} {
		if _, err := s.SaveRun(topic, "political", testDoc{}); err != nil {
			t.Fatalf("save failed: %v", err)
		}
		time.Sleep(5 * time.Millisecond)
	}

	runs, err := s.ListRuns(0)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("expected 3 runs, got %d", len(runs))
	}
	if runs[0].Topic != "third" || runs[2].Topic != "first" {
		t.Errorf("runs not newest-first: %v, %v, %v", runs[0].Topic, runs[1].Topic, runs[2].Topic)
	}

	limited, err := s.ListRuns(2)
	if err != nil {
		t.Fatalf("limited list failed: %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("limit ignored: got %d runs", len(limited))
	}
}

func TestDeleteRun(t *testing.T) {
	s := newTestStore(t)

	id, err := s.SaveRun("topic", "lens", testDoc{})
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if err := s.DeleteRun(id); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := s.LoadRun(id); err == nil {
		t.Error("deleted run should not load")
	}
	if err := s.DeleteRun(id); err == nil {
		t.Error("deleting a missing run should error")
	}
}

func TestLoadMissingRun(t *testing.T) {
	s := newTestStore(t)
	if _, err := s.LoadRun(999); err == nil {
		t.Error("expected error for missing run")
	}
}
