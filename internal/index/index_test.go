package index

import (
	"encoding/json"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestPostingsAreSorted(t *testing.T) {
	idx := New("test", 10)
	idx.AddPostings("grep", 5, 1, 3)
	idx.AddPostings("grep", 2)

	want := []uint32{1, 2, 3, 5}
	got := idx.Postings("grep")
	if len(got) != len(want) {
		t.Fatalf("expected %d postings, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("postings[%d] = %d, want %d", i, got[i], want[i])
		}
	}

	if idx.DocFreq("grep") != 4 {
		t.Errorf("DocFreq = %d, want 4", idx.DocFreq("grep"))
	}
	if idx.DocFreq("missing") != 0 {
		t.Errorf("DocFreq for unknown term = %d, want 0", idx.DocFreq("missing"))
	}
}

func TestStatsLookup(t *testing.T) {
	idx := New("test", 100)
	idx.AddPostings("grep", 1, 2, 3, 4, 5)

	stats, err := NewStats(idx)
	if err != nil {
		t.Fatalf("NewStats failed: %v", err)
	}

	got := stats.Lookup("grep")
	if math.Abs(got.Estimate-0.05) > 1e-9 {
		t.Errorf("estimate = %v, want 0.05", got.Estimate)
	}
	if got.Cost != termProbeCost {
		t.Errorf("cost = %v, want %v", got.Cost, termProbeCost)
	}
	if math.Abs(got.StrictCost-0.05) > 1e-9 {
		t.Errorf("strict cost = %v, want 0.05", got.StrictCost)
	}

	// Second lookup is served from cache and must agree
	if again := stats.Lookup("grep"); again != got {
		t.Errorf("cached lookup differs: %v vs %v", again, got)
	}

	if unknown := stats.Lookup("missing"); unknown.Estimate != 0.0 {
		t.Errorf("unknown term estimate = %v, want 0", unknown.Estimate)
	}
}

func TestStopWordsMatchEverything(t *testing.T) {
	idx := New("test", 100)
	stats, err := NewStats(idx)
	if err != nil {
		t.Fatalf("NewStats failed: %v", err)
	}

	if got := stats.Lookup("the"); got.Estimate != 1.0 {
		t.Errorf("stop word estimate = %v, want 1.0", got.Estimate)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	meta := IndexMeta{Name: "demo", Version: 1, DocCount: 4}
	writeJSON(t, filepath.Join(dir, "meta.json"), meta)

	postings := PostingsFile{Terms: map[string][]uint32{
		"unix":  {1, 2, 4},
		"shell": {2, 3},
	}}
	writeJSON(t, filepath.Join(dir, "postings.json"), postings)

	idx, err := Load(dir, slog.Default())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if idx.Name != "demo" || idx.DocCount != 4 {
		t.Errorf("unexpected meta: name=%q doc_count=%d", idx.Name, idx.DocCount)
	}
	if idx.DocFreq("unix") != 3 || idx.DocFreq("shell") != 2 {
		t.Errorf("unexpected doc freqs: unix=%d shell=%d",
			idx.DocFreq("unix"), idx.DocFreq("shell"))
	}
}

func TestLoadMissingMeta(t *testing.T) {
	if _, err := Load(t.TempDir(), slog.Default()); err == nil {
		t.Error("expected error for missing meta.json")
	}
}

func writeJSON(t *testing.T, path string, v any) {
	t.Helper()
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
