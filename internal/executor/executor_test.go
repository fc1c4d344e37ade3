package executor

import (
	"testing"

	"github.com/leengari/mini-search/internal/index"
	"github.com/leengari/mini-search/internal/parser"
	"github.com/leengari/mini-search/internal/plan"
	"github.com/leengari/mini-search/internal/planner"
)

// testIndex builds a small corpus with known posting lists.
func testIndex() *index.Index {
	idx := index.New("test", 10)
	idx.AddPostings("unix", 1, 2, 3, 5, 8)
	idx.AddPostings("shell", 2, 3, 4, 8, 9)
	idx.AddPostings("pipe", 3, 5, 8)
	idx.AddPostings("windows", 2, 8)
	return idx
}

func runQuery(t *testing.T, idx *index.Index, query string) *Result {
	t.Helper()

	stats, err := index.NewStats(idx)
	if err != nil {
		t.Fatalf("NewStats failed: %v", err)
	}
	expr, err := parser.ParseQuery(query)
	if err != nil {
		t.Fatalf("ParseQuery(%q) failed: %v", query, err)
	}
	node, err := planner.Plan(expr, stats)
	if err != nil {
		t.Fatalf("Plan(%q) failed: %v", query, err)
	}
	planner.Optimize(node, true)

	result, err := Execute(node, idx, 0)
	if err != nil {
		t.Fatalf("Execute(%q) failed: %v", query, err)
	}
	return result
}

func assertHits(t *testing.T, result *Result, want ...uint32) {
	t.Helper()

	if result.Count != len(want) {
		t.Fatalf("count = %d, want %d (hits %v)", result.Count, len(want), result.Hits)
	}
	for i, docID := range want {
		if result.Hits[i] != docID {
			t.Errorf("hits[%d] = %d, want %d", i, result.Hits[i], docID)
		}
	}
}

func TestExecuteTerm(t *testing.T) {
	result := runQuery(t, testIndex(), "pipe")
	assertHits(t, result, 3, 5, 8)
}

func TestExecuteAnd(t *testing.T) {
	result := runQuery(t, testIndex(), "unix AND shell")
	assertHits(t, result, 2, 3, 8)
}

func TestExecuteNestedAnd(t *testing.T) {
	result := runQuery(t, testIndex(), "unix AND shell AND pipe")
	assertHits(t, result, 3, 8)
}

func TestExecuteOr(t *testing.T) {
	result := runQuery(t, testIndex(), "pipe OR windows")
	assertHits(t, result, 2, 3, 5, 8)
}

func TestExecuteAndNot(t *testing.T) {
	result := runQuery(t, testIndex(), "unix ANDNOT windows")
	assertHits(t, result, 1, 3, 5)
}

func TestExecuteMixed(t *testing.T) {
	// (shell OR pipe) matches 2,3,4,5,8,9; AND unix -> 2,3,5,8; minus windows -> 3,5
	result := runQuery(t, testIndex(), "(unix AND (shell OR pipe)) ANDNOT windows")
	assertHits(t, result, 3, 5)
}

func TestExecuteUnknownTerm(t *testing.T) {
	result := runQuery(t, testIndex(), "unix AND nosuchterm")
	assertHits(t, result)
}

func TestExecuteLimit(t *testing.T) {
	idx := testIndex()
	stats, err := index.NewStats(idx)
	if err != nil {
		t.Fatalf("NewStats failed: %v", err)
	}
	expr, err := parser.ParseQuery("unix")
	if err != nil {
		t.Fatalf("ParseQuery failed: %v", err)
	}
	node, err := planner.Plan(expr, stats)
	if err != nil {
		t.Fatalf("Plan failed: %v", err)
	}

	result, err := Execute(node, idx, 2)
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if result.Count != 5 {
		t.Errorf("count = %d, want 5", result.Count)
	}
	if len(result.Hits) != 2 {
		t.Errorf("hits = %v, want 2 entries", result.Hits)
	}
}

func TestOrIteratorDeduplicates(t *testing.T) {
	left := NewTermIterator([]uint32{1, 3, 5})
	right := NewTermIterator([]uint32{3, 5, 7})
	it := NewOrIterator([]Iterator{left, right})

	var got []uint32
	for ; !it.AtEnd(); it.Next() {
		got = append(got, it.DocID())
	}
	want := []uint32{1, 3, 5, 7}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got %v, want %v", got, want)
			break
		}
	}
}

func TestTermIteratorSeek(t *testing.T) {
	it := NewTermIterator([]uint32{1, 4, 9, 16})

	it.SeekTo(5)
	if it.AtEnd() || it.DocID() != 9 {
		t.Errorf("SeekTo(5) landed on %v", it.DocID())
	}

	// Seeking backwards is a no-op
	it.SeekTo(2)
	if it.DocID() != 9 {
		t.Errorf("backwards seek moved iterator to %v", it.DocID())
	}

	it.SeekTo(17)
	if !it.AtEnd() {
		t.Error("SeekTo past the last posting should exhaust the iterator")
	}
}

// TestPlannedOrderIsExecutionOrder pins down the contract that Build does
// not reorder anything: the planner's in-place reordering is the plan.
func TestPlannedOrderIsExecutionOrder(t *testing.T) {
	idx := testIndex()
	stats, err := index.NewStats(idx)
	if err != nil {
		t.Fatalf("NewStats failed: %v", err)
	}
	expr, err := parser.ParseQuery("shell AND pipe")
	if err != nil {
		t.Fatalf("ParseQuery failed: %v", err)
	}
	node, err := planner.Plan(expr, stats)
	if err != nil {
		t.Fatalf("Plan failed: %v", err)
	}
	planner.Optimize(node, true)

	// pipe (df 3) is more selective than shell (df 5) and must drive.
	driver := node.Children()[0].(*plan.TermNode)
	if driver.Term != "pipe" {
		t.Fatalf("expected pipe to drive, got %q", driver.Term)
	}

	result, err := Execute(node, idx, 0)
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	assertHits(t, result, 3, 8)
}
