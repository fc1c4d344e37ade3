package engine

import (
	"testing"

	"github.com/leengari/mini-search/internal/index"
)

// capturingObserver records every event it receives
type capturingObserver struct {
	events []Event
}

func (c *capturingObserver) OnEvent(event Event) {
	c.events = append(c.events, event)
}

func TestObserverReceivesLifecycleEvents(t *testing.T) {
	idx := index.New("test", 10)
	idx.AddPostings("unix", 1, 2, 3)

	e, err := New(idx)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	observer := &capturingObserver{}
	e.AddObserver(observer)

	if _, err := e.Execute("unix"); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	expected := []EventType{
		EventLexStart, EventLexEnd,
		EventParseStart, EventParseEnd,
		EventPlanStart, EventPlanEnd,
		EventExecStart, EventExecEnd,
	}
	if len(observer.events) != len(expected) {
		t.Fatalf("expected %d events, got %d", len(expected), len(observer.events))
	}

	queryID := observer.events[0].QueryID
	if queryID == "" {
		t.Error("events should carry a query ID")
	}
	for i, want := range expected {
		got := observer.events[i]
		if got.Type != want {
			t.Errorf("events[%d] type = %s, want %s", i, got.Type, want)
		}
		if got.QueryID != queryID {
			t.Errorf("events[%d] query ID changed mid-query", i)
		}
		if got.Timestamp.IsZero() {
			t.Errorf("events[%d] has zero timestamp", i)
		}
	}
}

func TestObserverNotCalledOnParseFailure(t *testing.T) {
	idx := index.New("test", 10)
	e, err := New(idx)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	observer := &capturingObserver{}
	e.AddObserver(observer)

	if _, err := e.Execute("unix AND"); err == nil {
		t.Fatal("expected parse error")
	}

	// Lexing succeeded, parsing started, nothing beyond
	for _, event := range observer.events {
		if event.Type == EventPlanStart || event.Type == EventExecStart {
			t.Errorf("unexpected event %s after parse failure", event.Type)
		}
	}
}
