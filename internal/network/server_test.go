package network

import (
	"encoding/json"
	"net"
	"testing"
	"time"

	"github.com/leengari/mini-search/internal/engine"
	"github.com/leengari/mini-search/internal/executor"
	"github.com/leengari/mini-search/internal/index"
)

func testEngine(t *testing.T) *engine.Engine {
	t.Helper()

	idx := index.New("test", 10)
	idx.AddPostings("unix", 1, 2, 3, 5, 8)
	idx.AddPostings("shell", 2, 3, 4, 8, 9)

	eng, err := engine.New(idx)
	if err != nil {
		t.Fatalf("engine.New failed: %v", err)
	}
	return eng
}

func TestHandleConnectionRequestOptions(t *testing.T) {
	eng := testEngine(t)

	client, server := net.Pipe()
	defer client.Close()

	done := make(chan struct{})
	go func() {
		handleConnection(server, eng)
		close(done)
	}()

	enc := json.NewEncoder(client)
	dec := json.NewDecoder(client)

	nonStrict := false
	if err := enc.Encode(Request{Query: "unix OR shell", Strict: &nonStrict, Explain: true}); err != nil {
		t.Fatalf("encode failed: %v", err)
	}
	var explained executor.Result
	if err := dec.Decode(&explained); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if explained.Plan == "" {
		t.Error("explain request should return the plan tree")
	}
	if explained.Count != 7 {
		t.Errorf("count = %d, want 7", explained.Count)
	}

	// Omitted fields fall back to strict planning without a plan.
	if err := enc.Encode(Request{Query: "unix OR shell"}); err != nil {
		t.Fatalf("encode failed: %v", err)
	}
	var plain executor.Result
	if err := dec.Decode(&plain); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if plain.Plan != "" {
		t.Errorf("plan should only be returned on request, got %q", plain.Plan)
	}
	if plain.Cost == explained.Cost {
		t.Errorf("omitted strict field should default to strict planning, both cost %v", plain.Cost)
	}

	if err := enc.Encode(Request{Query: "exit"}); err != nil {
		t.Fatalf("encode failed: %v", err)
	}
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("handler did not exit on exit request")
	}
}
