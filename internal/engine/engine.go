package engine

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/leengari/mini-search/internal/executor"
	"github.com/leengari/mini-search/internal/index"
	"github.com/leengari/mini-search/internal/parser"
	"github.com/leengari/mini-search/internal/parser/lexer"
	"github.com/leengari/mini-search/internal/plan"
	"github.com/leengari/mini-search/internal/planner"
)

// Engine is the main entry point for the search system: it takes a query
// string through lexing, parsing, planning, plan optimization and execution
// against one index.
type Engine struct {
	idx       *index.Index
	stats     *index.Stats
	limit     int
	observers []Observer // Observers for lifecycle events
}

// New creates a new Engine instance over the given index
func New(idx *index.Index) (*Engine, error) {
	stats, err := index.NewStats(idx)
	if err != nil {
		return nil, err
	}
	return &Engine{
		idx:       idx,
		stats:     stats,
		limit:     executor.DefaultLimit,
		observers: make([]Observer, 0),
	}, nil
}

// SetLimit caps the number of hits returned per query.
func (e *Engine) SetLimit(limit int) {
	e.limit = limit
}

// AddObserver registers an observer for lifecycle events.
func (e *Engine) AddObserver(o Observer) {
	e.observers = append(e.observers, o)
}

// Stats exposes the planner statistics view, for callers that plan without
// executing.
func (e *Engine) Stats() *index.Stats {
	return e.stats
}

// Options control how a single query is planned and reported.
type Options struct {
	// Strict plans the root in full doc-id-ordered mode. Non-strict
	// planning models the whole tree as a per-candidate filter, which
	// changes the cost numbers and can change the chosen child order.
	Strict bool

	// Explain attaches the printed plan tree to the result.
	Explain bool
}

// DefaultOptions is strict planning with the plan attached.
func DefaultOptions() Options {
	return Options{Strict: true, Explain: true}
}

// Execute processes a query string under DefaultOptions.
func (e *Engine) Execute(query string) (*executor.Result, error) {
	return e.ExecuteWith(query, DefaultOptions())
}

// ExecuteWith processes a query string and returns the result.
func (e *Engine) ExecuteWith(query string, opts Options) (*executor.Result, error) {
	queryID := uuid.New().String()

	// 1. Tokenize
	e.notify(Event{Type: EventLexStart, QueryID: queryID, Data: query})
	tokens, err := lexer.Tokenize(query)
	if err != nil {
		return nil, fmt.Errorf("lexer error: %w", err)
	}
	e.notify(Event{Type: EventLexEnd, QueryID: queryID, Data: len(tokens)})

	// 2. Parse
	e.notify(Event{Type: EventParseStart, QueryID: queryID})
	p := parser.New(tokens)
	expr, err := p.Parse()
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}
	e.notify(Event{Type: EventParseEnd, QueryID: queryID, Data: fmt.Sprintf("%T", expr)})

	// 3. Plan and optimize
	e.notify(Event{Type: EventPlanStart, QueryID: queryID})
	node, err := planner.Plan(expr, e.stats)
	if err != nil {
		return nil, fmt.Errorf("planning error: %w", err)
	}
	cost := planner.Optimize(node, opts.Strict)
	e.notify(Event{Type: EventPlanEnd, QueryID: queryID, Data: cost})

	// 4. Execute
	e.notify(Event{Type: EventExecStart, QueryID: queryID})
	result, err := executor.Execute(node, e.idx, e.limit)
	if err != nil {
		return nil, fmt.Errorf("execution error: %w", err)
	}
	result.QueryID = queryID
	result.Cost = cost
	if opts.Explain {
		result.Plan = plan.PrintTree(node)
	}
	e.notify(Event{Type: EventExecEnd, QueryID: queryID, Data: result.Count})

	return result, nil
}

func (e *Engine) notify(event Event) {
	event.Timestamp = time.Now()
	for _, o := range e.observers {
		o.OnEvent(event)
	}
}
