package executor

import (
	"fmt"
	"time"

	"github.com/leengari/mini-search/internal/index"
	"github.com/leengari/mini-search/internal/plan"
)

// DefaultLimit caps the hits collected per query.
const DefaultLimit = 100

// Result is what a query returns to the caller.
type Result struct {
	QueryID  string        `json:"query_id,omitempty"`
	Hits     []uint32      `json:"hits,omitempty"`
	Count    int           `json:"count"`
	Estimate float64       `json:"estimate"`
	Cost     float64       `json:"cost"`
	Plan     string        `json:"plan,omitempty"`
	Elapsed  time.Duration `json:"elapsed_ns"`
	Error    string        `json:"error,omitempty"`
}

// Build turns an optimized plan tree into an iterator tree. Child order is
// taken as-is: it is the evaluation order the planner chose.
func Build(node plan.Node, idx *index.Index) (Iterator, error) {
	switch n := node.(type) {
	case *plan.TermNode:
		return NewTermIterator(idx.Postings(n.Term)), nil

	case *plan.AndNode:
		children, err := buildChildren(n.Children(), idx)
		if err != nil {
			return nil, err
		}
		if len(children) == 0 {
			return emptyIterator{}, nil
		}
		return NewAndIterator(children), nil

	case *plan.OrNode:
		children, err := buildChildren(n.Children(), idx)
		if err != nil {
			return nil, err
		}
		if len(children) == 0 {
			return emptyIterator{}, nil
		}
		return NewOrIterator(children), nil

	case *plan.AndNotNode:
		children, err := buildChildren(n.Children(), idx)
		if err != nil {
			return nil, err
		}
		if len(children) == 0 {
			return emptyIterator{}, nil
		}
		return NewAndNotIterator(children[0], children[1:]), nil

	default:
		return nil, fmt.Errorf("unsupported plan node type: %T", node)
	}
}

func buildChildren(nodes []plan.Node, idx *index.Index) ([]Iterator, error) {
	children := make([]Iterator, len(nodes))
	for i, node := range nodes {
		child, err := Build(node, idx)
		if err != nil {
			return nil, err
		}
		children[i] = child
	}
	return children, nil
}

// Execute runs an optimized plan against the index, collecting up to limit
// hits in document-ID order.
func Execute(node plan.Node, idx *index.Index, limit int) (*Result, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	start := time.Now()
	it, err := Build(node, idx)
	if err != nil {
		return nil, err
	}

	var hits []uint32
	count := 0
	for ; !it.AtEnd(); it.Next() {
		count++
		if len(hits) < limit {
			hits = append(hits, it.DocID())
		}
	}

	return &Result{
		Hits:     hits,
		Count:    count,
		Estimate: node.Estimate(),
		Cost:     node.Cost(),
		Elapsed:  time.Since(start),
	}, nil
}
