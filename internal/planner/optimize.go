package planner

import (
	"github.com/leengari/mini-search/internal/plan"
	"github.com/leengari/mini-search/internal/queryeval/flow"
)

var adapter = flow.SourceAdapter[plan.Node]{}

// Optimize reorders the children of every boolean node in the tree to
// minimize expected evaluation cost, and returns the total expected cost of
// the root under the requested strictness. The reordering happens in place:
// after Optimize returns, each node's child order is the evaluation order
// the executor will use. Strict mode at the root means hits must be
// produced in increasing document-ID order.
//
// Strictness pushes down along the chosen paths: the driver child of a
// strict AND runs strict, every child of a strict OR runs strict, and only
// the positive clause of a strict AND-NOT runs strict. Each subtree that
// ends up strict is re-planned under that mode. The whole pass is a
// heuristic built from pairwise-exchange orderings, not a search for the
// globally optimal plan.
func Optimize(node plan.Node, strict bool) float64 {
	optimizeNode(node, strict)
	if strict {
		return node.StrictCost()
	}
	return node.Cost()
}

func optimizeNode(n plan.Node, strict bool) {
	// Children are ordered bottom-up first: a node's cost depends on the
	// internal order of each of its subtrees.
	children := n.Children()
	for _, child := range children {
		optimizeNode(child, false)
	}

	n.Metadata()["strict"] = strict

	switch n.(type) {
	case *plan.AndNode:
		flow.SortAnd(adapter, children, strict)
		if strict && len(children) > 0 {
			optimizeNode(children[0], true)
		}

	case *plan.OrNode:
		flow.SortOr(adapter, children, strict)
		if strict {
			for _, child := range children {
				optimizeNode(child, true)
			}
		}

	case *plan.AndNotNode:
		flow.SortAndNot(adapter, children, strict)
		if strict && len(children) > 0 {
			optimizeNode(children[0], true)
		}
	}
}
