package planner

import (
	"fmt"

	"github.com/leengari/mini-search/internal/index"
	"github.com/leengari/mini-search/internal/parser/ast"
	"github.com/leengari/mini-search/internal/plan"
)

// Plan converts a parsed query expression into an evaluation plan tree,
// injecting each term's flow numbers from the index statistics. The tree is
// not yet ordered for evaluation; Optimize does that.
func Plan(expr ast.Expression, stats *index.Stats) (plan.Node, error) {
	switch e := expr.(type) {
	case *ast.TermExpr:
		ts := stats.Lookup(e.Value)
		node := plan.NewTermNode(e.Value, ts.Estimate, ts.Cost, ts.StrictCost)
		node.Metadata()["source"] = "term_stats"
		return node, nil

	case *ast.AndExpr:
		children, err := planChildren(e.Children, stats)
		if err != nil {
			return nil, err
		}
		return plan.NewAndNode(children...), nil

	case *ast.OrExpr:
		children, err := planChildren(e.Children, stats)
		if err != nil {
			return nil, err
		}
		return plan.NewOrNode(children...), nil

	case *ast.AndNotExpr:
		positive, err := Plan(e.Positive, stats)
		if err != nil {
			return nil, err
		}
		negatives, err := planChildren(e.Negatives, stats)
		if err != nil {
			return nil, err
		}
		return plan.NewAndNotNode(positive, negatives...), nil

	default:
		return nil, fmt.Errorf("unsupported expression type: %T", expr)
	}
}

func planChildren(exprs []ast.Expression, stats *index.Stats) ([]plan.Node, error) {
	children := make([]plan.Node, len(exprs))
	for i, expr := range exprs {
		child, err := Plan(expr, stats)
		if err != nil {
			return nil, err
		}
		children[i] = child
	}
	return children, nil
}
