package plan

import (
	"github.com/leengari/mini-search/internal/queryeval/flow"
)

// Node is the base interface for all evaluation plan nodes. Every node
// exposes the three flow numbers, so a node tree composes recursively: a
// parent's numbers are computed from its children's numbers through the
// flow algebra, regardless of each child's own subtree shape.
type Node interface {
	// Children returns child nodes for tree walking. For boolean nodes the
	// returned slice is the node's own child storage: reordering it in
	// place (as the optimizer does) changes the evaluation order.
	Children() []Node

	// Metadata returns attached metadata (never nil)
	Metadata() map[string]any

	// NodeType returns the type identifier (for debugging/logging)
	NodeType() string

	// Estimate returns the predicted fraction of the corpus matching this
	// subtree, in [0,1].
	Estimate() float64

	// Cost returns the expected per-candidate cost of evaluating this
	// subtree in its current child order.
	Cost() float64

	// StrictCost returns the expected cost of driving this subtree in full
	// doc-id-ordered mode, in its current child order.
	StrictCost() float64
}

var adapter = flow.SourceAdapter[Node]{}

// TermNode represents a single term lookup (leaf node). Its numbers are
// injected from index statistics when the planner builds the tree.
type TermNode struct {
	Term string

	estimate   float64
	cost       float64
	strictCost float64

	metadata map[string]any
}

func NewTermNode(term string, estimate, cost, strictCost float64) *TermNode {
	return &TermNode{
		Term:       term,
		estimate:   estimate,
		cost:       cost,
		strictCost: strictCost,
	}
}

func (n *TermNode) Children() []Node {
	return nil // Leaf node has no children
}

func (n *TermNode) Metadata() map[string]any {
	if n.metadata == nil {
		n.metadata = make(map[string]any)
	}
	return n.metadata
}

func (n *TermNode) NodeType() string { return "TERM" }

func (n *TermNode) Estimate() float64 { return n.estimate }

func (n *TermNode) Cost() float64 { return n.cost }

func (n *TermNode) StrictCost() float64 { return n.strictCost }

// AndNode represents a conjunction over its children. A document matches
// only if every child matches.
type AndNode struct {
	children []Node
	metadata map[string]any
}

func NewAndNode(children ...Node) *AndNode {
	return &AndNode{children: children}
}

func (n *AndNode) Children() []Node {
	return n.children
}

func (n *AndNode) AddChild(child Node) {
	n.children = append(n.children, child)
}

func (n *AndNode) Metadata() map[string]any {
	if n.metadata == nil {
		n.metadata = make(map[string]any)
	}
	return n.metadata
}

func (n *AndNode) NodeType() string { return "AND" }

func (n *AndNode) Estimate() float64 {
	return flow.AndEstimateOf(adapter, n.children)
}

func (n *AndNode) Cost() float64 {
	return flow.OrderedCostOf(adapter, n.children, flow.NewAndFlow(1.0, false))
}

func (n *AndNode) StrictCost() float64 {
	return flow.OrderedCostOf(adapter, n.children, flow.NewAndFlow(1.0, true))
}

// OrNode represents a disjunction over its children. A document matches if
// any child matches.
type OrNode struct {
	children []Node
	metadata map[string]any
}

func NewOrNode(children ...Node) *OrNode {
	return &OrNode{children: children}
}

func (n *OrNode) Children() []Node {
	return n.children
}

func (n *OrNode) AddChild(child Node) {
	n.children = append(n.children, child)
}

func (n *OrNode) Metadata() map[string]any {
	if n.metadata == nil {
		n.metadata = make(map[string]any)
	}
	return n.metadata
}

func (n *OrNode) NodeType() string { return "OR" }

func (n *OrNode) Estimate() float64 {
	return flow.OrEstimateOf(adapter, n.children)
}

func (n *OrNode) Cost() float64 {
	return flow.OrderedCostOf(adapter, n.children, flow.NewOrFlow(1.0, false))
}

func (n *OrNode) StrictCost() float64 {
	return flow.OrderedCostOf(adapter, n.children, flow.NewOrFlow(1.0, true))
}

// AndNotNode represents "children[0] and not any of the rest". The first
// child is the positive clause and stays pinned at position 0; the optimizer
// only reorders the negative children behind it.
type AndNotNode struct {
	children []Node
	metadata map[string]any
}

// NewAndNotNode builds an AND-NOT from the positive clause and the negative
// clauses it subtracts.
func NewAndNotNode(positive Node, negatives ...Node) *AndNotNode {
	children := append([]Node{positive}, negatives...)
	return &AndNotNode{children: children}
}

func (n *AndNotNode) Children() []Node {
	return n.children
}

func (n *AndNotNode) Positive() Node {
	return n.children[0]
}

func (n *AndNotNode) Metadata() map[string]any {
	if n.metadata == nil {
		n.metadata = make(map[string]any)
	}
	return n.metadata
}

func (n *AndNotNode) NodeType() string { return "ANDNOT" }

func (n *AndNotNode) Estimate() float64 {
	return flow.AndNotEstimateOf(adapter, n.children)
}

func (n *AndNotNode) Cost() float64 {
	return flow.OrderedCostOf(adapter, n.children, flow.NewAndNotFlow(1.0, false))
}

func (n *AndNotNode) StrictCost() float64 {
	return flow.OrderedCostOf(adapter, n.children, flow.NewAndNotFlow(1.0, true))
}
