// Package flow models how boolean result decisions flow through the
// intermediate nodes of a query evaluation tree, based on relative match
// estimates for sub-expressions.
//
// Each combinator (AND, OR, AND-NOT) has a flow state that tracks the
// fraction of documents still "live" as children are evaluated left to
// right. Sorting children to minimize the total flow-weighted cost is the
// planner's main lever: the reordered child sequence IS the evaluation plan.
package flow

// State is the common shape of the three flow accumulators. A State is
// seeded once per cost or estimate computation and discarded afterwards.
type State interface {
	// Add folds one child's estimate into the running flow.
	Add(estimate float64)

	// Flow returns the fraction of documents still live before the next
	// child runs.
	Flow() float64

	// Strict reports whether the child folded in next would run in full
	// doc-id-ordered mode.
	Strict() bool

	// Estimate returns the combined match estimate for the children folded
	// in so far, 0 if there were none.
	Estimate() float64
}

// AndFlow models conjunction: a document stays live only while every child
// matches, so the flow is the product of child estimates. At most one child
// (the first) runs strict; the rest filter the driver's candidates.
type AndFlow struct {
	flow   float64
	strict bool
	first  bool
}

func NewAndFlow(in float64, strict bool) *AndFlow {
	return &AndFlow{flow: in, strict: strict, first: true}
}

func (f *AndFlow) Add(estimate float64) {
	f.flow *= estimate
	f.first = false
}

func (f *AndFlow) Flow() float64 { return f.flow }

func (f *AndFlow) Strict() bool { return f.strict && f.first }

func (f *AndFlow) Estimate() float64 {
	if f.first {
		return 0.0
	}
	return f.flow
}

// OrFlow models disjunction: the flow is the probability that a document has
// matched none of the children seen so far. A strict OR has to union all its
// children as doc-id-ordered iterators, so every child runs strict.
type OrFlow struct {
	flow   float64
	strict bool
	first  bool
}

func NewOrFlow(in float64, strict bool) *OrFlow {
	return &OrFlow{flow: in, strict: strict, first: true}
}

func (f *OrFlow) Add(estimate float64) {
	f.flow *= (1.0 - estimate)
	f.first = false
}

func (f *OrFlow) Flow() float64 { return f.flow }

func (f *OrFlow) Strict() bool { return f.strict }

func (f *OrFlow) Estimate() float64 {
	if f.first {
		return 0.0
	}
	return 1.0 - f.flow
}

// AndNotFlow models "first child and not any of the rest". The first child
// is the positive clause and fixes the flow at its own estimate; later
// children are subtracted terms and fold in OR-style. Only the positive
// clause may run strict.
type AndNotFlow struct {
	flow   float64
	strict bool
	first  bool
}

func NewAndNotFlow(in float64, strict bool) *AndNotFlow {
	return &AndNotFlow{flow: in, strict: strict, first: true}
}

func (f *AndNotFlow) Add(estimate float64) {
	if f.first {
		f.flow *= estimate
	} else {
		f.flow *= (1.0 - estimate)
	}
	f.first = false
}

func (f *AndNotFlow) Flow() float64 { return f.flow }

func (f *AndNotFlow) Strict() bool { return f.strict && f.first }

func (f *AndNotFlow) Estimate() float64 {
	if f.first {
		return 0.0
	}
	return f.flow
}
