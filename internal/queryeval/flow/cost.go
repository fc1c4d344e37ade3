package flow

// EstimateOf folds each child's estimate through the given flow state and
// returns the combined estimate. The fold commutes, so the children's order
// does not matter. Zero children yield estimate 0.
func EstimateOf[T any, A Adapter[T]](adapter A, children []T, state State) float64 {
	for _, child := range children {
		state.Add(adapter.Estimate(child))
	}
	return state.Estimate()
}

// OrderedCostOf walks children in their current order, charging each child
// its (strict or filtered) unit cost weighted by the fraction of documents
// still live when it runs. Zero children yield cost 0.
func OrderedCostOf[T any, A Adapter[T]](adapter A, children []T, state State) float64 {
	cost := 0.0
	for _, child := range children {
		childCost := adapter.Cost(child)
		if state.Strict() {
			childCost = adapter.StrictCost(child)
		}
		cost += state.Flow() * childCost
		state.Add(adapter.Estimate(child))
	}
	return cost
}

// AndEstimateOf returns the combined estimate of an AND over children.
func AndEstimateOf[T any, A Adapter[T]](adapter A, children []T) float64 {
	return EstimateOf(adapter, children, NewAndFlow(1.0, false))
}

// OrEstimateOf returns the combined estimate of an OR over children.
func OrEstimateOf[T any, A Adapter[T]](adapter A, children []T) float64 {
	return EstimateOf(adapter, children, NewOrFlow(1.0, false))
}

// AndNotEstimateOf returns the combined estimate of an AND-NOT over
// children, with children[0] as the positive clause.
func AndNotEstimateOf[T any, A Adapter[T]](adapter A, children []T) float64 {
	return EstimateOf(adapter, children, NewAndNotFlow(1.0, false))
}

// AndCostOf sorts children in place into the chosen AND evaluation order and
// returns the total expected cost of running them in that order. The
// reordering is the primary output: it is the evaluation plan the caller
// should install, not a scratch artifact.
func AndCostOf[T any, A Adapter[T]](adapter A, children []T, strict bool) float64 {
	SortAnd(adapter, children, strict)
	return OrderedCostOf(adapter, children, NewAndFlow(1.0, strict))
}

// OrCostOf is AndCostOf for OR flows.
func OrCostOf[T any, A Adapter[T]](adapter A, children []T, strict bool) float64 {
	SortOr(adapter, children, strict)
	return OrderedCostOf(adapter, children, NewOrFlow(1.0, strict))
}

// AndNotCostOf is AndCostOf for AND-NOT flows; children[0] stays pinned.
func AndNotCostOf[T any, A Adapter[T]](adapter A, children []T, strict bool) float64 {
	SortAndNot(adapter, children, strict)
	return OrderedCostOf(adapter, children, NewAndNotFlow(1.0, strict))
}
