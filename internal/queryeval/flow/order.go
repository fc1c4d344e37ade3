package flow

import "sort"

// The ordering functions below implement closed-form pairwise-exchange
// criteria: each comparator decides whether swapping two adjacent children
// would lower the total flow-weighted cost. The resulting order is a
// documented heuristic, not a proof of global optimality, and the rest of
// the planner depends on this exact behavior.

// MinAndCost reports whether a should run before b to minimize the total
// cost of an AND flow: high selectivity per unit cost goes first.
func MinAndCost[T any, A Adapter[T]](adapter A, a, b T) bool {
	return (1.0-adapter.Estimate(a))*adapter.Cost(b) > (1.0-adapter.Estimate(b))*adapter.Cost(a)
}

// MinOrCost reports whether a should run before b to minimize the total
// cost of a non-strict OR flow.
func MinOrCost[T any, A Adapter[T]](adapter A, a, b T) bool {
	return adapter.Estimate(a)*adapter.Cost(b) > adapter.Estimate(b)*adapter.Cost(a)
}

// MinOrStrictCost is MinOrCost with strict cost substituted, for strict OR
// flows where every child runs as a doc-id-ordered iterator.
func MinOrStrictCost[T any, A Adapter[T]](adapter A, a, b T) bool {
	return adapter.Estimate(a)*adapter.StrictCost(b) > adapter.Estimate(b)*adapter.StrictCost(a)
}

// SelectStrictAndChild picks the child of an already-sorted AND that should
// drive strict evaluation. It scans once, accumulating the running cost and
// combined estimate, and for each candidate computes the marginal cost delta
// of promoting it to driver. The index with the smallest delta wins.
func SelectStrictAndChild[T any, A Adapter[T]](adapter A, children []T) int {
	bestIdx := 0
	bestDiff := 0.0
	cost := 0.0
	est := 1.0
	for idx, child := range children {
		childCost := est * adapter.Cost(child)
		childStrictCost := adapter.StrictCost(child)
		childEst := adapter.Estimate(child)
		if idx == 0 {
			bestDiff = childStrictCost - childCost
		} else {
			myDiff := (childStrictCost + childEst*cost) - (cost + childCost)
			if myDiff < bestDiff {
				bestDiff = myDiff
				bestIdx = idx
			}
		}
		cost += childCost
		est *= childEst
	}
	return bestIdx
}

// SortAnd reorders children in place for minimal AND flow cost. Under a
// strict request it additionally selects the driver child and moves it to
// the front with a stable rotation, preserving the relative order of the
// post-filter children.
func SortAnd[T any, A Adapter[T]](adapter A, children []T, strict bool) {
	sort.Slice(children, func(i, j int) bool {
		return MinAndCost(adapter, children[i], children[j])
	})
	if strict && len(children) > 1 {
		idx := SelectStrictAndChild(adapter, children)
		driver := children[idx]
		copy(children[1:idx+1], children[0:idx])
		children[0] = driver
	}
}

// SortOr reorders children in place for minimal OR flow cost, comparing by
// strict cost when the whole OR runs strict.
func SortOr[T any, A Adapter[T]](adapter A, children []T, strict bool) {
	if strict {
		sort.Slice(children, func(i, j int) bool {
			return MinOrStrictCost(adapter, children[i], children[j])
		})
	} else {
		sort.Slice(children, func(i, j int) bool {
			return MinOrCost(adapter, children[i], children[j])
		})
	}
}

// SortAndNot reorders the negative children (index >= 1) for fast disproof,
// leaving the positive clause pinned at the front. The strict flag does not
// change the order: negative clauses are always post-filters.
func SortAndNot[T any, A Adapter[T]](adapter A, children []T, _ bool) {
	if len(children) > 1 {
		rest := children[1:]
		sort.Slice(rest, func(i, j int) bool {
			return MinOrCost(adapter, rest[i], rest[j])
		})
	}
}
