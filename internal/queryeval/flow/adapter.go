package flow

// Source is anything the flow model can put a number on: a clause in the
// query tree exposing its predicted match fraction and per-document costs.
type Source interface {
	// Estimate returns the predicted fraction of the corpus matching this
	// clause, in [0,1].
	Estimate() float64

	// Cost returns the predicted unit cost of checking this clause against
	// one already-filtered candidate document.
	Cost() float64

	// StrictCost returns the predicted unit cost of driving this clause in
	// full doc-id-ordered mode.
	StrictCost() float64
}

// Adapter maps an opaque child handle to its flow numbers. It must be pure:
// the same child always yields the same numbers within one planning pass.
type Adapter[T any] interface {
	Estimate(child T) float64
	Cost(child T) float64
	StrictCost(child T) float64
}

// SourceAdapter is the direct addressing mode: children describe themselves.
type SourceAdapter[T Source] struct{}

func (SourceAdapter[T]) Estimate(child T) float64   { return child.Estimate() }
func (SourceAdapter[T]) Cost(child T) float64       { return child.Cost() }
func (SourceAdapter[T]) StrictCost(child T) float64 { return child.StrictCost() }

// IndirectAdapter addresses children by position in an external slice. A
// caller can sort a slice of uint32 positions instead of the children
// themselves, which keeps reordering cheap when children are heavy values.
type IndirectAdapter[T any, A Adapter[T]] struct {
	data    []T
	adapter A
}

func NewIndirectAdapter[T any, A Adapter[T]](adapter A, data []T) IndirectAdapter[T, A] {
	return IndirectAdapter[T, A]{data: data, adapter: adapter}
}

func (a IndirectAdapter[T, A]) Estimate(child uint32) float64 {
	return a.adapter.Estimate(a.data[child])
}

func (a IndirectAdapter[T, A]) Cost(child uint32) float64 {
	return a.adapter.Cost(a.data[child])
}

func (a IndirectAdapter[T, A]) StrictCost(child uint32) float64 {
	return a.adapter.StrictCost(a.data[child])
}

// MakeIndex returns the identity position index over children, for use with
// IndirectAdapter.
func MakeIndex[T any](children []T) []uint32 {
	index := make([]uint32, len(children))
	for i := range index {
		index[i] = uint32(i)
	}
	return index
}
