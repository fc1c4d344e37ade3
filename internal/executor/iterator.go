package executor

import "sort"

// Iterator produces matching document IDs in increasing order.
type Iterator interface {
	// DocID returns the current document. Undefined once AtEnd is true.
	DocID() uint32

	// AtEnd reports whether the iterator is exhausted.
	AtEnd() bool

	// Next advances to the next matching document.
	Next()

	// SeekTo advances to the first matching document with ID >= docID.
	// Seeking backwards is a no-op.
	SeekTo(docID uint32)
}

// TermIterator walks one posting list.
type TermIterator struct {
	postings []uint32
	pos      int
}

func NewTermIterator(postings []uint32) *TermIterator {
	return &TermIterator{postings: postings}
}

func (it *TermIterator) DocID() uint32 { return it.postings[it.pos] }

func (it *TermIterator) AtEnd() bool { return it.pos >= len(it.postings) }

func (it *TermIterator) Next() { it.pos++ }

func (it *TermIterator) SeekTo(docID uint32) {
	if it.AtEnd() || it.postings[it.pos] >= docID {
		return
	}
	rest := it.postings[it.pos:]
	it.pos += sort.Search(len(rest), func(i int) bool { return rest[i] >= docID })
}

// emptyIterator matches nothing; boolean nodes without children degrade to
// it instead of failing.
type emptyIterator struct{}

func (emptyIterator) DocID() uint32   { return 0 }
func (emptyIterator) AtEnd() bool     { return true }
func (emptyIterator) Next()           {}
func (emptyIterator) SeekTo(_ uint32) {}

// AndIterator intersects its children. The first child is the driver chosen
// by the planner: it produces candidates in doc-id order, and the remaining
// children act as post-filters in their planned order, so the cheapest and
// most selective checks run first.
type AndIterator struct {
	children []Iterator
	done     bool
}

func NewAndIterator(children []Iterator) *AndIterator {
	it := &AndIterator{children: children}
	it.findMatch()
	return it
}

func (it *AndIterator) driver() Iterator { return it.children[0] }

func (it *AndIterator) DocID() uint32 { return it.driver().DocID() }

func (it *AndIterator) AtEnd() bool { return it.done }

func (it *AndIterator) Next() {
	it.driver().Next()
	it.findMatch()
}

func (it *AndIterator) SeekTo(docID uint32) {
	if it.done {
		return
	}
	it.driver().SeekTo(docID)
	it.findMatch()
}

func (it *AndIterator) findMatch() {
	if len(it.children) == 0 {
		it.done = true
		return
	}
	driver := it.driver()
	for !driver.AtEnd() {
		candidate := driver.DocID()
		matched := true
		for _, filter := range it.children[1:] {
			filter.SeekTo(candidate)
			if filter.AtEnd() {
				// A filter ran out: nothing later can match either.
				it.done = true
				return
			}
			if filter.DocID() != candidate {
				matched = false
				break
			}
		}
		if matched {
			return
		}
		driver.Next()
	}
	it.done = true
}

// OrIterator unions its children, producing each matching document once.
type OrIterator struct {
	children []Iterator
}

func NewOrIterator(children []Iterator) *OrIterator {
	return &OrIterator{children: children}
}

func (it *OrIterator) DocID() uint32 {
	min := uint32(0)
	first := true
	for _, child := range it.children {
		if child.AtEnd() {
			continue
		}
		if first || child.DocID() < min {
			min = child.DocID()
			first = false
		}
	}
	return min
}

func (it *OrIterator) AtEnd() bool {
	for _, child := range it.children {
		if !child.AtEnd() {
			return false
		}
	}
	return true
}

func (it *OrIterator) Next() {
	current := it.DocID()
	for _, child := range it.children {
		if !child.AtEnd() && child.DocID() == current {
			child.Next()
		}
	}
}

func (it *OrIterator) SeekTo(docID uint32) {
	for _, child := range it.children {
		child.SeekTo(docID)
	}
}

// AndNotIterator produces documents matching the positive clause and none
// of the negative clauses. Negatives only ever veto candidates, so they run
// as cheap post-filters in their planned order.
type AndNotIterator struct {
	positive  Iterator
	negatives []Iterator
}

func NewAndNotIterator(positive Iterator, negatives []Iterator) *AndNotIterator {
	it := &AndNotIterator{positive: positive, negatives: negatives}
	it.findMatch()
	return it
}

func (it *AndNotIterator) DocID() uint32 { return it.positive.DocID() }

func (it *AndNotIterator) AtEnd() bool { return it.positive.AtEnd() }

func (it *AndNotIterator) Next() {
	it.positive.Next()
	it.findMatch()
}

func (it *AndNotIterator) SeekTo(docID uint32) {
	it.positive.SeekTo(docID)
	it.findMatch()
}

func (it *AndNotIterator) findMatch() {
	for !it.positive.AtEnd() {
		candidate := it.positive.DocID()
		vetoed := false
		for _, negative := range it.negatives {
			negative.SeekTo(candidate)
			if !negative.AtEnd() && negative.DocID() == candidate {
				vetoed = true
				break
			}
		}
		if !vetoed {
			return
		}
		it.positive.Next()
	}
}
