// Package index holds the in-memory inverted index and the statistics view
// the query planner reads its leaf numbers from.
package index

import (
	"sort"

	"github.com/spaolacci/murmur3"
)

// Index is an in-memory inverted index: one sorted posting list of document
// IDs per term. Terms are addressed through a murmur3-hashed dictionary so
// lookups never copy or compare the term strings themselves.
type Index struct {
	Name     string
	DocCount int

	postings map[uint64][]uint32
}

func New(name string, docCount int) *Index {
	return &Index{
		Name:     name,
		DocCount: docCount,
		postings: make(map[uint64][]uint32),
	}
}

func hashTerm(term string) uint64 {
	return murmur3.Sum64([]byte(term))
}

// AddPostings records the documents containing term. The merged posting
// list is kept sorted by document ID.
func (idx *Index) AddPostings(term string, docIDs ...uint32) {
	key := hashTerm(term)
	list := append(idx.postings[key], docIDs...)
	sort.Slice(list, func(i, j int) bool { return list[i] < list[j] })
	idx.postings[key] = list
}

// Postings returns the sorted posting list for term, nil if the term is not
// in the index.
func (idx *Index) Postings(term string) []uint32 {
	return idx.postings[hashTerm(term)]
}

// DocFreq returns the number of documents containing term.
func (idx *Index) DocFreq(term string) int {
	return len(idx.postings[hashTerm(term)])
}

// TermCount returns the number of distinct terms in the index.
func (idx *Index) TermCount() int {
	return len(idx.postings)
}
