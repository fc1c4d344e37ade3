package index

import (
	"fmt"

	mapset "github.com/deckarep/golang-set/v2"
	lru "github.com/hashicorp/golang-lru/v2"
)

// TermStats carries the three flow numbers the planner reads for one term.
type TermStats struct {
	Estimate   float64
	Cost       float64
	StrictCost float64
}

// Leaf cost heuristics. Probing a posting list for one candidate is the
// unit of cost; driving a posting iterator over the whole corpus costs in
// proportion to how often it lands on a document, which is the estimate.
const termProbeCost = 1.0

// defaultStopWords match everything for planning purposes: ordering them
// early would never filter anything out.
var defaultStopWords = []string{"the", "a", "an", "of", "to", "in", "is"}

// statsCacheSize bounds the per-index term stat cache. The planner reads
// the same term's numbers several times per pass, and comparator sorts
// multiply that further.
const statsCacheSize = 4096

// Stats is the planner's view of an index: it maps terms to their flow
// numbers, with an LRU cache in front of the posting lookups.
type Stats struct {
	index     *Index
	cache     *lru.Cache[string, TermStats]
	stopWords mapset.Set[string]
}

func NewStats(idx *Index) (*Stats, error) {
	cache, err := lru.New[string, TermStats](statsCacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create stats cache: %w", err)
	}
	return &Stats{
		index:     idx,
		cache:     cache,
		stopWords: mapset.NewSet(defaultStopWords...),
	}, nil
}

// Lookup returns the flow numbers for term. Unknown terms get estimate 0;
// stop words get estimate 1. There is no error path: planning over a
// malformed term is a degenerate plan, not a failure.
func (s *Stats) Lookup(term string) TermStats {
	if stats, ok := s.cache.Get(term); ok {
		return stats
	}

	stats := s.compute(term)
	s.cache.Add(term, stats)
	return stats
}

func (s *Stats) compute(term string) TermStats {
	estimate := 0.0
	if s.stopWords.Contains(term) {
		estimate = 1.0
	} else if s.index.DocCount > 0 {
		estimate = float64(s.index.DocFreq(term)) / float64(s.index.DocCount)
	}
	return TermStats{
		Estimate:   estimate,
		Cost:       termProbeCost,
		StrictCost: estimate,
	}
}

// DocCount returns the number of documents in the underlying index.
func (s *Stats) DocCount() int {
	return s.index.DocCount
}
