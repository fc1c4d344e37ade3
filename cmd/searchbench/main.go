// searchbench plans batches of generated queries concurrently and reports
// how much the flow-based child ordering lowers expected evaluation cost.
// Planning passes over disjoint trees share nothing, so they parallelize
// cleanly over a worker pool.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/leengari/mini-search/internal/index"
	"github.com/leengari/mini-search/internal/logging"
	"github.com/leengari/mini-search/internal/parser"
	"github.com/leengari/mini-search/internal/planner"
)

func main() {
	indexPath := flag.String("index", "indexes/demo", "path to the index directory")
	queries := flag.Int("queries", 1000, "number of queries to plan")
	workers := flag.Int("workers", 8, "planner worker pool size")
	seed := flag.Int64("seed", 1, "query generator seed")
	flag.Parse()

	logger, closeFn := logging.SetupLogger()
	defer closeFn()
	slog.SetDefault(logger)

	idx, err := index.Load(*indexPath, logger)
	if err != nil {
		slog.Error("failed to load index", "error", err)
		closeFn()
		os.Exit(1)
	}

	vocabulary, err := loadVocabulary(*indexPath)
	if err != nil {
		slog.Error("failed to load vocabulary", "error", err)
		closeFn()
		os.Exit(1)
	}

	stats, err := index.NewStats(idx)
	if err != nil {
		slog.Error("failed to create stats", "error", err)
		closeFn()
		os.Exit(1)
	}

	pool, err := ants.NewPool(*workers)
	if err != nil {
		slog.Error("failed to create worker pool", "error", err)
		closeFn()
		os.Exit(1)
	}
	defer pool.Release()

	rng := rand.New(rand.NewSource(*seed))
	generated := make([]string, *queries)
	for i := range generated {
		generated[i] = generateQuery(rng, vocabulary)
	}

	var wg sync.WaitGroup
	var planned, failed atomic.Int64
	var costBefore, costAfter atomicFloat

	start := time.Now()
	for _, query := range generated {
		query := query
		wg.Add(1)
		submitErr := pool.Submit(func() {
			defer wg.Done()

			expr, err := parser.ParseQuery(query)
			if err != nil {
				failed.Add(1)
				return
			}
			node, err := planner.Plan(expr, stats)
			if err != nil {
				failed.Add(1)
				return
			}

			before := node.StrictCost() // cost of the written query order
			after := planner.Optimize(node, true)

			costBefore.Add(before)
			costAfter.Add(after)
			planned.Add(1)
		})
		if submitErr != nil {
			wg.Done()
			failed.Add(1)
		}
	}
	wg.Wait()
	elapsed := time.Since(start)

	n := planned.Load()
	slog.Info("benchmark complete",
		"queries", n,
		"failed", failed.Load(),
		"workers", *workers,
		"elapsed", elapsed,
	)
	if n > 0 {
		before := costBefore.Load() / float64(n)
		after := costAfter.Load() / float64(n)
		saving := "n/a"
		if before > 0 {
			saving = fmt.Sprintf("%.1f%%", 100*(1-after/before))
		}
		slog.Info("mean expected cost per query",
			"written_order", fmt.Sprintf("%.4f", before),
			"planned_order", fmt.Sprintf("%.4f", after),
			"saving", saving,
		)
	}
}

// loadVocabulary reads the term dictionary back out of postings.json; the
// in-memory index only keeps hashed keys.
func loadVocabulary(indexPath string) ([]string, error) {
	data, err := os.ReadFile(filepath.Join(indexPath, "postings.json"))
	if err != nil {
		return nil, err
	}
	var postings index.PostingsFile
	if err := json.Unmarshal(data, &postings); err != nil {
		return nil, err
	}
	terms := make([]string, 0, len(postings.Terms))
	for term := range postings.Terms {
		terms = append(terms, term)
	}
	sort.Strings(terms)
	return terms, nil
}

func generateQuery(rng *rand.Rand, vocabulary []string) string {
	pick := func() string { return vocabulary[rng.Intn(len(vocabulary))] }
	switch rng.Intn(4) {
	case 0:
		return fmt.Sprintf("%s AND %s AND %s", pick(), pick(), pick())
	case 1:
		return fmt.Sprintf("%s OR %s OR %s", pick(), pick(), pick())
	case 2:
		return fmt.Sprintf("%s AND (%s OR %s)", pick(), pick(), pick())
	default:
		return fmt.Sprintf("%s ANDNOT %s", pick(), pick())
	}
}

// atomicFloat accumulates float64 sums under a mutex; contention here is
// negligible next to the planning work.
type atomicFloat struct {
	mu  sync.Mutex
	sum float64
}

func (a *atomicFloat) Add(v float64) {
	a.mu.Lock()
	a.sum += v
	a.mu.Unlock()
}

func (a *atomicFloat) Load() float64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.sum
}
