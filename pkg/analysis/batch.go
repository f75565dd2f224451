package analysis

import (
	"sync"

	"github.com/japaniel/tokanalyze/pkg/token"
)

// AnalyzeBatch analyzes texts concurrently across workers goroutines.
// Each goroutine clones analyzer once up front and then calls Analyze
// sequentially on its own share of the input, demonstrating the
// clone-and-share concurrency contract in production code rather than
// only in a test: analyzer itself is never mutated and may be reused
// immediately after AnalyzeBatch returns. Results are returned in the
// same order as texts regardless of completion order.
//
// workers <= 0 is treated as 1.
func AnalyzeBatch(analyzer *Analyzer, texts []string, workers int) ([][]token.Token, error) {
	if workers <= 0 {
		workers = 1
	}
	if workers > len(texts) {
		workers = len(texts)
	}
	if workers == 0 {
		return nil, nil
	}

	results := make([][]token.Token, len(texts))
	errs := make([]error, len(texts))

	indices := make(chan int, len(texts))
	for i := range texts {
		indices <- i
	}
	close(indices)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			clone := analyzer.Clone()
			for i := range indices {
				tokens, err := clone.Analyze(texts[i])
				if err != nil {
					errs[i] = err
					continue
				}
				results[i] = tokens
			}
		}()
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}
