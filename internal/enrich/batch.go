package enrich

import (
	"context"
	"sync"

	"github.com/dkrasov/newsglot/internal/lang"
)

// TranslateBatch translates every text concurrently and returns results in
// input order. Items are fully independent: each one is a total Translate
// call, so one item degrading has no effect on the others.
func (e *Enricher) TranslateBatch(ctx context.Context, texts []string, target lang.Tag) []string {
	results := make([]string, len(texts))

	var wg sync.WaitGroup
	for i, text := range texts {
		wg.Add(1)
		go func(i int, text string) {
			defer wg.Done()
			results[i] = e.Translate(ctx, text, target)
		}(i, text)
	}
	wg.Wait()

	return results
}
