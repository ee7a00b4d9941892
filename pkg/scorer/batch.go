package scorer

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/nutricart/nutricart/pkg/interfaces"
)

// sentinelMessage is the user-visible explanation attached to a sentinel
// result when an item could not be scored.
const sentinelMessage = "Unable to calculate nutrition score"

// Scorer is the single-item contract BatchScore fans out over.
type Scorer interface {
	Score(facts *interfaces.NutritionFacts) (*interfaces.NutritionScoring, error)
}

// itemResult tags one slot of a batch as either a scoring or a failure,
// keeping the isolation behavior auditable before it is flattened into
// the public sentinel-score contract.
type itemResult struct {
	scoring *interfaces.NutritionScoring
	err     error
}

// BatchScore scores every item concurrently and returns an equal-length,
// index-aligned slice. A failing item never aborts the batch: its slot is
// filled with SentinelScoring instead. The join waits for every item to
// settle; no parallelism cap or timeout is imposed here, so callers
// needing either wrap the call externally.
func BatchScore(ctx context.Context, s Scorer, items []*interfaces.NutritionFacts) []*interfaces.NutritionScoring {
	out := make([]*interfaces.NutritionScoring, len(items))
	if len(items) == 0 {
		return out
	}

	slog.Debug("starting batch scoring", "items", len(items))

	results := make([]itemResult, len(items))
	var wg sync.WaitGroup

	for i, facts := range items {
		wg.Add(1)
		go func(i int, facts *interfaces.NutritionFacts) {
			defer wg.Done()
			// Belt and suspenders: the composer converts calculator
			// panics to errors itself, but an injected Scorer must not
			// be able to break batch isolation either.
			defer func() {
				if r := recover(); r != nil {
					results[i] = itemResult{err: fmt.Errorf("scorer panic: %v", r)}
				}
			}()

			if err := ctx.Err(); err != nil {
				results[i] = itemResult{err: err}
				return
			}

			scoring, err := s.Score(facts)
			results[i] = itemResult{scoring: scoring, err: err}
		}(i, facts)
	}

	wg.Wait()

	failed := 0
	for i, r := range results {
		if r.err != nil || r.scoring == nil {
			slog.Warn("item scoring failed, substituting sentinel", "index", i, "error", r.err)
			out[i] = SentinelScoring()
			failed++
			continue
		}
		out[i] = r.scoring
	}

	slog.Debug("batch scoring complete", "items", len(items), "failed", failed)
	return out
}

// BatchScore applies the composer to every item concurrently with
// per-item failure isolation. See the package-level BatchScore.
func (c *Composer) BatchScore(ctx context.Context, items []*interfaces.NutritionFacts) []*interfaces.NutritionScoring {
	return BatchScore(ctx, c, items)
}

// SentinelScoring is the fixed worst-case placeholder substituted when
// scoring an item genuinely fails.
func SentinelScoring() *interfaces.NutritionScoring {
	return &interfaces.NutritionScoring{
		Score:        0,
		Category:     interfaces.CategoryPoor,
		Color:        interfaces.ColorRed,
		Improvements: []string{sentinelMessage},
	}
}
