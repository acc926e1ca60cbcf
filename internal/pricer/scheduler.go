package pricer

import (
	"context"
	"log/slog"
	"sync"

	"github.com/oShenny/ndc-pricer/internal/catalog"
	"github.com/oShenny/ndc-pricer/internal/models"
)

// DefaultConcurrencyLimit bounds simultaneous browser sessions when no limit
// is configured. It throttles load on the shared site and caps browser
// memory.
const DefaultConcurrencyLimit = 2

// SetRunner runs all URLs of one named test set and never fails upward.
type SetRunner interface {
	RunSet(ctx context.Context, name string, urls []string) *models.CaseResults
}

// Scheduler launches one task per test set under a counting admission gate:
// a task may open its browser session only once it holds a gate slot, and
// releases the slot when its test set completes.
type Scheduler struct {
	runner SetRunner
	limit  int
	log    *slog.Logger
}

// NewScheduler creates a scheduler admitting at most limit concurrent test
// sets. Non-positive limits fall back to the default.
func NewScheduler(runner SetRunner, limit int, log *slog.Logger) *Scheduler {
	if limit < 1 {
		limit = DefaultConcurrencyLimit
	}
	return &Scheduler{runner: runner, limit: limit, log: log}
}

// RunAll runs every test set to completion and aggregates the results in the
// input order, regardless of completion order. Cancelling the context stops
// admitting new test sets; already-admitted sets finish their current case
// and stop.
func (s *Scheduler) RunAll(ctx context.Context, sets []catalog.TestSet) *models.Aggregate {
	gate := make(chan struct{}, s.limit)
	perSet := make([]*models.CaseResults, len(sets))

	var wg sync.WaitGroup
	for i, set := range sets {
		wg.Add(1)
		go func(i int, set catalog.TestSet) {
			defer wg.Done()

			select {
			case gate <- struct{}{}:
			case <-ctx.Done():
				s.log.Warn("run cancelled before admission", "test_set", set.Name)
				return
			}
			defer func() { <-gate }()

			s.log.Info("test set admitted", "test_set", set.Name, "urls", len(set.URLs))
			perSet[i] = s.runner.RunSet(ctx, set.Name, set.URLs)
			s.log.Info("test set completed", "test_set", set.Name, "cases", perSet[i].Len())
		}(i, set)
	}
	wg.Wait()

	aggregate := models.NewAggregate()
	for i, set := range sets {
		aggregate.Add(set.Name, perSet[i])
	}
	return aggregate
}
