package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/playwright-community/playwright-go"

	"github.com/oShenny/ndc-pricer/internal/catalog"
	"github.com/oShenny/ndc-pricer/internal/config"
	"github.com/oShenny/ndc-pricer/internal/models"
	"github.com/oShenny/ndc-pricer/internal/pricer"
	"github.com/oShenny/ndc-pricer/internal/report"
)

// RunDependencies holds everything RunPricer needs, wired by the caller so
// nothing in here reaches for process-global state.
type RunDependencies struct {
	Config config.RunConfig
	Site   config.SiteConfig
	Log    *slog.Logger
	RunID  string
	// Now supplies the current time for date generation and report naming;
	// nil means time.Now.
	Now func() time.Time
}

// RunPricer executes the full check: generate test dates, load and expand the
// catalog, run every test set under the concurrency limit, write the results
// document, and produce the filtered CSV report. A missing catalog is the
// only fatal error before browser work; SIGINT/SIGTERM cancels the run and
// discards partial results.
func RunPricer(deps RunDependencies) error {
	now := deps.Now
	if now == nil {
		now = time.Now
	}
	log := deps.Log.With("run_id", deps.RunID)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info("starting NDC pricer run", "concurrency_limit", deps.Config.ConcurrencyLimit)

	departureDate1, departureDate2 := catalog.TestDates(now())
	log.Info("generated test dates",
		"departure_date_1", departureDate1, "departure_date_2", departureDate2)

	sets, err := catalog.Load(deps.Config.CatalogPath)
	if err != nil {
		return fmt.Errorf("catalog load failed: %w", err)
	}
	log.Info("loaded catalog", "test_sets", len(sets), "path", deps.Config.CatalogPath)

	for i := range sets {
		sets[i] = sets[i].Expand(departureDate1, departureDate2)
	}

	pw, err := playwright.Run()
	if err != nil {
		return fmt.Errorf("failed to start playwright: %w", err)
	}
	defer pw.Stop()

	factory := pricer.NewPlaywrightFactory(pw, deps.Site, deps.Config.Headless, log)
	detector := pricer.NewDetector(deps.Site.Selectors, log)
	runner := pricer.NewCaseRunner(detector, log)
	executor := pricer.NewExecutor(factory, runner, log)
	scheduler := pricer.NewScheduler(executor, deps.Config.ConcurrencyLimit, log)

	aggregate := scheduler.RunAll(ctx, sets)
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("run interrupted: %w", err)
	}

	if err := writeResults(deps.Config.ResultsPath, aggregate); err != nil {
		return err
	}
	log.Info("results written", "path", deps.Config.ResultsPath)

	reportPath, err := report.WriteFiltered(aggregate, deps.Config.ReportDir, now())
	if err != nil {
		// The aggregate is already on disk; a report failure should not
		// discard the run.
		log.Error("filtered report failed", "error", err)
		return nil
	}
	log.Info("filtered report written", "path", reportPath)

	return nil
}

func writeResults(path string, aggregate *models.Aggregate) error {
	data, err := json.MarshalIndent(aggregate, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to serialize results: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write results file: %w", err)
	}
	return nil
}
