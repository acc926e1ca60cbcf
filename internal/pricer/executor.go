package pricer

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/oShenny/ndc-pricer/internal/models"
)

// setNameSeparator splits a test-set display name into its label and the
// airline it exercises, e.g. "Test Set 6: Emirates".
const setNameSeparator = ": "

// AirlineFromSetName extracts the airline name embedded in a test-set name.
// Names without the separator are used whole.
func AirlineFromSetName(name string) string {
	if _, after, ok := strings.Cut(name, setNameSeparator); ok {
		return after
	}
	return name
}

// Executor runs all URLs of one test set sequentially through one exclusive
// browser session, opened before the first URL and closed after the last.
type Executor struct {
	factory SessionFactory
	runner  *CaseRunner
	log     *slog.Logger
}

// NewExecutor creates an executor opening sessions from the given factory.
func NewExecutor(factory SessionFactory, runner *CaseRunner, log *slog.Logger) *Executor {
	return &Executor{factory: factory, runner: runner, log: log}
}

// RunSet processes the test set's URLs in input order, keying results as
// test_case_<ordinal> starting at 1. URLs that fail route parsing leave a gap
// in the ordinals. RunSet never fails upward: a session that cannot be opened
// yields an empty result map, and the session is closed even on early abort.
func (e *Executor) RunSet(ctx context.Context, name string, urls []string) *models.CaseResults {
	results := models.NewCaseResults()
	airline := AirlineFromSetName(name)

	session, err := e.factory.OpenSession(ctx)
	if err != nil {
		e.log.Error("could not open browser session", "test_set", name, "error", err)
		return results
	}
	defer func() {
		if err := session.Close(); err != nil {
			e.log.Warn("error closing browser session", "test_set", name, "error", err)
		}
	}()

	for i, u := range urls {
		if err := ctx.Err(); err != nil {
			e.log.Warn("run cancelled, abandoning remaining cases", "test_set", name, "error", err)
			break
		}

		ordinal := i + 1
		result, ok := e.runner.Run(session, name, airline, ordinal, u)
		if !ok {
			continue
		}
		results.Put(fmt.Sprintf("test_case_%d", ordinal), result)
	}

	return results
}
