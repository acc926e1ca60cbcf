package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/oShenny/ndc-pricer/internal/models"
)

// Problem is one flagged test case in the filtered report.
type Problem struct {
	Airline     string
	Origin      string
	Destination string
	Issue       string
}

// FilterProblems walks the aggregate and flags every case where no NDC offer
// was found or where the NDC offer is not ranked first.
func FilterProblems(aggregate *models.Aggregate) []Problem {
	var problems []Problem
	for _, name := range aggregate.Names() {
		cases, _ := aggregate.Get(name)
		for _, key := range cases.Keys() {
			result, _ := cases.Get(key)

			var issue string
			switch {
			case !result.IsNDC:
				issue = "No NDC offers found"
			case result.NDCPosition != nil && *result.NDCPosition > 1:
				issue = fmt.Sprintf("NDC offer found but at position %d", *result.NDCPosition)
			default:
				continue
			}

			problems = append(problems, Problem{
				Airline:     result.Airline,
				Origin:      result.Origin,
				Destination: result.Destination,
				Issue:       issue,
			})
		}
	}
	return problems
}

// WriteFiltered writes the filtered problems into a timestamped CSV under
// dir, creating it if needed, and returns the file path.
func WriteFiltered(aggregate *models.Aggregate, dir string, now time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create report directory: %w", err)
	}

	path := filepath.Join(dir, fmt.Sprintf("filtered_results_%s.csv", now.Format("20060102_150405")))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create report file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"airline", "origin", "destination", "issue"}); err != nil {
		return "", fmt.Errorf("failed to write report header: %w", err)
	}
	for _, p := range FilterProblems(aggregate) {
		if err := w.Write([]string{p.Airline, p.Origin, p.Destination, p.Issue}); err != nil {
			return "", fmt.Errorf("failed to write report row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("failed to flush report: %w", err)
	}

	return path, nil
}
