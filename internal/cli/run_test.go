package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/oShenny/ndc-pricer/internal/models"
)

func TestWriteResults(t *testing.T) {
	aggregate := models.NewAggregate()
	cases := models.NewCaseResults()
	cases.Put("test_case_1", models.TestCaseResult{
		Airline: "Emirates", Origin: "PRG", Destination: "DXB",
		URL: "https://example.test/f", UpsellPrices: []string{},
	})
	aggregate.Add("Test Set 1: Emirates", cases)

	path := filepath.Join(t.TempDir(), "results_pricer.json")
	if err := writeResults(path, aggregate); err != nil {
		t.Fatalf("writeResults() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	text := string(data)
	if !strings.Contains(text, `"Test Set 1: Emirates"`) {
		t.Errorf("results file missing test set: %s", text)
	}
	if !strings.Contains(text, `"load_time": null`) {
		t.Errorf("results file must carry explicit nulls: %s", text)
	}
}

func TestWriteResultsBadPath(t *testing.T) {
	if err := writeResults(filepath.Join(t.TempDir(), "missing", "out.json"), models.NewAggregate()); err == nil {
		t.Error("expected an error for an unwritable path")
	}
}
