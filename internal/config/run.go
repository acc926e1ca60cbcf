package config

import "fmt"

// RunConfig holds run-level configuration: how many test sets may hold a
// browser session at once and where the catalog and output files live.
type RunConfig struct {
	ConcurrencyLimit int
	Headless         bool
	CatalogPath      string
	ResultsPath      string
	ReportDir        string
	LogLevel         string
}

// LoadRunConfig loads run configuration from environment variables.
func LoadRunConfig() (RunConfig, error) {
	cfg := RunConfig{
		ConcurrencyLimit: getEnvAsInt("CONCURRENCY_LIMIT", 2),
		Headless:         getEnv("HEADLESS", "true") != "false",
		CatalogPath:      getEnv("CATALOG_PATH", "test_urls.json"),
		ResultsPath:      getEnv("RESULTS_PATH", "results_pricer.json"),
		ReportDir:        getEnv("REPORT_DIR", "csv_results"),
		LogLevel:         getEnv("LOG_LEVEL", "INFO"),
	}

	if cfg.ConcurrencyLimit < 1 {
		return cfg, fmt.Errorf("CONCURRENCY_LIMIT must be at least 1, got %d", cfg.ConcurrencyLimit)
	}

	return cfg, nil
}
