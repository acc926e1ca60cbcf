package config

import "testing"

func TestLoadRunConfigDefaults(t *testing.T) {
	cfg, err := LoadRunConfig()
	if err != nil {
		t.Fatalf("LoadRunConfig() error = %v", err)
	}

	if cfg.ConcurrencyLimit != 2 {
		t.Errorf("ConcurrencyLimit = %d, want 2", cfg.ConcurrencyLimit)
	}
	if !cfg.Headless {
		t.Error("Headless should default to true")
	}
	if cfg.CatalogPath != "test_urls.json" {
		t.Errorf("CatalogPath = %s, want test_urls.json", cfg.CatalogPath)
	}
	if cfg.ResultsPath != "results_pricer.json" {
		t.Errorf("ResultsPath = %s, want results_pricer.json", cfg.ResultsPath)
	}
}

func TestLoadRunConfigOverrides(t *testing.T) {
	t.Setenv("CONCURRENCY_LIMIT", "4")
	t.Setenv("HEADLESS", "false")
	t.Setenv("CATALOG_PATH", "other_urls.json")

	cfg, err := LoadRunConfig()
	if err != nil {
		t.Fatalf("LoadRunConfig() error = %v", err)
	}

	if cfg.ConcurrencyLimit != 4 {
		t.Errorf("ConcurrencyLimit = %d, want 4", cfg.ConcurrencyLimit)
	}
	if cfg.Headless {
		t.Error("HEADLESS=false should disable headless mode")
	}
	if cfg.CatalogPath != "other_urls.json" {
		t.Errorf("CatalogPath = %s, want other_urls.json", cfg.CatalogPath)
	}
}

func TestLoadRunConfigInvalidConcurrency(t *testing.T) {
	t.Setenv("CONCURRENCY_LIMIT", "0")

	if _, err := LoadRunConfig(); err == nil {
		t.Error("expected an error for CONCURRENCY_LIMIT=0")
	}
}

func TestLoadRunConfigUnparseableIntFallsBack(t *testing.T) {
	t.Setenv("CONCURRENCY_LIMIT", "lots")

	cfg, err := LoadRunConfig()
	if err != nil {
		t.Fatalf("LoadRunConfig() error = %v", err)
	}
	if cfg.ConcurrencyLimit != 2 {
		t.Errorf("ConcurrencyLimit = %d, want fallback 2", cfg.ConcurrencyLimit)
	}
}
