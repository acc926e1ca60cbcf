package config

import (
	"testing"
	"time"
)

func TestLoadSiteConfigDefaults(t *testing.T) {
	cfg := LoadSiteConfig()

	if cfg.Timeouts.PageLoad != 90*time.Second {
		t.Errorf("PageLoad = %v, want 90s", cfg.Timeouts.PageLoad)
	}
	if cfg.Timeouts.SelectorWait != 60*time.Second {
		t.Errorf("SelectorWait = %v, want 60s", cfg.Timeouts.SelectorWait)
	}
	if len(cfg.Selectors.PriceFallbacks) != 2 {
		t.Fatalf("expected 2 price fallback selectors, got %d", len(cfg.Selectors.PriceFallbacks))
	}
	if cfg.Selectors.PriceFallbacks[0] != "strong.d-inline-block.d-md-block" {
		t.Errorf("primary price selector = %s", cfg.Selectors.PriceFallbacks[0])
	}
}

func TestSelectorQueries(t *testing.T) {
	s := Selectors{
		OffersList:        "#airticket-offer-list",
		OfferItem:         ".airticketOfferItem",
		UpsellButtonClass: "tariff-btn.smaller",
	}

	if got := s.OfferItems(); got != "#airticket-offer-list .airticketOfferItem" {
		t.Errorf("OfferItems() = %s", got)
	}
	if got := s.UpsellPrices(); got != ".tariff-btn.smaller strong.text-nowrap" {
		t.Errorf("UpsellPrices() = %s", got)
	}
}

func TestLoadSiteConfigTimeoutOverride(t *testing.T) {
	t.Setenv("PAGE_LOAD_TIMEOUT_MS", "15000")

	cfg := LoadSiteConfig()
	if cfg.Timeouts.PageLoad != 15*time.Second {
		t.Errorf("PageLoad = %v, want 15s", cfg.Timeouts.PageLoad)
	}
}
