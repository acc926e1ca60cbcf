package config

import "time"

// Selectors maps logical page elements to DOM queries. The target site's
// markup varies across fare-display templates, so price extraction carries an
// ordered fallback list evaluated first-match-wins.
type Selectors struct {
	// OffersList is the container of the rendered offer list.
	OffersList string
	// OfferItem is one fare card inside the offer list.
	OfferItem string
	// FilterToggle expands the airline filter panel.
	FilterToggle string
	// FilterLabel is the checkbox label carrying the airline name.
	FilterLabel string
	// Badge marks an offer as using the direct-payment path when its text
	// contains BadgeMarker.
	Badge       string
	BadgeMarker string
	// PriceFallbacks are tried in order until one matches a price element.
	PriceFallbacks []string
	// UpsellButtonClass is the class of the upsell tariff buttons.
	UpsellButtonClass string
}

// OfferItems is the combined query for all offer cards in document order.
func (s Selectors) OfferItems() string {
	return s.OffersList + " " + s.OfferItem
}

// UpsellPrices is the query for price elements scoped to upsell buttons.
func (s Selectors) UpsellPrices() string {
	return "." + s.UpsellButtonClass + " strong.text-nowrap"
}

// Timeouts bounds every suspending browser operation so no task can block
// indefinitely.
type Timeouts struct {
	PageLoad     time.Duration
	SelectorWait time.Duration
}

// SiteConfig holds everything specific to the checked site: base URL, DOM
// selectors, and timeout budgets.
type SiteConfig struct {
	BaseURL   string
	Selectors Selectors
	Timeouts  Timeouts
}

// LoadSiteConfig returns the site configuration, with timeouts overridable
// from environment variables.
func LoadSiteConfig() SiteConfig {
	return SiteConfig{
		BaseURL: getEnv("BASE_URL", "https://letenky.studentagency.cz/"),
		Selectors: Selectors{
			OffersList:        "#airticket-offer-list",
			OfferItem:         ".airticketOfferItem",
			FilterToggle:      ".filter-block .toggle-visibility-link",
			FilterLabel:       ".form-check-label",
			Badge:             ".flap.type-lowcost_offer",
			BadgeMarker:       "OKAMŽITÁ PLATBA",
			PriceFallbacks:    []string{"strong.d-inline-block.d-md-block", "strong.text-nowrap"},
			UpsellButtonClass: "tariff-btn.smaller",
		},
		Timeouts: Timeouts{
			PageLoad:     time.Duration(getEnvAsInt("PAGE_LOAD_TIMEOUT_MS", 90000)) * time.Millisecond,
			SelectorWait: time.Duration(getEnvAsInt("SELECTOR_WAIT_TIMEOUT_MS", 60000)) * time.Millisecond,
		},
	}
}
