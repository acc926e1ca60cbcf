package pricer

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/oShenny/ndc-pricer/internal/config"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testSelectors() config.Selectors {
	return config.Selectors{
		OffersList:        "#offer-list",
		OfferItem:         ".offer",
		FilterToggle:      ".filter-toggle",
		FilterLabel:       ".filter-label",
		Badge:             ".badge",
		BadgeMarker:       "OKAMŽITÁ PLATBA",
		PriceFallbacks:    []string{"strong.primary", "strong.secondary"},
		UpsellButtonClass: "upsell-btn",
	}
}

// fakeOffer is a scripted implementation of Offer.
type fakeOffer struct {
	badge    bool
	badgeErr error
	// texts maps a selector to the text of its first match.
	texts map[string]string
	// statuses overrides the extraction status for a selector.
	statuses map[string]ExtractStatus
	// all maps a selector to the texts of every match.
	all    map[string][]string
	allErr error
}

func (f *fakeOffer) FirstMatchText(selector string, wait time.Duration) (string, ExtractStatus) {
	if status, ok := f.statuses[selector]; ok {
		return "", status
	}
	if text, ok := f.texts[selector]; ok {
		return text, ExtractFound
	}
	return "", ExtractNotFound
}

func (f *fakeOffer) AllMatchTexts(selector string) ([]string, error) {
	if f.allErr != nil {
		return nil, f.allErr
	}
	return f.all[selector], nil
}

func (f *fakeOffer) HasBadge(selector, marker string) (bool, error) {
	return f.badge, f.badgeErr
}

// fakeSession is a mock implementation of Session for testing
type fakeSession struct {
	NavigateFunc     func(url string) NavResult
	LocateOffersFunc func() []Offer
	CloseFunc        func() error

	appliedFilters []string
	closed         bool
}

func (f *fakeSession) Navigate(url string) NavResult {
	if f.NavigateFunc != nil {
		return f.NavigateFunc(url)
	}
	loadTime := 1.23
	status := 200
	return NavResult{LoadTime: &loadTime, Status: &status}
}

func (f *fakeSession) ApplyAirlineFilter(airline string) {
	f.appliedFilters = append(f.appliedFilters, airline)
}

func (f *fakeSession) LocateOffers() []Offer {
	if f.LocateOffersFunc != nil {
		return f.LocateOffersFunc()
	}
	return nil
}

func (f *fakeSession) Close() error {
	f.closed = true
	if f.CloseFunc != nil {
		return f.CloseFunc()
	}
	return nil
}

// fakeFactory is a mock implementation of SessionFactory for testing
type fakeFactory struct {
	OpenSessionFunc func(ctx context.Context) (Session, error)
}

func (f *fakeFactory) OpenSession(ctx context.Context) (Session, error) {
	if f.OpenSessionFunc != nil {
		return f.OpenSessionFunc(ctx)
	}
	return &fakeSession{}, nil
}
