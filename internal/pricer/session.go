package pricer

import (
	"context"
	"time"
)

// NavResult reports one page navigation. Both fields are nil when the
// navigation failed or timed out; callers treat that as inconclusive, never
// as a hard stop.
type NavResult struct {
	// LoadTime is the elapsed wall-clock time in seconds, rounded to two
	// decimals.
	LoadTime *float64
	// Status is the HTTP status code of the navigation response.
	Status *int
}

// Offer is one rendered fare card in the results list.
type Offer interface {
	// FirstMatchText returns the text of the first element matching selector
	// within the offer. When wait is positive, the element is given that long
	// to attach before the attempt is abandoned.
	FirstMatchText(selector string, wait time.Duration) (string, ExtractStatus)

	// AllMatchTexts returns the text of every element matching selector
	// within the offer, in document order.
	AllMatchTexts(selector string) ([]string, error)

	// HasBadge reports whether the offer contains an element matching
	// selector whose visible text contains marker.
	HasBadge(selector, marker string) (bool, error)
}

// Session is one browser tab bound to one test set's sequential URL stream.
type Session interface {
	// Navigate loads the URL, waits for DOM-ready and then network-idle, and
	// measures elapsed time. Failures are logged, not returned.
	Navigate(url string) NavResult

	// ApplyAirlineFilter expands the filter panel and selects the checkbox
	// whose label contains the airline name. Failures are logged and
	// swallowed; detection proceeds against whatever offers are shown.
	ApplyAirlineFilter(airline string)

	// LocateOffers waits for the offer list to render and returns all offer
	// cards in document order, or an empty slice when none appear in time.
	LocateOffers() []Offer

	// Close releases the browser owned by this session.
	Close() error
}

// SessionFactory opens one exclusive Session per test set.
type SessionFactory interface {
	OpenSession(ctx context.Context) (Session, error)
}

// Sleeper abstracts the fixed settling delays between filter-interaction
// steps so tests run without real waiting.
type Sleeper interface {
	Sleep(ctx context.Context, d time.Duration) error
}

// RealSleeper waits on the wall clock, or returns early on context
// cancellation.
type RealSleeper struct{}

func (RealSleeper) Sleep(ctx context.Context, d time.Duration) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}

var _ Sleeper = RealSleeper{}
