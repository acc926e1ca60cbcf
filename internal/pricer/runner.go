package pricer

import (
	"fmt"
	"log/slog"
	"net/url"

	"github.com/oShenny/ndc-pricer/internal/models"
)

// URL query parameters carrying the route of a search-result page.
const (
	originParam      = "departure_destination_1"
	destinationParam = "arrival_destination_1"
)

// CaseRunner drives one URL through a page session and the detector and
// assembles one test-case record. Every sub-step already degrades internally,
// so the runner only sequences and assembles; no error escapes Run.
type CaseRunner struct {
	detector *Detector
	log      *slog.Logger
}

// NewCaseRunner creates a runner backed by the given detector.
func NewCaseRunner(detector *Detector, log *slog.Logger) *CaseRunner {
	return &CaseRunner{detector: detector, log: log}
}

// Run checks one URL. The second return value is false when the URL lacks its
// route parameters: such a case is unattributable and contributes no record.
// Every other failure still yields a record, with explicit nulls where a
// value could not be determined.
func (r *CaseRunner) Run(session Session, setName, airline string, ordinal int, rawURL string) (models.TestCaseResult, bool) {
	log := r.log.With("test_set", setName, "case", ordinal, "url", rawURL)

	origin, destination, err := routeFromURL(rawURL)
	if err != nil {
		log.Error("cannot attribute test case, skipping", "error", err)
		return models.TestCaseResult{}, false
	}

	result := models.TestCaseResult{
		Airline:      airline,
		Origin:       origin,
		Destination:  destination,
		URL:          rawURL,
		UpsellPrices: []string{},
	}

	nav := session.Navigate(rawURL)
	result.LoadTime = nav.LoadTime
	result.HTTPStatus = nav.Status
	if nav.LoadTime == nil || nav.Status == nil {
		// Nothing to detect on an unloaded page; the record is still emitted.
		log.Warn("navigation inconclusive, detection skipped")
		return result, true
	}
	log.Info("page loaded", "load_time", *nav.LoadTime, "http_status", *nav.Status)

	session.ApplyAirlineFilter(airline)

	offers := session.LocateOffers()
	result.FirstOfferPrice = r.detector.FirstOfferPrice(offers)

	detection := r.detector.DetectNDC(offers)
	result.IsNDC = detection.IsNDC
	result.NDCPosition = detection.Position
	if detection.IsNDC {
		result.NDCPrice = detection.Price
	}
	result.HasUpsell = detection.HasUpsell
	if detection.UpsellPrices != nil {
		result.UpsellPrices = detection.UpsellPrices
	}
	result.Note = detection.Note

	return result, true
}

func routeFromURL(rawURL string) (origin, destination string, err error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", "", fmt.Errorf("unparseable URL: %w", err)
	}
	query := u.Query()

	origin = query.Get(originParam)
	if origin == "" {
		return "", "", fmt.Errorf("missing %s query parameter", originParam)
	}
	destination = query.Get(destinationParam)
	if destination == "" {
		return "", "", fmt.Errorf("missing %s query parameter", destinationParam)
	}
	return origin, destination, nil
}
