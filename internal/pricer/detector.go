package pricer

import (
	"log/slog"
	"time"

	"github.com/oShenny/ndc-pricer/internal/config"
)

// candidateAttachWait is the short per-selector wait granted to a badged
// offer's price element before the next fallback selector is tried.
const candidateAttachWait = 2 * time.Second

// Notes attached to detection results on degraded paths.
const (
	NoteNoUpsells       = "detected, no upsells"
	NoteNoOffersFound   = "no offers found"
	NoteDetectionFailed = "detection failed"
)

// Detection classifies the first qualifying direct-payment offer on a page.
// Position is the 1-based rank of that offer among all displayed offers;
// Price is populated exactly when IsNDC is true.
type Detection struct {
	IsNDC        bool
	Position     *int
	Price        *string
	HasUpsell    bool
	UpsellPrices []string
	Note         *string
}

// Detector extracts prices and classifies offers against the configured
// selectors. It never fails upward: every internal error degrades to a null
// price or a "not found" detection, with the distinction kept in logs.
type Detector struct {
	selectors config.Selectors
	log       *slog.Logger
}

// NewDetector creates a detector for the given selector configuration.
func NewDetector(selectors config.Selectors, log *slog.Logger) *Detector {
	return &Detector{selectors: selectors, log: log}
}

// FirstOfferPrice returns the normalized price of the first displayed offer,
// or nil when no offers exist or no price selector matches.
func (d *Detector) FirstOfferPrice(offers []Offer) *string {
	if len(offers) == 0 {
		d.log.Warn("no offers available to price the first offer")
		return nil
	}

	outcome := d.extractPrice(offers[0], 0)
	if outcome.Status != ExtractFound {
		d.log.Warn("no valid price found for the first offer", "status", outcome.Status)
		return nil
	}

	d.log.Info("first offer price detected", "price", outcome.Price)
	return &outcome.Price
}

// DetectNDC scans offers in document order for the first one carrying the
// instant-payment badge. Scanning stops at the first badged offer with an
// extractable price; position matters because the business question is
// whether the direct-payment fare is ranked first, not merely whether it
// exists. A badged offer without a readable price is skipped and the scan
// continues.
func (d *Detector) DetectNDC(offers []Offer) Detection {
	if len(offers) == 0 {
		d.log.Info("no offers found on the page")
		return notFoundDetection(NoteNoOffersFound)
	}

	for idx, offer := range offers {
		rank := idx + 1

		badged, err := offer.HasBadge(d.selectors.Badge, d.selectors.BadgeMarker)
		if err != nil {
			d.log.Error("badge check failed", "rank", rank, "error", err)
			return notFoundDetection(NoteDetectionFailed)
		}
		if !badged {
			continue
		}
		d.log.Info("instant-payment badge detected", "rank", rank)

		outcome := d.extractPrice(offer, candidateAttachWait)
		if outcome.Status != ExtractFound {
			d.log.Warn("badged offer has no extractable price, continuing scan",
				"rank", rank, "status", outcome.Status)
			continue
		}
		price := outcome.Price

		upsellsRaw, err := offer.AllMatchTexts(d.selectors.UpsellPrices())
		if err != nil {
			d.log.Error("upsell extraction failed", "rank", rank, "error", err)
			return notFoundDetection(NoteDetectionFailed)
		}
		upsells := make([]string, 0, len(upsellsRaw))
		for _, raw := range upsellsRaw {
			upsells = append(upsells, NormalizePrice(raw))
		}

		if len(upsells) > 0 {
			d.log.Info("ndc offer with upsells detected", "rank", rank, "upsells", len(upsells))
			return Detection{
				IsNDC:        true,
				Position:     &rank,
				Price:        &price,
				HasUpsell:    true,
				UpsellPrices: upsells,
			}
		}

		d.log.Info("ndc offer without upsells detected", "rank", rank)
		note := NoteNoUpsells
		return Detection{
			IsNDC:        true,
			Position:     &rank,
			Price:        &price,
			UpsellPrices: []string{},
			Note:         &note,
		}
	}

	d.log.Info("no offers carry the instant-payment badge")
	return notFoundDetection(NoteNoOffersFound)
}

// extractPrice tries each configured price selector in order and returns the
// first hit, normalized. A selector that misses, times out, or errors only
// moves the attempt to the next fallback.
func (d *Detector) extractPrice(offer Offer, wait time.Duration) PriceOutcome {
	for _, selector := range d.selectors.PriceFallbacks {
		text, status := offer.FirstMatchText(selector, wait)
		if status != ExtractFound {
			d.log.Debug("price selector missed", "selector", selector, "status", status)
			continue
		}
		price := NormalizePrice(text)
		if price == "" {
			d.log.Debug("price selector matched an empty element", "selector", selector)
			continue
		}
		return PriceOutcome{Status: ExtractFound, Price: price}
	}
	return PriceOutcome{Status: ExtractNotFound}
}

func notFoundDetection(note string) Detection {
	return Detection{UpsellPrices: []string{}, Note: &note}
}
