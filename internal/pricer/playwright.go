package pricer

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/playwright-community/playwright-go"

	"github.com/oShenny/ndc-pricer/internal/config"
)

// settleDelay is the pause after each filter interaction that lets the DOM
// catch up with the triggered re-render.
const settleDelay = 2 * time.Second

// filterAttachWait bounds the wait for the offer list to reattach after the
// airline filter is applied.
const filterAttachWait = 2 * time.Second

// PlaywrightFactory launches one headless Chromium per test set.
type PlaywrightFactory struct {
	pw       *playwright.Playwright
	site     config.SiteConfig
	headless bool
	sleeper  Sleeper
	log      *slog.Logger
}

// NewPlaywrightFactory returns a factory sharing one Playwright driver across
// all sessions it opens.
func NewPlaywrightFactory(pw *playwright.Playwright, site config.SiteConfig, headless bool, log *slog.Logger) *PlaywrightFactory {
	return &PlaywrightFactory{
		pw:       pw,
		site:     site,
		headless: headless,
		sleeper:  RealSleeper{},
		log:      log,
	}
}

// OpenSession launches a browser, opens a page, and applies the configured
// default timeouts to every navigation and wait on it.
func (f *PlaywrightFactory) OpenSession(ctx context.Context) (Session, error) {
	browser, err := f.pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(f.headless),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to launch browser: %w", err)
	}

	page, err := browser.NewPage()
	if err != nil {
		_ = browser.Close()
		return nil, fmt.Errorf("failed to open page: %w", err)
	}

	page.SetDefaultNavigationTimeout(float64(f.site.Timeouts.PageLoad.Milliseconds()))
	page.SetDefaultTimeout(float64(f.site.Timeouts.SelectorWait.Milliseconds()))

	return &PageSession{
		browser: browser,
		page:    page,
		site:    f.site,
		sleeper: f.sleeper,
		ctx:     ctx,
		log:     f.log,
	}, nil
}

// PageSession implements Session on a live playwright page.
type PageSession struct {
	browser playwright.Browser
	page    playwright.Page
	site    config.SiteConfig
	sleeper Sleeper
	ctx     context.Context
	log     *slog.Logger
}

// Navigate loads the URL waiting for DOM-ready, then waits for network-idle
// on the same timeout budget so client-side redirects settle before the load
// time is measured.
func (s *PageSession) Navigate(url string) NavResult {
	timeout := float64(s.site.Timeouts.PageLoad.Milliseconds())
	start := time.Now()

	resp, err := s.page.Goto(url, playwright.PageGotoOptions{
		Timeout:   playwright.Float(timeout),
		WaitUntil: playwright.WaitUntilStateDomcontentloaded,
	})
	if err != nil {
		s.log.Error("navigation failed", "url", url, "error", err)
		return NavResult{}
	}
	if resp == nil {
		s.log.Error("navigation produced no response", "url", url)
		return NavResult{}
	}

	if err := s.page.WaitForLoadState(playwright.PageWaitForLoadStateOptions{
		State:   playwright.LoadStateNetworkidle,
		Timeout: playwright.Float(timeout),
	}); err != nil {
		s.log.Error("network never settled", "url", url, "error", err)
		return NavResult{}
	}

	elapsed := math.Round(time.Since(start).Seconds()*100) / 100
	status := resp.Status()
	return NavResult{LoadTime: &elapsed, Status: &status}
}

// ApplyAirlineFilter expands the first filter toggle, selects the label
// containing the airline name, and waits for the offer list to come back.
// Each step that fails is logged and the rest is skipped; detection then runs
// against the unfiltered offer list.
func (s *PageSession) ApplyAirlineFilter(airline string) {
	if err := s.page.Locator(s.site.Selectors.FilterToggle).First().Click(); err != nil {
		s.log.Warn("could not expand filter panel", "airline", airline, "error", err)
		return
	}
	_ = s.sleeper.Sleep(s.ctx, settleDelay)

	label := fmt.Sprintf("%s:has-text('%s')", s.site.Selectors.FilterLabel, airline)
	if err := s.page.Locator(label).Click(); err != nil {
		s.log.Warn("could not select airline filter", "airline", airline, "error", err)
		return
	}
	s.log.Info("airline filter applied", "airline", airline)

	if _, err := s.page.WaitForSelector(s.site.Selectors.OffersList, playwright.PageWaitForSelectorOptions{
		State:   playwright.WaitForSelectorStateAttached,
		Timeout: playwright.Float(float64(filterAttachWait.Milliseconds())),
	}); err != nil {
		s.log.Warn("offer list did not reattach after filtering", "airline", airline, "error", err)
	}
	_ = s.sleeper.Sleep(s.ctx, settleDelay)
}

// LocateOffers waits up to the selector-wait budget for the offer list and at
// least one offer card, then returns all cards in document order.
func (s *PageSession) LocateOffers() []Offer {
	query := s.site.Selectors.OfferItems()

	if _, err := s.page.WaitForSelector(query, playwright.PageWaitForSelectorOptions{
		Timeout: playwright.Float(float64(s.site.Timeouts.SelectorWait.Milliseconds())),
	}); err != nil {
		s.log.Warn("no offers appeared within the wait budget", "error", err)
		return nil
	}

	locators, err := s.page.Locator(query).All()
	if err != nil {
		s.log.Warn("could not enumerate offers", "error", err)
		return nil
	}

	offers := make([]Offer, 0, len(locators))
	for _, loc := range locators {
		offers = append(offers, &pageOffer{loc: loc})
	}
	return offers
}

// Close shuts down the browser owned by this session.
func (s *PageSession) Close() error {
	return s.browser.Close()
}

// pageOffer adapts one offer-card locator to the Offer interface.
type pageOffer struct {
	loc playwright.Locator
}

func (o *pageOffer) FirstMatchText(selector string, wait time.Duration) (string, ExtractStatus) {
	el := o.loc.Locator(selector).First()

	if wait > 0 {
		if err := el.WaitFor(playwright.LocatorWaitForOptions{
			State:   playwright.WaitForSelectorStateAttached,
			Timeout: playwright.Float(float64(wait.Milliseconds())),
		}); err != nil {
			return "", ExtractTimedOut
		}
	}

	count, err := el.Count()
	if err != nil {
		return "", ExtractFailed
	}
	if count == 0 {
		return "", ExtractNotFound
	}

	text, err := el.TextContent()
	if err != nil {
		return "", ExtractFailed
	}
	return text, ExtractFound
}

func (o *pageOffer) AllMatchTexts(selector string) ([]string, error) {
	return o.loc.Locator(selector).AllTextContents()
}

func (o *pageOffer) HasBadge(selector, marker string) (bool, error) {
	count, err := o.loc.Locator(selector).Filter(playwright.LocatorFilterOptions{
		HasText: marker,
	}).Count()
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

var (
	_ Session        = (*PageSession)(nil)
	_ SessionFactory = (*PlaywrightFactory)(nil)
	_ Offer          = (*pageOffer)(nil)
)
