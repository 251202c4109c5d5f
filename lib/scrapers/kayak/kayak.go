// Package kayak scrapes flight offers from kayak.com through a headless
// browser.
package kayak

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"farescan/lib/flight"
	"farescan/lib/scrapers"
	"farescan/lib/scrapers/browser"
	"farescan/lib/telemetry"

	"github.com/PuerkitoBio/goquery"
	"github.com/chromedp/chromedp"
	"go.opentelemetry.io/otel/codes"
)

var tracer = telemetry.Tracer("farescan.lib.scrapers.kayak")

type Scraper struct {
	settings scrapers.Settings
	browser  browser.Options
}

func New(settings scrapers.Settings, browserOpts browser.Options) *Scraper {
	return &Scraper{settings: settings, browser: browserOpts}
}

func (s *Scraper) Name() string {
	return "Kayak"
}

// deep link straight to sorted results, skipping the search form
func searchURL(q flight.Query) string {
	url := fmt.Sprintf(
		"https://www.kayak.com/flights/%s-%s/%s",
		q.Source, q.Destination, q.TravelDate,
	)
	if q.RoundTrip() {
		url += "/" + q.ReturnDate
	}
	return url + "?sort=price_a&fs=stops=0;1;2"
}

func (s *Scraper) Search(ctx context.Context, q flight.Query) ([]flight.Record, error) {
	ctx, span := tracer.Start(ctx, "Search")
	defer span.End()

	var lastErr error
	for attempt := 0; attempt <= s.settings.RetryAttempts; attempt++ {
		if attempt > 0 {
			slog.Warn("retrying kayak search", "attempt", attempt, "err", lastErr)
			select {
			case <-time.After(scrapers.Backoff(attempt - 1)):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		records, err := s.searchOnce(ctx, q)
		if err == nil {
			return records, nil
		}
		lastErr = err
	}

	span.RecordError(lastErr)
	span.SetStatus(codes.Error, "kayak search failed")
	return nil, lastErr
}

func (s *Scraper) searchOnce(ctx context.Context, q flight.Query) ([]flight.Record, error) {
	tabCtx, cancel := browser.NewContext(ctx, s.browser)
	defer cancel()

	tabCtx, cancelTimeout := context.WithTimeout(tabCtx, s.settings.Timeout)
	defer cancelTimeout()

	url := searchURL(q)
	slog.Info("navigating", "site", "kayak", "url", url)

	var html string
	err := chromedp.Run(tabCtx,
		chromedp.Navigate(url),
		chromedp.WaitVisible(`[data-resultid]`, chromedp.ByQuery),
		chromedp.OuterHTML("html", &html, chromedp.ByQuery),
	)
	if err != nil {
		return nil, fmt.Errorf("kayak navigation: %w", err)
	}

	return s.parseResults(html, q)
}

func (s *Scraper) parseResults(html string, q flight.Query) ([]flight.Record, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, err
	}

	var records []flight.Record
	doc.Find("[data-resultid]").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if len(records) >= s.settings.MaxResults {
			return false
		}
		records = append(records, parseOffer(sel, q))
		return true
	})
	return records, nil
}

func parseOffer(sel *goquery.Selection, q flight.Query) flight.Record {
	airline := sel.Find("[data-code]").First().AttrOr("title", "")
	if strings.TrimSpace(airline) == "" {
		airline = "Unknown"
	}

	departure, arrival := "N/A", "N/A"
	times := sel.Find(".vmXl-mod-variant-large")
	if times.Length() > 0 {
		departure = strings.TrimSpace(times.Eq(0).Text())
	}
	if times.Length() > 1 {
		arrival = strings.TrimSpace(times.Eq(1).Text())
	}

	durationDisplay, durationMinutes := flight.ParseDuration(
		sel.Find(".vmXl-mod-variant-default").First().Text(),
	)
	priceDisplay, priceNumeric := flight.ParsePrice(
		sel.Find(".f8F1-price-text").First().Text(),
	)

	stops := strings.TrimSpace(sel.Find(".JWEO").First().Text())
	if stops == "" {
		stops = "N/A"
	}

	return flight.Record{
		Airline:          airline,
		DepartureTime:    departure,
		ArrivalTime:      arrival,
		DurationDisplay:  durationDisplay,
		DurationMinutes:  durationMinutes,
		PriceDisplay:     priceDisplay,
		PriceNumeric:     priceNumeric,
		Stops:            stops,
		DepartureAirport: q.Source,
		ArrivalAirport:   q.Destination,
		SourceLabel:      "Kayak",
	}
}
